package layout

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
)

// Raw construction-list shapes, matching config/houses.json.
type rawStreet struct {
	Road   *rawRect   `json:"road"`
	Houses []rawHouse `json:"houses"`
}

type rawRect struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

type rawHouse struct {
	Number      int        `json:"number"`
	Origin      [2]float64 `json:"origin"`
	Width       float64    `json:"width"`
	Depth       float64    `json:"depth"`
	Brick       string     `json:"brick"`
	Plot        rawFloor   `json:"plot"`
	FirstFloor  rawFloor   `json:"firstFloor"`
	SecondFloor rawFloor   `json:"secondFloor"`
}

type rawFloor struct {
	Regions []rawRegion `json:"regions"`
	Doors   []rawDoor   `json:"doors"`
}

type rawRegion struct {
	Name    string            `json:"name"`
	Surface string            `json:"surface"`
	Rect    [][2]float64      `json:"rect,omitempty"`
	Polygon [][2]float64      `json:"polygon,omitempty"`
	Meta    map[string]string `json:"meta,omitempty"`
}

type rawDoor struct {
	Hinge [2]float64 `json:"hinge"`
	End   [2]float64 `json:"end"`
	A     int        `json:"a"`
	B     int        `json:"b"`
}

func pt(v [2]float64) geom.Point { return geom.Point{X: v[0], Z: v[1]} }

// parseRegion validates one construction-list region entry.
func parseRegion(raw rawRegion) (Region, error) {
	surf, err := ParseSurface(raw.Surface)
	if err != nil {
		return Region{}, fmt.Errorf("region %q: %w", raw.Name, err)
	}

	switch {
	case len(raw.Rect) > 0 && len(raw.Polygon) > 0:
		return Region{}, fmt.Errorf("region %q: both rect and polygon given", raw.Name)

	case len(raw.Rect) > 0:
		if len(raw.Rect) != 2 {
			return Region{}, fmt.Errorf("region %q: rect needs exactly 2 corners, got %d", raw.Name, len(raw.Rect))
		}
		r := geom.NewRect(pt(raw.Rect[0]), pt(raw.Rect[1]))
		if r.Width() <= geom.Eps || r.Depth() <= geom.Eps {
			return Region{}, fmt.Errorf("region %q: degenerate rect", raw.Name)
		}
		return Region{
			Kind:    RegionRect,
			Name:    raw.Name,
			Surface: surf,
			Min:     geom.Point{X: r.MinX, Z: r.MinZ},
			Max:     geom.Point{X: r.MaxX, Z: r.MaxZ},
			Meta:    raw.Meta,
		}, nil

	case len(raw.Polygon) > 0:
		if len(raw.Polygon) < 4 {
			return Region{}, fmt.Errorf("region %q: polygon needs at least 4 vertices, got %d", raw.Name, len(raw.Polygon))
		}
		poly := make(geom.Polygon, len(raw.Polygon))
		for i, v := range raw.Polygon {
			poly[i] = pt(v)
		}
		// Orthogonality is a system invariant; reject diagonals here so the
		// carving pipeline never sees them.
		for i, e := range poly.Edges() {
			if _, ok := geom.SegFromPoints(e[0], e[1]); !ok {
				return Region{}, fmt.Errorf("region %q: edge %d is not axis-aligned", raw.Name, i)
			}
		}
		return Region{Kind: RegionPoly, Name: raw.Name, Surface: surf, Verts: poly, Meta: raw.Meta}, nil

	default:
		return Region{}, fmt.Errorf("region %q: neither rect nor polygon given", raw.Name)
	}
}

// parseDoor validates one construction-list door entry against its floor's
// region count. Downstream code relies on these checks and never re-validates.
func parseDoor(raw rawDoor, regionCount int) (Door, error) {
	d := Door{Hinge: pt(raw.Hinge), End: pt(raw.End), A: raw.A, B: raw.B}

	if _, ok := d.Segment(); !ok {
		return Door{}, fmt.Errorf("door footprint %v→%v is not axis-aligned", d.Hinge, d.End)
	}
	if w := d.Width(); math.Abs(w-DoorWidth) > DoorWidth*0.01 {
		return Door{}, fmt.Errorf("door width %.4f outside %.2f±1%%", w, DoorWidth)
	}
	if d.A < 0 || d.A >= regionCount {
		return Door{}, fmt.Errorf("door region a=%d out of range [0,%d)", d.A, regionCount)
	}
	if d.B != ExteriorRegion && (d.B < 0 || d.B >= regionCount) {
		return Door{}, fmt.Errorf("door region b=%d out of range [0,%d)", d.B, regionCount)
	}
	if d.A == d.B {
		return Door{}, fmt.Errorf("door joins region %d to itself", d.A)
	}
	return d, nil
}

func parseFloor(raw rawFloor, name string) (Floor, error) {
	f := Floor{}
	for i, rr := range raw.Regions {
		r, err := parseRegion(rr)
		if err != nil {
			return f, fmt.Errorf("%s region %d: %w", name, i, err)
		}
		f.Regions = append(f.Regions, r)
	}
	for i, rd := range raw.Doors {
		d, err := parseDoor(rd, len(f.Regions))
		if err != nil {
			return f, fmt.Errorf("%s door %d: %w", name, i, err)
		}
		f.Doors = append(f.Doors, d)
	}
	return f, nil
}

// ParseStreet decodes and validates a street construction list.
func ParseStreet(data []byte) (Street, error) {
	var raw rawStreet
	if err := json.Unmarshal(data, &raw); err != nil {
		return Street{}, fmt.Errorf("decoding street: %w", err)
	}

	st := Street{Road: DefaultRoad()}
	if raw.Road != nil {
		st.Road = geom.NewRect(pt(raw.Road.Min), pt(raw.Road.Max))
	}

	for _, rh := range raw.Houses {
		h := House{
			Number: rh.Number,
			Bounds: Bounds{Origin: pt(rh.Origin), Width: rh.Width, Depth: rh.Depth},
			Brick:  rh.Brick,
		}
		if h.Bounds.Depth == 0 {
			h.Bounds.Depth = LotDepth
		}
		var err error
		if h.Plot, err = parseFloor(rh.Plot, "plot"); err != nil {
			return Street{}, fmt.Errorf("house %d: %w", rh.Number, err)
		}
		if h.FirstFloor, err = parseFloor(rh.FirstFloor, "firstFloor"); err != nil {
			return Street{}, fmt.Errorf("house %d: %w", rh.Number, err)
		}
		if h.SecondFloor, err = parseFloor(rh.SecondFloor, "secondFloor"); err != nil {
			return Street{}, fmt.Errorf("house %d: %w", rh.Number, err)
		}
		if _, ok := h.Footprint(); !ok {
			return Street{}, fmt.Errorf("house %d: plot has no %q region", rh.Number, FootprintName)
		}
		st.Houses = append(st.Houses, h)
	}
	return st, nil
}

// LoadStreet reads and parses a street layout file.
func LoadStreet(path string) (Street, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Street{}, fmt.Errorf("reading street layout %s: %w", path, err)
	}
	return ParseStreet(data)
}
