// Package nav derives the static navigation graph agents pathfind over:
// one node per traversable region (road, outdoor plot regions, indoor
// first-floor rooms), edges through doors and across open shared
// boundaries. The graph is built once per level and never mutated.
package nav

import (
	"log/slog"
	"math"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/config"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
)

// Kind classifies a navigation node.
type Kind uint8

const (
	KindRoad Kind = iota
	KindPlot
	KindRoom
)

// Node is one traversable region. Open nodes (road, plot) have no walls
// between them; rooms connect only through doors.
type Node struct {
	ID       int
	Kind     Kind
	House    int // -1 for the road
	Region   string
	Rect     geom.Rect
	Poly     geom.Polygon
	Centroid geom.Point
	Boundary []geom.Segment // outline edges, for portal detection
}

// Open reports an outdoor node: no walls separate it from open neighbors.
func (n *Node) Open() bool { return n.Kind != KindRoom }

// Contains reports whether the world point lies inside the node's region.
func (n *Node) Contains(p geom.Point) bool { return n.Poly.Contains(p) }

// ContainsEps reports whether p is inside the node's region or within tol of
// its outline; the steering code uses it to accept moves entering the planned
// next node. The bounding rect is only a pre-filter: concave regions (an L- or
// U-shaped yard wrapping a house footprint) are tested against the polygon, so
// the rect's coverage of the footprint never counts as containment.
func (n *Node) ContainsEps(p geom.Point, tol float64) bool {
	if !n.Rect.ContainsEps(p, tol) {
		return false
	}
	if n.Poly.Contains(p) {
		return true
	}
	for _, s := range n.Boundary {
		if s.Dist(p) <= tol {
			return true
		}
	}
	return false
}

// Edge is an undirected traversal link. Waypoint is the world point an
// agent steers toward when crossing: a door midpoint or the midpoint of the
// open shared-boundary overlap.
type Edge struct {
	A, B     int
	Cost     float64
	Waypoint geom.Point
}

// Graph is the immutable navigation graph.
type Graph struct {
	Nodes []*Node
	adj   [][]Edge
	cfg   config.Nav
}

func (g *Graph) addNode(n *Node) *Node {
	n.ID = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	g.adj = append(g.adj, nil)
	return n
}

func (g *Graph) connect(a, b int, waypoint geom.Point) {
	if a == b {
		return
	}
	for _, e := range g.adj[a] {
		if e.B == b {
			return // already linked
		}
	}
	cost := g.Nodes[a].Centroid.Dist(g.Nodes[b].Centroid)
	g.adj[a] = append(g.adj[a], Edge{A: a, B: b, Cost: cost, Waypoint: waypoint})
	g.adj[b] = append(g.adj[b], Edge{A: b, B: a, Cost: cost, Waypoint: waypoint})
}

// Neighbors returns the edges leaving node id.
func (g *Graph) Neighbors(id int) []Edge { return g.adj[id] }

// EnterTol returns the node-entry tolerance steering pairs with ContainsEps.
func (g *Graph) EnterTol() float64 { return g.cfg.EnterTol }

// Portal returns the waypoint of the edge joining a and b, if one exists.
func (g *Graph) Portal(a, b int) (geom.Point, bool) {
	for _, e := range g.adj[a] {
		if e.B == b {
			return e.Waypoint, true
		}
	}
	return geom.Point{}, false
}

// Locate finds the node containing p. hint (a node id, or -1) is checked
// first — agents rarely change node between ticks.
func (g *Graph) Locate(p geom.Point, hint int) (int, bool) {
	if hint >= 0 && hint < len(g.Nodes) && g.Nodes[hint].Contains(p) {
		return hint, true
	}
	for _, n := range g.Nodes {
		if n.Contains(p) {
			return n.ID, true
		}
	}
	return -1, false
}

func nodeFromPoly(kind Kind, house int, region string, poly geom.Polygon) *Node {
	var boundary []geom.Segment
	for _, e := range poly.Edges() {
		if s, ok := geom.SegFromPoints(e[0], e[1]); ok {
			boundary = append(boundary, s)
		}
	}
	return &Node{
		Kind:     kind,
		House:    house,
		Region:   region,
		Rect:     poly.Bounds(),
		Poly:     poly,
		Centroid: poly.Centroid(),
		Boundary: boundary,
	}
}

func polyFromRect(r geom.Rect) geom.Polygon {
	c := r.Corners()
	return geom.Polygon{c[0], c[1], c[2], c[3]}
}

// worldRegionPoly maps a lot-local region outline into world space.
func worldRegionPoly(h layout.House, r layout.Region) geom.Polygon {
	src := r.Polygon()
	out := make(geom.Polygon, len(src))
	for i, v := range src {
		out[i] = h.ToWorld(v)
	}
	return out
}

// Build derives the street's navigation graph: the road node, plot-region
// nodes (excluding every house footprint), and non-void first-floor room
// nodes. Open nodes sharing a boundary are linked directly; rooms are linked
// through their doors.
func Build(st layout.Street, cfg config.Nav) *Graph {
	g := &Graph{cfg: cfg}

	g.addNode(nodeFromPoly(KindRoad, -1, "road", polyFromRect(st.Road)))

	// roomIDs[houseIdx][regionIdx] — index-based references, no pointers.
	roomIDs := make([]map[int]int, len(st.Houses))

	for hi, h := range st.Houses {
		roomIDs[hi] = make(map[int]int)
		for _, r := range h.Plot.Regions {
			if r.Name == layout.FootprintName {
				continue // the house body is not walkable outdoors
			}
			g.addNode(nodeFromPoly(KindPlot, hi, r.Name, worldRegionPoly(h, r)))
		}
		for ri, r := range h.FirstFloor.Regions {
			if r.IsVoid() {
				continue
			}
			n := g.addNode(nodeFromPoly(KindRoom, hi, r.Name, worldRegionPoly(h, r)))
			roomIDs[hi][ri] = n.ID
		}
	}

	g.linkOpenPortals()

	for hi, h := range st.Houses {
		g.linkDoors(hi, h, roomIDs[hi])
	}

	return g
}

// linkOpenPortals connects every pair of open nodes sharing a boundary: two
// collinear boundary edges overlapping by at least the minimum portal width.
func (g *Graph) linkOpenPortals() {
	for i := 0; i < len(g.Nodes); i++ {
		a := g.Nodes[i]
		if !a.Open() {
			continue
		}
		for j := i + 1; j < len(g.Nodes); j++ {
			b := g.Nodes[j]
			if !b.Open() {
				continue
			}
			// Cheap rect proximity test before the edge scan.
			if !a.Rect.Inflate(g.cfg.PortalCollinearTol).Intersects(b.Rect) {
				continue
			}
			if wp, ok := g.findPortal(a, b); ok {
				g.connect(a.ID, b.ID, wp)
			}
		}
	}
}

// findPortal scans the two nodes' boundary edges for a collinear pair with
// enough overlap and returns the overlap midpoint.
func (g *Graph) findPortal(a, b *Node) (geom.Point, bool) {
	for _, ea := range a.Boundary {
		for _, eb := range b.Boundary {
			if ea.Orient != eb.Orient {
				continue
			}
			if math.Abs(ea.Fixed-eb.Fixed) > g.cfg.PortalCollinearTol {
				continue
			}
			lo := math.Max(ea.Lo, eb.Lo)
			hi := math.Min(ea.Hi, eb.Hi)
			if hi-lo < g.cfg.MinPortalWidth {
				continue
			}
			mid := (lo + hi) / 2
			line := (ea.Fixed + eb.Fixed) / 2
			if ea.Orient == geom.Horizontal {
				return geom.Point{X: mid, Z: line}, true
			}
			return geom.Point{X: line, Z: mid}, true
		}
	}
	return geom.Point{}, false
}

// linkDoors wires one house's first-floor doors: interior doors join two
// rooms at the door midpoint; exterior doors probe outward for the plot
// region behind them.
func (g *Graph) linkDoors(hi int, h layout.House, roomIDs map[int]int) {
	for _, d := range h.FirstFloor.Doors {
		wd := layout.Door{Hinge: h.ToWorld(d.Hinge), End: h.ToWorld(d.End), A: d.A, B: d.B}

		aID, okA := roomIDs[d.A]
		if !okA {
			continue // door hangs off a void region; nothing to link
		}

		if !d.Exterior() {
			if bID, okB := roomIDs[d.B]; okB {
				g.connect(aID, bID, wd.Mid())
			}
			continue
		}

		g.linkExteriorDoor(hi, h, wd, aID)
	}
}

// linkExteriorDoor finds the outdoor plot node behind an exterior door by
// probing points at increasing outward distances along the door's normal.
// The edge waypoint is biased to sit just outside the door so agents
// actually cross the threshold rather than hugging the inner wall line.
func (g *Graph) linkExteriorDoor(hi int, h layout.House, wd layout.Door, roomID int) {
	seg, ok := wd.Segment()
	if !ok {
		return
	}
	var normal geom.Point
	if seg.Orient == geom.Horizontal {
		normal = geom.Point{X: 0, Z: 1}
	} else {
		normal = geom.Point{X: 1, Z: 0}
	}

	// Outward is whichever side leaves the house footprint.
	var footprint geom.Polygon
	if fp, okFP := h.Footprint(); okFP {
		footprint = worldRegionPoly(h, fp)
	}
	mid := wd.Mid()
	if len(footprint) > 0 {
		probe := mid.Add(normal.Scale(g.cfg.DoorProbeDists[0]))
		if footprint.Contains(probe) {
			normal = normal.Scale(-1)
		}
	}

	waypoint := mid.Add(normal.Scale(g.cfg.DoorWaypointBias))

	for _, dist := range g.cfg.DoorProbeDists {
		p := mid.Add(normal.Scale(dist))
		if len(footprint) > 0 && footprint.Contains(p) {
			continue // still inside the house; push further out
		}
		for _, n := range g.Nodes {
			if n.Kind == KindPlot && n.House == hi && n.Contains(p) {
				g.connect(roomID, n.ID, waypoint)
				return
			}
		}
	}

	// Edge-case geometry: no plot region found along the normal. Keep the
	// graph connected by linking the nearest plot node of the same house.
	best, bestDist := -1, math.Inf(1)
	for _, n := range g.Nodes {
		if n.Kind != KindPlot || n.House != hi {
			continue
		}
		if d := n.Centroid.Dist(mid); d < bestDist {
			best, bestDist = n.ID, d
		}
	}
	if best >= 0 {
		slog.Warn("exterior door probe found no plot region, using nearest",
			"house", hi, "door", mid, "plot", g.Nodes[best].Region)
		g.connect(roomID, best, waypoint)
	}
}
