// Package config holds the world-tuning configuration. Every constant that
// depends on world scale (probe distances, portal tolerances, speeds) lives
// here rather than as a literal, since the defaults were tuned against the
// 230×70 m street lot and break silently at other scales.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Geometry holds the carving and building tolerances and dimensions.
type Geometry struct {
	DoorWidth     float64 `yaml:"door_width"`      // meters, fixed by content
	DoorHeight    float64 `yaml:"door_height"`     // sill to opening top
	SillHeight    float64 `yaml:"sill_height"`     // floor to opening bottom
	StoreyHeight  float64 `yaml:"storey_height"`   // floor to ceiling per floor
	WallThickness float64 `yaml:"wall_thickness"`  // interior wall box depth
	BrickOffset   float64 `yaml:"brick_offset"`    // exterior shell outward push
	RoofThickness float64 `yaml:"roof_thickness"`  // roof prism height
	TreadThick    float64 `yaml:"tread_thickness"` // stair tread box height
	TreadRise     float64 `yaml:"tread_rise"`      // vertical climb per tread
	LintelHeight  float64 `yaml:"lintel_height"`   // cap above door openings

	// DoorPerpTol matches a door to a wall when the door's perpendicular
	// coordinate is within this distance of the wall line.
	DoorPerpTol float64 `yaml:"door_perp_tolerance"`
	// MinWallLen drops carved pieces shorter than this.
	MinWallLen float64 `yaml:"min_wall_length"`
	// LintelWidthTol accepts openings within this fraction of DoorWidth.
	LintelWidthTol float64 `yaml:"lintel_width_tolerance"`
	// StairMinDim guards the stairs-room/stairwell intersection heuristic:
	// intersections thinner than this fall back to the full stairs room.
	StairMinDim float64 `yaml:"stair_min_dimension"`
}

// Nav holds navigation-graph construction tolerances.
type Nav struct {
	// PortalCollinearTol accepts two boundary edges as one portal line.
	PortalCollinearTol float64 `yaml:"portal_collinear_tolerance"`
	// MinPortalWidth is the narrowest overlap agents may cross.
	MinPortalWidth float64 `yaml:"min_portal_width"`
	// EnterTol grows a node's rect when testing whether a move enters it.
	EnterTol float64 `yaml:"enter_tolerance"`
	// DoorProbeDists are the outward distances tried when hunting the plot
	// region behind an exterior door.
	DoorProbeDists []float64 `yaml:"door_probe_distances"`
	// DoorWaypointBias pushes an exterior door's waypoint outside the wall
	// so agents actually cross the threshold.
	DoorWaypointBias float64 `yaml:"door_waypoint_bias"`
}

// AI holds agent state-machine and steering tuning.
type AI struct {
	FollowRadius   float64 `yaml:"follow_radius"`   // beyond this: idle
	AttackRadius   float64 `yaml:"attack_radius"`   // within this: attack
	PortalRange    float64 `yaml:"portal_range"`    // max dist to portal waypoint for cross-node attacks
	AttackDamage   int     `yaml:"attack_damage"`   // per landed hit
	AttackCooldown float64 `yaml:"attack_cooldown"` // seconds between hits
	ReelDuration   float64 `yaml:"reel_duration"`   // seconds stunned after taking damage
	ReplanCooldown float64 `yaml:"replan_cooldown"` // seconds, min gap between A* runs
	OutdoorSpeed   float64 `yaml:"outdoor_speed"`   // m/s; indoor is half
	SpawnMinDist   float64 `yaml:"spawn_min_dist"`  // min spawn distance from player
	SpawnAttempts  int     `yaml:"spawn_attempts"`  // bounded placement retries
	MaxHealth      int     `yaml:"max_health"`      // agent hit points
	TurnRate       float64 `yaml:"turn_rate"`       // rad/s facing slew
}

// World is the full tuning configuration.
type World struct {
	Geometry Geometry `yaml:"geometry"`
	Nav      Nav      `yaml:"nav"`
	AI       AI       `yaml:"ai"`

	// BuildBudgetMS bounds geometry work per frame tick, in milliseconds.
	BuildBudgetMS int `yaml:"build_budget_ms"`
}

// Default returns the tuning values matching the original street content.
func Default() World {
	return World{
		Geometry: Geometry{
			DoorWidth:      0.8,
			DoorHeight:     2.0,
			SillHeight:     0.0,
			StoreyHeight:   2.7,
			WallThickness:  0.09,
			BrickOffset:    0.12,
			RoofThickness:  0.25,
			TreadThick:     0.10,
			TreadRise:      0.18,
			LintelHeight:   0.12,
			DoorPerpTol:    2e-3,
			MinWallLen:     1e-4,
			LintelWidthTol: 0.01,
			StairMinDim:    0.9,
		},
		Nav: Nav{
			PortalCollinearTol: 0.02,
			MinPortalWidth:     0.25,
			EnterTol:           0.35,
			DoorProbeDists:     []float64{0.35, 0.70, 1.05, 1.40},
			DoorWaypointBias:   0.45,
		},
		AI: AI{
			FollowRadius:   18,
			AttackRadius:   1.4,
			PortalRange:    1.2,
			AttackDamage:   8,
			AttackCooldown: 1.2,
			ReelDuration:   0.45,
			ReplanCooldown: 0.6,
			OutdoorSpeed:   2.2,
			SpawnMinDist:   8,
			SpawnAttempts:  40,
			MaxHealth:      60,
			TurnRate:       6,
		},
		BuildBudgetMS: 6,
	}
}

// Load reads a YAML config from path, falling back to defaults for a missing
// file and for any field the file omits.
func Load(path string) (World, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
