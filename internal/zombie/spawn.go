package zombie

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/config"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/nav"
)

// Spawner places new agents on outdoor plot nodes, keeping a minimum
// distance from the player and from each other.
type Spawner struct {
	graph *nav.Graph
	cfg   config.AI
	rng   *rand.Rand

	plots []int // candidate node ids, fixed at construction
}

// NewSpawner indexes the graph's plot nodes once. rng is injected so runs
// can be reproduced.
func NewSpawner(g *nav.Graph, cfg config.AI, rng *rand.Rand) *Spawner {
	s := &Spawner{graph: g, cfg: cfg, rng: rng}
	for _, n := range g.Nodes {
		if n.Kind == nav.KindPlot {
			s.plots = append(s.plots, n.ID)
		}
	}
	return s
}

// Spawn creates count agents and registers them with the manager. Running
// out of placement attempts is fatal: it means the content and the spawn
// config disagree, which must be fixed rather than silently tolerated.
func (s *Spawner) Spawn(m *Manager, count int, player geom.Point) error {
	if len(s.plots) == 0 {
		return fmt.Errorf("spawn: no plot nodes in graph")
	}
	for i := 0; i < count; i++ {
		a, err := s.place(m, player)
		if err != nil {
			return fmt.Errorf("spawn agent %d/%d: %w", i+1, count, err)
		}
		m.Add(a)
	}
	return nil
}

func (s *Spawner) place(m *Manager, player geom.Point) (*Agent, error) {
	for attempt := 0; attempt < s.cfg.SpawnAttempts; attempt++ {
		id := s.plots[s.rng.IntN(len(s.plots))]
		n := s.graph.Nodes[id]

		p := geom.Point{
			X: n.Rect.MinX + s.rng.Float64()*n.Rect.Width(),
			Z: n.Rect.MinZ + s.rng.Float64()*n.Rect.Depth(),
		}
		if !n.Contains(p) {
			continue // rect sample landed outside an L-shaped plot
		}
		if p.Dist(player) < s.cfg.SpawnMinDist {
			continue
		}
		if s.tooClose(m, p) {
			continue
		}
		return &Agent{
			ID:         uuid.New(),
			Pos:        p,
			Health:     float64(s.cfg.MaxHealth),
			State:      StateIdle,
			Node:       id,
			targetNode: -1,
		}, nil
	}
	return nil, fmt.Errorf("no valid position after %d attempts (min distance %.1f)",
		s.cfg.SpawnAttempts, s.cfg.SpawnMinDist)
}

func (s *Spawner) tooClose(m *Manager, p geom.Point) bool {
	for _, a := range m.Agents() {
		if a.Alive() && a.Pos.Dist(p) < s.cfg.SpawnMinDist {
			return true
		}
	}
	return false
}
