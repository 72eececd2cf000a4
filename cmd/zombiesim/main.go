// zombiesim runs the agent AI headless: it builds the navigation graph from
// a street layout, spawns agents, walks a scripted player down the road and
// reports every attack and death. Useful for tuning the AI config without a
// renderer attached.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/config"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/nav"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/zombie"
)

const (
	frameRate   = 60
	playerSpeed = 3.0 // m/s, scripted walk along the road
)

func main() {
	layoutPath := flag.String("layout", "config/houses.json", "street layout JSON")
	configPath := flag.String("config", "config/world.yaml", "world tuning YAML")
	agents := flag.Int("agents", 12, "number of agents to spawn")
	duration := flag.Float64("duration", 60, "simulated seconds")
	seed := flag.Uint64("seed", 1, "spawn RNG seed")
	logLevel := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	})))

	if err := run(context.Background(), *layoutPath, *configPath, *agents, *duration, *seed); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// tally logs agent events and keeps aggregate counters.
type tally struct {
	playerHits   int
	playerDamage int
	deaths       int
}

func (t *tally) AttackLanded(id uuid.UUID, damage int) {
	t.playerHits++
	t.playerDamage += damage
	slog.Info("attack landed", "agent", id, "damage", damage)
}

func (t *tally) AgentDied(id uuid.UUID) {
	t.deaths++
	slog.Info("agent died", "agent", id)
}

func run(ctx context.Context, layoutPath, configPath string, agents int, duration float64, seed uint64) error {
	var (
		cfg config.World
		st  layout.Street
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		st, err = layout.LoadStreet(layoutPath)
		if err != nil {
			return fmt.Errorf("loading layout: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	graph := nav.Build(st, cfg.Nav)
	slog.Info("navigation graph built", "nodes", len(graph.Nodes))

	events := &tally{}
	mgr := zombie.NewManager(graph, cfg.AI, events)
	defer mgr.Close()

	// Player walks the road from one end to the other and back.
	player := geom.Point{X: 2, Z: st.Road.Center().Z}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	spawner := zombie.NewSpawner(graph, cfg.AI, rng)
	if err := spawner.Spawn(mgr, agents, player); err != nil {
		return fmt.Errorf("spawning agents: %w", err)
	}
	slog.Info("agents spawned", "count", agents)

	const dt = 1.0 / frameRate
	dir := 1.0
	ticks := int(duration * frameRate)
	for i := 0; i < ticks; i++ {
		player.X += dir * playerSpeed * dt
		if player.X > st.Road.MaxX-2 || player.X < st.Road.MinX+2 {
			dir = -dir
		}
		mgr.Tick(dt, player)
	}

	var walking, attacking, idle int
	for _, a := range mgr.Agents() {
		switch a.State {
		case zombie.StateWalk:
			walking++
		case zombie.StateAttack:
			attacking++
		case zombie.StateIdle:
			idle++
		}
	}
	slog.Info("simulation finished",
		"simulated_seconds", duration,
		"player_hits", events.playerHits,
		"player_damage", events.playerDamage,
		"agent_deaths", events.deaths,
		"walking", walking,
		"attacking", attacking,
		"idle", idle)
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
