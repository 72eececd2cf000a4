package zombie

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/config"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/nav"
)

// Events is the outbound callback interface. Injected by the caller to avoid
// an import cycle with whatever consumes agent state (sim loop, renderer).
type Events interface {
	// AttackLanded fires when an agent applies damage to the player.
	AttackLanded(id uuid.UUID, damage int)
	// AgentDied fires exactly once per agent, when health reaches zero.
	AgentDied(id uuid.UUID)
}

// Manager owns every agent and advances them from a single per-frame Tick.
// It must only ever be called from one goroutine; no internal locking.
type Manager struct {
	graph  *nav.Graph
	cfg    config.AI
	events Events

	agents []*Agent
	byID   map[uuid.UUID]*Agent

	playerNode int

	closed bool
}

// groundY is the first-floor elevation agents are pinned to; they never
// climb stairs, so the y coordinate is not part of steering.
const groundY = 0.0

// NewManager creates an agent manager over a built navigation graph.
func NewManager(g *nav.Graph, cfg config.AI, events Events) *Manager {
	return &Manager{
		graph:      g,
		cfg:        cfg,
		events:     events,
		byID:       make(map[uuid.UUID]*Agent),
		playerNode: -1,
	}
}

// Add registers a spawned agent. The manager takes ownership of its
// position and rotation from this point on.
func (m *Manager) Add(a *Agent) {
	if m.closed {
		return
	}
	m.agents = append(m.agents, a)
	m.byID[a.ID] = a
}

// Agents returns the live agent list for read-only observation.
func (m *Manager) Agents() []*Agent { return m.agents }

// Get looks an agent up by handle.
func (m *Manager) Get(id uuid.UUID) (*Agent, bool) {
	a, ok := m.byID[id]
	return a, ok
}

// Close synchronously detaches every agent. After Close the manager is
// inert: Tick and Damage are no-ops and no callbacks fire.
func (m *Manager) Close() {
	m.closed = true
	m.agents = nil
	m.byID = nil
}

// Tick advances all agents by dt seconds against the player's position.
// Called once per frame from the render callback.
func (m *Manager) Tick(dt float64, player geom.Point) {
	if m.closed || dt <= 0 {
		return
	}

	if id, ok := m.graph.Locate(player, m.playerNode); ok {
		m.playerNode = id
	}

	for _, a := range m.agents {
		if !a.Alive() {
			continue
		}
		m.tickAgent(a, dt, player)
		a.Y = groundY
	}
}

func (m *Manager) tickAgent(a *Agent, dt float64, player geom.Point) {
	a.attackTimer = math.Max(0, a.attackTimer-dt)
	a.replanTimer = math.Max(0, a.replanTimer-dt)

	if a.reelTimer > 0 {
		a.reelTimer -= dt
		if a.reelTimer > 0 {
			return // stunned: AI fully paused
		}
		a.State = StateWalk
	}

	// Keep the node anchor honest if something external moved us. Mid-
	// crossing the agent sits in the tolerance band of its new node, which
	// its old neighbor may still contain — don't flap the anchor back then.
	if !m.graph.Nodes[a.Node].ContainsEps(a.Pos, m.graph.EnterTol()) {
		if id, ok := m.graph.Locate(a.Pos, a.Node); ok {
			a.Node = id
		}
	}

	dist := a.Pos.Dist(player)
	switch {
	case dist > m.cfg.FollowRadius:
		a.State = StateIdle
	case dist <= m.cfg.AttackRadius && m.directAttack(a):
		m.thinkAttack(a, dt, player)
	default:
		m.thinkWalk(a, dt, player)
	}
}

// directAttack reports whether the agent may damage the player from its
// current position. Open-to-open always passes (no walls outdoors); across
// nodes it requires closeness to the shared portal, which is what stops
// attacks through a wall when two rooms are within attack radius.
func (m *Manager) directAttack(a *Agent) bool {
	if m.playerNode < 0 {
		return false
	}
	if a.Node == m.playerNode {
		return true
	}
	if m.graph.Nodes[a.Node].Open() && m.graph.Nodes[m.playerNode].Open() {
		return true
	}
	wp, ok := m.graph.Portal(a.Node, m.playerNode)
	return ok && a.Pos.Dist(wp) <= m.cfg.PortalRange
}

func (m *Manager) thinkAttack(a *Agent, dt float64, player geom.Point) {
	if a.State != StateAttack {
		slog.Debug("agent enters attack", "id", a.ID, "node", a.Node)
		a.State = StateAttack
		a.clearPath()
	}
	m.turnToward(a, player, dt)
	if a.attackTimer <= 0 {
		a.attackTimer = m.cfg.AttackCooldown
		if m.events != nil {
			m.events.AttackLanded(a.ID, m.cfg.AttackDamage)
		}
	}
}

func (m *Manager) thinkWalk(a *Agent, dt float64, player geom.Point) {
	a.State = StateWalk

	here := m.graph.Nodes[a.Node]

	// Outdoor-to-outdoor: steer straight at the player, no pathfinding.
	if m.playerNode >= 0 && here.Open() && m.graph.Nodes[m.playerNode].Open() {
		a.clearPath()
		m.steer(a, player, dt)
		return
	}

	if m.playerNode >= 0 && a.replanTimer <= 0 &&
		(a.targetNode != m.playerNode || a.pathStale()) {
		a.replanTimer = m.cfg.ReplanCooldown
		a.targetNode = m.playerNode
		path := m.graph.FindPath(a.Node, m.playerNode)
		if path == nil {
			// Recoverable: stand on the current node and keep trying.
			path = []int{a.Node}
		}
		a.path = path
		a.cursor = 0
	}

	target := player
	if next := a.nextNode(); next >= 0 {
		if wp, ok := m.graph.Portal(a.Node, next); ok {
			target = wp
			// At the waypoint: aim into the next node so the crossing
			// actually happens (door waypoints sit just outside the wall).
			if a.Pos.Dist(wp) < m.graph.EnterTol() {
				target = m.graph.Nodes[next].Centroid
			}
		}
	} else if a.Node != m.playerNode {
		return // no route and not sharing the player's node: hold position
	}

	m.steer(a, target, dt)
}

// steer attempts the move toward target: the full 2D displacement first,
// then x-only and z-only partial moves. The first candidate that either
// stays inside the current node or enters the planned next node wins; if
// none do, the agent does not move this tick. This containment test is the
// only thing keeping agents out of walls.
func (m *Manager) steer(a *Agent, target geom.Point, dt float64) {
	dir := target.Sub(a.Pos)
	length := math.Hypot(dir.X, dir.Z)
	if length < geom.Eps {
		return
	}
	dir = dir.Scale(1 / length)

	speed := m.cfg.OutdoorSpeed
	if !m.graph.Nodes[a.Node].Open() {
		speed /= 2
	}
	step := math.Min(speed*dt, length)

	full := dir.Scale(step)
	candidates := [3]geom.Point{
		full,
		{X: full.X, Z: 0},
		{X: 0, Z: full.Z},
	}

	next := a.nextNode()
	tol := m.graph.EnterTol()
	for _, d := range candidates {
		if d.X == 0 && d.Z == 0 {
			continue
		}
		p := a.Pos.Add(d)
		here := m.graph.Nodes[a.Node]
		switch {
		// The tolerance band matters right after a crossing, when the agent
		// is still between the waypoint and the new node's wall line.
		case here.ContainsEps(p, tol):
			a.Pos = p
		case next >= 0 && m.graph.Nodes[next].ContainsEps(p, tol):
			a.Pos = p
			a.Node = next
			a.cursor++
		default:
			continue
		}
		m.turnToward(a, a.Pos.Add(d), dt)
		return
	}
}

// turnToward rotates the agent's heading toward the point, clamped by the
// turn rate.
func (m *Manager) turnToward(a *Agent, p geom.Point, dt float64) {
	d := p.Sub(a.Pos)
	if math.Hypot(d.X, d.Z) < geom.Eps {
		return
	}
	want := math.Atan2(d.X, d.Z)
	diff := math.Mod(want-a.Rotation+3*math.Pi, 2*math.Pi) - math.Pi
	maxTurn := m.cfg.TurnRate * dt
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}
	a.Rotation += diff
}

// Damage applies inbound damage to an agent. Non-lethal hits interrupt
// whatever the agent was doing and start the reel stun; a lethal hit
// transitions to dead and fires AgentDied exactly once.
func (m *Manager) Damage(id uuid.UUID, amount float64) {
	if m.closed {
		return
	}
	a, ok := m.byID[id]
	if !ok || !a.Alive() {
		return
	}
	a.Health -= amount
	if a.Health <= 0 {
		a.Health = 0
		a.State = StateDead
		a.clearPath()
		slog.Debug("agent died", "id", a.ID)
		if m.events != nil {
			m.events.AgentDied(a.ID)
		}
		return
	}
	a.State = StateReel
	a.reelTimer = m.cfg.ReelDuration
	a.clearPath()
}
