// Package zombie implements the agent AI: a per-agent state machine driven
// by a single-threaded per-frame tick, A* replanning over the navigation
// graph, and wall-safe steering between portal waypoints. All mutable state
// is touched only from the frame callback, so no locking is used anywhere.
package zombie

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/geom"
)

// State is an agent's behaviour state.
type State uint8

const (
	// StateIdle — player out of follow range, no animation.
	StateIdle State = iota
	// StateWalk — chasing: pathfinding plus steering.
	StateWalk
	// StateAttack — in range, applying damage on a fixed cooldown.
	StateAttack
	// StateReel — stunned after taking damage; AI paused until the timer runs out.
	StateReel
	// StateDead — terminal. Hitbox disabled, never updated again.
	StateDead
)

var stateNames = map[State]string{
	StateIdle:   "idle",
	StateWalk:   "walk",
	StateAttack: "attack",
	StateReel:   "reel",
	StateDead:   "dead",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Agent is one zombie. The manager owns position and rotation exclusively —
// consumers observe them through the Events callbacks and the read accessors,
// never mutate them.
type Agent struct {
	ID       uuid.UUID
	Pos      geom.Point
	Y        float64 // clamped to the walk elevation every tick
	Rotation float64 // heading, radians around the y axis
	Health   float64
	State    State

	// Node is the navigation node the agent currently occupies. It is the
	// steering anchor: a move is accepted only if it stays inside this node
	// or enters the next node of the planned path.
	Node int

	// path is a node-id sequence from the pathfinder; cursor indexes the
	// agent's position within it. path[cursor] == Node while the path holds.
	path   []int
	cursor int

	attackTimer float64 // seconds until the next damage application
	reelTimer   float64 // seconds of stun remaining
	replanTimer float64 // seconds until A* may run again
	targetNode  int     // player node the current path was planned for
}

// Alive reports whether the agent still participates in ticks.
func (a *Agent) Alive() bool { return a.State != StateDead }

// nextNode returns the planned next node id, or -1 when the path is spent.
func (a *Agent) nextNode() int {
	if a.cursor+1 < len(a.path) {
		return a.path[a.cursor+1]
	}
	return -1
}

// pathStale reports whether the stored path no longer matches reality:
// empty, fully consumed, or the agent drifted off its recorded head.
func (a *Agent) pathStale() bool {
	if a.cursor >= len(a.path) {
		return true
	}
	return a.path[a.cursor] != a.Node
}

func (a *Agent) clearPath() {
	a.path = nil
	a.cursor = 0
	a.targetNode = -1
}
