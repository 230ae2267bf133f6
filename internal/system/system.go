// internal/system/system.go
package system

import (
	"sort"

	"go-gravitar/internal/input"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

// Phase orders the systems within one tick.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseMotion
	PhaseCollision
	PhaseLiveness
	PhaseReport
)

// TransitionKind tells the owning scene where to go after the tick.
type TransitionKind int

const (
	Stay TransitionKind = iota
	// Leave returns to the parent scene.
	Leave
	// Portal enters Transition.Scene.
	Portal
	GameOver
	Won
)

type Transition struct {
	Kind  TransitionKind
	Scene types.SceneID // Portal only
}

// Frame is the state shared by the systems of one tick: what they read from
// the outside world and what they decided.
type Frame struct {
	Input    input.Snapshot
	Viewport utils.Rect
	DT       float64

	Transition Transition
	Cleared    bool // no hostile structure left
	Remaining  int  // hostile structures still standing
	Report     string
}

func NewFrame(in input.Snapshot, viewport utils.Rect, dt float64) *Frame {
	return &Frame{Input: in, Viewport: viewport, DT: dt}
}

// Request records t unless an earlier system already asked for a transition.
func (f *Frame) Request(t Transition) bool {
	if f.Requested() {
		return false
	}
	f.Transition = t
	return true
}

func (f *Frame) Requested() bool { return f.Transition.Kind != Stay }

type System interface {
	Phase() Phase
	Update(f *Frame)
}

// Runner executes systems in phase order each tick. Systems of the same
// phase keep their registration order.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner(systems ...System) *Runner {
	r := &Runner{systems: make([]System, 0, 8)}
	for _, s := range systems {
		r.Register(s)
	}
	return r
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

func (r *Runner) Tick(f *Frame) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(f)
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
