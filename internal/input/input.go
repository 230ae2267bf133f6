package input

import "go-gravitar/internal/utils"

// Action is a logical control the simulation can query.
type Action int

const (
	Left Action = iota
	Right
	Thrust
	Reverse
	Fire
	Confirm
	Tractor
	ToggleAudio
	Quit
)

var actionNames = [...]string{
	Left:        "left",
	Right:       "right",
	Thrust:      "thrust",
	Reverse:     "reverse",
	Fire:        "fire",
	Confirm:     "confirm",
	Tractor:     "tractor",
	ToggleAudio: "toggle_audio",
	Quit:        "quit",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Snapshot is the input state queried on demand by the systems. Nothing is
// buffered: Pressed reports the state at the time of the call.
type Snapshot interface {
	Pressed(a Action) bool
	Cursor() utils.Vec2
}

// Static is a fixed snapshot, used by tests and replays.
type Static struct {
	Down    map[Action]bool
	Pointer utils.Vec2
}

func NewStatic(pointer utils.Vec2, down ...Action) *Static {
	s := &Static{Down: make(map[Action]bool), Pointer: pointer}
	for _, a := range down {
		s.Down[a] = true
	}
	return s
}

func (s *Static) Pressed(a Action) bool { return s.Down[a] }
func (s *Static) Cursor() utils.Vec2    { return s.Pointer }
