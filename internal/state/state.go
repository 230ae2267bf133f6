// internal/state/state.go
package state

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-gravitar/internal/input"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

var (
	// ErrUnknownScene is returned when a transition names a scene that was
	// never registered.
	ErrUnknownScene = errors.New("unimplemented scene")
	// ErrClosed is returned once the active scene asks to close the game.
	ErrClosed = errors.New("game closed")
)

// Scene is one screen of the game. Update returns the id of the scene that
// should be active on the next tick; returning its own id keeps it.
type Scene interface {
	ID() types.SceneID
	Enter()
	Update(in input.Snapshot, viewport utils.Rect, dt float64) types.SceneID
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine owns the registered scenes and switches between them.
type StateMachine struct {
	scenes  map[types.SceneID]Scene
	current Scene
	nextID  types.SceneID
	log     *zap.Logger
}

func NewStateMachine(log *zap.Logger) *StateMachine {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateMachine{
		scenes: make(map[types.SceneID]Scene),
		log:    log,
	}
}

// NextID allocates an id for a scene that is about to be built.
func (sm *StateMachine) NextID() types.SceneID {
	sm.nextID++
	return sm.nextID
}

func (sm *StateMachine) Register(scene Scene) {
	sm.scenes[scene.ID()] = scene
}

// SetState exits the current scene and enters the one registered under id.
func (sm *StateMachine) SetState(id types.SceneID) error {
	next, ok := sm.scenes[id]
	if !ok {
		return fmt.Errorf("scene %d: %w", id, ErrUnknownScene)
	}
	if sm.current != nil {
		sm.log.Debug("scene exit", zap.Int("scene", int(sm.current.ID())))
		sm.current.Exit()
	}
	sm.current = next
	sm.log.Debug("scene enter", zap.Int("scene", int(id)))
	sm.current.Enter()
	return nil
}

// Update runs the current scene and applies the transition it returns. The
// swap happens only after the scene's update has returned.
func (sm *StateMachine) Update(in input.Snapshot, viewport utils.Rect, dt float64) error {
	if sm.current == nil {
		return nil
	}
	next := sm.current.Update(in, viewport, dt)
	switch next {
	case sm.current.ID():
		return nil
	case types.NullScene:
		return ErrClosed
	}
	return sm.SetState(next)
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Current returns the active scene, or nil before the first SetState.
func (sm *StateMachine) Current() Scene {
	return sm.current
}
