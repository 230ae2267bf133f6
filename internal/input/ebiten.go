package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-gravitar/internal/config"
	"go-gravitar/internal/utils"
)

var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// ParseKey resolves a key name as printed by ebiten.Key.String, ignoring case.
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// Ebiten polls the live keyboard and mouse state. Fire is the left mouse
// button; every other action is bound to a key.
type Ebiten struct {
	bindings map[Action]ebiten.Key
}

func NewEbiten(controls config.ControlsConfig) (*Ebiten, error) {
	names := map[Action]string{
		Left:        controls.Left,
		Right:       controls.Right,
		Thrust:      controls.Thrust,
		Reverse:     controls.Reverse,
		Confirm:     controls.Confirm,
		Tractor:     controls.Tractor,
		ToggleAudio: controls.ToggleAudio,
		Quit:        controls.Quit,
	}
	in := &Ebiten{bindings: make(map[Action]ebiten.Key, len(names))}
	for action, name := range names {
		key, err := ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", action, err)
		}
		in.bindings[action] = key
	}
	return in, nil
}

func (in *Ebiten) Pressed(a Action) bool {
	if a == Fire {
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
	key, ok := in.bindings[a]
	return ok && ebiten.IsKeyPressed(key)
}

// JustPressed reports a key going down during the current tick.
func (in *Ebiten) JustPressed(a Action) bool {
	if a == Fire {
		return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}
	key, ok := in.bindings[a]
	return ok && inpututil.IsKeyJustPressed(key)
}

func (in *Ebiten) Cursor() utils.Vec2 {
	x, y := ebiten.CursorPosition()
	return utils.Vec2{X: float64(x), Y: float64(y)}
}
