// internal/state/curtain.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-gravitar/internal/assets"
	"go-gravitar/internal/config"
	"go-gravitar/internal/input"
	"go-gravitar/internal/types"
	"go-gravitar/internal/ui"
	"go-gravitar/internal/utils"
)

var (
	_ Scene = (*Curtain)(nil)
	_ Scene = (*Banner)(nil)
)

// titleScreen is the title text with a blinking hint under it.
type titleScreen struct {
	id    types.SceneID
	ctx   *Context
	title string
	label *ui.Label
	hint  *ui.BlinkingLabel
}

func newTitleScreen(ctx *Context, id types.SceneID, title, hint string) titleScreen {
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	return titleScreen{
		id:    id,
		ctx:   ctx,
		title: title,
		label: ui.NewLabel(w/2, h/3.14, ctx.Fonts.Face(assets.FontTitle), config.TitleColor),
		hint:  ui.NewBlinkingLabel(w/2, h/1.2, ctx.Fonts.Face(assets.FontLabel), config.LabelColor, hint, config.CurtainBlinkRate),
	}
}

func (t *titleScreen) ID() types.SceneID { return t.id }

func (t *titleScreen) Exit() {}

func (t *titleScreen) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	t.label.Draw(screen, t.title)
	t.hint.Draw(screen)
}

// Curtain is the title screen. Confirm starts the game once the screen has
// been shown for config.CurtainDelay.
type Curtain struct {
	titleScreen
	next    types.SceneID
	elapsed float64
}

func NewCurtain(ctx *Context, id, next types.SceneID) *Curtain {
	return &Curtain{
		titleScreen: newTitleScreen(ctx, id, "GRAVITAR", "press space to start"),
		next:        next,
	}
}

func (c *Curtain) Enter() {
	c.elapsed = 0
	c.hint.Reset()
	c.ctx.play(assets.TrackMainTheme)
}

func (c *Curtain) Update(in input.Snapshot, viewport utils.Rect, dt float64) types.SceneID {
	c.elapsed += dt
	c.hint.Update(dt)
	if c.elapsed >= config.CurtainDelay && in.Pressed(input.Confirm) {
		return c.next
	}
	return c.id
}

// Banner is a terminal screen: it never leaves on its own.
type Banner struct {
	titleScreen
	track assets.TrackID
}

func NewGameOver(ctx *Context, id types.SceneID) *Banner {
	return &Banner{
		titleScreen: newTitleScreen(ctx, id, "GAME OVER", "press esc to quit"),
		track:       assets.TrackGameOver,
	}
}

func NewYouWon(ctx *Context, id types.SceneID) *Banner {
	return &Banner{
		titleScreen: newTitleScreen(ctx, id, "YOU WON", "press esc to quit"),
		track:       assets.TrackMainTheme,
	}
}

func (b *Banner) Title() string { return b.title }

func (b *Banner) Enter() {
	b.hint.Reset()
	b.ctx.play(b.track)
}

func (b *Banner) Update(_ input.Snapshot, _ utils.Rect, dt float64) types.SceneID {
	b.hint.Update(dt)
	return b.id
}
