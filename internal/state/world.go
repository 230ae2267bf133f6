// internal/state/world.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-gravitar/internal/assets"
	"go-gravitar/internal/config"
	"go-gravitar/internal/entity"
	"go-gravitar/internal/event"
	"go-gravitar/internal/factory"
	"go-gravitar/internal/input"
	"go-gravitar/internal/system"
	"go-gravitar/internal/types"
	"go-gravitar/internal/ui"
	"go-gravitar/internal/utils"
	"go-gravitar/pkg/render"
)

const (
	reportY      = 18
	indicatorPad = 12
)

// Jukebox plays the soundtrack a scene asks for.
type Jukebox interface {
	Play(track assets.TrackID)
}

// Context carries the collaborators shared by every scene.
type Context struct {
	Bus      *event.Dispatcher
	Sprites  factory.SpriteSource
	Fonts    *assets.Fonts
	Audio    Jukebox
	Renderer *render.Renderer
	Player   config.PlayerConfig
	Log      *zap.Logger
}

func (c *Context) play(track assets.TrackID) {
	if c.Audio != nil {
		c.Audio.Play(track)
	}
}

func (c *Context) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}

// world is the part shared by the scenes that simulate entities: one store,
// one system runner and the HUD drawn over them.
type world struct {
	id     types.SceneID
	ctx    *Context
	ecs    *entity.ECS
	runner *system.Runner
	subs   []event.Subscription

	report    string
	label     *ui.Label
	indicator *ui.PlayerIndicator
	players   *entity.Group
}

func newWorld(ctx *Context, id types.SceneID) world {
	ecs := entity.NewECS()
	return world{
		id:        id,
		ctx:       ctx,
		ecs:       ecs,
		label:     ui.NewLabel(config.ScreenWidth/2, reportY, ctx.Fonts.Face(assets.FontMechanical), config.ReportColor),
		indicator: ui.NewPlayerIndicator(indicatorPad, indicatorPad, ctx.Player.Health, ctx.Player.Fuel),
		players:   ecs.Group(ecs.Players, ecs.Healths, ecs.Fuels),
	}
}

func (w *world) ID() types.SceneID { return w.id }

// ECS exposes the scene's store to the code that populates it.
func (w *world) ECS() *entity.ECS { return w.ecs }

// Report is the HUD line produced by the last update.
func (w *world) Report() string { return w.report }

func (w *world) Exit() {}

// Dispose drops the scene's bus subscriptions.
func (w *world) Dispose() {
	for _, sub := range w.subs {
		w.ctx.Bus.Unsubscribe(sub)
	}
	w.subs = nil
}

func (w *world) subscribe(subs ...event.Subscription) {
	w.subs = append(w.subs, subs...)
}

func (w *world) tick(in input.Snapshot, viewport utils.Rect, dt float64) *system.Frame {
	f := system.NewFrame(in, viewport, dt)
	w.runner.Tick(f)
	w.report = f.Report
	w.label.X = viewport.Center().X
	return f
}

// receivePlayer replaces the local player with clones of the players of
// source, placed at the center of the viewport.
func (w *world) receivePlayer(source *entity.ECS, viewport utils.Rect) {
	w.ecs.Destroy(w.ecs.View(w.ecs.Players).Entities()...)

	for _, src := range source.View(source.Players).Entities() {
		id := w.ecs.CreateFrom(src, source)
		if rend := w.ecs.Renderables.Get(id); rend != nil {
			rend.SetPosition(viewport.Center())
		}
		w.ctx.logger().Debug("player transferred",
			zap.Int("scene", int(w.id)),
			zap.Uint64("entity", uint64(id)))
	}
}

func (w *world) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w.ctx.Renderer.DrawWorld(screen, w.ecs)
	w.label.Draw(screen, w.report)
	if id, ok := w.players.First(); ok {
		w.indicator.Draw(screen, w.ecs.Healths.MustGet(id).Value, w.ecs.Fuels.MustGet(id).Value)
	}
}
