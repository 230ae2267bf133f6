// internal/app/game.go
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-gravitar/internal/assets"
	"go-gravitar/internal/config"
	"go-gravitar/internal/event"
	"go-gravitar/internal/factory"
	"go-gravitar/internal/input"
	"go-gravitar/internal/state"
	"go-gravitar/internal/ui"
	"go-gravitar/internal/utils"
	"go-gravitar/pkg/render"
)

const terrainRotation = 45

var planetColors = []color.RGBA{
	{200, 120, 60, 255},
	{90, 160, 220, 255},
	{170, 90, 200, 255},
	{110, 190, 100, 255},
	{220, 200, 90, 255},
}

// Soundtrack is the audio the game drives: scenes pick the track, the
// player mutes it.
type Soundtrack interface {
	state.Jukebox
	Toggle() bool
	Enabled() bool
}

// Triggers reports actions that went down during the current tick only.
type Triggers interface {
	JustPressed(a input.Action) bool
}

// Resources are the loaded assets and output devices the game draws on.
type Resources struct {
	Sprites  factory.SpriteSource
	Fonts    *assets.Fonts
	Audio    Soundtrack
	Renderer *render.Renderer
}

// Game is the application context: the bus, the seeded PRNG and every scene
// of one run.
type Game struct {
	Bus    *event.Dispatcher
	RNG    *utils.PRNGService
	States *state.StateMachine

	Curtain  *state.Curtain
	Solar    *state.SolarSystem
	Assaults []*state.PlanetAssault
	GameOver *state.Banner
	YouWon   *state.Banner

	audio     Soundtrack
	indicator *ui.AudioIndicator
	log       *zap.Logger
}

// NewGame builds the scene graph of a run and enters the curtain.
func NewGame(cfg *config.Config, res Resources, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		Bus:    event.NewDispatcher(log),
		RNG:    utils.NewPRNGService(cfg.World.Seed),
		States: state.NewStateMachine(log),
		audio:  res.Audio,
		log:    log,
	}
	log.Info("new game", zap.Int64("seed", g.RNG.Seed()))

	ctx := &state.Context{
		Bus:      g.Bus,
		Sprites:  res.Sprites,
		Fonts:    res.Fonts,
		Renderer: res.Renderer,
		Player:   cfg.Player,
		Log:      log,
	}
	if res.Audio != nil {
		ctx.Audio = res.Audio
	}

	viewport := utils.Rect{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}
	curtainID, solarID := g.States.NextID(), g.States.NextID()
	gameOverID, youWonID := g.States.NextID(), g.States.NextID()

	g.Curtain = state.NewCurtain(ctx, curtainID, solarID)
	g.GameOver = state.NewGameOver(ctx, gameOverID)
	g.YouWon = state.NewYouWon(ctx, youWonID)
	g.Solar = state.NewSolarSystem(ctx, solarID, gameOverID, youWonID)
	g.Solar.SpawnPlayer(viewport.Center())

	spawn := []Circle{{Center: viewport.Center(), Radius: config.SpawnKeepOut}}
	planets, err := PlaceCircles(g.RNG, viewport.Inset(config.PlacementEdgeMargin), cfg.World.Planets,
		Between(g.RNG, config.PlanetRadiusMin, config.PlanetRadiusMax), spawn, cfg.World.PlacementAttempts)
	if err != nil {
		return nil, fmt.Errorf("place planets: %w", err)
	}

	for i, p := range planets {
		assault := state.NewPlanetAssault(ctx, g.States.NextID(), solarID, gameOverID, viewport)
		if err := g.populate(assault, viewport, spawn, cfg.World); err != nil {
			return nil, fmt.Errorf("planet %d: %w", i+1, err)
		}
		g.Solar.AddPlanet(p.Center, p.Radius, planetColors[i%len(planetColors)], assault.ID())
		g.Assaults = append(g.Assaults, assault)
		g.States.Register(assault)
	}

	g.States.Register(g.Curtain)
	g.States.Register(g.Solar)
	g.States.Register(g.GameOver)
	g.States.Register(g.YouWon)

	g.indicator = ui.NewAudioIndicator(viewport.W-28, 14, res.Fonts.Face(assets.FontLabel))

	if err := g.States.SetState(curtainID); err != nil {
		return nil, err
	}
	return g, nil
}

// populate places the bunkers and terrain of one planet above its ground,
// away from where the player arrives.
func (g *Game) populate(assault *state.PlanetAssault, viewport utils.Rect, spawn []Circle, world config.WorldConfig) error {
	sky := utils.Rect{X: viewport.X, Y: viewport.Y, W: viewport.W, H: viewport.H - config.GroundHeight}
	sky = sky.Inset(config.PlacementEdgeMargin)

	bunkers, err := PlaceCircles(g.RNG, sky, world.BunkersPerPlanet, Fixed(config.BunkerRadius), spawn, world.PlacementAttempts)
	if err != nil {
		return fmt.Errorf("place bunkers: %w", err)
	}
	taken := append(append([]Circle(nil), spawn...), bunkers...)
	terrain, err := PlaceCircles(g.RNG, sky, world.TerrainPerPlanet, Fixed(config.TerrainRadius), taken, world.PlacementAttempts)
	if err != nil {
		return fmt.Errorf("place terrain: %w", err)
	}

	for _, b := range bunkers {
		assault.AddBunker(b.Center)
	}
	for _, t := range terrain {
		assault.AddTerrain(t.Center, terrainRotation)
	}
	return nil
}

// Update handles the global controls, then runs the active scene.
func (g *Game) Update(in input.Snapshot, viewport utils.Rect, dt float64) error {
	if t, ok := in.(Triggers); ok {
		if t.JustPressed(input.Quit) {
			return state.ErrClosed
		}
		if t.JustPressed(input.ToggleAudio) {
			g.ToggleAudio()
		}
	}
	return g.States.Update(in, viewport, dt)
}

func (g *Game) ToggleAudio() {
	if g.audio == nil {
		return
	}
	g.audio.Toggle()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.States.Draw(screen)
	g.indicator.Draw(screen, g.audio != nil && g.audio.Enabled())
}

// Close drops every scene subscription.
func (g *Game) Close() {
	g.Solar.Dispose()
	for _, a := range g.Assaults {
		a.Dispose()
	}
}
