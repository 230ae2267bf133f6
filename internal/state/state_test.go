package state

import (
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gravitar/internal/assets"
	"go-gravitar/internal/component"
	"go-gravitar/internal/config"
	"go-gravitar/internal/event"
	"go-gravitar/internal/input"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

const dt = 0.001

var (
	viewport = utils.Rect{W: config.ScreenWidth, H: config.ScreenHeight}
	center   = viewport.Center()
	planet   = color.RGBA{200, 120, 60, 255}
)

type stubTexture struct{}

func (stubTexture) Bounds() image.Rectangle { return image.Rect(0, 0, 64, 64) }

type stubSprites struct{}

func (stubSprites) Sprite(string, int) component.Renderable {
	return component.NewSprite(stubTexture{}, image.Rect(0, 0, 24, 16))
}

type jukebox struct {
	tracks []assets.TrackID
}

func (j *jukebox) Play(track assets.TrackID) { j.tracks = append(j.tracks, track) }

func newContext() (*Context, *jukebox) {
	audio := &jukebox{}
	return &Context{
		Bus:     event.NewDispatcher(nil),
		Sprites: stubSprites{},
		Audio:   audio,
		Player:  config.Defaults().Player,
	}, audio
}

// still keeps the player's heading: the pointer sits on the ship.
func still() *input.Static { return input.NewStatic(center) }

type fixture struct {
	ctx      *Context
	sm       *StateMachine
	solar    *SolarSystem
	assault  *PlanetAssault
	gameOver *Banner
	youWon   *Banner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx, _ := newContext()
	sm := NewStateMachine(nil)
	solarID, assaultID, gameOverID, youWonID := sm.NextID(), sm.NextID(), sm.NextID(), sm.NextID()

	f := &fixture{
		ctx:      ctx,
		sm:       sm,
		solar:    NewSolarSystem(ctx, solarID, gameOverID, youWonID),
		assault:  NewPlanetAssault(ctx, assaultID, solarID, gameOverID, viewport),
		gameOver: NewGameOver(ctx, gameOverID),
		youWon:   NewYouWon(ctx, youWonID),
	}
	for _, s := range []Scene{f.solar, f.assault, f.gameOver, f.youWon} {
		sm.Register(s)
	}
	require.NoError(t, sm.SetState(solarID))
	return f
}

func (f *fixture) enterAssault(t *testing.T) {
	t.Helper()
	f.solar.SpawnPlayer(center)
	f.solar.AddPlanet(center.Add(utils.Vec2{X: 30}), 20, planet, f.assault.ID())
	require.NoError(t, f.sm.Update(still(), viewport, dt))
	require.Equal(t, f.assault.ID(), f.sm.Current().ID())
}

type recordingScene struct {
	id   types.SceneID
	next types.SceneID
	log  *[]string
}

func (s *recordingScene) ID() types.SceneID  { return s.id }
func (s *recordingScene) Enter()             { *s.log = append(*s.log, "enter") }
func (s *recordingScene) Exit()              { *s.log = append(*s.log, "exit") }
func (s *recordingScene) Draw(*ebiten.Image) {}

func (s *recordingScene) Update(input.Snapshot, utils.Rect, float64) types.SceneID {
	*s.log = append(*s.log, "update")
	return s.next
}

func TestStateMachineNextID(t *testing.T) {
	sm := NewStateMachine(nil)
	assert.Equal(t, types.SceneID(1), sm.NextID())
	assert.Equal(t, types.SceneID(2), sm.NextID())
}

func TestStateMachineSwapsAfterUpdate(t *testing.T) {
	var log []string
	sm := NewStateMachine(nil)
	a := &recordingScene{id: 1, next: 2, log: &log}
	b := &recordingScene{id: 2, next: 2, log: &log}
	sm.Register(a)
	sm.Register(b)

	require.NoError(t, sm.SetState(1))
	require.NoError(t, sm.Update(still(), viewport, dt))
	assert.Equal(t, types.SceneID(2), sm.Current().ID())
	assert.Equal(t, []string{"enter", "update", "exit", "enter"}, log)

	require.NoError(t, sm.Update(still(), viewport, dt))
	assert.Equal(t, []string{"enter", "update", "exit", "enter", "update"}, log)
}

func TestStateMachineUnknownScene(t *testing.T) {
	var log []string
	sm := NewStateMachine(nil)
	sm.Register(&recordingScene{id: 1, next: 7, log: &log})

	assert.ErrorIs(t, sm.SetState(3), ErrUnknownScene)
	require.NoError(t, sm.SetState(1))
	assert.ErrorIs(t, sm.Update(still(), viewport, dt), ErrUnknownScene)
	assert.Equal(t, types.SceneID(1), sm.Current().ID())
}

func TestStateMachineClose(t *testing.T) {
	var log []string
	sm := NewStateMachine(nil)
	sm.Register(&recordingScene{id: 1, next: types.NullScene, log: &log})
	require.NoError(t, sm.SetState(1))

	assert.ErrorIs(t, sm.Update(still(), viewport, dt), ErrClosed)
}

func TestStateMachineWithoutScene(t *testing.T) {
	sm := NewStateMachine(nil)
	assert.NoError(t, sm.Update(still(), viewport, dt))
	assert.Nil(t, sm.Current())
}

func TestCurtainWaitsBeforeConfirm(t *testing.T) {
	ctx, audio := newContext()
	c := NewCurtain(ctx, 1, 2)
	c.Enter()
	assert.Equal(t, []assets.TrackID{assets.TrackMainTheme}, audio.tracks)

	confirm := input.NewStatic(center, input.Confirm)
	assert.Equal(t, types.SceneID(1), c.Update(confirm, viewport, config.CurtainDelay/2))
	assert.Equal(t, types.SceneID(1), c.Update(still(), viewport, config.CurtainDelay))
	assert.Equal(t, types.SceneID(2), c.Update(confirm, viewport, dt))

	c.Enter()
	assert.Equal(t, types.SceneID(1), c.Update(confirm, viewport, dt))
}

func TestBannersStay(t *testing.T) {
	ctx, audio := newContext()
	over := NewGameOver(ctx, 3)
	won := NewYouWon(ctx, 4)

	over.Enter()
	won.Enter()
	assert.Equal(t, []assets.TrackID{assets.TrackGameOver, assets.TrackMainTheme}, audio.tracks)
	assert.Equal(t, "GAME OVER", over.Title())
	assert.Equal(t, "YOU WON", won.Title())

	confirm := input.NewStatic(center, input.Confirm)
	for range 10 {
		assert.Equal(t, types.SceneID(3), over.Update(confirm, viewport, 1))
		assert.Equal(t, types.SceneID(4), won.Update(confirm, viewport, 1))
	}
}

func TestSolarSystemPortalTransfersPlayer(t *testing.T) {
	f := newFixture(t)
	f.assault.AddBunker(utils.Vec2{X: 100, Y: 100})
	f.enterAssault(t)

	solarPlayers := f.solar.ECS().View(f.solar.ECS().Players).Entities()
	assaultPlayers := f.assault.ECS().View(f.assault.ECS().Players).Entities()
	require.Len(t, solarPlayers, 1)
	require.Len(t, assaultPlayers, 1)

	src, dst := solarPlayers[0], assaultPlayers[0]
	se, de := f.solar.ECS(), f.assault.ECS()
	assert.Equal(t, se.Healths.MustGet(src).Value, de.Healths.MustGet(dst).Value)
	assert.Equal(t, se.Fuels.MustGet(src).Value, de.Fuels.MustGet(dst).Value)
	assert.Equal(t, center, de.Renderables.MustGet(dst).Position())
	assert.False(t, de.SceneRefs.Has(dst))

	require.NoError(t, f.sm.Update(still(), viewport, dt))
	assert.Equal(t, f.assault.ID(), f.sm.Current().ID())
}

func TestPlanetAssaultClearedReturnsToParent(t *testing.T) {
	f := newFixture(t)
	bunker := f.assault.AddBunker(utils.Vec2{X: 100, Y: 100})
	f.enterAssault(t)

	exited, destroyed := 0, 0
	event.Subscribe(f.ctx.Bus, func(event.PlanetExited) { exited++ })
	event.Subscribe(f.ctx.Bus, func(event.PlanetDestroyed) { destroyed++ })

	f.assault.ECS().Healths.MustGet(bunker).Value = 0
	require.NoError(t, f.sm.Update(still(), viewport, dt))

	assert.Equal(t, f.solar.ID(), f.sm.Current().ID())
	assert.Equal(t, 1, exited)
	assert.Equal(t, 1, destroyed)
	assert.Zero(t, f.solar.ECS().Planets.Len())
	assert.Equal(t, 1, f.solar.ECS().Players.Len())

	player, ok := f.solar.ECS().View(f.solar.ECS().Players).First()
	require.True(t, ok)
	assert.Equal(t, center, f.solar.ECS().Renderables.MustGet(player).Position())

	require.NoError(t, f.sm.Update(still(), viewport, dt))
	assert.Equal(t, f.youWon.ID(), f.sm.Current().ID())
}

func TestPlanetAssaultLeavingViewportKeepsPlanet(t *testing.T) {
	f := newFixture(t)
	f.assault.AddBunker(utils.Vec2{X: 100, Y: 100})
	f.enterAssault(t)

	exited, destroyed := 0, 0
	event.Subscribe(f.ctx.Bus, func(event.PlanetExited) { exited++ })
	event.Subscribe(f.ctx.Bus, func(event.PlanetDestroyed) { destroyed++ })

	ae := f.assault.ECS()
	player, ok := ae.View(ae.Players).First()
	require.True(t, ok)
	ae.Renderables.MustGet(player).SetPosition(utils.Vec2{X: -50, Y: 300})

	require.NoError(t, f.sm.Update(still(), viewport, dt))
	assert.Equal(t, f.solar.ID(), f.sm.Current().ID())
	assert.Equal(t, 1, exited)
	assert.Zero(t, destroyed)
	assert.Equal(t, 1, f.solar.ECS().Planets.Len())
	assert.Equal(t, 1, ae.Bunkers.Len())
}

func TestPlanetAssaultGameOver(t *testing.T) {
	f := newFixture(t)
	f.assault.AddBunker(utils.Vec2{X: 100, Y: 100})
	f.enterAssault(t)

	ae := f.assault.ECS()
	player, ok := ae.View(ae.Players).First()
	require.True(t, ok)
	ae.Fuels.MustGet(player).Value = 0

	require.NoError(t, f.sm.Update(still(), viewport, dt))
	assert.Equal(t, f.gameOver.ID(), f.sm.Current().ID())
	assert.Zero(t, ae.Players.Len())
}

func TestSolarSystemGameOver(t *testing.T) {
	f := newFixture(t)
	f.solar.AddPlanet(utils.Vec2{X: 100, Y: 100}, 20, planet, f.assault.ID())
	player := f.solar.SpawnPlayer(center)
	f.solar.ECS().Healths.MustGet(player).Value = 0

	require.NoError(t, f.sm.Update(still(), viewport, dt))
	assert.Equal(t, f.gameOver.ID(), f.sm.Current().ID())
}

func TestSolarSystemWithoutPlanetsIsWon(t *testing.T) {
	f := newFixture(t)
	f.solar.SpawnPlayer(center)

	require.NoError(t, f.sm.Update(still(), viewport, dt))
	assert.Equal(t, f.youWon.ID(), f.sm.Current().ID())
}

func TestSolarSystemReport(t *testing.T) {
	f := newFixture(t)
	f.solar.AddPlanet(utils.Vec2{X: 100, Y: 100}, 20, planet, f.assault.ID())
	f.solar.SpawnPlayer(center)

	require.NoError(t, f.sm.Update(still(), viewport, dt))
	assert.Contains(t, f.solar.Report(), "health: 3")
}

func TestReceivePlayerReplacesLocalPlayer(t *testing.T) {
	f := newFixture(t)
	f.assault.AddBunker(utils.Vec2{X: 100, Y: 100})
	stale := factoryPlayer(f.assault)

	se := f.solar.ECS()
	src := f.solar.SpawnPlayer(utils.Vec2{X: 10, Y: 10})
	bunker := se.Create()
	se.TractorBeams.Set(src, component.TractorBeam{Entity: bunker})
	se.Healths.MustGet(src).Value = 2

	event.Dispatch(f.ctx.Bus, event.PlanetEntered{Scene: f.assault.ID(), Source: se, Viewport: viewport})

	ae := f.assault.ECS()
	assert.False(t, ae.Alive(stale))
	players := ae.View(ae.Players).Entities()
	require.Len(t, players, 1)
	assert.Equal(t, 2, ae.Healths.MustGet(players[0]).Value)
	assert.False(t, ae.TractorBeams.Has(players[0]))
	assert.Equal(t, center, ae.Renderables.MustGet(players[0]).Position())
}

func TestMessagesForOtherScenesAreIgnored(t *testing.T) {
	f := newFixture(t)
	f.solar.AddPlanet(utils.Vec2{X: 100, Y: 100}, 20, planet, f.assault.ID())
	source := f.solar.ECS()
	f.solar.SpawnPlayer(center)

	event.Dispatch(f.ctx.Bus, event.PlanetEntered{Scene: 99, Source: source, Viewport: viewport})
	event.Dispatch(f.ctx.Bus, event.PlanetDestroyed{Scene: 99})

	assert.Zero(t, f.assault.ECS().Players.Len())
	assert.Equal(t, 1, f.solar.ECS().Planets.Len())
}

func TestDisposeUnsubscribes(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, 1, event.Handlers[event.PlanetEntered](f.ctx.Bus))
	require.Equal(t, 1, event.Handlers[event.PlanetExited](f.ctx.Bus))

	f.assault.Dispose()
	f.solar.Dispose()

	assert.Zero(t, event.Handlers[event.PlanetEntered](f.ctx.Bus))
	assert.Zero(t, event.Handlers[event.PlanetExited](f.ctx.Bus))
	assert.Zero(t, event.Handlers[event.PlanetDestroyed](f.ctx.Bus))
}

func factoryPlayer(s *PlanetAssault) types.EntityID {
	ecs := s.ECS()
	id := ecs.Create()
	ecs.Players.Add(id)
	ecs.Healths.Set(id, component.Health{Value: 1})
	ecs.Fuels.Set(id, component.Fuel{Value: 1})
	return id
}
