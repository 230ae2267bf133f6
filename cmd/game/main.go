// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go-gravitar/internal/app"
	"go-gravitar/internal/assets"
	"go-gravitar/internal/config"
	"go-gravitar/internal/input"
	"go-gravitar/internal/logging"
	"go-gravitar/internal/state"
	"go-gravitar/internal/utils"
	"go-gravitar/pkg/render"
)

type AppGame struct {
	game           *app.Game
	input          *input.Ebiten
	viewport       utils.Rect
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	err := a.game.Update(a.input, a.viewport, deltaTime)
	if errors.Is(err, state.ErrClosed) {
		return ebiten.Termination
	}
	return err
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.game.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.viewport.W), int(a.viewport.H)
}

func main() {
	configPath := flag.String("config", "gravitar.toml", "path to the TOML config file")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// No logger yet.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	if *pprofAddr != "" {
		go func() {
			log.Warn("pprof stopped", zap.Error(http.ListenAndServe(*pprofAddr, nil)))
		}()
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("game stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	controls, err := input.NewEbiten(cfg.Controls)
	if err != nil {
		return err
	}

	var (
		manifest *assets.Manifest
		fonts    *assets.Fonts
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		manifest, err = assets.DefaultManifest()
		return err
	})
	g.Go(func() (err error) {
		fonts, err = assets.LoadFonts()
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Textures are drawn here, on the main goroutine.
	sheets, err := assets.BuildAtlas(manifest, log)
	if err != nil {
		return err
	}

	audio := assets.NewAudioManager(cfg.Audio, log)
	if err := audio.Initialize(); err != nil {
		log.Warn("audio disabled", zap.Error(err))
	}
	defer audio.Close()

	game, err := app.NewGame(cfg, app.Resources{
		Sprites:  sheets,
		Fonts:    fonts,
		Audio:    audio,
		Renderer: render.NewRenderer(render.Palette{
			HitCircle: config.HitBoxColor,
			HitBox:    render.DarkenColor(config.HitBoxColor),
			Tractor:   config.TractorColor,
		}, cfg.Debug),
	}, log)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	return ebiten.RunGame(&AppGame{
		game:           game,
		input:          controls,
		viewport:       utils.Rect{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)},
		lastUpdateTime: time.Now(),
	})
}
