package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/automoto/sensorbox/assets"
	"github.com/automoto/sensorbox/config"
	"github.com/automoto/sensorbox/fonts"
	"github.com/automoto/sensorbox/scenes"
	"github.com/automoto/sensorbox/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(arena *assets.Arena) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(arena),
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if err := systems.SaveSettings(systems.CurrentSettings()); err != nil {
			zap.L().Warn("could not save settings", zap.Error(err))
		}
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Window.Width, config.C.Window.Height)
	return config.C.Window.Width, config.C.Window.Height
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (optional)")
	debug := flag.Bool("debug", true, "Draw collider outlines and labels")
	arenaEnabled := flag.Bool("arena", false, "Load the extra colliders from the arena map")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	flag.Parse()

	if *configPath != "" {
		if _, err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *logLevel != "" {
		config.C.Logging.Level = *logLevel
	}

	logger, err := newLogger(config.C.Logging)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Window.Width, config.C.Window.Height)
	ebiten.SetWindowTitle(config.C.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(int(config.C.Physics.TicksPerSecond))

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(config.C.Window.Title); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	// Explicit flags win over saved settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			config.C.Debug.Render = *debug
		case "arena":
			config.C.Arena.Enabled = *arenaEnabled
		}
	})

	var arena *assets.Arena
	if config.C.Arena.Enabled {
		arena, err = assets.NewArenaLoader().LoadArena(config.C.Arena.Map)
		if err != nil {
			log.Fatalf("Failed to load arena: %v", err)
		}
	}

	if err := ebiten.RunGame(NewGame(arena)); err != nil {
		log.Fatal(err)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch strings.ToLower(cfg.Format) {
	case "json":
		zapCfg = zap.NewProductionConfig()
	default:
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stdout"}

	return zapCfg.Build()
}
