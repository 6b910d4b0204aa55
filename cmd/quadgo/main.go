package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/profile"
	"github.com/quadgo/engine/internal/config"
	"github.com/quadgo/engine/internal/core/ecs"
	coresys "github.com/quadgo/engine/internal/core/system"
	"github.com/quadgo/engine/internal/data"
	"github.com/quadgo/engine/internal/platform"
	"github.com/quadgo/engine/internal/render"
	"github.com/quadgo/engine/internal/scripting"
	"github.com/quadgo/engine/internal/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(title string, w, h int) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              quadgo  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mwindow:\033[0m %s \033[90m(%dx%d)\033[0m\n\n", title, w, h)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main loop ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/engine.toml"
	if p := os.Getenv("QUADGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Optional profiling
	if stop := startProfile(cfg.Profile); stop != nil {
		defer stop()
	}

	printBanner(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)

	// 4. World and components
	world := ecs.NewWorld(log, ecs.WithMaxEntities(cfg.ECS.MaxEntities))
	if err := system.RegisterComponents(world); err != nil {
		return fmt.Errorf("register components: %w", err)
	}
	window := platform.NewWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, world.Bus(), log)

	// 5. Scripts
	lua, err := scripting.NewEngine(cfg.Paths.Scripts, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer lua.Close()

	// 6. Systems, in any order; the runner sorts by phase.
	runner := coresys.NewRunner()
	runner.Register(system.NewInputSystem(window, world.Bus()))

	movement, err := system.NewMovementSystem(world, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("movement system: %w", err)
	}
	defer movement.Close()
	runner.Register(movement)

	colors, err := system.NewColorCycleSystem(world, nil)
	if err != nil {
		return fmt.Errorf("color cycle system: %w", err)
	}
	runner.Register(colors)

	scripts, err := system.NewScriptSystem(world, lua)
	if err != nil {
		return fmt.Errorf("script system: %w", err)
	}
	runner.Register(scripts)

	renderer, err := system.NewRenderSystem(world, render.NewRecorder(log))
	if err != nil {
		return fmt.Errorf("render system: %w", err)
	}
	runner.Register(renderer)
	runner.Register(system.NewCleanupSystem(world))

	// 7. Scene
	printSection("data")
	scene, err := data.LoadScene(cfg.Paths.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	spawned, err := scene.Spawn(world)
	if err != nil {
		return fmt.Errorf("spawn scene: %w", err)
	}
	printStat("entities", len(spawned))
	printStat("systems", len(world.Systems()))
	printStat("component types", world.ComponentTypes())
	fmt.Println()

	// Systems learn the initial size the same way they learn later ones.
	window.Resize(cfg.Window.Width, cfg.Window.Height)

	// 8. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	ticker := time.NewTicker(cfg.Loop.TickRate)
	defer ticker.Stop()

	printSection("running")
	printReady(fmt.Sprintf("game loop (tick: %s)", cfg.Loop.TickRate))
	fmt.Println()

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Loop.TickRate)
			if window.ShouldClose() {
				log.Info("window closed", zap.Uint64("frames", runner.Frames()))
				return nil
			}
			if cfg.Loop.Frames > 0 && runner.Frames() >= uint64(cfg.Loop.Frames) {
				log.Info("frame limit reached", zap.Uint64("frames", runner.Frames()))
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
}

// startProfile starts the profiler selected by cfg.Mode and returns its
// stop func, or nil when profiling is off.
func startProfile(cfg config.ProfileConfig) func() {
	var mode func(*profile.Profile)
	switch cfg.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return nil
	}
	return profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet).Stop
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
