package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-painter/api"
	api_i "github.com/beka-birhanu/vinom-painter/api/i"
	worldapi "github.com/beka-birhanu/vinom-painter/api/world"
	"github.com/beka-birhanu/vinom-painter/config"
	"github.com/beka-birhanu/vinom-painter/game"
	"github.com/beka-birhanu/vinom-painter/game/world"
	"github.com/beka-birhanu/vinom-painter/logger"
	"github.com/beka-birhanu/vinom-painter/service"
	"github.com/beka-birhanu/vinom-painter/service/i"
)

// Global variables for dependencies
var (
	appLogger       i.Logger
	layout          world.Layout
	painterWorld    *world.World
	env             *game.Environment
	worldController api_i.Controller
	httpServer      *http.Server
	runner          *service.Runner
)

// newLogger creates a stdout logger or exits.
func newLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [FATAL] creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initLayout() {
	var err error
	layout, err = config.LoadLayout(config.Envs.LayoutPath)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading layout: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Layout loaded: %dx%d", layout.Size, layout.Size))
}

func initWorld() {
	var err error
	painterWorld, err = world.New(layout,
		world.WithSeed(config.Envs.RandomSeed),
		world.WithCapacity(config.Envs.MaxCapacity),
	)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating world: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("World initialized:\n%s", painterWorld.Grid()))
}

func initEnvironment() {
	opts := game.DefaultOptions()
	opts.EmptyMoveCost = config.Envs.EmptyMoveCost
	opts.CarryMoveCost = config.Envs.CarryMoveCost
	opts.RegrantRewards = config.Envs.RegrantRewards
	opts.MaxEpisodes = config.Envs.MaxEpisodes

	var err error
	env, err = game.NewEnvironment(painterWorld, opts, newLogger("ENGINE", config.ColorCyan))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating environment: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Environment %s initialized", env.ID()))
}

func initWorldController() {
	var err error
	worldController, err = worldapi.NewController(env)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating world controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("World controller initialized")
}

func initHTTPServer() {
	router := api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		GinMode:     config.Envs.GinMode,
		Controllers: []api_i.Controller{worldController},
	})
	httpServer = router.Server()

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error(fmt.Sprintf("Render server stopped: %v", err))
		}
	}()
	appLogger.Info(fmt.Sprintf("Render API listening on %s", httpServer.Addr))
}

func initRunner() {
	var err error
	runner, err = service.NewRunner(env, service.ScriptedPolicy{}, newLogger("RUNNER", config.ColorMagenta), &service.RunnerOptions{
		StepDelay: time.Duration(config.Envs.StepDelayMS) * time.Millisecond,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating runner: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Runner initialized")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger = newLogger("APP", config.ColorGreen)

	initLayout()
	initWorld()
	initEnvironment()
	if config.Envs.RESTPort > 0 {
		initWorldController()
		initHTTPServer()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = httpServer.Shutdown(shutdownCtx)
		}()
	}
	initRunner()

	stats, err := runner.Run(ctx)
	if err != nil {
		appLogger.Warning(fmt.Sprintf("Experiment interrupted after %d episodes: %v", stats.Episode, err))
		return
	}

	appLogger.Info(fmt.Sprintf("Experiment finished: %d episodes, total score %.3f, average utility %.3f",
		stats.Episode, stats.TotalScore, stats.AverageUtility))
}
