package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/towerengine/pkg/app"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/game"
	"github.com/gonewx/towerengine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/settings.toml"
	if p := os.Getenv("TOWERENGINE_CONFIG"); p != "" {
		cfgPath = p
	}
	flag.StringVar(&cfgPath, "config", cfgPath, "settings file (TOML)")
	level := flag.Int("level", 0, "level to start (1-8), 0 continues from saved progress")
	reset := flag.Bool("reset-progress", false, "start over from a new save")
	flag.Parse()

	// 1. 设置
	settings, err := config.LoadSettingsOrDefault(cfgPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// 2. 日志
	log, err := utils.NewLogger(settings.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. 玩家进度
	progress, err := openProgress(settings.Save, log)
	if err != nil {
		log.Warn("progress unavailable, using defaults", zap.Error(err))
	}
	if *reset && progress != nil {
		progress.Reset()
		if err := progress.Save(); err != nil {
			log.Warn("save reset progress failed", zap.Error(err))
		}
	}

	// 4. 宿主
	a, err := app.NewApp(app.Config{Level: *level}, settings, progress, log)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(settings.Window.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// openProgress 打开存档，禁用或失败时退回到仅内存的进度
func openProgress(cfg config.SaveConfig, log *zap.Logger) (*game.ProgressManager, error) {
	logger := log.Named("progress")
	if !cfg.Enabled {
		return game.NewProgressManager(nil, logger)
	}

	manager, err := gdata.Open(gdata.Config{AppName: cfg.AppName})
	if err != nil {
		pm, _ := game.NewProgressManager(nil, logger)
		return pm, fmt.Errorf("open save data: %w", err)
	}
	return game.NewProgressManager(manager, logger)
}
