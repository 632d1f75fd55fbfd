// Command towertui 在终端中运行关卡
//
// 用法:
//
//	towertui -level 3 -config config/settings.toml
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/game"
	"github.com/gonewx/towerengine/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "config/settings.toml", "settings file (TOML)")
	level := flag.Int("level", 1, "level to start (1-8)")
	logFile := flag.String("log", "", "log file (empty disables logging)")
	autopilot := flag.Bool("autopilot", false, "start with automatic building enabled")
	flag.Parse()

	settings, err := config.LoadSettingsOrDefault(*cfgPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// 终端被界面占用，日志只能写文件
	log := zap.NewNop()
	if *logFile != "" {
		logCfg := settings.Logging
		logCfg.File = *logFile
		if log, err = utils.NewLogger(logCfg); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	defer log.Sync()

	load := func(n int) (*config.LevelConfig, error) {
		return config.LoadLevelNumber(settings.Levels.Dir, n)
	}
	t, err := newTUI(*level, settings.Step(), load, log.Named("tui"),
		game.WithLogger(log),
		game.WithRules(settings.Simulation.Rules),
		game.WithSeed(settings.Simulation.Seed),
	)
	if err != nil {
		return err
	}
	if *autopilot {
		t.pilot = game.NewAutopilot()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	loop(screen, t, time.Duration(float64(time.Second)/float64(settings.Window.TPS)))
	return nil
}

// loop 主循环：按键事件与定时推进交替处理
func loop(screen tcell.Screen, t *tui, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	w, h := t.canvasSize()
	c := newCanvas(w, h)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.handleKey(ev.Key(), ev.Rune()) {
					return
				}
				if nw, nh := t.canvasSize(); nw != w || nh != h {
					w, h = nw, nh
					c = newCanvas(w, h)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			t.tick()
			t.draw(c)
			c.show(screen)
		}
	}
}
