// Package app 提供桌面宿主的核心包装器
//
// 该包把模拟引擎包装成 ebiten.Game：读取输入、按固定步长推进、绘制快照。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"image/color"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/game"
	"github.com/gonewx/towerengine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

var errNoSceneFactory = errors.New("scene factory is not set")

// Config 定义应用启动配置
type Config struct {
	// Level 指定要加载的关卡，0 时使用设置中的起始关卡或存档进度
	Level int
}

// App 是宿主的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *SceneManager
	settings     *config.Settings
	progress     *game.ProgressManager
	logger       *zap.Logger
}

// NewApp 创建并初始化应用
//
// 参数：
//   - cfg: 启动配置
//   - settings: 宿主设置
//   - progress: 玩家进度，为 nil 时只在内存中记录
//   - logger: 日志器
func NewApp(cfg Config, settings *config.Settings, progress *game.ProgressManager, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if progress == nil {
		progress, _ = game.NewProgressManager(nil, logger.Named("progress"))
	}

	a := &App{
		sceneManager: NewSceneManager(logger.Named("scene")),
		settings:     settings,
		progress:     progress,
		logger:       logger.Named("app"),
	}
	a.sceneManager.SetSceneFactory(a.newBattleScene)

	level := StartLevel(cfg, settings, progress)
	a.logger.Info("starting level", zap.Int("level", level))
	if err := a.sceneManager.LoadLevel(level); err != nil {
		return nil, err
	}
	return a, nil
}

// StartLevel 决定启动关卡：命令行参数 > 设置 > 存档进度
func StartLevel(cfg Config, settings *config.Settings, progress *game.ProgressManager) int {
	switch {
	case cfg.Level > 0:
		return config.NormalizeLevelNumber(cfg.Level)
	case settings.Levels.Start > 0:
		return config.NormalizeLevelNumber(settings.Levels.Start)
	default:
		return config.NormalizeLevelNumber(progress.UnlockedLevel())
	}
}

// newBattleScene 场景工厂
func (a *App) newBattleScene(n int) (Scene, error) {
	level, err := config.LoadLevelNumber(a.settings.Levels.Dir, n)
	if err != nil {
		return nil, err
	}
	sim := a.settings.Simulation
	return NewBattleScene(n, level, a.settings.Step(), a.sceneManager, a.progress, a.logger,
		game.WithRules(sim.Rules),
		game.WithSeed(sim.Seed),
	), nil
}

// Update 更新逻辑，每个 tick 调用一次
func (a *App) Update() error {
	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制画面，每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.Window.Width, a.settings.Window.Height
}
