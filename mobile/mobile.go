//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.towerengine -o build/android/towerengine.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/TowerEngine.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/gonewx/towerengine/pkg/app"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/game"
	"github.com/gonewx/towerengine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

func init() {
	// 移动端没有设置文件，使用默认设置和内置关卡
	settings := config.DefaultSettings()

	logger, err := utils.NewLogger(settings.Logging)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}

	var progress *game.ProgressManager
	if manager, err := gdata.Open(gdata.Config{AppName: settings.Save.AppName}); err != nil {
		logger.Warn("save data unavailable, progress will not persist", zap.Error(err))
	} else if progress, err = game.NewProgressManager(manager, logger.Named("progress")); err != nil {
		logger.Warn("progress load failed, using defaults", zap.Error(err))
	}

	gameApp, err := app.NewApp(app.Config{}, settings, progress, logger)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
