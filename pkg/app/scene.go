package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene 宿主中的一个画面（关卡、暂停等）
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 按经过的时间（秒）更新场景
	Update(deltaTime float64)

	// Draw 绘制场景
	Draw(screen *ebiten.Image)
}

// SceneFactory 创建指定编号的关卡场景
type SceneFactory func(level int) (Scene, error)

// SceneManager 管理当前活动的场景，同一时刻只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	logger       *zap.Logger
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager(logger *zap.Logger) *SceneManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SceneManager{logger: logger}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// LoadLevel 创建并切换到指定关卡
// 创建失败时保持当前场景不变
func (sm *SceneManager) LoadLevel(level int) error {
	if sm.sceneFactory == nil {
		return errNoSceneFactory
	}

	scene, err := sm.sceneFactory(level)
	if err != nil {
		sm.logger.Error("failed to create level scene", zap.Int("level", level), zap.Error(err))
		return err
	}
	sm.SwitchTo(scene)
	sm.logger.Info("level loaded", zap.Int("level", level))
	return nil
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
