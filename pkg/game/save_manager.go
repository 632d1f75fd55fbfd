package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// 进度解锁规则
const (
	// ShovelUnlockLevel 解锁关卡超过此值后可使用铲子
	ShovelUnlockLevel = 4
	// MaxPlantsCount 最多可用卡片数
	MaxPlantsCount = 6
	// InitialPlantsCount 新存档可用卡片数
	InitialPlantsCount = 1
)

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "player"
)

// ProgressData 玩家进度（不保存对局状态）
type ProgressData struct {
	UnlockedLevel int `yaml:"unlockedLevel"` // 已解锁的最高关卡
	PlantsCount   int `yaml:"plantsCount"`   // 可用卡片数
}

// DefaultProgress 新存档的进度
func DefaultProgress() ProgressData {
	return ProgressData{
		UnlockedLevel: 1,
		PlantsCount:   InitialPlantsCount,
	}
}

// ProgressManager 进度管理器
// 负责玩家进度的加载、保存与解锁规则
type ProgressManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
	data         ProgressData
	logger       *zap.Logger
}

// NewProgressManager 创建进度管理器并尝试加载已保存的进度
//
// 参数：
//   - gdataManager: 存储管理器，可为 nil
//   - logger: 日志器，可为 nil
//
// 返回：
//   - *ProgressManager: 总是返回可用的实例
//   - error: 已有存档无法读取时返回错误，此时使用默认进度
func NewProgressManager(gdataManager *gdata.Manager, logger *zap.Logger) (*ProgressManager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pm := &ProgressManager{
		gdataManager: gdataManager,
		data:         DefaultProgress(),
		logger:       logger,
	}
	if err := pm.Load(); err != nil {
		return pm, err
	}
	return pm, nil
}

// Load 从 gdata 加载进度，存档不存在时使用默认进度
func (pm *ProgressManager) Load() error {
	if pm.gdataManager == nil {
		return nil
	}
	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		pm.data = DefaultProgress()
		return nil
	}

	raw, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		pm.data = DefaultProgress()
		return fmt.Errorf("failed to load progress: %w", err)
	}

	loaded := DefaultProgress()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		pm.data = DefaultProgress()
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	pm.data = sanitizeProgress(loaded)

	pm.logger.Debug("progress loaded",
		zap.Int("unlockedLevel", pm.data.UnlockedLevel),
		zap.Int("plantsCount", pm.data.PlantsCount))
	return nil
}

// Save 保存进度到 gdata，降级模式下直接返回 nil
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(pm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, raw); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	pm.logger.Debug("progress saved",
		zap.Int("unlockedLevel", pm.data.UnlockedLevel),
		zap.Int("plantsCount", pm.data.PlantsCount))
	return nil
}

// CompleteLevel 记录通关并更新解锁状态（仅修改内存，需调用 Save 持久化）
//
// 规则：
//   - 解锁关卡 = max(当前解锁关卡, n+1)
//   - 卡片数：n<4 时为 n+1，n==4 时为 4，否则为 n；不超过 6 且不减少
func (pm *ProgressManager) CompleteLevel(n int) {
	if n < 1 {
		return
	}
	if n+1 > pm.data.UnlockedLevel {
		pm.data.UnlockedLevel = n + 1
	}

	plants := n
	switch {
	case n < ShovelUnlockLevel:
		plants = n + 1
	case n == ShovelUnlockLevel:
		plants = ShovelUnlockLevel
	}
	if plants > MaxPlantsCount {
		plants = MaxPlantsCount
	}
	if plants > pm.data.PlantsCount {
		pm.data.PlantsCount = plants
	}
}

// UnlockedLevel 已解锁的最高关卡
func (pm *ProgressManager) UnlockedLevel() int {
	return pm.data.UnlockedLevel
}

// PlantsCount 可用卡片数
func (pm *ProgressManager) PlantsCount() int {
	return pm.data.PlantsCount
}

// ShovelUnlocked 是否可以使用铲子
func (pm *ProgressManager) ShovelUnlocked() bool {
	return pm.data.UnlockedLevel > ShovelUnlockLevel
}

// Data 返回进度副本
func (pm *ProgressManager) Data() ProgressData {
	return pm.data
}

// Reset 恢复为新存档（仅修改内存）
func (pm *ProgressManager) Reset() {
	pm.data = DefaultProgress()
}

// sanitizeProgress 修正存档中越界的字段
func sanitizeProgress(p ProgressData) ProgressData {
	if p.UnlockedLevel < 1 {
		p.UnlockedLevel = 1
	}
	if p.PlantsCount < InitialPlantsCount {
		p.PlantsCount = InitialPlantsCount
	}
	if p.PlantsCount > MaxPlantsCount {
		p.PlantsCount = MaxPlantsCount
	}
	return p
}
