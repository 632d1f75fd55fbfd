package behavior

import (
	"math/rand"

	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/systems"
	"go.uber.org/zap"
)

// BehaviorSystem 处理僵尸、植物、子弹的每帧行为
//
// 三个阶段由引擎按固定顺序调用：
//  1. UpdateAttackers   僵尸啃食与移动
//  2. UpdateDefenders   植物冷却、攻击与产出
//  3. UpdateProjectiles 子弹飞行与命中
//
// 帧内只做删除标记，实体移除由 World.Compact 在帧末统一完成。
type BehaviorSystem struct {
	world  *systems.World
	rules  config.Rules
	rng    *rand.Rand
	logger *zap.Logger
}

// NewBehaviorSystem 创建行为系统
// 参数:
//   - w: 模拟世界（由引擎持有）
//   - rules: 规则参数
//   - rng: 随机数源，仅用于啃食音效
//   - logger: 日志器，为 nil 时不输出
func NewBehaviorSystem(w *systems.World, rules config.Rules, rng *rand.Rand, logger *zap.Logger) *BehaviorSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &BehaviorSystem{
		world:  w,
		rules:  rules,
		rng:    rng,
		logger: logger,
	}
}

// sameRow 两个世界Y坐标是否位于同一行
func (s *BehaviorSystem) sameRow(y1, y2 float64) bool {
	return s.world.Grid.RowOf(y1) == s.world.Grid.RowOf(y2)
}

// liveAttackers 遍历所有未删除的僵尸，fn 返回 false 时停止
func (s *BehaviorSystem) liveAttackers(fn func(a *components.Attacker) bool) {
	arena := s.world.Attackers
	for i := 0; i < arena.Len(); i++ {
		a := arena.At(i)
		if a.Deleted {
			continue
		}
		if !fn(a) {
			return
		}
	}
}
