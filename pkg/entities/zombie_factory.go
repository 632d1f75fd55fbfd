package entities

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/ecs"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
)

// NewAttacker 创建僵尸
// 数值来自 config.AttackerStatsTable，手臂初始可见
//
// 参数:
//   - ids: 实体ID分配器（由引擎持有）
//   - typ: 僵尸类型，未知类型按普通僵尸处理
//   - pos: 出生点世界坐标
func NewAttacker(ids *ecs.IDAllocator, typ types.AttackerType, pos utils.Vec2) components.Attacker {
	stats := config.GetAttackerStats(typ)
	if !typ.Valid() {
		typ = types.AttackerNormal
	}

	return components.Attacker{
		Entity: components.Entity{
			ID:     ids.Next(),
			Pos:    pos,
			Radius: stats.Radius,
		},
		Type:         typ,
		Health:       stats.MaxHealth,
		MaxHealth:    stats.MaxHealth,
		BodyHealth:   stats.BodyHealth,
		BaseSpeed:    stats.Speed,
		CurrentSpeed: stats.Speed,
		Damage:       stats.Damage,
		ArmorState:   stats.ArmorState,
		ArmVisible:   true,
		HasNewspaper: stats.HasNewspaper,
	}
}
