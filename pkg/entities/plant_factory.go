package entities

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/ecs"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
)

// NewDefender 创建植物
// pos 应为格子中心，col/row 为所在格子
func NewDefender(ids *ecs.IDAllocator, typ types.DefenderType, pos utils.Vec2, col, row int) components.Defender {
	stats := config.GetDefenderStats(typ)

	return components.Defender{
		Entity: components.Entity{
			ID:     ids.Next(),
			Pos:    pos,
			Radius: stats.Radius,
		},
		Type:        typ,
		Health:      stats.MaxHealth,
		MaxHealth:   stats.MaxHealth,
		Cost:        stats.Cost,
		Cooldown:    stats.InitialCooldown,
		MaxCooldown: stats.ActionCooldown,
		GridCol:     col,
		GridRow:     row,
	}
}
