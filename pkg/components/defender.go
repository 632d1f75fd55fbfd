package components

import "github.com/gonewx/towerengine/pkg/types"

// Defender 植物数据
// 同一格子最多一株植物，由种植时的检查保证
type Defender struct {
	Entity

	Type types.DefenderType

	Health    float64
	MaxHealth float64
	Cost      int

	// Cooldown 通用动作冷却，每帧先递减再执行类型逻辑
	Cooldown float64
	// MaxCooldown 冷却周期
	MaxCooldown float64

	// Armed 土豆地雷是否已完成布防
	Armed bool

	// GridCol, GridRow 所在格子
	GridCol int
	GridRow int
}

// Ready 冷却是否结束
func (d *Defender) Ready() bool {
	return d.Cooldown <= 0
}
