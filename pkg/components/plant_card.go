package components

import "github.com/gonewx/towerengine/pkg/types"

// PlantCard 可购买的植物卡片
// 卡片冷却与场上植物自身的冷却相互独立
type PlantCard struct {
	Type        types.DefenderType
	Cost        int
	Cooldown    float64 // 剩余冷却，<=0 时可用
	MaxCooldown float64
}

// Ready 卡片是否可用
func (c *PlantCard) Ready() bool {
	return c.Cooldown <= 0
}

// CooldownFraction 冷却进度：可用时为0，否则为 剩余/最大
func (c *PlantCard) CooldownFraction() float64 {
	if c.Cooldown <= 0 || c.MaxCooldown <= 0 {
		return 0
	}
	return c.Cooldown / c.MaxCooldown
}
