package config

import "fmt"

// Rules 模拟引擎的全局规则参数
// 数值来源于原版玩法，可通过设置文件覆盖
type Rules struct {
	FlagSpeedMultiplier float64 `toml:"flag_speed_multiplier"` // 旗帜僵尸存活时所有僵尸的移速倍率
	EatRange            float64 `toml:"eat_range"`             // 啃食判定的水平距离
	TrailingBoundaryX   float64 `toml:"trailing_boundary_x"`   // 僵尸越过该X坐标时扣除一条命
	SpawnOffsetX        float64 `toml:"spawn_offset_x"`        // 僵尸出生点相对网格右边界的偏移
	BuildSpacing        float64 `toml:"build_spacing"`         // 目标格中心附近已有植物时拒绝种植的半径
	RemoveTolerance     float64 `toml:"remove_tolerance"`      // 铲除植物时的位置容差
	ProjectileMinX      float64 `toml:"projectile_min_x"`      // 子弹左边界
	ProjectileMaxX      float64 `toml:"projectile_max_x"`      // 子弹右边界
	EatSoundChance      float64 `toml:"eat_sound_chance"`      // 每帧啃食时发出啃食音效的概率
}

// DefaultRules 返回原版规则参数
func DefaultRules() Rules {
	return Rules{
		FlagSpeedMultiplier: 1.3,
		EatRange:            50,
		TrailingBoundaryX:   -50,
		SpawnOffsetX:        100,
		BuildSpacing:        30,
		RemoveTolerance:     20,
		ProjectileMinX:      -200,
		ProjectileMaxX:      2000,
		EatSoundChance:      0.05,
	}
}

// Validate 检查规则参数的合法性
func (r Rules) Validate() error {
	if r.FlagSpeedMultiplier <= 0 {
		return fmt.Errorf("flag_speed_multiplier must be positive, got %v", r.FlagSpeedMultiplier)
	}
	if r.EatRange < 0 || r.BuildSpacing < 0 || r.RemoveTolerance < 0 {
		return fmt.Errorf("ranges must not be negative")
	}
	if r.ProjectileMinX >= r.ProjectileMaxX {
		return fmt.Errorf("projectile bounds are inverted: %v >= %v", r.ProjectileMinX, r.ProjectileMaxX)
	}
	if r.EatSoundChance < 0 || r.EatSoundChance > 1 {
		return fmt.Errorf("eat_sound_chance must be within [0,1], got %v", r.EatSoundChance)
	}
	return nil
}
