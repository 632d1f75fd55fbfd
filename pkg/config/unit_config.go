package config

import "github.com/gonewx/towerengine/pkg/types"

// 单位配置
// 本文件定义了进攻方、防守方、子弹的数值参数以及卡片表

// Attacker Configuration (僵尸配置)
const (
	// AttackerDefaultHealth 普通僵尸的生命值（同时也是默认本体血量）
	AttackerDefaultHealth = 125.0

	// AttackerDefaultSpeed 普通僵尸移动速度（像素/秒，向左）
	AttackerDefaultSpeed = 30.0

	// AttackerDefaultRadius 僵尸碰撞半径（像素）
	AttackerDefaultRadius = 40.0

	// AttackerDefaultDamage 啃食伤害（每秒）
	AttackerDefaultDamage = 30.0

	// NewspaperAngrySpeed 读报僵尸报纸被打碎后的移动速度
	NewspaperAngrySpeed = 40.0

	// ArmLostHealthRatio 生命值低于本体血量的该比例时掉手臂
	ArmLostHealthRatio = 0.5
)

// 护甲外观状态
const (
	ArmorStateNone     = 0 // 无护甲
	ArmorStateLight    = 1 // 完好/轻微磨损
	ArmorStateModerate = 2 // 中度磨损
	ArmorStateHeavy    = 3 // 重度磨损
)

// ArmorBreakpoints 护甲外观分段（剩余护甲的绝对值，不是比例）
//
//	剩余护甲 <= 0        → ArmorStateNone
//	剩余护甲 < Heavy     → ArmorStateHeavy
//	剩余护甲 < Moderate  → ArmorStateModerate
//	其他                 → ArmorStateLight
type ArmorBreakpoints struct {
	Heavy    float64
	Moderate float64
}

var (
	// LightArmorBreakpoints 路障
	LightArmorBreakpoints = ArmorBreakpoints{Heavy: 50, Moderate: 100}
	// HeavyArmorBreakpoints 铁桶、橄榄球
	HeavyArmorBreakpoints = ArmorBreakpoints{Heavy: 125, Moderate: 275}
)

// ArmorState 将剩余护甲映射为外观状态
func (b ArmorBreakpoints) ArmorState(remainingArmor float64) int {
	switch {
	case remainingArmor <= 0:
		return ArmorStateNone
	case remainingArmor < b.Heavy:
		return ArmorStateHeavy
	case remainingArmor < b.Moderate:
		return ArmorStateModerate
	default:
		return ArmorStateLight
	}
}

// AttackerStats 单个僵尸类型的属性
type AttackerStats struct {
	MaxHealth    float64 // 最大生命值（本体 + 护甲）
	BodyHealth   float64 // 本体血量，低于此值护甲视为耗尽
	Speed        float64 // 基础移动速度
	Radius       float64 // 碰撞半径
	Damage       float64 // 啃食伤害（每秒）
	ArmorState   int     // 初始护甲外观状态
	HasNewspaper bool    // 是否持有报纸
}

func baseAttackerStats() AttackerStats {
	return AttackerStats{
		MaxHealth:  AttackerDefaultHealth,
		BodyHealth: AttackerDefaultHealth,
		Speed:      AttackerDefaultSpeed,
		Radius:     AttackerDefaultRadius,
		Damage:     AttackerDefaultDamage,
	}
}

// AttackerStatsTable 僵尸属性表（使用 types.AttackerType 作为键）
var AttackerStatsTable = func() map[types.AttackerType]AttackerStats {
	table := make(map[types.AttackerType]AttackerStats, types.AttackerTypeCount)

	table[types.AttackerNormal] = baseAttackerStats()

	cone := baseAttackerStats()
	cone.MaxHealth = cone.BodyHealth + 150
	cone.ArmorState = ArmorStateLight
	table[types.AttackerConehead] = cone

	bucket := baseAttackerStats()
	bucket.MaxHealth = bucket.BodyHealth + 325
	bucket.ArmorState = ArmorStateLight
	table[types.AttackerBuckethead] = bucket

	football := baseAttackerStats()
	football.MaxHealth = football.BodyHealth + 325
	football.Speed = 35
	football.ArmorState = ArmorStateLight
	table[types.AttackerFootball] = football

	paper := baseAttackerStats()
	paper.MaxHealth = paper.BodyHealth + 100
	paper.HasNewspaper = true
	table[types.AttackerNewspaper] = paper

	imp := baseAttackerStats()
	imp.MaxHealth = 100
	imp.Speed = 40
	table[types.AttackerImp] = imp

	garg := baseAttackerStats()
	garg.MaxHealth = 3000
	garg.Speed = 20
	garg.Radius = 80
	garg.Damage = 5000
	table[types.AttackerGargantuar] = garg

	flag := baseAttackerStats()
	flag.Speed = 45
	table[types.AttackerFlag] = flag

	return table
}()

// GetAttackerStats 获取僵尸属性，未知类型返回普通僵尸属性
func GetAttackerStats(t types.AttackerType) AttackerStats {
	if s, ok := AttackerStatsTable[t]; ok {
		return s
	}
	return baseAttackerStats()
}

// Defender Configuration (植物配置)
const (
	// DefenderDefaultHealth 植物默认生命值
	DefenderDefaultHealth = 100.0

	// DefenderDefaultRadius 植物碰撞半径
	DefenderDefaultRadius = 40.0

	// DefenderDefaultCooldown 植物默认动作冷却（秒）
	DefenderDefaultCooldown = 1.5
)

// Peashooter Configuration (豌豆射手)
const (
	// PeashooterRangeX 射程：僵尸X坐标必须小于该值
	PeashooterRangeX = 1500.0
	// PeaMuzzleOffsetX 子弹相对射手中心的水平偏移
	PeaMuzzleOffsetX = 60.0
	// PeaMuzzleOffsetY 子弹相对射手中心的垂直偏移
	PeaMuzzleOffsetY = -25.0
	// PeaBulletSpeed 豌豆子弹速度（像素/秒）
	PeaBulletSpeed = 500.0
	// PeaBulletDamage 豌豆子弹伤害
	PeaBulletDamage = 20.0
	// PeaBulletRadius 豌豆子弹半径
	PeaBulletRadius = 20.0
)

// Sunflower Configuration (向日葵)
const (
	// SunflowerIncome 每次产出的阳光
	SunflowerIncome = 25
	// SunflowerCooldown 产出周期（秒）
	SunflowerCooldown = 10.0
	// SunflowerInitialCooldown 种下后首次产出的延迟（秒）
	SunflowerInitialCooldown = 5.0
)

// PotatoMine Configuration (土豆地雷)
const (
	// PotatoMineArmingTime 布防时间（秒）
	PotatoMineArmingTime = 12.0
	// PotatoMineTriggerRadius 触发半径
	PotatoMineTriggerRadius = 60.0
	// PotatoMineBlastRadius 爆炸半径
	PotatoMineBlastRadius = 150.0
	// PotatoMineDamage 爆炸伤害
	PotatoMineDamage = 1000.0
	// PotatoMineMarkerTime 爆炸标记持续时间
	PotatoMineMarkerTime = 0.5
)

// CherryBomb Configuration (樱桃炸弹)
const (
	// CherryBombHealth 樱桃炸弹生命值
	CherryBombHealth = 1000.0
	// CherryBombFuse 引信时间（秒）
	CherryBombFuse = 1.2
	// CherryBombRadius 爆炸半径
	CherryBombRadius = 200.0
	// CherryBombDamage 爆炸伤害，足以秒杀除巨人外的所有僵尸
	CherryBombDamage = 1800.0
	// CherryBombMarkerTime 爆炸标记持续时间
	CherryBombMarkerTime = 1.2
)

// IceLettuce Configuration (冰冻生菜)
const (
	// IceLettuceHealth 冰冻生菜生命值
	IceLettuceHealth = 50.0
	// IceLettuceRadius 触发半径
	IceLettuceRadius = 90.0
	// IceLettuceDamage 直接伤害
	IceLettuceDamage = 20.0
	// IceLettuceFreezeTime 冰冻时长（秒）
	IceLettuceFreezeTime = 10.0
	// IceLettuceMarkerTime 冰冻标记持续时间
	IceLettuceMarkerTime = 0.5
)

// WallNutHealth 坚果墙生命值
const WallNutHealth = 2000.0

// DefenderStats 单个植物类型的属性
type DefenderStats struct {
	MaxHealth       float64 // 最大生命值
	Cost            int     // 种植花费
	ActionCooldown  float64 // 动作冷却周期
	InitialCooldown float64 // 种下时的初始冷却
	Radius          float64 // 碰撞半径
}

func baseDefenderStats() DefenderStats {
	return DefenderStats{
		MaxHealth:      DefenderDefaultHealth,
		ActionCooldown: DefenderDefaultCooldown,
		Radius:         DefenderDefaultRadius,
	}
}

// DefenderStatsTable 植物属性表
var DefenderStatsTable = func() map[types.DefenderType]DefenderStats {
	table := make(map[types.DefenderType]DefenderStats, types.DefenderTypeCount)

	pea := baseDefenderStats()
	pea.Cost = 100
	table[types.DefenderPeashooter] = pea

	sun := baseDefenderStats()
	sun.Cost = 50
	sun.ActionCooldown = SunflowerCooldown
	sun.InitialCooldown = SunflowerInitialCooldown
	table[types.DefenderSunflower] = sun

	nut := baseDefenderStats()
	nut.Cost = 50
	nut.MaxHealth = WallNutHealth
	table[types.DefenderWallNut] = nut

	mine := baseDefenderStats()
	mine.Cost = 25
	mine.ActionCooldown = PotatoMineArmingTime
	mine.InitialCooldown = PotatoMineArmingTime
	table[types.DefenderPotatoMine] = mine

	cherry := baseDefenderStats()
	cherry.Cost = 150
	cherry.MaxHealth = CherryBombHealth
	cherry.ActionCooldown = CherryBombFuse
	cherry.InitialCooldown = CherryBombFuse
	table[types.DefenderCherryBomb] = cherry

	ice := baseDefenderStats()
	ice.MaxHealth = IceLettuceHealth
	table[types.DefenderIceLettuce] = ice

	return table
}()

// GetDefenderStats 获取植物属性，未知类型返回默认属性
func GetDefenderStats(t types.DefenderType) DefenderStats {
	if s, ok := DefenderStatsTable[t]; ok {
		return s
	}
	return baseDefenderStats()
}

// CardConfig 卡片配置：可购买的植物类型及其全局冷却
type CardConfig struct {
	Type     types.DefenderType
	Cost     int
	Cooldown float64
}

// DefaultCards 默认卡片表，顺序即卡片下标
func DefaultCards() []CardConfig {
	return []CardConfig{
		{Type: types.DefenderPeashooter, Cost: 100, Cooldown: 5},
		{Type: types.DefenderSunflower, Cost: 50, Cooldown: 5},
		{Type: types.DefenderWallNut, Cost: 50, Cooldown: 20},
		{Type: types.DefenderPotatoMine, Cost: 25, Cooldown: 20},
		{Type: types.DefenderCherryBomb, Cost: 150, Cooldown: 30},
		{Type: types.DefenderIceLettuce, Cost: 0, Cooldown: 15},
	}
}
