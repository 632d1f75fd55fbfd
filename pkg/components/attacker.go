package components

import "github.com/gonewx/towerengine/pkg/types"

// 快照中的僵尸状态位
const (
	AttackerFlagArmVisible = 1 << 0 // 手臂可见
	AttackerFlagNewspaper  = 1 << 1 // 持有报纸
	AttackerFlagEating     = 1 << 2 // 本帧正在啃食
	AttackerFlagFrozen     = 1 << 3 // 冰冻中
)

// Attacker 僵尸数据
//
// 不变量:
//   - Health <= MaxHealth
//   - ArmorState、ArmVisible、HasNewspaper 由 Health 与 BodyHealth 推导，
//     每次生命值变化后必须重新计算
type Attacker struct {
	Entity

	Type types.AttackerType

	Health     float64 // 当前生命值
	MaxHealth  float64 // 最大生命值
	BodyHealth float64 // 本体血量，低于此值护甲耗尽

	BaseSpeed    float64 // 基础速度
	CurrentSpeed float64 // 本帧实际速度（含倍率与冰冻）
	FreezeTimer  float64 // 冰冻剩余时间，>0 时不移动

	Damage float64 // 啃食伤害（每秒）

	ArmorState   int  // 护甲外观状态
	ArmVisible   bool // 手臂是否可见
	HasNewspaper bool // 是否持有报纸
	Eating       bool // 本帧是否在啃食
}

// Frozen 是否处于冰冻状态
func (a *Attacker) Frozen() bool {
	return a.FreezeTimer > 0
}

// Armored 剩余生命是否仍高于本体血量
func (a *Attacker) Armored() bool {
	return a.Health > a.BodyHealth
}

// Flags 返回快照用的状态位
func (a *Attacker) Flags() int {
	flags := 0
	if a.ArmVisible {
		flags |= AttackerFlagArmVisible
	}
	if a.HasNewspaper {
		flags |= AttackerFlagNewspaper
	}
	if a.Eating {
		flags |= AttackerFlagEating
	}
	if a.Frozen() {
		flags |= AttackerFlagFrozen
	}
	return flags
}
