package behavior

import (
	"math"

	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
	"go.uber.org/zap"
)

// attackerBehavior 僵尸类型的差异化行为
type attackerBehavior struct {
	// refreshVisual 根据当前生命值重新推导外观状态
	refreshVisual func(a *components.Attacker)
}

// attackerBehaviors 僵尸行为表
var attackerBehaviors = map[types.AttackerType]attackerBehavior{
	types.AttackerNormal:     {refreshVisual: refreshArm},
	types.AttackerConehead:   {refreshVisual: refreshArmor(config.LightArmorBreakpoints)},
	types.AttackerBuckethead: {refreshVisual: refreshArmor(config.HeavyArmorBreakpoints)},
	types.AttackerFootball:   {refreshVisual: refreshFootball},
	types.AttackerNewspaper:  {refreshVisual: refreshNewspaper},
	types.AttackerImp:        {refreshVisual: refreshArm},
	types.AttackerGargantuar: {refreshVisual: func(*components.Attacker) {}},
	types.AttackerFlag:       {refreshVisual: refreshArm},
}

// refreshArm 生命值低于本体血量一半时掉手臂
func refreshArm(a *components.Attacker) {
	if a.Health < a.BodyHealth*config.ArmLostHealthRatio {
		a.ArmVisible = false
	}
}

// refreshArmor 按剩余护甲的绝对值映射外观状态
func refreshArmor(bp config.ArmorBreakpoints) func(a *components.Attacker) {
	return func(a *components.Attacker) {
		a.ArmorState = bp.ArmorState(a.Health - a.BodyHealth)
		refreshArm(a)
	}
}

// refreshFootball 与铁桶相同的映射，生命降到本体血量时护甲立即消失
func refreshFootball(a *components.Attacker) {
	a.ArmorState = config.HeavyArmorBreakpoints.ArmorState(a.Health - a.BodyHealth)
	if a.Health <= a.BodyHealth {
		a.ArmorState = config.ArmorStateNone
	}
	refreshArm(a)
}

// refreshNewspaper 报纸被打碎后永久加速
func refreshNewspaper(a *components.Attacker) {
	if a.Health <= a.BodyHealth && a.HasNewspaper {
		a.HasNewspaper = false
		a.BaseSpeed = config.NewspaperAngrySpeed
	}
	refreshArm(a)
}

// RefreshVisualState 重新推导僵尸外观状态
func RefreshVisualState(a *components.Attacker) {
	if b, ok := attackerBehaviors[a.Type]; ok {
		b.refreshVisual(a)
		return
	}
	refreshArm(a)
}

// TakeDamage 僵尸受到伤害
// 生命值 <= 0 时标记删除，随后刷新外观状态
func TakeDamage(a *components.Attacker, amount float64) {
	a.Health -= amount
	if a.Health <= 0 {
		a.Delete()
	}
	RefreshVisualState(a)
}

// ApplyFreeze 冰冻僵尸
func ApplyFreeze(a *components.Attacker, duration float64) {
	a.FreezeTimer = duration
}

// Step 僵尸向左移动
// 冰冻中本帧速度为零并递减冰冻计时
func Step(a *components.Attacker, dt, multiplier float64) {
	speed := a.BaseSpeed
	if a.FreezeTimer > 0 {
		a.FreezeTimer -= dt
		speed = 0
	}
	a.CurrentSpeed = speed * multiplier
	a.Pos.X -= a.CurrentSpeed * dt
}

// SpeedMultiplier 存在旗帜僵尸时所有僵尸加速
func (s *BehaviorSystem) SpeedMultiplier() float64 {
	if s.world.HasLiveFlagCarrier() {
		return s.rules.FlagSpeedMultiplier
	}
	return 1.0
}

// UpdateAttackers 僵尸啃食与移动
// 返回本帧越过左边界的僵尸数量
func (s *BehaviorSystem) UpdateAttackers(dt, multiplier float64) int {
	crossed := 0

	s.liveAttackers(func(a *components.Attacker) bool {
		a.Eating = s.tryEat(a, dt)

		moveMultiplier := multiplier
		if a.Eating {
			moveMultiplier = 0
		}
		Step(a, dt, moveMultiplier)

		if a.Pos.X < s.rules.TrailingBoundaryX {
			a.Delete()
			crossed++
			s.logger.Debug("attacker crossed the trailing boundary",
				zap.Uint64("id", uint64(a.ID)),
				zap.Stringer("type", a.Type))
		}
		return true
	})

	return crossed
}

// tryEat 寻找同一行、水平距离内第一株可啃食的植物并造成伤害
func (s *BehaviorSystem) tryEat(a *components.Attacker, dt float64) bool {
	defenders := s.world.Defenders
	for i := 0; i < defenders.Len(); i++ {
		d := defenders.At(i)
		if d.Deleted {
			continue
		}
		if !s.sameRow(a.Pos.Y, d.Pos.Y) || math.Abs(a.Pos.X-d.Pos.X) >= s.rules.EatRange {
			continue
		}
		if !Edible(d) {
			continue
		}

		DamageDefender(d, a.Damage*dt)
		if s.rng.Float64() < s.rules.EatSoundChance {
			s.world.Emit(types.SoundEating)
		}
		return true
	}
	return false
}

// attackersWithin 返回圆形范围内所有存活僵尸
func (s *BehaviorSystem) attackersWithin(center utils.Vec2, radius float64) []*components.Attacker {
	var hits []*components.Attacker
	s.liveAttackers(func(a *components.Attacker) bool {
		if utils.Distance(center, a.Pos) < radius {
			hits = append(hits, a)
		}
		return true
	})
	return hits
}
