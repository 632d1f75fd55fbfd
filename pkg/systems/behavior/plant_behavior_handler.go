package behavior

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/entities"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
	"go.uber.org/zap"
)

// defenderBehavior 植物类型的差异化行为
// 未设置的函数表示该类型没有对应行为
type defenderBehavior struct {
	updateLogic   func(s *BehaviorSystem, d *components.Defender)
	produceIncome func(d *components.Defender) int
	edible        func(d *components.Defender) bool
}

// defenderBehaviors 植物行为表
var defenderBehaviors = map[types.DefenderType]defenderBehavior{
	types.DefenderPeashooter: {updateLogic: (*BehaviorSystem).handlePeashooterBehavior},
	types.DefenderSunflower:  {produceIncome: sunflowerIncome},
	types.DefenderWallNut:    {},
	types.DefenderPotatoMine: {
		updateLogic: (*BehaviorSystem).handlePotatoMineBehavior,
		edible:      func(d *components.Defender) bool { return d.Armed },
	},
	types.DefenderCherryBomb: {updateLogic: (*BehaviorSystem).handleCherryBombBehavior},
	types.DefenderIceLettuce: {updateLogic: (*BehaviorSystem).handleIceLettuceBehavior},
}

// Edible 植物当前能否被啃食
// 布防中的土豆地雷不能被啃食
func Edible(d *components.Defender) bool {
	if b, ok := defenderBehaviors[d.Type]; ok && b.edible != nil {
		return b.edible(d)
	}
	return true
}

// DamageDefender 植物受到伤害，生命值 <= 0 时标记删除
func DamageDefender(d *components.Defender, amount float64) {
	d.Health -= amount
	if d.Health <= 0 {
		d.Delete()
	}
}

// UpdateDefenders 植物冷却、类型逻辑与产出
// 返回本帧产出的阳光
func (s *BehaviorSystem) UpdateDefenders(dt float64) int {
	income := 0
	defenders := s.world.Defenders

	for i := 0; i < defenders.Len(); i++ {
		d := defenders.At(i)
		if d.Deleted {
			continue
		}

		if d.Cooldown > 0 {
			d.Cooldown -= dt
		}

		b := defenderBehaviors[d.Type]
		if b.updateLogic != nil {
			b.updateLogic(s, d)
		}
		if b.produceIncome != nil {
			income += b.produceIncome(d)
		}
	}
	return income
}

// handlePeashooterBehavior 豌豆射手：冷却结束后向同一行前方射程内的第一个僵尸发射子弹
func (s *BehaviorSystem) handlePeashooterBehavior(d *components.Defender) {
	if !d.Ready() {
		return
	}

	s.liveAttackers(func(a *components.Attacker) bool {
		if !s.sameRow(d.Pos.Y, a.Pos.Y) {
			return true
		}
		if a.Pos.X <= d.Pos.X || a.Pos.X >= config.PeashooterRangeX {
			return true
		}

		muzzle := d.Pos.Add(utils.V(config.PeaMuzzleOffsetX, config.PeaMuzzleOffsetY))
		target := utils.V(a.Pos.X, muzzle.Y)
		s.world.Projectiles.Push(entities.NewPeaProjectile(s.world.IDs, muzzle, target))
		d.Cooldown = d.MaxCooldown
		return false
	})
}

// sunflowerIncome 向日葵：冷却结束时产出阳光并重置冷却
func sunflowerIncome(d *components.Defender) int {
	if !d.Ready() {
		return 0
	}
	d.Cooldown = d.MaxCooldown
	return config.SunflowerIncome
}

// handlePotatoMineBehavior 土豆地雷
// 布防阶段忽略僵尸，布防完成后有僵尸进入触发半径即爆炸
func (s *BehaviorSystem) handlePotatoMineBehavior(d *components.Defender) {
	if !d.Armed {
		if d.Ready() {
			d.Armed = true
			s.logger.Debug("potato mine armed", zap.Uint64("id", uint64(d.ID)))
		}
		return
	}

	if len(s.attackersWithin(d.Pos, config.PotatoMineTriggerRadius)) == 0 {
		return
	}

	s.detonate(d, config.PotatoMineBlastRadius, config.PotatoMineDamage, types.MarkerMine, config.PotatoMineMarkerTime)
}

// handleCherryBombBehavior 樱桃炸弹：引信结束后无论范围内是否有僵尸都会爆炸
func (s *BehaviorSystem) handleCherryBombBehavior(d *components.Defender) {
	if !d.Ready() {
		return
	}
	s.detonate(d, config.CherryBombRadius, config.CherryBombDamage, types.MarkerCherry, config.CherryBombMarkerTime)
}

// detonate 范围爆炸并自毁
func (s *BehaviorSystem) detonate(d *components.Defender, radius, damage float64, kind types.MarkerKind, markerTime float64) {
	hits := s.attackersWithin(d.Pos, radius)
	for _, a := range hits {
		TakeDamage(a, damage)
	}

	s.world.AddMarker(entities.NewMarker(kind, d.Pos, markerTime))
	s.world.Emit(types.SoundAreaExplosion)
	d.Delete()

	s.logger.Debug("defender detonated",
		zap.Uint64("id", uint64(d.ID)),
		zap.Stringer("type", d.Type),
		zap.Int("hits", len(hits)))
}

// handleIceLettuceBehavior 冰冻生菜：冻住第一个进入范围的僵尸后自毁
func (s *BehaviorSystem) handleIceLettuceBehavior(d *components.Defender) {
	s.liveAttackers(func(a *components.Attacker) bool {
		if utils.Distance(d.Pos, a.Pos) >= config.IceLettuceRadius {
			return true
		}

		TakeDamage(a, config.IceLettuceDamage)
		ApplyFreeze(a, config.IceLettuceFreezeTime)
		s.world.AddMarker(entities.NewMarker(types.MarkerIce, d.Pos, config.IceLettuceMarkerTime))
		d.Delete()
		return false
	})
}
