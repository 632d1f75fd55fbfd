package behavior

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
)

// UpdateProjectiles 子弹飞行与命中
// 每颗子弹最多命中一个僵尸
func (s *BehaviorSystem) UpdateProjectiles(dt float64) {
	projectiles := s.world.Projectiles
	for i := 0; i < projectiles.Len(); i++ {
		p := projectiles.At(i)
		if p.Deleted {
			continue
		}

		p.Pos = p.Pos.Add(p.Velocity.Scale(dt))
		if p.Pos.X > s.rules.ProjectileMaxX || p.Pos.X < s.rules.ProjectileMinX {
			p.Delete()
			continue
		}

		s.liveAttackers(func(a *components.Attacker) bool {
			if utils.Distance(p.Pos, a.Pos) >= a.Radius {
				return true
			}
			s.resolveHit(p, a)
			return false
		})
	}
}

// resolveHit 结算子弹命中并产生音效
func (s *BehaviorSystem) resolveHit(p *components.Projectile, a *components.Attacker) {
	hadPaper := a.HasNewspaper

	TakeDamage(a, p.Damage)
	p.Hit = true
	p.Delete()

	s.world.Emit(ImpactSound(a))
	if hadPaper && !a.HasNewspaper {
		s.world.Emit(types.SoundPaperRip, types.SoundAnger)
	}
}

// ImpactSound 根据命中后的状态选择命中音效
// 护甲吸收伤害时按护甲类别区分，否则为普通命中
func ImpactSound(a *components.Attacker) types.SoundEvent {
	if a.Armored() {
		switch a.Type {
		case types.AttackerConehead:
			return types.SoundLightArmorImpact
		case types.AttackerBuckethead, types.AttackerFootball:
			return types.SoundHeavyArmorImpact
		}
	}
	return types.SoundGenericImpact
}
