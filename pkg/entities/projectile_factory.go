package entities

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/ecs"
	"github.com/gonewx/towerengine/pkg/utils"
)

// NewPeaProjectile 创建豌豆子弹
// 子弹从 start 出发，朝 target 方向匀速直线飞行
// start 与 target 重合时速度为零
func NewPeaProjectile(ids *ecs.IDAllocator, start, target utils.Vec2) components.Projectile {
	dir := target.Sub(start).Normalize()

	return components.Projectile{
		Entity: components.Entity{
			ID:     ids.Next(),
			Pos:    start,
			Radius: config.PeaBulletRadius,
		},
		Velocity: dir.Scale(config.PeaBulletSpeed),
		Damage:   config.PeaBulletDamage,
		Target:   target,
	}
}
