package components

import "github.com/gonewx/towerengine/pkg/utils"

// Projectile 子弹数据
// 直线飞行，命中第一个僵尸后销毁
type Projectile struct {
	Entity

	Velocity utils.Vec2
	Damage   float64
	// Target 发射时瞄准的位置
	Target utils.Vec2
	// Hit 是否已结算命中
	Hit bool
}
