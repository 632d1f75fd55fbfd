package components

import (
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
)

// Marker 范围效果的视觉标记（非实体，无ID）
type Marker struct {
	Pos   utils.Vec2
	Kind  types.MarkerKind
	Timer float64 // 剩余时间
}

// Expired 计时是否结束
func (m *Marker) Expired() bool {
	return m.Timer <= 0
}
