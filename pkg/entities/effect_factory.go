package entities

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
)

// NewMarker 创建范围效果的视觉标记
func NewMarker(kind types.MarkerKind, pos utils.Vec2, duration float64) components.Marker {
	return components.Marker{
		Pos:   pos,
		Kind:  kind,
		Timer: duration,
	}
}
