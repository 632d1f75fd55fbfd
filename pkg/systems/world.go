package systems

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/ecs"
	"github.com/gonewx/towerengine/pkg/types"
)

// World 模拟世界中的全部实体集合
//
// 由引擎独占持有，各系统在同一次 Advance 调用内共享访问，
// 不得跨帧保存集合元素的指针。
type World struct {
	Attackers   *ecs.Arena[components.Attacker]
	Defenders   *ecs.Arena[components.Defender]
	Projectiles *ecs.Arena[components.Projectile]
	Markers     []components.Marker
	Events      []types.SoundEvent

	Grid *GridMap
	IDs  *ecs.IDAllocator
}

// NewWorld 创建空世界
func NewWorld(grid *GridMap) *World {
	return &World{
		Attackers:   ecs.NewArena[components.Attacker](),
		Defenders:   ecs.NewArena[components.Defender](),
		Projectiles: ecs.NewArena[components.Projectile](),
		Markers:     make([]components.Marker, 0, 8),
		Events:      make([]types.SoundEvent, 0, 16),
		Grid:        grid,
		IDs:         ecs.NewIDAllocator(),
	}
}

// Emit 追加本帧事件
func (w *World) Emit(events ...types.SoundEvent) {
	w.Events = append(w.Events, events...)
}

// ClearEvents 清空本帧事件
func (w *World) ClearEvents() {
	w.Events = w.Events[:0]
}

// AddMarker 追加视觉标记
func (w *World) AddMarker(m components.Marker) {
	w.Markers = append(w.Markers, m)
}

// UpdateMarkers 递减标记计时并移除到期的标记
func (w *World) UpdateMarkers(dt float64) {
	kept := w.Markers[:0]
	for _, m := range w.Markers {
		m.Timer -= dt
		if m.Expired() {
			continue
		}
		kept = append(kept, m)
	}
	w.Markers = kept
}

// HasLiveFlagCarrier 是否存在存活的旗帜僵尸
func (w *World) HasLiveFlagCarrier() bool {
	for _, a := range w.Attackers.Items() {
		if !a.Deleted && a.Type == types.AttackerFlag {
			return true
		}
	}
	return false
}

// Compact 帧末统一移除已标记删除的实体
// 被移除的植物同时释放其网格占用
func (w *World) Compact() (attackers, defenders, projectiles int) {
	attackers = w.Attackers.Compact(nil)
	defenders = w.Defenders.Compact(func(d *components.Defender) {
		w.Grid.ReleaseCell(d.GridCol, d.GridRow, d.ID)
	})
	projectiles = w.Projectiles.Compact(nil)
	return attackers, defenders, projectiles
}
