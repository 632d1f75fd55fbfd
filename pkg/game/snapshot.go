package game

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/ecs"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
)

// AttackerView 僵尸快照
type AttackerView struct {
	ID         ecs.EntityID
	Pos        utils.Vec2
	Type       types.AttackerType
	Health     float64
	MaxHealth  float64
	Speed      float64 // 本帧实际速度
	ArmorState int
	Flags      int // 见 components.AttackerFlag*
}

// DefenderView 植物快照
type DefenderView struct {
	ID          ecs.EntityID
	Pos         utils.Vec2
	Type        types.DefenderType
	Health      float64
	MaxHealth   float64
	Cooldown    float64
	MaxCooldown float64
}

// ProjectileView 子弹快照
type ProjectileView struct {
	Pos utils.Vec2
}

// MarkerView 视觉标记快照
type MarkerView struct {
	Pos   utils.Vec2
	Kind  types.MarkerKind
	Timer float64
}

// Snapshot 某一帧结束时的只读状态
// 快照持有数据副本，之后的 Advance 不会修改它
type Snapshot struct {
	Attackers   []AttackerView
	Defenders   []DefenderView
	Projectiles []ProjectileView
	Markers     []MarkerView

	Money int
	Lives int
	Won   bool
	Lost  bool
	Time  float64

	// CardCooldowns 每张卡片的冷却进度，可用时为 0
	CardCooldowns []float64
	Events        []types.SoundEvent
}

// Snapshot 生成当前状态快照，已标记删除的实体不包含在内
func (e *Engine) Snapshot() Snapshot {
	w := e.world
	s := Snapshot{
		Attackers:     make([]AttackerView, 0, w.Attackers.Len()),
		Defenders:     make([]DefenderView, 0, w.Defenders.Len()),
		Projectiles:   make([]ProjectileView, 0, w.Projectiles.Len()),
		Markers:       make([]MarkerView, 0, len(w.Markers)),
		Money:         e.economy.Sun,
		Lives:         e.economy.Lives,
		Won:           e.won,
		Lost:          e.lost,
		Time:          e.levelTime,
		CardCooldowns: make([]float64, len(e.economy.Cards)),
		Events:        append([]types.SoundEvent(nil), w.Events...),
	}

	for i := 0; i < w.Attackers.Len(); i++ {
		a := w.Attackers.At(i)
		if a.Deleted {
			continue
		}
		s.Attackers = append(s.Attackers, AttackerView{
			ID:         a.ID,
			Pos:        a.Pos,
			Type:       a.Type,
			Health:     a.Health,
			MaxHealth:  a.MaxHealth,
			Speed:      a.CurrentSpeed,
			ArmorState: a.ArmorState,
			Flags:      a.Flags(),
		})
	}

	for _, d := range w.Defenders.Items() {
		if d.Deleted {
			continue
		}
		s.Defenders = append(s.Defenders, defenderView(&d))
	}

	for _, p := range w.Projectiles.Items() {
		if p.Deleted {
			continue
		}
		s.Projectiles = append(s.Projectiles, ProjectileView{Pos: p.Pos})
	}

	for _, m := range w.Markers {
		s.Markers = append(s.Markers, MarkerView{Pos: m.Pos, Kind: m.Kind, Timer: m.Timer})
	}

	for i := range e.economy.Cards {
		s.CardCooldowns[i] = e.economy.Cards[i].CooldownFraction()
	}
	return s
}

func defenderView(d *components.Defender) DefenderView {
	return DefenderView{
		ID:          d.ID,
		Pos:         d.Pos,
		Type:        d.Type,
		Health:      d.Health,
		MaxHealth:   d.MaxHealth,
		Cooldown:    d.Cooldown,
		MaxCooldown: d.MaxCooldown,
	}
}

// DefenderAt 返回占据指定格子的存活植物
func (e *Engine) DefenderAt(col, row int) (DefenderView, bool) {
	id := e.world.Grid.OccupantAt(col, row)
	if id == 0 {
		return DefenderView{}, false
	}
	d, ok := e.world.Defenders.Lookup(id)
	if !ok || d.Deleted {
		return DefenderView{}, false
	}
	return defenderView(d), true
}

// Attacker 按下标读取僵尸，越界返回 false
func (s Snapshot) Attacker(i int) (AttackerView, bool) {
	if i < 0 || i >= len(s.Attackers) {
		return AttackerView{}, false
	}
	return s.Attackers[i], true
}

// Defender 按下标读取植物，越界返回 false
func (s Snapshot) Defender(i int) (DefenderView, bool) {
	if i < 0 || i >= len(s.Defenders) {
		return DefenderView{}, false
	}
	return s.Defenders[i], true
}

// Projectile 按下标读取子弹，越界返回 false
func (s Snapshot) Projectile(i int) (ProjectileView, bool) {
	if i < 0 || i >= len(s.Projectiles) {
		return ProjectileView{}, false
	}
	return s.Projectiles[i], true
}

// Marker 按下标读取视觉标记，越界返回 false
func (s Snapshot) Marker(i int) (MarkerView, bool) {
	if i < 0 || i >= len(s.Markers) {
		return MarkerView{}, false
	}
	return s.Markers[i], true
}

// CardCooldown 按下标读取卡片冷却进度，越界返回 0
func (s Snapshot) CardCooldown(i int) float64 {
	if i < 0 || i >= len(s.CardCooldowns) {
		return 0
	}
	return s.CardCooldowns[i]
}
