package behavior

import (
	"math"
	"testing"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/ecs"
	"github.com/gonewx/towerengine/pkg/entities"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
	"pgregory.net/rapid"
)

// TestArmorTransitions 测试各类僵尸受伤后的外观状态
func TestArmorTransitions(t *testing.T) {
	tests := []struct {
		name       string
		typ        types.AttackerType
		damage     float64
		wantArmor  int
		wantArm    bool
		wantPaper  bool
		wantSpeed  float64
		wantDelete bool
	}{
		{"路障轻伤", types.AttackerConehead, 40, config.ArmorStateLight, true, false, 30, false},
		{"路障中度", types.AttackerConehead, 60, config.ArmorStateModerate, true, false, 30, false},
		{"路障重度", types.AttackerConehead, 110, config.ArmorStateHeavy, true, false, 30, false},
		{"路障耗尽", types.AttackerConehead, 150, config.ArmorStateNone, true, false, 30, false},
		{"铁桶中度", types.AttackerBuckethead, 100, config.ArmorStateModerate, true, false, 30, false},
		{"铁桶重度", types.AttackerBuckethead, 250, config.ArmorStateHeavy, true, false, 30, false},
		{"橄榄球降到本体血量", types.AttackerFootball, 325, config.ArmorStateNone, true, false, 35, false},
		{"橄榄球中度", types.AttackerFootball, 100, config.ArmorStateModerate, true, false, 35, false},
		{"读报未破", types.AttackerNewspaper, 99, config.ArmorStateNone, true, true, 30, false},
		{"读报打碎", types.AttackerNewspaper, 100, config.ArmorStateNone, true, false, 40, false},
		{"普通掉手臂", types.AttackerNormal, 63, config.ArmorStateNone, false, false, 30, false},
		{"普通未掉手臂", types.AttackerNormal, 62.5, config.ArmorStateNone, true, false, 30, false},
		{"巨人不掉手臂", types.AttackerGargantuar, 2990, config.ArmorStateNone, true, false, 20, false},
		{"普通死亡", types.AttackerNormal, 125, config.ArmorStateNone, false, false, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := entities.NewAttacker(ecs.NewIDAllocator(), tt.typ, utils.Vec2{})
			TakeDamage(&a, tt.damage)

			if a.ArmorState != tt.wantArmor {
				t.Errorf("ArmorState = %d, want %d", a.ArmorState, tt.wantArmor)
			}
			if a.ArmVisible != tt.wantArm {
				t.Errorf("ArmVisible = %v, want %v", a.ArmVisible, tt.wantArm)
			}
			if a.HasNewspaper != tt.wantPaper {
				t.Errorf("HasNewspaper = %v, want %v", a.HasNewspaper, tt.wantPaper)
			}
			if a.BaseSpeed != tt.wantSpeed {
				t.Errorf("BaseSpeed = %v, want %v", a.BaseSpeed, tt.wantSpeed)
			}
			if a.Deleted != tt.wantDelete {
				t.Errorf("Deleted = %v, want %v", a.Deleted, tt.wantDelete)
			}
		})
	}
}

// TestRefreshIdempotent 同一生命值重复刷新外观状态结果不变
func TestRefreshIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		typ := types.AttackerType(rapid.IntRange(0, types.AttackerTypeCount-1).Draw(t, "type"))
		a := entities.NewAttacker(ecs.NewIDAllocator(), typ, utils.Vec2{})
		TakeDamage(&a, rapid.Float64Range(0, a.MaxHealth*1.2).Draw(t, "damage"))

		before := a
		RefreshVisualState(&a)
		if a != before {
			t.Fatalf("refresh changed state: %+v -> %+v", before, a)
		}
		if a.Health > a.MaxHealth {
			t.Fatalf("health %v exceeds max %v", a.Health, a.MaxHealth)
		}
		if a.Deleted && a.Health > 0 {
			t.Fatalf("deleted with positive health %v", a.Health)
		}
	})
}

// TestStep 测试移动与冰冻
func TestStep(t *testing.T) {
	a := entities.NewAttacker(ecs.NewIDAllocator(), types.AttackerNormal, utils.V(500, 70))

	Step(&a, 1, 1)
	if a.Pos.X != 470 || a.CurrentSpeed != 30 {
		t.Fatalf("after step pos=%v speed=%v", a.Pos.X, a.CurrentSpeed)
	}

	Step(&a, 1, 1.3)
	if math.Abs(a.Pos.X-431) > 1e-9 {
		t.Fatalf("boosted step pos=%v, want 431", a.Pos.X)
	}

	ApplyFreeze(&a, 1.5)
	Step(&a, 1, 1.3)
	if math.Abs(a.Pos.X-431) > 1e-9 || a.CurrentSpeed != 0 {
		t.Fatalf("frozen attacker moved: pos=%v speed=%v", a.Pos.X, a.CurrentSpeed)
	}
	if !a.Frozen() {
		t.Fatal("attacker should still be frozen")
	}

	Step(&a, 1, 1)
	if a.Frozen() {
		t.Fatal("freeze should have expired")
	}
	Step(&a, 1, 1)
	if math.Abs(a.Pos.X-401) > 1e-9 {
		t.Errorf("pos after thaw = %v, want 401", a.Pos.X)
	}
}

// TestUpdateAttackersEating 测试啃食时停止移动并伤害植物
func TestUpdateAttackersEating(t *testing.T) {
	s, w := newTestSystem()
	di := addDefender(w, types.DefenderWallNut, 2, 1)
	center := w.Grid.CellCenter(2, 1)
	ai := addAttacker(w, types.AttackerNormal, center.X+40, center.Y)

	crossed := s.UpdateAttackers(1, 1)
	if crossed != 0 {
		t.Fatalf("crossed = %d", crossed)
	}

	a := attackerAt(w, ai)
	if !a.Eating || a.Pos.X != center.X+40 {
		t.Errorf("eating attacker should not move: eating=%v x=%v", a.Eating, a.Pos.X)
	}
	if got := defenderAt(w, di).Health; got != config.WallNutHealth-30 {
		t.Errorf("wallnut health = %v, want %v", got, config.WallNutHealth-30)
	}
}

// TestUpdateAttackersOtherRow 其他行的植物不会被啃食
func TestUpdateAttackersOtherRow(t *testing.T) {
	s, w := newTestSystem()
	addDefender(w, types.DefenderWallNut, 2, 1)
	center := w.Grid.CellCenter(2, 1)
	ai := addAttacker(w, types.AttackerNormal, center.X+10, rowY(2))

	s.UpdateAttackers(1, 1)
	if a := attackerAt(w, ai); a.Eating || a.Pos.X != center.X-20 {
		t.Errorf("attacker should walk past: eating=%v x=%v", a.Eating, a.Pos.X)
	}
}

// TestUpdateAttackersSingleTarget 每个僵尸每帧只啃食一株植物
func TestUpdateAttackersSingleTarget(t *testing.T) {
	s, w := newTestSystem()
	first := addDefender(w, types.DefenderPeashooter, 2, 0)
	center := w.Grid.CellCenter(2, 0)
	second := w.Defenders.Push(entities.NewDefender(w.IDs, types.DefenderSunflower, utils.V(center.X+30, center.Y), 2, 0))
	addAttacker(w, types.AttackerNormal, center.X+20, center.Y)

	s.UpdateAttackers(1, 1)
	if defenderAt(w, first).Health != 70 {
		t.Errorf("first defender health = %v, want 70", defenderAt(w, first).Health)
	}
	if defenderAt(w, second).Health != 100 {
		t.Errorf("second defender must not be eaten, health = %v", defenderAt(w, second).Health)
	}
}

// TestUpdateAttackersCrossBoundary 越过左边界的僵尸被删除并计数
func TestUpdateAttackersCrossBoundary(t *testing.T) {
	s, w := newTestSystem()
	ai := addAttacker(w, types.AttackerNormal, -45, rowY(0))
	addAttacker(w, types.AttackerNormal, 300, rowY(0))

	if crossed := s.UpdateAttackers(0.5, 1); crossed != 1 {
		t.Fatalf("crossed = %d, want 1", crossed)
	}
	if !attackerAt(w, ai).Deleted {
		t.Error("crossing attacker should be deleted")
	}
}

// TestSpeedMultiplier 测试旗帜僵尸加速
func TestSpeedMultiplier(t *testing.T) {
	s, w := newTestSystem()
	addAttacker(w, types.AttackerNormal, 800, rowY(0))
	if got := s.SpeedMultiplier(); got != 1 {
		t.Fatalf("multiplier = %v, want 1", got)
	}

	addAttacker(w, types.AttackerFlag, 900, rowY(1))
	if got := s.SpeedMultiplier(); got != 1.3 {
		t.Fatalf("multiplier = %v, want 1.3", got)
	}
}

// TestEatSoundChance 概率为1时每帧都有啃食音效
func TestEatSoundChance(t *testing.T) {
	s, w := newTestSystem()
	s.rules.EatSoundChance = 1
	addDefender(w, types.DefenderWallNut, 2, 1)
	center := w.Grid.CellCenter(2, 1)
	addAttacker(w, types.AttackerNormal, center.X+10, center.Y)

	s.UpdateAttackers(0.1, 1)
	if len(w.Events) != 1 || w.Events[0] != types.SoundEating {
		t.Errorf("events = %v, want [eating]", w.Events)
	}
}
