package behavior

import (
	"testing"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/types"
)

// TestPeashooterFiresOnce 冷却结束后只发射一颗子弹，瞄准僵尸当前位置
func TestPeashooterFiresOnce(t *testing.T) {
	s, w := newTestSystem()
	di := addDefender(w, types.DefenderPeashooter, 0, 2)
	addAttacker(w, types.AttackerNormal, 700, rowY(2))

	// 初始冷却为0，首帧即发射
	s.UpdateDefenders(0.1)
	if w.Projectiles.Len() != 1 {
		t.Fatalf("projectiles = %d, want 1", w.Projectiles.Len())
	}

	p := w.Projectiles.At(0)
	d := defenderAt(w, di)
	if p.Pos.X != d.Pos.X+config.PeaMuzzleOffsetX || p.Pos.Y != d.Pos.Y+config.PeaMuzzleOffsetY {
		t.Errorf("muzzle = %v", p.Pos)
	}
	if p.Target.X != 700 {
		t.Errorf("target x = %v, want 700", p.Target.X)
	}
	if p.Velocity.X <= 0 {
		t.Errorf("velocity = %v, want rightwards", p.Velocity)
	}
	if d.Cooldown != d.MaxCooldown {
		t.Errorf("cooldown = %v, want reset to %v", d.Cooldown, d.MaxCooldown)
	}

	// 冷却期间不再发射
	s.UpdateDefenders(1.0)
	if w.Projectiles.Len() != 1 {
		t.Fatalf("projectiles during cooldown = %d, want 1", w.Projectiles.Len())
	}

	// 冷却结束后再发射一颗
	s.UpdateDefenders(0.5)
	if w.Projectiles.Len() != 2 {
		t.Fatalf("projectiles after cooldown = %d, want 2", w.Projectiles.Len())
	}
}

// TestPeashooterTargeting 只攻击同一行、前方、射程内的僵尸
func TestPeashooterTargeting(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		row  int
		fire bool
	}{
		{"前方同行", 600, 1, true},
		{"身后", 20, 1, false},
		{"其他行", 600, 2, false},
		{"超出射程", 1500, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, w := newTestSystem()
			addDefender(w, types.DefenderPeashooter, 1, 1)
			addAttacker(w, types.AttackerNormal, tt.x, rowY(tt.row))

			s.UpdateDefenders(0.1)
			if got := w.Projectiles.Len() == 1; got != tt.fire {
				t.Errorf("fired = %v, want %v", got, tt.fire)
			}
		})
	}
}

// TestSunflowerIncome 周期10、初始冷却5，每秒一帧共5帧，恰好在第5帧产出一次
func TestSunflowerIncome(t *testing.T) {
	s, w := newTestSystem()
	addDefender(w, types.DefenderSunflower, 0, 0)

	total := 0
	for tick := 1; tick <= 5; tick++ {
		income := s.UpdateDefenders(1)
		if tick < 5 && income != 0 {
			t.Fatalf("tick %d produced %d, want 0", tick, income)
		}
		total += income
	}
	if total != config.SunflowerIncome {
		t.Fatalf("income after 5s = %d, want %d", total, config.SunflowerIncome)
	}

	// 下一次产出在10秒后
	for tick := 6; tick < 15; tick++ {
		if income := s.UpdateDefenders(1); income != 0 {
			t.Fatalf("tick %d produced %d, want 0", tick, income)
		}
	}
	if income := s.UpdateDefenders(1); income != config.SunflowerIncome {
		t.Errorf("tick 15 produced %d, want %d", income, config.SunflowerIncome)
	}
}

// TestPotatoMineArming 布防期间即使僵尸进入触发范围也不会爆炸
func TestPotatoMineArming(t *testing.T) {
	s, w := newTestSystem()
	di := addDefender(w, types.DefenderPotatoMine, 3, 2)
	center := w.Grid.CellCenter(3, 2)
	ai := addAttacker(w, types.AttackerNormal, center.X+10, center.Y)

	for elapsed := 0.0; elapsed < config.PotatoMineArmingTime-1; elapsed++ {
		s.UpdateDefenders(1)
		if defenderAt(w, di).Deleted || defenderAt(w, di).Armed {
			t.Fatalf("mine detonated or armed at %vs", elapsed+1)
		}
	}
	if attackerAt(w, ai).Health != config.AttackerDefaultHealth {
		t.Fatal("attacker damaged during arming")
	}
	if Edible(defenderAt(w, di)) {
		t.Fatal("arming mine must not be edible")
	}

	// 第12秒完成布防，但当帧不触发
	s.UpdateDefenders(1)
	if !defenderAt(w, di).Armed || defenderAt(w, di).Deleted {
		t.Fatal("mine should be armed and intact")
	}
	if !Edible(defenderAt(w, di)) {
		t.Error("armed mine should be edible")
	}

	// 下一帧触发
	s.UpdateDefenders(1)
	if !defenderAt(w, di).Deleted {
		t.Fatal("armed mine should detonate")
	}
	if !attackerAt(w, ai).Deleted {
		t.Error("attacker in blast radius should die")
	}
	if len(w.Markers) != 1 || w.Markers[0].Kind != types.MarkerMine {
		t.Errorf("markers = %+v", w.Markers)
	}
	if len(w.Events) != 1 || w.Events[0] != types.SoundAreaExplosion {
		t.Errorf("events = %v", w.Events)
	}
}

// TestCherryBombFuse 引信结束后无论是否有僵尸都会爆炸
func TestCherryBombFuse(t *testing.T) {
	s, w := newTestSystem()
	di := addDefender(w, types.DefenderCherryBomb, 4, 2)
	center := w.Grid.CellCenter(4, 2)
	near := addAttacker(w, types.AttackerBuckethead, center.X+150, center.Y+100)
	far := addAttacker(w, types.AttackerNormal, center.X+250, center.Y)
	garg := addAttacker(w, types.AttackerGargantuar, center.X, center.Y)

	s.UpdateDefenders(1)
	if defenderAt(w, di).Deleted {
		t.Fatal("cherry bomb exploded before the fuse elapsed")
	}

	s.UpdateDefenders(0.2)
	if !defenderAt(w, di).Deleted {
		t.Fatal("cherry bomb should explode when the fuse elapses")
	}
	if !attackerAt(w, near).Deleted {
		t.Error("bucket in radius should die")
	}
	if attackerAt(w, far).Deleted {
		t.Error("attacker out of radius should survive")
	}
	if got := attackerAt(w, garg).Health; got != 3000-config.CherryBombDamage {
		t.Errorf("gargantuar health = %v", got)
	}
	if len(w.Markers) != 1 || w.Markers[0].Kind != types.MarkerCherry || w.Markers[0].Timer != config.CherryBombMarkerTime {
		t.Errorf("markers = %+v", w.Markers)
	}

	// 空场也会爆炸
	s2, w2 := newTestSystem()
	empty := addDefender(w2, types.DefenderCherryBomb, 0, 0)
	s2.UpdateDefenders(1.2)
	if !defenderAt(w2, empty).Deleted {
		t.Error("cherry bomb should explode without targets")
	}
}

// TestIceLettuceFreeze 冰冻第一个进入范围的僵尸后自毁
func TestIceLettuceFreeze(t *testing.T) {
	s, w := newTestSystem()
	di := addDefender(w, types.DefenderIceLettuce, 2, 3)
	center := w.Grid.CellCenter(2, 3)

	s.UpdateDefenders(0.1)
	if defenderAt(w, di).Deleted {
		t.Fatal("lettuce should wait for an attacker")
	}

	first := addAttacker(w, types.AttackerNormal, center.X+80, center.Y)
	second := addAttacker(w, types.AttackerNormal, center.X+50, center.Y)
	s.UpdateDefenders(0.1)

	if !defenderAt(w, di).Deleted {
		t.Fatal("lettuce should be consumed")
	}
	a := attackerAt(w, first)
	if a.Health != config.AttackerDefaultHealth-config.IceLettuceDamage || a.FreezeTimer != config.IceLettuceFreezeTime {
		t.Errorf("first attacker health=%v freeze=%v", a.Health, a.FreezeTimer)
	}
	if attackerAt(w, second).Frozen() {
		t.Error("only one attacker should be frozen")
	}
	if len(w.Markers) != 1 || w.Markers[0].Kind != types.MarkerIce {
		t.Errorf("markers = %+v", w.Markers)
	}
	if len(w.Events) != 0 {
		t.Errorf("lettuce should be silent, events = %v", w.Events)
	}
}

// TestDeletedDefenderSkipped 已删除的植物不执行逻辑
func TestDeletedDefenderSkipped(t *testing.T) {
	s, w := newTestSystem()
	di := addDefender(w, types.DefenderSunflower, 0, 0)
	defenderAt(w, di).Delete()

	if income := s.UpdateDefenders(10); income != 0 {
		t.Errorf("deleted sunflower produced %d", income)
	}
}
