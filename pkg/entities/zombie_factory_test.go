package entities

import (
	"testing"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/ecs"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
)

// TestNewAttacker 测试各类僵尸的初始状态
func TestNewAttacker(t *testing.T) {
	ids := ecs.NewIDAllocator()
	pos := utils.V(1090, 70.5)

	for i := 0; i < types.AttackerTypeCount; i++ {
		typ := types.AttackerType(i)
		t.Run(typ.String(), func(t *testing.T) {
			a := NewAttacker(ids, typ, pos)
			stats := config.GetAttackerStats(typ)

			if a.Type != typ {
				t.Errorf("Type = %v, want %v", a.Type, typ)
			}
			if a.Health != stats.MaxHealth || a.MaxHealth != stats.MaxHealth {
				t.Errorf("health = %v/%v, want %v", a.Health, a.MaxHealth, stats.MaxHealth)
			}
			if a.Pos != pos || a.Radius != stats.Radius {
				t.Errorf("pos/radius = %v/%v", a.Pos, a.Radius)
			}
			if !a.ArmVisible {
				t.Error("arm should be visible at spawn")
			}
			if a.HasNewspaper != (typ == types.AttackerNewspaper) {
				t.Errorf("HasNewspaper = %v", a.HasNewspaper)
			}
		})
	}
}

// TestNewAttackerIDsIncrease 测试ID单调递增
func TestNewAttackerIDsIncrease(t *testing.T) {
	ids := ecs.NewIDAllocator()
	var last ecs.EntityID
	for i := 0; i < 10; i++ {
		a := NewAttacker(ids, types.AttackerNormal, utils.Vec2{})
		if a.ID <= last {
			t.Fatalf("id %d not greater than previous %d", a.ID, last)
		}
		last = a.ID
	}
}

// TestNewAttackerUnknownType 测试未知类型回退为普通僵尸
func TestNewAttackerUnknownType(t *testing.T) {
	a := NewAttacker(ecs.NewIDAllocator(), types.AttackerType(99), utils.Vec2{})
	if a.Type != types.AttackerNormal || a.MaxHealth != config.AttackerDefaultHealth {
		t.Errorf("unexpected attacker: %+v", a)
	}
}
