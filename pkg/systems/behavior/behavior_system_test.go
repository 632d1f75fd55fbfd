package behavior

import (
	"testing"

	"github.com/gonewx/towerengine/pkg/types"
	"pgregory.net/rapid"
)

// TestAttackerInvariants 任意场面推进若干帧后：
// 僵尸生命值不超过最大值，被删除的僵尸要么已死亡要么越过了左边界
func TestAttackerInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, w := newTestSystem()

		attackers := rapid.IntRange(1, 12).Draw(t, "attackers")
		for i := 0; i < attackers; i++ {
			typ := types.AttackerType(rapid.IntRange(0, types.AttackerTypeCount-1).Draw(t, "type"))
			row := rapid.IntRange(0, 4).Draw(t, "row")
			x := rapid.Float64Range(-40, 1100).Draw(t, "x")
			addAttacker(w, typ, x, rowY(row))
		}

		defenders := rapid.IntRange(0, 10).Draw(t, "defenders")
		for i := 0; i < defenders; i++ {
			col := rapid.IntRange(0, 8).Draw(t, "col")
			row := rapid.IntRange(0, 4).Draw(t, "drow")
			if w.Grid.OccupantAt(col, row) != 0 {
				continue
			}
			typ := types.DefenderType(rapid.IntRange(0, types.DefenderTypeCount-1).Draw(t, "dtype"))
			addDefender(w, typ, col, row)
		}

		frames := rapid.IntRange(1, 200).Draw(t, "frames")
		dt := rapid.Float64Range(0.01, 0.5).Draw(t, "dt")
		for f := 0; f < frames; f++ {
			s.UpdateAttackers(dt, s.SpeedMultiplier())
			s.UpdateDefenders(dt)
			s.UpdateProjectiles(dt)

			for i := 0; i < w.Attackers.Len(); i++ {
				a := w.Attackers.At(i)
				if a.Health > a.MaxHealth {
					t.Fatalf("attacker %d health %v exceeds max %v", a.ID, a.Health, a.MaxHealth)
				}
				if a.Deleted && a.Health > 0 && a.Pos.X >= s.rules.TrailingBoundaryX {
					t.Fatalf("attacker %d deleted with health %v at x=%v", a.ID, a.Health, a.Pos.X)
				}
			}
			w.Compact()
		}
	})
}
