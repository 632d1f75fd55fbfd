package behavior

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/entities"
	"github.com/gonewx/towerengine/pkg/systems"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
)

// newTestSystem 创建 9x5 网格上的行为系统，啃食音效关闭
func newTestSystem() (*BehaviorSystem, *systems.World) {
	w := systems.NewWorld(systems.NewGridMap(9, 5, 110, 141, nil))
	rules := config.DefaultRules()
	rules.EatSoundChance = 0
	return NewBehaviorSystem(w, rules, nil, nil), w
}

// addAttacker 在指定位置放置僵尸，返回下标
func addAttacker(w *systems.World, typ types.AttackerType, x, y float64) int {
	return w.Attackers.Push(entities.NewAttacker(w.IDs, typ, utils.V(x, y)))
}

// addDefender 在格子中心放置植物并占用格子，返回下标
func addDefender(w *systems.World, typ types.DefenderType, col, row int) int {
	d := entities.NewDefender(w.IDs, typ, w.Grid.CellCenter(col, row), col, row)
	_ = w.Grid.OccupyCell(col, row, d.ID)
	return w.Defenders.Push(d)
}

// rowY 行中心的世界Y坐标
func rowY(row int) float64 {
	return float64(row)*141 + 70.5
}

func attackerAt(w *systems.World, i int) *components.Attacker { return w.Attackers.At(i) }

func defenderAt(w *systems.World, i int) *components.Defender { return w.Defenders.At(i) }
