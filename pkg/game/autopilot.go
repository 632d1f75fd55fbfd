package game

import (
	"github.com/gonewx/towerengine/pkg/types"
)

// Autopilot 简单的自动种植策略，供无界面批量模拟使用
//
// 每帧：
//  1. 每个可种植行的第0列种一株向日葵
//  2. 所有行都有向日葵后，从左到右逐列补种豌豆射手
//
// 只通过 TryBuild 操作引擎，不会绕过任何种植规则。
type Autopilot struct {
	Producer types.DefenderType
	Shooter  types.DefenderType
	// MaxShooterColumns 豌豆射手最多占用的列数（不含第0列），<=0 表示不限
	MaxShooterColumns int
}

// NewAutopilot 创建默认策略：向日葵 + 豌豆射手
func NewAutopilot() *Autopilot {
	return &Autopilot{
		Producer: types.DefenderSunflower,
		Shooter:  types.DefenderPeashooter,
	}
}

// Act 执行一次决策，返回本次成功种植的数量
func (ap *Autopilot) Act(e *Engine) int {
	if e.Finished() {
		return 0
	}

	producerCard := findCard(e, ap.Producer)
	shooterCard := findCard(e, ap.Shooter)
	grid := e.Grid()
	rows := grid.ActiveRows()
	built := 0

	missingProducer := false
	if producerCard >= 0 {
		for _, row := range rows {
			if grid.OccupantAt(0, row) != 0 {
				continue
			}
			center := grid.CellCenter(0, row)
			if e.TryBuild(center.X, center.Y, producerCard) {
				built++
				continue
			}
			missingProducer = true
		}
	}
	if missingProducer || shooterCard < 0 {
		return built
	}

	lastCol := grid.Width - 1
	if ap.MaxShooterColumns > 0 && ap.MaxShooterColumns < lastCol {
		lastCol = ap.MaxShooterColumns
	}
	for col := 1; col <= lastCol; col++ {
		for _, row := range rows {
			if grid.OccupantAt(col, row) != 0 {
				continue
			}
			center := grid.CellCenter(col, row)
			if !e.TryBuild(center.X, center.Y, shooterCard) {
				return built
			}
			built++
		}
	}
	return built
}

// findCard 返回指定植物类型的卡片下标，没有时返回 -1
func findCard(e *Engine, typ types.DefenderType) int {
	for i := 0; i < e.CardCount(); i++ {
		if card, ok := e.Card(i); ok && card.Type == typ {
			return i
		}
	}
	return -1
}
