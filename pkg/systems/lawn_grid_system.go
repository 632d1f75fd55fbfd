package systems

import (
	"fmt"
	"math"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/ecs"
	"github.com/gonewx/towerengine/pkg/utils"
)

// GridMap 草坪网格
// 负责坐标与格子的换算、可种植行以及格子占用状态
type GridMap struct {
	Width      int     // 列数
	Height     int     // 行数
	TileWidth  float64 // 格子宽度（世界坐标）
	TileHeight float64 // 格子高度（世界坐标）

	activeRows map[int]bool
	occupancy  []ecs.EntityID // 行优先，0 表示空
}

// NewGridMap 创建网格
// activeRows 为 nil 时所有行可种植，越界的行号被忽略
func NewGridMap(width, height int, tileW, tileH float64, activeRows []int) *GridMap {
	g := &GridMap{
		Width:      width,
		Height:     height,
		TileWidth:  tileW,
		TileHeight: tileH,
		activeRows: make(map[int]bool, height),
		occupancy:  make([]ecs.EntityID, width*height),
	}

	if activeRows == nil {
		for r := 0; r < height; r++ {
			g.activeRows[r] = true
		}
	} else {
		for _, r := range activeRows {
			if r >= 0 && r < height {
				g.activeRows[r] = true
			}
		}
	}
	return g
}

// NewGridMapFromLevel 根据关卡设置创建网格
func NewGridMapFromLevel(s config.LevelSettings) *GridMap {
	return NewGridMap(s.Width, s.Height, s.TileWidth, s.TileHeight, s.ActiveRows)
}

// CellAt 返回世界坐标所在的格子
// 返回:
//   - col, row: 格子索引
//   - ok: 是否在网格范围内
func (g *GridMap) CellAt(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x / g.TileWidth))
	row = int(math.Floor(y / g.TileHeight))
	if !g.InBounds(col, row) {
		return col, row, false
	}
	return col, row, true
}

// CellCenter 返回格子中心的世界坐标
func (g *GridMap) CellCenter(col, row int) utils.Vec2 {
	return utils.V(
		float64(col)*g.TileWidth+g.TileWidth/2,
		float64(row)*g.TileHeight+g.TileHeight/2,
	)
}

// RowOf 返回世界Y坐标所在的行（可能越界）
func (g *GridMap) RowOf(y float64) int {
	return int(math.Floor(y / g.TileHeight))
}

// InBounds 格子是否在网格范围内
func (g *GridMap) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// IsRowActive 该行是否可种植
func (g *GridMap) IsRowActive(row int) bool {
	return g.activeRows[row]
}

// ActiveRows 返回所有可种植行（升序）
func (g *GridMap) ActiveRows() []int {
	rows := make([]int, 0, len(g.activeRows))
	for r := 0; r < g.Height; r++ {
		if g.activeRows[r] {
			rows = append(rows, r)
		}
	}
	return rows
}

// OccupantAt 返回占用格子的实体ID，空格子或越界返回 0
func (g *GridMap) OccupantAt(col, row int) ecs.EntityID {
	if !g.InBounds(col, row) {
		return 0
	}
	return g.occupancy[row*g.Width+col]
}

// IsBuildable 世界坐标所在格子是否可种植
// 条件：在网格范围内、所在行可种植、格子未被占用
func (g *GridMap) IsBuildable(x, y float64) bool {
	col, row, ok := g.CellAt(x, y)
	if !ok {
		return false
	}
	if !g.IsRowActive(row) {
		return false
	}
	return g.OccupantAt(col, row) == 0
}

// OccupyCell 标记格子被占用
// 返回:
//   - error: 位置无效或格子已被占用
func (g *GridMap) OccupyCell(col, row int, id ecs.EntityID) error {
	if !g.InBounds(col, row) {
		return fmt.Errorf("invalid grid position: col=%d, row=%d (grid %dx%d)", col, row, g.Width, g.Height)
	}
	idx := row*g.Width + col
	if g.occupancy[idx] != 0 {
		return fmt.Errorf("grid cell (%d, %d) is already occupied by entity %d", col, row, g.occupancy[idx])
	}
	g.occupancy[idx] = id
	return nil
}

// ReleaseCell 清空格子占用
// 只有占用者本身才能释放，避免误清其他实体的占用
func (g *GridMap) ReleaseCell(col, row int, id ecs.EntityID) {
	if !g.InBounds(col, row) {
		return
	}
	idx := row*g.Width + col
	if g.occupancy[idx] == id {
		g.occupancy[idx] = 0
	}
}

// SpawnPoint 返回指定行的僵尸出生点
func (g *GridMap) SpawnPoint(row int, offsetX float64) utils.Vec2 {
	return utils.V(
		float64(g.Width)*g.TileWidth+offsetX,
		float64(row)*g.TileHeight+g.TileHeight/2,
	)
}
