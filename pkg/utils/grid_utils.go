package utils

// 屏幕网格布局默认参数
// 屏幕格子与世界格子尺寸不同，绘制时按格子比例换算
const (
	GridStartX       = 375.0 // 网格起始屏幕X坐标
	GridStartY       = 130.0 // 网格起始屏幕Y坐标
	ScreenCellWidth  = 115.0 // 屏幕格子宽度
	ScreenCellHeight = 141.0 // 屏幕格子高度
)

// ScreenLayout 世界坐标与屏幕坐标之间的网格映射
type ScreenLayout struct {
	OriginX, OriginY                float64 // 网格左上角屏幕坐标
	CellWidth, CellHeight           float64 // 屏幕格子尺寸
	WorldTileWidth, WorldTileHeight float64 // 世界格子尺寸
	Columns, Rows                   int
}

// NewScreenLayout 使用默认屏幕参数创建布局
func NewScreenLayout(columns, rows int, worldTileW, worldTileH float64) ScreenLayout {
	return ScreenLayout{
		OriginX:         GridStartX,
		OriginY:         GridStartY,
		CellWidth:       ScreenCellWidth,
		CellHeight:      ScreenCellHeight,
		WorldTileWidth:  worldTileW,
		WorldTileHeight: worldTileH,
		Columns:         columns,
		Rows:            rows,
	}
}

// MouseToGridCoords 将鼠标屏幕坐标转换为网格坐标
// 返回:
//   - col, row: 格子索引
//   - isValid: 是否在网格范围内
func (l ScreenLayout) MouseToGridCoords(mouseX, mouseY int) (col, row int, isValid bool) {
	x := float64(mouseX) - l.OriginX
	y := float64(mouseY) - l.OriginY
	if x < 0 || y < 0 {
		return 0, 0, false
	}

	col = int(x / l.CellWidth)
	row = int(y / l.CellHeight)
	if col >= l.Columns || row >= l.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// GridToScreenCoords 将网格坐标转换为格子中心的屏幕坐标
func (l ScreenLayout) GridToScreenCoords(col, row int) (centerX, centerY float64) {
	centerX = l.OriginX + float64(col)*l.CellWidth + l.CellWidth/2
	centerY = l.OriginY + float64(row)*l.CellHeight + l.CellHeight/2
	return centerX, centerY
}

// WorldToScreen 将世界坐标转换为屏幕坐标（按格子比例缩放）
func (l ScreenLayout) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	screenX = l.OriginX + worldX/l.WorldTileWidth*l.CellWidth
	screenY = l.OriginY + worldY/l.WorldTileHeight*l.CellHeight
	return screenX, screenY
}

// MouseToWorld 返回鼠标所在格子中心的世界坐标
func (l ScreenLayout) MouseToWorld(mouseX, mouseY int) (worldX, worldY float64, isValid bool) {
	col, row, ok := l.MouseToGridCoords(mouseX, mouseY)
	if !ok {
		return 0, 0, false
	}
	worldX = float64(col)*l.WorldTileWidth + l.WorldTileWidth/2
	worldY = float64(row)*l.WorldTileHeight + l.WorldTileHeight/2
	return worldX, worldY, true
}
