package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/game"
	"github.com/gonewx/towerengine/pkg/types"
	"go.uber.org/zap"
)

const (
	cellW       = 6 // 每个格子占用的终端列数
	cellH       = 2 // 每个格子占用的终端行数
	marginCols  = 2 // 网格右侧留给出生点的格数
	headerLines = 3
)

var (
	styleHeader   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCard     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleCardSel  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleCardWait = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLawnA    = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleLawnB    = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleLocked   = tcell.StyleDefault.Background(tcell.ColorSaddleBrown)
	styleCursor   = tcell.StyleDefault.Reverse(true)
	styleDefender = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleAttacker = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleFrozen   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleShot     = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleMarker   = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

var defenderGlyphs = map[types.DefenderType]rune{
	types.DefenderPeashooter: 'P',
	types.DefenderSunflower:  'S',
	types.DefenderWallNut:    'W',
	types.DefenderPotatoMine: 'M',
	types.DefenderCherryBomb: 'C',
	types.DefenderIceLettuce: 'L',
}

var attackerGlyphs = map[types.AttackerType]rune{
	types.AttackerNormal:     'z',
	types.AttackerConehead:   'c',
	types.AttackerBuckethead: 'b',
	types.AttackerFootball:   'f',
	types.AttackerNewspaper:  'n',
	types.AttackerImp:        'i',
	types.AttackerGargantuar: 'G',
	types.AttackerFlag:       'F',
}

// levelLoader 按编号加载关卡
type levelLoader func(n int) (*config.LevelConfig, error)

// tui 终端宿主：键盘选卡、方向键移动光标、空格种植
type tui struct {
	levelNum int
	load     levelLoader
	opts     []game.Option
	engine   *game.Engine
	step     float64

	cursorCol, cursorRow int
	selected             int
	shovel               bool
	paused               bool
	pilot                *game.Autopilot
	message              string

	logger *zap.Logger
}

func newTUI(levelNum int, step float64, load levelLoader, logger *zap.Logger, opts ...game.Option) (*tui, error) {
	t := &tui{
		levelNum: levelNum,
		load:     load,
		opts:     opts,
		step:     step,
		logger:   logger,
	}
	if err := t.startLevel(levelNum); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tui) startLevel(n int) error {
	n = config.NormalizeLevelNumber(n)
	level, err := t.load(n)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}

	t.levelNum = n
	t.engine = game.NewEngineFromLevel(level, t.opts...)
	t.selected = 0
	t.shovel = false
	t.paused = false

	rows := t.engine.Grid().ActiveRows()
	t.cursorCol = 0
	t.cursorRow = 0
	if len(rows) > 0 {
		t.cursorRow = rows[0]
	}
	t.message = level.Name
	t.logger.Info("level started", zap.Int("level", n), zap.String("name", level.Name))
	return nil
}

// handleKey 处理按键，返回 false 表示退出
func (t *tui) handleKey(key tcell.Key, r rune) bool {
	grid := t.engine.Grid()

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		if t.cursorRow > 0 {
			t.cursorRow--
		}
	case tcell.KeyDown:
		if t.cursorRow < grid.Height-1 {
			t.cursorRow++
		}
	case tcell.KeyLeft:
		if t.cursorCol > 0 {
			t.cursorCol--
		}
	case tcell.KeyRight:
		if t.cursorCol < grid.Width-1 {
			t.cursorCol++
		}
	case tcell.KeyEnter:
		t.act()
	case tcell.KeyRune:
		return t.handleRune(r)
	}
	return true
}

func (t *tui) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r >= '1' && r <= '9':
		idx := int(r - '1')
		if idx < t.engine.CardCount() {
			t.selected = idx
			t.shovel = false
		}
	case r == ' ':
		t.act()
	case r == 'x':
		t.shovel = !t.shovel
	case r == 'p':
		if !t.engine.Finished() {
			t.paused = !t.paused
		}
	case r == 'a':
		if t.pilot == nil {
			t.pilot = game.NewAutopilot()
			t.message = "autopilot on"
		} else {
			t.pilot = nil
			t.message = "autopilot off"
		}
	case r == 'r':
		if err := t.startLevel(t.levelNum); err != nil {
			t.message = err.Error()
		}
	case r == 'n':
		if t.engine.Won() {
			if err := t.startLevel(t.levelNum + 1); err != nil {
				t.message = err.Error()
			}
		}
	}
	return true
}

// act 在光标处种植或铲除
func (t *tui) act() {
	if t.paused || t.engine.Finished() {
		return
	}
	center := t.engine.Grid().CellCenter(t.cursorCol, t.cursorRow)
	if t.shovel {
		if t.engine.RemoveAt(center.X, center.Y) {
			t.message = "removed"
		} else {
			t.message = "nothing to remove"
		}
		return
	}
	if t.engine.TryBuild(center.X, center.Y, t.selected) {
		card, _ := t.engine.Card(t.selected)
		t.message = fmt.Sprintf("built %s", card.Type)
	} else {
		t.message = "cannot build here"
	}
}

// tick 推进一帧
func (t *tui) tick() {
	if t.paused || t.engine.Finished() {
		return
	}
	if t.pilot != nil {
		t.pilot.Act(t.engine)
	}
	t.engine.Advance(t.step)
	if t.engine.Finished() {
		t.logger.Info("level finished",
			zap.Int("level", t.levelNum),
			zap.Bool("won", t.engine.Won()),
			zap.Float64("time", t.engine.LevelTime()))
	}
}

// canvasSize 当前关卡需要的画布尺寸
func (t *tui) canvasSize() (w, h int) {
	grid := t.engine.Grid()
	w = (grid.Width + marginCols) * cellW
	h = headerLines + grid.Height*cellH + 2
	return w, h
}

// screenPos 世界坐标转换为画布坐标
func (t *tui) screenPos(x, y float64) (int, int) {
	grid := t.engine.Grid()
	sx := int(x / grid.TileWidth * cellW)
	sy := headerLines + int(y/grid.TileHeight*cellH)
	return sx, sy
}

func (t *tui) draw(c *canvas) {
	c.clear()
	snap := t.engine.Snapshot()

	t.drawHeader(c, &snap)
	t.drawLawn(c)

	for _, d := range snap.Defenders {
		x, y := t.screenPos(d.Pos.X, d.Pos.Y)
		g, ok := defenderGlyphs[d.Type]
		if !ok {
			g = '?'
		}
		c.set(x, y, g, styleDefender)
	}
	for _, p := range snap.Projectiles {
		x, y := t.screenPos(p.Pos.X, p.Pos.Y)
		c.set(x, y, '•', styleShot)
	}
	for _, m := range snap.Markers {
		x, y := t.screenPos(m.Pos.X, m.Pos.Y)
		c.set(x, y, '*', styleMarker)
	}
	for _, a := range snap.Attackers {
		x, y := t.screenPos(a.Pos.X, a.Pos.Y)
		g, ok := attackerGlyphs[a.Type]
		if !ok {
			g = 'z'
		}
		style := styleAttacker
		if a.Flags&components.AttackerFlagFrozen != 0 {
			style = styleFrozen
		}
		c.set(x, y, g, style)
	}

	t.drawStatus(c, &snap)
}

func (t *tui) drawHeader(c *canvas, snap *game.Snapshot) {
	header := fmt.Sprintf("Level %d  Sun %d  Lives %d  Time %.1fs  Waves %d",
		t.levelNum, snap.Money, snap.Lives, snap.Time, t.engine.PendingWaves())
	c.text(0, 0, header, styleHeader)

	x := 0
	for i := 0; i < t.engine.CardCount(); i++ {
		card, _ := t.engine.Card(i)
		label := fmt.Sprintf("[%d %s %d]", i+1, card.Type, card.Cost)
		style := styleCard
		switch {
		case !t.shovel && i == t.selected:
			style = styleCardSel
		case snap.CardCooldown(i) > 0 || snap.Money < card.Cost:
			style = styleCardWait
		}
		c.text(x, 1, label, style)
		x += len(label) + 1
	}
	if t.shovel {
		c.text(x, 1, "[shovel]", styleCardSel)
	}

	info := fmt.Sprintf("Zombies %d  Sun in %.0fs", t.engine.AttackersAlive(), t.engine.NextIncomeIn())
	if in, ok := t.engine.NextWaveIn(); ok {
		info += fmt.Sprintf("  Next zombie %.0fs", in)
	}
	c.text(0, 2, info, styleStatus)
}

func (t *tui) drawLawn(c *canvas) {
	grid := t.engine.Grid()
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			style := styleLawnA
			if (row+col)%2 == 1 {
				style = styleLawnB
			}
			if !grid.IsRowActive(row) {
				style = styleLocked
			}
			if col == t.cursorCol && row == t.cursorRow {
				style = styleCursor
			}
			for dy := 0; dy < cellH; dy++ {
				for dx := 0; dx < cellW; dx++ {
					c.set(col*cellW+dx, headerLines+row*cellH+dy, ' ', style)
				}
			}
		}
	}
}

func (t *tui) drawStatus(c *canvas, snap *game.Snapshot) {
	y := headerLines + t.engine.Grid().Height*cellH
	status := t.message
	switch {
	case snap.Won:
		status = "LEVEL CLEARED  n: next level  r: replay"
	case snap.Lost:
		status = "THE ZOMBIES GOT THROUGH  r: retry"
	case t.paused:
		status = "PAUSED"
	}
	if d, ok := t.engine.DefenderAt(t.cursorCol, t.cursorRow); ok && !snap.Won && !snap.Lost {
		status += fmt.Sprintf("  [%s %.0f/%.0f]", d.Type, d.Health, d.MaxHealth)
	}
	c.text(0, y, status, styleStatus)
	c.text(0, y+1, "1-9 card  arrows move  space build  x shovel  a autopilot  p pause  q quit", styleCard)
}
