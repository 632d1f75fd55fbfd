package app

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/game"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 34, G: 70, B: 30, A: 255}
	activeTileA     = color.RGBA{R: 96, G: 160, B: 64, A: 255}
	activeTileB     = color.RGBA{R: 84, G: 146, B: 56, A: 255}
	inactiveTile    = color.RGBA{R: 110, G: 88, B: 60, A: 255}
	healthBarBack   = color.RGBA{R: 40, G: 40, B: 40, A: 200}
	healthBarFront  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	frozenTint      = color.RGBA{R: 120, G: 190, B: 255, A: 255}
	projectileColor = color.RGBA{R: 120, G: 230, B: 80, A: 255}
	selectedColor   = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	cardColor       = color.RGBA{R: 70, G: 60, B: 40, A: 255}
	cooldownColor   = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

// defenderColors 植物颜色
var defenderColors = map[types.DefenderType]color.RGBA{
	types.DefenderPeashooter: {R: 60, G: 200, B: 60, A: 255},
	types.DefenderSunflower:  {R: 250, G: 210, B: 40, A: 255},
	types.DefenderWallNut:    {R: 170, G: 120, B: 60, A: 255},
	types.DefenderPotatoMine: {R: 150, G: 110, B: 70, A: 255},
	types.DefenderCherryBomb: {R: 210, G: 30, B: 40, A: 255},
	types.DefenderIceLettuce: {R: 170, G: 230, B: 250, A: 255},
}

// attackerColors 僵尸颜色
var attackerColors = map[types.AttackerType]color.RGBA{
	types.AttackerNormal:     {R: 130, G: 140, B: 150, A: 255},
	types.AttackerConehead:   {R: 240, G: 140, B: 40, A: 255},
	types.AttackerBuckethead: {R: 160, G: 160, B: 170, A: 255},
	types.AttackerFootball:   {R: 180, G: 40, B: 40, A: 255},
	types.AttackerNewspaper:  {R: 230, G: 230, B: 210, A: 255},
	types.AttackerImp:        {R: 150, G: 170, B: 120, A: 255},
	types.AttackerGargantuar: {R: 90, G: 80, B: 70, A: 255},
	types.AttackerFlag:       {R: 200, G: 30, B: 30, A: 255},
}

// markerColors 范围效果颜色（半透明）
var markerColors = map[types.MarkerKind]color.RGBA{
	types.MarkerMine:   {R: 255, G: 160, B: 40, A: 120},
	types.MarkerCherry: {R: 255, G: 60, B: 30, A: 120},
	types.MarkerIce:    {R: 140, G: 210, B: 255, A: 120},
}

// markerRadii 范围效果的世界半径
var markerRadii = map[types.MarkerKind]float64{
	types.MarkerMine:   config.PotatoMineBlastRadius,
	types.MarkerCherry: config.CherryBombRadius,
	types.MarkerIce:    config.IceLettuceRadius,
}

// Draw 绘制关卡
func (s *BattleScene) Draw(screen *ebiten.Image) {
	snap := s.engine.Snapshot()

	screen.Fill(backgroundColor)
	s.drawLawn(screen)
	s.drawDefenders(screen, snap.Defenders)
	s.drawAttackers(screen, snap.Attackers)
	s.drawProjectiles(screen, snap.Projectiles)
	s.drawMarkers(screen, snap.Markers)
	s.drawHUD(screen, &snap)
	s.drawOverlay(screen, &snap)
}

// scale 世界长度到屏幕长度的换算比例
func (s *BattleScene) scale() float64 {
	return s.layout.CellWidth / s.layout.WorldTileWidth
}

// drawLawn 绘制网格，不可种植的行使用泥土色
func (s *BattleScene) drawLawn(screen *ebiten.Image) {
	grid := s.engine.Grid()
	for row := 0; row < s.layout.Rows; row++ {
		for col := 0; col < s.layout.Columns; col++ {
			clr := inactiveTile
			if grid.IsRowActive(row) {
				clr = activeTileA
				if (row+col)%2 == 1 {
					clr = activeTileB
				}
			}
			cx, cy := s.layout.GridToScreenCoords(col, row)
			x, y := cx-s.layout.CellWidth/2, cy-s.layout.CellHeight/2
			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(s.layout.CellWidth), float32(s.layout.CellHeight), clr, false)
		}
	}
}

func (s *BattleScene) drawDefenders(screen *ebiten.Image, defenders []game.DefenderView) {
	for _, d := range defenders {
		x, y := s.layout.WorldToScreen(d.Pos.X, d.Pos.Y)
		r := config.DefenderDefaultRadius * s.scale()
		clr := defenderColors[d.Type]
		if d.Type == types.DefenderPotatoMine && d.Cooldown > 0 {
			// 布防中显示为暗色
			clr.A = 140
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), clr, true)
		drawHealthBar(screen, x-r, y+r+4, 2*r, d.Health/d.MaxHealth)
	}
}

func (s *BattleScene) drawAttackers(screen *ebiten.Image, attackers []game.AttackerView) {
	for _, a := range attackers {
		x, y := s.layout.WorldToScreen(a.Pos.X, a.Pos.Y)
		w := config.AttackerDefaultRadius * s.scale()
		h := 1.8 * w
		if a.Type == types.AttackerGargantuar {
			w, h = 1.6*w, 1.4*h
		}

		clr := attackerColors[a.Type]
		if a.Flags&components.AttackerFlagFrozen != 0 {
			clr = frozenTint
		}
		left, top := x-w/2, y-h/2
		vector.DrawFilledRect(screen, float32(left), float32(top), float32(w), float32(h), clr, true)

		// 护甲状态：顶部条纹数量
		for i := 0; i < a.ArmorState; i++ {
			vector.StrokeLine(screen, float32(left), float32(top+3+float64(i)*5),
				float32(left+w), float32(top+3+float64(i)*5), 3, color.Black, true)
		}
		if a.Flags&components.AttackerFlagNewspaper != 0 {
			vector.DrawFilledRect(screen, float32(left-8), float32(y-10), 10, 20, color.White, true)
		}
		if a.Flags&components.AttackerFlagArmVisible != 0 {
			vector.StrokeLine(screen, float32(left), float32(y), float32(left-12), float32(y+4), 3, clr, true)
		}
		if a.Flags&components.AttackerFlagEating != 0 {
			vector.StrokeCircle(screen, float32(left), float32(y), 6, 2, color.White, true)
		}
		drawHealthBar(screen, left, top-8, w, a.Health/a.MaxHealth)
	}
}

func (s *BattleScene) drawProjectiles(screen *ebiten.Image, projectiles []game.ProjectileView) {
	r := float32(config.PeaBulletRadius * s.scale() / 2)
	for _, p := range projectiles {
		x, y := s.layout.WorldToScreen(p.Pos.X, p.Pos.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, projectileColor, true)
	}
}

func (s *BattleScene) drawMarkers(screen *ebiten.Image, markers []game.MarkerView) {
	for _, m := range markers {
		x, y := s.layout.WorldToScreen(m.Pos.X, m.Pos.Y)
		r := markerRadii[m.Kind] * s.scale()
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), markerColors[m.Kind], true)
	}
}

// drawHealthBar 绘制血条，ratio 取值 0~1
func drawHealthBar(screen *ebiten.Image, x, y, width, ratio float64) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), 4, healthBarBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*ratio), 4, healthBarFront, false)
}

// drawHUD 绘制阳光、生命、卡片栏和最近事件
func (s *BattleScene) drawHUD(screen *ebiten.Image, snap *game.Snapshot) {
	status := fmt.Sprintf("%s  sun: %d (+%.0fs)  lives: %d  time: %.1fs  zombies: %d  waves left: %d",
		s.level.Name, snap.Money, s.engine.NextIncomeIn(), snap.Lives, snap.Time,
		s.engine.AttackersAlive(), s.engine.PendingWaves())
	if in, ok := s.engine.NextWaveIn(); ok {
		status += fmt.Sprintf(" (next %.0fs)", in)
	}
	ebitenutil.DebugPrintAt(screen, status, int(cardBarX), int(cardBarY+cardHeight+10))

	for i := 0; i < s.engine.CardCount(); i++ {
		card, _ := s.engine.Card(i)
		x := cardSlotX(i)

		vector.DrawFilledRect(screen, float32(x), cardBarY, cardWidth, cardHeight, cardColor, false)
		if !s.cardAvailable(i) {
			vector.DrawFilledRect(screen, float32(x), cardBarY, cardWidth, cardHeight, overlayColor, false)
			continue
		}

		vector.DrawFilledCircle(screen, float32(x+18), cardBarY+30, 12, defenderColors[card.Type], true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d %s", i+1, card.Type), int(x)+4, int(cardBarY)+2)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", card.Cost), int(x)+40, int(cardBarY)+40)

		// 冷却遮罩从上往下收缩
		if frac := snap.CardCooldown(i); frac > 0 {
			vector.DrawFilledRect(screen, float32(x), cardBarY, cardWidth, float32(cardHeight*frac), cooldownColor, false)
		}
		if card.Cost > snap.Money {
			vector.DrawFilledRect(screen, float32(x), cardBarY, cardWidth, cardHeight, cooldownColor, false)
		}
		if i == s.selectedCard {
			vector.StrokeRect(screen, float32(x), cardBarY, cardWidth, cardHeight, 3, selectedColor, false)
		}
	}

	if s.progress.ShovelUnlocked() {
		x := cardSlotX(s.engine.CardCount())
		vector.DrawFilledRect(screen, float32(x), cardBarY, cardWidth, cardHeight, cardColor, false)
		ebitenutil.DebugPrintAt(screen, "shovel", int(x)+4, int(cardBarY)+2)
		if s.shovel {
			vector.StrokeRect(screen, float32(x), cardBarY, cardWidth, cardHeight, 3, selectedColor, false)
		}
	}

	tool := "none"
	switch {
	case s.shovel:
		tool = "shovel"
	case s.selectedCard >= 0:
		card, _ := s.engine.Card(s.selectedCard)
		tool = card.Type.String()
	}
	hint := "[1-6] card  [Esc] pause  [RMB] cancel"
	if s.progress.ShovelUnlocked() {
		hint = "[1-6] card  [S] shovel  [Esc] pause  [RMB] cancel"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tool: %s   %s", tool, hint), int(cardBarX), int(cardBarY+cardHeight+26))

	if len(s.eventLog) > 0 {
		names := make([]string, len(s.eventLog))
		for i, ev := range s.eventLog {
			names[i] = ev.String()
		}
		ebitenutil.DebugPrintAt(screen, "events: "+strings.Join(names, ", "), int(cardBarX), int(cardBarY+cardHeight+42))
	}
}

// drawOverlay 暂停和终局提示
func (s *BattleScene) drawOverlay(screen *ebiten.Image, snap *game.Snapshot) {
	var msg string
	switch {
	case snap.Won:
		msg = fmt.Sprintf("LEVEL COMPLETE - click or press Enter for level %d", config.NormalizeLevelNumber(s.levelNum+1))
	case snap.Lost:
		msg = "THE ZOMBIES ATE YOUR BRAINS - click or press Enter to retry"
	case s.paused:
		msg = "PAUSED - press Esc to resume"
	default:
		return
	}

	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), overlayColor, false)
	ebitenutil.DebugPrintAt(screen, msg, bounds.Dx()/2-len(msg)*3, bounds.Dy()/2)
}
