package app

import (
	"math"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/game"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// maxEventLog HUD 中保留的最近事件条数
const maxEventLog = 6

// maxFrameLag 单次 Update 最多追赶的模拟时间（秒），窗口卡顿或切到后台后不会连续补帧
const maxFrameLag = 0.25

// 卡片栏布局（屏幕坐标）
const (
	cardBarX   = 20.0
	cardBarY   = 20.0
	cardWidth  = 90.0
	cardHeight = 60.0
	cardGap    = 8.0
)

// cardKeys 选择卡片的按键，依次对应卡片 0..5
var cardKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
}

// battleInput 一帧内的玩家输入
type battleInput struct {
	card         int // 按下的卡片键，-1 表示没有
	toggleShovel bool
	togglePause  bool
	confirm      bool
	cancel       bool
	click        bool
	cursorX      int
	cursorY      int
}

// noInput 空输入
func noInput() battleInput {
	return battleInput{card: -1}
}

// BattleScene 关卡场景：驱动一个模拟引擎并把玩家输入转成种植/铲除请求
type BattleScene struct {
	levelNum int
	level    *config.LevelConfig
	engine   *game.Engine
	layout   utils.ScreenLayout
	step     float64

	scenes   *SceneManager
	progress *game.ProgressManager
	logger   *zap.Logger

	selectedCard int // -1 表示未选择
	shovel       bool
	paused       bool
	recorded     bool // 终局结果已记录
	accumulator  float64
	eventLog     []types.SoundEvent
}

// NewBattleScene 创建关卡场景
//
// 参数：
//   - levelNum: 关卡编号
//   - level: 已加载的关卡配置
//   - step: 固定模拟步长（秒）
//   - scenes: 场景管理器，用于切换关卡
//   - progress: 玩家进度，不能为 nil
//   - logger: 日志器
//   - opts: 引擎选项
func NewBattleScene(levelNum int, level *config.LevelConfig, step float64, scenes *SceneManager,
	progress *game.ProgressManager, logger *zap.Logger, opts ...game.Option) *BattleScene {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]game.Option{game.WithLogger(logger)}, opts...)
	s := level.Settings

	return &BattleScene{
		levelNum:     levelNum,
		level:        level,
		engine:       game.NewEngineFromLevel(level, opts...),
		layout:       utils.NewScreenLayout(s.Width, s.Height, s.TileWidth, s.TileHeight),
		step:         step,
		scenes:       scenes,
		progress:     progress,
		logger:       logger.With(zap.Int("level", levelNum)),
		selectedCard: -1,
	}
}

// Update 处理输入并按固定步长推进模拟
func (s *BattleScene) Update(deltaTime float64) {
	s.handleInput(pollInput())
	s.advance(deltaTime)
}

// pollInput 读取本帧的键盘和指针输入
func pollInput() battleInput {
	in := noInput()
	for i, key := range cardKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.card = i
			break
		}
	}
	in.toggleShovel = inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.togglePause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	p := readPointer()
	in.click = p.pressed
	in.cancel = p.cancel
	in.cursorX, in.cursorY = p.x, p.y
	return in
}

// handleInput 将输入应用到场景
func (s *BattleScene) handleInput(in battleInput) {
	if s.engine.Finished() {
		if in.confirm || in.click {
			s.leave()
		}
		return
	}

	if in.togglePause {
		s.paused = !s.paused
		s.logger.Debug("pause toggled", zap.Bool("paused", s.paused))
	}
	if s.paused {
		return
	}

	if in.card >= 0 && s.cardAvailable(in.card) {
		s.selectedCard = in.card
		s.shovel = false
	}
	if in.toggleShovel {
		s.toggleShovel()
	}
	if in.cancel {
		s.selectedCard = -1
		s.shovel = false
	}

	if !in.click {
		return
	}
	// 触屏设备没有键盘，卡片栏和铲子也可以点选
	if slot := s.cardBarHit(in.cursorX, in.cursorY); slot >= 0 {
		if slot == s.engine.CardCount() {
			s.toggleShovel()
		} else if s.cardAvailable(slot) {
			s.selectedCard = slot
			s.shovel = false
		}
		return
	}
	wx, wy, ok := s.layout.MouseToWorld(in.cursorX, in.cursorY)
	if !ok {
		return
	}

	switch {
	case s.shovel:
		if s.engine.RemoveAt(wx, wy) {
			s.shovel = false
		}
	case s.selectedCard >= 0:
		if s.engine.TryBuild(wx, wy, s.selectedCard) {
			s.selectedCard = -1
		}
	}
}

// toggleShovel 切换铲子，未解锁时忽略
func (s *BattleScene) toggleShovel() {
	if !s.progress.ShovelUnlocked() {
		return
	}
	s.shovel = !s.shovel
	s.selectedCard = -1
}

// cardBarHit 返回屏幕坐标命中的卡片槽位
// 槽位 CardCount 为铲子，未命中返回 -1
func (s *BattleScene) cardBarHit(x, y int) int {
	fx, fy := float64(x), float64(y)
	if fy < cardBarY || fy >= cardBarY+cardHeight || fx < cardBarX {
		return -1
	}
	slot := int((fx - cardBarX) / (cardWidth + cardGap))
	if fx-cardBarX-float64(slot)*(cardWidth+cardGap) >= cardWidth {
		return -1
	}
	if slot > s.engine.CardCount() {
		return -1
	}
	return slot
}

// cardSlotX 卡片槽位的左边界
func cardSlotX(slot int) float64 {
	return cardBarX + float64(slot)*(cardWidth+cardGap)
}

// cardAvailable 卡片是否已解锁
func (s *BattleScene) cardAvailable(index int) bool {
	return index < s.engine.CardCount() && index < s.progress.PlantsCount()
}

// advance 累积时间并以固定步长推进引擎
func (s *BattleScene) advance(deltaTime float64) {
	if s.paused || s.engine.Finished() {
		return
	}

	s.accumulator = math.Min(s.accumulator+deltaTime, maxFrameLag)
	for s.accumulator >= s.step && !s.engine.Finished() {
		s.engine.Advance(s.step)
		s.accumulator -= s.step
		s.recordEvents(s.engine.Events())
	}

	if s.engine.Finished() {
		s.finish()
	}
}

// recordEvents 保留最近的事件用于 HUD 显示
func (s *BattleScene) recordEvents(events []types.SoundEvent) {
	s.eventLog = append(s.eventLog, events...)
	if n := len(s.eventLog); n > maxEventLog {
		s.eventLog = append(s.eventLog[:0], s.eventLog[n-maxEventLog:]...)
	}
}

// finish 终局时记录一次结果，胜利时更新进度
func (s *BattleScene) finish() {
	if s.recorded {
		return
	}
	s.recorded = true
	s.selectedCard = -1
	s.shovel = false

	if !s.engine.Won() {
		s.logger.Info("level failed", zap.Float64("time", s.engine.LevelTime()))
		return
	}

	s.progress.CompleteLevel(s.levelNum)
	if err := s.progress.Save(); err != nil {
		s.logger.Warn("failed to save progress", zap.Error(err))
	}
	s.logger.Info("level completed",
		zap.Float64("time", s.engine.LevelTime()),
		zap.Int("unlockedLevel", s.progress.UnlockedLevel()))
}

// leave 胜利进入下一关，失败重玩本关
func (s *BattleScene) leave() {
	if s.scenes == nil {
		return
	}
	next := s.levelNum
	if s.engine.Won() {
		next = config.NormalizeLevelNumber(s.levelNum + 1)
	}
	if err := s.scenes.LoadLevel(next); err != nil {
		s.logger.Error("failed to switch level", zap.Int("next", next), zap.Error(err))
	}
}
