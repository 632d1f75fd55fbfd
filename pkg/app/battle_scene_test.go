package app

import (
	"testing"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/game"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
)

// newTestScene 单行关卡的场景，进度解锁到第 unlocked 关
func newTestScene(t *testing.T, unlocked int, waves []config.WaveEntry) (*BattleScene, *game.ProgressManager) {
	t.Helper()
	progress, err := game.NewProgressManager(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for n := 1; n < unlocked; n++ {
		progress.CompleteLevel(n)
	}

	level := &config.LevelConfig{
		Name: "test",
		Settings: config.LevelSettings{
			StartMoney:      500,
			Lives:           5,
			AutoSunAmount:   25,
			AutoSunInterval: 10,
			Width:           9,
			Height:          5,
			TileWidth:       110,
			TileHeight:      141,
			ActiveRows:      []int{2},
		},
		Waves: waves,
	}
	return NewBattleScene(1, level, 1.0/64, nil, progress, nil), progress
}

var pendingWave = []config.WaveEntry{{Time: 1e6, Type: config.AttackerKind(types.AttackerNormal), Row: 2}}

// cellClick 点击指定格子中心
func cellClick(col, row int) battleInput {
	x, y := utils.NewScreenLayout(9, 5, 110, 141).GridToScreenCoords(col, row)
	in := noInput()
	in.click = true
	in.cursorX, in.cursorY = int(x), int(y)
	return in
}

func keyInput(card int) battleInput {
	in := noInput()
	in.card = card
	return in
}

// TestBattleSceneBuild 选卡后点击格子种植
func TestBattleSceneBuild(t *testing.T) {
	s, _ := newTestScene(t, 1, pendingWave)

	// 未选卡时点击无效
	s.handleInput(cellClick(1, 2))
	if n := len(s.engine.Snapshot().Defenders); n != 0 {
		t.Fatalf("defenders = %d, want 0", n)
	}

	s.handleInput(keyInput(0))
	if s.selectedCard != 0 {
		t.Fatalf("selectedCard = %d, want 0", s.selectedCard)
	}
	s.handleInput(cellClick(1, 2))
	if n := len(s.engine.Snapshot().Defenders); n != 1 {
		t.Fatalf("defenders = %d, want 1", n)
	}
	if s.selectedCard != -1 {
		t.Error("selection should clear after a successful build")
	}
	if s.engine.Money() != 400 {
		t.Errorf("money = %d, want 400", s.engine.Money())
	}
}

// TestBattleSceneLockedCards 未解锁的卡片不能选择
func TestBattleSceneLockedCards(t *testing.T) {
	tests := []struct {
		name     string
		unlocked int
		card     int
		want     int
	}{
		{"新存档只能用第一张", 1, 1, -1},
		{"第一张", 1, 0, 0},
		{"第3关解锁三张", 3, 2, 2},
		{"越界卡片", 9, 7, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScene(t, tt.unlocked, pendingWave)
			s.handleInput(keyInput(tt.card))
			if s.selectedCard != tt.want {
				t.Errorf("selectedCard = %d, want %d", s.selectedCard, tt.want)
			}
		})
	}
}

// TestBattleSceneShovel 铲子解锁后才能使用
func TestBattleSceneShovel(t *testing.T) {
	locked, _ := newTestScene(t, 1, pendingWave)
	in := noInput()
	in.toggleShovel = true
	locked.handleInput(in)
	if locked.shovel {
		t.Fatal("shovel should be locked on a fresh save")
	}

	s, _ := newTestScene(t, 5, pendingWave)
	s.handleInput(keyInput(2))
	s.handleInput(cellClick(3, 2))
	if n := len(s.engine.Snapshot().Defenders); n != 1 {
		t.Fatalf("defenders = %d, want 1", n)
	}

	s.handleInput(in)
	if !s.shovel || s.selectedCard != -1 {
		t.Fatalf("shovel=%v selected=%d", s.shovel, s.selectedCard)
	}
	s.handleInput(cellClick(3, 2))
	if n := len(s.engine.Snapshot().Defenders); n != 0 {
		t.Errorf("defenders after shovel = %d, want 0", n)
	}
	if s.shovel {
		t.Error("shovel should be put away after use")
	}
}

// screenClick 点击屏幕坐标
func screenClick(x, y float64) battleInput {
	in := noInput()
	in.click = true
	in.cursorX, in.cursorY = int(x), int(y)
	return in
}

// TestBattleSceneCardBarClick 点击卡片栏选卡和铲子
func TestBattleSceneCardBarClick(t *testing.T) {
	tests := []struct {
		name       string
		unlocked   int
		x, y       float64
		wantCard   int
		wantShovel bool
	}{
		{name: "点击第一张卡", unlocked: 1, x: cardSlotX(0) + 10, y: cardBarY + 10, wantCard: 0},
		{name: "点击未解锁的卡", unlocked: 1, x: cardSlotX(3) + 10, y: cardBarY + 10, wantCard: -1},
		{name: "点击卡片间隙", unlocked: 8, x: cardSlotX(1) - cardGap/2, y: cardBarY + 10, wantCard: -1},
		{name: "铲子未解锁", unlocked: 1, x: cardSlotX(6) + 10, y: cardBarY + 10, wantCard: -1},
		{name: "点击铲子", unlocked: 5, x: cardSlotX(6) + 10, y: cardBarY + 10, wantCard: -1, wantShovel: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScene(t, tt.unlocked, pendingWave)
			s.handleInput(screenClick(tt.x, tt.y))
			if s.selectedCard != tt.wantCard {
				t.Errorf("selectedCard = %d, want %d", s.selectedCard, tt.wantCard)
			}
			if s.shovel != tt.wantShovel {
				t.Errorf("shovel = %v, want %v", s.shovel, tt.wantShovel)
			}
			if n := len(s.engine.Snapshot().Defenders); n != 0 {
				t.Errorf("card bar click built %d defenders", n)
			}
		})
	}
}

// TestBattleScenePause 暂停时不推进也不响应种植
func TestBattleScenePause(t *testing.T) {
	s, _ := newTestScene(t, 1, pendingWave)

	pause := noInput()
	pause.togglePause = true
	s.handleInput(pause)
	if !s.paused {
		t.Fatal("scene should be paused")
	}

	s.advance(1)
	if s.engine.LevelTime() != 0 {
		t.Errorf("level time advanced while paused: %v", s.engine.LevelTime())
	}
	s.handleInput(keyInput(0))
	if s.selectedCard != -1 {
		t.Error("card selection should be ignored while paused")
	}

	s.handleInput(pause)
	s.advance(0.25)
	s.advance(0.25)
	if s.engine.Frame() != 32 {
		t.Errorf("frames = %d, want 32", s.engine.Frame())
	}
}

// TestBattleSceneFrameLag 长时间卡顿后只追赶有限的模拟时间
func TestBattleSceneFrameLag(t *testing.T) {
	tests := []struct {
		name       string
		deltas     []float64
		wantFrames uint64
	}{
		{"正常帧", []float64{1.0 / 64}, 1},
		{"恰好上限", []float64{maxFrameLag}, 16},
		{"切到后台十秒", []float64{10}, 16},
		{"卡顿后恢复", []float64{10, 1.0 / 64}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScene(t, 1, pendingWave)
			for _, dt := range tt.deltas {
				s.advance(dt)
			}
			if got := s.engine.Frame(); got != tt.wantFrames {
				t.Errorf("frames = %d, want %d", got, tt.wantFrames)
			}
			if s.accumulator >= s.step {
				t.Errorf("accumulator = %v, should stay below one step", s.accumulator)
			}
		})
	}
}

// TestBattleSceneWinRecordsProgress 胜利时记录一次进度
func TestBattleSceneWinRecordsProgress(t *testing.T) {
	s, progress := newTestScene(t, 1, nil)

	s.advance(0.1)
	if !s.engine.Won() {
		t.Fatal("empty level should be won")
	}
	if progress.UnlockedLevel() != 2 || progress.PlantsCount() != 2 {
		t.Errorf("progress = %+v, want level 2 with 2 plants", progress.Data())
	}
	if !s.recorded {
		t.Error("result should be recorded")
	}

	// 终局后输入只用于离开场景
	s.handleInput(keyInput(0))
	if s.selectedCard != -1 {
		t.Error("card selection should be ignored after the level ended")
	}
}

// TestBattleSceneEventLog 事件日志只保留最近几条
func TestBattleSceneEventLog(t *testing.T) {
	s, _ := newTestScene(t, 1, pendingWave)
	for i := 0; i < 10; i++ {
		s.recordEvents([]types.SoundEvent{types.SoundEvent(i % 9)})
	}
	if len(s.eventLog) != maxEventLog {
		t.Fatalf("event log size = %d, want %d", len(s.eventLog), maxEventLog)
	}
	if last := s.eventLog[maxEventLog-1]; last != types.SoundEvent(0) {
		t.Errorf("last event = %v, want the most recent one", last)
	}
}

// TestStartLevel 启动关卡的优先级
func TestStartLevel(t *testing.T) {
	progress, _ := game.NewProgressManager(nil, nil)
	progress.CompleteLevel(3)

	tests := []struct {
		name  string
		cfg   Config
		start int
		want  int
	}{
		{"命令行参数", Config{Level: 5}, 2, 5},
		{"设置", Config{}, 2, 2},
		{"存档进度", Config{}, 0, 4},
		{"越界回到第1关", Config{Level: 42}, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.Levels.Start = tt.start
			if got := StartLevel(tt.cfg, settings, progress); got != tt.want {
				t.Errorf("StartLevel() = %d, want %d", got, tt.want)
			}
		})
	}
}
