package game

import (
	"math"
	"math/rand"
	"slices"

	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/entities"
	"github.com/gonewx/towerengine/pkg/systems"
	"github.com/gonewx/towerengine/pkg/systems/behavior"
	"github.com/gonewx/towerengine/pkg/types"
	"github.com/gonewx/towerengine/pkg/utils"
	"go.uber.org/zap"
)

// Engine 单局模拟引擎
//
// 引擎独占所有可变状态，宿主每帧调用一次 Advance。
// 引擎不做任何同步，同一实例不得被多个 goroutine 同时访问；
// 不同实例之间相互独立，可以并行运行。
type Engine struct {
	world    *systems.World
	waves    *systems.WaveSpawnSystem
	behavior *behavior.BehaviorSystem
	economy  *GameState

	rules     config.Rules
	levelTime float64
	frame     uint64
	won       bool
	lost      bool

	logger *zap.Logger
}

// engineOptions 引擎构造参数
type engineOptions struct {
	logger *zap.Logger
	rules  config.Rules
	seed   int64
	cards  []config.CardConfig
}

// Option 引擎构造选项
type Option func(*engineOptions)

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithRules 覆盖规则参数
func WithRules(rules config.Rules) Option {
	return func(o *engineOptions) {
		o.rules = rules
	}
}

// WithSeed 设置随机种子（仅影响啃食音效）
func WithSeed(seed int64) Option {
	return func(o *engineOptions) {
		o.seed = seed
	}
}

// WithCards 覆盖卡片列表
func WithCards(cards []config.CardConfig) Option {
	return func(o *engineOptions) {
		o.cards = cards
	}
}

// NewEngine 使用已校验的关卡参数与出场表创建引擎
// 出场表在内部按时间稳定排序，调用方无需预先排序
func NewEngine(settings config.LevelSettings, waves []config.WaveEntry, opts ...Option) *Engine {
	o := engineOptions{
		rules: config.DefaultRules(),
		seed:  1,
		cards: config.DefaultCards(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	world := systems.NewWorld(systems.NewGridMapFromLevel(settings))
	e := &Engine{
		world: world,
		waves: systems.NewWaveSpawnSystem(waves, o.logger.Named("wave")),
		behavior: behavior.NewBehaviorSystem(world, o.rules,
			rand.New(rand.NewSource(o.seed)), o.logger.Named("behavior")),
		economy: NewGameState(settings.StartMoney, settings.Lives,
			settings.AutoSunAmount, settings.AutoSunInterval, o.cards),
		rules:  o.rules,
		logger: o.logger.Named("engine"),
	}

	e.logger.Debug("engine created",
		zap.Int("width", settings.Width),
		zap.Int("height", settings.Height),
		zap.Ints("activeRows", world.Grid.ActiveRows()),
		zap.Int("waves", e.waves.Total()),
		zap.Int("money", settings.StartMoney),
		zap.Int("lives", settings.Lives))
	return e
}

// NewEngineFromLevel 从关卡配置创建引擎
func NewEngineFromLevel(level *config.LevelConfig, opts ...Option) *Engine {
	return NewEngine(level.Settings, level.Waves, opts...)
}

// Advance 推进一帧
//
// 已胜利或已失败时不做任何事（事件列表保留终局帧的内容）。
// dt 必须为正数，否则忽略本次调用。
func (e *Engine) Advance(dt float64) {
	if e.won || e.lost {
		return
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}

	// 1. 清空本帧事件
	e.world.ClearEvents()

	// 2. 关卡时间
	e.levelTime += dt
	e.frame++

	// 3. 卡片冷却
	e.economy.UpdateCards(dt)

	// 4. 视觉标记
	e.world.UpdateMarkers(dt)

	// 5. 自然阳光
	e.economy.UpdateAutoSun(dt)

	// 6. 出场
	e.waves.Update(e.levelTime, e.world, e.rules.SpawnOffsetX)

	// 7. 旗帜僵尸加速倍率
	multiplier := e.behavior.SpeedMultiplier()

	// 8. 僵尸啃食与移动
	crossed := e.behavior.UpdateAttackers(dt, multiplier)
	for i := 0; i < crossed; i++ {
		if e.economy.LoseLife() && !e.lost {
			e.lost = true
			e.logger.Info("level lost",
				zap.Float64("time", e.levelTime),
				zap.Uint64("frame", e.frame))
		}
	}

	// 9. 植物逻辑与产出
	if income := e.behavior.UpdateDefenders(dt); income > 0 {
		e.economy.AddSun(income)
	}

	// 10. 子弹
	e.behavior.UpdateProjectiles(dt)

	// 11. 帧末清理
	e.world.Compact()

	// 12. 胜利判定
	if e.waves.Empty() && e.world.Attackers.Len() == 0 && e.economy.Lives > 0 {
		e.won = true
		e.logger.Info("level won",
			zap.Float64("time", e.levelTime),
			zap.Int("money", e.economy.Sun),
			zap.Int("lives", e.economy.Lives))
	}
}

// TryBuild 尝试使用卡片在世界坐标处种植
//
// 以下情况静默拒绝，状态不变：
//   - 卡片下标无效或卡片冷却中
//   - 阳光不足
//   - 目标格子不可种植（越界、该行不可种植、已被占用）
//   - 格子中心附近已有植物
//
// 返回是否种植成功
func (e *Engine) TryBuild(x, y float64, cardIndex int) bool {
	if e.won || e.lost {
		return false
	}

	card, ok := e.economy.Card(cardIndex)
	if !ok || !card.Ready() {
		return false
	}
	if e.economy.Sun < card.Cost {
		return false
	}
	if !e.world.Grid.IsBuildable(x, y) {
		return false
	}

	col, row, _ := e.world.Grid.CellAt(x, y)
	center := e.world.Grid.CellCenter(col, row)
	if e.defenderNear(center, e.rules.BuildSpacing) {
		return false
	}

	defender := entities.NewDefender(e.world.IDs, card.Type, center, col, row)
	if err := e.world.Grid.OccupyCell(col, row, defender.ID); err != nil {
		e.logger.Warn("occupy cell failed", zap.Error(err))
		return false
	}
	e.world.Defenders.Push(defender)
	e.economy.SpendSun(card.Cost)
	card.Cooldown = card.MaxCooldown

	e.logger.Debug("defender built",
		zap.Uint64("id", uint64(defender.ID)),
		zap.Stringer("type", defender.Type),
		zap.Int("col", col),
		zap.Int("row", row),
		zap.Int("money", e.economy.Sun))
	return true
}

// defenderNear 中心点附近是否已有存活植物
func (e *Engine) defenderNear(center utils.Vec2, radius float64) bool {
	for _, d := range e.world.Defenders.Items() {
		if !d.Deleted && utils.Distance(d.Pos, center) < radius {
			return true
		}
	}
	return false
}

// RemoveAt 铲除世界坐标所在格子中心附近的第一株植物
// 只做删除标记，格子在下一帧清理时释放
func (e *Engine) RemoveAt(x, y float64) bool {
	col, row, ok := e.world.Grid.CellAt(x, y)
	if !ok {
		return false
	}
	center := e.world.Grid.CellCenter(col, row)
	tolerance := e.rules.RemoveTolerance

	defenders := e.world.Defenders
	for i := 0; i < defenders.Len(); i++ {
		d := defenders.At(i)
		if d.Deleted {
			continue
		}
		if math.Abs(d.Pos.X-center.X) < tolerance && math.Abs(d.Pos.Y-center.Y) < tolerance {
			d.Delete()
			e.logger.Debug("defender removed",
				zap.Uint64("id", uint64(d.ID)),
				zap.Int("col", col),
				zap.Int("row", row))
			return true
		}
	}
	return false
}

// Money 当前阳光
func (e *Engine) Money() int { return e.economy.Sun }

// Lives 剩余生命
func (e *Engine) Lives() int { return e.economy.Lives }

// Won 是否胜利
func (e *Engine) Won() bool { return e.won }

// Lost 是否失败
func (e *Engine) Lost() bool { return e.lost }

// Finished 是否已结束
func (e *Engine) Finished() bool { return e.won || e.lost }

// LevelTime 关卡已进行的模拟时间
func (e *Engine) LevelTime() float64 { return e.levelTime }

// Frame 已推进的帧数
func (e *Engine) Frame() uint64 { return e.frame }

// NextWaveIn 距离下一只僵尸出场的时间，队列为空时返回 false
func (e *Engine) NextWaveIn() (float64, bool) {
	entry, ok := e.waves.Peek()
	if !ok {
		return 0, false
	}
	return math.Max(entry.Time-e.levelTime, 0), true
}

// NextIncomeIn 距离下一次自然阳光的时间
func (e *Engine) NextIncomeIn() float64 { return e.economy.AutoSunRemaining() }

// AttackersAlive 场上存活的僵尸数量
func (e *Engine) AttackersAlive() int { return e.world.Attackers.Live() }

// PendingWaves 尚未出场的条目数
func (e *Engine) PendingWaves() int { return e.waves.Pending() }

// Grid 网格（只读使用）
func (e *Engine) Grid() *systems.GridMap { return e.world.Grid }

// CardCount 卡片数量
func (e *Engine) CardCount() int { return len(e.economy.Cards) }

// Card 返回卡片副本
func (e *Engine) Card(index int) (components.PlantCard, bool) {
	card, ok := e.economy.Card(index)
	if !ok {
		return components.PlantCard{}, false
	}
	return *card, true
}

// Events 返回本帧事件的副本
func (e *Engine) Events() []types.SoundEvent {
	return slices.Clone(e.world.Events)
}
