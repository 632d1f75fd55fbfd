package game

import (
	"context"
	"fmt"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// checkEvery 每隔多少帧检查一次取消
const checkEvery = 1024

// RunConfig 无界面模拟参数
type RunConfig struct {
	Step      float64 // 固定步长（秒）
	MaxTime   float64 // 模拟时间上限（秒），到达后视为超时
	Seed      int64
	Rules     config.Rules
	Autopilot bool // 是否启用自动种植
}

// DefaultRunConfig 默认参数：每秒 64 帧，最长 30 分钟模拟时间
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Step:      1.0 / 64,
		MaxTime:   1800,
		Seed:      1,
		Rules:     config.DefaultRules(),
		Autopilot: true,
	}
}

// RunResult 单次模拟的结果
type RunResult struct {
	RunID  string         `yaml:"run_id"`
	Level  int            `yaml:"level"`
	Name   string         `yaml:"name"`
	Won    bool           `yaml:"won"`
	Lost   bool           `yaml:"lost"`
	Time   float64        `yaml:"time"`
	Frames uint64         `yaml:"frames"`
	Money  int            `yaml:"money"`
	Lives  int            `yaml:"lives"`
	Built  int            `yaml:"built"`
	Events map[string]int `yaml:"events,omitempty"`
}

// Outcome 结果描述
func (r RunResult) Outcome() string {
	switch {
	case r.Won:
		return "won"
	case r.Lost:
		return "lost"
	default:
		return "timeout"
	}
}

// Simulate 以固定步长运行一局直到结束、超时或 ctx 被取消
func Simulate(ctx context.Context, levelNum int, level *config.LevelConfig, cfg RunConfig, logger *zap.Logger) (RunResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !(cfg.Step > 0) {
		return RunResult{}, fmt.Errorf("run step must be positive, got %v", cfg.Step)
	}

	e := NewEngineFromLevel(level,
		WithLogger(logger),
		WithRules(cfg.Rules),
		WithSeed(cfg.Seed),
	)
	var pilot *Autopilot
	if cfg.Autopilot {
		pilot = NewAutopilot()
	}

	result := RunResult{
		Level:  levelNum,
		Name:   level.Name,
		Events: make(map[string]int),
	}
	for !e.Finished() && e.LevelTime() < cfg.MaxTime {
		if e.Frame()%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}
		if pilot != nil {
			result.Built += pilot.Act(e)
		}
		e.Advance(cfg.Step)
		for _, ev := range e.Events() {
			result.Events[ev.String()]++
		}
	}

	result.Won = e.Won()
	result.Lost = e.Lost()
	result.Time = e.LevelTime()
	result.Frames = e.Frame()
	result.Money = e.Money()
	result.Lives = e.Lives()
	return result, nil
}

// BatchJob 批量模拟中的一局
type BatchJob struct {
	Level  int
	Config *config.LevelConfig
}

// RunBatch 并发运行多局模拟，结果顺序与 jobs 一致
// parallel <= 0 表示不限制并发数；任一局出错时取消其余各局
func RunBatch(ctx context.Context, jobs []BatchJob, cfg RunConfig, parallel int, logger *zap.Logger) ([]RunResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]RunResult, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		eg.SetLimit(parallel)
	}

	for i, job := range jobs {
		eg.Go(func() error {
			runID := uuid.NewString()
			runLogger := logger.With(zap.String("run", runID), zap.Int("level", job.Level))

			res, err := Simulate(ctx, job.Level, job.Config, cfg, runLogger)
			if err != nil {
				return fmt.Errorf("level %d: %w", job.Level, err)
			}
			res.RunID = runID
			results[i] = res

			runLogger.Info("run finished",
				zap.String("outcome", res.Outcome()),
				zap.Float64("time", res.Time),
				zap.Int("money", res.Money),
				zap.Int("lives", res.Lives))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
