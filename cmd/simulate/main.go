// Command simulate 无界面批量运行关卡，输出胜负统计
//
// 用法:
//
//	simulate -levels 1-8 -runs 4 -parallel 8 -format yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/game"
	"github.com/gonewx/towerengine/pkg/utils"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaults := game.DefaultRunConfig()

	levelsFlag := flag.String("levels", "1-8", "levels to run, e.g. 1-8 or 1,3,5")
	levelsDir := flag.String("dir", "", "external level directory (empty uses builtin levels)")
	runs := flag.Int("runs", 1, "runs per level")
	step := flag.Float64("dt", defaults.Step, "fixed time step in seconds")
	maxTime := flag.Float64("max-time", defaults.MaxTime, "simulated time limit per run in seconds")
	seed := flag.Int64("seed", defaults.Seed, "base random seed; run i uses seed+i")
	parallel := flag.Int("parallel", 0, "max concurrent runs (0 = unlimited)")
	noPilot := flag.Bool("no-autopilot", false, "run without automatic building")
	format := flag.String("format", "text", "report format: text or yaml")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	log, err := utils.NewLogger(config.LoggingConfig{Level: *logLevel, Format: "console"})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	levels, err := parseLevels(*levelsFlag)
	if err != nil {
		return err
	}
	if *runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", *runs)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := make([]game.RunResult, 0, len(levels)**runs)
	for i := 0; i < *runs; i++ {
		jobs := make([]game.BatchJob, 0, len(levels))
		for _, n := range levels {
			level, err := config.LoadLevelNumber(*levelsDir, n)
			if err != nil {
				return fmt.Errorf("load level %d: %w", n, err)
			}
			jobs = append(jobs, game.BatchJob{Level: n, Config: level})
		}

		cfg := defaults
		cfg.Step = *step
		cfg.MaxTime = *maxTime
		cfg.Seed = *seed + int64(i)
		cfg.Autopilot = !*noPilot

		batch, err := game.RunBatch(ctx, jobs, cfg, *parallel, log)
		if err != nil {
			return fmt.Errorf("run batch %d: %w", i, err)
		}
		results = append(results, batch...)
	}

	log.Info("simulation complete", zap.Int("runs", len(results)))
	return writeReport(os.Stdout, *format, results)
}

// parseLevels 解析 "1-8" 或 "1,3,5" 形式的关卡列表
func parseLevels(s string) ([]int, error) {
	var levels []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			from, err := strconv.Atoi(lo)
			if err != nil {
				return nil, fmt.Errorf("invalid level range %q: %w", part, err)
			}
			to, err := strconv.Atoi(hi)
			if err != nil {
				return nil, fmt.Errorf("invalid level range %q: %w", part, err)
			}
			if from > to {
				return nil, fmt.Errorf("invalid level range %q", part)
			}
			for n := from; n <= to; n++ {
				levels = append(levels, n)
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid level %q: %w", part, err)
		}
		levels = append(levels, n)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels given")
	}
	return levels, nil
}

// levelSummary 单个关卡的汇总
type levelSummary struct {
	Level   int     `yaml:"level"`
	Runs    int     `yaml:"runs"`
	Won     int     `yaml:"won"`
	Lost    int     `yaml:"lost"`
	Timeout int     `yaml:"timeout"`
	AvgTime float64 `yaml:"avg_time"`
}

type report struct {
	Summary []levelSummary   `yaml:"summary"`
	Runs    []game.RunResult `yaml:"runs"`
}

func summarize(results []game.RunResult) []levelSummary {
	byLevel := make(map[int]*levelSummary)
	for _, r := range results {
		s, ok := byLevel[r.Level]
		if !ok {
			s = &levelSummary{Level: r.Level}
			byLevel[r.Level] = s
		}
		s.Runs++
		s.AvgTime += r.Time
		switch r.Outcome() {
		case "won":
			s.Won++
		case "lost":
			s.Lost++
		default:
			s.Timeout++
		}
	}

	out := make([]levelSummary, 0, len(byLevel))
	for _, s := range byLevel {
		s.AvgTime /= float64(s.Runs)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

func writeReport(w io.Writer, format string, results []game.RunResult) error {
	rep := report{Summary: summarize(results), Runs: results}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case "text":
		fmt.Fprintf(w, "%-6s %-5s %-5s %-5s %-8s %s\n", "LEVEL", "RUNS", "WON", "LOST", "TIMEOUT", "AVG TIME")
		for _, s := range rep.Summary {
			fmt.Fprintf(w, "%-6d %-5d %-5d %-5d %-8d %.1fs\n", s.Level, s.Runs, s.Won, s.Lost, s.Timeout, s.AvgTime)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
