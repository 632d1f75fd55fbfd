package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings 宿主程序设置（TOML）
type Settings struct {
	Window     WindowConfig     `toml:"window"`
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
	Save       SaveConfig       `toml:"save"`
	Levels     LevelsConfig     `toml:"levels"`
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"` // 每秒逻辑帧数
}

// SimulationConfig 模拟设置
type SimulationConfig struct {
	FixedStep float64 `toml:"fixed_step"` // 固定时间步长（秒），0 表示使用 1/TPS
	Seed      int64   `toml:"seed"`       // 随机数种子，仅影响啃食音效
	Rules     Rules   `toml:"rules"`
}

// LoggingConfig 日志设置
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // 输出文件，为空时写到标准错误
}

// SaveConfig 存档设置
type SaveConfig struct {
	Enabled bool   `toml:"enabled"`
	AppName string `toml:"app_name"` // gdata 应用名，决定存档目录
}

// LevelsConfig 关卡来源
type LevelsConfig struct {
	Dir   string `toml:"dir"`   // 外部关卡目录，为空时使用内置关卡
	Start int    `toml:"start"` // 起始关卡编号，0 表示从存档进度继续
}

// LoadSettings 从 TOML 文件加载设置，缺失的字段使用默认值
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	cfg := DefaultSettings()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return cfg, nil
}

// LoadSettingsOrDefault 文件不存在时返回默认设置
func LoadSettingsOrDefault(path string) (*Settings, error) {
	cfg, err := LoadSettings(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	return cfg, err
}

// Validate 检查设置的合法性
func (s *Settings) Validate() error {
	if s.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", s.Window.TPS)
	}
	if s.Levels.Start < 0 {
		return fmt.Errorf("levels.start cannot be negative, got %d", s.Levels.Start)
	}
	if s.Simulation.FixedStep < 0 {
		return fmt.Errorf("simulation.fixed_step cannot be negative, got %v", s.Simulation.FixedStep)
	}
	if err := s.Simulation.Rules.Validate(); err != nil {
		return fmt.Errorf("simulation.rules: %w", err)
	}
	return nil
}

// Step 返回每帧的固定时间步长
func (s *Settings) Step() float64 {
	if s.Simulation.FixedStep > 0 {
		return s.Simulation.FixedStep
	}
	return 1.0 / float64(s.Window.TPS)
}

// DefaultSettings 默认设置
func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowConfig{
			Title:  "Tower Engine",
			Width:  1400,
			Height: 900,
			TPS:    60,
		},
		Simulation: SimulationConfig{
			Seed:  1,
			Rules: DefaultRules(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Save: SaveConfig{
			Enabled: true,
			AppName: "towerengine",
		},
		Levels: LevelsConfig{},
	}
}
