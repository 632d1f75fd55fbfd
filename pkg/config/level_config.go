package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gonewx/towerengine/pkg/embedded"
	"github.com/gonewx/towerengine/pkg/types"
	"gopkg.in/yaml.v3"
)

// BuiltinLevelCount 内置关卡数量
const BuiltinLevelCount = 8

// 网格默认值
const (
	DefaultGridWidth  = 9     // 默认列数
	DefaultGridHeight = 5     // 默认行数
	DefaultTileWidth  = 110.0 // 默认格子宽度（世界坐标）
	DefaultTileHeight = 141.0 // 默认格子高度（世界坐标）
)

// ErrInvalidLevel 关卡配置不合法
var ErrInvalidLevel = errors.New("invalid level config")

// LevelConfig 关卡配置数据结构
// 文件格式与原版 JSON 关卡一致（JSON 是 YAML 的子集，可直接解析）
type LevelConfig struct {
	Name     string        `yaml:"name"`     // 关卡名称（可选）
	Settings LevelSettings `yaml:"settings"` // 经济与网格设置
	Waves    []WaveEntry   `yaml:"waves"`    // 僵尸出场表
}

// LevelSettings 关卡经济与网格设置
type LevelSettings struct {
	StartMoney      int     `yaml:"start_money"`       // 初始阳光，默认 50
	Lives           int     `yaml:"lives"`             // 生命数，默认 5
	AutoSunAmount   int     `yaml:"auto_sun_amount"`   // 自然阳光数额，默认 25
	AutoSunInterval float64 `yaml:"auto_sun_interval"` // 自然阳光间隔（秒），默认 10
	Width           int     `yaml:"width"`             // 网格列数，默认 9
	Height          int     `yaml:"height"`            // 网格行数，默认 5
	TileWidth       float64 `yaml:"tile_width"`        // 格子宽度，默认 110
	TileHeight      float64 `yaml:"tile_height"`       // 格子高度，默认 141
	ActiveRows      []int   `yaml:"active_rows"`       // 可种植的行（从0开始），默认全部
}

// WaveEntry 单个僵尸出场条目
type WaveEntry struct {
	Time float64      `yaml:"time"` // 关卡开始后的出场时间（秒）
	Type AttackerKind `yaml:"type"` // 僵尸类型，整数编码或名称
	Row  int          `yaml:"row"`  // 出场行（从0开始）
}

// AttackerKind 关卡文件中的僵尸类型
// 支持原版的整数编码（0-7）和名称（"conehead"）两种写法
type AttackerKind types.AttackerType

// UnmarshalYAML 解析整数编码或名称
func (k *AttackerKind) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: attacker type must be a scalar", value.Line)
	}

	if value.Tag == "!!int" {
		var code int
		if err := value.Decode(&code); err != nil {
			return err
		}
		*k = AttackerKind(code)
		return nil
	}

	t, ok := types.AttackerTypeFromString(value.Value)
	if !ok {
		return fmt.Errorf("line %d: unknown attacker type %q", value.Line, value.Value)
	}
	*k = AttackerKind(t)
	return nil
}

// MarshalYAML 以名称形式输出
func (k AttackerKind) MarshalYAML() (interface{}, error) {
	return types.AttackerType(k).String(), nil
}

// AttackerType 返回对应的僵尸类型
func (k AttackerKind) AttackerType() types.AttackerType {
	return types.AttackerType(k)
}

// defaultLevelSettings 原版缺省值
func defaultLevelSettings() LevelSettings {
	return LevelSettings{
		StartMoney:      50,
		Lives:           5,
		AutoSunAmount:   25,
		AutoSunInterval: 10,
		Width:           DefaultGridWidth,
		Height:          DefaultGridHeight,
		TileWidth:       DefaultTileWidth,
		TileHeight:      DefaultTileHeight,
	}
}

// ParseLevel 解析关卡数据
// 缺失的字段使用原版缺省值，解析后进行合法性验证
func ParseLevel(data []byte, source string) (*LevelConfig, error) {
	levelConfig := LevelConfig{Settings: defaultLevelSettings()}
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config from %s: %w", source, err)
	}

	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", source, err)
	}

	return &levelConfig, nil
}

// LoadLevel 从文件加载关卡配置
func LoadLevel(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}
	return ParseLevel(data, path)
}

// NormalizeLevelNumber 关卡编号越界时回到第1关
func NormalizeLevelNumber(n int) int {
	if n < 1 || n > BuiltinLevelCount {
		return 1
	}
	return n
}

// LoadBuiltinLevel 加载内置关卡，编号越界时回到第1关
func LoadBuiltinLevel(n int) (*LevelConfig, error) {
	n = NormalizeLevelNumber(n)
	path := embedded.LevelPath(n)

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin level %d: %w", n, err)
	}

	levelConfig, err := ParseLevel(data, path)
	if err != nil {
		return nil, err
	}
	if levelConfig.Name == "" {
		levelConfig.Name = fmt.Sprintf("Level %d", n)
	}
	return levelConfig, nil
}

// LevelFileName 关卡文件名
func LevelFileName(n int) string {
	return fmt.Sprintf("level_%d.json", n)
}

// LoadLevelNumber 加载第 n 关
// dir 非空且其中存在对应文件时优先使用外部文件，否则使用内置关卡
func LoadLevelNumber(dir string, n int) (*LevelConfig, error) {
	if dir != "" {
		level, err := LoadLevel(filepath.Join(dir, LevelFileName(n)))
		if err == nil {
			if level.Name == "" {
				level.Name = fmt.Sprintf("Level %d", n)
			}
			return level, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return LoadBuiltinLevel(n)
}

// applyDefaults 补全依赖其他字段的缺省值
func applyDefaults(config *LevelConfig) {
	// 未配置可种植行时，所有行均可种植
	if config.Settings.ActiveRows == nil {
		config.Settings.ActiveRows = make([]int, 0, config.Settings.Height)
		for r := 0; r < config.Settings.Height; r++ {
			config.Settings.ActiveRows = append(config.Settings.ActiveRows, r)
		}
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	s := config.Settings

	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %dx%d", ErrInvalidLevel, s.Width, s.Height)
	}
	if s.TileWidth <= 0 || s.TileHeight <= 0 {
		return fmt.Errorf("%w: tile size must be positive, got %vx%v", ErrInvalidLevel, s.TileWidth, s.TileHeight)
	}
	if s.Lives <= 0 {
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidLevel, s.Lives)
	}
	if s.StartMoney < 0 || s.AutoSunAmount < 0 {
		return fmt.Errorf("%w: money values cannot be negative", ErrInvalidLevel)
	}
	if s.AutoSunInterval <= 0 {
		return fmt.Errorf("%w: auto_sun_interval must be positive, got %v", ErrInvalidLevel, s.AutoSunInterval)
	}

	for i, r := range s.ActiveRows {
		if r < 0 || r >= s.Height {
			return fmt.Errorf("%w: active_rows[%d]: row must be between 0 and %d, got %d", ErrInvalidLevel, i, s.Height-1, r)
		}
	}

	for i, w := range config.Waves {
		if w.Time < 0 {
			return fmt.Errorf("%w: wave %d: time cannot be negative", ErrInvalidLevel, i)
		}
		if !w.Type.AttackerType().Valid() {
			return fmt.Errorf("%w: wave %d: unknown attacker type code %d", ErrInvalidLevel, i, int(w.Type))
		}
		if w.Row < 0 || w.Row >= s.Height {
			return fmt.Errorf("%w: wave %d: row must be between 0 and %d, got %d", ErrInvalidLevel, i, s.Height-1, w.Row)
		}
	}

	return nil
}

// SortWaves 返回按时间稳定排序的出场表副本，同一时间的条目保持原有顺序
func SortWaves(waves []WaveEntry) []WaveEntry {
	entries := make([]WaveEntry, len(waves))
	copy(entries, waves)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
	return entries
}
