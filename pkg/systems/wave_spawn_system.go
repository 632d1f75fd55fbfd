package systems

import (
	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/entities"
	"go.uber.org/zap"
)

// WaveSpawnSystem 僵尸出场调度
//
// 职责：
//   - 关卡加载时按时间稳定排序出场表
//   - 每帧弹出所有到期条目并在对应行生成僵尸
//   - 单帧内多个到期条目按出场表顺序生成（支持大步长补发）
//
// 条目一旦弹出不可撤销。
type WaveSpawnSystem struct {
	queue  []config.WaveEntry
	next   int
	logger *zap.Logger
}

// NewWaveSpawnSystem 创建出场调度
// entries 会被复制并按时间稳定排序，调用方的切片不受影响
func NewWaveSpawnSystem(entries []config.WaveEntry, logger *zap.Logger) *WaveSpawnSystem {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WaveSpawnSystem{
		queue:  config.SortWaves(entries),
		logger: logger,
	}
}

// Due 弹出所有出场时间 <= now 的条目（按出场表顺序）
func (s *WaveSpawnSystem) Due(now float64) []config.WaveEntry {
	start := s.next
	for s.next < len(s.queue) && s.queue[s.next].Time <= now {
		s.next++
	}
	return s.queue[start:s.next]
}

// Peek 返回下一个待出场条目
func (s *WaveSpawnSystem) Peek() (config.WaveEntry, bool) {
	if s.Empty() {
		return config.WaveEntry{}, false
	}
	return s.queue[s.next], true
}

// Pending 剩余条目数
func (s *WaveSpawnSystem) Pending() int {
	return len(s.queue) - s.next
}

// Empty 是否已全部出场
func (s *WaveSpawnSystem) Empty() bool {
	return s.next >= len(s.queue)
}

// Total 出场表总条目数
func (s *WaveSpawnSystem) Total() int {
	return len(s.queue)
}

// Update 生成所有到期的僵尸，返回生成数量
// 行号越界的条目被消耗但不生成僵尸
func (s *WaveSpawnSystem) Update(now float64, w *World, spawnOffsetX float64) int {
	spawned := 0
	for _, entry := range s.Due(now) {
		if entry.Row < 0 || entry.Row >= w.Grid.Height {
			s.logger.Warn("skip wave entry with invalid row",
				zap.Float64("time", entry.Time),
				zap.Int("row", entry.Row))
			continue
		}

		pos := w.Grid.SpawnPoint(entry.Row, spawnOffsetX)
		attacker := entities.NewAttacker(w.IDs, entry.Type.AttackerType(), pos)
		w.Attackers.Push(attacker)
		spawned++

		s.logger.Debug("attacker spawned",
			zap.Uint64("id", uint64(attacker.ID)),
			zap.Stringer("type", attacker.Type),
			zap.Int("row", entry.Row),
			zap.Float64("time", now))
	}
	return spawned
}
