package systems

import (
	"testing"

	"github.com/gonewx/towerengine/pkg/config"
	"github.com/gonewx/towerengine/pkg/types"
	"pgregory.net/rapid"
)

func entry(t float64, typ types.AttackerType, row int) config.WaveEntry {
	return config.WaveEntry{Time: t, Type: config.AttackerKind(typ), Row: row}
}

// TestWaveDueOrder 测试到期条目按时间稳定排序弹出
func TestWaveDueOrder(t *testing.T) {
	s := NewWaveSpawnSystem([]config.WaveEntry{
		entry(5, types.AttackerNormal, 0),
		entry(1, types.AttackerConehead, 1),
		entry(5, types.AttackerImp, 2),
		entry(3, types.AttackerFlag, 3),
	}, nil)

	if got := s.Due(0.5); len(got) != 0 {
		t.Fatalf("Due(0.5) = %v, want none", got)
	}

	got := s.Due(5)
	wantRows := []int{1, 3, 0, 2}
	if len(got) != len(wantRows) {
		t.Fatalf("Due(5) returned %d entries, want %d", len(got), len(wantRows))
	}
	for i, row := range wantRows {
		if got[i].Row != row {
			t.Errorf("entry %d row = %d, want %d", i, got[i].Row, row)
		}
	}
	if !s.Empty() || s.Pending() != 0 {
		t.Error("all entries should be consumed")
	}
	if got := s.Due(100); len(got) != 0 {
		t.Error("consumed entries must not fire again")
	}
}

// TestWaveDueIncremental 测试逐帧弹出
func TestWaveDueIncremental(t *testing.T) {
	s := NewWaveSpawnSystem([]config.WaveEntry{
		entry(1, types.AttackerNormal, 0),
		entry(2, types.AttackerNormal, 0),
		entry(2, types.AttackerNormal, 1),
	}, nil)

	steps := []struct {
		now  float64
		want int
	}{
		{0.9, 0},
		{1.0, 1},
		{1.5, 0},
		{2.0, 2},
	}
	for _, st := range steps {
		if got := len(s.Due(st.now)); got != st.want {
			t.Errorf("Due(%v) returned %d, want %d", st.now, got, st.want)
		}
	}

	if _, ok := s.Peek(); ok {
		t.Error("Peek on empty queue should return false")
	}
}

// TestWaveUpdateSpawns 测试生成僵尸到世界中
func TestWaveUpdateSpawns(t *testing.T) {
	w := NewWorld(NewGridMap(9, 5, 110, 141, nil))
	s := NewWaveSpawnSystem([]config.WaveEntry{
		entry(0, types.AttackerBuckethead, 2),
		entry(0, types.AttackerNormal, 7), // 越界行被跳过
	}, nil)

	if n := s.Update(0, w, 100); n != 1 {
		t.Fatalf("Update spawned %d, want 1", n)
	}
	if w.Attackers.Len() != 1 {
		t.Fatalf("world has %d attackers, want 1", w.Attackers.Len())
	}

	a := w.Attackers.At(0)
	if a.Type != types.AttackerBuckethead {
		t.Errorf("type = %v", a.Type)
	}
	if a.Pos.X != 9*110+100 || a.Pos.Y != 2*141+70.5 {
		t.Errorf("spawn pos = %v", a.Pos)
	}
	if !s.Empty() {
		t.Error("invalid entry should still be consumed")
	}
}

// TestWaveDueProperty 任意出场表：弹出序列按时间非递减且不重不漏
func TestWaveDueProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		entries := make([]config.WaveEntry, n)
		for i := range entries {
			entries[i] = entry(float64(rapid.IntRange(0, 20).Draw(t, "time")), types.AttackerNormal, i)
		}

		s := NewWaveSpawnSystem(entries, nil)
		seen := make(map[int]bool)
		last := -1.0
		for now := 0.0; now <= 21; now += rapid.Float64Range(0.1, 5).Draw(t, "dt") {
			for _, e := range s.Due(now) {
				if e.Time > now {
					t.Fatalf("entry at %v fired early at %v", e.Time, now)
				}
				if e.Time < last {
					t.Fatalf("entries out of order: %v after %v", e.Time, last)
				}
				if seen[e.Row] {
					t.Fatalf("entry %d fired twice", e.Row)
				}
				seen[e.Row] = true
				last = e.Time
			}
		}
		s.Due(21)
		if !s.Empty() {
			t.Fatalf("%d entries left pending", s.Pending())
		}
	})
}
