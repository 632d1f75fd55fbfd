package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/gonewx/towerengine/pkg/game"
)

func TestParseLevels(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "区间", input: "1-3", want: []int{1, 2, 3}},
		{name: "列表", input: "1,5, 8", want: []int{1, 5, 8}},
		{name: "混合", input: "2,4-5", want: []int{2, 4, 5}},
		{name: "反向区间", input: "5-1", wantErr: true},
		{name: "非数字", input: "a", wantErr: true},
		{name: "空", input: " , ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLevels(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLevels(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseLevels(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	results := []game.RunResult{
		{Level: 2, Won: true, Time: 100},
		{Level: 1, Lost: true, Time: 50},
		{Level: 2, Time: 300},
	}

	got := summarize(results)
	if len(got) != 2 {
		t.Fatalf("summaries = %d, want 2", len(got))
	}
	if got[0].Level != 1 || got[0].Lost != 1 {
		t.Errorf("level 1 summary = %+v", got[0])
	}
	if got[1].Won != 1 || got[1].Timeout != 1 || got[1].AvgTime != 200 {
		t.Errorf("level 2 summary = %+v", got[1])
	}
}

func TestWriteReport(t *testing.T) {
	results := []game.RunResult{{RunID: "abc", Level: 1, Won: true, Time: 10}}

	var text bytes.Buffer
	if err := writeReport(&text, "text", results); err != nil {
		t.Fatalf("text report: %v", err)
	}
	if !strings.Contains(text.String(), "LEVEL") {
		t.Errorf("text report missing header: %q", text.String())
	}

	var y bytes.Buffer
	if err := writeReport(&y, "yaml", results); err != nil {
		t.Fatalf("yaml report: %v", err)
	}
	if !strings.Contains(y.String(), "run_id: abc") {
		t.Errorf("yaml report missing run id: %q", y.String())
	}

	if err := writeReport(&y, "xml", results); err == nil {
		t.Error("expected error for unknown format")
	}
}
