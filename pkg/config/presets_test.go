package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/bulletprog/pkg/program"
)

func TestParsePresets(t *testing.T) {
	data := []byte(`
presets:
  timer-bomb:
    - {kind: when, action: timer-2}
    - {kind: do, action: explode}
  broken-order:
    - {kind: do, action: explode}
    - {kind: when, action: timer-2}
`)
	presets, err := ParsePresets(data)
	if err != nil {
		t.Fatalf("ParsePresets() error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("got %d presets, want 2", len(presets))
	}
	if !presets["timer-bomb"].Validate().Valid {
		t.Error("timer-bomb should be valid")
	}
	// 顺序非法的示例仍可加载，发射时才会被跳过
	if got := presets["broken-order"].Validate().Reason; got != program.ReasonIllegalOrder {
		t.Errorf("broken-order reason = %q, want %q", got, program.ReasonIllegalOrder)
	}
}

func TestParsePresetsUnknownAction(t *testing.T) {
	data := []byte(`
presets:
  bad:
    - {kind: do, action: teleport}
`)
	_, err := ParsePresets(data)
	if err == nil {
		t.Fatal("expected error for unknown action")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error %q should name the preset", err)
	}
}

// TestDataPresets 仓库中的示例程序全部可加载
func TestDataPresets(t *testing.T) {
	presets, err := LoadPresets(filepath.Join("..", "..", "data", "presets.yaml"))
	if err != nil {
		t.Fatalf("LoadPresets() error: %v", err)
	}

	want := []string{
		"basic-homing", "bounce-bullet", "homing-bomb", "homing-penetrate",
		"poison-magnetic", "smart-homing", "smart-split", "timer-bomb", "ultimate-homing",
	}

	a := program.NewAuthoring()
	RegisterPresets(a, presets)
	got := a.Presets()
	if len(got) != len(want) {
		t.Fatalf("Presets() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Presets()[%d] = %s, want %s", i, got[i], want[i])
		}
		if !presets[want[i]].Validate().Valid {
			t.Errorf("preset %s is not a valid program: %s", want[i], presets[want[i]].Validate().Reason)
		}
	}
}
