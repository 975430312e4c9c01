package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		name     string
		neg, pos bool
		want     float64
	}{
		{name: "无按键", want: 0},
		{name: "负方向", neg: true, want: -1},
		{name: "正方向", pos: true, want: 1},
		{name: "同时按下抵消", neg: true, pos: true, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := axis(tt.neg, tt.pos); got != tt.want {
				t.Errorf("axis(%v, %v) = %v, want %v", tt.neg, tt.pos, got, tt.want)
			}
		})
	}
}

func TestFunctionKeyIndex(t *testing.T) {
	tests := []struct {
		key    ebiten.Key
		want   int
		wantOK bool
	}{
		{key: ebiten.KeyF1, want: 0, wantOK: true},
		{key: ebiten.KeyF9, want: 8, wantOK: true},
		{key: ebiten.KeyF10, want: -1, wantOK: false},
		{key: ebiten.KeySpace, want: -1, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := FunctionKeyIndex(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FunctionKeyIndex(%v) = (%d, %v), want (%d, %v)", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}
