// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的键盘输入
// 移动和发射是持续按键，编辑命令是本帧刚按下的键
type InputState struct {
	// MoveX, MoveY 移动方向（-1, 0, 1）
	MoveX, MoveY float64
	// Fire 发射键是否按住
	Fire bool
}

// GetInputState 读取当前帧的移动和发射输入（WASD + 空格）
func GetInputState() InputState {
	return InputState{
		MoveX: axis(ebiten.IsKeyPressed(ebiten.KeyA), ebiten.IsKeyPressed(ebiten.KeyD)),
		MoveY: axis(ebiten.IsKeyPressed(ebiten.KeyW), ebiten.IsKeyPressed(ebiten.KeyS)),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// axis 两个相反方向的按键合成一个轴，同时按下互相抵消
func axis(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	default:
		return 0
	}
}

// functionKeys F1..F9
var functionKeys = []ebiten.Key{
	ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3,
	ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
	ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9,
}

// FunctionKeyIndex F1..F9 对应 0..8
func FunctionKeyIndex(key ebiten.Key) (int, bool) {
	for i, k := range functionKeys {
		if k == key {
			return i, true
		}
	}
	return -1, false
}

// JustPressedFunctionKey 本帧刚按下的 F1..F9，返回其序号
func JustPressedFunctionKey() (int, bool) {
	for i, k := range functionKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i, true
		}
	}
	return -1, false
}

// digitKeys 1..4
var digitKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// JustPressedDigit 本帧刚按下的 1..4，返回 0..3
func JustPressedDigit() (int, bool) {
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i, true
		}
	}
	return -1, false
}

// IsKeyJustPressed 转发 inpututil，场景只依赖 utils
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
