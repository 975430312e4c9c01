package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，场景在程序退出时保存设置（最高分等）
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}

// Restartable 是一个可选接口，场景请求由 SceneManager 重建自身
type Restartable interface {
	// RestartRequested 本帧是否请求重新开始
	RestartRequested() bool
}
