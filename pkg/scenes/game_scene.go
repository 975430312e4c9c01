package scenes

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/bulletprog/pkg/battle"
	"github.com/gonewx/bulletprog/pkg/config"
	"github.com/gonewx/bulletprog/pkg/game"
	"github.com/gonewx/bulletprog/pkg/program"
	"github.com/gonewx/bulletprog/pkg/systems"
	"github.com/gonewx/bulletprog/pkg/utils"
)

// GameScene represents the main gameplay screen.
// It owns one battle, routes keyboard input to the player and the program editor,
// and draws the arena with vector shapes.
type GameScene struct {
	battle    *battle.Battle
	authoring *program.Authoring
	palette   *Palette
	settings  *game.SettingsManager

	restartRequested bool
	scoreRecorded    bool
	newBest          bool
}

var (
	_ game.Scene       = (*GameScene)(nil)
	_ game.Saveable    = (*GameScene)(nil)
	_ game.Restartable = (*GameScene)(nil)
)

// NewGameScene 创建游戏场景
//
// 参数:
//   - cfg: 数值配置
//   - authoring: 程序编辑上下文，重新开始时由调用方沿用
//   - settings: 设置管理器，可为 nil
//
// 返回:
//   - *GameScene: 场景实例
//   - error: 战斗创建失败
func NewGameScene(cfg *config.GameConfig, authoring *program.Authoring, settings *game.SettingsManager) (*GameScene, error) {
	b, err := battle.New(cfg, authoring, battle.Options{AutoSpawn: true})
	if err != nil {
		return nil, err
	}
	log.Printf("[GameScene] 新的一局，示例程序 %d 个", len(authoring.Presets()))
	return &GameScene{
		battle:    b,
		authoring: authoring,
		palette:   NewPalette(),
		settings:  settings,
	}, nil
}

// Update 处理输入并推进战斗
func (s *GameScene) Update(deltaTime float64) {
	s.handleEditorInput()

	state := s.battle.State()
	if state.IsGameOver {
		s.battle.SetControls(systems.PlayerControls{})
		if utils.IsKeyJustPressed(ebiten.KeyR) {
			s.restartRequested = true
		}
	} else {
		in := utils.GetInputState()
		s.battle.SetControls(systems.PlayerControls{MoveX: in.MoveX, MoveY: in.MoveY, Fire: in.Fire})
	}

	s.battle.Update(deltaTime)

	if state.IsGameOver && !s.scoreRecorded {
		s.recordScore()
	}
}

// handleEditorInput 编辑槽位的快捷键
func (s *GameScene) handleEditorInput() {
	a := s.authoring

	if utils.IsKeyJustPressed(ebiten.KeyTab) {
		slot := a.CycleSlot()
		log.Printf("[GameScene] 选中槽位 %d", slot+1)
	}
	if utils.IsKeyJustPressed(ebiten.KeyBackspace) {
		a.RemoveLast(a.Selected())
	}
	if utils.IsKeyJustPressed(ebiten.KeyC) {
		a.ClearAll()
		log.Printf("[GameScene] 清空所有槽位")
	}
	if i, ok := utils.JustPressedFunctionKey(); ok {
		s.loadPreset(i)
	}

	if i, ok := utils.JustPressedDigit(); ok {
		s.palette.SelectKind(i)
	}
	if utils.IsKeyJustPressed(ebiten.KeyLeft) {
		s.palette.Cycle(-1)
	}
	if utils.IsKeyJustPressed(ebiten.KeyRight) {
		s.palette.Cycle(1)
	}
	if utils.IsKeyJustPressed(ebiten.KeyEnter) {
		s.palette.Append(a)
	}

	if s.settings != nil {
		if utils.IsKeyJustPressed(ebiten.KeyH) {
			s.settings.ToggleHUD()
		}
		if utils.IsKeyJustPressed(ebiten.KeyL) {
			s.settings.ToggleLabels()
		}
	}
}

// loadPreset 按排序后的序号加载示例程序
func (s *GameScene) loadPreset(i int) {
	names := s.authoring.Presets()
	if i >= len(names) {
		return
	}
	if _, err := s.authoring.LoadExample(names[i]); err != nil {
		if errors.Is(err, program.ErrUnknownPreset) {
			log.Printf("[GameScene] %v", err)
			return
		}
		log.Printf("[GameScene] 加载示例失败: %v", err)
	}
}

func (s *GameScene) recordScore() {
	s.scoreRecorded = true
	if s.settings == nil {
		return
	}
	if s.settings.RecordScore(s.battle.State().Score) {
		s.newBest = true
		if err := s.settings.Save(); err != nil {
			log.Printf("[GameScene] 保存最高分失败: %v", err)
		}
	}
}

// RestartRequested 游戏结束后按 R 请求重新开始
func (s *GameScene) RestartRequested() bool {
	return s.restartRequested
}

// SaveOnExit 退出时记录本局得分并保存设置
func (s *GameScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	s.settings.RecordScore(s.battle.State().Score)
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] 退出时保存设置失败: %v", err)
		return false
	}
	return true
}

// Draw 绘制战场和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawArena(screen)
	s.drawEffects(screen)
	s.drawEnemies(screen)
	s.drawBullets(screen)
	s.drawPlayer(screen)

	if s.settings == nil || s.settings.GetSettings().ShowHUD {
		s.drawHUD(screen)
	}
	if s.battle.State().IsGameOver {
		s.drawGameOver(screen)
	}
}
