package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/bulletprog/pkg/game"
	"github.com/gonewx/bulletprog/pkg/program"
)

// HUD 布局
const (
	hudX          = 8
	hudY          = 8
	hudLineHeight = 16
)

// debug 字体只有 ASCII，节点以原始 id 显示
func nodeText(n program.Node, withKind bool) string {
	if withKind {
		return strings.ToLower(n.Kind().String()) + ":" + string(n.Action())
	}
	return string(n.Action())
}

// slotLine 一个槽位的 HUD 文本：选中标记、序号、校验结果和节点
//
//	> 2 [ok] timer-2 > explode
//	  3 [missing DO] timer-1
func slotLine(a *program.Authoring, slot int, withKind bool) string {
	marker := " "
	if a.Selected() == slot {
		marker = ">"
	}

	p := a.Program(slot)
	status := "ok"
	if r := a.Validate(slot); !r.Valid {
		status = r.Reason
	}

	body := "(empty)"
	if len(p) > 0 {
		parts := make([]string, len(p))
		for i, n := range p {
			parts[i] = nodeText(n, withKind)
		}
		body = strings.Join(parts, " > ")
	}
	return fmt.Sprintf("%s %d [%s] %s", marker, slot+1, status, body)
}

// hudLines HUD 的全部文本行
func hudLines(state *game.GameState, best, live int, a *program.Authoring, palette *Palette, withKind bool) []string {
	lines := []string{
		fmt.Sprintf("SCORE %d   STAGE %d   BEST %d   BULLETS %d", state.Score, state.Stage, best, live),
	}
	for i := 0; i < program.SlotCount; i++ {
		lines = append(lines, slotLine(a, i, withKind))
	}

	_, fireSlot := a.Fireable()
	if fireSlot < 0 {
		lines = append(lines, "FIRE: default (enemy-contact > destroy)")
	} else {
		lines = append(lines, fmt.Sprintf("FIRE: slot %d", fireSlot+1))
	}
	lines = append(lines, "NODE: "+nodeText(palette.Current(), true)+"  [1-4 kind, <- -> action, Enter add]")

	if names := a.Presets(); len(names) > 0 {
		keyed := make([]string, 0, len(names))
		for i, name := range names {
			if i >= 9 {
				break
			}
			keyed = append(keyed, fmt.Sprintf("F%d %s", i+1, name))
		}
		lines = append(lines, "PRESETS: "+strings.Join(keyed, "  "))
	}
	lines = append(lines, "WASD move  SPACE fire  TAB slot  BACKSPACE undo  C clear  H hud  L kinds")
	return lines
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	best := 0
	withKind := false
	if s.settings != nil {
		best = s.settings.GetSettings().BestScore
		withKind = s.settings.GetSettings().ShowLabels
	}
	lines := hudLines(s.battle.State(), best, s.battle.LiveBullets(), s.authoring, s.palette, withKind)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, hudX, hudY+i*hudLineHeight)
	}
}

func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	cfg := s.battle.Config().World
	vector.DrawFilledRect(screen, 0, 0, float32(cfg.Width), float32(cfg.Height), color.RGBA{0, 0, 0, 0x99}, false)

	msg := fmt.Sprintf("GAME OVER   SCORE %d", s.battle.State().Score)
	if s.newBest {
		msg += "   NEW BEST!"
	}
	x := int(cfg.Width/2) - len(msg)*3
	y := int(cfg.Height / 2)
	ebitenutil.DebugPrintAt(screen, msg, x, y)
	ebitenutil.DebugPrintAt(screen, "press R to restart", int(cfg.Width/2)-54, y+hudLineHeight*2)
}
