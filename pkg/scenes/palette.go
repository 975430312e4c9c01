package scenes

import (
	"github.com/gonewx/bulletprog/pkg/program"
)

// paletteKinds 调色板按 1..4 切换的节点种类
var paletteKinds = []program.Kind{program.KindProperty, program.KindWhen, program.KindIf, program.KindDo}

// Palette 键盘编辑用的节点调色板
// 1..4 选择种类，左右方向键切换动作，回车追加到当前槽位
type Palette struct {
	kind  program.Kind
	index int
}

// NewPalette 创建调色板，默认选中 WHEN 的第一个动作
func NewPalette() *Palette {
	return &Palette{kind: program.KindWhen}
}

// SelectKind 按序号选择种类（0..3），动作回到第一个
func (p *Palette) SelectKind(i int) {
	if i < 0 || i >= len(paletteKinds) {
		return
	}
	p.kind = paletteKinds[i]
	p.index = 0
}

// Cycle 在当前种类的词表中前后移动，首尾循环
func (p *Palette) Cycle(delta int) {
	n := len(program.Vocabulary(p.kind))
	if n == 0 {
		return
	}
	p.index = ((p.index+delta)%n + n) % n
}

// Current 当前选中的节点
func (p *Palette) Current() program.Node {
	vocab := program.Vocabulary(p.kind)
	return program.MustNode(p.kind, vocab[p.index])
}

// Append 将当前节点追加到编辑上下文的选中槽位
func (p *Palette) Append(a *program.Authoring) bool {
	return a.AddNode(a.Selected(), p.Current())
}
