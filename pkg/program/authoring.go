package program

import (
	"errors"
	"fmt"
	"log"
	"sort"
)

// SlotCount 编辑槽位数量
const SlotCount = 3

// ErrUnknownPreset 示例程序不存在
var ErrUnknownPreset = errors.New("unknown preset")

// Authoring 程序编辑上下文
// 持有玩家正在编辑的槽位和可加载的示例程序，由需要它的界面层显式持有
type Authoring struct {
	slots    [SlotCount]Program
	selected int
	presets  map[string]Program
}

// NewAuthoring 创建空的编辑上下文
func NewAuthoring() *Authoring {
	a := &Authoring{presets: make(map[string]Program)}
	for i := range a.slots {
		a.slots[i] = Program{}
	}
	return a
}

func validSlot(slot int) bool {
	return slot >= 0 && slot < SlotCount
}

// AddNode 在槽位末尾追加节点，槽位越界返回 false
func (a *Authoring) AddNode(slot int, n Node) bool {
	if !validSlot(slot) {
		return false
	}
	a.slots[slot] = append(a.slots[slot], n)
	return true
}

// RemoveNode 删除槽位中指定位置的节点
func (a *Authoring) RemoveNode(slot, index int) bool {
	if !validSlot(slot) || index < 0 || index >= len(a.slots[slot]) {
		return false
	}
	// 重新分配，避免影响之前通过 Program() 取出的副本
	p := make(Program, 0, len(a.slots[slot])-1)
	p = append(p, a.slots[slot][:index]...)
	p = append(p, a.slots[slot][index+1:]...)
	a.slots[slot] = p
	return true
}

// RemoveLast 删除槽位最后一个节点
func (a *Authoring) RemoveLast(slot int) bool {
	if !validSlot(slot) {
		return false
	}
	return a.RemoveNode(slot, len(a.slots[slot])-1)
}

// ClearSlot 清空指定槽位
func (a *Authoring) ClearSlot(slot int) {
	if validSlot(slot) {
		a.slots[slot] = Program{}
	}
}

// ClearAll 清空所有槽位
func (a *Authoring) ClearAll() {
	for i := range a.slots {
		a.slots[i] = Program{}
	}
}

// Program 返回槽位程序的独立副本，越界返回空程序
func (a *Authoring) Program(slot int) Program {
	if !validSlot(slot) {
		return Program{}
	}
	return a.slots[slot].Clone()
}

// Validate 校验指定槽位
func (a *Authoring) Validate(slot int) ValidationResult {
	if !validSlot(slot) {
		return ValidationResult{Reason: ReasonEmpty}
	}
	return Validate(a.slots[slot])
}

// Selected 当前选中的槽位
func (a *Authoring) Selected() int { return a.selected }

// SelectSlot 选中槽位，越界时忽略
func (a *Authoring) SelectSlot(slot int) {
	if validSlot(slot) {
		a.selected = slot
	}
}

// CycleSlot 选中下一个槽位
func (a *Authoring) CycleSlot() int {
	a.selected = (a.selected + 1) % SlotCount
	return a.selected
}

// RegisterPreset 登记示例程序（同名覆盖）
func (a *Authoring) RegisterPreset(name string, p Program) {
	a.presets[name] = p.Clone()
}

// Presets 返回按名称排序的示例程序列表
func (a *Authoring) Presets() []string {
	names := make([]string, 0, len(a.presets))
	for name := range a.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadExample 将示例程序加载到第一个空槽位，没有空槽位时覆盖槽位 0
//
// 返回:
//   - int: 加载到的槽位
//   - error: 示例不存在时返回 ErrUnknownPreset
func (a *Authoring) LoadExample(name string) (int, error) {
	preset, ok := a.presets[name]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}

	target := 0
	for i := range a.slots {
		if len(a.slots[i]) == 0 {
			target = i
			break
		}
	}

	a.slots[target] = preset.Clone()
	log.Printf("[Authoring] 加载示例 %q 到槽位 %d: %s", name, target+1, preset)
	return target, nil
}

// Fireable 返回第一个合法槽位的程序副本
// 没有合法槽位时返回默认程序，slot 为 -1
func (a *Authoring) Fireable() (Program, int) {
	for i := range a.slots {
		if Validate(a.slots[i]).Valid {
			return a.slots[i].Clone(), i
		}
	}
	return DefaultProgram(), -1
}
