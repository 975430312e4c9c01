package program

import (
	"fmt"
	"strings"
)

// Program 有序节点序列，顺序决定 WHEN/IF 对 DO 的门控关系
type Program []Node

// Clone 返回独立的副本
// 节点本身不可变，复制切片即可保证值语义
func Clone(p Program) Program {
	if p == nil {
		return nil
	}
	out := make(Program, len(p))
	copy(out, p)
	return out
}

// Clone 返回程序的独立副本
func (p Program) Clone() Program { return Clone(p) }

// Equal 判断两个程序结构是否相同
func (p Program) Equal(other Program) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Has 判断程序中是否存在指定节点
func (p Program) Has(kind Kind, action Action) bool {
	for _, n := range p {
		if n.kind == kind && n.action == action {
			return true
		}
	}
	return false
}

// Specs 转换为边界格式
func (p Program) Specs() []Spec {
	out := make([]Spec, len(p))
	for i, n := range p {
		out[i] = n.Spec()
	}
	return out
}

// String 以 "→" 连接的展示形式，用于 HUD 和日志
func (p Program) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = string(n.action)
	}
	return strings.Join(parts, " → ")
}

// FromSpecs 从边界格式构建程序，任一节点非法时返回错误
func FromSpecs(specs []Spec) (Program, error) {
	p := make(Program, 0, len(specs))
	for i, s := range specs {
		n, err := ParseNode(s.Kind, s.Action)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		p = append(p, n)
	}
	return p, nil
}

// Parse 解析紧凑文本格式，如 "property:homing, when:timer-2, do:explode"
// 主要供命令行工具使用
func Parse(text string) (Program, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Program{}, nil
	}
	fields := strings.Split(text, ",")
	specs := make([]Spec, 0, len(fields))
	for _, f := range fields {
		kind, action, ok := strings.Cut(strings.TrimSpace(f), ":")
		if !ok {
			return nil, fmt.Errorf("malformed node %q, want kind:action", strings.TrimSpace(f))
		}
		specs = append(specs, Spec{Kind: strings.TrimSpace(kind), Action: strings.TrimSpace(action)})
	}
	return FromSpecs(specs)
}

// DefaultProgram 没有可用槽位时使用的普通子弹：接触敌人后消失
func DefaultProgram() Program {
	return Program{
		MustNode(KindWhen, ActionEnemyContact),
		MustNode(KindDo, ActionDestroy),
	}
}
