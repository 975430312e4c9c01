// Package program 定义子弹程序的节点模型、语法校验和编辑槽位
//
// 子弹程序是一个有序的节点序列，每个节点由种类（PROPERTY/WHEN/IF/DO）和动作 id 组成。
// 节点是不可变值，程序在发射时被整体复制给子弹，之后编辑槽位不会影响飞行中的子弹。
package program

import (
	"fmt"
	"strings"
)

// Kind 节点种类
type Kind int

const (
	// KindProperty 被动属性节点，发射时应用一次，不参与流程校验
	KindProperty Kind = iota
	// KindWhen 触发节点（立即、计时器、碰撞）
	KindWhen
	// KindIf 条件节点，每次评估时重新轮询战场状态
	KindIf
	// KindDo 动作节点，每颗子弹生命周期内最多执行一次
	KindDo
)

// String 返回节点种类的大写名称
func (k Kind) String() string {
	switch k {
	case KindProperty:
		return "PROPERTY"
	case KindWhen:
		return "WHEN"
	case KindIf:
		return "IF"
	case KindDo:
		return "DO"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind 解析边界格式中的节点种类（大小写不敏感）
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "property":
		return KindProperty, true
	case "when":
		return KindWhen, true
	case "if":
		return KindIf, true
	case "do":
		return KindDo, true
	}
	return 0, false
}

// Action 动作 id，取值来自各种类的封闭词表
type Action string

// PROPERTY 动作
const (
	ActionHoming      Action = "homing"
	ActionPenetrate   Action = "penetrate"
	ActionHighDamage  Action = "high-damage"
	ActionPoison      Action = "poison"
	ActionMagnetic    Action = "magnetic"
	ActionShieldBreak Action = "shield-break"
	ActionSlowEffect  Action = "slow-effect"
)

// WHEN 动作
const (
	ActionImmediate    Action = "immediate"
	ActionTimer1       Action = "timer-1"
	ActionTimer2       Action = "timer-2"
	ActionEnemyContact Action = "enemy-contact"
	ActionWallContact  Action = "wall-contact"
)

// IF 动作
const (
	ActionEnemyNear Action = "enemy-near"
	ActionEnemyFar  Action = "enemy-far"
	ActionEnemyMany Action = "enemy-many"
	ActionNoEnemy   Action = "no-enemy"
)

// DO 动作
const (
	ActionSplit   Action = "split"
	ActionExplode Action = "explode"
	ActionBounce  Action = "bounce"
	ActionSpeedUp Action = "speed-up"
	ActionDestroy Action = "destroy"
)

// vocabulary 各节点种类允许的动作（顺序即编辑面板中的展示顺序）
var vocabulary = map[Kind][]Action{
	KindProperty: {ActionHoming, ActionPenetrate, ActionHighDamage, ActionPoison, ActionMagnetic, ActionShieldBreak, ActionSlowEffect},
	KindWhen:     {ActionImmediate, ActionTimer1, ActionTimer2, ActionEnemyContact, ActionWallContact},
	KindIf:       {ActionEnemyNear, ActionEnemyFar, ActionEnemyMany, ActionNoEnemy},
	KindDo:       {ActionSplit, ActionExplode, ActionBounce, ActionSpeedUp, ActionDestroy},
}

// Vocabulary 返回指定种类的动作列表副本
func Vocabulary(kind Kind) []Action {
	actions := vocabulary[kind]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// IsValid 判断 (kind, action) 是否属于封闭词表
func IsValid(kind Kind, action Action) bool {
	for _, a := range vocabulary[kind] {
		if a == action {
			return true
		}
	}
	return false
}

// InvalidNodeError 未知的 (kind, action) 组合
type InvalidNodeError struct {
	Kind   string
	Action string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("invalid node: kind=%q action=%q", e.Kind, e.Action)
}

// Node 程序节点，创建后不可变
type Node struct {
	kind   Kind
	action Action
}

// NewNode 创建节点，拒绝词表之外的组合
//
// 参数:
//   - kind: 节点种类
//   - action: 动作 id
//
// 返回:
//   - Node: 创建的节点
//   - error: 组合非法时返回 *InvalidNodeError
func NewNode(kind Kind, action Action) (Node, error) {
	if !IsValid(kind, action) {
		return Node{}, &InvalidNodeError{Kind: kind.String(), Action: string(action)}
	}
	return Node{kind: kind, action: action}, nil
}

// MustNode 创建节点，组合非法时 panic（仅用于内置常量程序和测试）
func MustNode(kind Kind, action Action) Node {
	n, err := NewNode(kind, action)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseNode 从边界格式 {kind, action} 字符串对创建节点
func ParseNode(kind, action string) (Node, error) {
	k, ok := ParseKind(kind)
	if !ok {
		return Node{}, &InvalidNodeError{Kind: kind, Action: action}
	}
	n, err := NewNode(k, Action(action))
	if err != nil {
		return Node{}, &InvalidNodeError{Kind: kind, Action: action}
	}
	return n, nil
}

// Kind 返回节点种类
func (n Node) Kind() Kind { return n.kind }

// Action 返回动作 id
func (n Node) Action() Action { return n.action }

// Label 返回节点的展示名称
func (n Node) Label() string { return Label(n.kind, n.action) }

// String 返回 "KIND action" 形式，用于日志
func (n Node) String() string {
	return n.kind.String() + " " + string(n.action)
}

// Spec 边界格式中的节点表示
type Spec struct {
	Kind   string `yaml:"kind" json:"kind"`
	Action string `yaml:"action" json:"action"`
}

// Spec 将节点转换为边界格式
func (n Node) Spec() Spec {
	return Spec{Kind: strings.ToLower(n.kind.String()), Action: string(n.action)}
}
