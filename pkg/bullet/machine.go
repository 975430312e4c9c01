package bullet

import (
	"github.com/gonewx/bulletprog/pkg/condition"
	"github.com/gonewx/bulletprog/pkg/program"
)

// evalPass 一次评估过程中缓存的战场快照
// 任何 DO 执行之后失效，之后的 IF 重新读取战场
type evalPass struct {
	b    *Bullet
	snap *condition.Snapshot
}

func (p *evalPass) snapshot() condition.Snapshot {
	if p.snap == nil {
		s := p.b.Snapshot()
		p.snap = &s
	}
	return *p.snap
}

func (p *evalPass) invalidate() { p.snap = nil }

// EvaluateProgram 从左到右扫描程序，执行所有满足门控条件且尚未执行的 DO 节点
// 可以重复调用：已执行的 DO 会被跳过；子弹销毁后立即停止
func (b *Bullet) EvaluateProgram() {
	if !b.alive {
		return
	}

	pass := &evalPass{b: b}
	for i, node := range b.program {
		if !b.alive {
			return
		}
		if b.IsExecuted(i) {
			continue
		}
		if !b.canExecute(pass, node, i) {
			continue
		}
		if node.Kind() == program.KindDo {
			b.execute(node, i)
			pass.invalidate()
		}
	}
}

// canExecute 判断节点本次评估是否就绪
// WHEN/IF 就绪本身不产生效果，只有 DO 会被执行
func (b *Bullet) canExecute(pass *evalPass, node program.Node, index int) bool {
	switch node.Kind() {
	case program.KindWhen:
		return b.conditions[index]
	case program.KindIf:
		return condition.Evaluate(node, pass.snapshot())
	case program.KindDo:
		return b.previousSatisfied(pass, index)
	default:
		return false
	}
}

// previousSatisfied 从 DO 向前扫描到最近的 WHEN
// 最近的 WHEN 必须已触发，途中遇到的每个 IF 都必须此刻为真，PROPERTY 跳过
// 前面没有 WHEN 的 DO 永远不会执行
func (b *Bullet) previousSatisfied(pass *evalPass, doIndex int) bool {
	for i := doIndex - 1; i >= 0; i-- {
		node := b.program[i]
		switch node.Kind() {
		case program.KindWhen:
			return b.conditions[i]
		case program.KindIf:
			if !condition.Evaluate(node, pass.snapshot()) {
				return false
			}
		}
	}
	return false
}

// Snapshot 以子弹当前位置构建战场快照
func (b *Bullet) Snapshot() condition.Snapshot {
	s := condition.Snapshot{BulletX: b.X, BulletY: b.Y}
	if b.env.World == nil {
		return s
	}
	enemies := b.env.World.Enemies()
	s.Enemies = make([]condition.Point, 0, len(enemies))
	for _, e := range enemies {
		x, y := e.Position()
		s.Enemies = append(s.Enemies, condition.Point{X: x, Y: y})
	}
	return s
}

// latch 将所有指定类型的 WHEN 标记为已触发
func (b *Bullet) latch(action program.Action) {
	for i, node := range b.program {
		if node.Kind() == program.KindWhen && node.Action() == action {
			b.conditions[i] = true
		}
	}
}

// OnWallContact 宿主检测到撞墙时调用
// 撞墙次数达到上限时销毁，否则触发 wall-contact 并重新评估
func (b *Bullet) OnWallContact() {
	if !b.alive {
		return
	}

	b.BounceCount++
	if b.BounceCount >= b.MaxBounces {
		b.Destroy()
		return
	}

	b.play(EffectBounce)
	b.latch(program.ActionWallContact)
	b.EvaluateProgram()
}

// OnEnemyContact 宿主检测到子弹与敌人重叠时调用
// 同一敌人只结算一次伤害；穿透子弹同样置位 enemy-contact，但不立即评估，继续飞行
func (b *Bullet) OnEnemyContact(e Enemy) {
	if !b.alive || e == nil {
		return
	}
	if _, hit := b.hitEnemies[e]; hit {
		return
	}
	b.hitEnemies[e] = struct{}{}

	b.play(EffectHit)
	e.TakeDamage(b.Damage, b.Flags.ShieldBreak)
	if b.Flags.Poison {
		e.ApplyPoison(b.Damage)
	}
	if b.Flags.SlowEffect {
		e.ApplySlow(b.env.Tuning.SlowMultiplier, b.env.Tuning.SlowDuration)
	}

	b.latch(program.ActionEnemyContact)
	if b.Flags.Penetrate {
		return
	}
	b.EvaluateProgram()
}

// Update 每帧调用：先应用连续属性行为，再评估程序
func (b *Bullet) Update() {
	if !b.alive {
		return
	}
	if b.Flags.Homing {
		b.steerHoming()
	}
	if b.Flags.Magnetic {
		b.pullEnemies()
	}
	b.EvaluateProgram()
}
