package bullet

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/gonewx/bulletprog/pkg/program"
)

// actionFunc DO 动作的实现
type actionFunc func(b *Bullet) error

// actions DO 动作表，未登记的动作只记录日志
// split 经 Start 间接引用 dispatch，表只能在 init 中填充
var actions map[program.Action]actionFunc

func init() {
	actions = map[program.Action]actionFunc{
		program.ActionSplit:   (*Bullet).split,
		program.ActionExplode: (*Bullet).explode,
		program.ActionBounce:  (*Bullet).enableBounce,
		program.ActionSpeedUp: (*Bullet).speedUp,
		program.ActionDestroy: (*Bullet).selfDestroy,
	}
}

// execute 标记 DO 为已执行后分派
// 先标记再执行，动作内部触发的重入评估不会再次执行同一节点
func (b *Bullet) execute(node program.Node, index int) {
	b.executed[index] = struct{}{}
	if b.env.OnExecute != nil {
		b.env.OnExecute(b, index, node)
	}

	if err := b.dispatch(node); err != nil {
		log.Printf("[BulletProgram] DO %d (%s) 执行失败: %v", index, node.Action(), err)
	}
}

// dispatch 执行单个动作，动作中的 panic 转为错误
func (b *Bullet) dispatch(node program.Node) (err error) {
	fn, ok := actions[node.Action()]
	if !ok {
		return fmt.Errorf("unknown action %q", node.Action())
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(b)
}

// split 在当前位置生成两颗偏转 ±30° 的子弹，之后自身销毁
// 超出代数或数量上限时不生成子弹，自身仍然销毁
func (b *Bullet) split() error {
	defer b.Destroy()

	if b.env.Tuning.MaxGeneration > 0 && b.Generation >= b.env.Tuning.MaxGeneration {
		return ErrGenerationLimit
	}

	b.play(EffectSplit)

	// 两颗子弹要么都生成，要么都不生成
	if err := b.env.admit(b.ShotID, 2); err != nil {
		if errors.Is(err, ErrPopulationLimit) {
			log.Printf("[BulletProgram] 子弹数量已达上限，分裂取消 (shot=%s)", b.ShotID)
			return nil
		}
		return err
	}

	heading := b.Heading()
	children := make([]*Bullet, 0, 2)
	var spawnErr error
	for _, offset := range []float64{-SplitAngle, SplitAngle} {
		c := b.child(heading + offset)
		if err := b.env.spawn(c); err != nil {
			spawnErr = err
			break
		}
		children = append(children, c)
	}

	// 已接入的子弹即使另一颗失败也要启动
	for _, c := range children {
		c.Start()
	}
	return spawnErr
}

// explode 对距离小于 ExplodeRadius 的敌人造成双倍伤害，之后自身销毁
func (b *Bullet) explode() error {
	defer b.Destroy()

	b.play(EffectExplode)
	if b.env.World == nil {
		return nil
	}

	damage := b.Damage * ExplodeDamageFactor
	for _, e := range b.env.World.Enemies() {
		x, y := e.Position()
		if math.Hypot(x-b.X, y-b.Y) < ExplodeRadius {
			e.TakeDamage(damage, b.Flags.ShieldBreak)
		}
	}
	return nil
}

// enableBounce 启用弹性反弹并提高撞墙上限
func (b *Bullet) enableBounce() error {
	b.Bounce = true
	if b.env.Tuning.BounceMaxBounces > b.MaxBounces {
		b.MaxBounces = b.env.Tuning.BounceMaxBounces
	}
	return nil
}

// speedUp 速率乘以 1.5，方向不变
func (b *Bullet) speedUp() error {
	heading := b.Heading()
	b.Speed *= SpeedUpFactor
	b.SetHeading(heading)

	b.play(EffectSpeedUp)
	b.follow(EffectSpeedTrail)
	return nil
}

func (b *Bullet) selfDestroy() error {
	b.Destroy()
	return nil
}

// steerHoming 朝最近的敌人转向，每帧转角不超过 HomingTurnRate
func (b *Bullet) steerHoming() {
	target, ok := b.nearestEnemy()
	if !ok {
		return
	}

	current := b.Heading()
	desired := math.Atan2(target.Y-b.Y, target.X-b.X)
	diff := normalizeAngle(desired - current)

	limit := b.env.Tuning.HomingTurnRate
	if diff > limit {
		diff = limit
	} else if diff < -limit {
		diff = -limit
	}
	b.SetHeading(current + diff)
}

type point struct{ X, Y float64 }

func (b *Bullet) nearestEnemy() (point, bool) {
	if b.env.World == nil {
		return point{}, false
	}

	var best point
	bestDist := math.Inf(1)
	for _, e := range b.env.World.Enemies() {
		x, y := e.Position()
		if d := math.Hypot(x-b.X, y-b.Y); d < bestDist {
			bestDist = d
			best = point{x, y}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// pullEnemies 将磁力半径内的敌人拉向子弹，牵引距离 = 强度 / 距离
func (b *Bullet) pullEnemies() {
	if b.env.World == nil {
		return
	}

	radius := b.env.Tuning.MagneticRadius
	strength := b.env.Tuning.MagneticStrength
	for _, e := range b.env.World.Enemies() {
		x, y := e.Position()
		dx, dy := b.X-x, b.Y-y
		dist := math.Hypot(dx, dy)
		if dist == 0 || dist > radius {
			continue
		}
		pull := strength / dist
		if pull > dist {
			pull = dist
		}
		e.Nudge(dx/dist*pull, dy/dist*pull)
	}
}

// normalizeAngle 将角度归一化到 (-π, π]
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// play 播放一次性效果，失败只记录日志
func (b *Bullet) play(kind EffectKind) {
	if b.env.Effects == nil {
		return
	}
	if err := b.env.Effects.Play(kind, b.X, b.Y); err != nil {
		log.Printf("[BulletProgram] 效果 %s 播放失败: %v", kind, err)
	}
}

// follow 挂载跟随效果，销毁时释放
func (b *Bullet) follow(kind EffectKind) {
	if b.env.Effects == nil {
		return
	}
	release, err := b.env.Effects.Follow(kind, b)
	if err != nil {
		log.Printf("[BulletProgram] 跟随效果 %s 挂载失败: %v", kind, err)
		return
	}
	b.OnDestroy(release)
}
