package components

// LifetimeComponent 存在时间上限
// 子弹到期走 Bullet.Destroy，效果圆环到期直接删除
type LifetimeComponent struct {
	MaxLifetime     float64 // 秒
	CurrentLifetime float64 // 秒
	IsExpired       bool
}

// Advance 累加存在时间，首次到期时返回 true
func (l *LifetimeComponent) Advance(dt float64) bool {
	if l.IsExpired {
		return false
	}
	l.CurrentLifetime += dt
	if l.CurrentLifetime < l.MaxLifetime {
		return false
	}
	l.IsExpired = true
	return true
}
