package components

// PlayerComponent 玩家控制参数
type PlayerComponent struct {
	Speed float64 // 移动速度（像素/秒）
	// FireCooldown 两次发射的最小间隔（秒）
	FireCooldown float64
	// CooldownRemaining 距可再次发射的剩余时间（秒）
	CooldownRemaining float64
	// Hit 与敌人接触后置位，游戏结束
	Hit bool
}
