package components

// HealthComponent 存储敌人的生命值
// 伤害可以是小数（毒伤为子弹伤害的一半）
type HealthComponent struct {
	CurrentHealth float64 // 当前生命值
	MaxHealth     float64 // 最大生命值
	// Killed 生命值首次降到 0 时置位，防止重复计分
	Killed bool
}
