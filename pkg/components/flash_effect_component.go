package components

// FlashEffectComponent 受击闪白
// 再次受击时从头开始，到期后由 FlashEffectSystem 移除
type FlashEffectComponent struct {
	Duration  float64 // 秒
	Elapsed   float64 // 秒
	Intensity float64 // 初始不透明度 [0, 1]
	IsActive  bool
}

// Restart 重新开始闪白
func (f *FlashEffectComponent) Restart() {
	f.Elapsed = 0
	f.IsActive = true
}

// Alpha 当前不透明度，线性衰减到 0
func (f *FlashEffectComponent) Alpha() float64 {
	if f == nil || !f.IsActive || f.Duration <= 0 || f.Elapsed >= f.Duration {
		return 0
	}
	return f.Intensity * (1 - f.Elapsed/f.Duration)
}

// Done 是否已播放完
func (f *FlashEffectComponent) Done() bool {
	return f.Elapsed >= f.Duration
}
