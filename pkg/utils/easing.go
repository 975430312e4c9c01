package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
// 用于效果圆环的扩散和淡出

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-Clamp01(t), 3)
}

// EaseInQuad 二次方缓入，开始慢结束快
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// RingFrame 效果圆环在进度 p 时的半径和不透明度
// 半径按缓出扩散，不透明度按缓入淡出到 0
func RingFrame(startRadius, endRadius, initialAlpha, p float64) (radius, alpha float64) {
	radius = Lerp(startRadius, endRadius, EaseOutCubic(p))
	alpha = initialAlpha * (1 - EaseInQuad(p))
	return radius, alpha
}
