//go:build !mobile

// 普通构建时 mobile.go 和 embed.go 被排除，保留此文件让 ./... 能正常编译
package mobile

// Dummy 与移动端构建导出相同的符号
func Dummy() {}
