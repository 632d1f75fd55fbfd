// Package utils 提供通用工具函数
package utils

import "math"

// Vec2 二维向量（世界坐标，单位：像素）
type Vec2 struct {
	X float64
	Y float64
}

// V 构造一个向量
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len 向量长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize 返回单位向量
// 零向量返回零向量
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l <= 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance 两点之间的欧氏距离
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}
