package main

import "github.com/gdamore/tcell/v2"

// canvas 字符缓冲区，绘制完成后一次性提交到终端
type canvas struct {
	w, h   int
	runes  []rune
	styles []tcell.Style
}

func newCanvas(w, h int) *canvas {
	c := &canvas{
		w:      w,
		h:      h,
		runes:  make([]rune, w*h),
		styles: make([]tcell.Style, w*h),
	}
	c.clear()
	return c
}

func (c *canvas) clear() {
	for i := range c.runes {
		c.runes[i] = ' '
		c.styles[i] = tcell.StyleDefault
	}
}

func (c *canvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y*c.w+x] = r
	c.styles[y*c.w+x] = style
}

func (c *canvas) at(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.runes[y*c.w+x]
}

func (c *canvas) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.set(x, y, r, style)
		x++
	}
}

// line 返回一行文本，用于测试
func (c *canvas) line(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	return string(c.runes[y*c.w : (y+1)*c.w])
}

func (c *canvas) show(screen tcell.Screen) {
	screen.Clear()
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			screen.SetContent(x, y, c.runes[y*c.w+x], nil, c.styles[y*c.w+x])
		}
	}
	screen.Show()
}
