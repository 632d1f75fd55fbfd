package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointer 一帧内的指针输入，鼠标与触摸统一处理
type pointer struct {
	x, y    int
	pressed bool // 本帧刚按下左键或刚触摸
	cancel  bool // 本帧刚按下右键（触屏上没有对应操作）
}

// readPointer 读取本帧指针输入
// 有新触摸时以第一个触点为准，否则使用鼠标
func readPointer() pointer {
	p := pointer{cancel: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)}

	if touches := inpututil.AppendJustPressedTouchIDs(nil); len(touches) > 0 {
		p.x, p.y = ebiten.TouchPosition(touches[0])
		p.pressed = true
		return p
	}
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		p.x, p.y = ebiten.TouchPosition(touches[0])
		return p
	}

	p.x, p.y = ebiten.CursorPosition()
	p.pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return p
}
