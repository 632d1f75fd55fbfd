package types

// MarkerKind 视觉标记的种类（范围效果的占位表现）
type MarkerKind int

const (
	MarkerMine   MarkerKind = iota // 土豆地雷爆炸
	MarkerCherry                   // 樱桃炸弹爆炸
	MarkerIce                      // 冰冻
)

// String 返回标记种类名称
func (m MarkerKind) String() string {
	switch m {
	case MarkerMine:
		return "mine"
	case MarkerCherry:
		return "cherry"
	case MarkerIce:
		return "ice"
	default:
		return "unknown"
	}
}
