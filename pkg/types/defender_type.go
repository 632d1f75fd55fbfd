package types

// DefenderType 定义防守方（植物）的类型
// 数值与卡片顺序一致
type DefenderType int

const (
	DefenderPeashooter DefenderType = iota // 豌豆射手：远程射击
	DefenderSunflower                      // 向日葵：被动产出
	DefenderWallNut                        // 坚果墙：高血量阻挡
	DefenderPotatoMine                     // 土豆地雷：布防后近距离引爆
	DefenderCherryBomb                     // 樱桃炸弹：引信结束后范围爆炸
	DefenderIceLettuce                     // 冰冻生菜：近身冰冻，一次性

	defenderTypeCount
)

// DefenderTypeCount 防守方类型数量
const DefenderTypeCount = int(defenderTypeCount)

// String 返回植物类型的字符串表示
func (d DefenderType) String() string {
	switch d {
	case DefenderPeashooter:
		return "Peashooter"
	case DefenderSunflower:
		return "Sunflower"
	case DefenderWallNut:
		return "WallNut"
	case DefenderPotatoMine:
		return "PotatoMine"
	case DefenderCherryBomb:
		return "CherryBomb"
	case DefenderIceLettuce:
		return "IceLettuce"
	default:
		return "Unknown"
	}
}

// Valid 判断编码是否是已知类型
func (d DefenderType) Valid() bool {
	return d >= 0 && d < defenderTypeCount
}
