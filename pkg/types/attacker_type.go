// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// AttackerType 定义进攻方（僵尸）的类型
// 数值与关卡文件中的 type 编码一致，不可重排
type AttackerType int

const (
	AttackerNormal     AttackerType = iota // 普通僵尸
	AttackerConehead                       // 路障僵尸（轻护甲）
	AttackerBuckethead                     // 铁桶僵尸（重护甲）
	AttackerFootball                       // 橄榄球僵尸（重护甲 + 高速）
	AttackerNewspaper                      // 读报僵尸
	AttackerImp                            // 小鬼僵尸
	AttackerGargantuar                     // 巨人僵尸
	AttackerFlag                           // 旗帜僵尸

	attackerTypeCount
)

// AttackerTypeCount 进攻方类型数量
const AttackerTypeCount = int(attackerTypeCount)

// attackerTypeStringMap 类型到配置字符串的映射
var attackerTypeStringMap = map[AttackerType]string{
	AttackerNormal:     "normal",
	AttackerConehead:   "conehead",
	AttackerBuckethead: "buckethead",
	AttackerFootball:   "football",
	AttackerNewspaper:  "newspaper",
	AttackerImp:        "imp",
	AttackerGargantuar: "gargantuar",
	AttackerFlag:       "flag",
}

// stringToAttackerTypeMap 配置字符串到类型的反向映射
var stringToAttackerTypeMap map[string]AttackerType

func init() {
	stringToAttackerTypeMap = make(map[string]AttackerType, len(attackerTypeStringMap)+1)
	for at, s := range attackerTypeStringMap {
		stringToAttackerTypeMap[s] = at
	}
	// 别名
	stringToAttackerTypeMap["basic"] = AttackerNormal
}

// String 返回配置字符串表示
func (a AttackerType) String() string {
	if s, ok := attackerTypeStringMap[a]; ok {
		return s
	}
	return "unknown"
}

// Valid 判断编码是否是已知类型
func (a AttackerType) Valid() bool {
	return a >= 0 && a < attackerTypeCount
}

// AttackerTypeFromString 将配置字符串转换为 AttackerType
func AttackerTypeFromString(s string) (AttackerType, bool) {
	at, ok := stringToAttackerTypeMap[s]
	return at, ok
}
