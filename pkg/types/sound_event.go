package types

// SoundEvent 模拟核心每帧产出的离散事件编码
// 由表现层映射为具体音效，数值是对外契约，不可重排
type SoundEvent int

const (
	SoundNone             SoundEvent = iota // 无
	SoundGenericImpact                      // 普通命中
	SoundEating                             // 啃食
	SoundAreaExplosion                      // 范围爆炸
	SoundThrow                              // 投掷
	SoundLightArmorImpact                   // 命中轻护甲（路障）
	SoundHeavyArmorImpact                   // 命中重护甲（铁桶）
	SoundPaperRip                           // 报纸被打碎
	SoundAnger                              // 愤怒
)

var soundEventNames = [...]string{
	SoundNone:             "none",
	SoundGenericImpact:    "impact",
	SoundEating:           "eating",
	SoundAreaExplosion:    "explosion",
	SoundThrow:            "throw",
	SoundLightArmorImpact: "light_armor_impact",
	SoundHeavyArmorImpact: "heavy_armor_impact",
	SoundPaperRip:         "paper_rip",
	SoundAnger:            "anger",
}

// String 返回事件名称
func (s SoundEvent) String() string {
	if s >= 0 && int(s) < len(soundEventNames) {
		return soundEventNames[s]
	}
	return "unknown"
}
