package game

import (
	"github.com/gonewx/towerengine/pkg/components"
	"github.com/gonewx/towerengine/pkg/config"
)

// GameState 经济状态：阳光、生命、卡片与自然阳光
// 由引擎持有，每个模拟实例一份
type GameState struct {
	Sun   int // 当前阳光数量
	Lives int // 剩余生命

	Cards []components.PlantCard

	AutoSunAmount   int     // 自然阳光数额
	AutoSunInterval float64 // 自然阳光间隔
	autoSunTimer    float64
}

// NewGameState 创建经济状态
// 卡片初始均可用，自然阳光计时从一个完整间隔开始
func NewGameState(sun, lives, autoSunAmount int, autoSunInterval float64, cards []config.CardConfig) *GameState {
	gs := &GameState{
		Sun:             sun,
		Lives:           lives,
		Cards:           make([]components.PlantCard, 0, len(cards)),
		AutoSunAmount:   autoSunAmount,
		AutoSunInterval: autoSunInterval,
		autoSunTimer:    autoSunInterval,
	}
	for _, c := range cards {
		gs.Cards = append(gs.Cards, components.PlantCard{
			Type:        c.Type,
			Cost:        c.Cost,
			MaxCooldown: c.Cooldown,
		})
	}
	return gs
}

// AddSun 增加阳光
func (gs *GameState) AddSun(amount int) {
	gs.Sun += amount
}

// SpendSun 扣除阳光，如果阳光不足返回 false
func (gs *GameState) SpendSun(amount int) bool {
	if gs.Sun < amount {
		return false
	}
	gs.Sun -= amount
	return true
}

// LoseLife 扣除一条命，返回生命是否耗尽
func (gs *GameState) LoseLife() bool {
	gs.Lives--
	return gs.Lives <= 0
}

// Card 返回下标对应的卡片，越界返回 false
func (gs *GameState) Card(index int) (*components.PlantCard, bool) {
	if index < 0 || index >= len(gs.Cards) {
		return nil, false
	}
	return &gs.Cards[index], true
}

// UpdateCards 递减所有卡片冷却（允许为负）
func (gs *GameState) UpdateCards(dt float64) {
	for i := range gs.Cards {
		gs.Cards[i].Cooldown -= dt
	}
}

// UpdateAutoSun 推进自然阳光计时，到期时入账并返回本帧入账数额
// 计时超出的部分计入下一个周期，长时间运行不会累积误差
func (gs *GameState) UpdateAutoSun(dt float64) int {
	if gs.AutoSunInterval <= 0 {
		return 0
	}

	gs.autoSunTimer -= dt
	credited := 0
	for gs.autoSunTimer <= 0 {
		credited += gs.AutoSunAmount
		gs.autoSunTimer += gs.AutoSunInterval
	}
	gs.Sun += credited
	return credited
}

// AutoSunRemaining 距离下一次自然阳光的时间
func (gs *GameState) AutoSunRemaining() float64 {
	return gs.autoSunTimer
}
