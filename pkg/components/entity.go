package components

import (
	"github.com/gonewx/towerengine/pkg/ecs"
	"github.com/gonewx/towerengine/pkg/utils"
)

// Entity 所有场上实体共享的基础数据
// 位置为实体中心的世界坐标
type Entity struct {
	ID      ecs.EntityID
	Pos     utils.Vec2
	Radius  float64
	Deleted bool
}

// EntityID 返回实体ID
func (e Entity) EntityID() ecs.EntityID { return e.ID }

// IsDeleted 是否已标记删除
func (e Entity) IsDeleted() bool { return e.Deleted }

// Delete 标记删除，实际移除在帧末压缩时进行
func (e *Entity) Delete() { e.Deleted = true }
