package ecs

// EntityID 是实体的唯一标识符
// 0 保留为无效ID
type EntityID uint64

// Entity 是所有可放入 Arena 的实体需要满足的约束
type Entity interface {
	EntityID() EntityID
	IsDeleted() bool
}

// IDAllocator 分配单调递增的实体ID
// 每个模拟实例持有一个，不存在进程级全局计数器
type IDAllocator struct {
	nextID uint64
}

// NewIDAllocator 创建一个新的 ID 分配器，ID 从 1 开始
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{nextID: 1}
}

// Next 返回下一个可用ID
func (a *IDAllocator) Next() EntityID {
	id := EntityID(a.nextID)
	a.nextID++
	return id
}

// Arena 按值持有同一类实体的集合
//
// 删除分两步：
//  1. 帧内只把实体标记为已删除（由调用方修改实体自身的删除标记）
//  2. 帧末调用 Compact() 统一移除
//
// 因此帧内任何阶段遍历时看到的集合都是稳定的。
// At() 返回的指针只在下一次 Push/Compact 之前有效，不得跨帧保存。
type Arena[T Entity] struct {
	items []T
}

// NewArena 创建一个空集合
func NewArena[T Entity]() *Arena[T] {
	return &Arena[T]{items: make([]T, 0, 32)}
}

// Push 追加实体，返回其下标
func (a *Arena[T]) Push(v T) int {
	a.items = append(a.items, v)
	return len(a.items) - 1
}

// Len 返回实体数量（包含已标记删除但尚未压缩的实体）
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// At 返回下标 i 处的实体指针，越界返回 nil
func (a *Arena[T]) At(i int) *T {
	if i < 0 || i >= len(a.items) {
		return nil
	}
	return &a.items[i]
}

// Items 返回底层切片（只读视图）
func (a *Arena[T]) Items() []T {
	return a.items
}

// Lookup 通过稳定ID查找实体
func (a *Arena[T]) Lookup(id EntityID) (*T, bool) {
	for i := range a.items {
		if a.items[i].EntityID() == id {
			return &a.items[i], true
		}
	}
	return nil, false
}

// Live 统计未被标记删除的实体数量
func (a *Arena[T]) Live() int {
	n := 0
	for i := range a.items {
		if !a.items[i].IsDeleted() {
			n++
		}
	}
	return n
}

// Compact 移除所有已标记删除的实体，保持剩余实体的相对顺序
// onRemove 可为 nil，在实体被移除前调用（如释放网格占用）
// 返回被移除的数量
func (a *Arena[T]) Compact(onRemove func(*T)) int {
	kept := a.items[:0]
	removed := 0
	for i := range a.items {
		if a.items[i].IsDeleted() {
			if onRemove != nil {
				onRemove(&a.items[i])
			}
			removed++
			continue
		}
		kept = append(kept, a.items[i])
	}
	// 清零尾部，避免残留数据
	var zero T
	for i := len(kept); i < len(a.items); i++ {
		a.items[i] = zero
	}
	a.items = kept
	return removed
}
