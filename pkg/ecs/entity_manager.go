// Package ecs 提供一个极简的实体-组件管理器
//
// 组件是纯数据结构，按类型挂在实体上；逻辑放在使用方（系统/场景）。
// 画廊用它管理加载控件列表的行实体。
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 实体唯一标识，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理实体与组件的映射
type EntityManager struct {
	nextID     uint64
	components map[EntityID]map[reflect.Type]interface{}
	toDestroy  []EntityID
}

// NewEntityManager 创建空的实体管理器
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]interface{}),
	}
}

// CreateEntity 创建新实体并返回其 ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除（下次 RemoveMarkedEntities 时生效）
// 延迟删除保证一帧内的遍历不会踩到半删除状态
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.toDestroy = append(em.toDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.toDestroy {
		delete(em.components, id)
	}
	em.toDestroy = em.toDestroy[:0]
}

// AddComponent 为实体挂上组件（同类型覆盖）
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if compMap, ok := em.components[id]; ok {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 移除实体上指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, ok := em.components[id]; ok {
		delete(compMap, componentType)
	}
}

// HasEntity 检查实体是否存在
func (em *EntityManager) HasEntity(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// GetComponent 按类型取出实体的组件
//
// 类型参数通常是组件的指针类型，如 GetComponent[*RowComponent](em, id)。
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, ok := em.components[id]
	if !ok {
		return zero, false
	}
	comp, ok := compMap[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// GetEntitiesWith1 查询拥有指定组件类型的所有实体
// 结果按 ID 升序排列，保证遍历顺序稳定
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	t := reflect.TypeFor[T]()
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, ok := compMap[t]; ok {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// GetEntitiesWith2 查询同时拥有两种组件类型的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	t1 := reflect.TypeFor[T1]()
	t2 := reflect.TypeFor[T2]()
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, ok := compMap[t1]; !ok {
			continue
		}
		if _, ok := compMap[t2]; ok {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
