// internal/entity/ids.go
package entity

import "coin-tower-defense/internal/types"

// IDAllocator раздает идентификаторы всем сущностям партии.
// Ноль зарезервирован под «нет сущности».
type IDAllocator struct {
	next types.EntityID
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

func (a *IDAllocator) NewEntity() types.EntityID {
	id := a.next
	a.next++
	return id
}
