// internal/system/utils.go
package system

import (
	"go-orc-defense/internal/entity"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/types"
)

// ApplyDamage вычитает урон, не опуская здоровье ниже нуля,
// и сообщает новую долю здоровья. Возвращает true, если враг погиб.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, entityID types.EntityID, damage int) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return false
	}

	if damage > 0 {
		health.Value -= damage
	}
	if health.Value < 0 {
		health.Value = 0
	}

	if dispatcher != nil {
		dispatcher.Dispatch(event.Event{
			Type: event.EnemyDamaged,
			Data: event.EnemyDamagedData{ID: entityID, Ratio: health.Ratio()},
		})
	}
	return health.IsDead()
}
