// internal/entity/ecs.go
package entity

import (
	"go-orc-defense/internal/component"
	"go-orc-defense/internal/types"
)

// ECS хранит компоненты по ID сущности. ID не переиспользуются,
// поэтому отсутствие ID в карте означает, что сущность удалена.
// Порядок обхода задают срезы *Order: карты Go не упорядочены.
type ECS struct {
	Tick        int
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Tiles       map[types.EntityID]*component.Tile
	Buildings   map[types.EntityID]*component.Building // Ключ: ID тайла
	Projectiles map[types.EntityID]*component.Projectile
	Explosions  map[types.EntityID]*component.Explosion

	EnemyOrder     []types.EntityID // Порядок появления
	TileOrder      []types.EntityID // Порядок в слое карты
	ExplosionOrder []types.EntityID

	Wave      *component.Wave
	Economy   *component.Economy
	GameState component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Tiles:       make(map[types.EntityID]*component.Tile),
		Buildings:   make(map[types.EntityID]*component.Building),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Wave:        &component.Wave{},
		Economy:     &component.Economy{},
		GameState:   component.Running,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// LiveEnemy возвращает врага, если он существует и жив.
// Нулевой или устаревший ID даёт ok == false.
func (ecs *ECS) LiveEnemy(id types.EntityID) (*component.Position, *component.Enemy, bool) {
	enemy, ok := ecs.Enemies[id]
	if !ok {
		return nil, nil, false
	}
	if h, ok := ecs.Healths[id]; ok && h.IsDead() {
		return nil, nil, false
	}
	return ecs.Positions[id], enemy, true
}

// RemoveEnemy удаляет компоненты врага. EnemyOrder уплотняет вызывающий.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
}

// RemoveProjectile удаляет компоненты снаряда.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Projectiles, id)
}

// RemoveExplosion удаляет компоненты взрыва.
func (ecs *ECS) RemoveExplosion(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Explosions, id)
}

// ClearUnits удаляет врагов, снаряды, взрывы и башни. Тайлы остаются.
func (ecs *ECS) ClearUnits() {
	for _, id := range ecs.EnemyOrder {
		ecs.RemoveEnemy(id)
	}
	for id := range ecs.Projectiles {
		ecs.RemoveProjectile(id)
	}
	for _, id := range ecs.ExplosionOrder {
		ecs.RemoveExplosion(id)
	}
	ecs.EnemyOrder = ecs.EnemyOrder[:0]
	ecs.ExplosionOrder = ecs.ExplosionOrder[:0]
	ecs.Buildings = make(map[types.EntityID]*component.Building)
	for _, t := range ecs.Tiles {
		t.Occupied = false
	}
}
