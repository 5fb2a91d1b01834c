// internal/system/movement.go
package system

import (
	"math"

	"go-orc-defense/internal/component"
	"go-orc-defense/internal/entity"
	"go-orc-defense/pkg/geom"
)

// MovementSystem ведёт врагов по точкам пути
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update делает один шаг для каждого врага в порядке появления.
func (s *MovementSystem) Update() {
	for _, id := range s.ecs.EnemyOrder {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}
		StepAlongPath(pos, vel, path)
	}
}

// StepAlongPath выполняет один тик врага: курс на текущую точку и сдвиг на скорость.
// Если после сдвига до точки меньше одного шага и есть следующая точка,
// индекс растёт на единицу. Перелёт не корректируется.
func StepAlongPath(pos *component.Position, vel *component.Velocity, path *component.Path) {
	if path.Exhausted() {
		return
	}
	waypoint := path.Waypoints[path.CurrentIndex]

	angle := math.Atan2(waypoint.Y-pos.Y, waypoint.X-pos.X)
	vel.DX = math.Cos(angle) * vel.Speed
	vel.DY = math.Sin(angle) * vel.Speed

	pos.X += vel.DX
	pos.Y += vel.DY

	if geom.Distance(pos.Point(), waypoint) < vel.Speed && path.CurrentIndex < len(path.Waypoints)-1 {
		path.CurrentIndex++
	}
}
