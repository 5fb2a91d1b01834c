// internal/system/visual_effect.go
package system

import (
	"go-orc-defense/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами (взрывы).
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update продвигает взрывы на кадр и убирает отыгравшие.
func (s *VisualEffectSystem) Update() {
	kept := s.ecs.ExplosionOrder[:0]
	for _, id := range s.ecs.ExplosionOrder {
		explosion, ok := s.ecs.Explosions[id]
		if !ok {
			continue
		}
		explosion.Elapsed++
		if explosion.Done() {
			s.ecs.RemoveExplosion(id)
			continue
		}
		kept = append(kept, id)
	}
	s.ecs.ExplosionOrder = kept
}
