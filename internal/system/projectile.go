// internal/system/projectile.go
package system

import (
	"go-orc-defense/internal/component"
	"go-orc-defense/internal/config"
	"go-orc-defense/internal/entity"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/logging"
	"go-orc-defense/internal/types"
	"go-orc-defense/pkg/geom"
)

// Скорость затухания снаряда, потерявшего цель, за тик
const projectileFade = 0.05

var projectileLog = logging.New("projectile")

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	leadSteps       int
	explosionFrames int
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, cfg config.GameConfig) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		leadSteps:       cfg.Tower.LeadSteps,
		explosionFrames: cfg.Explosion.Frames,
	}
}

// UpdateBuilding тикает снаряды башни по порядку и убирает истёкшие
// и попавшие. Порядок оставшихся сохраняется.
func (s *ProjectileSystem) UpdateBuilding(b *component.Building) {
	kept := b.Projectiles[:0]
	for _, id := range b.Projectiles {
		if s.step(id) {
			kept = append(kept, id)
			continue
		}
		s.ecs.RemoveProjectile(id)
	}
	for i := len(kept); i < len(b.Projectiles); i++ {
		b.Projectiles[i] = types.NoEntity
	}
	b.Projectiles = kept
}

// step делает тик и проверку попадания одного снаряда. false означает, что снаряд нужно убрать.
func (s *ProjectileSystem) step(id types.EntityID) bool {
	proj, ok := s.ecs.Projectiles[id]
	if !ok {
		return false
	}
	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]

	TickProjectile(s.ecs, proj, pos, vel, s.leadSteps)
	if proj.Expired() {
		return false
	}

	targetPos, enemy, alive := s.ecs.LiveEnemy(proj.TargetID)
	if !alive || targetPos == nil {
		return true
	}
	if !geom.CircleOverlap(pos.Point(), proj.Radius, targetPos.Point(), enemy.Radius) {
		return true
	}

	dead := ApplyDamage(s.ecs, s.eventDispatcher, proj.TargetID, proj.Damage)
	projectileLog.Debug("hit", "projectile", id, "kind", proj.Kind, "target", proj.TargetID, "dead", dead)

	if proj.Kind == component.ProjectileStone {
		s.SpawnExplosion(pos.X, pos.Y)
	}
	return false
}

// TickProjectile выполняет один тик снаряда без проверки попадания.
// Без живой цели снаряд тускнеет и летит по прежнему курсу.
// Огненный шар перенаводится каждый тик, камень только при выстреле.
func TickProjectile(ecs *entity.ECS, proj *component.Projectile, pos *component.Position, vel *component.Velocity, leadSteps int) {
	_, _, alive := ecs.LiveEnemy(proj.TargetID)
	if !alive {
		proj.Alpha -= projectileFade
		if proj.Alpha < 0 {
			proj.Alpha = 0
		}
	}
	proj.ElapsedFrames++

	if alive && proj.Kind == component.ProjectileFireball {
		if heading, ok := CalcFutureTarget(ecs, pos, vel, proj.TargetID, leadSteps); ok {
			proj.Heading = heading
		}
	}

	pos.X += vel.DX
	pos.Y += vel.DY
}

// SpawnExplosion создаёт взрыв без владельца в точке (x, y).
func (s *ProjectileSystem) SpawnExplosion(x, y float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Explosions[id] = &component.Explosion{Frames: s.explosionFrames}
	s.ecs.ExplosionOrder = append(s.ecs.ExplosionOrder, id)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ExplosionSpawned,
		Data: event.ExplosionSpawnedData{X: x, Y: y},
	})
	return id
}
