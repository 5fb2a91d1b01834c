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

var buildingLog = logging.New("building")

// CombatSystem управляет прицеливанием и стрельбой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	cell            float64
	tower           config.TowerConfig
	stone           config.ProjectileConfig
	fireball        config.ProjectileConfig
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, cfg config.GameConfig) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		cell:            float64(cfg.Map.Cell),
		tower:           cfg.Tower,
		stone:           cfg.Stone,
		fireball:        cfg.Fireball,
	}
}

// FiringPoint возвращает точку, от которой меряется дальность башни.
func (s *CombatSystem) FiringPoint(tileID types.EntityID) geom.Point {
	pos, ok := s.ecs.Positions[tileID]
	if !ok {
		return geom.Point{}
	}
	return geom.Point{X: pos.X + s.cell, Y: pos.Y + s.cell/2}
}

// SelectTarget возвращает первого живого врага в порядке появления,
// попавшего в радиус атаки. Не ближайшего.
func (s *CombatSystem) SelectTarget(tileID types.EntityID) types.EntityID {
	center := s.FiringPoint(tileID)
	for _, id := range s.ecs.EnemyOrder {
		pos, enemy, alive := s.ecs.LiveEnemy(id)
		if !alive || pos == nil {
			continue
		}
		if geom.Distance(center, pos.Point()) < enemy.Radius+s.tower.AttackRadius {
			return id
		}
	}
	return types.NoEntity
}

// UpdateBuilding выполняет один тик башни (счётчик кадров, поза, выстрел).
// Цель к этому моменту уже выбрана через SelectTarget.
func (s *CombatSystem) UpdateBuilding(tileID types.EntityID, b *component.Building) {
	if b.TargetID != types.NoEntity {
		if _, _, alive := s.ecs.LiveEnemy(b.TargetID); !alive {
			b.TargetID = types.NoEntity
		}
	}
	hasTarget := b.TargetID != types.NoEntity

	b.ElapsedFrames++
	newFrame := b.ElapsedFrames%s.tower.FramesHold == 0

	// Поза крутится, пока есть цель, и доигрывает до нуля без неё
	if hasTarget || b.CurrentFrame != 0 {
		if newFrame {
			if b.CurrentFrame >= s.tower.TotalFrames-1 {
				b.CurrentFrame = 0
			} else {
				b.CurrentFrame++
			}
		}
	}

	if hasTarget && b.CurrentFrame == s.tower.ShootFrame && newFrame {
		s.fire(tileID, b)
	}
}

// fire выпускает камень, а каждым (heavyEvery+1)-м выстрелом огненный шар.
func (s *CombatSystem) fire(tileID types.EntityID, b *component.Building) {
	kind := component.ProjectileStone
	pc := s.stone
	if b.ElapsedShots >= s.tower.HeavyEvery {
		kind = component.ProjectileFireball
		pc = s.fireball
		b.ElapsedShots = 0
	}

	tilePos := s.ecs.Positions[tileID]
	id := s.ecs.NewEntity()
	pos := &component.Position{
		X: tilePos.X + s.tower.SpawnOffsetX,
		Y: tilePos.Y + s.tower.SpawnOffsetY,
	}
	vel := &component.Velocity{Speed: pc.Speed}
	proj := &component.Projectile{
		Kind:           kind,
		OwnerID:        tileID,
		TargetID:       b.TargetID,
		Speed:          pc.Speed,
		Radius:         pc.Radius,
		Damage:         pc.Damage,
		MaxFramesAlive: pc.MaxFramesAlive,
		Alpha:          1,
	}
	s.ecs.Positions[id] = pos
	s.ecs.Velocities[id] = vel
	s.ecs.Projectiles[id] = proj
	b.Projectiles = append(b.Projectiles, id)

	if heading, ok := CalcFutureTarget(s.ecs, pos, vel, b.TargetID, s.tower.LeadSteps); ok {
		proj.Heading = heading
	}
	b.ElapsedShots++

	buildingLog.Debug("fire", "tile", tileID, "kind", kind, "target", b.TargetID, "x", pos.X, "y", pos.Y)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.ProjectileFiredData{TileID: tileID, ProjectileID: id, Kind: kind.String()},
	})
}

// CalcFutureTarget наводит снаряд на точку, где цель окажется через steps тиков
// при текущей скорости. Возвращает курс. Для мёртвой или пропавшей цели
// скорость снаряда не меняется, ok == false.
func CalcFutureTarget(ecs *entity.ECS, pos *component.Position, vel *component.Velocity, targetID types.EntityID, steps int) (float64, bool) {
	targetPos, _, alive := ecs.LiveEnemy(targetID)
	if !alive || targetPos == nil {
		return 0, false
	}

	future := targetPos.Point()
	if targetVel, ok := ecs.Velocities[targetID]; ok {
		future = future.Add(geom.Point{X: targetVel.DX, Y: targetVel.DY}.Scale(float64(steps)))
	}

	heading := geom.Heading(pos.Point(), future)
	v := geom.FromAngle(heading, vel.Speed)
	vel.DX, vel.DY = v.X, v.Y
	return heading, true
}
