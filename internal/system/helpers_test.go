package system

import (
	"io"
	"math"
	"testing"

	"go-orc-defense/internal/component"
	"go-orc-defense/internal/config"
	"go-orc-defense/internal/entity"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/logging"
	"go-orc-defense/internal/types"
)

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	cfg        config.GameConfig
	events     []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	logging.SetOutput(io.Discard)
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		cfg:        config.DefaultGameConfig(),
	}
	w.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		w.events = append(w.events, e)
	}))
	return w
}

func (w *world) addEnemy(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: 3}
	w.ecs.Healths[id] = &component.Health{Value: 100, Max: 100}
	w.ecs.Enemies[id] = &component.Enemy{Radius: 30, Reward: 25}
	w.ecs.EnemyOrder = append(w.ecs.EnemyOrder, id)
	return id
}

func (w *world) addTile(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Tiles[id] = &component.Tile{Index: len(w.ecs.TileOrder)}
	w.ecs.TileOrder = append(w.ecs.TileOrder, id)
	return id
}

func (w *world) addProjectile(kind component.ProjectileKind, x, y float64, target types.EntityID) types.EntityID {
	pc := w.cfg.Stone
	if kind == component.ProjectileFireball {
		pc = w.cfg.Fireball
	}
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: pc.Speed}
	w.ecs.Projectiles[id] = &component.Projectile{
		Kind:           kind,
		TargetID:       target,
		Speed:          pc.Speed,
		Radius:         pc.Radius,
		Damage:         pc.Damage,
		MaxFramesAlive: pc.MaxFramesAlive,
		Alpha:          1,
	}
	return id
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
