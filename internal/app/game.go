// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-orc-defense/internal/component"
	"go-orc-defense/internal/config"
	"go-orc-defense/internal/entity"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/level"
	"go-orc-defense/internal/logging"
	"go-orc-defense/internal/system"
	"go-orc-defense/internal/types"
	"go-orc-defense/internal/utils"
	"go-orc-defense/pkg/geom"

	"github.com/google/uuid"
)

var (
	ErrUnknownTile       = errors.New("unknown tile")
	ErrTileOccupied      = errors.New("tile is occupied")
	ErrInsufficientCoins = errors.New("not enough coins")
)

var appLog = logging.New("app")

// Game holds the simulation state and runs one tick per rendered frame.
type Game struct {
	RunID              uuid.UUID
	Level              *level.Level
	Config             config.GameConfig
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	WaveSystem         *system.WaveSystem
	EconomySystem      *system.EconomySystem
	VisualEffectSystem *system.VisualEffectSystem
}

// NewGame builds the tiles from the level and starts the first wave.
func NewGame(lvl *level.Level, cfg config.GameConfig) *Game {
	if lvl == nil {
		panic("level cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)
	g := &Game{
		Level:              lvl,
		Config:             cfg,
		ECS:                ecs,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		MovementSystem:     system.NewMovementSystem(ecs),
		CombatSystem:       system.NewCombatSystem(ecs, eventDispatcher, cfg),
		ProjectileSystem:   system.NewProjectileSystem(ecs, eventDispatcher, cfg),
		WaveSystem:         system.NewWaveSystem(ecs, eventDispatcher, rng, cfg),
		EconomySystem:      system.NewEconomySystem(ecs, eventDispatcher, cfg.Economy),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
	}
	g.createTiles()
	g.start()
	appLog.Info("game created", "map", lvl.Name, "tiles", len(lvl.Tiles), "seed", rng.Seed())
	return g
}

// Update advances the simulation by one tick. No-op once the game has ended.
func (g *Game) Update() {
	if g.ECS.GameState != component.Running {
		return
	}
	g.ECS.Tick++

	g.MovementSystem.Update()
	g.cleanupDestroyedEntities()
	g.VisualEffectSystem.Update()
	g.updateBuildings()

	if len(g.ECS.EnemyOrder) == 0 {
		g.WaveSystem.NextWave()
	}
}

// Stop ends the game. Further Update calls do nothing until Restart.
func (g *Game) Stop() {
	if g.ECS.GameState == component.Ended {
		return
	}
	g.ECS.GameState = component.Ended
	summary := g.Summary()
	appLog.Info("game over", "run", g.RunID, "wave", summary.Wave, "kills", summary.Kills, "ticks", summary.Ticks)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: summary})
}

// Restart clears every unit and building, resets economy and waves
// and starts wave 1.
func (g *Game) Restart() {
	g.ECS.ClearUnits()
	g.ECS.Tick = 0
	g.start()
	appLog.Info("game restarted", "run", g.RunID)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

// Running reports whether the simulation is ticking.
func (g *Game) Running() bool {
	return g.ECS.GameState == component.Running
}

// PlaceBuilding builds on a free tile if the player can afford it.
func (g *Game) PlaceBuilding(tileID types.EntityID) error {
	tile, ok := g.ECS.Tiles[tileID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTile, tileID)
	}
	if tile.Occupied {
		return fmt.Errorf("%w: %d", ErrTileOccupied, tileID)
	}
	cost := g.Config.Economy.TileCost
	if !g.EconomySystem.CanAfford(cost) {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientCoins, g.ECS.Economy.Coins, cost)
	}

	tile.Occupied = true
	g.ECS.Buildings[tileID] = &component.Building{}
	g.EconomySystem.OnPurchase(cost)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.BuildingPlaced,
		Data: event.BuildingPlacedData{TileID: tileID, Cost: cost},
	})
	return nil
}

// TileAt returns the tile under a world point.
func (g *Game) TileAt(x, y float64) (types.EntityID, bool) {
	p := geom.Point{X: x, Y: y}
	for _, id := range g.ECS.TileOrder {
		if geom.PointInRect(p, g.TileBounds(id)) {
			return id, true
		}
	}
	return types.NoEntity, false
}

// TileBounds returns the clickable area: two cells wide, one cell high.
func (g *Game) TileBounds(id types.EntityID) geom.Bounds {
	pos, ok := g.ECS.Positions[id]
	if !ok {
		return geom.Bounds{}
	}
	cell := g.Level.Cell
	return geom.BoundsAt(pos.Point(), 2*cell, cell)
}

// FirstFreeTile returns the first unoccupied tile in map order.
func (g *Game) FirstFreeTile() (types.EntityID, bool) {
	for _, id := range g.ECS.TileOrder {
		if !g.ECS.Tiles[id].Occupied {
			return id, true
		}
	}
	return types.NoEntity, false
}

// --- Private Helper Functions ---

func (g *Game) start() {
	g.RunID = uuid.New()
	g.EconomySystem.Reset()
	g.WaveSystem.Reset(g.Level.Waypoints)
	g.ECS.GameState = component.Running
	g.WaveSystem.SpawnWave()
}

func (g *Game) createTiles() {
	for i, p := range g.Level.Tiles {
		id := g.ECS.NewEntity()
		g.ECS.Positions[id] = &component.Position{X: p.X, Y: p.Y}
		g.ECS.Tiles[id] = &component.Tile{Index: i}
		g.ECS.TileOrder = append(g.ECS.TileOrder, id)
	}
}

// cleanupDestroyedEntities reaps dead enemies (reward) and enemies past
// the right edge of the map (life lost). Spawn order is preserved.
func (g *Game) cleanupDestroyedEntities() {
	kept := g.ECS.EnemyOrder[:0]
	for _, id := range g.ECS.EnemyOrder {
		health, hasHealth := g.ECS.Healths[id]
		pos, hasPos := g.ECS.Positions[id]

		switch {
		case hasHealth && health.IsDead():
			reward := 0.0
			if enemy, ok := g.ECS.Enemies[id]; ok {
				reward = enemy.Reward
			}
			g.ECS.RemoveEnemy(id)
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyKilledData{ID: id, Reward: reward},
			})
		case hasPos && pos.X > g.Level.Width:
			g.ECS.RemoveEnemy(id)
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyEscaped,
				Data: event.EnemyEscapedData{ID: id},
			})
		default:
			kept = append(kept, id)
		}
	}
	for i := len(kept); i < len(g.ECS.EnemyOrder); i++ {
		g.ECS.EnemyOrder[i] = types.NoEntity
	}
	g.ECS.EnemyOrder = kept
}

// updateBuildings runs every building in tile order: target, pose, projectiles.
func (g *Game) updateBuildings() {
	for _, tileID := range g.ECS.TileOrder {
		tile := g.ECS.Tiles[tileID]
		b, ok := g.ECS.Buildings[tileID]
		if !tile.Occupied || !ok {
			continue
		}
		b.TargetID = g.CombatSystem.SelectTarget(tileID)
		g.CombatSystem.UpdateBuilding(tileID, b)
		g.ProjectileSystem.UpdateBuilding(b)
	}
}
