package app

import (
	"time"

	"go-orc-defense/internal/types"

	"github.com/google/uuid"
)

// Summary is the outcome of a run, stored in the run history.
type Summary struct {
	RunID     uuid.UUID `json:"run_id"`
	Map       string    `json:"map"`
	Wave      int       `json:"wave"`
	Kills     int       `json:"kills"`
	Escapes   int       `json:"escapes"`
	Coins     int       `json:"coins"`
	Buildings int       `json:"buildings"`
	Ticks     int       `json:"ticks"`
	EndedAt   time.Time `json:"ended_at"`
}

// Summary reports the current run.
func (g *Game) Summary() Summary {
	return Summary{
		RunID:     g.RunID,
		Map:       g.Level.Name,
		Wave:      g.ECS.Wave.Number,
		Kills:     g.ECS.Economy.Kills,
		Escapes:   g.ECS.Economy.Escapes,
		Coins:     g.ECS.Economy.Coins,
		Buildings: len(g.ECS.Buildings),
		Ticks:     g.ECS.Tick,
		EndedAt:   time.Now().UTC(),
	}
}

// EnemyView is one enemy in a snapshot.
type EnemyView struct {
	ID     types.EntityID `json:"id"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Health float64        `json:"health"`
}

// TileView is one placement tile in a snapshot. Feed clients place by ID.
type TileView struct {
	ID       types.EntityID `json:"id"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Occupied bool           `json:"occupied"`
}

// Snapshot is the periodic state pushed to feed clients.
type Snapshot struct {
	Tick    int         `json:"tick"`
	State   string      `json:"state"`
	Coins   int         `json:"coins"`
	Lives   int         `json:"lives"`
	Wave    int         `json:"wave"`
	Tiles   []TileView  `json:"tiles"`
	Enemies []EnemyView `json:"enemies"`
}

// Snapshot captures the economy, the tiles in map order and the live enemies in spawn order.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.ECS.Tick,
		State:   g.ECS.GameState.String(),
		Coins:   g.ECS.Economy.Coins,
		Lives:   g.ECS.Economy.Lives,
		Wave:    g.ECS.Wave.Number,
		Tiles:   make([]TileView, 0, len(g.ECS.TileOrder)),
		Enemies: make([]EnemyView, 0, len(g.ECS.EnemyOrder)),
	}
	for _, id := range g.ECS.TileOrder {
		pos := g.ECS.Positions[id]
		s.Tiles = append(s.Tiles, TileView{
			ID:       id,
			X:        pos.X,
			Y:        pos.Y,
			Occupied: g.ECS.Tiles[id].Occupied,
		})
	}
	for _, id := range g.ECS.EnemyOrder {
		pos, _, alive := g.ECS.LiveEnemy(id)
		if !alive || pos == nil {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID:     id,
			X:      pos.X,
			Y:      pos.Y,
			Health: g.ECS.Healths[id].Ratio(),
		})
	}
	return s
}
