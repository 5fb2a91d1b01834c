package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// GameConfig holds every simulation tunable.
type GameConfig struct {
	Seed      int64            `yaml:"seed"`
	Log       LogConfig        `yaml:"log"`
	Map       MapConfig        `yaml:"map"`
	Economy   EconomyConfig    `yaml:"economy"`
	Enemy     EnemyConfig      `yaml:"enemy"`
	Tower     TowerConfig      `yaml:"tower"`
	Stone     ProjectileConfig `yaml:"stone"`
	Fireball  ProjectileConfig `yaml:"fireball"`
	Explosion ExplosionConfig  `yaml:"explosion"`
	Wave      WaveConfig       `yaml:"wave"`
	Camera    CameraConfig     `yaml:"camera"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// MapConfig describes how the map description is interpreted.
type MapConfig struct {
	Cell            int    `yaml:"cell"`
	PlacementSymbol int    `yaml:"placement_symbol"`
	PlacementLayer  string `yaml:"placement_layer"`
	WaypointLayer   string `yaml:"waypoint_layer"`
}

// EconomyConfig holds coins and lives bookkeeping.
type EconomyConfig struct {
	InitialCoins int     `yaml:"initial_coins"`
	TileCost     int     `yaml:"tile_cost"`
	KillReward   float64 `yaml:"kill_reward"`
	Lives        int     `yaml:"lives"`
}

// EnemyConfig holds per-enemy constants.
type EnemyConfig struct {
	Health int       `yaml:"health"`
	Radius float64   `yaml:"radius"`
	Speeds []float64 `yaml:"speeds"`
}

// TowerConfig holds building constants.
type TowerConfig struct {
	AttackRadius float64 `yaml:"attack_radius"`
	FramesHold   int     `yaml:"frames_hold"`
	ShootFrame   int     `yaml:"shoot_frame"`
	TotalFrames  int     `yaml:"total_frames"`
	HeavyEvery   int     `yaml:"heavy_every"`
	SpawnOffsetX float64 `yaml:"spawn_offset_x"`
	SpawnOffsetY float64 `yaml:"spawn_offset_y"`
	LeadSteps    int     `yaml:"lead_steps"`
}

// ProjectileConfig holds the constants of one projectile kind.
type ProjectileConfig struct {
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	Damage         int     `yaml:"damage"`
	MaxFramesAlive int     `yaml:"max_frames_alive"`
}

// ExplosionConfig holds the explosion effect lifetime.
type ExplosionConfig struct {
	Frames int `yaml:"frames"`
}

// WaveConfig holds the spawn director settings.
type WaveConfig struct {
	InitialSize   int     `yaml:"initial_size"`
	Increment     int     `yaml:"increment"`
	Spread        float64 `yaml:"spread"`
	FixedSpacing  float64 `yaml:"fixed_spacing"`
	StartWaypoint int     `yaml:"start_waypoint"`
}

// CameraConfig holds viewport settings.
type CameraConfig struct {
	KeyStep float64 `yaml:"key_step"`
}

// Validate checks values the simulation cannot run with.
func (c *GameConfig) Validate() error {
	switch {
	case c.Map.Cell <= 0:
		return fmt.Errorf("%w: map.cell must be positive", ErrInvalid)
	case c.Map.PlacementLayer == "" || c.Map.WaypointLayer == "":
		return fmt.Errorf("%w: map layer names must be set", ErrInvalid)
	case c.Economy.Lives <= 0:
		return fmt.Errorf("%w: economy.lives must be positive", ErrInvalid)
	case c.Economy.InitialCoins < 0 || c.Economy.TileCost < 0:
		return fmt.Errorf("%w: economy values must not be negative", ErrInvalid)
	case c.Enemy.Health <= 0 || c.Enemy.Health > 100:
		return fmt.Errorf("%w: enemy.health must be in 1..100", ErrInvalid)
	case len(c.Enemy.Speeds) == 0:
		return fmt.Errorf("%w: enemy.speeds must not be empty", ErrInvalid)
	case c.Tower.FramesHold <= 0:
		return fmt.Errorf("%w: tower.frames_hold must be positive", ErrInvalid)
	case c.Tower.TotalFrames <= 0 || c.Tower.ShootFrame < 0 || c.Tower.ShootFrame >= c.Tower.TotalFrames:
		return fmt.Errorf("%w: tower.shoot_frame must be within total_frames", ErrInvalid)
	case c.Tower.HeavyEvery < 1:
		return fmt.Errorf("%w: tower.heavy_every must be at least 1", ErrInvalid)
	case c.Tower.LeadSteps < 0:
		return fmt.Errorf("%w: tower.lead_steps must not be negative", ErrInvalid)
	case c.Stone.Speed <= 0 || c.Fireball.Speed <= 0:
		return fmt.Errorf("%w: projectile speed must be positive", ErrInvalid)
	case c.Stone.MaxFramesAlive <= 0 || c.Fireball.MaxFramesAlive <= 0:
		return fmt.Errorf("%w: projectile lifetime must be positive", ErrInvalid)
	case c.Explosion.Frames <= 0:
		return fmt.Errorf("%w: explosion.frames must be positive", ErrInvalid)
	case c.Wave.InitialSize <= 0 || c.Wave.Increment <= 0:
		return fmt.Errorf("%w: wave sizes must be positive", ErrInvalid)
	case c.Wave.StartWaypoint < 1:
		return fmt.Errorf("%w: wave.start_waypoint must be at least 1", ErrInvalid)
	}
	for _, s := range c.Enemy.Speeds {
		if s <= 0 {
			return fmt.Errorf("%w: enemy speed %v must be positive", ErrInvalid, s)
		}
	}
	return nil
}
