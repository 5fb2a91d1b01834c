package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
	if cfg.Economy.InitialCoins != 125 || cfg.Economy.Lives != 10 || cfg.Economy.TileCost != 75 {
		t.Errorf("unexpected economy defaults: %+v", cfg.Economy)
	}
	if cfg.Tower.AttackRadius != 250 || cfg.Tower.FramesHold != 3 || cfg.Tower.ShootFrame != 6 {
		t.Errorf("unexpected tower defaults: %+v", cfg.Tower)
	}
	if cfg.Stone.MaxFramesAlive != 200 || cfg.Fireball.MaxFramesAlive != 300 {
		t.Errorf("unexpected projectile lifetimes: stone=%d fireball=%d",
			cfg.Stone.MaxFramesAlive, cfg.Fireball.MaxFramesAlive)
	}
}

func TestLoadGameCustomPathOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("economy:\n  initial_coins: 500\nwave:\n  increment: 1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if cfg.Economy.InitialCoins != 500 {
		t.Errorf("InitialCoins = %d, want 500", cfg.Economy.InitialCoins)
	}
	if cfg.Wave.Increment != 1 {
		t.Errorf("Increment = %d, want 1", cfg.Wave.Increment)
	}
	// untouched fields keep their defaults
	if cfg.Economy.Lives != 10 {
		t.Errorf("Lives = %d, want default 10", cfg.Economy.Lives)
	}
}

func TestLoadGameMissingCustomPath(t *testing.T) {
	if _, err := LoadGame(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*GameConfig){
		"frames hold":    func(c *GameConfig) { c.Tower.FramesHold = 0 },
		"shoot frame":    func(c *GameConfig) { c.Tower.ShootFrame = c.Tower.TotalFrames },
		"no speeds":      func(c *GameConfig) { c.Enemy.Speeds = nil },
		"negative speed": func(c *GameConfig) { c.Enemy.Speeds = []float64{2, -1} },
		"health":         func(c *GameConfig) { c.Enemy.Health = 150 },
		"wave":           func(c *GameConfig) { c.Wave.Increment = 0 },
		"heavy every":    func(c *GameConfig) { c.Tower.HeavyEvery = 0 },
		"lead steps":     func(c *GameConfig) { c.Tower.LeadSteps = -1 },
		"stone speed":    func(c *GameConfig) { c.Stone.Speed = 0 },
		"fireball speed": func(c *GameConfig) { c.Fireball.Speed = -6 },
	}
	for name, mutate := range cases {
		cfg := DefaultGameConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: Validate() = %v, want ErrInvalid", name, err)
		}
	}
}
