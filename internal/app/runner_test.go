package app

import (
	"context"
	"testing"
)

func TestRunnerStopsAtMaxTicks(t *testing.T) {
	g := newTestGame(t)
	r := &Runner{Game: g, MaxTicks: 120, AutoBuild: true}

	s := r.Run(context.Background())

	if s.Ticks != 120 {
		t.Errorf("ticks = %d, want 120", s.Ticks)
	}
	if s.Buildings != 1 {
		t.Errorf("buildings = %d, want 1 with 125 coins", s.Buildings)
	}
	if s.RunID != g.RunID || s.Map != "test" {
		t.Errorf("summary = %+v", s)
	}
}

func TestRunnerStopsOnGameOver(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Economy.Lives = 1

	ticks := 0
	r := &Runner{Game: g, MaxTicks: 5000, OnTick: func(*Game) { ticks++ }}
	s := r.Run(context.Background())

	if g.Running() {
		t.Fatal("game still running after the last life")
	}
	if s.Escapes != 1 || s.Ticks != ticks || s.Ticks >= 5000 {
		t.Errorf("summary = %+v, ticks seen = %d", s, ticks)
	}
}

func TestRunnerHonoursContext(t *testing.T) {
	g := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := (&Runner{Game: g}).Run(ctx)
	if s.Ticks != 0 {
		t.Errorf("ticks = %d, want 0", s.Ticks)
	}
}

func TestRunnerMaxTicksSurvivesRestart(t *testing.T) {
	g := newTestGame(t)
	commands := make(chan Command, 1)

	ticks := 0
	r := &Runner{Game: g, Commands: commands, MaxTicks: 100, OnTick: func(*Game) {
		ticks++
		if ticks == 60 {
			commands <- Command{Kind: CommandRestart}
		}
	}}
	s := r.Run(context.Background())

	if ticks != 100 {
		t.Errorf("ticks seen = %d, want 100", ticks)
	}
	if s.Ticks != 40 {
		t.Errorf("ticks since restart = %d, want 40", s.Ticks)
	}
}
