package system

import (
	"math"
	"testing"

	"go-orc-defense/internal/component"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/types"
)

func TestSelectTargetFirstInRangeNotNearest(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher, w.cfg)
	tile := w.addTile(0, 0) // firing point (64, 32)

	far := w.addEnemy(64+300, 32) // 300 >= 30+250
	inRange := w.addEnemy(64+270, 32)
	nearer := w.addEnemy(64+100, 32)

	if got := cs.SelectTarget(tile); got != inRange {
		t.Fatalf("SelectTarget = %d, want %d (far=%d, nearer=%d)", got, inRange, far, nearer)
	}

	w.ecs.Healths[inRange].Value = 0
	if got := cs.SelectTarget(tile); got != nearer {
		t.Errorf("dead enemy selected: got %d, want %d", got, nearer)
	}

	w.ecs.RemoveEnemy(nearer)
	if got := cs.SelectTarget(tile); got != types.NoEntity {
		t.Errorf("SelectTarget = %d, want none", got)
	}
}

func TestUpdateBuildingCadence(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher, w.cfg)
	tile := w.addTile(0, 0)
	target := w.addEnemy(200, 32)
	b := &component.Building{TargetID: target}

	var fired []int
	for tick := 1; tick <= 60; tick++ {
		before := len(b.Projectiles)
		cs.UpdateBuilding(tile, b)
		if len(b.Projectiles) > before {
			fired = append(fired, tick)
		}
	}

	// Поза меняется раз в 3 тика, выстрел на кадре 6, цикл из 10 кадров.
	want := []int{18, 48}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("shot %d at tick %d, want %d", i, fired[i], want[i])
		}
	}
	if w.count(event.ProjectileFired) != 2 {
		t.Errorf("ProjectileFired events = %d, want 2", w.count(event.ProjectileFired))
	}
}

func TestHeavyShotPattern(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher, w.cfg)
	tile := w.addTile(0, 0)
	b := &component.Building{TargetID: w.addEnemy(200, 32)}

	for i := 0; i < 7; i++ {
		cs.fire(tile, b)
	}

	want := []component.ProjectileKind{
		component.ProjectileStone, component.ProjectileStone, component.ProjectileStone,
		component.ProjectileFireball,
		component.ProjectileStone, component.ProjectileStone,
		component.ProjectileFireball,
	}
	for i, id := range b.Projectiles {
		if got := w.ecs.Projectiles[id].Kind; got != want[i] {
			t.Errorf("shot %d = %v, want %v", i+1, got, want[i])
		}
	}
}

func TestFireSpawnsAtOffsetAndLeads(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher, w.cfg)
	tile := w.addTile(100, 200)
	target := w.addEnemy(400, 140)
	w.ecs.Velocities[target].DX = 3
	b := &component.Building{TargetID: target}

	cs.fire(tile, b)

	id := b.Projectiles[0]
	pos := w.ecs.Positions[id]
	if pos.X != 160 || pos.Y != 140 {
		t.Fatalf("spawned at (%v, %v), want (160, 140)", pos.X, pos.Y)
	}
	// Упреждение на (400 + 20*3, 140), по горизонтали.
	vel := w.ecs.Velocities[id]
	if !near(vel.DX, w.cfg.Stone.Speed) || !near(vel.DY, 0) {
		t.Errorf("velocity = (%v, %v), want (%v, 0)", vel.DX, vel.DY, w.cfg.Stone.Speed)
	}
	if w.ecs.Projectiles[id].OwnerID != tile {
		t.Errorf("owner = %d, want %d", w.ecs.Projectiles[id].OwnerID, tile)
	}
}

func TestPoseReturnsToRestWithoutTarget(t *testing.T) {
	w := newWorld(t)
	cs := NewCombatSystem(w.ecs, w.dispatcher, w.cfg)
	tile := w.addTile(0, 0)
	target := w.addEnemy(200, 32)
	b := &component.Building{TargetID: target}

	for i := 0; i < 21; i++ { // кадр 7, один выстрел
		cs.UpdateBuilding(tile, b)
	}
	if b.CurrentFrame != 7 || len(b.Projectiles) != 1 {
		t.Fatalf("frame = %d, projectiles = %d", b.CurrentFrame, len(b.Projectiles))
	}

	w.ecs.RemoveEnemy(target)
	for i := 0; i < 30; i++ {
		cs.UpdateBuilding(tile, b)
	}
	if b.TargetID != types.NoEntity {
		t.Errorf("stale target kept: %d", b.TargetID)
	}
	if b.CurrentFrame != 0 {
		t.Errorf("frame = %d, want rest pose 0", b.CurrentFrame)
	}
	if len(b.Projectiles) != 1 {
		t.Errorf("fired without a target: %d projectiles", len(b.Projectiles))
	}
}

func TestCalcFutureTarget(t *testing.T) {
	w := newWorld(t)
	target := w.addEnemy(100, 0)
	w.ecs.Velocities[target].DX, w.ecs.Velocities[target].DY = 0, 1

	pos := &component.Position{}
	vel := &component.Velocity{Speed: 5, DX: -1, DY: -1}
	heading, ok := CalcFutureTarget(w.ecs, pos, vel, target, 20)
	if !ok {
		t.Fatal("live target not resolved")
	}
	want := math.Atan2(20, 100)
	if !near(heading, want) {
		t.Errorf("heading = %v, want %v", heading, want)
	}
	if !near(vel.DX, math.Cos(want)*5) || !near(vel.DY, math.Sin(want)*5) {
		t.Errorf("velocity = (%v, %v)", vel.DX, vel.DY)
	}

	w.ecs.Healths[target].Value = 0
	vel = &component.Velocity{Speed: 5, DX: -1, DY: -1}
	if _, ok := CalcFutureTarget(w.ecs, pos, vel, target, 20); ok {
		t.Error("dead target resolved")
	}
	if vel.DX != -1 || vel.DY != -1 {
		t.Errorf("velocity changed for a dead target: (%v, %v)", vel.DX, vel.DY)
	}
}
