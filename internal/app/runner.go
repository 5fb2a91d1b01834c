package app

import "context"

// Runner drives a Game without a window.
type Runner struct {
	Game     *Game
	Commands <-chan Command

	// MaxTicks of 0 means until game over.
	MaxTicks int

	// AutoBuild builds on the first free tile whenever affordable.
	AutoBuild bool

	// OnTick is called after every tick, may be nil.
	OnTick func(g *Game)
}

// Run ticks until game over, MaxTicks or ctx is done, and returns the summary.
// MaxTicks counts every Update of this call, restarts included.
// Game over (no lives left) stops the game the same way the window host does.
func (r *Runner) Run(ctx context.Context) Summary {
	g := r.Game
	// Restart resets g.ECS.Tick, so the budget is counted here.
	for ticks := 0; r.MaxTicks <= 0 || ticks < r.MaxTicks; ticks++ {
		if ctx.Err() != nil {
			break
		}
		g.Drain(r.Commands)
		if r.AutoBuild {
			r.autoBuild()
		}

		g.Update()
		if r.OnTick != nil {
			r.OnTick(g)
		}
		if g.EconomySystem.GameOver() {
			g.Stop()
			break
		}
		if !g.Running() {
			break
		}
	}
	return g.Summary()
}

func (r *Runner) autoBuild() {
	g := r.Game
	for g.EconomySystem.CanAfford(g.Config.Economy.TileCost) {
		id, ok := g.FirstFreeTile()
		if !ok {
			return
		}
		if err := g.PlaceBuilding(id); err != nil {
			appLog.Debug("auto build failed", "tile", id, "err", err)
			return
		}
	}
}
