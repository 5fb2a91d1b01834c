// game runs the orc defense tower-defense simulation.
//
// Usage:
//
//	game                 - Play in a window
//	game sim             - Run the simulation headless and print the summary
//	game scores          - Show the best recorded runs
//
// Global flags:
//
//	--config <path>  - Game config YAML (default: ~/.orc-defense/game.yaml, ./configs/game.yaml, embedded)
//	--map <path>     - Tiled JSON map (default: embedded meadow)
//	--seed <value>   - RNG seed (0 = random based on time)
//	--db <dsn>       - Run history: sqlite path or postgres:// DSN
//	--feed <addr>    - Serve the websocket feed on addr, e.g. :8080
//	--debug          - Debug logging and pprof on localhost:6060
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-orc-defense/internal/config"
	"go-orc-defense/internal/state"
)

var (
	flagConfig string
	flagMap    string
	flagSeed   int64
	flagDBPath string
	flagFeed   string
	flagDebug  bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Orc defense - a small tower defense",
	Long: `Orc defense: orcs walk the path, stone throwers on the placement tiles stop them.

Click a free tile to build (costs coins), drag or use WASD/arrows to pan,
P pauses. The run ends when the lives run out.

Examples:
  game
  game --seed 42 --feed :8080
  game sim --ticks 5000
  game scores`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Path to a Tiled JSON map")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config or time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.orc-defense/runs.db", "Run history database (sqlite path or postgres:// DSN)")
	rootCmd.PersistentFlags().StringVar(&flagFeed, "feed", "", "Address of the websocket feed (disabled when empty)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and pprof on localhost:6060")

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}

// AppGame adapts the state machine to ebiten.Game.
type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runWindow(cmd *cobra.Command, _ []string) error {
	g, err := loadGame()
	if err != nil {
		return err
	}

	if flagDebug {
		go func() {
			mainLog.Warn("pprof stopped", "err", http.ListenAndServe("localhost:6060", nil))
		}()
	}

	w := attach(cmd.Context(), g)
	defer w.Close()

	opts := state.Options{Commands: w.Commands()}
	if w.hub != nil {
		opts.Snapshots = w.hub
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, g, opts))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Orc Defense")
	return ebiten.RunGame(&AppGame{stateMachine: sm})
}
