package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"go-orc-defense/internal/app"
	"go-orc-defense/internal/config"
)

var (
	flagTicks int
	flagAuto  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a window",
	Long: `Run the simulation headless until game over or --ticks, then print the summary.
The finished run is stored in the run history.

With --auto a building is placed on the first free tile whenever coins allow.
Feed clients (--feed) can place buildings and restart the run.

Examples:
  game sim
  game sim --ticks 20000 --seed 7
  game sim --auto=false --feed :8080`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().BoolVar(&flagAuto, "auto", true, "Build on free tiles whenever affordable")
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(11)
	valueStyle = lipgloss.NewStyle().Bold(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")).MarginBottom(1)
)

func runSim(cmd *cobra.Command, _ []string) error {
	g, err := loadGame()
	if err != nil {
		return err
	}

	w := attach(cmd.Context(), g)
	defer w.Close()

	runner := &app.Runner{
		Game:      g,
		Commands:  w.Commands(),
		MaxTicks:  flagTicks,
		AutoBuild: flagAuto,
	}
	if w.hub != nil {
		runner.OnTick = func(g *app.Game) {
			if g.ECS.Tick%config.SnapshotInterval == 0 {
				w.hub.Publish(g.Snapshot())
			}
		}
	}

	summary := runner.Run(cmd.Context())
	// A run cut short by --ticks is still a finished run for the history.
	g.Stop()

	printSummary(summary)
	return nil
}

func printSummary(s app.Summary) {
	rows := []struct {
		label string
		value string
	}{
		{"run", s.RunID.String()},
		{"map", s.Map},
		{"wave", fmt.Sprint(s.Wave)},
		{"kills", fmt.Sprint(s.Kills)},
		{"escapes", fmt.Sprint(s.Escapes)},
		{"coins", fmt.Sprint(s.Coins)},
		{"buildings", fmt.Sprint(s.Buildings)},
		{"ticks", fmt.Sprint(s.Ticks)},
	}

	fmt.Println(titleStyle.Render("Run summary"))
	for _, r := range rows {
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), valueStyle.Render(r.value)))
	}
}
