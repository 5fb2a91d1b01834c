package app

import (
	"fmt"

	"go-orc-defense/internal/types"
)

// CommandKind names an external command.
type CommandKind string

const (
	CommandPlace   CommandKind = "place"
	CommandRestart CommandKind = "restart"
)

// Command comes from outside the simulation goroutine (feed clients).
// Commands are queued and applied at the start of a frame.
type Command struct {
	Kind CommandKind
	Tile types.EntityID
}

// Apply executes a command on the simulation goroutine.
func (g *Game) Apply(cmd Command) error {
	switch cmd.Kind {
	case CommandPlace:
		return g.PlaceBuilding(cmd.Tile)
	case CommandRestart:
		g.Restart()
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd.Kind)
	}
}

// Drain applies every queued command without blocking.
// Errors are logged, a bad command never stops the frame.
func (g *Game) Drain(commands <-chan Command) {
	if commands == nil {
		return
	}
	for {
		select {
		case cmd, ok := <-commands:
			if !ok {
				return
			}
			if err := g.Apply(cmd); err != nil {
				appLog.Warn("command rejected", "kind", cmd.Kind, "tile", cmd.Tile, "err", err)
			}
		default:
			return
		}
	}
}
