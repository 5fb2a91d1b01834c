package main

import (
	"context"
	"fmt"

	"go-orc-defense/internal/app"
	"go-orc-defense/internal/config"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/feed"
	"go-orc-defense/internal/level"
	"go-orc-defense/internal/logging"
	"go-orc-defense/internal/storage"
)

var mainLog = logging.New("main")

// loadGame reads the config and the map and creates a running game.
func loadGame() (*app.Game, error) {
	cfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	logging.SetLevel(cfg.Log.Level)
	if flagDebug {
		logging.SetLevel("debug")
	}

	var lvl *level.Level
	if flagMap != "" {
		lvl, err = level.LoadFile(flagMap, cfg.Map)
	} else {
		lvl, err = level.Default(cfg.Map)
	}
	if err != nil {
		return nil, err
	}
	return app.NewGame(lvl, cfg), nil
}

// wiring holds the optional outer services attached to a game.
type wiring struct {
	store  *storage.Store
	hub    *feed.Hub
	cancel context.CancelFunc
}

// attach subscribes the run history and the websocket feed to the game's events.
// Both are optional: failures are logged and the game runs without them.
func attach(ctx context.Context, g *app.Game) *wiring {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	w := &wiring{cancel: cancel}

	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			mainLog.Warn("run history disabled", "err", err)
		} else {
			w.store = store
			g.EventDispatcher.Subscribe(event.GameOver, storage.NewRecorder(store))
		}
	}

	if flagFeed != "" {
		w.hub = feed.NewHub()
		g.EventDispatcher.SubscribeAll(w.hub)
		go func() {
			if err := feed.Serve(ctx, flagFeed, w.hub); err != nil {
				mainLog.Error("feed stopped", "addr", flagFeed, "err", err)
			}
		}()
	}
	return w
}

// Commands returns the feed's command channel, nil without a feed.
func (w *wiring) Commands() <-chan app.Command {
	if w.hub == nil {
		return nil
	}
	return w.hub.Commands()
}

func (w *wiring) Close() {
	w.cancel()
	if w.store != nil {
		w.store.Close()
	}
}
