package storage

import (
	"context"
	"time"

	"go-orc-defense/internal/app"
	"go-orc-defense/internal/event"
)

// Recorder stores every finished run. Subscribe it to event.GameOver.
type Recorder struct {
	store   *Store
	timeout time.Duration
}

func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store, timeout: 5 * time.Second}
}

func (r *Recorder) OnEvent(e event.Event) {
	summary, ok := e.Data.(app.Summary)
	if e.Type != event.GameOver || !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.store.RecordRun(ctx, FromSummary(summary)); err != nil {
		storeLog.Error("run not recorded", "run", summary.RunID, "err", err)
		return
	}
	storeLog.Info("run recorded", "run", summary.RunID, "wave", summary.Wave, "kills", summary.Kills)
}
