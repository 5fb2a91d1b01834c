// internal/state/end_state.go
package state

import (
	"fmt"

	"go-orc-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*EndState)(nil)

// EndState показывает итог и ждёт рестарта: кнопка, Enter или команда фида.
type EndState struct {
	sm    *StateMachine
	game  *GameState
	modal *ui.Modal
}

func NewEndState(sm *StateMachine, gs *GameState) *EndState {
	modal := ui.NewModal(ui.DefaultFace())
	s := gs.game.Summary()
	modal.Score = fmt.Sprintf("Wave %d, kills %d", s.Wave, s.Kills)
	return &EndState{sm: sm, game: gs, modal: modal}
}

func (s *EndState) Enter() {}

func (s *EndState) Update() {
	// Рестарт мог прийти из фида
	s.game.game.Drain(s.game.opts.Commands)
	if s.game.game.Running() {
		s.sm.SetState(s.game)
		return
	}

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.modal.Button.Contains(x, y)
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.game.game.Restart()
		s.sm.SetState(s.game)
	}
}

func (s *EndState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	x, y := ebiten.CursorPosition()
	s.modal.Draw(screen, x, y)
}

func (s *EndState) Exit() {}
