// internal/state/game_state.go
package state

import (
	"errors"
	"time"

	"go-orc-defense/internal/app"
	"go-orc-defense/internal/camera"
	"go-orc-defense/internal/config"
	"go-orc-defense/internal/logging"
	"go-orc-defense/internal/ui"
	"go-orc-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostLog = logging.New("host")

// SnapshotSink получает периодические снимки состояния (внешний фид).
type SnapshotSink interface {
	Publish(s app.Snapshot)
}

// Options: внешние источники команд и приёмники снимков. Оба могут быть nil.
type Options struct {
	Commands  <-chan app.Command
	Snapshots SnapshotSink
}

// GameState: состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	opts          Options
	renderer      *render.WorldRenderer
	camera        *camera.Camera
	statusBar     *ui.StatusBar
	healthBar     *ui.HealthBar
	lastClickTime time.Time
	frames        int
}

func NewGameState(sm *StateMachine, game *app.Game, opts Options) *GameState {
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		TileFillColor:   config.TileFillColor,
		TileAffordColor: config.TileAffordColor,
		TileStrokeColor: config.TileStrokeColor,
		PathWidth:       config.PathStrokeWidth,
		StrokeWidth:     config.TileStrokeWidth,
	}
	face := ui.DefaultFace()
	return &GameState{
		sm:        sm,
		game:      game,
		opts:      opts,
		renderer:  render.NewWorldRenderer(game.ECS, game.Level, game.Config.Tower, mapColors),
		camera:    camera.New(config.ScreenWidth, config.ScreenHeight, game.Level.Width, game.Level.Height, game.Config.Camera.KeyStep),
		statusBar: ui.NewStatusBar(face),
		healthBar: ui.NewHealthBar(),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update() {
	g.game.Drain(g.opts.Commands)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	g.handlePointer()

	g.game.Update()
	g.frames++

	if g.opts.Snapshots != nil && g.frames%config.SnapshotInterval == 0 {
		g.opts.Snapshots.Publish(g.game.Snapshot())
	}

	// Хост сам решает, когда игра окончена
	if g.game.EconomySystem.GameOver() {
		g.game.Stop()
		if g.opts.Snapshots != nil {
			g.opts.Snapshots.Publish(g.game.Snapshot())
		}
		g.sm.SetState(NewEndState(g.sm, g))
	}
}

func (g *GameState) handleKeys() {
	steps := []struct {
		keys []ebiten.Key
		dir  camera.Direction
	}{
		{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, camera.Up},
		{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, camera.Down},
		{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, camera.Left},
		{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, camera.Right},
	}
	for _, s := range steps {
		for _, k := range s.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.camera.Step(s.dir)
				break
			}
		}
	}
}

// handlePointer строит башню по клику на тайл, а нажатие на пустом месте тянет карту.
func (g *GameState) handlePointer() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		wx, wy := g.camera.ToWorld(fx, fy)
		if tileID, ok := g.game.TileAt(wx, wy); ok {
			if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
				return
			}
			g.lastClickTime = time.Now()
			if err := g.game.PlaceBuilding(tileID); err != nil && !errors.Is(err, app.ErrInsufficientCoins) {
				hostLog.Debug("build rejected", "tile", tileID, "err", err)
			}
			return
		}
		pressed := true
		g.camera.HandlePointer(&pressed, fx, fy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		released := false
		g.camera.HandlePointer(&released, fx, fy)
	default:
		g.camera.HandlePointer(nil, fx, fy)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	eco := g.game.ECS.Economy
	affordable := g.game.EconomySystem.CanAfford(g.game.Config.Economy.TileCost)
	g.renderer.Draw(screen, g.camera, affordable)

	for _, id := range g.game.ECS.EnemyOrder {
		pos, _, alive := g.game.ECS.LiveEnemy(id)
		if !alive {
			continue
		}
		sx, sy := g.camera.ToScreen(pos.X, pos.Y)
		g.healthBar.Draw(screen, float32(sx), float32(sy), g.game.ECS.Healths[id].Ratio())
	}

	g.statusBar.Draw(screen, g.game.ECS.Wave.Number, eco.Coins, eco.Lives)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
