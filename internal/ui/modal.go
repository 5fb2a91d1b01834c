// internal/ui/modal.go
package ui

import (
	"image"

	"go-orc-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Modal: окно по центру экрана с заголовком, строкой счёта и кнопкой.
type Modal struct {
	Rect     image.Rectangle
	Title    string
	Score    string
	Button   *Button
	fontFace font.Face
}

// NewModal создает окно конца игры.
func NewModal(face font.Face) *Modal {
	x := (config.ScreenWidth - config.ModalWidth) / 2
	y := (config.ScreenHeight - config.ModalHeight) / 2
	rect := image.Rect(x, y, x+config.ModalWidth, y+config.ModalHeight)

	const btnW, btnH = 160, 40
	bx := rect.Min.X + (config.ModalWidth-btnW)/2
	by := rect.Max.Y - btnH - 20
	return &Modal{
		Rect:     rect,
		Title:    "Game over",
		Button:   NewButton(image.Rect(bx, by, bx+btnW, by+btnH), "Restart", face),
		fontFace: face,
	}
}

// Draw отрисовывает окно поверх сцены.
func (m *Modal) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	x, y := float32(m.Rect.Min.X), float32(m.Rect.Min.Y)
	w, h := float32(m.Rect.Dx()), float32(m.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.ModalColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.ModalStrokeColor, true)

	m.drawCentered(screen, m.Title, m.Rect.Min.Y+40)
	m.drawCentered(screen, m.Score, m.Rect.Min.Y+70)
	m.Button.Draw(screen, cursorX, cursorY)
}

func (m *Modal) drawCentered(screen *ebiten.Image, s string, baseline int) {
	if s == "" {
		return
	}
	bounds := text.BoundString(m.fontFace, s)
	text.Draw(screen, s, m.fontFace, m.Rect.Min.X+(m.Rect.Dx()-bounds.Dx())/2, baseline, config.TextLightColor)
}
