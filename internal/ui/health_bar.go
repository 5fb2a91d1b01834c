// internal/ui/health_bar.go
package ui

import (
	"go-orc-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HealthBar рисует полоску здоровья над врагом.
type HealthBar struct {
	Width, Height float32
	Border        float32
	OffsetY       float32
}

// NewHealthBar создает полоску с размерами из конфига.
func NewHealthBar() *HealthBar {
	return &HealthBar{
		Width:   config.HealthBarWidth,
		Height:  config.HealthBarHeight,
		Border:  config.HealthBarBorderThick,
		OffsetY: config.HealthBarOffsetY,
	}
}

// Draw рисует полоску с центром над (cx, cy). ratio: доля здоровья 0..1.
func (h *HealthBar) Draw(screen *ebiten.Image, cx, cy float32, ratio float64) {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	x := cx - h.Width/2
	y := cy - h.OffsetY

	vector.DrawFilledRect(screen, x-h.Border, y-h.Border, h.Width+2*h.Border, h.Height+2*h.Border, config.HealthBorderColor, false)
	vector.DrawFilledRect(screen, x, y, h.Width, h.Height, config.HealthEmptyColor, false)
	vector.DrawFilledRect(screen, x, y, h.Width*float32(ratio), h.Height, config.HealthFillColor, false)
}
