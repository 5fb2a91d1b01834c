// internal/ui/status_bar.go
package ui

import (
	"fmt"

	"go-orc-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StatusBar рисует верхнюю панель с волной, монетами и жизнями.
type StatusBar struct {
	X, Y     float32
	fontFace font.Face
}

// NewStatusBar создает панель в правом верхнем углу.
func NewStatusBar(face font.Face) *StatusBar {
	return &StatusBar{
		X:        config.ScreenWidth - 260,
		Y:        config.StatusBarPadding,
		fontFace: face,
	}
}

// Draw рисует панель.
func (s *StatusBar) Draw(screen *ebiten.Image, wave, coins, lives int) {
	const width, height = 240, 32
	vector.DrawFilledRect(screen, s.X, s.Y, width, height, config.StatusBarColor, true)

	x := s.X + config.StatusBarInlinePadding
	midY := s.Y + height/2
	textY := int(midY) + 5

	waveLabel := fmt.Sprintf("W%d", wave)
	text.Draw(screen, waveLabel, s.fontFace, int(x), textY, config.TextLightColor)
	x += float32(text.BoundString(s.fontFace, waveLabel).Dx()) + 2*config.StatusBarInlinePadding

	vector.DrawFilledCircle(screen, x+config.StatusBarIconRadius, midY, config.StatusBarIconRadius, config.CoinColor, true)
	x += 2*config.StatusBarIconRadius + config.StatusBarInlinePadding
	coinsLabel := fmt.Sprintf("%d", coins)
	text.Draw(screen, coinsLabel, s.fontFace, int(x), textY, config.TextLightColor)
	x += float32(text.BoundString(s.fontFace, coinsLabel).Dx()) + 2*config.StatusBarInlinePadding

	vector.DrawFilledCircle(screen, x+config.StatusBarIconRadius, midY, config.StatusBarIconRadius, config.HeartColor, true)
	x += 2*config.StatusBarIconRadius + config.StatusBarInlinePadding
	text.Draw(screen, fmt.Sprintf("%d", lives), s.fontFace, int(x), textY, config.TextLightColor)
}
