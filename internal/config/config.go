// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 768

	StatusBarPadding       = 20
	StatusBarInlinePadding = 10
	StatusBarIconRadius    = 9.0

	HealthBarWidth       = 60
	HealthBarHeight      = 10
	HealthBarBorderThick = 1
	HealthBarOffsetY     = 45

	ModalWidth  = 360
	ModalHeight = 180

	PathStrokeWidth   = 6.0
	TileStrokeWidth   = 2.0
	ProjectileTrail   = 10.0
	ExplosionMaxScale = 1.6

	ClickCooldown    = 150 // мс между кликами по плитке
	SnapshotInterval = 10  // кадров между снимками для внешнего фида
)

var (
	BackgroundColor   = color.RGBA{34, 58, 34, 255}
	PathColor         = color.RGBA{160, 130, 90, 255}
	TileFillColor     = color.NRGBA{0xa3, 0xe6, 0x35, 50}
	TileAffordColor   = color.NRGBA{0xa3, 0xe6, 0x35, 130}
	TileStrokeColor   = color.NRGBA{240, 240, 240, 90}
	BuildingColor     = color.RGBA{120, 110, 100, 255}
	BuildingPoseColor = color.RGBA{200, 60, 40, 255}
	RangeColor        = color.NRGBA{255, 255, 255, 24}
	EnemyColor        = color.RGBA{60, 120, 50, 255}
	EnemyStrokeColor  = color.RGBA{20, 20, 20, 255}
	StoneColor        = color.RGBA{150, 150, 150, 255}
	FireballColor     = color.RGBA{255, 120, 20, 255}
	ExplosionColor    = color.NRGBA{255, 200, 60, 200}
	HealthFillColor   = color.RGBA{0x15, 0x80, 0x3d, 255}
	HealthEmptyColor  = color.RGBA{255, 0, 0, 255}
	HealthBorderColor = color.RGBA{255, 255, 255, 255}
	StatusBarColor    = color.NRGBA{0, 0, 0, 128}
	CoinColor         = color.RGBA{255, 215, 0, 255}
	HeartColor        = color.RGBA{220, 40, 60, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	ModalColor        = color.NRGBA{20, 20, 30, 230}
	ModalStrokeColor  = color.RGBA{240, 240, 240, 255}
	ButtonColor       = color.NRGBA{70, 130, 180, 220}
	ButtonHoverColor  = color.NRGBA{100, 160, 210, 240}
)
