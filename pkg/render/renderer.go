// pkg/render/renderer.go
package render

import (
	"math"

	"go-orc-defense/internal/camera"
	"go-orc-defense/internal/component"
	"go-orc-defense/internal/config"
	"go-orc-defense/internal/entity"
	"go-orc-defense/internal/level"
	"go-orc-defense/internal/types"
	"go-orc-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует карту и сущности
type WorldRenderer struct {
	ecs      *entity.ECS
	lvl      *level.Level
	tower    config.TowerConfig
	colors   *MapColors
	mapImage *ebiten.Image // Предрендеренная карта: фон и путь
}

func NewWorldRenderer(ecs *entity.ECS, lvl *level.Level, tower config.TowerConfig, colors *MapColors) *WorldRenderer {
	r := &WorldRenderer{ecs: ecs, lvl: lvl, tower: tower, colors: colors}
	r.RenderMapImage()
	return r
}

// RenderMapImage рисует статичную часть карты один раз.
func (s *WorldRenderer) RenderMapImage() {
	w, h := int(s.lvl.Width), int(s.lvl.Height)
	if w <= 0 || h <= 0 {
		return
	}
	s.mapImage = ebiten.NewImage(w, h)
	s.mapImage.Fill(s.colors.BackgroundColor)

	wp := s.lvl.Waypoints
	for i := 1; i < len(wp); i++ {
		vector.StrokeLine(s.mapImage, float32(wp[i-1].X), float32(wp[i-1].Y), float32(wp[i].X), float32(wp[i].Y), s.colors.PathWidth, s.colors.PathColor, true)
	}
}

// Draw рисует мир со сдвигом камеры. affordable подсвечивает свободные тайлы.
func (s *WorldRenderer) Draw(screen *ebiten.Image, cam *camera.Camera, affordable bool) {
	screen.Fill(s.colors.BackgroundColor)
	if s.mapImage != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-cam.X, -cam.Y)
		screen.DrawImage(s.mapImage, op)
	}
	s.drawTiles(screen, cam, affordable)
	s.drawEnemies(screen, cam)
	s.drawProjectiles(screen, cam)
	s.drawExplosions(screen, cam)
}

func (s *WorldRenderer) drawTiles(screen *ebiten.Image, cam *camera.Camera, affordable bool) {
	cell := float32(s.lvl.Cell)
	for _, id := range s.ecs.TileOrder {
		tile := s.ecs.Tiles[id]
		pos := s.ecs.Positions[id]
		sx, sy := cam.ToScreen(pos.X, pos.Y)
		x, y := float32(sx), float32(sy)

		b, built := s.ecs.Buildings[id]
		if !built {
			fill := s.colors.TileFillColor
			if affordable && !tile.Occupied {
				fill = s.colors.TileAffordColor
			}
			vector.DrawFilledRect(screen, x, y, 2*cell, cell, fill, true)
			vector.StrokeRect(screen, x, y, 2*cell, cell, s.colors.StrokeWidth, s.colors.TileStrokeColor, true)
			continue
		}

		// Круг дальности рисуется только при наличии цели
		cx, cy := x+cell, y+cell/2
		if b.TargetID != types.NoEntity {
			vector.StrokeCircle(screen, cx, cy, float32(s.tower.AttackRadius), 1, config.RangeColor, true)
		}
		base := config.BuildingColor
		if b.TargetID == types.NoEntity {
			base = DarkenColor(base)
		}
		vector.DrawFilledRect(screen, x+cell/2, y-cell/2, cell, cell*1.5, base, true)

		angle := 2 * math.Pi * float64(b.CurrentFrame) / float64(s.tower.TotalFrames)
		px := cx + float32(math.Cos(angle-math.Pi/2))*cell/3
		py := y + float32(math.Sin(angle-math.Pi/2))*cell/3
		vector.DrawFilledCircle(screen, px, py, 6, config.BuildingPoseColor, true)
	}
}

func (s *WorldRenderer) drawEnemies(screen *ebiten.Image, cam *camera.Camera) {
	for _, id := range s.ecs.EnemyOrder {
		pos, enemy, alive := s.ecs.LiveEnemy(id)
		if !alive {
			continue
		}
		sx, sy := cam.ToScreen(pos.X, pos.Y)
		r := float32(enemy.Radius)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, config.EnemyColor, true)
		vector.StrokeCircle(screen, float32(sx), float32(sy), r, 2, config.EnemyStrokeColor, true)
	}
}

func (s *WorldRenderer) drawProjectiles(screen *ebiten.Image, cam *camera.Camera) {
	for _, tileID := range s.ecs.TileOrder {
		b, ok := s.ecs.Buildings[tileID]
		if !ok {
			continue
		}
		for _, id := range b.Projectiles {
			proj := s.ecs.Projectiles[id]
			pos := s.ecs.Positions[id]
			if proj == nil || pos == nil || proj.Alpha <= 0 {
				continue
			}
			sx, sy := cam.ToScreen(pos.X, pos.Y)
			x, y := float32(sx), float32(sy)
			r := float32(proj.Radius)

			if proj.Kind == component.ProjectileFireball {
				// Хвост против курса
				tx := x - float32(math.Cos(proj.Heading))*config.ProjectileTrail*2
				ty := y - float32(math.Sin(proj.Heading))*config.ProjectileTrail*2
				vector.StrokeLine(screen, x, y, tx, ty, r, Fade(config.FireballColor, proj.Alpha*0.5), true)
				vector.DrawFilledCircle(screen, x, y, r, Fade(config.FireballColor, proj.Alpha), true)
				continue
			}
			vector.DrawFilledCircle(screen, x, y, r, Fade(config.StoneColor, proj.Alpha), true)
		}
	}
}

func (s *WorldRenderer) drawExplosions(screen *ebiten.Image, cam *camera.Camera) {
	for _, id := range s.ecs.ExplosionOrder {
		explosion, ok := s.ecs.Explosions[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		sx, sy := cam.ToScreen(pos.X, pos.Y)
		p := explosion.Progress()
		r := float32(utils.Lerp(8, 8*config.ExplosionMaxScale*2, p))
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, Fade(config.ExplosionColor, 1-p), true)
	}
}
