// internal/component/projectile.go
package component

import "go-orc-defense/internal/types"

// ProjectileKind: вид снаряда
type ProjectileKind int

const (
	ProjectileStone    ProjectileKind = iota // Камень: летит по упреждению, при попадании взрыв
	ProjectileFireball                       // Огненный шар: самонаводится каждый тик
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileStone:
		return "stone"
	case ProjectileFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	Kind           ProjectileKind
	OwnerID        types.EntityID // Тайл башни-владельца
	TargetID       types.EntityID
	Speed          float64
	Radius         float64
	Damage         int
	MaxFramesAlive int
	ElapsedFrames  int
	Alpha          float64 // Прозрачность для отрисовки, 1 = непрозрачный
	Heading        float64 // Угол полёта в радианах
}

// Expired сообщает, что снаряд прожил дольше MaxFramesAlive.
func (p *Projectile) Expired() bool {
	return p.ElapsedFrames > p.MaxFramesAlive
}
