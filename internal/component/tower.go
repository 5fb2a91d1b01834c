// component/tower.go
package component

import "go-orc-defense/internal/types"

// Tile: место под башню. Создаётся из слоя карты, сбрасывается только при рестарте.
type Tile struct {
	Index    int  // Порядковый номер в слое карты
	Occupied bool // Занято ли место башней
}

// Building: башня на тайле. Хранится по ID тайла.
type Building struct {
	TargetID      types.EntityID   // Слабая ссылка, может указывать на удалённого врага
	ElapsedFrames int              // Счётчик кадров
	CurrentFrame  int              // Текущий кадр позы
	ElapsedShots  int              // Выстрелов с последнего огненного шара
	Projectiles   []types.EntityID // Живые снаряды башни в порядке выстрела
}
