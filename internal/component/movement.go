// component/movement.go
package component

import "go-orc-defense/pkg/geom"

// Position: компонент позиции
type Position struct {
	X, Y float64
}

// Point возвращает позицию как точку геометрии.
func (p *Position) Point() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// Velocity: компонент скорости.
// Speed задаётся при создании, DX/DY пересчитываются каждый тик.
type Velocity struct {
	Speed  float64
	DX, DY float64
}

// Path: компонент пути. Waypoints общий для всей волны, только чтение.
type Path struct {
	Waypoints    []geom.Point
	CurrentIndex int
}

// Exhausted сообщает, что путь пройден и двигаться некуда.
func (p *Path) Exhausted() bool {
	return p.CurrentIndex >= len(p.Waypoints)
}
