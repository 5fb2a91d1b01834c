package component

import "go-orc-defense/pkg/geom"

// GameState: макро-состояние симуляции
type GameState int

const (
	Running GameState = iota
	Ended
)

func (s GameState) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// Wave: текущая волна
type Wave struct {
	Number    int
	BatchSize int
	Path      []geom.Point // Общий путь для всех врагов
}

// Economy: монеты, жизни и счётчики
type Economy struct {
	Coins   int
	Lives   int
	Kills   int
	Escapes int
}
