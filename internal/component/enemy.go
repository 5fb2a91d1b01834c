package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Radius float64 // Радиус для попаданий и выбора цели
	Reward float64 // Монеты за убийство
}
