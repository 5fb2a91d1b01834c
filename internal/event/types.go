// internal/event/types.go
package event

import "go-orc-defense/internal/types"

const (
	EnemyKilled      EventType = "EnemyKilled"      // Враг убит, снят с карты
	EnemyEscaped     EventType = "EnemyEscaped"     // Враг ушёл за правый край
	EnemyDamaged     EventType = "EnemyDamaged"     // Попадание, новое соотношение здоровья
	BuildingPlaced   EventType = "BuildingPlaced"   // Башня построена
	ProjectileFired  EventType = "ProjectileFired"  // Выстрел
	ExplosionSpawned EventType = "ExplosionSpawned" // Взрыв от камня
	WaveStarted      EventType = "WaveStarted"      // Новая волна
	GameOver         EventType = "GameOver"         // Жизни закончились
	GameRestarted    EventType = "GameRestarted"
)

type EnemyKilledData struct {
	ID     types.EntityID
	Reward float64
}

type EnemyEscapedData struct {
	ID types.EntityID
}

type EnemyDamagedData struct {
	ID    types.EntityID
	Ratio float64 // 0..1
}

type BuildingPlacedData struct {
	TileID types.EntityID
	Cost   int
}

type ProjectileFiredData struct {
	TileID       types.EntityID
	ProjectileID types.EntityID
	Kind         string
}

type ExplosionSpawnedData struct {
	X, Y float64
}

type WaveStartedData struct {
	Number int
	Size   int
}
