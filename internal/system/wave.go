// internal/system/wave.go
package system

import (
	"go-orc-defense/internal/component"
	"go-orc-defense/internal/config"
	"go-orc-defense/internal/entity"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/logging"
	"go-orc-defense/internal/utils"
	"go-orc-defense/pkg/geom"
)

var waveLog = logging.New("wave")

// WaveSystem создаёт волны врагов. Пауз между волнами нет:
// следующая появляется сразу, как только враги закончились.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	wave            config.WaveConfig
	enemy           config.EnemyConfig
	reward          float64
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, cfg config.GameConfig) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		wave:            cfg.Wave,
		enemy:           cfg.Enemy,
		reward:          cfg.Economy.KillReward,
	}
}

// Reset возвращает волну к первой с начальным размером.
func (s *WaveSystem) Reset(path []geom.Point) {
	s.ecs.Wave = &component.Wave{
		Number:    1,
		BatchSize: s.wave.InitialSize,
		Path:      path,
	}
}

// SpawnWave создаёт BatchSize врагов цепочкой слева от стартовой точки пути.
func (s *WaveSystem) SpawnWave() {
	wave := s.ecs.Wave
	if wave == nil || len(wave.Path) == 0 || wave.BatchSize <= 0 {
		return
	}

	start := s.wave.StartWaypoint
	if start > len(wave.Path)-1 {
		start = len(wave.Path) - 1
	}
	origin := wave.Path[start]
	spacing := s.Spacing(wave.BatchSize)

	for i := 0; i < wave.BatchSize; i++ {
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{
			X: origin.X - spacing*float64(i+1),
			Y: origin.Y,
		}
		s.ecs.Velocities[id] = &component.Velocity{Speed: s.rng.Pick(s.enemy.Speeds)}
		s.ecs.Paths[id] = &component.Path{Waypoints: wave.Path, CurrentIndex: start}
		s.ecs.Healths[id] = &component.Health{Value: s.enemy.Health, Max: s.enemy.Health}
		s.ecs.Enemies[id] = &component.Enemy{Radius: s.enemy.Radius, Reward: s.reward}
		s.ecs.EnemyOrder = append(s.ecs.EnemyOrder, id)
	}

	waveLog.Info("wave started", "number", wave.Number, "size", wave.BatchSize, "spacing", spacing)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveStartedData{Number: wave.Number, Size: wave.BatchSize},
	})
}

// NextWave увеличивает размер волны и сразу её запускает.
func (s *WaveSystem) NextWave() {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	wave.Number++
	wave.BatchSize += s.wave.Increment
	s.SpawnWave()
}

// Spacing возвращает расстояние между соседними врагами в волне.
func (s *WaveSystem) Spacing(batchSize int) float64 {
	if s.wave.FixedSpacing > 0 {
		return s.wave.FixedSpacing
	}
	if batchSize <= 0 {
		return 0
	}
	return s.wave.Spread / float64(batchSize)
}
