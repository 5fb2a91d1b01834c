// internal/system/economy.go
package system

import (
	"math"

	"go-orc-defense/internal/component"
	"go-orc-defense/internal/config"
	"go-orc-defense/internal/entity"
	"go-orc-defense/internal/event"
	"go-orc-defense/internal/logging"
)

var economyLog = logging.New("economy")

// EconomySystem ведёт монеты и жизни. Слушает события убийств и побегов.
type EconomySystem struct {
	ecs *entity.ECS
	cfg config.EconomyConfig
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, cfg config.EconomyConfig) *EconomySystem {
	s := &EconomySystem{ecs: ecs, cfg: cfg}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.EnemyEscaped, s)
	s.Reset()
	return s
}

// Reset выставляет стартовые монеты и жизни, обнуляет счётчики.
func (s *EconomySystem) Reset() {
	s.ecs.Economy = &component.Economy{
		Coins: s.cfg.InitialCoins,
		Lives: s.cfg.Lives,
	}
}

func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			s.OnKill(data.Reward)
		}
	case event.EnemyEscaped:
		s.OnEscape()
	}
}

// OnKill начисляет награду, округлённую до целого.
func (s *EconomySystem) OnKill(reward float64) {
	s.ecs.Economy.Coins += int(math.Round(reward))
	s.ecs.Economy.Kills++
	economyLog.Debug("kill", "coins", s.ecs.Economy.Coins)
}

// OnEscape снимает одну жизнь.
func (s *EconomySystem) OnEscape() {
	s.ecs.Economy.Lives--
	s.ecs.Economy.Escapes++
	economyLog.Debug("escape", "lives", s.ecs.Economy.Lives)
}

// OnPurchase списывает стоимость без проверки. Проверку делает вызывающий.
func (s *EconomySystem) OnPurchase(cost int) {
	s.ecs.Economy.Coins -= cost
}

// CanAfford проверяет, хватает ли монет на покупку.
func (s *EconomySystem) CanAfford(cost int) bool {
	return s.ecs.Economy.Coins >= cost
}

// GameOver сообщает, что жизни закончились.
func (s *EconomySystem) GameOver() bool {
	return s.ecs.Economy.Lives <= 0
}
