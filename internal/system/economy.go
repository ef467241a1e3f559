package system

import (
	"log"

	"github.com/Pipe0105/TD-Modelamiento/internal/entity"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
)

// EconomySystem начисляет награды за убийства и списывает жизни за прорывы.
type EconomySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	depleted        bool
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *EconomySystem {
	es := &EconomySystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(es, event.EnemyKilled, event.EnemyEscaped)
	return es
}

func (s *EconomySystem) OnEvent(e event.Event) {
	eco := s.ecs.Economy
	switch e.Type {
	case event.EnemyKilled:
		data, _ := e.Data.(event.EnemyData)
		eco.Money += data.Reward
		eco.Earned += data.Reward
		eco.Kills++
	case event.EnemyEscaped:
		eco.Escapes++
		if eco.Lives > 0 {
			eco.Lives--
		}
		if eco.Lives == 0 && !s.depleted {
			s.depleted = true
			log.Printf("lives depleted after %d escapes", eco.Escapes)
			s.eventDispatcher.Dispatch(event.Event{Type: event.LivesDepleted})
		}
	}
}

// CanAfford reports whether the player has at least cost money.
func (s *EconomySystem) CanAfford(cost int) bool {
	return cost >= 0 && s.ecs.Economy.Money >= cost
}

// Spend списывает cost, если денег хватает. Иначе ничего не меняет.
func (s *EconomySystem) Spend(cost int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.ecs.Economy.Money -= cost
	s.ecs.Economy.Spent += cost
	return true
}

// Depleted reports whether lives have reached zero.
func (s *EconomySystem) Depleted() bool {
	return s.ecs.Economy.Lives <= 0
}
