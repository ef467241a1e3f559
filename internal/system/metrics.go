package system

import (
	"github.com/Pipe0105/TD-Modelamiento/internal/entity"
	"github.com/Pipe0105/TD-Modelamiento/internal/utils"
)

// QueueMetrics - показатели системы массового обслуживания: враги - заявки,
// башни - каналы обслуживания.
type QueueMetrics struct {
	Lambda      float64 `json:"lambda"`      // интенсивность прибытия
	Mu          float64 `json:"mu"`          // средняя скорострельность башни
	Servers     int     `json:"servers"`     // число башен
	Utilization float64 `json:"utilization"` // ρ = λ / (c·μ)
	InSystem    int     `json:"in_system"`   // L, враги на карте
}

// ComputeMetrics считает показатели по текущему состоянию ECS.
func ComputeMetrics(ecs *entity.ECS) QueueMetrics {
	m := QueueMetrics{InSystem: len(ecs.EnemyOrder)}
	if ecs.Wave != nil {
		m.Lambda = utils.Round(ecs.Wave.Lambda, 2)
	}

	total := 0.0
	for _, id := range ecs.TowerOrder {
		if c := ecs.Combats[id]; c != nil {
			total += c.FireRate
			m.Servers++
		}
	}
	if m.Servers > 0 {
		m.Mu = utils.Round(total/float64(m.Servers), 2)
		// c·μ равно сумме скорострельностей
		if total > 0 && ecs.Wave != nil {
			m.Utilization = utils.Round(ecs.Wave.Lambda/total, 3)
		}
	}
	return m
}
