// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService - это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей симуляции.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform возвращает число в диапазоне [min, max).
func (s *PRNGService) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// IntRange возвращает целое в диапазоне [min, max] включительно.
func (s *PRNGService) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// ExpFloat64 - интервал между прибытиями пуассоновского потока с интенсивностью rate.
// При rate <= 0 прибытий нет, возвращается +Inf.
func (s *PRNGService) ExpFloat64(rate float64) float64 {
	if rate <= 0 {
		return math.Inf(1)
	}
	return s.rng.ExpFloat64() / rate
}

// ChooseWeighted выполняет взвешенный случайный выбор и возвращает индекс.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
// Возвращает -1, если таблица пуста или все веса нулевые.
func (s *PRNGService) ChooseWeighted(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	r := s.Intn(total)
	upto := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
	}
	return len(weights) - 1
}
