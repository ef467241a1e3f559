// internal/utils/math.go
package utils

import (
	"math"

	"github.com/Pipe0105/TD-Modelamiento/internal/component"
)

// Distance - евклидово расстояние между точками
func Distance(a, b component.Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// MoveTowards сдвигает from к to не более чем на step.
// Возвращает новую позицию и true, если цель достигнута.
func MoveTowards(from, to component.Position, step float64) (component.Position, bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Hypot(dx, dy)
	if step > 0 && dist <= step {
		return to, true
	}
	if dist == 0 {
		return from, true
	}
	return component.Position{
		X: from.X + dx/dist*step,
		Y: from.Y + dy/dist*step,
	}, false
}

// Round округляет v до decimals знаков после запятой.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
