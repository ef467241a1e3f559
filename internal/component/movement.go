// component/movement.go
package component

// Position - компонент позиции (пиксели карты)
type Position struct {
	X, Y float64
}

// Velocity - компонент скорости, пикселей в секунду
type Velocity struct {
	Speed float64
}

// Path - компонент пути. Points общий для всех врагов, идущих по этому маршруту,
// и не изменяется после назначения. CurrentIndex - последняя достигнутая точка,
// следующая цель Points[CurrentIndex+1].
type Path struct {
	Points       []Position
	CurrentIndex int
}

// Finished reports whether the final waypoint has been reached.
func (p *Path) Finished() bool {
	return p.CurrentIndex >= len(p.Points)-1
}
