// pkg/tilemap/tile.go
package tilemap

import "errors"

// Tile - код клетки карты уровня.
type Tile int

const (
	Ground    Tile = 0
	PathTile  Tile = 1
	BuildSpot Tile = 2
	Start     Tile = 3
	End       Tile = 4
	AltPath   Tile = 5
)

var ErrEmptyGrid = errors.New("tilemap: empty grid")

// Point - клетка сетки (столбец, строка).
type Point struct {
	X, Y int
}

// Grid - прямоугольная матрица кодов клеток, строки сверху вниз.
type Grid struct {
	cells         [][]Tile
	width, height int
	tileSize      float64
}

// NewGrid копирует матрицу кодов. Все строки должны быть одной длины.
func NewGrid(codes [][]int, tileSize float64) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		cells:    make([][]Tile, len(codes)),
		width:    len(codes[0]),
		height:   len(codes),
		tileSize: tileSize,
	}
	for y, row := range codes {
		if len(row) != g.width {
			return nil, errors.New("tilemap: ragged grid")
		}
		g.cells[y] = make([]Tile, g.width)
		for x, c := range row {
			g.cells[y][x] = Tile(c)
		}
	}
	return g, nil
}

func (g *Grid) Width() int        { return g.width }
func (g *Grid) Height() int       { return g.height }
func (g *Grid) TileSize() float64 { return g.tileSize }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the tile at p, or Ground outside the grid.
func (g *Grid) At(p Point) Tile {
	if !g.InBounds(p) {
		return Ground
	}
	return g.cells[p.Y][p.X]
}

// CellsOfType lists cells with the given code in row-major order.
func (g *Grid) CellsOfType(t Tile) []Point {
	var out []Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == t {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// CellCenter возвращает центр клетки в пикселях.
func (g *Grid) CellCenter(p Point) (float64, float64) {
	half := g.tileSize / 2
	return float64(p.X)*g.tileSize + half, float64(p.Y)*g.tileSize + half
}

// CellAt converts a pixel position into a cell.
func (g *Grid) CellAt(px, py float64) (Point, bool) {
	if px < 0 || py < 0 {
		return Point{}, false
	}
	p := Point{X: int(px / g.tileSize), Y: int(py / g.tileSize)}
	return p, g.InBounds(p)
}

// PixelSize returns the map size in pixels.
func (g *Grid) PixelSize() (float64, float64) {
	return float64(g.width) * g.tileSize, float64(g.height) * g.tileSize
}
