// internal/mapview/scene.go
package mapview

import (
	"fmt"
	"image/color"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/pkg/tilemap"
)

// PathColors - цвета путей по порядку извлечения.
var PathColors = []color.RGBA{
	{255, 203, 0, 255},
	{102, 191, 255, 255},
	{200, 122, 255, 255},
	{255, 109, 194, 255},
}

type Point struct {
	X, Y float32
}

type Cell struct {
	X, Y  float32
	Color color.RGBA
}

// Scene - готовая к отрисовке раскладка уровня в пикселях карты.
type Scene struct {
	Name          string
	TileSize      float32
	Width, Height float32
	Cells         []Cell
	Paths         [][]Point
	Spots         []Point
	Starts        []Point
	Ends          []Point
}

// Build извлекает пути и места постройки так же, как при загрузке уровня в игре.
func Build(level *defs.Level, tileSize float64) (*Scene, error) {
	m, err := tilemap.NewLevelMap(level.Map, tileSize, level.PathTypes...)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}
	w, h := m.Grid.PixelSize()
	s := &Scene{
		Name:     level.Name,
		TileSize: float32(tileSize),
		Width:    float32(w),
		Height:   float32(h),
	}

	for row := 0; row < m.Grid.Height(); row++ {
		for col := 0; col < m.Grid.Width(); col++ {
			s.Cells = append(s.Cells, Cell{
				X:     float32(col) * s.TileSize,
				Y:     float32(row) * s.TileSize,
				Color: TileColor(m.Grid.At(tilemap.Point{X: col, Y: row})),
			})
		}
	}
	for _, path := range m.PixelPaths() {
		s.Paths = append(s.Paths, toPoints(path))
	}
	s.Spots = toPoints(m.BuildSpotCenters())
	s.Starts = centers(m.Grid, tilemap.Start)
	s.Ends = centers(m.Grid, tilemap.End)
	return s, nil
}

// Fit возвращает масштаб и отступ, при которых карта целиком входит в окно.
func (s *Scene) Fit(width, height, margin float32) (scale, offsetX, offsetY float32) {
	if s.Width <= 0 || s.Height <= 0 {
		return 1, margin, margin
	}
	availW, availH := width-2*margin, height-2*margin
	scale = min(availW/s.Width, availH/s.Height)
	if scale <= 0 {
		scale = 1
	}
	offsetX = (width - s.Width*scale) / 2
	offsetY = (height - s.Height*scale) / 2
	return scale, offsetX, offsetY
}

// PathColor cycles through PathColors.
func PathColor(i int) color.RGBA {
	return PathColors[i%len(PathColors)]
}

// TileColor maps a tile code to the game palette.
func TileColor(t tilemap.Tile) color.RGBA {
	switch t {
	case tilemap.PathTile, tilemap.AltPath:
		return config.PathColor
	case tilemap.BuildSpot:
		return config.BuildSpotColor
	case tilemap.Start:
		return config.StartColor
	case tilemap.End:
		return config.EndColor
	}
	return config.GroundColor
}

func toPoints(px [][2]float64) []Point {
	out := make([]Point, len(px))
	for i, p := range px {
		out[i] = Point{X: float32(p[0]), Y: float32(p[1])}
	}
	return out
}

func centers(g *tilemap.Grid, t tilemap.Tile) []Point {
	var out []Point
	for _, c := range g.CellsOfType(t) {
		x, y := g.CellCenter(c)
		out = append(out, Point{X: float32(x), Y: float32(y)})
	}
	return out
}
