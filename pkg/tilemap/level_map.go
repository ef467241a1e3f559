// pkg/tilemap/level_map.go
package tilemap

// LevelMap кэширует пути и места постройки, извлечённые один раз при загрузке уровня.
type LevelMap struct {
	Grid       *Grid
	CellPaths  [][]Point
	SpotCells  []Point
	pixelPaths [][][2]float64
}

// NewLevelMap builds the grid and extracts paths over the given walkable codes.
func NewLevelMap(codes [][]int, tileSize float64, pathTypes ...int) (*LevelMap, error) {
	grid, err := NewGrid(codes, tileSize)
	if err != nil {
		return nil, err
	}
	types := make([]Tile, len(pathTypes))
	for i, t := range pathTypes {
		types[i] = Tile(t)
	}
	if len(types) == 0 {
		types = []Tile{PathTile, AltPath}
	}

	m := &LevelMap{
		Grid:      grid,
		CellPaths: grid.ExtractPaths(types...),
		SpotCells: grid.CellsOfType(BuildSpot),
	}
	for _, path := range m.CellPaths {
		px := make([][2]float64, len(path))
		for i, p := range path {
			x, y := grid.CellCenter(p)
			px[i] = [2]float64{x, y}
		}
		m.pixelPaths = append(m.pixelPaths, px)
	}
	return m, nil
}

// PixelPaths returns every path as pixel-center waypoints.
func (m *LevelMap) PixelPaths() [][][2]float64 {
	return m.pixelPaths
}

// BuildSpotCenters returns the pixel centers of build spots in row-major order.
func (m *LevelMap) BuildSpotCenters() [][2]float64 {
	out := make([][2]float64, len(m.SpotCells))
	for i, p := range m.SpotCells {
		x, y := m.Grid.CellCenter(p)
		out[i] = [2]float64{x, y}
	}
	return out
}
