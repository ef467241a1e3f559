// internal/app/map.go
package app

import (
	"fmt"

	"github.com/Pipe0105/TD-Modelamiento/internal/component"
	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/pkg/tilemap"
)

// MapProvider отдаёт пути врагов и места постройки в пикселях.
type MapProvider interface {
	Paths() [][]component.Position
	BuildSpots() []component.Position
}

// GridMap адаптирует tilemap.LevelMap к MapProvider.
type GridMap struct {
	levelMap *tilemap.LevelMap
	paths    [][]component.Position
	spots    []component.Position
}

// NewGridMap extracts paths and build spots from the level grid once.
func NewGridMap(level *defs.Level) (*GridMap, error) {
	lm, err := tilemap.NewLevelMap(level.Map, config.TileSize, level.PathTypes...)
	if err != nil {
		return nil, fmt.Errorf("failed to build map for level %q: %w", level.Name, err)
	}
	gm := &GridMap{levelMap: lm}
	for _, path := range lm.PixelPaths() {
		points := make([]component.Position, len(path))
		for i, p := range path {
			points[i] = component.Position{X: p[0], Y: p[1]}
		}
		gm.paths = append(gm.paths, points)
	}
	for _, s := range lm.BuildSpotCenters() {
		gm.spots = append(gm.spots, component.Position{X: s[0], Y: s[1]})
	}
	return gm, nil
}

func (m *GridMap) Paths() [][]component.Position    { return m.paths }
func (m *GridMap) BuildSpots() []component.Position { return m.spots }

// Grid exposes the tile grid for renderers.
func (m *GridMap) Grid() *tilemap.Grid { return m.levelMap.Grid }

// StaticMap - провайдер с заранее заданными путями, для тестов и инструментов.
type StaticMap struct {
	PathList [][]component.Position
	Spots    []component.Position
}

func (m *StaticMap) Paths() [][]component.Position    { return m.PathList }
func (m *StaticMap) BuildSpots() []component.Position { return m.Spots }
