// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/pkg/tilemap"
)

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	PathColor       color.RGBA
	BuildSpotColor  color.RGBA
	StartColor      color.RGBA
	EndColor        color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	GridLineWidth   float32
}

// DefaultMapColors returns the palette from config.
func DefaultMapColors() MapColors {
	return MapColors{
		BackgroundColor: config.BackgroundColor,
		GroundColor:     config.GroundColor,
		PathColor:       config.PathColor,
		BuildSpotColor:  config.BuildSpotColor,
		StartColor:      config.StartColor,
		EndColor:        config.EndColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		GridLineWidth:   1,
	}
}

// TileColor maps a tile code to its fill color.
func (c MapColors) TileColor(code tilemap.Tile) color.RGBA {
	switch code {
	case tilemap.PathTile, tilemap.AltPath:
		return c.PathColor
	case tilemap.BuildSpot:
		return c.BuildSpotColor
	case tilemap.Start:
		return c.StartColor
	case tilemap.End:
		return c.EndColor
	}
	return c.GroundColor
}

// TextColorOn picks dark or light text for readability on bg.
func (c MapColors) TextColorOn(bg color.RGBA) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return c.TextDarkColor
	}
	return c.TextLightColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// HealthColor fades from green to red as ratio drops.
func HealthColor(ratio float64) color.RGBA {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return color.RGBA{
		R: uint8(255 * (1 - ratio)),
		G: uint8(200 * ratio),
		B: 40,
		A: 255,
	}
}
