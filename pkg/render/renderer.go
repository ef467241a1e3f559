package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/Pipe0105/TD-Modelamiento/internal/app"
	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/pkg/tilemap"
)

// SpriteSource отдаёт изображения сущностей; реализуется assets.SpriteCache.
type SpriteSource interface {
	Sprite(name string, size int, fallback color.RGBA) *ebiten.Image
}

// Renderer рисует снимки уровня. Карта предрендерится один раз на уровень.
type Renderer struct {
	colors   MapColors
	sprites  SpriteSource
	fontFace font.Face
	originX  float64
	originY  float64
	mapImage *ebiten.Image
	mapLevel string
}

// NewRenderer draws the map with its top-left corner at (originX, originY).
func NewRenderer(colors MapColors, sprites SpriteSource, originX, originY float64) *Renderer {
	return &Renderer{
		colors:   colors,
		sprites:  sprites,
		fontFace: basicfont.Face7x13,
		originX:  originX,
		originY:  originY,
	}
}

// ScreenToWorld converts a cursor position into map pixel coordinates.
func (r *Renderer) ScreenToWorld(x, y int) (float64, float64) {
	return float64(x) - r.originX, float64(y) - r.originY
}

func (r *Renderer) toScreen(p app.Point) (float32, float32) {
	return float32(p.X + r.originX), float32(p.Y + r.originY)
}

// renderMapImage создаёт предрендеренное изображение карты
func (r *Renderer) renderMapImage(tiles [][]int, tileSize float64) {
	rows := len(tiles)
	cols := 0
	if rows > 0 {
		cols = len(tiles[0])
	}
	w, h := int(float64(cols)*tileSize), int(float64(rows)*tileSize)
	if w <= 0 || h <= 0 {
		r.mapImage = nil
		return
	}
	r.mapImage = ebiten.NewImage(w, h)
	r.mapImage.Fill(r.colors.BackgroundColor)

	ts := float32(tileSize)
	for y, row := range tiles {
		for x, code := range row {
			fill := r.colors.TileColor(tilemap.Tile(code))
			px, py := float32(x)*ts, float32(y)*ts
			vector.DrawFilledRect(r.mapImage, px, py, ts, ts, fill, false)
			vector.StrokeRect(r.mapImage, px, py, ts, ts, r.colors.GridLineWidth, DarkenColor(fill), false)
		}
	}
}

// Draw рисует карту, точки постройки, башни, врагов и снаряды.
func (r *Renderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.Fill(r.colors.BackgroundColor)
	if snap == nil {
		return
	}
	if r.mapImage == nil || r.mapLevel != snap.Level {
		r.renderMapImage(snap.Tiles, snap.TileSize)
		r.mapLevel = snap.Level
	}
	if r.mapImage != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(r.originX, r.originY)
		screen.DrawImage(r.mapImage, op)
	}

	r.drawSpots(screen, snap)
	r.drawTowers(screen, snap)
	r.drawEnemies(screen, snap)
	r.drawProjectiles(screen, snap)
}

func (r *Renderer) drawSpots(screen *ebiten.Image, snap *app.Snapshot) {
	half := float32(config.BuildSpotSize) / 2
	for _, spot := range snap.Spots {
		x, y := r.toScreen(spot.Point)
		clr := r.colors.BuildSpotColor
		if spot.Occupied {
			clr = DarkenColor(clr)
		}
		vector.StrokeRect(screen, x-half+2, y-half+2, 2*half-4, 2*half-4, 2, clr, false)
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, name string, p app.Point, radius float32, clr color.RGBA) {
	size := int(2 * radius)
	img := r.sprites.Sprite(name, size, clr)
	x, y := r.toScreen(p)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x-radius), float64(y-radius))
	screen.DrawImage(img, op)
}

func spriteName(sprite, fallback string) string {
	if sprite != "" {
		return sprite
	}
	return fallback
}

func (r *Renderer) drawTowers(screen *ebiten.Image, snap *app.Snapshot) {
	for _, t := range snap.Towers {
		x, y := r.toScreen(t.Point)
		radius := t.Radius
		if radius <= 0 {
			radius = config.TowerRadius
		}
		if t.ID == snap.Selected {
			vector.DrawFilledCircle(screen, x, y, float32(t.Range), config.RangeColor, true)
			vector.StrokeCircle(screen, x, y, float32(t.Range), 1, config.SelectionColor, true)
		}
		r.drawSprite(screen, spriteName(t.Sprite, "tower_"+t.Type), t.Point, radius, t.Color)
		stroke := config.TowerStrokeColor
		if t.ID == snap.Selected {
			stroke = config.SelectionColor
		}
		vector.StrokeCircle(screen, x, y, radius, 2, stroke, true)
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, snap *app.Snapshot) {
	for _, e := range snap.Enemies {
		radius := e.Radius
		if radius <= 0 {
			radius = config.EnemyRadius
		}
		r.drawSprite(screen, spriteName(e.Sprite, "enemy_"+e.Tier), e.Point, radius, e.Color)

		// Полоска здоровья над врагом
		x, y := r.toScreen(e.Point)
		w := 2 * radius
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w, 3, config.HealthBarBack, false)
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w*float32(e.Ratio), 3, HealthColor(e.Ratio), false)
	}
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, snap *app.Snapshot) {
	for _, p := range snap.Projectiles {
		x, y := r.toScreen(p)
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, config.ProjectileColor, true)
	}
}

// DrawCenteredText пишет строку по центру точки (x, y).
func (r *Renderer) DrawCenteredText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	b := text.BoundString(r.fontFace, s)
	text.Draw(screen, s, r.fontFace, x-b.Dx()/2, y+b.Dy()/2, clr)
}

// DrawLevelTitle подписывает уровень под картой.
func (r *Renderer) DrawLevelTitle(screen *ebiten.Image, snap *app.Snapshot) {
	if snap == nil || r.mapImage == nil {
		return
	}
	b := r.mapImage.Bounds()
	label := fmt.Sprintf("%s  t=%.1fs", snap.Level, snap.Time)
	text.Draw(screen, label, r.fontFace, int(r.originX)+4, int(r.originY)+b.Dy()+16, r.colors.TextLightColor)
}
