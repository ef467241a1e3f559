package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	xdraw "golang.org/x/image/draw"

	"github.com/Pipe0105/TD-Modelamiento/pkg/utils"
)

type spriteKey struct {
	name string
	size int
}

// SpriteCache загружает, масштабирует и кэширует спрайты по (имя, размер).
// Создаётся один раз и передаётся рендереру.
type SpriteCache struct {
	dir     string
	sprites map[spriteKey]*ebiten.Image
	missing map[string]bool
}

// NewSpriteCache creates a cache reading <dir>/<name>.png. An empty dir
// disables file loading and every sprite is a generated circle.
func NewSpriteCache(dir string) *SpriteCache {
	return &SpriteCache{
		dir:     dir,
		sprites: make(map[spriteKey]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// Sprite возвращает изображение size×size. Если файла нет, рисуется круг цвета fallback.
func (c *SpriteCache) Sprite(name string, size int, fallback color.RGBA) *ebiten.Image {
	if size <= 0 {
		size = 1
	}
	key := spriteKey{name: name, size: size}
	if img, ok := c.sprites[key]; ok {
		return img
	}

	var img *ebiten.Image
	if frame, err := c.loadFrame(name, size); err == nil {
		img = ebiten.NewImageFromImage(frame)
	} else {
		if !c.missing[name] && c.dir != "" {
			log.Printf("sprite %q: %v, using generated circle", name, err)
		}
		c.missing[name] = true
		img = circleSprite(size, fallback)
	}
	c.sprites[key] = img
	return img
}

// Len reports how many (name, size) entries are cached.
func (c *SpriteCache) Len() int { return len(c.sprites) }

func (c *SpriteCache) loadFrame(name string, size int) (image.Image, error) {
	if c.dir == "" || name == "" {
		return nil, fmt.Errorf("no sprite source")
	}
	if c.missing[name] {
		return nil, fmt.Errorf("previously missing")
	}
	f, err := os.Open(filepath.Join(c.dir, name+".png"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s.png: %w", name, err)
	}
	return PrepareSprite(src, size), nil
}

// FirstFrame вырезает первый кадр спрайт-листа: сторона кадра равна НОД ширины и высоты.
func FirstFrame(src image.Image) image.Rectangle {
	b := src.Bounds()
	side := utils.Gcd(b.Dx(), b.Dy())
	if side == 0 {
		return b
	}
	return image.Rect(b.Min.X, b.Min.Y, b.Min.X+side, b.Min.Y+side)
}

// PrepareSprite scales the first frame of src to size×size.
func PrepareSprite(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, FirstFrame(src), xdraw.Over, nil)
	return dst
}

func circleSprite(size int, clr color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, clr, true)
	vector.StrokeCircle(img, r, r, r-0.5, 1, color.RGBA{255, 255, 255, 180}, true)
	return img
}
