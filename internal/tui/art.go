package tui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/chasecards/internal/assets"
	"github.com/Mr-Dark-debug/chasecards/internal/catalog"
)

// ImageSource resolves an image handle to a decoded image.
type ImageSource interface {
	Image(handle string) (image.Image, error)
}

// halfBlockArt draws img width cells wide. Each cell is "▀" with the
// upper pixel as foreground and the lower pixel as background, so one
// terminal row covers two pixel rows and pixels come out square.
func halfBlockArt(img image.Image, width int) string {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 || width <= 0 {
		return ""
	}

	gridW := width
	gridH := (width*srcH + srcW/2) / srcW
	if gridH < 2 {
		gridH = 2
	}
	rows := (gridH + 1) / 2

	sample := func(gx, gy int) color.Color {
		if gy >= gridH {
			return color.Transparent
		}
		sx := bounds.Min.X + (gx*srcW+srcW/2)/gridW
		sy := bounds.Min.Y + (gy*srcH+srcH/2)/gridH
		if sx >= bounds.Max.X {
			sx = bounds.Max.X - 1
		}
		if sy >= bounds.Max.Y {
			sy = bounds.Max.Y - 1
		}
		return img.At(sx, sy)
	}

	lines := make([]string, 0, rows)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < gridW; x++ {
			b.WriteString(artCell(sample(x, y*2), sample(x, y*2+1)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func artCell(top, bottom color.Color) string {
	topClear, bottomClear := isTransparent(top), isTransparent(bottom)
	switch {
	case topClear && bottomClear:
		return " "
	case topClear:
		return lipgloss.NewStyle().Foreground(hexColor(bottom)).Render("▄")
	case bottomClear:
		return lipgloss.NewStyle().Foreground(hexColor(top)).Render("▀")
	default:
		return lipgloss.NewStyle().
			Foreground(hexColor(top)).
			Background(hexColor(bottom)).
			Render("▀")
	}
}

func isTransparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// artPlaceholder stands in for an image that could not be resolved.
func artPlaceholder(width int) string {
	height := max(3, width*88/63/2)
	return artPlaceholderStyle.
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		Render("sem imagem")
}

type artKey struct {
	handle catalog.ImageHandle
	width  int
}

// artCache holds converted art so View does not resample every frame.
type artCache struct {
	source ImageSource
	art    map[artKey]string
}

func newArtCache(source ImageSource) *artCache {
	return &artCache{source: source, art: make(map[artKey]string)}
}

// warm converts every card at each width.
func (c *artCache) warm(cards []catalog.Card, widths ...int) {
	for _, card := range cards {
		for _, w := range widths {
			key := artKey{card.Image, w}
			c.art[key] = c.convert(key)
		}
	}
}

// get returns the art for handle at width, converting and caching it
// on a miss.
func (c *artCache) get(handle catalog.ImageHandle, width int) string {
	key := artKey{handle, width}
	if s, ok := c.art[key]; ok {
		return s
	}
	s := c.convert(key)
	c.art[key] = s
	return s
}

// fit returns the widest art, at most maxWidth cells, that is no more
// than maxRows lines tall. Narrowing stops at one cell.
func (c *artCache) fit(handle catalog.ImageHandle, maxWidth, maxRows int) string {
	art := c.get(handle, maxWidth)
	for w := maxWidth - 1; w >= 1 && lipgloss.Height(art) > maxRows; w-- {
		art = c.get(handle, w)
	}
	return art
}

func (c *artCache) convert(key artKey) string {
	img, err := c.source.Image(string(key.handle))
	if err != nil {
		if errors.Is(err, assets.ErrAssetMissing) {
			log.Printf("[WARN] %v; using placeholder", err)
		} else {
			log.Printf("[ERROR] Loading image %s: %v", key.handle, err)
		}
		return artPlaceholder(key.width)
	}
	return halfBlockArt(img, key.width)
}
