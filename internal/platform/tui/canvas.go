package tui

import (
	"math"

	"github.com/vovakirdan/blitz-arcade/internal/core"
)

// fillRune is drawn for filled boxes and placeholder sprites.
const fillRune = '█'

// sprites maps image names to terminal glyphs. A zero color means the
// entity's own color is used.
var sprites = map[string]core.Image{
	"player":  {Name: "player", Glyph: '█'},
	"block":   {Name: "block", Glyph: '▓'},
	"flyer":   {Name: "flyer", Glyph: '◆'},
	"ship":    {Name: "ship", Glyph: '▲'},
	"invader": {Name: "invader", Glyph: 'Ж'},
}

// Canvas draws world-space shapes onto a character screen.
// The world rectangle is stretched over the whole screen; anything drawn
// covers at least one cell.
type Canvas struct {
	screen *core.Screen
	world  core.Box
	sx, sy float64
}

// NewCanvas maps world onto screen.
func NewCanvas(screen *core.Screen, world core.Box) *Canvas {
	c := &Canvas{screen: screen, world: world}
	if world.W > 0 {
		c.sx = float64(screen.Width()) / world.W
	}
	if world.H > 0 {
		c.sy = float64(screen.Height()) / world.H
	}
	return c
}

// LoadImage returns the glyph for name, or a solid placeholder.
func (c *Canvas) LoadImage(name string) core.Image {
	if img, ok := sprites[name]; ok {
		return img
	}
	return core.Image{Name: name, Glyph: fillRune, Placeholder: true}
}

// cellRect converts a world box to screen cells.
func (c *Canvas) cellRect(b core.Box) core.Rect {
	x0 := int(math.Round((b.X - c.world.X) * c.sx))
	y0 := int(math.Round((b.Y - c.world.Y) * c.sy))
	x1 := int(math.Round((b.Right() - c.world.X) * c.sx))
	y1 := int(math.Round((b.Bottom() - c.world.Y) * c.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (c *Canvas) cell(x, y float64) (int, int) {
	return int(math.Round((x - c.world.X) * c.sx)), int(math.Round((y - c.world.Y) * c.sy))
}

// DrawRect fills the box, or draws its border when outline is non-zero.
func (c *Canvas) DrawRect(b core.Box, color core.Color, outline int) {
	r := c.cellRect(b)
	if outline > 0 {
		c.screen.DrawBoxColored(r, color)
		return
	}
	c.screen.FillRect(r, fillRune, color)
}

// DrawImage fills the box with the image glyph.
func (c *Canvas) DrawImage(img core.Image, b core.Box) {
	glyph := img.Glyph
	if glyph == 0 {
		glyph = fillRune
	}
	c.screen.FillRect(c.cellRect(b), glyph, img.Color)
}

// DrawText writes text starting at the cell under (x, y).
func (c *Canvas) DrawText(text string, x, y float64, color core.Color) {
	cx, cy := c.cell(x, y)
	c.screen.DrawTextColored(cx, cy, text, color)
}

// DrawTextCentered writes text centered on the screen row under y.
func (c *Canvas) DrawTextCentered(text string, y float64, color core.Color) {
	_, cy := c.cell(c.world.X, y)
	x := (c.screen.Width() - len([]rune(text))) / 2
	c.screen.DrawTextColored(x, cy, text, color)
}
