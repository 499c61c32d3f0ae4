package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blitz-arcade/internal/core"
)

func TestCanvasScalesWorldToCells(t *testing.T) {
	screen := core.NewScreen(120, 30)
	c := NewCanvas(screen, core.NewBox(0, 0, 1200, 600))

	c.DrawRect(core.NewBox(100, 100, 40, 40), core.ColorRed, 0)

	for y := 5; y < 7; y++ {
		for x := 10; x < 14; x++ {
			cell := screen.GetCell(x, y)
			if cell.Rune != fillRune || cell.Color != core.ColorRed {
				t.Errorf("cell (%d,%d) = %+v, expected filled red", x, y, cell)
			}
		}
	}
	if screen.Get(14, 5) != ' ' || screen.Get(10, 7) != ' ' {
		t.Error("rect spilled outside its cells")
	}
}

func TestCanvasTinyBoxCoversOneCell(t *testing.T) {
	screen := core.NewScreen(80, 24)
	c := NewCanvas(screen, core.NewBox(0, 0, 1024, 768))

	// A 4x12 bullet is smaller than one cell in both directions
	c.DrawRect(core.NewBox(512, 384, 4, 12), core.ColorWhite, 0)

	if screen.Get(40, 12) != fillRune {
		t.Errorf("tiny box should cover one cell, got %q", screen.Get(40, 12))
	}
}

func TestCanvasOutline(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewCanvas(screen, core.NewBox(0, 0, 10, 10))

	c.DrawRect(core.NewBox(2, 2, 4, 4), core.ColorYellow, 1)

	if screen.Get(2, 2) != '┌' {
		t.Errorf("corner = %q, expected '┌'", screen.Get(2, 2))
	}
	if screen.Get(3, 3) != ' ' {
		t.Error("outline should leave the inside empty")
	}
}

func TestCanvasLoadImage(t *testing.T) {
	c := NewCanvas(core.NewScreen(10, 10), core.NewBox(0, 0, 10, 10))

	if img := c.LoadImage("invader"); img.Placeholder {
		t.Error("invader sprite should be known")
	}

	img := c.LoadImage("no-such-sprite")
	if !img.Placeholder || img.Glyph != fillRune {
		t.Errorf("unknown sprite = %+v, expected solid placeholder", img)
	}
}

func TestCanvasText(t *testing.T) {
	screen := core.NewScreen(40, 10)
	c := NewCanvas(screen, core.NewBox(0, 0, 400, 100))

	c.DrawText("Score", 30, 15, core.ColorWhite)
	if !strings.HasPrefix(screen.Row(2)[3:], "Score") {
		t.Errorf("row 2 = %q, expected Score at column 3", screen.Row(2))
	}

	c.DrawTextCentered("PAUSED", 50, core.ColorYellow)
	if got := strings.TrimSpace(screen.Row(5)); got != "PAUSED" {
		t.Errorf("row 5 = %q, expected centered PAUSED", got)
	}
	if !strings.HasPrefix(screen.Row(5), strings.Repeat(" ", 17)+"PAUSED") {
		t.Errorf("PAUSED not centered: %q", screen.Row(5))
	}
}
