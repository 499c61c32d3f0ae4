package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 12)+"\n", 4), "\n") {
		t.Errorf("new screen should be blank, got %q", got)
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(6, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 6, 0},
		{"above", 0, -1},
		{"below", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetColored(tt.x, tt.y, 'X', ColorRed)
			if c := s.GetCell(tt.x, tt.y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", tt.x, tt.y, c)
			}
		})
	}

	s.DrawTextColored(4, 1, "HELLO", ColorWhite)
	if got := s.Row(1); got != "    HE" {
		t.Errorf("clipped text row = %q, expected %q", got, "    HE")
	}
}

func TestScreenFillRectAndClear(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(1, 1, 3, 2), '#', ColorRed)

	expected := []string{
		"      ",
		" ###  ",
		" ###  ",
		"      ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
	if c := s.GetCell(2, 2); c.Color != ColorRed {
		t.Errorf("filled cell color = %v, expected red", c.Color)
	}

	s.Clear()
	if c := s.GetCell(2, 2); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawBoxColored(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColored(NewRect(0, 0, 5, 4), ColorYellow)

	expected := []string{
		"┌───┐ ",
		"│   │ ",
		"│   │ ",
		"└───┘ ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}

	thin := NewScreen(3, 3)
	thin.DrawBoxColored(NewRect(1, 0, 1, 3), ColorYellow)
	for y := 0; y < 3; y++ {
		if thin.Get(1, y) != '█' {
			t.Errorf("one-wide box should be filled at y=%d, got %q", y, thin.Get(1, y))
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "Score", ColorWhite)
	s.DrawTextColored(0, 5, "Lost", ColorWhite)

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Scor" {
		t.Errorf("row 0 = %q, expected %q", got, "Scor")
	}

	s.Resize(8, 6)
	if got := s.Row(0); got != "Scor    " {
		t.Errorf("row 0 after growing = %q", got)
	}
	if got := s.Row(5); got != "        " {
		t.Errorf("rows dropped by shrinking should stay blank, got %q", got)
	}
	if got := s.Row(-1); got != "        " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
}
