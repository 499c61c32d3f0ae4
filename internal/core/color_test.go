package core

import "testing"

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor(" Bright_Red "); !ok || c != ColorBrightRed {
		t.Errorf("ParseColor(bright_red) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("ultraviolet"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
