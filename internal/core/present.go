package core

// Image is a handle to a sprite resolved by the presentation layer.
// A missing asset yields a placeholder that renders as a solid box.
type Image struct {
	Name        string
	Glyph       rune
	Color       Color
	Placeholder bool
}

// Canvas is the drawing surface a game renders one frame onto.
// Coordinates are in world units; the implementation maps them to its output.
type Canvas interface {
	// LoadImage resolves a named sprite. Never fails: unknown names return
	// a placeholder image.
	LoadImage(name string) Image

	// DrawRect draws a box. outline 0 fills it, otherwise only the border is drawn.
	DrawRect(b Box, c Color, outline int)

	// DrawImage draws a sprite stretched over the box.
	DrawImage(img Image, b Box)

	// DrawText writes text with its top-left corner at (x, y).
	DrawText(text string, x, y float64, c Color)

	// DrawTextCentered writes text centered horizontally at y.
	DrawTextCentered(text string, y float64, c Color)
}

// Sound is an opaque handle to a loaded sound cue.
type Sound interface {
	Name() string
}

// Audio plays sound cues and background music.
// All methods accept a nil Sound and do nothing with it.
type Audio interface {
	// LoadSound returns nil if the asset is missing.
	LoadSound(name string) Sound
	Play(s Sound)
	PlayMusicLoop(s Sound)
	StopMusic()
}

// NopAudio discards every cue. Used when sound is muted or unavailable.
type NopAudio struct{}

func (NopAudio) LoadSound(string) Sound { return nil }
func (NopAudio) Play(Sound)             {}
func (NopAudio) PlayMusicLoop(Sound)    {}
func (NopAudio) StopMusic()             {}
