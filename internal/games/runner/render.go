package runner

import (
	"fmt"

	"github.com/vovakirdan/blitz-arcade/internal/core"
	"github.com/vovakirdan/blitz-arcade/internal/engine"
)

// HUD layout in world units.
const (
	hudMargin   = 10
	boostBarW   = 200
	boostBarH   = 20
	boostBarY   = 50
	controlsMsg = "SPACE jump  X boost  P pause  Q quit"
)

// Render draws the current frame.
func (g *Game) Render(dst core.Canvas) {
	if g.s == nil {
		return
	}
	s := g.s
	w, h := g.cfg.World.Width, g.cfg.World.Height
	groundY := g.groundY()

	dst.DrawRect(core.NewBox(0, groundY, w, g.cfg.World.GroundHeight), core.ColorGray, 0)
	s.obstacles.DrawAll(dst)
	engine.Draw(s.player, dst)
	s.flyers.DrawAll(dst)

	// HUD
	dst.DrawText(fmt.Sprintf("Score: %d", s.score), hudMargin, hudMargin, core.ColorBrightWhite)
	g.drawBoostBar(dst)
	if g.difficulty != nil && g.difficulty.IsEnabled() {
		text := fmt.Sprintf("Spd: %.1f", g.obstacleSpeed())
		dst.DrawText(text, hudMargin, boostBarY+boostBarH+hudMargin, core.ColorGray)
	}
	dst.DrawText(controlsMsg, hudMargin, h-g.cfg.World.GroundHeight/2, core.ColorBrightWhite)

	if g.clock.Paused() {
		dst.DrawTextCentered("PAUSED", h/2-20, core.ColorBrightYellow)
		dst.DrawTextCentered("Press P to resume", h/2+20, core.ColorWhite)
	}

	if g.phase == engine.PhaseGameOver {
		dst.DrawTextCentered("GAME OVER", h/2-40, core.ColorBrightRed)
		dst.DrawTextCentered(fmt.Sprintf("Score: %d", s.score), h/2, core.ColorBrightWhite)
		dst.DrawTextCentered("Press SPACE to restart", h/2+40, core.ColorWhite)
	}
}

// drawBoostBar shows the cooldown filling up, yellow once the boost is ready.
func (g *Game) drawBoostBar(dst core.Canvas) {
	r := g.s.player.Runner
	now := g.clock.Now()

	frame := core.NewBox(hudMargin, boostBarY, boostBarW, boostBarH)
	fill := r.Cooldown.Progress(now)
	color := core.ColorCyan
	label := "BOOST"
	switch {
	case r.Boosting:
		fill = 1
		color = core.ColorBrightYellow
		label = "BOOST!"
	case r.Cooldown.Ready(now):
		color = core.ColorYellow
		label = "BOOST READY"
	}

	if fill > 0 {
		dst.DrawRect(core.NewBox(frame.X, frame.Y, frame.W*fill, frame.H), color, 0)
	}
	dst.DrawRect(frame, core.ColorWhite, 1)
	dst.DrawText(label, frame.Right()+hudMargin, frame.Y, color)
}
