package invaders

import (
	"fmt"

	"github.com/vovakirdan/blitz-arcade/internal/core"
	"github.com/vovakirdan/blitz-arcade/internal/engine"
)

// Render draws the current frame.
func (g *Game) Render(dst core.Canvas) {
	h := g.cfg.World.Height

	switch g.phase {
	case engine.PhaseTitle:
		dst.DrawTextCentered("SPACE INVADERS", h/2-40, core.ColorBrightGreen)
		dst.DrawTextCentered("PRESS ANY KEY", h/2, core.ColorBrightWhite)
		dst.DrawTextCentered("ARROWS move  SPACE fire  P pause  Q quit", h/2+40, core.ColorGray)
		return

	case engine.PhaseGameOver:
		title, color := "GAME OVER", core.ColorBrightRed
		if g.s != nil && g.s.won {
			title, color = "YOU WIN", core.ColorBrightGreen
		}
		score := 0
		if g.s != nil {
			score = g.s.score
		}
		dst.DrawTextCentered(title+"  -  PRESS ANY KEY", h/2-20, color)
		dst.DrawTextCentered(fmt.Sprintf("FINAL SCORE: %d", score), h/2+20, core.ColorBrightWhite)
		return
	}

	s := g.s
	engine.Draw(s.player, dst)
	s.invaders.DrawAll(dst)
	s.shields.DrawAll(dst)
	s.playerBullets.DrawAll(dst)
	s.enemyBullets.DrawAll(dst)
	s.effects.DrawAll(dst)
	g.drawHUD(dst)

	if g.clock.Paused() {
		dst.DrawTextCentered("PAUSED", h/2-20, core.ColorBrightYellow)
		dst.DrawTextCentered("Press P to resume", h/2+20, core.ColorWhite)
	}
}

// drawHUD shows the score and one marker per remaining life.
func (g *Game) drawHUD(dst core.Canvas) {
	dst.DrawText(fmt.Sprintf("Score %04d", g.s.score), 30, 15, core.ColorBrightWhite)
	w := g.cfg.World.Width
	for i := 0; i < g.s.player.Ship.Lives; i++ {
		dst.DrawRect(core.NewBox(w-150+float64(i)*35, 15, 25, 15), core.ColorGreen, 0)
	}
}
