package systems

import (
	"fmt"
	"image/color"

	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawTitle renders the title screen
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	drawCenteredText(screen, "INVADERS", fonts.Title, cfg.C.Height/2-40, cfg.LightBlue)
	drawCenteredText(screen, "PRESS SPACE TO START", fonts.HUD, cfg.C.Height/2+10, cfg.White)
	drawCenteredText(screen, "ARROWS / A D TO MOVE, SPACE TO FIRE", fonts.Small, cfg.C.Height/2+40, cfg.DarkBlue)
}

// DrawGameOver renders the game over screen from the score singleton.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	drawCenteredText(screen, "GAME OVER", fonts.Title, cfg.C.Height/2-60, cfg.Red)

	if se, ok := components.Score.First(e.World); ok {
		score := components.Score.Get(se)
		drawCenteredText(screen, fmt.Sprintf("SCORE %06d", score.Score), fonts.HUD, cfg.C.Height/2-10, cfg.White)
		drawCenteredText(screen, fmt.Sprintf("HIGH  %06d", score.HighScore), fonts.HUD, cfg.C.Height/2+15, cfg.Yellow)
	}

	drawCenteredText(screen, "SPACE TO RESTART, ESC FOR TITLE", fonts.Small, cfg.C.Height/2+55, cfg.DarkBlue)
}

func drawCenteredText(screen *ebiten.Image, label string, name fonts.FontName, y int, clr color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, label)
	x := (cfg.C.Width - bounds.Dx()) / 2
	text.Draw(screen, label, face, x, y, clr)
}
