package systems

import (
	"fmt"

	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin    = 10
	hudLineStep  = 18
	lifeBoxSize  = 12
	lifeBoxGap   = 6
	bannerHeight = 60
)

// DrawHUD renders score, wave and lives plus the inter-wave banner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()

	if se, ok := components.Score.First(e.World); ok {
		score := components.Score.Get(se)
		text.Draw(screen, fmt.Sprintf("SCORE %06d", score.Score), face, hudMargin, hudMargin+hudLineStep, cfg.White)
		text.Draw(screen, fmt.Sprintf("HIGH  %06d", score.HighScore), face, hudMargin, hudMargin+2*hudLineStep, cfg.DarkBlue)
		if score.Combo > 1 {
			text.Draw(screen, fmt.Sprintf("x%d COMBO", score.Combo), face, hudMargin, hudMargin+3*hudLineStep, cfg.Yellow)
		}
	}

	if we, ok := components.Wave.First(e.World); ok {
		wave := components.Wave.Get(we)
		label := fmt.Sprintf("WAVE %d", wave.Number)
		text.Draw(screen, label, face, cfg.C.Width-110, hudMargin+hudLineStep, cfg.White)

		if !wave.InProgress && wave.InterWaveTimer > 0 {
			drawWaveBanner(screen, wave.Number+1)
		}
	}

	if pe, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(pe)
		for i := 0; i < player.Lives; i++ {
			x := cfg.C.Width - hudMargin - (i+1)*(lifeBoxSize+lifeBoxGap)
			vector.DrawFilledRect(screen,
				float32(x), float32(hudMargin+2*hudLineStep),
				lifeBoxSize, lifeBoxSize,
				cfg.Player.Color, false)
		}
	}
}

func drawWaveBanner(screen *ebiten.Image, nextWave int) {
	y := float32(cfg.C.Height)/2 - bannerHeight/2
	vector.DrawFilledRect(screen, 0, y, float32(cfg.C.Width), bannerHeight, cfg.OverlayGrey, false)

	label := fmt.Sprintf("WAVE %d INCOMING", nextWave)
	face := fonts.Title.Get()
	bounds := text.BoundString(face, label)
	x := (cfg.C.Width - bounds.Dx()) / 2
	text.Draw(screen, label, face, x, cfg.C.Height/2+10, cfg.LightBlue)
}
