package systems

import (
	"image/color"

	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// whiteImage backs the transformed enemy quads; the 1px inset avoids
// filtering artifacts at the edges.
var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// DrawEntities renders every entity as a flat-color quad from its collider
// snapshot: the core itself never touches the screen.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	drawProjectiles(e, screen)
	drawEnemies(e, screen)
	drawPlayer(e, screen)
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		// Flicker while invulnerable.
		if player.InvulnFrames > 0 && player.InvulnFrames%8 < 4 {
			return
		}
		box := components.Collider.Get(entry).Box
		vector.DrawFilledRect(screen,
			float32(box.X), float32(box.Y),
			float32(box.W), float32(box.H),
			cfg.Player.Color, false)
	})
}

func drawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.State == cfg.EnemyDead {
			return
		}
		box := components.Collider.Get(entry).Box
		center := box.Center()

		op := &ebiten.DrawImageOptions{}
		sw := float64(whiteImage.Bounds().Dx())
		sh := float64(whiteImage.Bounds().Dy())
		op.GeoM.Translate(-sw/2, -sh/2)
		op.GeoM.Scale(box.W/sw*enemy.Scale, box.H/sh*enemy.Scale)
		op.GeoM.Rotate(enemy.Rotation)
		op.GeoM.Translate(center.X, center.Y)

		tint := enemy.TypeConfig.Color
		op.ColorScale.Scale(
			float32(tint.R)/255,
			float32(tint.G)/255,
			float32(tint.B)/255,
			1,
		)
		op.ColorScale.ScaleAlpha(float32(enemy.Alpha))
		screen.DrawImage(whiteImage, op)
	})
}

func drawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		proj := components.Projectile.Get(entry)
		if !proj.Active {
			return
		}
		col := cfg.Projectile.PlayerColor
		if proj.Owner == tags.OwnerEnemy {
			col = cfg.Projectile.EnemyColor
		}
		box := components.Collider.Get(entry).Box
		vector.DrawFilledRect(screen,
			float32(box.X), float32(box.Y),
			float32(box.W), float32(box.H),
			col, false)
	})
}
