package systems

import (
	"github.com/arcadeloop/invaders/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput snapshots keyboard and gamepad state into the player's
// InputData once per frame. Gameplay systems read only the snapshot.
func UpdateInput(ecs *ecs.ECS) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		in := components.Input.Get(e)
		in.MoveLeft = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
		in.MoveRight = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
		in.Shoot = ebiten.IsKeyPressed(ebiten.KeySpace)

		for _, id := range ebiten.AppendGamepadIDs(nil) {
			if ebiten.IsStandardGamepadLayoutAvailable(id) {
				in.MoveLeft = in.MoveLeft ||
					ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
				in.MoveRight = in.MoveRight ||
					ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
				in.Shoot = in.Shoot ||
					ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
			}
		}
	})
}
