package config

import "github.com/arcadeloop/invaders/physics"

// Collision layers. Bitmask-style values so gameplay code can build masks,
// though the collision matrix itself is declared pairwise.
const (
	LayerPlayer           physics.Layer = 1 << 0
	LayerEnemy            physics.Layer = 1 << 1
	LayerPlayerProjectile physics.Layer = 1 << 2
	LayerEnemyProjectile  physics.Layer = 1 << 3
	LayerPowerup          physics.Layer = 1 << 4
	LayerBoundary         physics.Layer = 1 << 5
)

// DefaultLayerMatrix lists the layer pairs wired collidable at session
// start. Pairs not listed never produce events.
var DefaultLayerMatrix = [][2]physics.Layer{
	{LayerPlayer, LayerEnemy},
	{LayerPlayer, LayerEnemyProjectile},
	{LayerPlayer, LayerPowerup},
	{LayerPlayer, LayerBoundary},
	{LayerEnemy, LayerPlayerProjectile},
	{LayerEnemy, LayerBoundary},
	{LayerPlayerProjectile, LayerBoundary},
	{LayerEnemyProjectile, LayerBoundary},
}
