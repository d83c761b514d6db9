package systems

import (
	"math"
	"math/rand"

	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/events"
	"github.com/arcadeloop/invaders/gamemath"
	"github.com/arcadeloop/invaders/physics"
	"github.com/arcadeloop/invaders/systems/factory"
	"github.com/arcadeloop/invaders/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sideMargin keeps pattern movement from grinding enemies against the side
// walls; escape accounting only ever happens through the bottom boundary.
const sideMargin = 8.0

// damagedDrag decays the knockback impulse while an enemy is in the
// damaged state.
const damagedDrag = 0.85

// UpdateEnemies drives the per-enemy lifecycle state machine and
// movement-pattern dispatch.
func UpdateEnemies(ecs *ecs.ECS) {
	var playerBox *physics.AABB
	if pe, ok := components.Player.First(ecs.World); ok {
		box := components.Collider.Get(pe).Box
		playerBox = &box
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		updateEnemy(ecs, e, playerBox)
	})
}

func updateEnemy(ecs *ecs.ECS, e *donburi.Entry, playerBox *physics.AABB) {
	enemy := components.Enemy.Get(e)
	enemy.Age++
	enemy.StateTimer++
	if enemy.InvulnFrames > 0 {
		enemy.InvulnFrames--
	}

	switch enemy.State {
	case cfg.EnemySpawning:
		updateSpawning(ecs, e, enemy)
	case cfg.EnemyActive:
		updateMovement(ecs, e, enemy, playerBox)
		maybeFire(ecs, e, enemy, playerBox)
		maybeStartAttack(enemy, e, playerBox)
	case cfg.EnemyAttacking:
		updateMovement(ecs, e, enemy, playerBox)
		maybeFire(ecs, e, enemy, playerBox)
		if enemy.StateTimer >= enemy.TypeConfig.AttackDuration {
			enemy.State = cfg.EnemyActive
			enemy.StateTimer = 0
		}
	case cfg.EnemyDamaged:
		updateDamaged(ecs, e, enemy)
	case cfg.EnemyDying:
		updateDying(ecs, e, enemy)
	case cfg.EnemyDead:
		// Inert; removal happened when dying completed.
	}
}

// updateSpawning interpolates scale and alpha while easing the enemy down
// from its drop-in position to the formation slot.
func updateSpawning(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData) {
	duration := enemy.TypeConfig.SpawnDuration
	scale, _ := enemy.SpawnScaleTween.Update(1)
	alpha, _ := enemy.SpawnAlphaTween.Update(1)
	enemy.Scale = float64(scale)
	enemy.Alpha = float64(alpha)

	progress := gamemath.EaseOutQuad(float64(enemy.StateTimer) / float64(duration))
	collider := components.Collider.Get(e).Collider
	box := collider.Box
	box.Y = enemy.SpawnStartY + (enemy.SpawnY-enemy.SpawnStartY)*progress
	factory.GetSpace(ecs).System.MoveCollider(collider, box)

	if enemy.StateTimer >= duration {
		enemy.State = cfg.EnemyActive
		enemy.StateTimer = 0
		enemy.Scale = 1
		enemy.Alpha = 1
		enemy.Pattern.HomeY = enemy.SpawnY
	}
}

// maybeStartAttack evaluates the attack trigger: player within range plus a
// small per-tick random chance. Both knobs are per-type tunables.
func maybeStartAttack(enemy *components.EnemyData, e *donburi.Entry, playerBox *physics.AABB) {
	if playerBox == nil {
		return
	}
	collider := components.Collider.Get(e).Collider
	center := collider.Box.Center()
	target := playerBox.Center()
	if gamemath.Distance(center.X, center.Y, target.X, target.Y) > enemy.TypeConfig.AttackRange {
		return
	}
	if rand.Float64() < enemy.TypeConfig.AttackChance {
		enemy.State = cfg.EnemyAttacking
		enemy.StateTimer = 0
	}
}

// updateMovement dispatches on the enemy type's movement pattern and
// applies the resulting delta to the collider.
func updateMovement(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, playerBox *physics.AABB) {
	tc := enemy.TypeConfig
	collider := components.Collider.Get(e).Collider
	descent := cfg.Enemy.BaseDescentSpeed * tc.Speed

	var dx, dy float64
	switch tc.Pattern {
	case cfg.PatternZigzag:
		enemy.Pattern.Phase += tc.Frequency
		dx = math.Sin(enemy.Pattern.Phase) * tc.Amplitude
		dy = descent
	case cfg.PatternSteady:
		enemy.Pattern.Phase += tc.Frequency
		dx = math.Sin(enemy.Pattern.Phase) * tc.Amplitude
		dy = descent
	case cfg.PatternFormation:
		dx, dy = formationSteering(ecs, e, collider)
		dy += descent
	case cfg.PatternBoss:
		dx, dy = bossSteering(enemy, collider, playerBox)
	default:
		dy = descent
	}

	dx = gamemath.ClampSpeed(dx, tc.Speed*2)
	dy = gamemath.ClampSpeed(dy, tc.Speed*2)

	box := collider.Box
	box.X = gamemath.Clamp(box.X+dx, sideMargin, float64(cfg.C.Width)-sideMargin-box.W)
	box.Y += dy
	factory.GetSpace(ecs).System.MoveCollider(collider, box)
}

// formationSteering combines cohesion toward the centroid of same-pattern
// active enemies with separation from close neighbors.
func formationSteering(ecs *ecs.ECS, self *donburi.Entry, collider *physics.Collider) (float64, float64) {
	center := collider.Box.Center()

	var sumX, sumY float64
	var sepX, sepY float64
	count := 0
	tags.Enemy.Each(ecs.World, func(other *donburi.Entry) {
		if other.Entity() == self.Entity() {
			return
		}
		od := components.Enemy.Get(other)
		if od.TypeConfig.Pattern != cfg.PatternFormation {
			return
		}
		if od.State != cfg.EnemyActive && od.State != cfg.EnemyAttacking {
			return
		}
		oc := components.Collider.Get(other).Box.Center()
		sumX += oc.X
		sumY += oc.Y
		count++

		dist := gamemath.Distance(center.X, center.Y, oc.X, oc.Y)
		if dist > 0 && dist < cfg.Enemy.SeparationRadius {
			away := (cfg.Enemy.SeparationRadius - dist) / cfg.Enemy.SeparationRadius
			dirX, dirY := gamemath.Normalize(center.X-oc.X, center.Y-oc.Y)
			sepX += dirX * away
			sepY += dirY * away
		}
	})

	if count == 0 {
		return 0, 0
	}
	centroidX := sumX / float64(count)
	centroidY := sumY / float64(count)

	dx := (centroidX-center.X)*cfg.Enemy.CohesionWeight + sepX*cfg.Enemy.SeparationRadius*cfg.Enemy.SeparationWeight
	dy := (centroidY-center.Y)*cfg.Enemy.CohesionWeight + sepY*cfg.Enemy.SeparationRadius*cfg.Enemy.SeparationWeight
	return dx, dy
}

// bossSteering cycles enter -> attack -> retreat on a fixed timer. The
// attack phase steers horizontally toward the player.
func bossSteering(enemy *components.EnemyData, collider *physics.Collider, playerBox *physics.AABB) (float64, float64) {
	tc := enemy.TypeConfig
	enemy.Pattern.Timer++
	if enemy.Pattern.Timer >= tc.BossPhaseDuration {
		enemy.Pattern.Timer = 0
		enemy.Pattern.BossPhase = (enemy.Pattern.BossPhase + 1) % 3
	}

	center := collider.Box.Center()
	switch enemy.Pattern.BossPhase {
	case components.BossEnter:
		// Descend toward an engagement line below the home row.
		targetY := enemy.Pattern.HomeY + 80
		if center.Y < targetY {
			return 0, tc.Speed
		}
		return 0, 0
	case components.BossAttack:
		if playerBox == nil {
			return 0, 0
		}
		target := playerBox.Center()
		dx, _ := gamemath.SteerToward(center.X, center.Y, target.X, center.Y, tc.Speed)
		return dx, 0
	default: // retreat
		if center.Y > enemy.Pattern.HomeY {
			return 0, -tc.Speed / 2
		}
		return 0, 0
	}
}

// maybeFire shoots on the type's fire interval. Attacking enemies and the
// boss aim at the player; everyone else fires straight down. Enemies still
// above the visible area hold fire.
func maybeFire(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, playerBox *physics.AABB) {
	tc := enemy.TypeConfig
	if tc.FireInterval <= 0 {
		return
	}
	collider := components.Collider.Get(e).Collider
	if collider.Box.Y < 0 {
		return
	}
	if enemy.Age-enemy.LastFired < tc.FireInterval {
		return
	}
	enemy.LastFired = enemy.Age

	center := collider.Box.Center()
	muzzleY := collider.Box.Y + collider.Box.H + cfg.Projectile.Height/2
	velX, velY := 0.0, cfg.Projectile.EnemySpeed
	aimed := enemy.State == cfg.EnemyAttacking || tc.Pattern == cfg.PatternBoss
	if aimed && playerBox != nil {
		target := playerBox.Center()
		velX, velY = gamemath.SteerToward(center.X, muzzleY, target.X, target.Y, cfg.Projectile.EnemySpeed)
	}

	factory.AcquireProjectile(ecs, tags.OwnerEnemy, center.X, muzzleY, velX, velY)
	events.ProjectileFiredEvent.Publish(ecs.World, events.ProjectileFired{
		Owner: tags.OwnerEnemy,
		X:     center.X,
		Y:     muzzleY,
	})
}

// updateDamaged drifts on the decaying knockback impulse, flickers, and
// reverts to active when the invulnerability window ends.
func updateDamaged(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData) {
	phys := components.Physics.Get(e)
	collider := components.Collider.Get(e).Collider

	box := collider.Box
	box.X = gamemath.Clamp(box.X+phys.VelX, sideMargin, float64(cfg.C.Width)-sideMargin-box.W)
	box.Y += phys.VelY
	factory.GetSpace(ecs).System.MoveCollider(collider, box)
	phys.VelX *= damagedDrag
	phys.VelY *= damagedDrag

	if enemy.StateTimer%6 < 3 {
		enemy.Alpha = 0.4
	} else {
		enemy.Alpha = 1
	}

	if enemy.StateTimer >= enemy.TypeConfig.InvulnFrames {
		enemy.State = cfg.EnemyActive
		enemy.StateTimer = 0
		enemy.Alpha = 1
		phys.VelX = 0
		phys.VelY = 0
	}
}

// updateDying plays the shrink/fade/rotate animation and fires the destroy
// event exactly once at completion.
func updateDying(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData) {
	scale, _ := enemy.DyingScaleTween.Update(1)
	alpha, _ := enemy.DyingAlphaTween.Update(1)
	enemy.Scale = float64(scale)
	enemy.Alpha = float64(alpha)
	enemy.Rotation += 0.15

	if enemy.StateTimer < enemy.TypeConfig.DyingDuration || enemy.DestroyFired {
		return
	}
	enemy.DestroyFired = true
	enemy.State = cfg.EnemyDead

	center := components.Collider.Get(e).Box.Center()
	if we, ok := components.Wave.First(ecs.World); ok {
		components.Wave.Get(we).Destroyed++
	}
	events.EnemyDestroyedEvent.Publish(ecs.World, events.EnemyDestroyed{
		TypeName: enemy.TypeName,
		Points:   enemy.TypeConfig.Points,
		X:        center.X,
		Y:        center.Y,
	})
	factory.RemoveEnemy(ecs, e)
}

// DamageEnemy is the takeDamage entry point used by the collision handlers
// and gameplay code. destroyed reports that the hit started the dying
// sequence; applied reports that the hit changed health at all. Hits are
// rejected while spawning, dying, dead, or inside the invulnerability
// window: the spawn drop-in must finish before the enemy can be damaged,
// otherwise it would abandon the sequence mid-interpolation and keep its
// partial scale and an unset home row.
func DamageEnemy(ecs *ecs.ECS, e *donburi.Entry, fromX, fromY float64, damage int) (destroyed, applied bool) {
	enemy := components.Enemy.Get(e)
	if enemy.State == cfg.EnemySpawning || enemy.State == cfg.EnemyDying || enemy.State == cfg.EnemyDead {
		return false, false
	}
	if enemy.InvulnFrames > 0 {
		return false, false
	}
	if damage <= 0 {
		damage = 1
	}

	hp := components.Health.Get(e)
	hp.Current -= damage
	if hp.Current <= 0 {
		startDying(enemy)
		return true, true
	}

	enemy.State = cfg.EnemyDamaged
	enemy.StateTimer = 0
	enemy.InvulnFrames = enemy.TypeConfig.InvulnFrames

	// Knockback impulse away from the hit origin.
	center := components.Collider.Get(e).Box.Center()
	dirX, dirY := gamemath.Normalize(center.X-fromX, center.Y-fromY)
	phys := components.Physics.Get(e)
	phys.VelX += dirX * enemy.TypeConfig.KnockbackForce
	phys.VelY += dirY * enemy.TypeConfig.KnockbackForce
	return false, true
}

func startDying(enemy *components.EnemyData) {
	enemy.State = cfg.EnemyDying
	enemy.StateTimer = 0
	enemy.DyingScaleTween = gween.New(float32(enemy.Scale), 0, float32(enemy.TypeConfig.DyingDuration), ease.InQuad)
	enemy.DyingAlphaTween = gween.New(float32(enemy.Alpha), 0, float32(enemy.TypeConfig.DyingDuration), ease.Linear)
}

// MarkEnemyEscaped removes a live enemy that crossed the bottom boundary.
// Escaped enemies never count as destroyed; the wave tracker accounts for
// them separately.
func MarkEnemyEscaped(ecs *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	if enemy.State == cfg.EnemyDying || enemy.State == cfg.EnemyDead {
		return
	}
	center := components.Collider.Get(e).Box.Center()
	if we, ok := components.Wave.First(ecs.World); ok {
		components.Wave.Get(we).Escaped++
	}
	events.EnemyEscapedEvent.Publish(ecs.World, events.EnemyEscaped{
		TypeName: enemy.TypeName,
		X:        center.X,
		Y:        center.Y,
	})
	factory.RemoveEnemy(ecs, e)
}
