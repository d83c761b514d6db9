package systems

import (
	"testing"

	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/events"
	"github.com/arcadeloop/invaders/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestEnemySpawningBecomesActive(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyScout, 300, 100)
	require.NotNil(t, entry)

	enemy := components.Enemy.Get(entry)
	assert.Equal(t, cfg.EnemySpawning, enemy.State)

	for i := 0; i < enemy.TypeConfig.SpawnDuration; i++ {
		UpdateEnemies(e)
	}

	assert.Equal(t, cfg.EnemyActive, enemy.State)
	assert.Equal(t, 1.0, enemy.Scale)
	assert.Equal(t, 1.0, enemy.Alpha)

	// The drop-in interpolation landed the collider on its formation slot.
	box := components.Collider.Get(entry).Box
	assert.InDelta(t, 100.0, box.Y, 0.5)
}

func TestSpawningEnemyRejectsDamageAndFinishesDropIn(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyBoss, 320, 90)
	require.NotNil(t, entry)
	enemy := components.Enemy.Get(entry)
	startHP := components.Health.Get(entry).Current

	// A third of the way into the 90-frame drop-in.
	for i := 0; i < enemy.TypeConfig.SpawnDuration/3; i++ {
		UpdateEnemies(e)
	}
	require.Equal(t, cfg.EnemySpawning, enemy.State)

	destroyed, applied := DamageEnemy(e, entry, 320, 400, 5)
	assert.False(t, destroyed)
	assert.False(t, applied)
	assert.Equal(t, cfg.EnemySpawning, enemy.State, "a mid-drop hit must not cut the sequence short")
	assert.Equal(t, startHP, components.Health.Get(entry).Current)

	// The drop-in still runs to completion with its exit fields intact.
	for i := 0; enemy.State == cfg.EnemySpawning && i < enemy.TypeConfig.SpawnDuration; i++ {
		UpdateEnemies(e)
	}
	assert.Equal(t, cfg.EnemyActive, enemy.State)
	assert.Equal(t, 1.0, enemy.Scale)
	assert.Equal(t, 1.0, enemy.Alpha)
	assert.Equal(t, 90.0, enemy.Pattern.HomeY, "the boss retreats to its spawn row, not the screen top")
}

func TestCreateEnemyRejectsUnknownType(t *testing.T) {
	e := newTestECS(t)
	assert.Nil(t, factory.CreateEnemy(e, "saucer", 300, 100))
}

func TestLethalHitStartsDyingAndDestroysOnce(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyScout, 300, 100)
	require.NotNil(t, entry)
	enemy := components.Enemy.Get(entry)
	enemy.State = cfg.EnemyActive

	destroyed := 0
	events.EnemyDestroyedEvent.Subscribe(e.World, func(w donburi.World, ev events.EnemyDestroyed) {
		destroyed++
		assert.Equal(t, cfg.EnemyScout, ev.TypeName)
		assert.Equal(t, 100, ev.Points)
	})

	// Scout has 1 HP: the hit is lethal and reports destruction.
	destroyedHit, applied := DamageEnemy(e, entry, 300, 400, 1)
	assert.True(t, destroyedHit)
	assert.True(t, applied)
	assert.Equal(t, cfg.EnemyDying, enemy.State)

	// A dying enemy ignores further damage.
	_, applied = DamageEnemy(e, entry, 300, 400, 1)
	assert.False(t, applied)

	dying := enemy.TypeConfig.DyingDuration
	for i := 0; i < dying+10 && entry.Valid(); i++ {
		UpdateEnemies(e)
	}
	UpdateEvents(e)

	assert.Equal(t, 1, destroyed, "destroy event must fire exactly once")
	assert.False(t, entry.Valid(), "dead enemy must be removed from the world")
	assert.Equal(t, 1, waveData(t, e).Destroyed)
	assert.Equal(t, 0, waveData(t, e).Escaped)
}

func TestSurvivingHitEntersDamagedWithInvulnerability(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyFighter, 300, 100)
	require.NotNil(t, entry)
	enemy := components.Enemy.Get(entry)
	enemy.State = cfg.EnemyActive

	destroyed, applied := DamageEnemy(e, entry, 300, 400, 1)
	assert.False(t, destroyed)
	assert.True(t, applied)
	assert.Equal(t, cfg.EnemyDamaged, enemy.State)
	assert.Equal(t, enemy.TypeConfig.InvulnFrames, enemy.InvulnFrames)
	assert.Equal(t, 1, components.Health.Get(entry).Current)

	// Hits inside the invulnerability window change nothing.
	_, applied = DamageEnemy(e, entry, 300, 400, 1)
	assert.False(t, applied)
	assert.Equal(t, 1, components.Health.Get(entry).Current)

	// The knockback pushed the enemy away from the hit origin (below it).
	assert.Negative(t, components.Physics.Get(entry).VelY)

	for i := 0; i < enemy.TypeConfig.InvulnFrames; i++ {
		UpdateEnemies(e)
	}
	assert.Equal(t, cfg.EnemyActive, enemy.State)
	assert.Equal(t, 0, enemy.InvulnFrames)

	// Out of the window the next hit lands, and 2 HP means it is lethal.
	destroyed, applied = DamageEnemy(e, entry, 300, 400, 1)
	assert.True(t, destroyed)
	assert.True(t, applied)
	assert.Equal(t, cfg.EnemyDying, enemy.State)
}

func TestNonPositiveDamageCountsAsOne(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyFighter, 300, 100)
	require.NotNil(t, entry)
	components.Enemy.Get(entry).State = cfg.EnemyActive

	destroyed, applied := DamageEnemy(e, entry, 300, 400, 0)
	assert.False(t, destroyed)
	assert.True(t, applied)
	assert.Equal(t, 1, components.Health.Get(entry).Current)
}

func TestMarkEnemyEscaped(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyScout, 300, 100)
	require.NotNil(t, entry)

	escaped := 0
	events.EnemyEscapedEvent.Subscribe(e.World, func(w donburi.World, ev events.EnemyEscaped) {
		escaped++
	})

	MarkEnemyEscaped(e, entry)
	UpdateEvents(e)

	assert.Equal(t, 1, escaped)
	assert.False(t, entry.Valid())
	assert.Equal(t, 1, waveData(t, e).Escaped)
	assert.Equal(t, 0, waveData(t, e).Destroyed, "escapes never count as destroyed")
}

func TestDyingEnemyCannotEscape(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyScout, 300, 100)
	require.NotNil(t, entry)
	enemy := components.Enemy.Get(entry)
	enemy.State = cfg.EnemyActive

	destroyed, _ := DamageEnemy(e, entry, 300, 400, 1)
	require.True(t, destroyed)
	MarkEnemyEscaped(e, entry)

	assert.True(t, entry.Valid(), "dying enemy stays in the world until the animation ends")
	assert.Equal(t, 0, waveData(t, e).Escaped)
}

func TestZigzagDescends(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyScout, 300, 100)
	require.NotNil(t, entry)
	enemy := components.Enemy.Get(entry)
	enemy.State = cfg.EnemyActive
	enemy.Pattern.HomeY = 100

	startY := components.Collider.Get(entry).Box.Y
	for i := 0; i < 60; i++ {
		UpdateEnemies(e)
	}
	endBox := components.Collider.Get(entry).Box

	assert.Greater(t, endBox.Y, startY, "zigzag pattern must keep descending")
	// Pattern movement never leaves the side margins.
	assert.GreaterOrEqual(t, endBox.X, 8.0)
	assert.LessOrEqual(t, endBox.X+endBox.W, float64(cfg.C.Width)-8.0)
}

func TestAttackingRevertsToActive(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyScout, 300, 100)
	require.NotNil(t, entry)
	enemy := components.Enemy.Get(entry)
	enemy.State = cfg.EnemyAttacking
	enemy.StateTimer = 0

	for i := 0; i < enemy.TypeConfig.AttackDuration; i++ {
		UpdateEnemies(e)
	}

	assert.Equal(t, cfg.EnemyActive, enemy.State)
}

func TestBossPhaseCycle(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateEnemy(e, cfg.EnemyBoss, 320, 90)
	require.NotNil(t, entry)
	enemy := components.Enemy.Get(entry)
	enemy.State = cfg.EnemyActive
	enemy.Pattern.HomeY = 90

	assert.Equal(t, components.BossEnter, enemy.Pattern.BossPhase)

	for i := 0; i < enemy.TypeConfig.BossPhaseDuration; i++ {
		UpdateEnemies(e)
	}
	assert.Equal(t, components.BossAttack, enemy.Pattern.BossPhase)

	for i := 0; i < enemy.TypeConfig.BossPhaseDuration; i++ {
		UpdateEnemies(e)
	}
	assert.Equal(t, components.BossRetreat, enemy.Pattern.BossPhase)

	for i := 0; i < enemy.TypeConfig.BossPhaseDuration; i++ {
		UpdateEnemies(e)
	}
	assert.Equal(t, components.BossEnter, enemy.Pattern.BossPhase, "phases cycle back to enter")
}
