package systems

import (
	"testing"

	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/systems/factory"
	"github.com/arcadeloop/invaders/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world with the session singletons but no player and no
// scheduled waves, so tests control exactly what exists.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	_, err := factory.CreateSpace(e)
	require.NoError(t, err)
	factory.CreateBoundaries(e)
	factory.CreateProjectilePool(e)
	factory.CreateWaveTracker(e)
	factory.CreateScore(e, 0)
	return e
}

func waveData(t *testing.T, e *ecs.ECS) *components.WaveData {
	t.Helper()
	we, ok := components.Wave.First(e.World)
	require.True(t, ok)
	return components.Wave.Get(we)
}

func testScoreData(t *testing.T, e *ecs.ECS) *components.ScoreData {
	t.Helper()
	se, ok := components.Score.First(e.World)
	require.True(t, ok)
	return components.Score.Get(se)
}

func poolData(t *testing.T, e *ecs.ECS) *components.ProjectilePoolData {
	t.Helper()
	pe, ok := components.ProjectilePool.First(e.World)
	require.True(t, ok)
	return components.ProjectilePool.Get(pe)
}

func enemyEntries(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

// killEnemy applies lethal damage and runs the world until the dying
// animation completes and the entity is gone.
func killEnemy(t *testing.T, e *ecs.ECS, entry *donburi.Entry) {
	t.Helper()
	enemy := components.Enemy.Get(entry)
	enemy.State = cfg.EnemyActive
	enemy.InvulnFrames = 0
	destroyed, _ := DamageEnemy(e, entry, 0, 0, components.Health.Get(entry).Current)
	require.True(t, destroyed)
	for i := 0; i < enemy.TypeConfig.DyingDuration+5 && entry.Valid(); i++ {
		UpdateEnemies(e)
	}
	require.False(t, entry.Valid())
}
