package systems

import (
	"log"
	"math"

	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/events"
	"github.com/arcadeloop/invaders/gamemath"
	"github.com/arcadeloop/invaders/systems/factory"
	"github.com/arcadeloop/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartWave schedules wave n's spawns from its scaled template. Rejected
// with a logged warning when a wave is already in progress.
func StartWave(e *ecs.ECS, n int) bool {
	we, ok := components.Wave.First(e.World)
	if !ok {
		log.Printf("wave: no wave tracker in world")
		return false
	}
	wave := components.Wave.Get(we)
	if wave.InProgress {
		log.Printf("wave: wave %d still in progress, ignoring start of wave %d", wave.Number, n)
		return false
	}

	template := cfg.Wave.TemplateForWave(n)
	countScale := math.Pow(cfg.Wave.DifficultyMultiplier, float64(n-1))
	delayStep := int(float64(template.SpawnDelayStep) * math.Pow(cfg.Wave.SpawnDelayDecay, float64(n-1)))
	delayStep = max(delayStep, cfg.Wave.MinSpawnDelayStep)

	*wave = components.WaveData{
		Number:     n,
		InProgress: true,
	}

	groupOffset := 0
	for _, g := range template.Groups {
		count := min(int(float64(g.Count)*countScale), int(float64(g.Count)*cfg.Wave.MaxCountScale))
		count = max(count, g.Count)
		slots := gamemath.FormationPositions(g.Formation, count, g.AnchorX, g.AnchorY, g.Spacing, delayStep)
		for _, s := range slots {
			wave.Pending = append(wave.Pending, components.PendingSpawn{
				Type:  g.Type,
				X:     s.X,
				Y:     s.Y,
				Delay: groupOffset + s.Delay,
			})
		}
		groupOffset += template.GroupDelay
	}

	events.WaveStartedEvent.Publish(e.World, events.WaveStarted{Wave: n})
	return true
}

// UpdateWaves counts down scheduled spawns, detects wave completion, and
// auto-starts the next wave after the inter-wave pause.
func UpdateWaves(e *ecs.ECS) {
	we, ok := components.Wave.First(e.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(we)

	if !wave.InProgress {
		if wave.Number > 0 && wave.InterWaveTimer > 0 {
			wave.InterWaveTimer--
			if wave.InterWaveTimer == 0 {
				StartWave(e, wave.Number+1)
			}
		}
		return
	}

	wave.ElapsedFrames++

	// Spawn due enemies and compact the pending list in place.
	remaining := wave.Pending[:0]
	for i := range wave.Pending {
		p := &wave.Pending[i]
		p.Delay--
		if p.Delay > 0 {
			remaining = append(remaining, *p)
			continue
		}
		if factory.CreateEnemy(e, p.Type, p.X, p.Y) != nil {
			wave.Spawned++
		}
	}
	wave.Pending = remaining

	// Completion: nothing left to spawn, no enemies in play, and the
	// accounting closed out.
	if len(wave.Pending) > 0 || wave.CompletionFired {
		return
	}
	active := activeEnemyCount(e)
	if active > 0 || wave.Spawned-wave.Destroyed-wave.Escaped != 0 {
		return
	}

	wave.CompletionFired = true
	wave.InProgress = false
	wave.InterWaveTimer = cfg.Wave.InterWaveDelay
	events.WaveCompletedEvent.Publish(e.World, events.WaveCompleted{
		Wave:          wave.Number,
		ElapsedFrames: wave.ElapsedFrames,
		Spawned:       wave.Spawned,
		Destroyed:     wave.Destroyed,
		Escaped:       wave.Escaped,
	})
}

func activeEnemyCount(e *ecs.ECS) int {
	count := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) {
		count++
	})
	return count
}
