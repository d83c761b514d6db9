package systems

import (
	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/events"
	"github.com/arcadeloop/invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetupScoreSubscriptions wires the scoring subsystem onto the event
// channel. The core never calls into scoring directly.
func SetupScoreSubscriptions(e *ecs.ECS) {
	events.EnemyDestroyedEvent.Subscribe(e.World, onEnemyDestroyed)
	events.EnemyEscapedEvent.Subscribe(e.World, onEnemyEscaped)
	events.WaveCompletedEvent.Subscribe(e.World, onWaveCompleted)
	events.ProjectileFiredEvent.Subscribe(e.World, onProjectileFired)
}

func scoreData(w donburi.World) *components.ScoreData {
	se, ok := components.Score.First(w)
	if !ok {
		return nil
	}
	return components.Score.Get(se)
}

func onEnemyDestroyed(w donburi.World, ev events.EnemyDestroyed) {
	score := scoreData(w)
	if score == nil {
		return
	}
	score.Combo++
	score.ComboTimer = cfg.Score.ComboWindow
	score.Score += ev.Points + (score.Combo-1)*cfg.Score.ComboBonus
	events.ScoreChangedEvent.Publish(w, events.ScoreChanged{Score: score.Score, Combo: score.Combo})
}

func onEnemyEscaped(w donburi.World, ev events.EnemyEscaped) {
	score := scoreData(w)
	if score == nil {
		return
	}
	score.Score = max(score.Score-cfg.Score.EscapePenalty, 0)
	score.Combo = 0
	score.ComboTimer = 0
	events.ScoreChangedEvent.Publish(w, events.ScoreChanged{Score: score.Score})
}

// onWaveCompleted grants the completion bonus from accuracy and clear time,
// then resets the per-wave accuracy counters.
func onWaveCompleted(w donburi.World, ev events.WaveCompleted) {
	score := scoreData(w)
	if score == nil {
		return
	}

	bonus := 0
	if score.ShotsFired > 0 {
		accuracy := float64(score.ShotsHit) / float64(score.ShotsFired)
		if accuracy >= cfg.Score.MinAccuracy {
			bonus += int(accuracy * float64(cfg.Score.AccuracyBonus))
		}
	}
	if ev.ElapsedFrames < cfg.Score.WaveTimeTarget {
		speed := 1 - float64(ev.ElapsedFrames)/float64(cfg.Score.WaveTimeTarget)
		bonus += int(speed * float64(cfg.Score.WaveTimeBonus))
	}

	score.Score += bonus
	score.ShotsFired = 0
	score.ShotsHit = 0
	events.ScoreChangedEvent.Publish(w, events.ScoreChanged{Score: score.Score, Combo: score.Combo})
}

func onProjectileFired(w donburi.World, ev events.ProjectileFired) {
	if ev.Owner != tags.OwnerPlayer {
		return
	}
	if score := scoreData(w); score != nil {
		score.ShotsFired++
	}
}

// UpdateScore decays the combo window and tracks the running high score.
func UpdateScore(e *ecs.ECS) {
	score := scoreData(e.World)
	if score == nil {
		return
	}
	if score.ComboTimer > 0 {
		score.ComboTimer--
		if score.ComboTimer == 0 {
			score.Combo = 0
		}
	}
	if score.Score > score.HighScore {
		score.HighScore = score.Score
	}
}
