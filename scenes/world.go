package scenes

import (
	"image/color"
	"sync"

	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/systems"
	"github.com/arcadeloop/invaders/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene owns one play session: the ECS world, collision space and the
// session singletons live exactly as long as the scene does.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameScene creates a fresh play session scene
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if score, high, ok := gs.checkGameOver(); ok {
		systems.SaveHighScore(score)
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, score, high))
	}
}

// checkGameOver reports the final and high score once the player is out of lives.
func (gs *GameScene) checkGameOver() (int, int, bool) {
	if gs.ecs == nil {
		return 0, 0, false
	}
	pe, ok := components.Player.First(gs.ecs.World)
	if !ok {
		return 0, 0, false
	}
	if components.Player.Get(pe).Lives > 0 {
		return 0, 0, false
	}

	score, high := 0, 0
	if se, ok := components.Score.First(gs.ecs.World); ok {
		data := components.Score.Get(se)
		score, high = data.Score, data.HighScore
	}
	return score, high, true
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Create the collision space FIRST; every collider factory needs it.
	if _, err := factory.CreateSpace(ecs); err != nil {
		panic("failed to create collision space: " + err.Error())
	}
	factory.CreateBoundaries(ecs)
	factory.CreateProjectilePool(ecs)
	factory.CreateWaveTracker(ecs)
	factory.CreateScore(ecs, systems.LoadHighScore())
	factory.CreatePlayer(ecs)

	systems.SetupCollisionHandlers(ecs)
	systems.SetupScoreSubscriptions(ecs)

	// Fixed per-frame order: input, movement, collision, waves, scoring,
	// then the event pump so the frame's publications land the same tick.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateWaves)
	ecs.AddSystem(systems.UpdateScore)
	ecs.AddSystem(systems.UpdateEvents)

	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	gs.ecs = ecs

	systems.StartWave(gs.ecs, 1)
}
