package scenes

import (
	"image/color"
	"sync"

	"github.com/arcadeloop/invaders/components"
	cfg "github.com/arcadeloop/invaders/config"
	"github.com/arcadeloop/invaders/systems"
	"github.com/arcadeloop/invaders/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	finalScore   int
	highScore    int
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, finalScore, highScore int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, finalScore: finalScore, highScore: highScore}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		gs.sceneChanger.ChangeScene(NewGameScene(gs.sceneChanger))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.sceneChanger.ChangeScene(NewTitleScene(gs.sceneChanger))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// A score singleton carries the final result for the renderer.
	se := factory.CreateScore(gs.ecs, gs.highScore)
	components.Score.Get(se).Score = gs.finalScore

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
