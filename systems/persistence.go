package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/arcadeloop/invaders/config"
	"github.com/quasilyte/gdata"
)

// SavedScores represents the score data stored on disk
type SavedScores struct {
	HighScore int `json:"highScore"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for high-score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Score.HighScoreAppKey,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadHighScore loads the persisted high score, 0 when none exists or
// persistence is unavailable.
func LoadHighScore() int {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem("scores")
	if err != nil {
		log.Printf("Warning: Could not load scores: %v", err)
		return 0
	}
	if data == nil {
		return 0
	}

	var saved SavedScores
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved scores: %v", err)
		return 0
	}
	return saved.HighScore
}

// SaveHighScore persists the high score when it beats the stored one.
func SaveHighScore(score int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if score <= LoadHighScore() {
		return nil
	}

	data, err := json.Marshal(SavedScores{HighScore: score})
	if err != nil {
		log.Printf("Warning: Could not serialize scores: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("scores", data); err != nil {
		log.Printf("Warning: Could not save scores: %v", err)
		return err
	}
	return nil
}
