package analyzeskilltrends

import (
	"time"

	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

// Input with a nil Population reads every approved user. Branch only
// shapes the view.
type Input struct {
	Population []models.Profile `json:"population,omitempty"`
	Branch     string           `json:"branch,omitempty"`
}

type Output struct {
	matching.SkillTrendReport
	View        matching.SkillsView `json:"view"`
	GeneratedAt time.Time           `json:"generatedAt"`
}
