package generaterecommendations

import (
	"time"

	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

// Input mirrors calculate-match-score: nil Pool and nil ExcludeIDs are
// loaded, explicit empty lists are taken as given.
type Input struct {
	UserID     string           `json:"userId,omitempty"`
	Requester  *models.Profile  `json:"requester,omitempty"`
	Pool       []models.Profile `json:"pool,omitempty"`
	ExcludeIDs []string         `json:"excludeIds,omitempty"`
}

type Output struct {
	matching.Recommendations
	View             matching.ConnectionsView `json:"view"`
	RecommendationID string                   `json:"recommendationId"`
	GeneratedAt      time.Time                `json:"generatedAt"`
}
