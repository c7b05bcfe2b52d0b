package recommendjobs

import (
	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

// Input with nil Jobs reads the approved job board.
type Input struct {
	UserID    string          `json:"userId,omitempty"`
	Requester *models.Profile `json:"requester,omitempty"`
	Jobs      []models.Job    `json:"jobs,omitempty"`
}

type Output struct {
	JobMatches []matching.JobMatch `json:"jobMatches"`
}
