package recommendevents

import (
	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

// Input with nil Events reads approved events that have not started yet.
type Input struct {
	UserID    string          `json:"userId,omitempty"`
	Requester *models.Profile `json:"requester,omitempty"`
	Events    []models.Event  `json:"events,omitempty"`
}

type Output struct {
	EventMatches []matching.EventMatch `json:"eventMatches"`
}
