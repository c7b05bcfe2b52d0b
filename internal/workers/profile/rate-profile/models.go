package rateprofile

import (
	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

// Input carries the profile by id or inline. Counters are aggregated from
// postgres when absent, which needs a profile id either way.
type Input struct {
	UserID   string                   `json:"userId,omitempty"`
	Profile  *models.Profile          `json:"profile,omitempty"`
	Counters *models.ActivityCounters `json:"counters,omitempty"`
}

type Output struct {
	matching.ProfileRating
	Insights []string `json:"insights"`
}
