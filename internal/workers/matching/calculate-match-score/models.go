package calculatematchscore

import (
	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

// Input names the requester by id or inline. A nil Candidates loads the
// approved pool; an explicit empty list scores nobody.
type Input struct {
	UserID     string           `json:"userId,omitempty"`
	Requester  *models.Profile  `json:"requester,omitempty"`
	Candidates []models.Profile `json:"candidates,omitempty"`
	Limit      int              `json:"limit,omitempty"`
}

type ScoredMatch struct {
	matching.MatchScore
	Quality matching.Quality `json:"quality"`
}

// CandidateCount is the number of candidates scored before Limit applied.
type Output struct {
	Matches        []ScoredMatch `json:"matches"`
	CandidateCount int           `json:"candidateCount"`
	ComputationID  string        `json:"computationId"`
}
