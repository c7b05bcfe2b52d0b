package explainmatch

import (
	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

// Input names each side of the pair either by id or inline. Inline
// profiles win over ids.
type Input struct {
	UserID      string          `json:"userId,omitempty"`
	CandidateID string          `json:"candidateId,omitempty"`
	Requester   *models.Profile `json:"requester,omitempty"`
	Candidate   *models.Profile `json:"candidate,omitempty"`
}

type Output struct {
	matching.Explanation
	RequesterID string `json:"requesterId"`
}
