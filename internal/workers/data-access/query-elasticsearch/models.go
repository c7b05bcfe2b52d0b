// internal/workers/data-access/query-elasticsearch/models.go
package queryelasticsearch

import "alumni-connect-workers/internal/models"

// Input parameters by query type:
//
//	profile_search:   query, branch, role, skills, excludeUserId
//	similar_profiles: userId, branch
type Input struct {
	QueryType  string                 `json:"queryType"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	From       int                    `json:"from,omitempty"`
	Size       int                    `json:"size,omitempty"`
}

// Profiles can be handed to the matching workers as an inline pool.
type Output struct {
	Profiles  []models.Profile `json:"profiles"`
	TotalHits int64            `json:"totalHits"`
	MaxScore  float64          `json:"maxScore"`
	Took      int64            `json:"took"` // milliseconds
}
