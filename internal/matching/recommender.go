package matching

import "alumni-connect-workers/internal/models"

const (
	connectWithLimit = 10
	similarLimit     = 5
	mentorLimit      = 5
)

// Recommend drops the requester and every excluded id from pool, runs Match
// once and derives the three buckets from that single ranking.
func Recommend(requester models.Profile, pool []models.Profile, excludeIDs []string) Recommendations {
	excluded := make(map[string]struct{}, len(excludeIDs)+1)
	excluded[requester.ID] = struct{}{}
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	available := make([]models.Profile, 0, len(pool))
	roles := make(map[string]models.Role, len(pool))
	for _, p := range pool {
		if _, skip := excluded[p.ID]; skip {
			continue
		}
		available = append(available, p)
		roles[p.ID] = p.Role
	}

	matches := Match(requester, available)

	recs := Recommendations{
		ConnectWith:     head(matches, connectWithLimit),
		SimilarProfiles: []MatchScore{},
		Mentors:         []MatchScore{},
	}
	for _, m := range matches {
		role := roles[m.CandidateID]
		if role == requester.Role && len(recs.SimilarProfiles) < similarLimit {
			recs.SimilarProfiles = append(recs.SimilarProfiles, m)
		}
		if role == models.RoleAlumni && len(recs.Mentors) < mentorLimit {
			recs.Mentors = append(recs.Mentors, m)
		}
	}
	return recs
}

// head returns at most n leading elements of s, never nil.
func head[T any](s []T, n int) []T {
	if len(s) > n {
		s = s[:n]
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
