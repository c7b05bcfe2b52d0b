package matching

import (
	"sort"
	"strings"

	"alumni-connect-workers/internal/models"
)

const (
	opportunityLimit = 5

	jobSkillPoints    = 20
	jobBranchPoints   = 30
	eventBasePoints   = 50
	eventBranchPoints = 30
	eventFormatPoints = 20
)

// learningFormats are event categories that earn the format bonus.
var learningFormats = map[string]struct{}{
	"workshop": {},
	"webinar":  {},
}

// RecommendJobs ranks jobs for a student requester. Other roles get no job
// recommendations.
func RecommendJobs(requester models.Profile, jobs []models.Job) []JobMatch {
	out := []JobMatch{}
	if requester.Role != models.RoleStudent {
		return out
	}

	for _, j := range jobs {
		matching := commonSkills(requester.Skills, j.Skills)
		if matching == nil {
			matching = []string{}
		}
		score := len(matching) * jobSkillPoints
		if sameBranch(j.Branch, requester.Branch) {
			score += jobBranchPoints
		}
		out = append(out, JobMatch{Job: j, MatchScore: score, MatchingSkills: matching})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].MatchScore > out[b].MatchScore
	})
	return head(out, opportunityLimit)
}

// RecommendEvents ranks upcoming events for any requester.
func RecommendEvents(requester models.Profile, events []models.Event) []EventMatch {
	out := make([]EventMatch, 0, len(events))
	for _, e := range events {
		score := eventBasePoints
		if sameBranch(e.Branch, requester.Branch) {
			score += eventBranchPoints
		}
		if _, ok := learningFormats[strings.ToLower(e.Category)]; ok {
			score += eventFormatPoints
		}
		out = append(out, EventMatch{Event: e, MatchScore: score})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].MatchScore > out[b].MatchScore
	})
	return head(out, opportunityLimit)
}
