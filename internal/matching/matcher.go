package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"alumni-connect-workers/internal/models"
)

// Factor weights; a factor never contributes more than its weight.
const (
	skillWeight  = 40.0
	branchWeight = 20.0
	textWeight   = 20.0

	// A reason is attached once the underlying similarity exceeds this.
	reasonThreshold  = 0.3
	maxSkillExamples = 3
)

// Match scores requester against every candidate and returns the results by
// descending score. Candidates sharing the requester's id are skipped. Exact
// ties keep the candidates' input order.
func Match(requester models.Profile, candidates []models.Profile) []MatchScore {
	matches := make([]MatchScore, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == requester.ID {
			continue
		}
		matches = append(matches, Score(requester, c))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// Score computes the weighted affinity of a single pair. Absent fields make
// their factor contribute nothing.
func Score(requester, candidate models.Profile) MatchScore {
	var score float64
	reasons := []string{}

	skillSim := JaccardSimilarity(requester.Skills, candidate.Skills)
	score += skillSim * skillWeight
	if skillSim > reasonThreshold {
		common := commonSkills(requester.Skills, candidate.Skills)
		examples := common
		if len(examples) > maxSkillExamples {
			examples = examples[:maxSkillExamples]
		}
		reasons = append(reasons, fmt.Sprintf("%d common skills: %s", len(common), strings.Join(examples, ", ")))
	}

	if sameBranch(requester.Branch, candidate.Branch) {
		score += branchWeight
		reasons = append(reasons, "Same branch: "+requester.Branch)
	}

	if points, reason := RoleAffinity(requester.Role, candidate.Role); points > 0 {
		score += points
		reasons = append(reasons, reason)
	}

	if requester.Bio != "" && candidate.Bio != "" {
		textSim := textSimilarity(requester, candidate)
		score += textSim * textWeight
		if textSim > reasonThreshold {
			reasons = append(reasons, "Similar interests and background")
		}
	}

	return MatchScore{
		CandidateID: candidate.ID,
		Score:       roundTenth(score),
		Reasons:     reasons,
	}
}

func textSimilarity(a, b models.Profile) float64 {
	vocab := BuildVocabulary(a.Bio, b.Bio, a.Headline, b.Headline)
	va := Vectorize(a.Bio+" "+a.Headline, vocab)
	vb := Vectorize(b.Bio+" "+b.Headline, vocab)
	return CosineSimilarity(va, vb)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
