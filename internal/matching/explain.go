package matching

import "alumni-connect-workers/internal/models"

// Quality buckets a match score for display.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityModerate  Quality = "moderate"
	QualityBasic     Quality = "basic"
)

const learnableSkillsLimit = 5

func MatchQuality(score float64) Quality {
	switch {
	case score >= 80:
		return QualityExcellent
	case score >= 60:
		return QualityGood
	case score >= 40:
		return QualityModerate
	default:
		return QualityBasic
	}
}

// Explain scores one pair and spells out what the two profiles share and
// what the candidate could teach.
func Explain(requester, candidate models.Profile) Explanation {
	m := Score(requester, candidate)

	learnable := missingSkills(requester.Skills, candidate.Skills)
	if len(learnable) > learnableSkillsLimit {
		learnable = learnable[:learnableSkillsLimit]
	}

	common := commonSkills(requester.Skills, candidate.Skills)
	if common == nil {
		common = []string{}
	}
	if learnable == nil {
		learnable = []string{}
	}

	return Explanation{
		CandidateID:       candidate.ID,
		Score:             m.Score,
		Quality:           MatchQuality(m.Score),
		Reasons:           m.Reasons,
		CommonSkills:      common,
		SkillsYouCanLearn: learnable,
		SameBranch:        sameBranch(requester.Branch, candidate.Branch),
	}
}
