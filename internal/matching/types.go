package matching

import "alumni-connect-workers/internal/models"

type MatchScore struct {
	CandidateID string   `json:"candidateId"`
	Score       float64  `json:"score"`
	Reasons     []string `json:"reasons"`
}

type RatingBreakdown struct {
	ProfileComplete bool `json:"profileComplete"`
	HasSkills       bool `json:"hasSkills"`
	HasBio          bool `json:"hasBio"`
	HasConnections  bool `json:"hasConnections"`
	HasActivity     bool `json:"hasActivity"`
}

type ProfileRating struct {
	UserID          string          `json:"userId"`
	OverallScore    int             `json:"overallScore"`
	Completeness    int             `json:"completeness"`
	Engagement      int             `json:"engagement"`
	Expertise       int             `json:"expertise"`
	NetworkStrength int             `json:"networkStrength"`
	Breakdown       RatingBreakdown `json:"breakdown"`
}

type Recommendations struct {
	ConnectWith     []MatchScore `json:"connectWith"`
	SimilarProfiles []MatchScore `json:"similarProfiles"`
	Mentors         []MatchScore `json:"mentors"`
}

type SkillStat struct {
	Skill      string `json:"skill"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type SkillTrendReport struct {
	PopulationSize int                 `json:"populationSize"`
	TopSkills      []SkillStat         `json:"topSkills"`
	EmergingSkills []SkillStat         `json:"emergingSkills"`
	SkillsByBranch map[string][]string `json:"skillsByBranch"`
}

type Explanation struct {
	CandidateID       string   `json:"candidateId"`
	Score             float64  `json:"score"`
	Quality           Quality  `json:"quality"`
	Reasons           []string `json:"reasons"`
	CommonSkills      []string `json:"commonSkills"`
	SkillsYouCanLearn []string `json:"skillsYouCanLearn"`
	SameBranch        bool     `json:"sameBranch"`
}

type JobMatch struct {
	Job            models.Job `json:"job"`
	MatchScore     int        `json:"matchScore"`
	MatchingSkills []string   `json:"matchingSkills"`
}

type EventMatch struct {
	Event      models.Event `json:"event"`
	MatchScore int          `json:"matchScore"`
}
