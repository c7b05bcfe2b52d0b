package matching

// ConnectionsView is the trimmed form of Recommendations shown on a
// dashboard.
type ConnectionsView struct {
	TopMatches []MatchScore `json:"topMatches"`
	Mentors    []MatchScore `json:"mentors"`
	Peers      []MatchScore `json:"peers"`
}

type SkillsView struct {
	Trending      []SkillStat `json:"trending"`
	Emerging      []SkillStat `json:"emerging"`
	ForYourBranch []string    `json:"forYourBranch"`
}

func NewConnectionsView(r Recommendations) ConnectionsView {
	return ConnectionsView{
		TopMatches: head(r.ConnectWith, 5),
		Mentors:    head(r.Mentors, 3),
		Peers:      head(r.SimilarProfiles, 3),
	}
}

// NewSkillsView slices a trend report for one viewer. An empty or unknown
// branch yields an empty ForYourBranch.
func NewSkillsView(r SkillTrendReport, branch string) SkillsView {
	var forBranch []string
	if branch != "" {
		forBranch = r.SkillsByBranch[branch]
	}
	return SkillsView{
		Trending:      head(r.TopSkills, 10),
		Emerging:      head(r.EmergingSkills, 5),
		ForYourBranch: head(forBranch, 10),
	}
}
