package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-connect-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func profile(id string, role models.Role, branch string, skills ...string) models.Profile {
	return models.Profile{ID: id, Name: "User " + id, Role: role, Branch: branch, Skills: skills}
}

func candidateIDs(matches []MatchScore) []string {
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.CandidateID
	}
	return ids
}

// ==========================
// Pairwise Scoring
// ==========================

func TestScore_StudentAlumniSameBranch(t *testing.T) {
	requester := profile("1", models.RoleStudent, "CS", "Python", "SQL")
	candidate := profile("2", models.RoleAlumni, "CS", "Python", "Java")

	m := Score(requester, candidate)

	assert.Equal(t, "2", m.CandidateID)
	assert.Equal(t, 53.3, m.Score)
	assert.Equal(t, []string{
		"1 common skills: Python",
		"Same branch: CS",
		"Alumni mentor available",
	}, m.Reasons)
}

func TestScore_IdenticalTextOnly(t *testing.T) {
	bio := "Building distributed systems and streaming data pipelines"
	requester := models.Profile{ID: "1", Role: models.RoleFaculty, Bio: bio, Headline: "Backend engineer"}
	candidate := models.Profile{ID: "2", Role: models.RoleAdmin, Bio: bio, Headline: "Backend engineer"}

	m := Score(requester, candidate)

	assert.Equal(t, 20.0, m.Score)
	assert.Equal(t, []string{"Similar interests and background"}, m.Reasons)
}

func TestScore_Factors(t *testing.T) {
	tests := []struct {
		name      string
		requester models.Profile
		candidate models.Profile
		score     float64
		reasons   []string
	}{
		{
			name:      "nothing in common",
			requester: profile("1", models.RoleStudent, "CS", "Go"),
			candidate: profile("2", models.RoleFaculty, "EE", "Rust"),
			score:     0,
			reasons:   []string{},
		},
		{
			name:      "alumni to student",
			requester: profile("1", models.RoleAlumni, ""),
			candidate: profile("2", models.RoleStudent, ""),
			score:     15,
			reasons:   []string{"Student seeking guidance"},
		},
		{
			name:      "peers",
			requester: profile("1", models.RoleFaculty, ""),
			candidate: profile("2", models.RoleFaculty, ""),
			score:     10,
			reasons:   []string{"Peer connection"},
		},
		{
			name:      "unknown roles that match are peers",
			requester: profile("1", "recruiter", ""),
			candidate: profile("2", "recruiter", ""),
			score:     10,
			reasons:   []string{"Peer connection"},
		},
		{
			name:      "branch compare ignores case and reports requester casing",
			requester: profile("1", models.RoleStudent, "cs"),
			candidate: profile("2", models.RoleFaculty, "CS"),
			score:     20,
			reasons:   []string{"Same branch: cs"},
		},
		{
			name:      "one missing branch earns nothing",
			requester: profile("1", models.RoleStudent, ""),
			candidate: profile("2", models.RoleFaculty, ""),
			score:     0,
			reasons:   []string{},
		},
		{
			name:      "skill examples capped at three",
			requester: profile("1", models.RoleStudent, "", "Go", "SQL", "Docker", "AWS"),
			candidate: profile("2", models.RoleFaculty, "", "aws", "docker", "sql", "go"),
			score:     40,
			reasons:   []string{"4 common skills: Go, SQL, Docker"},
		},
		{
			name:      "low skill overlap adds points but no reason",
			requester: profile("1", models.RoleStudent, "", "Go", "SQL", "Docker"),
			candidate: profile("2", models.RoleFaculty, "", "Go", "Rust", "Java", "C"),
			score:     6.7,
			reasons:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Score(tt.requester, tt.candidate)
			assert.Equal(t, tt.score, m.Score)
			assert.Equal(t, tt.reasons, m.Reasons)
		})
	}
}

func TestScore_TextNeedsBothBios(t *testing.T) {
	requester := models.Profile{ID: "1", Role: models.RoleStudent, Bio: "Passionate about machine learning", Headline: "ML student"}
	candidate := models.Profile{ID: "2", Role: models.RoleFaculty, Headline: "ML student"}

	m := Score(requester, candidate)
	assert.Equal(t, 0.0, m.Score)
	assert.Empty(t, m.Reasons)
}

func TestScore_UnrelatedBiosEarnNothing(t *testing.T) {
	requester := models.Profile{ID: "1", Role: models.RoleStudent, Bio: "Passionate about machine learning"}
	candidate := models.Profile{ID: "2", Role: models.RoleFaculty, Bio: "Enjoys painting watercolor landscapes"}

	m := Score(requester, candidate)
	assert.Equal(t, 0.0, m.Score)
	assert.Empty(t, m.Reasons)
}

// ==========================
// Ranking
// ==========================

func TestMatch_SkipsRequesterAndSortsStable(t *testing.T) {
	requester := profile("s0", models.RoleStudent, "")
	candidates := []models.Profile{
		profile("f1", models.RoleFaculty, ""),
		profile("a1", models.RoleAlumni, ""),
		profile("s0", models.RoleStudent, ""),
		profile("s1", models.RoleStudent, ""),
		profile("f2", models.RoleFaculty, ""),
	}

	matches := Match(requester, candidates)

	require.Len(t, matches, 4)
	assert.Equal(t, []string{"a1", "s1", "f1", "f2"}, candidateIDs(matches))
	assert.Equal(t, 20.0, matches[0].Score)
	assert.Equal(t, 10.0, matches[1].Score)
}

func TestMatch_EmptyPool(t *testing.T) {
	matches := Match(profile("1", models.RoleStudent, ""), nil)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestRoleAffinity(t *testing.T) {
	points, reason := RoleAffinity(models.RoleStudent, models.RoleAlumni)
	assert.Equal(t, 20.0, points)
	assert.Equal(t, "Alumni mentor available", reason)

	points, reason = RoleAffinity(models.RoleAdmin, models.RoleStudent)
	assert.Equal(t, 0.0, points)
	assert.Empty(t, reason)
}
