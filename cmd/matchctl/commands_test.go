package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

var (
	student = models.Profile{ID: "u1", Role: models.RoleStudent, Branch: "CS", Skills: []string{"Python", "SQL"}}
	mentor  = models.Profile{ID: "u2", Role: models.RoleAlumni, Branch: "CS", Skills: []string{"Python", "Java"}}
	peer    = models.Profile{ID: "u3", Role: models.RoleStudent, Branch: "EE", Skills: []string{"Circuits"}}
)

func TestMatchCommand(t *testing.T) {
	requester := writeFile(t, "requester.json", student)
	candidates := writeFile(t, "candidates.json", []models.Profile{peer, mentor})

	out, err := runCLI(t, "match", "--requester", requester, "--candidates", candidates)
	require.NoError(t, err)

	var scores []matching.MatchScore
	decode(t, out, &scores)
	require.Len(t, scores, 2)
	assert.Equal(t, "u2", scores[0].CandidateID)
	assert.Equal(t, 53.3, scores[0].Score)
	assert.Equal(t, []string{"1 common skills: Python", "Same branch: CS", "Alumni mentor available"}, scores[0].Reasons)
}

func TestMatchCommand_LimitAndOutFile(t *testing.T) {
	requester := writeFile(t, "requester.json", student)
	candidates := writeFile(t, "candidates.json", []models.Profile{peer, mentor})
	outFile := filepath.Join(t.TempDir(), "scores.json")

	stdout, err := runCLI(t, "match", "-r", requester, "-c", candidates, "-n", "1", "-o", outFile)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var scores []matching.MatchScore
	decode(t, string(data), &scores)
	require.Len(t, scores, 1)
	assert.Equal(t, "u2", scores[0].CandidateID)
}

func TestMatchCommand_Errors(t *testing.T) {
	requester := writeFile(t, "requester.json", student)
	duplicates := writeFile(t, "dup.json", []models.Profile{mentor, mentor})
	noRole := writeFile(t, "norole.json", models.Profile{ID: "u9"})

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing candidates flag",
			args:    []string{"match", "--requester", requester},
			wantErr: `required flag(s) "candidates" not set`,
		},
		{
			name:    "missing file",
			args:    []string{"match", "--requester", filepath.Join(t.TempDir(), "nope.json"), "--candidates", duplicates},
			wantErr: "read ",
		},
		{
			name:    "duplicate candidates",
			args:    []string{"match", "--requester", requester, "--candidates", duplicates},
			wantErr: "duplicate profile id",
		},
		{
			name:    "requester without role",
			args:    []string{"match", "--requester", noRole, "--candidates", duplicates},
			wantErr: "Role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExplainCommand(t *testing.T) {
	requester := writeFile(t, "requester.json", student)
	candidate := writeFile(t, "candidate.json", mentor)

	out, err := runCLI(t, "explain", "--requester", requester, "--candidate", candidate)
	require.NoError(t, err)

	var exp matching.Explanation
	decode(t, out, &exp)
	assert.Equal(t, "u2", exp.CandidateID)
	assert.Equal(t, matching.QualityModerate, exp.Quality)
	assert.Equal(t, []string{"Python"}, exp.CommonSkills)
	assert.Equal(t, []string{"Java"}, exp.SkillsYouCanLearn)
	assert.True(t, exp.SameBranch)
}

func TestExplainCommand_SameProfile(t *testing.T) {
	requester := writeFile(t, "requester.json", student)

	_, err := runCLI(t, "explain", "--requester", requester, "--candidate", requester)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same profile")
}

func TestRateCommand(t *testing.T) {
	profile := writeFile(t, "profile.json", models.Profile{ID: "x", Name: "X", Role: models.RoleStudent})

	out, err := runCLI(t, "rate", "--profile", profile)
	require.NoError(t, err)

	var got rateOutput
	decode(t, out, &got)
	assert.Equal(t, 5, got.OverallScore)
	assert.Equal(t, 5, got.Completeness)
	assert.NotEmpty(t, got.Insights)
}

func TestRateCommand_WithCounters(t *testing.T) {
	profile := writeFile(t, "profile.json", models.Profile{ID: "u5", Role: models.RoleAlumni})
	counters := writeFile(t, "counters.json", models.ActivityCounters{Connections: 6})

	out, err := runCLI(t, "rate", "--profile", profile, "--counters", counters)
	require.NoError(t, err)

	var got rateOutput
	decode(t, out, &got)
	assert.Equal(t, 22, got.OverallScore)
	assert.Equal(t, 17, got.NetworkStrength)
	assert.True(t, got.Breakdown.HasConnections)
}

func TestRateCommand_NegativeCounters(t *testing.T) {
	profile := writeFile(t, "profile.json", models.Profile{ID: "u5", Role: models.RoleAlumni})
	counters := writeFile(t, "counters.json", models.ActivityCounters{Posts: -1})

	_, err := runCLI(t, "rate", "--profile", profile, "--counters", counters)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Posts")
}

func TestRecommendCommand(t *testing.T) {
	requester := writeFile(t, "requester.json", student)
	pool := writeFile(t, "pool.json", []models.Profile{student, mentor, peer})

	out, err := runCLI(t, "recommend", "--requester", requester, "--pool", pool)
	require.NoError(t, err)

	var recs matching.Recommendations
	decode(t, out, &recs)
	require.Len(t, recs.ConnectWith, 2)
	assert.Equal(t, "u2", recs.ConnectWith[0].CandidateID)
	require.Len(t, recs.Mentors, 1)
	assert.Equal(t, "u2", recs.Mentors[0].CandidateID)
	require.Len(t, recs.SimilarProfiles, 1)
	assert.Equal(t, "u3", recs.SimilarProfiles[0].CandidateID)
}

func TestRecommendCommand_ExcludeAndView(t *testing.T) {
	requester := writeFile(t, "requester.json", student)
	pool := writeFile(t, "pool.json", []models.Profile{mentor, peer})

	out, err := runCLI(t, "recommend", "-r", requester, "-p", pool, "--exclude", "u2", "--view")
	require.NoError(t, err)

	var view matching.ConnectionsView
	decode(t, out, &view)
	require.Len(t, view.TopMatches, 1)
	assert.Equal(t, "u3", view.TopMatches[0].CandidateID)
	assert.Empty(t, view.Mentors)
	assert.Len(t, view.Peers, 1)
}

func TestTrendsCommand(t *testing.T) {
	population := writeFile(t, "population.json", []models.Profile{student, mentor, peer})

	out, err := runCLI(t, "trends", "--population", population)
	require.NoError(t, err)

	var report matching.SkillTrendReport
	decode(t, out, &report)
	assert.Equal(t, 3, report.PopulationSize)
	require.NotEmpty(t, report.TopSkills)
	assert.Equal(t, "python", report.TopSkills[0].Skill)
	assert.Equal(t, 2, report.TopSkills[0].Count)
	assert.Equal(t, 67, report.TopSkills[0].Percentage)
}

func TestTrendsCommand_BranchView(t *testing.T) {
	population := writeFile(t, "population.json", []models.Profile{student, mentor, peer})

	out, err := runCLI(t, "trends", "-p", population, "-b", "EE")
	require.NoError(t, err)

	var view matching.SkillsView
	decode(t, out, &view)
	assert.Equal(t, []string{"Circuits"}, view.ForYourBranch)
	assert.NotEmpty(t, view.Trending)
}
