package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-connect-workers/internal/models"
)

func TestAnalyzeTrends(t *testing.T) {
	population := []models.Profile{
		{ID: "1", Role: models.RoleStudent, Branch: "CS", Skills: []string{"Python", "Go"}},
		{ID: "2", Role: models.RoleStudent, Branch: "CS", Skills: []string{"python", "SQL"}},
		{ID: "3", Role: models.RoleAlumni, Branch: "EE", Skills: []string{"Python"}},
		{ID: "4", Role: models.RoleAlumni, Skills: []string{"Go"}},
		{ID: "5", Role: models.RoleFaculty},
	}

	report := AnalyzeTrends(population)

	assert.Equal(t, 5, report.PopulationSize)
	assert.Equal(t, []SkillStat{
		{Skill: "python", Count: 3, Percentage: 60},
		{Skill: "go", Count: 2, Percentage: 40},
		{Skill: "sql", Count: 1, Percentage: 20},
	}, report.TopSkills)
	assert.Equal(t, []SkillStat{{Skill: "sql", Count: 1, Percentage: 20}}, report.EmergingSkills)
	assert.Equal(t, map[string][]string{
		"CS": {"Python", "Go", "python", "SQL"},
		"EE": {"Python"},
	}, report.SkillsByBranch)
}

func TestAnalyzeTrends_EmptyPopulation(t *testing.T) {
	report := AnalyzeTrends(nil)

	assert.Equal(t, 0, report.PopulationSize)
	assert.Empty(t, report.TopSkills)
	assert.Empty(t, report.EmergingSkills)
	assert.Empty(t, report.SkillsByBranch)
}

func TestAnalyzeTrends_CapsTopSkills(t *testing.T) {
	var skills []string
	for i := 0; i < 25; i++ {
		skills = append(skills, fmt.Sprintf("skill-%02d", i))
	}
	report := AnalyzeTrends([]models.Profile{{ID: "1", Role: models.RoleStudent, Skills: skills}})

	require.Len(t, report.TopSkills, 20)
	assert.Equal(t, "skill-00", report.TopSkills[0].Skill)
	assert.Equal(t, "skill-19", report.TopSkills[19].Skill)
}

func TestAnalyzeTrends_EmergingBoundaries(t *testing.T) {
	population := make([]models.Profile, 10)
	for i := range population {
		population[i] = models.Profile{ID: fmt.Sprint(i), Role: models.RoleStudent}
	}
	population[0].Skills = []string{"ten", "thirty", "forty"}
	population[1].Skills = []string{"thirty", "forty"}
	population[2].Skills = []string{"thirty", "forty"}
	population[3].Skills = []string{"forty"}

	report := AnalyzeTrends(population)

	var emerging []string
	for _, s := range report.EmergingSkills {
		emerging = append(emerging, s.Skill)
	}
	assert.ElementsMatch(t, []string{"ten", "thirty"}, emerging)
}

func TestSkillsView(t *testing.T) {
	report := AnalyzeTrends([]models.Profile{
		{ID: "1", Role: models.RoleStudent, Branch: "CS", Skills: []string{"Go", "SQL"}},
	})

	view := NewSkillsView(report, "CS")
	assert.Equal(t, []string{"Go", "SQL"}, view.ForYourBranch)
	assert.Len(t, view.Trending, 2)

	assert.Empty(t, NewSkillsView(report, "").ForYourBranch)
	assert.NotNil(t, NewSkillsView(report, "Unknown").ForYourBranch)
}
