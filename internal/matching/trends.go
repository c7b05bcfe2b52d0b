package matching

import (
	"math"
	"sort"
	"strings"

	"alumni-connect-workers/internal/models"
)

const (
	topSkillsLimit = 20

	emergingMinPercent = 10
	emergingMaxPercent = 30
)

// AnalyzeTrends counts skills across the population. Counting is
// case-insensitive while the per-branch sets keep the casing first seen.
func AnalyzeTrends(population []models.Profile) SkillTrendReport {
	counts := make(map[string]int)
	var order []string

	byBranch := make(map[string][]string)
	branchSeen := make(map[string]map[string]struct{})

	for _, p := range population {
		for _, skill := range p.Skills {
			key := strings.ToLower(skill)
			if _, ok := counts[key]; !ok {
				order = append(order, key)
			}
			counts[key]++

			if p.Branch == "" {
				continue
			}
			seen, ok := branchSeen[p.Branch]
			if !ok {
				seen = make(map[string]struct{})
				branchSeen[p.Branch] = seen
			}
			if _, dup := seen[skill]; !dup {
				seen[skill] = struct{}{}
				byBranch[p.Branch] = append(byBranch[p.Branch], skill)
			}
		}
	}

	total := len(population)
	stats := make([]SkillStat, 0, len(order))
	for _, skill := range order {
		stats = append(stats, SkillStat{
			Skill:      skill,
			Count:      counts[skill],
			Percentage: percentage(counts[skill], total),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	if len(stats) > topSkillsLimit {
		stats = stats[:topSkillsLimit]
	}

	emerging := []SkillStat{}
	for _, s := range stats {
		if s.Percentage >= emergingMinPercent && s.Percentage <= emergingMaxPercent {
			emerging = append(emerging, s)
		}
	}

	return SkillTrendReport{
		PopulationSize: total,
		TopSkills:      stats,
		EmergingSkills: emerging,
		SkillsByBranch: byBranch,
	}
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
