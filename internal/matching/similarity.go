package matching

import (
	"math"
	"strings"
)

// CosineSimilarity returns dot(a,b)/(|a|*|b|). Vectors of different length
// and zero vectors yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// JaccardSimilarity compares two skill sets case-insensitively. Two empty
// sets yield 0.
func JaccardSimilarity(a, b []string) float64 {
	setA := lowerSet(a)
	setB := lowerSet(b)

	union := len(setA)
	intersection := 0
	for s := range setB {
		if _, ok := setA[s]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

// commonSkills returns the entries of mine that also appear in theirs,
// compared case-insensitively, keeping mine's casing and order.
func commonSkills(mine, theirs []string) []string {
	other := lowerSet(theirs)
	var out []string
	for _, s := range mine {
		if _, ok := other[strings.ToLower(s)]; ok {
			out = append(out, s)
		}
	}
	return out
}

// missingSkills returns the entries of theirs that mine lacks, keeping
// theirs' casing and order without repeats.
func missingSkills(mine, theirs []string) []string {
	have := lowerSet(mine)
	var out []string
	for _, s := range theirs {
		key := strings.ToLower(s)
		if _, ok := have[key]; ok {
			continue
		}
		have[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func sameBranch(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}
