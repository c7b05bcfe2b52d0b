package matching

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`\W+`)

// minTokenLen is the shortest token kept; shorter ones are mostly stop words.
const minTokenLen = 3

// Tokenize lower-cases text, splits it on runs of non-word characters and
// drops tokens shorter than three characters.
func Tokenize(text string) []string {
	parts := nonWord.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) >= minTokenLen {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// BuildVocabulary returns the distinct tokens of all texts in first-seen order.
func BuildVocabulary(texts ...string) []string {
	tokens := Tokenize(strings.Join(texts, " "))
	seen := make(map[string]struct{}, len(tokens))
	vocab := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		vocab = append(vocab, t)
	}
	return vocab
}

// Vectorize maps text onto vocab as term frequencies. Text without any
// usable token yields a zero vector of len(vocab).
func Vectorize(text string, vocab []string) []float64 {
	vec := make([]float64, len(vocab))
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}

	total := float64(len(tokens))
	for i, term := range vocab {
		vec[i] = float64(counts[term]) / total
	}
	return vec
}
