package queries

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownQueryType = errors.New("unknown query type")
	ErrMissingIndex     = errors.New("index name is required")
	ErrMissingParam     = errors.New("missing required parameter")
)

const (
	QueryTypeProfileSearch   = "profile_search"
	QueryTypeSimilarProfiles = "similar_profiles"
)

const (
	defaultSize = 20
	maxSize     = 100
)

var searchFields = []string{"skills^3", "headline^2", "bio", "name"}

// ProfileQuery describes one search against the profile index.
type ProfileQuery struct {
	Index      string
	QueryType  string
	Parameters map[string]interface{}
	From       int
	Size       int
}

// Page clamps Size into [1, 100], defaulting to 20, and From to >= 0.
func (q ProfileQuery) Page() (from, size int) {
	from, size = q.From, q.Size
	if from < 0 {
		from = 0
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	return from, size
}

// BuildBody returns the search body for q.
func BuildBody(q ProfileQuery) (map[string]interface{}, error) {
	if q.Index == "" {
		return nil, ErrMissingIndex
	}

	switch q.QueryType {
	case QueryTypeProfileSearch:
		return buildProfileSearchQuery(q), nil
	case QueryTypeSimilarProfiles:
		return buildSimilarProfilesQuery(q)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownQueryType, q.QueryType)
	}
}

func buildProfileSearchQuery(q ProfileQuery) map[string]interface{} {
	mustClauses := []interface{}{}
	filterClauses := []interface{}{
		map[string]interface{}{"term": map[string]interface{}{"status": "approved"}},
	}
	mustNotClauses := []interface{}{}

	if text, ok := q.Parameters["query"].(string); ok && text != "" {
		mustClauses = append(mustClauses, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  text,
				"fields": searchFields,
				"type":   "best_fields",
			},
		})
	}
	if len(mustClauses) == 0 {
		mustClauses = append(mustClauses, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	for _, field := range []string{"branch", "role"} {
		if v, ok := q.Parameters[field].(string); ok && v != "" {
			filterClauses = append(filterClauses, map[string]interface{}{
				"term": map[string]interface{}{field: v},
			})
		}
	}

	if skills := stringList(q.Parameters["skills"]); len(skills) > 0 {
		filterClauses = append(filterClauses, map[string]interface{}{
			"terms": map[string]interface{}{"skills": skills},
		})
	}

	if id, ok := q.Parameters["excludeUserId"].(string); ok && id != "" {
		mustNotClauses = append(mustNotClauses, map[string]interface{}{
			"ids": map[string]interface{}{"values": []string{id}},
		})
	}

	boolQuery := map[string]interface{}{
		"must":   mustClauses,
		"filter": filterClauses,
	}
	if len(mustNotClauses) > 0 {
		boolQuery["must_not"] = mustNotClauses
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": boolQuery,
		},
	}
}

// buildSimilarProfilesQuery finds profiles whose text resembles the indexed
// document of userId. The source document itself is never returned.
func buildSimilarProfilesQuery(q ProfileQuery) (map[string]interface{}, error) {
	userID, ok := q.Parameters["userId"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("%w: userId", ErrMissingParam)
	}

	filterClauses := []interface{}{
		map[string]interface{}{"term": map[string]interface{}{"status": "approved"}},
	}
	if branch, ok := q.Parameters["branch"].(string); ok && branch != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"branch": branch},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"more_like_this": map[string]interface{}{
							"fields": []string{"headline", "bio", "skills"},
							"like": []map[string]interface{}{
								{"_index": q.Index, "_id": userID},
							},
							"min_term_freq":   1,
							"max_query_terms": 12,
							"min_doc_freq":    1,
							"min_word_length": 2,
						},
					},
				},
				"filter": filterClauses,
			},
		},
	}, nil
}

func stringList(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
