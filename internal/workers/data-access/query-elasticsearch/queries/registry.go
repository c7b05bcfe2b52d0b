// internal/workers/data-access/query-elasticsearch/queries/registry.go
package queries

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"alumni-connect-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/goccy/go-json"
)

var (
	ErrIndexNotFound = errors.New("index not found")
	ErrTransport     = errors.New("elasticsearch unreachable")
)

type QueryResult struct {
	Profiles  []models.Profile
	TotalHits int64
	MaxScore  float64
	Took      int64
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		MaxScore *float64 `json:"max_score"`
		Hits     []struct {
			ID     string         `json:"_id"`
			Source models.Profile `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func Execute(ctx context.Context, esClient *elasticsearch.Client, q ProfileQuery) (*QueryResult, error) {
	body, err := BuildBody(q)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	from, size := q.Page()
	req := esapi.SearchRequest{
		Index: []string{q.Index},
		Body:  bytes.NewReader(payload),
		From:  &from,
		Size:  &size,
	}

	start := time.Now()
	res, err := req.Do(ctx, esClient)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, q.Index)
	}
	if res.IsError() {
		return nil, fmt.Errorf("search query failed: %s", res.String())
	}

	var r searchResponse
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	result := &QueryResult{
		Profiles:  make([]models.Profile, 0, len(r.Hits.Hits)),
		TotalHits: r.Hits.Total.Value,
		Took:      time.Since(start).Milliseconds(),
	}
	if r.Hits.MaxScore != nil {
		result.MaxScore = *r.Hits.MaxScore
	}
	for _, hit := range r.Hits.Hits {
		p := hit.Source
		if p.ID == "" {
			p.ID = hit.ID
		}
		result.Profiles = append(result.Profiles, p)
	}
	return result, nil
}
