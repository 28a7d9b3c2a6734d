// internal/workers/guidance/search-resources/queries/registry.go
package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"career-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type QueryResult struct {
	Resources []models.Resource
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
			Source models.Resource `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Execute runs one resource search and decodes the hit sources.
func Execute(ctx context.Context, esClient *elasticsearch.Client, rq ResourceQuery) (*QueryResult, error) {
	if rq.Pagination.Size < 1 {
		rq.Pagination.Size = defaultPageSize
	}
	if rq.Pagination.Size > maxPageSize {
		rq.Pagination.Size = maxPageSize
	}

	req, err := BuildQuery(rq)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := req.Do(ctx, esClient)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search query failed: %s", res.String())
	}

	var r searchResponse
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	resources := make([]models.Resource, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		resources = append(resources, hit.Source)
	}

	maxScore := 0.0
	if r.Hits.MaxScore != nil {
		maxScore = *r.Hits.MaxScore
	}

	return &QueryResult{
		Resources: resources,
		TotalHits: r.Hits.Total.Value,
		MaxScore:  maxScore,
		Took:      time.Since(start).Milliseconds(),
	}, nil
}
