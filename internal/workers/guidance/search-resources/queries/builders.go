// internal/workers/guidance/search-resources/queries/builders.go
package queries

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

var (
	ErrMissingIndex = errors.New("index name is required")
)

// ResourceQuery describes one search over the guidance resource index.
type ResourceQuery struct {
	Index      string
	Keywords   string
	Tags       []string
	Level      string
	Type       string
	Pagination struct {
		From int
		Size int
	}
}

// BuildQuery assembles the search request. Free-text keywords go through a
// boosted multi_match; tags, level and type are exact filters.
func BuildQuery(rq ResourceQuery) (*esapi.SearchRequest, error) {
	if rq.Index == "" {
		return nil, ErrMissingIndex
	}

	queryBody := buildResourceSearchQuery(rq)
	body, _ := json.Marshal(queryBody)

	req := esapi.SearchRequest{
		Index: []string{rq.Index},
		Body:  strings.NewReader(string(body)),
		From:  &rq.Pagination.From,
		Size:  &rq.Pagination.Size,
	}

	return &req, nil
}

func buildResourceSearchQuery(rq ResourceQuery) map[string]interface{} {
	mustClauses := []interface{}{}
	filterClauses := []interface{}{}

	if rq.Keywords != "" {
		mustClauses = append(mustClauses, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  rq.Keywords,
				"fields": []string{"title^3", "description^2", "tags"},
				"type":   "best_fields",
			},
		})
	}

	if len(rq.Tags) > 0 {
		filterClauses = append(filterClauses, map[string]interface{}{
			"terms": map[string]interface{}{"tags": rq.Tags},
		})
	}

	if rq.Level != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"level": rq.Level},
		})
	}

	if rq.Type != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"type": rq.Type},
		})
	}

	boolQuery := map[string]interface{}{}
	if len(mustClauses) > 0 {
		boolQuery["must"] = mustClauses
	} else {
		boolQuery["must"] = []interface{}{
			map[string]interface{}{"match_all": map[string]interface{}{}},
		}
	}
	if len(filterClauses) > 0 {
		boolQuery["filter"] = filterClauses
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": boolQuery,
		},
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"title.keyword": map[string]interface{}{"order": "asc", "unmapped_type": "keyword"}},
		},
	}
}
