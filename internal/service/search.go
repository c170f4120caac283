package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/kmarchuk/lingua_school/internal/models"
)

var ErrSearchUnavailable = errors.New("search is unavailable")

type SearchService struct {
	ES *elasticsearch.Client
}

type SearchResults struct {
	Total int64
	Items []models.Lesson
}

func (s *SearchService) SearchLessons(ctx context.Context, query string, from, size int) (*SearchResults, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return &SearchResults{Total: 0, Items: []models.Lesson{}}, nil
	}
	if s.ES == nil {
		return nil, ErrSearchUnavailable
	}

	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     q,
				"fields":    []string{"title^2", "description", "body"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(LessonIndex),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("search error: " + res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Lesson `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	items := make([]models.Lesson, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source
	}

	return &SearchResults{Total: r.Hits.Total.Value, Items: items}, nil
}
