package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/config"
)

type capturingSearcher struct {
	params  SearchParams
	results []WebResult
	err     error
}

func (s *capturingSearcher) Search(_ context.Context, params SearchParams) ([]WebResult, error) {
	s.params = params
	return s.results, s.err
}

func TestDeriveSearchParams(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, p SearchParams)
	}{
		{
			name:  "plain query",
			query: "lithium cathode chemistry",
			check: func(t *testing.T, p SearchParams) {
				assert.Empty(t, p.FromDate)
				assert.Empty(t, p.ToDate)
				assert.Empty(t, p.IncludeDomains)
				assert.Equal(t, DepthStandard, p.Depth)
			},
		},
		{
			name:  "last N years",
			query: "battery advances in the last 5 years",
			check: func(t *testing.T, p SearchParams) {
				assert.Equal(t, "2021-03-01", p.FromDate)
				assert.Empty(t, p.ToDate)
			},
		},
		{
			name:  "past N years",
			query: "progress over the past 3 years",
			check: func(t *testing.T, p SearchParams) {
				assert.Equal(t, "2023-03-01", p.FromDate)
			},
		},
		{
			name:  "since year",
			query: "grid storage deployments since 2020",
			check: func(t *testing.T, p SearchParams) {
				assert.Equal(t, "2020-01-01", p.FromDate)
				assert.Empty(t, p.ToDate)
			},
		},
		{
			name:  "between years",
			query: "funding rounds between 2018 and 2022",
			check: func(t *testing.T, p SearchParams) {
				assert.Equal(t, "2018-01-01", p.FromDate)
				assert.Equal(t, "2022-12-31", p.ToDate)
			},
		},
		{
			name:  "recent",
			query: "recent developments in sodium-ion cells",
			check: func(t *testing.T, p SearchParams) {
				assert.Equal(t, "2024-03-01", p.FromDate)
			},
		},
		{
			name:  "academic hint",
			query: "peer-reviewed studies on electrolyte additives",
			check: func(t *testing.T, p SearchParams) {
				assert.Contains(t, p.IncludeDomains, "arxiv.org")
			},
		},
		{
			name:  "medical hint",
			query: "clinical outcomes for patients on the new treatment",
			check: func(t *testing.T, p SearchParams) {
				assert.Contains(t, p.IncludeDomains, "pubmed.ncbi.nlm.nih.gov")
			},
		},
		{
			name:  "news hint",
			query: "news about the merger announcement",
			check: func(t *testing.T, p SearchParams) {
				assert.Contains(t, p.IncludeDomains, "reuters.com")
			},
		},
		{
			name:  "verbosity hint switches to advanced depth",
			query: "a comprehensive overview of flow batteries",
			check: func(t *testing.T, p SearchParams) {
				assert.Equal(t, DepthAdvanced, p.Depth)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DeriveSearchParams(tt.query, 5, now)
			assert.Equal(t, tt.query, p.Query)
			tt.check(t, p)
		})
	}
}

func TestDeriveSearchParams_AdvancedDoublesResults(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p := DeriveSearchParams("an in-depth report on hydrogen storage", 5, now)
	assert.Equal(t, DepthAdvanced, p.Depth)
	assert.Equal(t, 10, p.MaxResults)
}

func TestTavilySearcher_Search(t *testing.T) {
	var gotReq tavilyRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"url":            "https://example.org/a",
					"title":          "Result A",
					"content":        "snippet a",
					"score":          0.91,
					"published_date": "2025-06-01",
				},
				{
					"url":     "https://example.org/b",
					"title":   "Result B",
					"content": "snippet b",
					"score":   0.55,
				},
			},
		})
	}))
	defer server.Close()

	t.Setenv("TEST_SEARCH_KEY", "secret")
	s := NewTavilySearcher(&config.WebSearchConfig{
		Provider:   "tavily",
		APIKeyEnv:  "TEST_SEARCH_KEY",
		BaseURL:    server.URL,
		MaxResults: 5,
	})

	results, err := s.Search(context.Background(), SearchParams{
		Query:          "solid state batteries",
		Depth:          DepthAdvanced,
		FromDate:       "2020-01-01",
		IncludeDomains: []string{"arxiv.org"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "solid state batteries", gotReq.Query)
	assert.Equal(t, "advanced", gotReq.SearchDepth)
	assert.Equal(t, "2020-01-01", gotReq.StartDate)
	assert.Equal(t, []string{"arxiv.org"}, gotReq.IncludeDomains)
	// Unspecified max_results falls back to the configured cap.
	assert.Equal(t, 5, gotReq.MaxResults)

	require.Len(t, results, 2)
	assert.Equal(t, "https://example.org/a", results[0].URL)
	assert.Equal(t, "Result A", results[0].Title)
	assert.Equal(t, "snippet a", results[0].Snippet)
	assert.Equal(t, "2025-06-01", results[0].Published)
	assert.InDelta(t, 0.91, results[0].Score, 0.001)
	assert.Empty(t, results[1].Published)
}

func TestTavilySearcher_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	t.Setenv("TEST_SEARCH_KEY", "secret")
	s := NewTavilySearcher(&config.WebSearchConfig{
		APIKeyEnv: "TEST_SEARCH_KEY",
		BaseURL:   server.URL,
	})

	_, err := s.Search(context.Background(), SearchParams{Query: "anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
}

func TestTavilySearcher_MissingAPIKey(t *testing.T) {
	s := NewTavilySearcher(&config.WebSearchConfig{APIKeyEnv: "DEFINITELY_UNSET_SEARCH_KEY"})
	_, err := s.Search(context.Background(), SearchParams{Query: "anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestTavilySearcher_EmptyQuery(t *testing.T) {
	t.Setenv("TEST_SEARCH_KEY", "secret")
	s := NewTavilySearcher(&config.WebSearchConfig{APIKeyEnv: "TEST_SEARCH_KEY"})
	_, err := s.Search(context.Background(), SearchParams{Query: "   "})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestWebSearchTool_PassesExplicitParams(t *testing.T) {
	backend := &capturingSearcher{results: []WebResult{{URL: "https://example.org"}}}
	tool := NewWebSearchTool(backend)

	result, err := tool.Execute(context.Background(), "mission-1", map[string]any{
		"query":           "flow batteries",
		"max_results":     float64(8),
		"from_date":       "2021-01-01",
		"to_date":         "2023-12-31",
		"depth":           DepthAdvanced,
		"include_domains": []any{"arxiv.org", "jstor.org"},
		"exclude_domains": []any{"pinterest.com"},
	})
	require.NoError(t, err)
	require.Len(t, result.([]WebResult), 1)

	assert.Equal(t, "flow batteries", backend.params.Query)
	assert.Equal(t, 8, backend.params.MaxResults)
	assert.Equal(t, "2021-01-01", backend.params.FromDate)
	assert.Equal(t, "2023-12-31", backend.params.ToDate)
	assert.Equal(t, DepthAdvanced, backend.params.Depth)
	assert.Equal(t, []string{"arxiv.org", "jstor.org"}, backend.params.IncludeDomains)
	assert.Equal(t, []string{"pinterest.com"}, backend.params.ExcludeDomains)
}

func TestWebSearchTool_RequiresQuery(t *testing.T) {
	tool := NewWebSearchTool(&capturingSearcher{})
	_, err := tool.Execute(context.Background(), "mission-1", map[string]any{})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestIntelligentWebSearchTool_DerivesParams(t *testing.T) {
	backend := &capturingSearcher{}
	tool := &intelligentWebSearchTool{
		searcher: backend,
		now:      func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) },
	}

	_, err := tool.Execute(context.Background(), "mission-1", map[string]any{
		"query":       "peer-reviewed battery research since 2020",
		"max_results": float64(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "2020-01-01", backend.params.FromDate)
	assert.Contains(t, backend.params.IncludeDomains, "arxiv.org")
	assert.Equal(t, 5, backend.params.MaxResults)
}
