package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/maestro-research/maestro/pkg/config"
)

// Search depths. Standard is a fast single-pass search; advanced trades
// latency for deeper crawling.
const (
	DepthStandard = "standard"
	DepthAdvanced = "advanced"
)

// SearchParams are the resolved inputs to one web search call.
type SearchParams struct {
	Query          string
	MaxResults     int
	FromDate       string // YYYY-MM-DD
	ToDate         string // YYYY-MM-DD
	IncludeDomains []string
	ExcludeDomains []string
	Depth          string
}

// WebResult is one scored search hit.
type WebResult struct {
	URL       string  `json:"url"`
	Title     string  `json:"title"`
	Snippet   string  `json:"snippet"`
	Published string  `json:"published,omitempty"`
	Score     float64 `json:"score"`
}

// Searcher is the web search backend contract.
type Searcher interface {
	Search(ctx context.Context, params SearchParams) ([]WebResult, error)
}

// --- Tavily backend ---

const tavilyEndpoint = "https://api.tavily.com/search"

// TavilySearcher talks to the Tavily search API.
type TavilySearcher struct {
	apiKey     string
	endpoint   string
	maxResults int
	httpClient *http.Client
}

// NewTavilySearcher builds the Tavily backend from configuration.
func NewTavilySearcher(cfg *config.WebSearchConfig) *TavilySearcher {
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = tavilyEndpoint
	}
	return &TavilySearcher{
		apiKey:     os.Getenv(cfg.APIKeyEnv),
		endpoint:   endpoint,
		maxResults: cfg.MaxResults,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type tavilyRequest struct {
	Query          string   `json:"query"`
	MaxResults     int      `json:"max_results,omitempty"`
	SearchDepth    string   `json:"search_depth,omitempty"`
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"`
	IncludeDomains []string `json:"include_domains,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`
}

type tavilyResponse struct {
	Results []struct {
		URL           string  `json:"url"`
		Title         string  `json:"title"`
		Content       string  `json:"content"`
		Score         float64 `json:"score"`
		PublishedDate string  `json:"published_date"`
	} `json:"results"`
}

// Search implements Searcher against Tavily.
func (s *TavilySearcher) Search(ctx context.Context, params SearchParams) ([]WebResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("web search API key is not set; update your search settings")
	}
	if strings.TrimSpace(params.Query) == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidArguments)
	}

	maxResults := params.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}
	depth := "basic"
	if params.Depth == DepthAdvanced {
		depth = "advanced"
	}

	body, err := json.Marshal(tavilyRequest{
		Query:          params.Query,
		MaxResults:     maxResults,
		SearchDepth:    depth,
		StartDate:      params.FromDate,
		EndDate:        params.ToDate,
		IncludeDomains: params.IncludeDomains,
		ExcludeDomains: params.ExcludeDomains,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("web search returned HTTP %d: %s", resp.StatusCode, string(snippet))
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]WebResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, WebResult{
			URL:       r.URL,
			Title:     r.Title,
			Snippet:   r.Content,
			Published: r.PublishedDate,
			Score:     r.Score,
		})
	}
	return results, nil
}

// --- Query-aware parameter derivation ---

var (
	lastNYearsRe   = regexp.MustCompile(`(?i)\b(?:last|past)\s+(\d{1,2})\s+years?\b`)
	sinceYearRe    = regexp.MustCompile(`(?i)\bsince\s+(\d{4})\b`)
	betweenYearsRe = regexp.MustCompile(`(?i)\bbetween\s+(\d{4})\s+and\s+(\d{4})\b`)
)

var academicDomains = []string{
	"arxiv.org", "scholar.google.com", "semanticscholar.org", "jstor.org",
}

var medicalDomains = []string{
	"pubmed.ncbi.nlm.nih.gov", "nejm.org", "thelancet.com", "bmj.com",
}

var newsDomains = []string{
	"reuters.com", "apnews.com", "bbc.com",
}

// DeriveSearchParams inspects the query for date expressions, domain hints,
// and verbosity hints, turning them into concrete search parameters. The
// query text itself is passed through unchanged.
func DeriveSearchParams(query string, maxResults int, now time.Time) SearchParams {
	params := SearchParams{
		Query:      query,
		MaxResults: maxResults,
		Depth:      DepthStandard,
	}
	lower := strings.ToLower(query)

	switch {
	case betweenYearsRe.MatchString(query):
		m := betweenYearsRe.FindStringSubmatch(query)
		params.FromDate = m[1] + "-01-01"
		params.ToDate = m[2] + "-12-31"
	case sinceYearRe.MatchString(query):
		m := sinceYearRe.FindStringSubmatch(query)
		params.FromDate = m[1] + "-01-01"
	case lastNYearsRe.MatchString(query):
		m := lastNYearsRe.FindStringSubmatch(query)
		if n, err := strconv.Atoi(m[1]); err == nil {
			params.FromDate = now.AddDate(-n, 0, 0).Format("2006-01-02")
		}
	case strings.Contains(lower, "recent") || strings.Contains(lower, "latest"):
		params.FromDate = now.AddDate(-2, 0, 0).Format("2006-01-02")
	}

	if containsAny(lower, "peer-reviewed", "peer reviewed", "academic", "journal", "scholarly", "research paper") {
		params.IncludeDomains = append(params.IncludeDomains, academicDomains...)
	}
	if containsAny(lower, "clinical", "medical", "patients", "treatment", "diagnosis") {
		params.IncludeDomains = append(params.IncludeDomains, medicalDomains...)
	}
	if containsAny(lower, "news", "announcement", "press release") {
		params.IncludeDomains = append(params.IncludeDomains, newsDomains...)
	}

	if containsAny(lower, "comprehensive", "in-depth", "detailed", "thorough", "exhaustive") {
		params.Depth = DepthAdvanced
		if params.MaxResults > 0 {
			params.MaxResults *= 2
		}
	}

	return params
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// --- Tool wrappers ---

// webSearchTool passes explicit parameters straight to the backend.
type webSearchTool struct {
	searcher Searcher
}

// NewWebSearchTool wraps a Searcher as the web_search tool.
func NewWebSearchTool(searcher Searcher) Tool {
	return &webSearchTool{searcher: searcher}
}

func (t *webSearchTool) Name() string { return "web_search" }

func (t *webSearchTool) Description() string {
	return "Search the web with explicit parameters: result count, date range, " +
		"domain filters, and depth."
}

func (t *webSearchTool) InputSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"query"},
		"properties": map[string]any{
			"query":           map[string]any{"type": "string"},
			"max_results":     map[string]any{"type": "integer"},
			"from_date":       map[string]any{"type": "string"},
			"to_date":         map[string]any{"type": "string"},
			"include_domains": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"exclude_domains": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"depth":           map[string]any{"type": "string", "enum": []any{DepthStandard, DepthAdvanced}},
		},
	}
}

func (t *webSearchTool) Execute(ctx context.Context, _ string, args map[string]any) (any, error) {
	query, err := stringArg(args, "query")
	if err != nil {
		return nil, err
	}

	params := SearchParams{
		Query:      query,
		MaxResults: intArg(args, "max_results", 0),
		Depth:      DepthStandard,
	}
	if v, ok := args["from_date"].(string); ok {
		params.FromDate = v
	}
	if v, ok := args["to_date"].(string); ok {
		params.ToDate = v
	}
	if v, ok := args["depth"].(string); ok && v != "" {
		params.Depth = v
	}
	params.IncludeDomains = stringSliceArg(args, "include_domains")
	params.ExcludeDomains = stringSliceArg(args, "exclude_domains")

	return t.searcher.Search(ctx, params)
}

// intelligentWebSearchTool derives dates, domains, and depth from the query
// text before delegating to the backend.
type intelligentWebSearchTool struct {
	searcher Searcher
	now      func() time.Time
}

// NewIntelligentWebSearchTool wraps a Searcher as intelligent_web_search.
func NewIntelligentWebSearchTool(searcher Searcher) Tool {
	return &intelligentWebSearchTool{searcher: searcher, now: time.Now}
}

func (t *intelligentWebSearchTool) Name() string { return "intelligent_web_search" }

func (t *intelligentWebSearchTool) Description() string {
	return "Search the web, deriving date ranges, domain filters, and depth " +
		"from the query text."
}

func (t *intelligentWebSearchTool) InputSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"query"},
		"properties": map[string]any{
			"query":       map[string]any{"type": "string"},
			"max_results": map[string]any{"type": "integer"},
		},
	}
}

func (t *intelligentWebSearchTool) Execute(ctx context.Context, _ string, args map[string]any) (any, error) {
	query, err := stringArg(args, "query")
	if err != nil {
		return nil, err
	}
	params := DeriveSearchParams(query, intArg(args, "max_results", 0), t.now())
	return t.searcher.Search(ctx, params)
}

func stringSliceArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
