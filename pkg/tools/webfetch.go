package tools

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/semaphore"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/events"
)

// Page is the extracted content of a fetched web page.
type Page struct {
	URL      string            `json:"url"`
	Title    string            `json:"title,omitempty"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Fetcher downloads web pages, extracts readable text, and caches results by
// URL. A process-wide semaphore bounds concurrent outbound fetches so a burst
// of research agents cannot open unbounded connections.
type Fetcher struct {
	cfg        config.WebFetchConfig
	httpClient *http.Client
	cache      *expirable.LRU[string, *Page]
	sem        *semaphore.Weighted
	publisher  ProgressPublisher
	logger     *slog.Logger
}

// NewFetcher builds a Fetcher from configuration. publisher may be nil.
func NewFetcher(cfg config.WebFetchConfig, publisher ProgressPublisher) *Fetcher {
	concurrency := cfg.MaxConcurrentFetches
	if concurrency <= 0 {
		concurrency = 3
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 512
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		cache:      expirable.NewLRU[string, *Page](cacheSize, nil, ttl),
		sem:        semaphore.NewWeighted(int64(concurrency)),
		publisher:  publisher,
		logger:     slog.With("component", "web_fetch"),
	}
}

// Fetch returns the extracted page for the URL, serving from cache when a
// fresh copy exists.
func (f *Fetcher) Fetch(ctx context.Context, missionID, rawURL string) (*Page, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: url must be a valid http(s) URL", ErrInvalidArguments)
	}

	if page, ok := f.cache.Get(rawURL); ok {
		f.publishFetch(ctx, missionID, events.EventTypeWebFetchCacheHit, rawURL, nil)
		return page, nil
	}

	f.publishFetch(ctx, missionID, events.EventTypeWebFetchStarted, rawURL, nil)

	page, err := f.fetch(ctx, rawURL)
	f.publishFetch(ctx, missionID, events.EventTypeWebFetchCompleted, rawURL, err)
	if err != nil {
		return nil, err
	}

	f.cache.Add(rawURL, page)
	return page, nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (*Page, error) {
	if err := f.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer f.sem.Release(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch returned HTTP %d for %s", resp.StatusCode, rawURL)
	}

	maxBytes := f.cfg.MaxContentBytes
	if maxBytes <= 0 {
		maxBytes = 256 * 1024
	}
	// Raw HTML is noisier than the extracted text, so read more than the
	// final budget and truncate after extraction.
	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)*4))
	if err != nil {
		return nil, fmt.Errorf("failed to read page body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	page := &Page{
		URL: rawURL,
		Metadata: map[string]string{
			"content_type": contentType,
			"final_url":    resp.Request.URL.String(),
		},
	}

	if strings.Contains(contentType, "text/html") || strings.Contains(contentType, "xhtml") {
		title, text, err := extractReadableText(string(body))
		if err != nil {
			return nil, fmt.Errorf("failed to parse page: %w", err)
		}
		page.Title = title
		page.Text = text
	} else {
		page.Text = string(body)
	}

	if len(page.Text) > maxBytes {
		// Back up to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := maxBytes
		for cut > 0 && !utf8.RuneStart(page.Text[cut]) {
			cut--
		}
		page.Text = page.Text[:cut]
		page.Metadata["truncated"] = "true"
	}
	return page, nil
}

func (f *Fetcher) publishFetch(ctx context.Context, missionID, eventType, rawURL string, fetchErr error) {
	if f.publisher == nil {
		return
	}
	payload := events.WebFetchPayload{
		Type:      eventType,
		MissionID: missionID,
		URL:       rawURL,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if fetchErr != nil {
		payload.Error = fetchErr.Error()
	}
	if err := f.publisher.PublishWebFetch(ctx, missionID, payload); err != nil {
		f.logger.Warn("Failed to publish web fetch event", "url", rawURL, "error", err)
	}
}

// extractReadableText strips navigation chrome from an HTML document and
// returns its title plus a markdown-ish rendering of the main content.
func extractReadableText(html string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", err
	}

	doc.Find("script, style, nav, footer, header, aside, iframe, noscript").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	var sb strings.Builder
	if title != "" {
		sb.WriteString("# " + title + "\n\n")
	}

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" || text == title {
			return
		}
		level := int(s.Nodes[0].Data[1] - '0')
		sb.WriteString(strings.Repeat("#", level) + " " + text + "\n\n")
	})

	doc.Find("p, article, section").Each(func(_ int, s *goquery.Selection) {
		// Skip containers whose paragraphs are rendered separately.
		if s.Is("article, section") && s.Find("p").Length() > 0 {
			return
		}
		text := normalizeWhitespace(s.Text())
		if len(text) > 30 {
			sb.WriteString(text + "\n\n")
		}
	})

	doc.Find("ul li, ol li").Each(func(_ int, s *goquery.Selection) {
		text := normalizeWhitespace(s.Text())
		if text != "" && len(text) < 500 {
			sb.WriteString("- " + text + "\n")
		}
	})

	return title, strings.TrimSpace(sb.String()), nil
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// webFetchTool exposes the Fetcher through the tool contract.
type webFetchTool struct {
	fetcher *Fetcher
}

// NewWebFetchTool wraps a Fetcher as the web_fetch tool.
func NewWebFetchTool(fetcher *Fetcher) Tool {
	return &webFetchTool{fetcher: fetcher}
}

func (t *webFetchTool) Name() string { return "web_fetch" }

func (t *webFetchTool) Description() string {
	return "Fetch a web page and extract its readable text. Results are " +
		"cached, so repeated fetches of the same URL are cheap."
}

func (t *webFetchTool) InputSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"url"},
		"properties": map[string]any{
			"url": map[string]any{"type": "string"},
		},
	}
}

func (t *webFetchTool) Execute(ctx context.Context, missionID string, args map[string]any) (any, error) {
	rawURL, err := stringArg(args, "url")
	if err != nil {
		return nil, err
	}
	return t.fetcher.Fetch(ctx, missionID, rawURL)
}
