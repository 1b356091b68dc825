package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/events"
)

const testPageHTML = `<!DOCTYPE html>
<html>
<head><title>Battery Review</title><script>alert("hi")</script></head>
<body>
<nav>Home | About | Contact</nav>
<h2>Cathode Materials</h2>
<p>Layered oxide cathodes remain the dominant chemistry for high energy density cells.</p>
<ul><li>NMC 811</li><li>LFP</li></ul>
<footer>Copyright 2026</footer>
</body>
</html>`

func newFetchServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testPageHTML))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetcher_FetchExtractsText(t *testing.T) {
	var hits atomic.Int32
	server := newFetchServer(t, &hits)
	publisher := &fakePublisher{}
	f := NewFetcher(config.WebFetchConfig{UserAgent: "maestro-test/1.0"}, publisher)

	page, err := f.Fetch(context.Background(), "mission-1", server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Battery Review", page.Title)
	assert.Contains(t, page.Text, "# Battery Review")
	assert.Contains(t, page.Text, "## Cathode Materials")
	assert.Contains(t, page.Text, "Layered oxide cathodes")
	assert.Contains(t, page.Text, "- NMC 811")
	// Chrome elements are stripped.
	assert.NotContains(t, page.Text, "alert")
	assert.NotContains(t, page.Text, "Home | About")
	assert.NotContains(t, page.Text, "Copyright")

	assert.Equal(t, []string{events.EventTypeWebFetchStarted, events.EventTypeWebFetchCompleted},
		publisher.fetchTypes())
}

func TestFetcher_SecondFetchIsCacheHit(t *testing.T) {
	var hits atomic.Int32
	server := newFetchServer(t, &hits)
	publisher := &fakePublisher{}
	f := NewFetcher(config.WebFetchConfig{}, publisher)

	first, err := f.Fetch(context.Background(), "mission-1", server.URL)
	require.NoError(t, err)
	second, err := f.Fetch(context.Background(), "mission-1", server.URL)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, []string{
		events.EventTypeWebFetchStarted,
		events.EventTypeWebFetchCompleted,
		events.EventTypeWebFetchCacheHit,
	}, publisher.fetchTypes())
}

func TestFetcher_RejectsInvalidURL(t *testing.T) {
	f := NewFetcher(config.WebFetchConfig{}, nil)

	for _, bad := range []string{"", "not a url", "ftp://example.org/file", "file:///etc/passwd"} {
		_, err := f.Fetch(context.Background(), "mission-1", bad)
		assert.ErrorIs(t, err, ErrInvalidArguments, "url %q", bad)
	}
}

func TestFetcher_HTTPErrorIsReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	publisher := &fakePublisher{}
	f := NewFetcher(config.WebFetchConfig{}, publisher)

	_, err := f.Fetch(context.Background(), "mission-1", server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")

	// The completed event carries the failure; errors are not cached.
	require.Len(t, publisher.fetches, 2)
	assert.Equal(t, events.EventTypeWebFetchCompleted, publisher.fetches[1].Type)
	assert.NotEmpty(t, publisher.fetches[1].Error)

	_, err = f.Fetch(context.Background(), "mission-1", server.URL)
	require.Error(t, err)
	require.Len(t, publisher.fetches, 4)
	assert.Equal(t, events.EventTypeWebFetchStarted, publisher.fetches[2].Type)
}

func TestFetcher_PlainTextPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("raw text body"))
	}))
	defer server.Close()

	f := NewFetcher(config.WebFetchConfig{}, nil)
	page, err := f.Fetch(context.Background(), "mission-1", server.URL)
	require.NoError(t, err)
	assert.Equal(t, "raw text body", page.Text)
	assert.Empty(t, page.Title)
}

func TestFetcher_TruncatesLongContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		for range 100 {
			_, _ = w.Write([]byte("0123456789"))
		}
	}))
	defer server.Close()

	f := NewFetcher(config.WebFetchConfig{MaxContentBytes: 100}, nil)
	page, err := f.Fetch(context.Background(), "mission-1", server.URL)
	require.NoError(t, err)
	assert.Len(t, page.Text, 100)
	assert.Equal(t, "true", page.Metadata["truncated"])
}

func TestFetcher_TruncationKeepsValidUTF8(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for range 100 {
			_, _ = w.Write([]byte("électrochimie ")) // multi-byte runes throughout
		}
	}))
	defer server.Close()

	// Each repetition is 15 bytes with the two-byte "é" at its start, so a
	// 91-byte budget lands mid-rune and a naive byte slice would cut the
	// "é" in half.
	f := NewFetcher(config.WebFetchConfig{MaxContentBytes: 91}, nil)
	page, err := f.Fetch(context.Background(), "mission-1", server.URL)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(page.Text))
	assert.Len(t, page.Text, 90)
	assert.Equal(t, "true", page.Metadata["truncated"])
}

func TestExtractReadableText(t *testing.T) {
	title, text, err := extractReadableText(testPageHTML)
	require.NoError(t, err)
	assert.Equal(t, "Battery Review", title)
	assert.Contains(t, text, "## Cathode Materials")
	assert.NotContains(t, text, "alert")
}

func TestExtractReadableText_ShortParagraphsDropped(t *testing.T) {
	_, text, err := extractReadableText(`<html><body><p>ok</p><p>` +
		`This paragraph is long enough to survive the noise filter in extraction.</p></body></html>`)
	require.NoError(t, err)
	assert.NotContains(t, text, "ok\n")
	assert.Contains(t, text, "long enough to survive")
}

func TestWebFetchTool_Execute(t *testing.T) {
	var hits atomic.Int32
	server := newFetchServer(t, &hits)
	tool := NewWebFetchTool(NewFetcher(config.WebFetchConfig{}, nil))

	result, err := tool.Execute(context.Background(), "mission-1", map[string]any{"url": server.URL})
	require.NoError(t, err)
	page, ok := result.(*Page)
	require.True(t, ok)
	assert.Equal(t, "Battery Review", page.Title)

	_, err = tool.Execute(context.Background(), "mission-1", map[string]any{})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}
