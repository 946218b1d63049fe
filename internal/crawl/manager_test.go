package crawl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/handiism/woodstock/internal/config"
	"github.com/handiism/woodstock/internal/http"
	"github.com/handiism/woodstock/internal/model"
)

func listPage(page int) string {
	return fmt.Sprintf(`<html><body>
<div class="lister-item-image ribbonize"><a href="/title/tt%[1]d/"><img loadlate="/posters/%[1]d.png"></a></div>
<h3 class="lister-item-header"><a href="/title/tt%[1]d/">Movie %[1]d</a> <span>(19%[1]d0)</span></h3>
<h3>Footer</h3>
</body></html>`, page)
}

// fakeFetcher serves list pages by their page query parameter and counts poster calls.
type fakeFetcher struct {
	mu          sync.Mutex
	failPage    int
	posterFails int
	posterCalls int
	posterErr   error
	poster      []byte
}

func (f *fakeFetcher) FetchDocument(_ context.Context, url string) (*html.Node, error) {
	var page int
	if i := strings.Index(url, "page="); i >= 0 {
		fmt.Sscanf(url[i+len("page="):], "%d", &page)
	}
	if page == f.failPage {
		return nil, errors.New("boom")
	}
	return html.Parse(strings.NewReader(listPage(page)))
}

func (f *fakeFetcher) DownloadBytes(_ context.Context, _ string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posterCalls++
	if f.posterCalls <= f.posterFails {
		if f.posterErr != nil {
			return nil, f.posterErr
		}
		return nil, errors.New("temporary failure")
	}
	return f.poster, nil
}

func testSettings(pages int) *config.Settings {
	s := config.DefaultSettings()
	s.BaseURL = "https://example.test/"
	s.MaxPages = pages
	s.MaxConcurrentPages = 2
	s.MaxRetries = 3
	s.RetryCooldown = 0
	s.RetryExponent = 1
	s.PosterMaxSize = 10
	return s
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 40))))
	return buf.Bytes()
}

func TestCollectKeepsPageOrder(t *testing.T) {
	var events []ProgressEvent
	var mu sync.Mutex
	m := NewManager(testSettings(4),
		WithFetcher(&fakeFetcher{}),
		WithProgress(func(e ProgressEvent) {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
		}),
	)

	movies, err := m.Collect(context.Background(), "https://example.test/search/?page=1")
	require.NoError(t, err)
	require.Len(t, movies, 4)
	for i, mv := range movies {
		assert.Equal(t, fmt.Sprintf("Movie %d", i+1), mv.Title)
		assert.Equal(t, fmt.Sprintf("19%d0", i+1), mv.Year)
		assert.Equal(t, fmt.Sprintf("https://example.test/title/tt%d/", i+1), mv.Link)
	}

	pages, _ := m.Stats()
	assert.Equal(t, int32(4), pages)
	require.NotEmpty(t, events)
	assert.Equal(t, LevelSuccess, events[len(events)-1].Level)
}

func TestCollectFailsOnPageError(t *testing.T) {
	m := NewManager(testSettings(3), WithFetcher(&fakeFetcher{failPage: 2}))

	_, err := m.Collect(context.Background(), "https://example.test/search/")
	assert.EqualError(t, err, "boom")
}

func TestPagesCursor(t *testing.T) {
	m := NewManager(testSettings(1), WithFetcher(&fakeFetcher{failPage: 3}))

	cursor := m.Pages("https://example.test/search/", 5)
	var seen []int
	for page, doc := range cursor.All(context.Background()) {
		require.NotNil(t, doc)
		seen = append(seen, page)
	}

	assert.Equal(t, []int{1, 2}, seen)
	assert.EqualError(t, cursor.Err(), "boom")
}

func TestPagesCursorStopsEarly(t *testing.T) {
	m := NewManager(testSettings(1), WithFetcher(&fakeFetcher{}))

	cursor := m.Pages("https://example.test/search/", 5)
	for page := range cursor.All(context.Background()) {
		if page == 2 {
			break
		}
	}
	pages, _ := m.Stats()
	assert.Equal(t, int32(2), pages)
	assert.NoError(t, cursor.Err())
}

func TestSavePostersRetries(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{posterFails: 2, poster: pngBytes(t)}
	m := NewManager(testSettings(1), WithFetcher(fetcher))

	movies := []model.Movie{
		{Title: "Woodstock", Year: "1970", PosterURL: "https://example.test/p.png"},
		{Title: "No Poster"},
	}
	paths, err := m.SavePosters(context.Background(), movies, dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "Woodstock (1970).jpg")}, paths)
	assert.Equal(t, 3, fetcher.posterCalls)

	info, err := os.Stat(paths[0])
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSavePostersGivesUp(t *testing.T) {
	var warnings int
	fetcher := &fakeFetcher{posterFails: 10, poster: pngBytes(t)}
	m := NewManager(testSettings(1), WithFetcher(fetcher), WithProgress(func(e ProgressEvent) {
		if e.Level == LevelWarning {
			warnings++
		}
	}))

	paths, err := m.SavePosters(context.Background(), []model.Movie{{Title: "Lost", PosterURL: "x"}}, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Equal(t, 3, fetcher.posterCalls)
	// two retry notices plus the final failure
	assert.Equal(t, 3, warnings)
}

func TestSavePostersBackoffSkipsLastWait(t *testing.T) {
	settings := testSettings(1)
	settings.MaxRetries = 2
	settings.RetryCooldown = 0.2
	fetcher := &fakeFetcher{posterFails: 10, poster: pngBytes(t)}
	m := NewManager(settings, WithFetcher(fetcher))

	start := time.Now()
	paths, err := m.SavePosters(context.Background(), []model.Movie{{Title: "Lost", PosterURL: "x"}}, t.TempDir())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Equal(t, 2, fetcher.posterCalls)
	assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
	assert.Less(t, elapsed, 400*time.Millisecond)
}

func TestSavePostersStopsEarly(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name  string
		ctx   context.Context
		err   error
		calls int
	}{
		{"not found", context.Background(), &http.StatusError{URL: "x", StatusCode: 404, Status: "404 Not Found"}, 1},
		{"server error", context.Background(), &http.StatusError{URL: "x", StatusCode: 503, Status: "503 Service Unavailable"}, 3},
		{"cancelled", cancelled, errors.New("context canceled"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings int
			fetcher := &fakeFetcher{posterFails: 10, posterErr: tt.err, poster: pngBytes(t)}
			m := NewManager(testSettings(1), WithFetcher(fetcher), WithProgress(func(e ProgressEvent) {
				if e.Level == LevelWarning {
					warnings++
				}
			}))

			_, _ = m.SavePosters(tt.ctx, []model.Movie{{Title: "Lost", PosterURL: "x"}}, t.TempDir())
			assert.Equal(t, tt.calls, fetcher.posterCalls)
			// one retry notice per extra attempt plus the final failure
			assert.Equal(t, tt.calls, warnings)
		})
	}
}

func TestProgressCallbacksAreSerialized(t *testing.T) {
	var events []ProgressEvent
	m := NewManager(testSettings(8), WithFetcher(&fakeFetcher{}), WithProgress(func(e ProgressEvent) {
		events = append(events, e)
	}))

	_, err := m.Collect(context.Background(), "https://example.test/search/")
	require.NoError(t, err)
	assert.NotEmpty(t, events)
}

func TestSavePostersNothingToSave(t *testing.T) {
	m := NewManager(testSettings(1), WithFetcher(&fakeFetcher{}))
	_, err := m.SavePosters(context.Background(), []model.Movie{{Title: "Bare"}}, t.TempDir())
	assert.ErrorIs(t, err, ErrNoPosters)
}

func TestManagerWithHTTPClient(t *testing.T) {
	poster := pngBytes(t)
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/search/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var page int
		fmt.Sscanf(r.URL.Query().Get("page"), "%d", &page)
		_, _ = w.Write([]byte(listPage(page)))
	})
	mux.HandleFunc("/posters/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write(poster)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := testSettings(2)
	s.BaseURL = srv.URL
	m := NewManager(s, WithFetcher(http.NewClient("test", 0)))

	movies, err := m.Collect(context.Background(), srv.URL+"/search/")
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, srv.URL+"/title/tt2/", movies[1].Link)

	// loadlate URLs on the test pages are server-relative
	for i := range movies {
		movies[i].PosterURL = srv.URL + movies[i].PosterURL
	}
	paths, err := m.SavePosters(context.Background(), movies, t.TempDir())
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}
