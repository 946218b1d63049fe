package crawl

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/woodstock/internal/config"
	"github.com/handiism/woodstock/internal/http"
	"github.com/handiism/woodstock/internal/imdb"
	ioutils "github.com/handiism/woodstock/internal/io"
	"github.com/handiism/woodstock/internal/logging"
	"github.com/handiism/woodstock/internal/model"
)

// ErrNoPosters is returned by SavePosters when none of the movies has a poster URL.
var ErrNoPosters = errors.New("no posters to save")

// Fetcher is what the Manager needs from an HTTP client.
// *http.Client satisfies it.
type Fetcher interface {
	FetchDocument(ctx context.Context, url string) (*html.Node, error)
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// Option configures a Manager.
type Option func(*Manager)

// WithFetcher replaces the HTTP client built from the settings.
func WithFetcher(f Fetcher) Option {
	return func(m *Manager) { m.fetcher = f }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.logger = logging.OrNop(l) }
}

// WithProgress sets the callback receiving progress events.
// Pages and posters are handled concurrently, but the Manager never calls
// fn from two goroutines at once.
func WithProgress(fn func(ProgressEvent)) Option {
	return func(m *Manager) { m.onProgress = fn }
}

// Manager coordinates crawling of multi-page movie lists.
type Manager struct {
	settings     *config.Settings
	fetcher      Fetcher
	parser       *imdb.Parser
	imageService *ioutils.ImageService
	logger       *zap.Logger

	pagesFetched int32
	postersSaved int32

	onProgress func(ProgressEvent)
	progressMu sync.Mutex
}

// NewManager creates a new crawl Manager.
func NewManager(settings *config.Settings, opts ...Option) *Manager {
	m := &Manager{
		settings:     settings,
		parser:       imdb.NewParser(settings.BaseURL),
		imageService: ioutils.NewImageService(),
		logger:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.fetcher == nil {
		m.fetcher = http.NewClient(settings.UserAgent, time.Duration(settings.TimeoutSeconds)*time.Second)
	}
	return m
}

// PageCursor walks the pages of a list one request at a time.
type PageCursor struct {
	m        *Manager
	start    string
	maxPages int
	err      error
}

// Pages returns a cursor over pages 1..maxPages of the list starting at start.
// Nothing is fetched until the cursor is ranged over.
func (m *Manager) Pages(start string, maxPages int) *PageCursor {
	return &PageCursor{m: m, start: start, maxPages: maxPages}
}

// All yields page numbers with their parsed documents, in order.
// Iteration stops at the first failure, which Err then reports.
func (c *PageCursor) All(ctx context.Context) iter.Seq2[int, *html.Node] {
	return func(yield func(int, *html.Node) bool) {
		for page := 1; page <= c.maxPages; page++ {
			doc, err := c.m.fetchPage(ctx, c.start, page)
			if err != nil {
				c.err = err
				return
			}
			if !yield(page, doc) {
				return
			}
		}
	}
}

// Err returns the error that stopped iteration, if any.
func (c *PageCursor) Err() error {
	return c.err
}

// Collect fetches pages 1..MaxPages concurrently and returns their movies
// in page order.
func (m *Manager) Collect(ctx context.Context, start string) ([]model.Movie, error) {
	pages := m.settings.MaxPages
	perPage := make([][]model.Movie, pages)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency())

	for i := range pages {
		g.Go(func() error {
			doc, err := m.fetchPage(ctx, start, i+1)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching page %d: %v", i+1, err), Level: LevelError})
				return err
			}
			perPage[i] = m.parser.ParseListPage(doc)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Page %d: %d movies", i+1, len(perPage[i])), Level: LevelVerbose})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var movies []model.Movie
	for _, ms := range perPage {
		movies = append(movies, ms...)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d movies on %d pages", len(movies), pages), Level: LevelSuccess})
	return movies, nil
}

// SavePosters downloads the posters of movies into dir as JPEG files named
// "<title> (<year>).jpg". A failed poster is reported as a warning and
// skipped. It returns the paths written.
func (m *Manager) SavePosters(ctx context.Context, movies []model.Movie, dir string) ([]string, error) {
	if err := ioutils.EnsureDir(dir); err != nil {
		return nil, err
	}

	withPoster := 0
	paths := make([]string, len(movies))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency())

	for i, movie := range movies {
		if !movie.HasPoster() {
			continue
		}
		withPoster++
		g.Go(func() error {
			path, err := m.savePoster(ctx, movie, dir)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving poster for %s: %v", movie.Title, err), Level: LevelWarning})
				return nil
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if withPoster == 0 {
		return nil, ErrNoPosters
	}

	var saved []string
	for _, p := range paths {
		if p != "" {
			saved = append(saved, p)
		}
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved %d/%d posters", len(saved), withPoster), Level: LevelSuccess})
	return saved, nil
}

// Stats returns how many pages were fetched and posters saved so far.
func (m *Manager) Stats() (pages, posters int32) {
	return atomic.LoadInt32(&m.pagesFetched), atomic.LoadInt32(&m.postersSaved)
}

func (m *Manager) fetchPage(ctx context.Context, start string, page int) (*html.Node, error) {
	url, err := imdb.PageURL(start, page)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("fetching page", zap.Int("page", page), zap.String("url", url))

	doc, err := m.fetcher.FetchDocument(ctx, url)
	if err != nil {
		m.logger.Warn("page fetch failed", zap.Int("page", page), zap.Error(err))
		return nil, err
	}
	atomic.AddInt32(&m.pagesFetched, 1)
	return doc, nil
}

func (m *Manager) savePoster(ctx context.Context, movie model.Movie, dir string) (string, error) {
	var data []byte
	err := errors.New("no download attempted")

	attempts := max(m.settings.MaxRetries, 1)
	for tries := 0; tries < attempts; tries++ {
		data, err = m.fetcher.DownloadBytes(ctx, movie.PosterURL)
		if err == nil || !retryable(ctx, err) || tries+1 == attempts {
			break
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, attempts-1, movie.Title), Level: LevelWarning})
		m.waitForRetry(ctx, tries)
	}
	if err != nil {
		return "", err
	}

	if m.settings.PosterMaxSize > 0 {
		data, err = m.imageService.ResizeImage(ctx, data, m.settings.PosterMaxSize, m.settings.PosterMaxSize)
	} else {
		data, err = m.imageService.ConvertToJPEG(ctx, data)
	}
	if err != nil {
		return "", err
	}

	name := movie.Title
	if movie.Year != "" {
		name += " (" + movie.Year + ")"
	}
	path := filepath.Join(dir, ioutils.SanitizeFileName(name)+".jpg")
	if err := ioutils.WriteFileAtomic(path, data); err != nil {
		return "", err
	}

	atomic.AddInt32(&m.postersSaved, 1)
	m.logger.Debug("poster saved", zap.String("title", movie.Title), zap.String("path", path))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved poster: %s", filepath.Base(path)), Level: LevelVerbose})
	return path, nil
}

// retryable reports whether another download attempt can succeed.
// Client errors (4xx) and a finished context are final.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode < 400 || statusErr.StatusCode >= 500
	}
	return true
}

func (m *Manager) concurrency() int {
	return max(m.settings.MaxConcurrentPages, 1)
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.RetryCooldown * math.Pow(m.settings.RetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.progressMu.Lock()
		defer m.progressMu.Unlock()
		m.onProgress(event)
	}
}
