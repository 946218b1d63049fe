package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h3><a href="/title/tt1">Woodstock</a></h3></body></html>`))
	})
	mux.HandleFunc("/agent", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.UserAgent()))
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/page", http.StatusFound)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGetString(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient("festival-bot", time.Second)

	got, err := c.GetString(context.Background(), srv.URL+"/agent")
	require.NoError(t, err)
	assert.Equal(t, "festival-bot", got)
}

func TestClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, "woodstock", c.userAgent)
	assert.Equal(t, 60*time.Second, c.httpClient.Timeout)
}

func TestClientErrors(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient("", time.Second)

	tests := []struct {
		name string
		path string
		code int
	}{
		{"redirect not followed", "/moved", http.StatusFound},
		{"not found", "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.DownloadBytes(context.Background(), srv.URL+tt.path)
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("DownloadBytes() error = %v, want *StatusError", err)
			}
			if statusErr.StatusCode != tt.code {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.code)
			}
		})
	}
}

func TestClientFetchDocument(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient("", time.Second)

	doc, err := c.FetchDocument(context.Background(), srv.URL+"/page")
	require.NoError(t, err)

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && n.FirstChild != nil {
			title = n.FirstChild.Data
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	assert.Equal(t, "Woodstock", title)
}

func TestClientCancelledContext(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient("", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Get(ctx, srv.URL+"/page")
	assert.ErrorIs(t, err, context.Canceled)
}
