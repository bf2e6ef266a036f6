package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRadarr serves a fixed movie list and records every PUT body.
type fakeRadarr struct {
	t          *testing.T
	server     *httptest.Server
	apiKey     string
	movies     string
	listStatus int
	putStatus  int

	mu   sync.Mutex
	gets int
	puts []string
}

func newFakeRadarr(t *testing.T, apiKey, movies string) *fakeRadarr {
	t.Helper()
	f := &fakeRadarr{
		t:          t,
		apiKey:     apiKey,
		movies:     movies,
		listStatus: http.StatusOK,
		putStatus:  http.StatusAccepted,
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serveHTTP))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeRadarr) serveHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, "/radarr/api/movie/", r.URL.Path, "unexpected request path")
	if r.URL.Query().Get("apikey") != f.apiKey {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		f.gets++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.listStatus)
		_, _ = w.Write([]byte(f.movies))
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		assert.NoError(f.t, err)
		f.puts = append(f.puts, string(body))
		w.WriteHeader(f.putStatus)
	default:
		f.t.Errorf("unexpected method %s", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// hostPort returns the --host and --port values that reach the server.
func (f *fakeRadarr) hostPort() (string, string) {
	u, err := url.Parse(f.server.URL)
	require.NoError(f.t, err)
	return u.Hostname(), u.Port()
}

func (f *fakeRadarr) args(extra ...string) []string {
	host, port := f.hostPort()
	return append([]string{"--host", host, "--port", port}, extra...)
}

func (f *fakeRadarr) putBodies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.puts...)
}

func (f *fakeRadarr) getCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}
