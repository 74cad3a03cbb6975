package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"kcphysics/aiCompanySite/internal/content"
	"kcphysics/aiCompanySite/internal/htmltest"
	"kcphysics/aiCompanySite/internal/pagegen"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newServer(t *testing.T, addr, assetsDir string) *Server {
	t.Helper()
	gen, err := pagegen.New(content.Default(), pagegen.Options{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return New(addr, gen, assetsDir, zaptest.NewLogger(t))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPageRoutes(t *testing.T) {
	s := newServer(t, ":0", "")

	tests := []struct {
		path string
		h1   string
	}{
		{path: "/", h1: "Company Site"},
		{path: "/index.html", h1: "Company Site"},
		{path: "/about", h1: "About Our Company"},
		{path: "/about.html", h1: "About Our Company"},
		{path: "/contact", h1: "Contact Us"},
		{path: "/contact.html", h1: "Contact Us"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s.Handler(), tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

			doc := htmltest.ParseString(t, rec.Body.String())
			h1 := htmltest.FindAll(doc, htmltest.Tag("h1"))
			require.Len(t, h1, 1)
			assert.Equal(t, tt.h1, htmltest.Text(h1[0]))
		})
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, newServer(t, ":0", "").Handler(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUnknownPathIsNotFound(t *testing.T) {
	rec := get(t, newServer(t, ":0", "").Handler(), "/pricing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactFormIsNotSubmittable(t *testing.T) {
	s := newServer(t, ":0", t.TempDir())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServesAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))

	s := newServer(t, ":0", dir)

	rec := get(t, s.Handler(), "/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/css").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/../../etc/passwd").Code)
}

func TestStartAndShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := newServer(t, addr, "")
	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	require.NoError(t, <-errCh)
}
