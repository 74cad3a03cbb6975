// Package server serves a live preview of the site, rendering each page on
// request.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kcphysics/aiCompanySite/internal/pagegen"
)

// Server is the preview HTTP server for a generated site.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	gen        *pagegen.Generator
	assetsDir  string
	log        *zap.Logger
}

// New wires the page routes. Requests that match no page are served from
// assetsDir when a file exists there.
func New(addr string, gen *pagegen.Generator, assetsDir string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		router:    router,
		gen:       gen,
		assetsDir: assetsDir,
		log:       log.Named("server"),
	}

	router.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/", s.page("index"))
	for _, p := range pagegen.Pages {
		s.router.GET("/"+p.FileName(), s.page(p.Name))
		if p.Name != "index" {
			s.router.GET("/"+p.Name, s.page(p.Name))
		}
	}

	s.router.NoRoute(s.asset)
}

func (s *Server) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := s.gen.Render(&buf, name); err != nil {
			s.log.Error("Failed to render page", zap.String("page", name), zap.Error(err))
			c.String(http.StatusInternalServerError, "failed to render page")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

func (s *Server) asset(c *gin.Context) {
	if s.assetsDir == "" || c.Request.Method != http.MethodGet {
		c.String(http.StatusNotFound, "not found")
		return
	}

	rel := filepath.FromSlash(strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+c.Request.URL.Path)), "/"))
	path := filepath.Join(s.assetsDir, rel)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.File(path)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("Preview server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
