// Package api serves the browse tree and daemon status over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/genricoloni/radiod/internal/browse"
	"github.com/genricoloni/radiod/internal/catalog"
	"github.com/genricoloni/radiod/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogView is the read side of the music source
type CatalogView interface {
	State() domain.SourceState
	Result() catalog.Result
	Tree() *browse.Tree
}

// Server is the HTTP front of the daemon
type Server struct {
	logger  *zap.Logger
	catalog CatalogView
	metrics http.Handler
	addr    string
	router  *gin.Engine

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
}

// NewServer builds the router. metrics may be nil.
func NewServer(logger *zap.Logger, view CatalogView, metrics http.Handler, addr string) *Server {
	if !logger.Core().Enabled(zap.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		logger:  logger,
		catalog: view,
		metrics: metrics,
		addr:    addr,
		router:  gin.New(),
	}
	s.router.Use(gin.Recovery(), requestLogger(logger))
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "radiod"})
	})

	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics))
	}

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/status", s.getStatus)
		v1.GET("/browse/:mediaId", s.getChildren)
		v1.GET("/artwork/:mediaId", s.getArtwork)
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the listen address and serves in the background
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.mu.Lock()
	s.srv = srv
	s.listener = ln
	s.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()

	s.logger.Info("HTTP API listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound address once started
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
