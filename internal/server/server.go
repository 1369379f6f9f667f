package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/alexchen/termfolio/internal/discovery"
	"github.com/alexchen/termfolio/internal/logging"
	"github.com/alexchen/termfolio/internal/portfolio"
	"github.com/alexchen/termfolio/internal/terminal"
	"github.com/alexchen/termfolio/internal/version"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// DefaultShutdownTimeout bounds graceful shutdown after a signal.
const DefaultShutdownTimeout = 10 * time.Second

// Config holds the server configuration
type Config struct {
	Host         string
	Port         int
	CertPath     string // TLS is enabled when both CertPath and KeyPath are set
	KeyPath      string
	LogLevel     string // Re-initializes logging when set
	BootDelay    time.Duration
	Prompt       string
	HistorySize  int
	Advertise    bool   // Announce the server over mDNS
	InstanceName string // mDNS instance name (empty = hostname)
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Server serves the browser terminal over HTTP and WebSocket
type Server struct {
	config    *Config
	portfolio *portfolio.Portfolio
	registry  *terminal.Registry
	tlsConfig *tls.Config
	upgrader  websocket.Upgrader
	handler   http.Handler

	httpServer *http.Server
	wg         sync.WaitGroup
	mu         sync.Mutex
	sessions   map[string]*wsSession
	closing    bool // set by Shutdown; no sessions are tracked afterwards
	nextID     atomic.Uint64
}

// New creates a new Server instance. A nil portfolio serves the built-in
// content.
func New(config *Config, p *portfolio.Portfolio) (*Server, error) {
	if config.LogLevel != "" {
		if err := logging.Initialize(config.LogLevel); err != nil {
			return nil, fmt.Errorf("failed to initialize logging: %w", err)
		}
	}
	if p == nil {
		p = portfolio.Default()
	}

	var tlsConfig *tls.Config
	if config.CertPath != "" || config.KeyPath != "" {
		if config.CertPath == "" || config.KeyPath == "" {
			return nil, errors.New("both cert and key must be provided together")
		}
		var err error
		tlsConfig, err = NewTLSConfig(config.CertPath, config.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	s := &Server{
		config:    config,
		portfolio: p,
		registry:  terminal.NewRegistry(p),
		tlsConfig: tlsConfig,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		sessions: make(map[string]*wsSession),
	}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the HTTP handler with request logging applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and blocks until SIGINT or
// SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr(), err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s.tlsConfig != nil {
		listener = tls.NewListener(listener, s.tlsConfig)
		logging.Info("TLS Configuration", zap.Any("tls_info", GetTLSInfo(s.tlsConfig)))
	}

	s.mu.Lock()
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	logging.Info("Starting portfolio terminal server",
		zap.String("addr", listener.Addr().String()),
		zap.Bool("tls", s.tlsConfig != nil),
		zap.Duration("boot_delay", s.config.BootDelay),
		zap.String("version", version.Full()),
	)

	if s.config.Advertise {
		port := s.config.Port
		if tcp, ok := listener.Addr().(*net.TCPAddr); ok {
			port = tcp.Port
		}
		txt := map[string]string{}
		if s.tlsConfig != nil {
			txt[discovery.TXTKeyTLS] = "1"
		}
		shutdownAdvert, err := discovery.Advertise(ctx, s.config.InstanceName, port, txt)
		if err != nil {
			// Discovery is optional; the server still works without it.
			logging.Warn("Failed to advertise over mDNS", zap.Error(err))
		} else {
			defer shutdownAdvert()
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown signal received, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown stops accepting connections, closes every terminal session and
// waits for their goroutines until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()
	if httpServer != nil {
		if err := httpServer.Shutdown(ctx); err != nil {
			logging.Error("Error shutting down HTTP server", zap.Error(err))
		}
	}

	// Hijacked WebSocket connections are not tracked by http.Server.
	// Closing writes to the peer, so it happens outside mu.
	s.mu.Lock()
	s.closing = true
	active := make([]*wsSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		active = append(active, sess)
	}
	s.mu.Unlock()

	for _, sess := range active {
		logging.Info("Closing active session", zap.String("session", sess.id))
		sess.close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All sessions closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}

	logging.Sync()
	return nil
}

// ActiveSessions returns the number of connected terminals.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// track registers a session and counts it in wg. It reports false once
// Shutdown has started, so wg.Add never races wg.Wait.
func (s *Server) track(sess *wsSession) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.wg.Add(1)
	s.sessions[sess.id] = sess
	return true
}

func (s *Server) untrack(sess *wsSession) {
	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()
	s.wg.Done()
}

func (s *Server) newTerminal() *terminal.Session {
	return terminal.NewSession(s.portfolio, s.registry,
		terminal.WithPrompt(s.config.Prompt),
		terminal.WithHistorySize(s.config.HistorySize),
	)
}
