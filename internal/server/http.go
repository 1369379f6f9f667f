package server

import (
	"bufio"
	_ "embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/alexchen/termfolio/internal/logging"
	"github.com/alexchen/termfolio/internal/terminal"
	"go.uber.org/zap"
)

//go:embed index.html.tmpl
var indexSource string

var indexTemplate = template.Must(template.New("index").Parse(indexSource))

// BootMessage is shown while a session is booting.
const BootMessage = "Initializing secure connection..."

type indexData struct {
	Title       string
	Prompt      string
	WSPath      string
	BootMessage string
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return withRequestLogging(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	prompt := s.config.Prompt
	if prompt == "" {
		prompt = terminal.DefaultPrompt
	}
	data := indexData{
		Title:       terminal.Title(s.portfolio),
		Prompt:      prompt,
		WSPath:      "/ws",
		BootMessage: BootMessage,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if err := indexTemplate.Execute(w, data); err != nil {
		logging.Error("Failed to render index page",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// withRequestLogging logs every request once the handler returns. For
// WebSocket upgrades that is when the session ends.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the WebSocket upgrader take over the connection.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	r.wroteHeader = true
	return h.Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
