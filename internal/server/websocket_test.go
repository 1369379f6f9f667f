package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexchen/termfolio/internal/protocol"
	"github.com/alexchen/termfolio/internal/terminal"
	"github.com/gorilla/websocket"
)

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%s) error = %v", url, err)
	}
	if resp.StatusCode != 101 {
		t.Fatalf("handshake status = %d, want 101", resp.StatusCode)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func startSession(t *testing.T, cfg *Config) (*Server, *websocket.Conn) {
	t.Helper()
	srv := newTestServer(t, cfg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, dial(t, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws")
}

func readMessage(t *testing.T, conn *websocket.Conn) *protocol.ServerMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	msgType, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	if msgType != websocket.TextMessage {
		t.Fatalf("message type = %d, want text", msgType)
	}
	msg, err := protocol.DecodeServer(data)
	if err != nil {
		t.Fatalf("DecodeServer(%s) error = %v", data, err)
	}
	return msg
}

func expectType(t *testing.T, conn *websocket.Conn, want protocol.MessageType) *protocol.ServerMessage {
	t.Helper()
	msg := readMessage(t, conn)
	if msg.Type != want {
		t.Fatalf("message type = %q, want %q (%+v)", msg.Type, want, msg)
	}
	return msg
}

func send(t *testing.T, conn *websocket.Conn, raw string) {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(raw)); err != nil {
		t.Fatalf("WriteMessage() error = %v", err)
	}
}

// bootedSession connects and consumes the boot sequence.
func bootedSession(t *testing.T, cfg *Config) (*Server, *websocket.Conn) {
	t.Helper()
	srv, conn := startSession(t, cfg)
	expectType(t, conn, protocol.TypeBooting)
	expectType(t, conn, protocol.TypeReady)
	welcome := expectType(t, conn, protocol.TypeLines)
	if len(welcome.Lines) != 1 || !strings.Contains(welcome.Lines[0].Text, "WELCOME TO MY PORTFOLIO") {
		t.Fatalf("welcome = %+v", welcome.Lines)
	}
	return srv, conn
}

func TestSession_BootSequence(t *testing.T) {
	start := time.Now()
	bootedSession(t, &Config{BootDelay: 50 * time.Millisecond})
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("ready arrived after %v, want at least the boot delay", elapsed)
	}
}

func TestSession_Submit(t *testing.T) {
	_, conn := bootedSession(t, &Config{BootDelay: time.Millisecond})

	send(t, conn, `{"type":"submit","input":"  WHOAMI "}`)
	lines := expectType(t, conn, protocol.TypeLines).Lines
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Kind != terminal.LineInput || lines[0].Text != "WHOAMI" || lines[0].Prompt != terminal.DefaultPrompt {
		t.Errorf("input line = %+v", lines[0])
	}
	if lines[1].Kind != terminal.LineOutput || !strings.HasPrefix(lines[1].Text, "Alex Chen\nRole:") {
		t.Errorf("output line = %+v", lines[1])
	}
	if in := expectType(t, conn, protocol.TypeInput); in.Input == nil || *in.Input != "" {
		t.Errorf("input update = %+v, want explicit empty input", in)
	}

	send(t, conn, `{"type":"submit","input":"rm -rf /"}`)
	lines = expectType(t, conn, protocol.TypeLines).Lines
	if len(lines) != 2 || lines[1].Kind != terminal.LineError {
		t.Errorf("unknown command lines = %+v", lines)
	}
	expectType(t, conn, protocol.TypeInput)
}

func TestSession_Clear(t *testing.T) {
	_, conn := bootedSession(t, &Config{BootDelay: time.Millisecond})

	send(t, conn, `{"type":"submit","input":"clear"}`)
	expectType(t, conn, protocol.TypeClear)
	expectType(t, conn, protocol.TypeInput)
}

func TestSession_BlankSubmitIsIgnored(t *testing.T) {
	_, conn := bootedSession(t, &Config{BootDelay: time.Millisecond})

	send(t, conn, `{"type":"submit","input":"   "}`)
	send(t, conn, `{"type":"submit","input":"resume"}`)
	lines := expectType(t, conn, protocol.TypeLines).Lines
	if lines[0].Text != "resume" {
		t.Errorf("first reply should answer the second submission, got %+v", lines)
	}
}

func TestSession_RecallAndComplete(t *testing.T) {
	_, conn := bootedSession(t, &Config{BootDelay: time.Millisecond})

	// Nothing to recall yet, so no reply; the next reply answers "complete".
	send(t, conn, `{"type":"recall","direction":"up"}`)
	send(t, conn, `{"type":"complete","input":"he"}`)
	if got := expectType(t, conn, protocol.TypeInput).Text(); got != "help" {
		t.Errorf("complete(he) = %q, want help", got)
	}

	for _, cmd := range []string{"about", "skills"} {
		send(t, conn, `{"type":"submit","input":"`+cmd+`"}`)
		expectType(t, conn, protocol.TypeLines)
		expectType(t, conn, protocol.TypeInput)
	}

	send(t, conn, `{"type":"recall","direction":"up"}`)
	if got := expectType(t, conn, protocol.TypeInput).Text(); got != "skills" {
		t.Errorf("recall up = %q, want skills", got)
	}
	send(t, conn, `{"type":"recall","direction":"up"}`)
	if got := expectType(t, conn, protocol.TypeInput).Text(); got != "about" {
		t.Errorf("recall up = %q, want about", got)
	}
	send(t, conn, `{"type":"recall","direction":"down"}`)
	send(t, conn, `{"type":"recall","direction":"down"}`)
	expectType(t, conn, protocol.TypeInput)
	if got := expectType(t, conn, protocol.TypeInput).Text(); got != "" {
		t.Errorf("recall past newest = %q, want empty", got)
	}

	// Ambiguous completion sends nothing.
	send(t, conn, `{"type":"complete","input":"c"}`)
	send(t, conn, `{"type":"complete","input":"so"}`)
	if got := expectType(t, conn, protocol.TypeInput).Text(); got != "socials" {
		t.Errorf("complete(so) = %q, want socials", got)
	}
}

func TestSession_InputIgnoredWhileBooting(t *testing.T) {
	_, conn := startSession(t, &Config{BootDelay: 200 * time.Millisecond})
	expectType(t, conn, protocol.TypeBooting)

	send(t, conn, `{"type":"submit","input":"help"}`)
	send(t, conn, `{"type":"complete","input":"he"}`)

	expectType(t, conn, protocol.TypeReady)
	expectType(t, conn, protocol.TypeLines)

	send(t, conn, `{"type":"recall","direction":"up"}`)
	send(t, conn, `{"type":"submit","input":"exit"}`)
	lines := expectType(t, conn, protocol.TypeLines).Lines
	if lines[0].Text != "exit" {
		t.Errorf("submission during boot should be dropped, got %+v", lines)
	}
}

func TestSession_InvalidMessagesKeepConnectionOpen(t *testing.T) {
	_, conn := bootedSession(t, &Config{BootDelay: time.Millisecond})

	tests := []struct {
		raw     string
		wantErr string
	}{
		{`not json`, "malformed message"},
		{`{"type":"shell","input":"ls"}`, "unknown message type"},
		{`{"type":"recall","direction":"left"}`, "invalid message field"},
	}
	for _, tt := range tests {
		send(t, conn, tt.raw)
		msg := expectType(t, conn, protocol.TypeError)
		if !strings.Contains(msg.Error, tt.wantErr) {
			t.Errorf("error for %s = %q, want %q", tt.raw, msg.Error, tt.wantErr)
		}
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{0x7e, 0x03}); err != nil {
		t.Fatal(err)
	}
	if msg := expectType(t, conn, protocol.TypeError); !strings.Contains(msg.Error, "binary") {
		t.Errorf("binary frame error = %q", msg.Error)
	}

	send(t, conn, `{"type":"submit","input":"help"}`)
	expectType(t, conn, protocol.TypeLines)
}

func TestSession_IndependentSessions(t *testing.T) {
	srv := newTestServer(t, &Config{BootDelay: time.Millisecond})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	a, b := dial(t, url), dial(t, url)
	for _, c := range []*websocket.Conn{a, b} {
		expectType(t, c, protocol.TypeBooting)
		expectType(t, c, protocol.TypeReady)
		expectType(t, c, protocol.TypeLines)
	}
	waitFor(t, func() bool { return srv.ActiveSessions() == 2 })

	send(t, a, `{"type":"submit","input":"about"}`)
	expectType(t, a, protocol.TypeLines)
	expectType(t, a, protocol.TypeInput)

	// b has its own empty history.
	send(t, b, `{"type":"recall","direction":"up"}`)
	send(t, b, `{"type":"complete","input":"ab"}`)
	if got := expectType(t, b, protocol.TypeInput).Text(); got != "about" {
		t.Errorf("second session reply = %q, want the completion", got)
	}

	_ = a.Close()
	waitFor(t, func() bool { return srv.ActiveSessions() == 1 })
}

func TestSession_CloseDuringBoot(t *testing.T) {
	srv, conn := startSession(t, &Config{BootDelay: 100 * time.Millisecond})
	expectType(t, conn, protocol.TypeBooting)
	_ = conn.Close()
	waitFor(t, func() bool { return srv.ActiveSessions() == 0 })

	// The stopped timer must not fire into the closed session.
	time.Sleep(150 * time.Millisecond)
}

func TestShutdown_RejectsNewSessions(t *testing.T) {
	srv := newTestServer(t, &Config{BootDelay: time.Hour})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	// The first client never reads after booting, so closing it must not
	// hold up Shutdown or later connections.
	first := dial(t, url)
	expectType(t, first, protocol.TypeBooting)
	waitFor(t, func() bool { return srv.ActiveSessions() == 1 })

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Shutdown() waited for the full timeout")
	}
	if n := srv.ActiveSessions(); n != 0 {
		t.Fatalf("ActiveSessions() = %d after shutdown", n)
	}

	late := dial(t, url)
	_ = late.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := late.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("late client read error = %v, want going-away close", err)
	}
	if n := srv.ActiveSessions(); n != 0 {
		t.Errorf("ActiveSessions() = %d, late session was tracked", n)
	}
}
