package server

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alexchen/termfolio/internal/logging"
	"github.com/alexchen/termfolio/internal/protocol"
	"github.com/alexchen/termfolio/internal/terminal"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Outgoing messages buffered per session before the client is dropped
	sendBuffer = 64
)

var errBinaryFrame = errors.New("binary frames are not supported")

// wsSession runs one terminal.Session over one WebSocket connection. The
// read loop and the boot timer mutate the terminal under mu; a single
// writer goroutine owns all data writes to conn.
type wsSession struct {
	id         string
	remoteAddr string
	conn       *websocket.Conn

	mu   sync.Mutex
	term *terminal.Session

	send      chan *protocol.ServerMessage
	done      chan struct{}
	closeOnce sync.Once
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written an HTTP error response.
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	sess := &wsSession{
		id:         fmt.Sprintf("%s#%d", r.RemoteAddr, s.nextID.Add(1)),
		remoteAddr: r.RemoteAddr,
		conn:       conn,
		term:       s.newTerminal(),
		send:       make(chan *protocol.ServerMessage, sendBuffer),
		done:       make(chan struct{}),
	}

	if !s.track(sess) {
		logging.Info("Rejecting session during shutdown", zap.String("remote_addr", r.RemoteAddr))
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		_ = conn.Close()
		return
	}
	defer s.untrack(sess)

	sess.run(s.config.BootDelay)
}

func (ws *wsSession) run(bootDelay time.Duration) {
	logging.LogConnection(ws.remoteAddr, "session_opened")
	defer logging.LogConnection(ws.remoteAddr, "session_closed")

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ws.writeLoop()
	}()

	ws.mu.Lock()
	ws.enqueue(protocol.NewBooting())
	ws.mu.Unlock()

	bootTimer := time.AfterFunc(bootDelay, ws.boot)
	defer bootTimer.Stop()

	ws.readLoop()
	ws.close()
	<-writerDone
}

// boot fires once the boot delay elapses.
func (ws *wsSession) boot() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	select {
	case <-ws.done:
		return
	default:
	}

	lines := ws.term.Boot()
	if lines == nil {
		return
	}
	ws.enqueue(protocol.NewReady())
	ws.enqueue(protocol.NewLines(lines))
}

func (ws *wsSession) readLoop() {
	ws.conn.SetReadLimit(protocol.MaxMessageSize)
	_ = ws.conn.SetReadDeadline(time.Now().Add(pongWait))
	ws.conn.SetPongHandler(func(string) error {
		return ws.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		msgType, data, err := ws.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Info("Connection closed unexpectedly",
					zap.String("remote_addr", ws.remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		logging.LogWebSocketMessage(ws.remoteAddr, "received", msgType, data)

		if msgType != websocket.TextMessage {
			ws.reject(errBinaryFrame)
			continue
		}
		msg, err := protocol.Decode(data)
		if err != nil {
			ws.reject(err)
			continue
		}

		ws.mu.Lock()
		err = protocol.Dispatch(ws, msg)
		ws.mu.Unlock()
		if err != nil {
			ws.reject(err)
		}
	}
}

func (ws *wsSession) reject(err error) {
	logging.Debug("Rejected client message",
		zap.String("session", ws.id),
		zap.Error(err),
	)
	ws.mu.Lock()
	ws.enqueue(protocol.NewError(err))
	ws.mu.Unlock()
}

func (ws *wsSession) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-ws.send:
			data, err := protocol.Encode(msg)
			if err != nil {
				logging.Error("Failed to encode message", zap.String("session", ws.id), zap.Error(err))
				continue
			}
			_ = ws.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logging.Debug("Write failed", zap.String("session", ws.id), zap.Error(err))
				ws.close()
				return
			}
			logging.LogWebSocketMessage(ws.remoteAddr, "sent", websocket.TextMessage, data)

		case <-ticker.C:
			_ = ws.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				ws.close()
				return
			}

		case <-ws.done:
			return
		}
	}
}

// enqueue queues a message for the writer. Callers hold mu so messages
// leave in the order the terminal produced them. A client that stops
// reading is disconnected rather than blocking the session.
func (ws *wsSession) enqueue(msg *protocol.ServerMessage) {
	select {
	case <-ws.done:
		return
	default:
	}
	select {
	case ws.send <- msg:
	default:
		logging.Warn("Send buffer full, dropping client", zap.String("session", ws.id))
		ws.close()
	}
}

// close sends a close frame and tears down the connection. Safe to call
// from any goroutine, any number of times.
func (ws *wsSession) close() {
	ws.closeOnce.Do(func() {
		close(ws.done)
		_ = ws.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = ws.conn.Close()
	})
}

// HandleSubmit runs one input line.
func (ws *wsSession) HandleSubmit(input string) error {
	if !ws.term.Ready() {
		return nil
	}
	up := ws.term.SubmitLine(input)
	if !up.Cleared && len(up.Appended) == 0 {
		return nil
	}
	logging.LogCommand(ws.id, input, up.Result.Kind.String())

	if up.Cleared {
		ws.enqueue(protocol.NewClear())
	}
	if len(up.Appended) > 0 {
		ws.enqueue(protocol.NewLines(up.Appended))
	}
	ws.enqueue(protocol.NewInput(ws.term.Input()))
	return nil
}

// HandleRecall walks the history and sends the recalled command.
func (ws *wsSession) HandleRecall(d terminal.Direction) error {
	if !ws.term.Ready() {
		return nil
	}
	if ws.term.Recall(d) {
		ws.enqueue(protocol.NewInput(ws.term.Input()))
	}
	return nil
}

// HandleComplete answers a tab press. Nothing is sent when there is no
// unique match.
func (ws *wsSession) HandleComplete(input string) error {
	if !ws.term.Ready() {
		return nil
	}
	ws.term.SetInput(input)
	if ws.term.Complete() {
		ws.enqueue(protocol.NewInput(ws.term.Input()))
	}
	return nil
}
