// Package logging provides structured logging for termfolio.
//
// It wraps a process-wide zap logger with small helpers so call sites read
// the same everywhere:
//
//	logging.Info("Session started",
//	    zap.String("session", id),
//	    zap.String("remote_addr", "192.168.1.100"),
//	)
//
// # Silent by default
//
// The interactive terminal owns stdout, so nothing is logged unless a level
// is requested, either with --log-level or through TERMFOLIO_LOG_LEVEL:
//
//	TERMFOLIO_LOG_LEVEL=debug termfolio serve
//
// Valid levels are debug, info, warn and error. An unknown non-empty value
// falls back to info.
//
// # Domain helpers
//
//	logging.LogConnection(remoteAddr, "websocket_upgraded")
//	logging.LogHTTPRequest(remoteAddr, method, path, status, duration)
//	logging.LogWebSocketMessage(remoteAddr, "received", websocket.TextMessage, payload)
//	logging.LogCommand(sessionID, input, "output")
//
// All functions are safe for concurrent use.
package logging
