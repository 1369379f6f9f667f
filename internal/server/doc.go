// Package server serves the portfolio terminal to browsers.
//
// GET / returns a single page that opens a WebSocket to /ws. Each
// WebSocket connection gets its own terminal session: the server sends
// "booting", starts a one-shot boot timer, and sends "ready" plus the
// welcome banner when it fires. Client messages (submit, recall, complete)
// are applied to the session and answered with transcript lines and input
// updates; see package protocol for the message format. GET /healthz
// answers "ok" for load balancers and container probes.
//
// # Connection Lifecycle
//
//   - One read loop per connection decodes client messages.
//   - One writer goroutine owns all data writes and sends keepalive pings.
//   - The boot timer is stopped when the connection ends, so a visitor who
//     leaves during boot never triggers a write to a closed socket.
//   - Invalid client messages are answered with an "error" message; the
//     connection stays open.
//
// # TLS
//
// When both a certificate and a key are configured the server only speaks
// HTTPS (TLS 1.2 or newer) and the page connects with wss://.
//
// # Usage Example
//
//	srv, err := server.New(&server.Config{
//	    Host:      "0.0.0.0",
//	    Port:      8080,
//	    BootDelay: time.Second,
//	}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Blocks until SIGINT or SIGTERM
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Server methods are safe for concurrent use. Sessions are tracked under a
// mutex and closed on Shutdown.
package server
