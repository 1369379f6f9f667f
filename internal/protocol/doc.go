// Package protocol defines the JSON messages exchanged between the browser
// terminal and the server over a WebSocket.
//
// Every message is a single text frame holding one JSON object with a
// "type" field.
//
// # Client Messages
//
//   - submit: {"type":"submit","input":"help"} runs the input line.
//   - recall: {"type":"recall","direction":"up"} walks the command history.
//   - complete: {"type":"complete","input":"he"} asks for tab completion.
//
// # Server Messages
//
//   - booting: the session exists but does not accept input yet.
//   - ready: the boot delay elapsed; input is accepted from now on.
//   - lines: transcript lines appended by a submission or by boot.
//   - clear: the transcript was emptied.
//   - input: replace the input field with the given text.
//   - error: the last client message was rejected. The connection stays open.
//
// # Usage Example
//
//	msg, err := protocol.Decode(data)
//	if err != nil {
//	    out, _ := protocol.Encode(protocol.NewError(err))
//	    conn.WriteMessage(websocket.TextMessage, out)
//	    return
//	}
//	err = protocol.Dispatch(handler, msg)
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use.
package protocol
