// Package clipproto defines the wire protocol spoken between the clipboard
// daemon and its clients.
//
// Every message travels as a 4-byte big-endian length prefix followed by a
// protobuf-encoded payload. The package owns the Request/Response schemas,
// their binary codecs, and the framing helpers; it has no knowledge of
// sockets and operates purely on byte slices and io.Reader/io.Writer.
//
// Framing failures, payload decode failures, and payload encode failures are
// reported through distinct sentinel errors so callers can tell a truncated
// connection apart from a malformed message.
package clipproto
