package clipproto

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrFraming reports a connection that closed or errored before a complete
// frame (length prefix plus declared payload) could be read, or a declared
// length the receiver refuses to allocate.
var ErrFraming = errors.New("clipproto: incomplete frame")

// ErrEncode reports a payload that cannot be represented in a frame.
var ErrEncode = errors.New("clipproto: payload too large for frame")

// MaxFrameSize caps the payload length a receiver will accept. Selection
// sets are lists of file paths; anything near this limit indicates a
// corrupt or hostile peer rather than a real clipboard.
const MaxFrameSize = 16 << 20

// WriteFrame writes a 4-byte big-endian length prefix followed by payload.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return fmt.Errorf("%w: %d bytes", ErrEncode, len(payload))
	}
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}

// ReadFrame reads one length-prefixed frame and returns its payload. A short
// read of either the header or the payload is reported as ErrFraming.
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: read length prefix: %v", ErrFraming, err)
	}
	length := binary.BigEndian.Uint32(header[:])
	if length > MaxFrameSize {
		return nil, fmt.Errorf("%w: declared length %d exceeds limit", ErrFraming, length)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: read %d-byte payload: %v", ErrFraming, length, err)
	}
	return payload, nil
}
