// Package clipclient is the transport side of the clipboard sync facade.
//
// Every operation dials the daemon, performs one framed request/response
// exchange, and closes the connection. There are no persistent sessions and
// no retries: a transport failure, a codec failure, or any non-success
// status collapses into a single "synchronization failed" error (wrapping
// ErrSyncFailed) for the caller, and retry policy stays with the UI layer.
package clipclient

import (
	"errors"
	"fmt"
	"net"
	"time"

	"fmclip/internal/clipproto"
)

// ErrSyncFailed is the umbrella error for any failed exchange with the
// daemon.
var ErrSyncFailed = errors.New("clipboard synchronization failed")

// DefaultDialTimeout bounds how long a client waits for the daemon socket.
const DefaultDialTimeout = 2 * time.Second

// Client issues one-shot requests against the daemon socket.
type Client struct {
	socketPath  string
	dialTimeout time.Duration
}

// New returns a client for the given socket path. A non-positive timeout
// falls back to DefaultDialTimeout.
func New(socketPath string, dialTimeout time.Duration) *Client {
	if dialTimeout <= 0 {
		dialTimeout = DefaultDialTimeout
	}
	return &Client{socketPath: socketPath, dialTimeout: dialTimeout}
}

// GetCopied fetches the daemon's current "copied" selection set.
func (c *Client) GetCopied() ([]string, error) {
	resp, err := c.roundTrip(clipproto.Request{Command: clipproto.CommandGetCopy})
	if err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// GetCut fetches the daemon's current "cut" selection set.
func (c *Client) GetCut() ([]string, error) {
	resp, err := c.roundTrip(clipproto.Request{Command: clipproto.CommandGetCut})
	if err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// PublishCopied replaces the daemon's "copied" set with paths.
func (c *Client) PublishCopied(paths []string) error {
	_, err := c.roundTrip(clipproto.Request{Command: clipproto.CommandCopy, Files: paths})
	return err
}

// PublishCut replaces the daemon's "cut" set with paths.
func (c *Client) PublishCut(paths []string) error {
	_, err := c.roundTrip(clipproto.Request{Command: clipproto.CommandCut, Files: paths})
	return err
}

// PublishClear empties both of the daemon's selection sets.
func (c *Client) PublishClear() error {
	_, err := c.roundTrip(clipproto.Request{Command: clipproto.CommandClear})
	return err
}

func (c *Client) roundTrip(req clipproto.Request) (clipproto.Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.dialTimeout)
	if err != nil {
		return clipproto.Response{}, fmt.Errorf("%w: connect to %s: %w", ErrSyncFailed, c.socketPath, err)
	}
	defer conn.Close()

	if err := clipproto.WriteFrame(conn, clipproto.EncodeRequest(req)); err != nil {
		return clipproto.Response{}, fmt.Errorf("%w: send %s request: %v", ErrSyncFailed, req.Command, err)
	}

	payload, err := clipproto.ReadFrame(conn)
	if err != nil {
		return clipproto.Response{}, fmt.Errorf("%w: read %s response: %v", ErrSyncFailed, req.Command, err)
	}

	resp, err := clipproto.DecodeResponse(payload)
	if err != nil {
		return clipproto.Response{}, fmt.Errorf("%w: decode %s response: %v", ErrSyncFailed, req.Command, err)
	}

	if resp.Status != clipproto.StatusSuccess {
		return clipproto.Response{}, fmt.Errorf("%w: daemon answered %q to %s", ErrSyncFailed, resp.Status, req.Command)
	}
	return resp, nil
}
