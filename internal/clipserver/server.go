package clipserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"

	"fmclip/internal/clipproto"
	"fmclip/internal/clipstore"
	"fmclip/internal/logging"
)

// Server exposes the selection store over a unix domain socket.
type Server struct {
	path     string
	store    *clipstore.Store
	logger   *slog.Logger
	listener net.Listener

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New binds the socket at path. A stale socket file from a previous run is
// removed first; any remaining bind failure is fatal for the caller, who
// should not retry.
func New(ctx context.Context, path string, store *clipstore.Store, logger *slog.Logger) (*Server, error) {
	if store == nil {
		return nil, errors.New("clipboard server requires a store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("bind socket %s: %w", path, err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:     path,
		store:    store,
		logger:   logger,
		listener: listener,
		ctx:      serverCtx,
		cancel:   cancel,
	}, nil
}

// Serve starts accepting connections until the context is canceled or the
// server is closed. It returns immediately; accepting happens in the
// background.
func (s *Server) Serve() {
	s.logger.Info("clipboard server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				defer c.Close()
				s.handle(c)
			}(conn)
		}
	}()
}

// Close stops the server, waits for in-flight handlers, and removes the
// socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

// handle performs the single request/response exchange for one connection.
func (s *Server) handle(conn net.Conn) {
	payload, err := clipproto.ReadFrame(conn)
	if err != nil {
		// Connection died before a full request arrived; there is no
		// one to answer.
		s.logger.Warn("drop connection", logging.Error(err))
		return
	}

	var resp clipproto.Response
	req, err := clipproto.DecodeRequest(payload)
	if err != nil {
		s.logger.Warn("malformed request", logging.Error(err))
		resp = clipproto.Response{Status: clipproto.StatusError}
	} else {
		resp = s.dispatch(req)
	}

	if err := clipproto.WriteFrame(conn, clipproto.EncodeResponse(resp)); err != nil {
		s.logger.Warn("write response", logging.Error(err))
	}
}

func (s *Server) dispatch(req clipproto.Request) clipproto.Response {
	switch req.Command {
	case clipproto.CommandCopy:
		s.store.Replace(clipstore.Copied, req.Files)
	case clipproto.CommandCut:
		s.store.Replace(clipstore.Cut, req.Files)
	case clipproto.CommandClear:
		s.store.Clear()
	case clipproto.CommandGetCopy:
		return clipproto.Response{
			Status: clipproto.StatusSuccess,
			Files:  s.store.Snapshot(clipstore.Copied),
		}
	case clipproto.CommandGetCut:
		return clipproto.Response{
			Status: clipproto.StatusSuccess,
			Files:  s.store.Snapshot(clipstore.Cut),
		}
	default:
		s.logger.Debug("unknown command", logging.String("command", req.Command.String()))
		return clipproto.Response{Status: clipproto.StatusUnknown}
	}

	s.logger.Debug("request applied",
		logging.String("command", req.Command.String()),
		logging.Int("files", len(req.Files)))
	return clipproto.Response{Status: clipproto.StatusSuccess}
}
