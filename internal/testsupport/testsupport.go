// Package testsupport provides shared fixtures for tests that need a
// configured environment or a live clipboard server.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fmclip/internal/clipserver"
	"fmclip/internal/clipstore"
	"fmclip/internal/config"
	"fmclip/internal/logging"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Socket.Path = SocketPath(t)
	cfg.Paths.RuntimeDir = filepath.Join(base, "runtime")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// SocketPath returns a fresh socket path kept short enough for the unix
// sockaddr limit, which t.TempDir can exceed on long test names.
func SocketPath(t testing.TB) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "fmclip")
	if err != nil {
		t.Fatalf("mkdir socket dir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.RemoveAll(dir)
	})
	return filepath.Join(dir, "fm.sock")
}

// StartServer runs a clipboard server on a fresh socket and returns the
// socket path together with the store behind it. The server is shut down
// during test cleanup.
func StartServer(t testing.TB) (string, *clipstore.Store) {
	t.Helper()

	store := clipstore.New()
	socket := SocketPath(t)

	ctx, cancel := context.WithCancel(context.Background())
	srv, err := clipserver.New(ctx, socket, store, logging.NewNop())
	if err != nil {
		cancel()
		t.Fatalf("clipserver.New: %v", err)
	}
	srv.Serve()
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return socket, store
}
