package singleton

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning indicates another daemon instance holds the lock.
var ErrAlreadyRunning = errors.New("another fmclipd instance is already running")

// Guard holds the daemon's advisory file lock and PID file.
type Guard struct {
	lock     *flock.Flock
	lockPath string
	pidPath  string
}

// NewGuard prepares a guard using the given lock and PID file paths.
// Nothing is acquired until Acquire is called.
func NewGuard(lockPath, pidPath string) *Guard {
	return &Guard{
		lock:     flock.New(lockPath),
		lockPath: lockPath,
		pidPath:  pidPath,
	}
}

// Acquire takes the advisory lock and writes the PID file. It must be called
// before the daemon binds its socket; ErrAlreadyRunning means another
// instance got there first.
func (g *Guard) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(g.lockPath), 0o755); err != nil {
		return fmt.Errorf("create runtime directory: %w", err)
	}

	ok, err := g.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire daemon lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}

	if err := writePIDFile(g.pidPath); err != nil {
		_ = g.lock.Unlock()
		return err
	}
	return nil
}

// Release drops the lock and removes the PID file.
func (g *Guard) Release() error {
	if err := os.Remove(g.pidPath); err != nil && !os.IsNotExist(err) {
		_ = g.lock.Unlock()
		return fmt.Errorf("remove pid file: %w", err)
	}
	if err := g.lock.Unlock(); err != nil {
		return fmt.Errorf("release daemon lock: %w", err)
	}
	return nil
}

// LockPath returns the lock file location.
func (g *Guard) LockPath() string { return g.lockPath }

// PIDPath returns the PID file location.
func (g *Guard) PIDPath() string { return g.pidPath }

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create pid directory: %w", err)
	}
	value := strconv.Itoa(os.Getpid()) + "\n"
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	return nil
}

// ReadPIDFile returns the PID recorded at path.
func ReadPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read pid file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid pid in %q: %w", path, err)
	}
	return pid, nil
}
