// Package daemonctl orchestrates the daemon process from the CLI side:
// launching it detached, waiting for its socket, probing liveness, and
// stopping it through its PID file.
package daemonctl

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"syscall"
	"time"

	"fmclip/internal/singleton"
)

// ErrDaemonNotRunning indicates no daemon could be found to act on.
var ErrDaemonNotRunning = errors.New("daemon not running")

const pollInterval = 100 * time.Millisecond

// Launch starts a detached daemon process and returns its PID. The child is
// released immediately; its lifetime is not tied to the CLI process.
func Launch(executablePath string, args ...string) (int, error) {
	if executablePath == "" {
		return 0, errors.New("resolve executable: executable path is empty")
	}

	proc := exec.Command(executablePath, args...)
	if err := proc.Start(); err != nil {
		return 0, fmt.Errorf("launch daemon: %w", err)
	}
	pid := proc.Process.Pid
	if err := proc.Process.Release(); err != nil {
		return pid, fmt.Errorf("release daemon process: %w", err)
	}
	return pid, nil
}

// WaitForSocket polls until the daemon socket accepts a connection or the
// timeout elapses.
func WaitForSocket(socketPath string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("unix", socketPath, pollInterval)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		lastErr = err
		time.Sleep(pollInterval)
	}
	if lastErr == nil {
		lastErr = errors.New("timeout waiting for daemon")
	}
	return fmt.Errorf("daemon failed to start: %w", lastErr)
}

// Running reports whether a daemon is serving the socket: the path must
// exist, be a socket, and accept a connection.
func Running(socketPath string) bool {
	info, err := os.Stat(socketPath)
	if err != nil || info.Mode()&os.ModeSocket == 0 {
		return false
	}
	conn, err := net.DialTimeout("unix", socketPath, time.Second)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// Stop signals the daemon recorded in pidPath with SIGTERM and waits up to
// gracePeriod for it to exit, escalating to SIGKILL. It returns the PID
// that was signaled.
func Stop(pidPath string, gracePeriod time.Duration) (int, error) {
	pid, err := singleton.ReadPIDFile(pidPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, ErrDaemonNotRunning
		}
		return 0, err
	}
	if pid <= 0 || pid == os.Getpid() {
		return 0, fmt.Errorf("refusing to signal pid %d", pid)
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return 0, fmt.Errorf("locate daemon process %d: %w", pid, err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		if errors.Is(err, os.ErrProcessDone) || errors.Is(err, syscall.ESRCH) {
			_ = os.Remove(pidPath)
			return 0, ErrDaemonNotRunning
		}
		return 0, fmt.Errorf("signal daemon process %d: %w", pid, err)
	}

	deadline := time.Now().Add(gracePeriod)
	for time.Now().Before(deadline) {
		if !processAlive(pid) {
			return pid, nil
		}
		time.Sleep(pollInterval)
	}

	if err := proc.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return pid, fmt.Errorf("kill daemon process %d: %w", pid, err)
	}
	return pid, nil
}

// processAlive checks the process with signal 0.
func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	// EPERM means the process exists but belongs to someone else.
	return errors.Is(err, syscall.EPERM)
}
