package main

import (
	"path/filepath"
	"strings"
	"testing"

	"fmclip/internal/clipstore"
)

func TestCopyListAndClear(t *testing.T) {
	env := setupCLITestEnv(t)

	fileA := filepath.Join(env.baseDir, "a.txt")
	fileB := filepath.Join(env.baseDir, "b.txt")

	out, _, err := runCLI(t, []string{"copy", fileA, fileB}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	requireContains(t, out, "Marked 2 path(s) as copied")

	got := env.store.Snapshot(clipstore.Copied)
	if len(got) != 2 {
		t.Fatalf("expected 2 copied paths in daemon, got %v", got)
	}

	out, _, err = runCLI(t, []string{"list"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, fileA)
	requireContains(t, out, fileB)
	requireContains(t, out, "copied")

	out, _, err = runCLI(t, []string{"clear"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	requireContains(t, out, "Clipboard cleared")

	if n := env.store.Len(clipstore.Copied); n != 0 {
		t.Fatalf("expected empty copied set after clear, got %d", n)
	}
}

func TestCutPublishesSeparateSet(t *testing.T) {
	env := setupCLITestEnv(t)

	file := filepath.Join(env.baseDir, "doomed.txt")
	out, _, err := runCLI(t, []string{"cut", file}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("cut: %v", err)
	}
	requireContains(t, out, "Marked 1 path(s) as cut")

	if n := env.store.Len(clipstore.Cut); n != 1 {
		t.Fatalf("expected 1 cut path, got %d", n)
	}
	if n := env.store.Len(clipstore.Copied); n != 0 {
		t.Fatalf("cut must not touch the copied set, got %d entries", n)
	}
}

func TestListFilterAndEmptyClipboard(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"list"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	requireContains(t, out, "Clipboard is empty")

	env.store.Replace(clipstore.Copied, []string{"/tmp/kept.txt"})
	env.store.Replace(clipstore.Cut, []string{"/tmp/moved.txt"})

	out, _, err = runCLI(t, []string{"list", "cut"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("list cut: %v", err)
	}
	requireContains(t, out, "/tmp/moved.txt")
	if strings.Contains(out, "/tmp/kept.txt") {
		t.Fatalf("cut filter must hide copied entries: %q", out)
	}
}

func TestSyncReportsCounts(t *testing.T) {
	env := setupCLITestEnv(t)

	env.store.Replace(clipstore.Copied, []string{"/tmp/a", "/tmp/b"})
	env.store.Replace(clipstore.Cut, []string{"/tmp/c"})

	out, _, err := runCLI(t, []string{"sync"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	requireContains(t, out, "Synchronized: 2 copied, 1 cut")
}

func TestCopyMergesWithDaemonState(t *testing.T) {
	env := setupCLITestEnv(t)

	env.store.Replace(clipstore.Copied, []string{"/tmp/existing.txt"})

	file := filepath.Join(env.baseDir, "new.txt")
	if _, _, err := runCLI(t, []string{"copy", file}, env.socketPath, env.configPath); err != nil {
		t.Fatalf("copy: %v", err)
	}

	got := env.store.Snapshot(clipstore.Copied)
	if len(got) != 2 {
		t.Fatalf("expected copy to extend the daemon set, got %v", got)
	}
}

func TestCommandsFailWithoutDaemon(t *testing.T) {
	env := setupCLITestEnv(t)
	deadSocket := filepath.Join(env.baseDir, "dead.sock")

	_, _, err := runCLI(t, []string{"list"}, deadSocket, env.configPath)
	if err == nil {
		t.Fatal("expected list to fail without a daemon")
	}
	requireContains(t, err.Error(), "fmclip daemon start")
}
