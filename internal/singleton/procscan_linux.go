//go:build linux

package singleton

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// The kernel truncates /proc/<pid>/comm to 15 bytes.
const commMaxLen = 15

// InstanceCount counts running processes whose executable name matches
// name, including the calling process. It scans /proc directly so no
// external tool is needed. The result is best-effort: processes may start
// or exit while the scan runs, and unreadable entries are skipped.
func InstanceCount(name string) (int, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return 0, err
	}

	want := name
	if len(want) > commMaxLen {
		want = want[:commMaxLen]
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := strconv.Atoi(entry.Name()); err != nil {
			continue
		}
		comm, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "comm"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(comm)) == want {
			count++
		}
	}
	return count, nil
}
