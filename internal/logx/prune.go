package logx

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Prune removes the oldest run logs in dir so that at most keep remain. Log
// names are timestamps, so lexical order is chronological. It returns the
// number of files removed.
func Prune(dir string, keep int) (int, error) {
	if keep < 1 {
		return 0, fmt.Errorf("prune logs: keep must be at least 1, got %d", keep)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read logs directory: %w", err)
	}

	var logs []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".log") {
			logs = append(logs, e.Name())
		}
	}
	if len(logs) <= keep {
		return 0, nil
	}
	sort.Strings(logs)

	removed := 0
	for _, name := range logs[:len(logs)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return removed, fmt.Errorf("remove %s: %w", name, err)
		}
		removed++
	}
	return removed, nil
}
