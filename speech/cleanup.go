package speech

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// CleanupAudioFiles bounds disk usage in the audio directory: generated mp3
// files beyond the keepLatest newest, or older than maxAge, are removed.
// The sweep is best effort and concurrent-safe in the loose sense: a file
// already deleted by another sweep is treated as a no-op.
func CleanupAudioFiles(audioDir string, keepLatest int, maxAge time.Duration) {
	pattern := filepath.Join(audioDir, "summary_*.mp3")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	type entry struct {
		path string
		mod  time.Time
	}
	entries := make([]entry, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		entries = append(entries, entry{path: p, mod: info.ModTime()})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].mod.After(entries[j].mod)
	})

	cutoff := time.Now().Add(-maxAge)
	for i, e := range entries {
		if i < keepLatest && e.mod.After(cutoff) {
			continue
		}
		_ = os.Remove(e.path)
	}
}
