package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// BestScore keeps the all-time best score in a plain text file.
// The file holds a single decimal integer and nothing else.
type BestScore struct {
	path   string
	best   int
	logger *log.Logger

	// writeFile is swapped in tests to observe writes.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// OpenBestScore creates a best-score store backed by path and loads it.
// A missing or unreadable file is not an error: the store starts at zero
// and rewrites the file.
func OpenBestScore(path string, logger *log.Logger) *BestScore {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &BestScore{
		path:      ExpandHome(path),
		logger:    logger,
		writeFile: os.WriteFile,
	}
	b.Load()
	return b
}

// Path returns the resolved file path.
func (b *BestScore) Path() string {
	return b.path
}

// Best returns the best score currently held in memory.
func (b *BestScore) Best() int {
	return b.best
}

// Load reads the best score from disk and returns it.
// Corrupt or missing records degrade to zero, and zero is written back.
func (b *BestScore) Load() int {
	data, err := os.ReadFile(b.path)
	if err == nil {
		value, parseErr := strconv.Atoi(strings.TrimSpace(string(data)))
		if parseErr == nil && value >= 0 {
			b.best = value
			return b.best
		}
		if parseErr == nil {
			parseErr = errors.New("negative score")
		}
		b.logger.Warn("best score file is corrupt, resetting", "path", b.path, "error", parseErr)
	} else if !errors.Is(err, fs.ErrNotExist) {
		b.logger.Warn("cannot read best score file, resetting", "path", b.path, "error", err)
	}

	b.best = 0
	b.save()
	return b.best
}

// UpdateIfHigher stores candidate as the new best when it beats the current one.
// Returns true if the best score changed. Nothing is written otherwise.
func (b *BestScore) UpdateIfHigher(candidate int) bool {
	if candidate <= b.best {
		return false
	}
	b.best = candidate
	b.save()
	b.logger.Info("new best score", "score", candidate)
	return true
}

// save writes the in-memory best score. Failures are logged, never returned:
// losing a record must not interrupt a round.
func (b *BestScore) save() {
	if dir := filepath.Dir(b.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.logger.Warn("cannot create best score directory", "dir", dir, "error", err)
			return
		}
	}

	if err := b.writeFile(b.path, []byte(strconv.Itoa(b.best)), 0o644); err != nil {
		b.logger.Warn("cannot write best score file", "path", b.path, "error", err)
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
