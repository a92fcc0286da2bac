package highscore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// FileStore keeps the leaderboard in a text file, one "<label>,<score>" per line
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore uses the file at path, which need not exist yet
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultFilePath is ~/.neon-rush/highscores.txt
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".neon-rush", "highscores.txt")
}

// Path returns the backing file
func (f *FileStore) Path() string { return f.path }

// Record adds a run, re-sorts the list and keeps the top MaxEntries
func (f *FileStore) Record(ctx context.Context, label string, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.readAll()
	if err != nil {
		return err
	}
	entries = rank(append(entries, Entry{Label: Sanitize(label), Score: score}), MaxEntries)
	return f.writeAll(entries)
}

// TopN returns up to n entries, highest score first
func (f *FileStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.readAll()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	return rank(entries, n), nil
}

// readAll loads every well-formed line. A missing file is an empty list.
func (f *FileStore) readAll() ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high scores: %w", err)
	}

	entries := make([]Entry, 0, MaxEntries)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		entry, ok := parseLine(scanner.Text())
		if !ok {
			log.Debug().Str("path", f.path).Int("line", lineNo).Msg("skipping malformed high score")
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan high scores: %w", err)
	}
	return entries, nil
}

func parseLine(line string) (Entry, bool) {
	label, raw, found := strings.Cut(line, ",")
	if !found {
		return Entry{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Entry{}, false
	}
	return Entry{Label: strings.TrimSpace(label), Score: score}, true
}

// writeAll replaces the file through a temp file and rename, so a crash
// mid-write leaves the previous list intact.
func (f *FileStore) writeAll(entries []Entry) error {
	dir := filepath.Dir(f.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&buf, "%s,%d\n", e.Label, e.Score)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp high scores: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write high scores: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close high scores: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace high scores: %w", err)
	}
	return nil
}
