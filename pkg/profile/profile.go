package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Profile remembers the local driver between runs
type Profile struct {
	Name        string    `json:"name"`
	LastPlayed  time.Time `json:"last_played"`
	GamesPlayed int       `json:"games_played"`
	BestScore   int       `json:"best_score"`
}

// DefaultPath returns ~/.neon-rush/profile.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".neon-rush", "profile.json"), nil
}

// RecordGame folds a finished run into the profile
func (p *Profile) RecordGame(name string, score int) {
	p.Name = name
	p.LastPlayed = time.Now()
	p.GamesPlayed++
	if score > p.BestScore {
		p.BestScore = score
	}
}

// SaveToFile saves the profile as JSON, creating the parent directory
func (p *Profile) SaveToFile(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0o644)
}

// LoadFromFile loads a profile. A missing file yields an empty profile.
func LoadFromFile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return &Profile{}, nil
	}
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return &p, nil
}
