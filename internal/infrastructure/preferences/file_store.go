package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tiagokriok/taskflow/internal/domain"
)

const (
	defaultAppName  = "taskflow"
	defaultFileName = "state.json"
)

// FileStore keeps preferences as a JSON document in the user config dir.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns <user config dir>/<appName>/state.json.
func DefaultPath(appName string) (string, error) {
	if appName == "" {
		appName = defaultAppName
	}
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(cfgDir, appName, defaultFileName), nil
}

// Load returns defaults when the file is missing or unreadable as JSON; a
// broken state file must never block startup.
func (s *FileStore) Load(ctx context.Context) (domain.Preferences, error) {
	prefs := defaults()
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("read preferences: %w: %w", domain.ErrPersistence, err)
	}
	if err := json.Unmarshal(content, &prefs); err != nil {
		return defaults(), nil
	}
	if prefs.ViewMode == "" {
		prefs.ViewMode = domain.ViewBoard
	}
	return prefs, nil
}

func (s *FileStore) Save(ctx context.Context, prefs domain.Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w: %w", domain.ErrPersistence, err)
	}
	content, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func defaults() domain.Preferences {
	return domain.Preferences{ViewMode: domain.ViewBoard, ShowDetails: true}
}
