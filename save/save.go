// Package save persists the player's progress between runs with gdata.
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "player"
)

// Progress is what survives a restart.
type Progress struct {
	// Health is the player's health when the game closed. Zero means unset.
	Health float64 `yaml:"health"`
	Runs   int     `yaml:"runs"`
	// Kills counts enemies drained to death across runs.
	Kills int `yaml:"kills"`
}

// Store loads and saves Progress. A nil gdata manager keeps everything in
// memory.
type Store struct {
	manager  *gdata.Manager
	progress Progress
}

// Open creates a store under the per-user data dir for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", appName, err)
	}
	return NewStore(m), nil
}

// NewStore wraps m and loads any saved progress. Load failures are logged
// and leave the zero Progress in place.
func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m}
	if err := s.Load(); err != nil {
		log.Printf("save: load failed, starting fresh: %v", err)
	}
	return s
}

func (s *Store) Load() error {
	s.progress = Progress{}
	if s.manager == nil || !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("save: load progress: %w", err)
	}

	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("save: unmarshal progress: %w", err)
	}
	s.progress = p
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.progress)
	if err != nil {
		return fmt.Errorf("save: marshal progress: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("save: write progress: %w", err)
	}
	return nil
}

func (s *Store) Progress() Progress {
	return s.progress
}

// Record updates the in-memory progress; call Save to persist it.
func (s *Store) Record(health float64, kills int) {
	if health < 0 {
		health = 0
	}
	s.progress.Health = health
	s.progress.Kills += kills
}

// BeginRun counts a new run and returns the saved health, or 0 when none.
func (s *Store) BeginRun() float64 {
	s.progress.Runs++
	return s.progress.Health
}
