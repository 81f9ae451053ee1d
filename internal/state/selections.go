// Package state remembers the last value picked by each named picker.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/wheelr/internal/logger"
)

const fileName = "selections.json"

var log = logger.Named("state")

// Selections maps picker keys to their last accepted value.
type Selections struct {
	Pickers map[string]Selection `json:"pickers"`
}

// Selection is one remembered pick: the value of every wheel, left to right,
// plus the text printed for it.
type Selection struct {
	Values    []int     `json:"values"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key turns a picker name into the key used on disk and in journal subjects.
// An empty name maps to "default".
func Key(name string) string {
	if k := slug.Make(name); k != "" {
		return k
	}
	return "default"
}

// DefaultSelections returns an empty set of selections.
func DefaultSelections() *Selections {
	return &Selections{Pickers: make(map[string]Selection)}
}

// Get returns the remembered selection for name.
func (s *Selections) Get(name string) (Selection, bool) {
	sel, ok := s.Pickers[Key(name)]
	return sel, ok
}

// Put records values as the latest selection for name.
func (s *Selections) Put(name string, values []int, text string) {
	if s.Pickers == nil {
		s.Pickers = make(map[string]Selection)
	}
	s.Pickers[Key(name)] = Selection{
		Values:    slices.Clone(values),
		Text:      text,
		UpdatedAt: time.Now(),
	}
}

// Load reads the selections from {dataDir}/selections.json.
// Returns empty selections if the file doesn't exist or on error.
func Load(dataDir string) *Selections {
	path := filepath.Join(dataDir, fileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultSelections()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Failed to read selections file: %v", err)
		return DefaultSelections()
	}

	var sel Selections
	if err := json.Unmarshal(data, &sel); err != nil {
		log.Warn("Failed to parse selections JSON: %v", err)
		return DefaultSelections()
	}
	if sel.Pickers == nil {
		sel.Pickers = make(map[string]Selection)
	}

	return &sel
}

// Save writes the selections to {dataDir}/selections.json.
// Creates the data directory if it doesn't exist.
func Save(dataDir string, sel *Selections) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, fileName)

	data, err := json.MarshalIndent(sel, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling selections: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing selections file: %w", err)
	}

	log.Debug("Selections saved to %s", path)
	return nil
}
