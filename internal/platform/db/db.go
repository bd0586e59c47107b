package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
	"hrpro/internal/domain/leave"
)

// ErrNotFound reports that no snapshot exists yet; callers fall back to the
// seed dataset.
var ErrNotFound = errors.New("dataset not found")

// Dataset is the whole persistence unit. The five collections are always
// written together as one JSON document; a key absent on load is replaced by
// its seed default, which is the only schema-versioning mechanism.
type Dataset struct {
	Employees      []core.Employee      `json:"employees"`
	Attendance     []attendance.Record  `json:"attendance"`
	Leaves         []leave.Request      `json:"leaves"`
	ViolationTypes []core.ViolationType `json:"violationTypes"`
	WorkSettings   *core.WorkSettings   `json:"workSettings"`
}

// Store persists the dataset as a single JSON file at a fixed path, the
// server-side counterpart of the original single localStorage key.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file yields ErrNotFound; a corrupt file
// yields a wrapped parse error. Both cases degrade to seed data in the
// caller and must never be fatal.
func (s *Store) Load() (Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Dataset{}, ErrNotFound
		}
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}

	var dataset Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	return dataset, nil
}

// Save overwrites the snapshot with the full dataset.
func (s *Store) Save(dataset Dataset) error {
	raw, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

// Reset deletes the snapshot. In-memory state is not touched; the caller is
// expected to discard the running session entirely afterwards.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reset dataset: %w", err)
	}
	return nil
}

// FillDefaults substitutes the seed default for any top-level collection
// missing from a partial document, leaving present collections untouched.
func FillDefaults(dataset Dataset) Dataset {
	seed := Seed()
	if dataset.Employees == nil {
		dataset.Employees = seed.Employees
	}
	if dataset.Attendance == nil {
		dataset.Attendance = seed.Attendance
	}
	if dataset.Leaves == nil {
		dataset.Leaves = seed.Leaves
	}
	if dataset.ViolationTypes == nil {
		dataset.ViolationTypes = seed.ViolationTypes
	}
	if dataset.WorkSettings == nil {
		dataset.WorkSettings = seed.WorkSettings
	}
	return dataset
}
