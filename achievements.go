package diorama

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// AchievementDefinition declares one unlockable achievement. Trigger, when
// set, names a scene event that unlocks it via Achievements.Trigger.
type AchievementDefinition struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Trigger     string `yaml:"trigger,omitempty"`
}

// achievementRecord is the on-disk form: a definition plus unlock state.
type achievementRecord struct {
	AchievementDefinition `yaml:",inline"`
	Unlocked              bool `yaml:"unlocked"`
}

type achievementState struct {
	definition AchievementDefinition
	unlocked   bool
}

// Notification announces a freshly unlocked achievement.
type Notification struct {
	Name        string
	Description string
}

// AchievementStatus is one row of a snapshot for display purposes.
type AchievementStatus struct {
	Name        string
	Description string
	Unlocked    bool
}

// Achievements tracks unlock state for a fixed catalog of achievements,
// queues unlock notifications, and saves dirty state back to disk.
type Achievements struct {
	entries       []achievementState
	ids           map[string]int
	triggers      map[string][]string
	notifications []Notification
	dirty         bool
	log           *zap.Logger
}

// NewAchievements builds a manager from definitions, all locked. IDs are
// trimmed and must be unique and non-empty.
func NewAchievements(definitions []AchievementDefinition, log *zap.Logger) (*Achievements, error) {
	records := make([]achievementRecord, len(definitions))
	for i, def := range definitions {
		records[i] = achievementRecord{AchievementDefinition: def}
	}
	return newAchievementsFromRecords(records, log)
}

func newAchievementsFromRecords(records []achievementRecord, log *zap.Logger) (*Achievements, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Achievements{
		entries:  make([]achievementState, 0, len(records)),
		ids:      make(map[string]int, len(records)),
		triggers: make(map[string][]string),
		log:      log,
	}

	for _, record := range records {
		id := strings.TrimSpace(record.ID)
		if id == "" {
			return nil, fmt.Errorf("diorama: achievement id must not be empty")
		}
		if _, exists := a.ids[id]; exists {
			return nil, fmt.Errorf("diorama: duplicate achievement id %q", id)
		}

		def := AchievementDefinition{
			ID:          id,
			Name:        record.Name,
			Description: record.Description,
			Trigger:     strings.TrimSpace(record.Trigger),
		}
		if def.Trigger != "" {
			a.triggers[def.Trigger] = append(a.triggers[def.Trigger], id)
		}
		a.ids[id] = len(a.entries)
		a.entries = append(a.entries, achievementState{
			definition: def,
			unlocked:   record.Unlocked,
		})
	}
	return a, nil
}

// LoadAchievements reads a YAML catalog from path. Both a bare list and a
// document with a top-level "achievements" key are accepted. Records may
// carry persisted unlock state.
func LoadAchievements(path string, log *zap.Logger) (*Achievements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("diorama: read achievements %s: %w", path, err)
	}

	var records []achievementRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		var wrapped struct {
			Achievements []achievementRecord `yaml:"achievements"`
		}
		if err2 := yaml.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("diorama: parse achievements %s: %w", path, err)
		}
		records = wrapped.Achievements
	}
	return newAchievementsFromRecords(records, log)
}

// IsUnlocked reports whether the achievement with the given id is
// unlocked. Unknown ids report false.
func (a *Achievements) IsUnlocked(id string) bool {
	idx, ok := a.ids[id]
	if !ok {
		return false
	}
	return a.entries[idx].unlocked
}

// Grant unlocks the achievement with the given id. It reports whether the
// state changed; granting an unknown id is an error.
func (a *Achievements) Grant(id string) (bool, error) {
	if _, ok := a.ids[id]; !ok {
		return false, fmt.Errorf("diorama: achievement not found: %s", id)
	}
	return a.grant(id), nil
}

// Trigger unlocks every achievement bound to the named trigger, returning
// the ids whose state changed. Unknown triggers unlock nothing.
func (a *Achievements) Trigger(trigger string) []string {
	var unlocked []string
	for _, id := range a.triggers[trigger] {
		if a.grant(id) {
			unlocked = append(unlocked, id)
		}
	}
	return unlocked
}

func (a *Achievements) grant(id string) bool {
	idx, ok := a.ids[id]
	if !ok {
		return false
	}
	entry := &a.entries[idx]
	if entry.unlocked {
		return false
	}
	entry.unlocked = true
	a.dirty = true
	a.notifications = append(a.notifications, Notification{
		Name:        entry.definition.Name,
		Description: entry.definition.Description,
	})
	a.log.Info("achievement unlocked", zap.String("id", id))
	return true
}

// TakeNotifications drains and returns all pending unlock notifications.
func (a *Achievements) TakeNotifications() []Notification {
	out := a.notifications
	a.notifications = nil
	return out
}

// Snapshot returns the display state of every achievement in catalog order.
func (a *Achievements) Snapshot() []AchievementStatus {
	out := make([]AchievementStatus, len(a.entries))
	for i, entry := range a.entries {
		out[i] = AchievementStatus{
			Name:        entry.definition.Name,
			Description: entry.definition.Description,
			Unlocked:    entry.unlocked,
		}
	}
	return out
}

// Save writes the catalog with unlock state to path as YAML, creating
// parent directories as needed. It reports whether anything was written:
// a clean manager is a no-op.
func (a *Achievements) Save(path string) (bool, error) {
	if !a.dirty {
		return false, nil
	}

	records := make([]achievementRecord, len(a.entries))
	for i, entry := range a.entries {
		records[i] = achievementRecord{
			AchievementDefinition: entry.definition,
			Unlocked:              entry.unlocked,
		}
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return false, fmt.Errorf("diorama: marshal achievements: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("diorama: create achievements dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("diorama: write achievements %s: %w", path, err)
	}
	a.dirty = false
	return true, nil
}
