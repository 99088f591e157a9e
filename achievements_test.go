package diorama

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testDefinitions() []AchievementDefinition {
	return []AchievementDefinition{
		{ID: "first_steps", Name: "First Steps", Description: "Finish the intro.", Trigger: "intro_finished"},
		{ID: "completionist", Name: "Completionist", Description: "See everything.", Trigger: "intro_finished"},
		{ID: "secret", Name: "Secret", Description: "Found by hand."},
	}
}

func TestNewAchievementsValidation(t *testing.T) {
	tests := []struct {
		name string
		defs []AchievementDefinition
		want string
	}{
		{
			name: "empty id",
			defs: []AchievementDefinition{{ID: "   "}},
			want: "must not be empty",
		},
		{
			name: "duplicate id",
			defs: []AchievementDefinition{{ID: "a"}, {ID: "a"}},
			want: "duplicate",
		},
		{
			name: "duplicate after trim",
			defs: []AchievementDefinition{{ID: "a"}, {ID: " a "}},
			want: "duplicate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAchievements(tt.defs, nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestAchievementsGrant(t *testing.T) {
	a, err := NewAchievements(testDefinitions(), nil)
	if err != nil {
		t.Fatal(err)
	}

	changed, err := a.Grant("secret")
	if err != nil || !changed {
		t.Fatalf("Grant = (%v, %v), want (true, nil)", changed, err)
	}
	if !a.IsUnlocked("secret") {
		t.Error("secret still locked")
	}

	// Granting twice is a no-op.
	changed, err = a.Grant("secret")
	if err != nil || changed {
		t.Errorf("second Grant = (%v, %v), want (false, nil)", changed, err)
	}

	if _, err := a.Grant("nope"); err == nil {
		t.Error("unknown id did not error")
	}
	if a.IsUnlocked("nope") {
		t.Error("unknown id reports unlocked")
	}
}

func TestAchievementsTrigger(t *testing.T) {
	a, err := NewAchievements(testDefinitions(), nil)
	if err != nil {
		t.Fatal(err)
	}

	unlocked := a.Trigger("intro_finished")
	if !equalKeys(unlocked, []string{"first_steps", "completionist"}) {
		t.Errorf("unlocked = %v", unlocked)
	}
	if a.IsUnlocked("secret") {
		t.Error("untriggered achievement unlocked")
	}

	// Repeat triggers and unknown triggers unlock nothing.
	if got := a.Trigger("intro_finished"); len(got) != 0 {
		t.Errorf("repeat trigger unlocked %v", got)
	}
	if got := a.Trigger("unknown_event"); len(got) != 0 {
		t.Errorf("unknown trigger unlocked %v", got)
	}
}

func TestAchievementsNotifications(t *testing.T) {
	a, err := NewAchievements(testDefinitions(), nil)
	if err != nil {
		t.Fatal(err)
	}

	a.Trigger("intro_finished")
	notes := a.TakeNotifications()
	if len(notes) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notes))
	}
	if notes[0].Name != "First Steps" || notes[1].Name != "Completionist" {
		t.Errorf("notifications = %+v", notes)
	}

	// Drained; a second take is empty.
	if got := a.TakeNotifications(); len(got) != 0 {
		t.Errorf("second take = %+v", got)
	}
}

func TestAchievementsSnapshot(t *testing.T) {
	a, err := NewAchievements(testDefinitions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Grant("secret"); err != nil {
		t.Fatal(err)
	}

	snap := a.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot = %d rows", len(snap))
	}
	// Catalog order, not unlock order.
	if snap[0].Name != "First Steps" || snap[0].Unlocked {
		t.Errorf("row 0 = %+v", snap[0])
	}
	if snap[2].Name != "Secret" || !snap[2].Unlocked {
		t.Errorf("row 2 = %+v", snap[2])
	}
}

func TestAchievementsSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "achievements.yaml")

	a, err := NewAchievements(testDefinitions(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// Nothing unlocked yet; saving is a no-op.
	wrote, err := a.Save(path)
	if err != nil {
		t.Fatal(err)
	}
	if wrote {
		t.Error("clean manager wrote state")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no-op save created a file")
	}

	a.Trigger("intro_finished")
	wrote, err = a.Save(path)
	if err != nil {
		t.Fatal(err)
	}
	if !wrote {
		t.Error("dirty manager did not write")
	}

	// Saving flushed the dirty flag.
	wrote, err = a.Save(path)
	if err != nil || wrote {
		t.Errorf("post-save Save = (%v, %v), want (false, nil)", wrote, err)
	}

	// Reload round-trips unlock state.
	reloaded, err := LoadAchievements(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reloaded.IsUnlocked("first_steps") || !reloaded.IsUnlocked("completionist") {
		t.Error("unlock state lost on reload")
	}
	if reloaded.IsUnlocked("secret") {
		t.Error("locked achievement reloaded as unlocked")
	}

	// Reloaded unlocks do not re-notify or re-trigger.
	if got := reloaded.TakeNotifications(); len(got) != 0 {
		t.Errorf("reload produced notifications %+v", got)
	}
	if got := reloaded.Trigger("intro_finished"); len(got) != 0 {
		t.Errorf("reload re-triggered %v", got)
	}
}

func TestLoadAchievementsFormats(t *testing.T) {
	bare := `
- id: first_steps
  name: First Steps
  description: Finish the intro.
  trigger: intro_finished
- id: secret
  name: Secret
  description: Found by hand.
  unlocked: true
`
	wrapped := `
achievements:
  - id: first_steps
    name: First Steps
    description: Finish the intro.
    trigger: intro_finished
  - id: secret
    name: Secret
    description: Found by hand.
    unlocked: true
`
	for _, tt := range []struct {
		name string
		doc  string
	}{
		{"bare list", bare},
		{"wrapped", wrapped},
	} {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "achievements.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			a, err := LoadAchievements(path, nil)
			if err != nil {
				t.Fatalf("LoadAchievements: %v", err)
			}
			if a.IsUnlocked("first_steps") {
				t.Error("first_steps should load locked")
			}
			if !a.IsUnlocked("secret") {
				t.Error("secret should load unlocked")
			}
			if got := a.Trigger("intro_finished"); !equalKeys(got, []string{"first_steps"}) {
				t.Errorf("trigger unlocked %v", got)
			}
		})
	}
}

func TestLoadAchievementsMissingFile(t *testing.T) {
	_, err := LoadAchievements(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	if err == nil {
		t.Fatal("expected error")
	}
}
