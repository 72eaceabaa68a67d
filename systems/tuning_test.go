package systems

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/kenney-platformer/config"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func keepTuning(t *testing.T) {
	t.Helper()
	player := cfg.Player
	watcher := tuningWatcher
	t.Cleanup(func() {
		cfg.Player = player
		tuningWatcher = watcher
	})
}

func TestReloadTuning(t *testing.T) {
	keepTuning(t)

	path := writeTuning(t, "player:\n  maxJumpHeight: 120\n")
	if err := ReloadTuning(path); err != nil {
		t.Fatalf("ReloadTuning: %v", err)
	}
	if cfg.Player.MaxJumpHeight != 120 {
		t.Errorf("Expected MaxJumpHeight 120, got %v", cfg.Player.MaxJumpHeight)
	}
}

func TestReloadTuningKeepsCurrentOnError(t *testing.T) {
	keepTuning(t)
	before := cfg.Player

	path := writeTuning(t, "player:\n  fallDivider: 0\n")
	if err := ReloadTuning(path); err == nil {
		t.Fatal("Expected invalid tuning to be rejected")
	}
	if cfg.Player != before {
		t.Errorf("Expected tuning unchanged, got %+v", cfg.Player)
	}
}

func TestUpdateTuningReload(t *testing.T) {
	keepTuning(t)
	e := newTestECS(t)

	// No watcher is a no-op.
	SetTuningWatcher(nil)
	UpdateTuningReload(e)

	w := &cfg.TuningWatcher{Events: make(chan string, 1), Errors: make(chan error, 1)}
	SetTuningWatcher(w)

	UpdateTuningReload(e)
	if cfg.Player.VelocityX != cfg.DefaultPlayer().VelocityX {
		t.Fatal("Expected no reload without an event")
	}

	w.Events <- writeTuning(t, "player:\n  velocityX: 321\n")
	UpdateTuningReload(e)
	if cfg.Player.VelocityX != 321 {
		t.Errorf("Expected VelocityX 321, got %v", cfg.Player.VelocityX)
	}
}
