package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwmedic.yaml")
	writeConfigFile(t, path, "stress:\n  stress_duration: 60\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan *Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config) {
			select {
			case changed <- cfg:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(50 * time.Millisecond)
	writeConfigFile(t, path, "stress:\n  stress_duration: 10\n")

	select {
	case cfg := <-changed:
		if cfg.Stress.DurationSeconds != 10 {
			t.Fatalf("reloaded DurationSeconds = %d, want 10", cfg.Stress.DurationSeconds)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("onChange never fired after config write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop on context cancellation")
	}
}

func TestWatch_KeepsPreviousConfigOnBadReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwmedic.yaml")
	writeConfigFile(t, path, "stress:\n  stress_duration: 60\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan *Config, 4)
	go func() {
		_ = Watch(ctx, path, func(cfg *Config) { changed <- cfg })
	}()

	time.Sleep(50 * time.Millisecond)

	// Invalid: stress_duration must be positive. The callback must not fire
	// for it; a later valid write still must.
	writeConfigFile(t, path, "stress:\n  stress_duration: -5\n")
	time.Sleep(100 * time.Millisecond)
	writeConfigFile(t, path, "stress:\n  stress_duration: 20\n")

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-changed:
			if cfg.Stress.DurationSeconds == -5 {
				t.Fatal("invalid config was delivered to onChange")
			}
			if cfg.Stress.DurationSeconds == 20 {
				return
			}
		case <-deadline:
			t.Fatal("valid config write never delivered")
		}
	}
}

func TestWatch_MissingFile(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"), func(*Config) {})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
