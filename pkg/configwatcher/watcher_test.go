package configwatcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"ujikom_backend/internal/config"
)

const watcherConfig = `server:
  port: "8080"
  mode: debug
jwt:
  secret: watcher-test-secret
  expire_hours: 24
scoring:
  pass_threshold: 70
  consider_threshold: 68
exam:
  duration_minutes: 90
`

func TestWatchConfigFiresAfterWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(watcherConfig), 0644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *config.Config, 1)
	go WatchConfig(path, nil, func(newCfg interface{}) {
		if cfg, ok := newCfg.(*config.Config); ok {
			select {
			case reloaded <- cfg:
			default:
			}
		}
	})

	// Give the watcher time to register before touching the file.
	time.Sleep(200 * time.Millisecond)

	edited := strings.Replace(watcherConfig, "duration_minutes: 90", "duration_minutes: 45", 1)
	if err := os.WriteFile(path, []byte(edited), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Exam.DurationMinutes != 45 {
			t.Errorf("reloaded duration = %d, want 45", cfg.Exam.DurationMinutes)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config edited but the reloader was never invoked")
	}
}
