package speech_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"go.uber.org/zap"

	"github.com/nrepin/voice_agent/internal/speech"
)

func newStore(t *testing.T) (*speech.AudioStore, string) {
	t.Helper()
	dir := t.TempDir()
	return speech.NewAudioStore(dir, logger.NewZapLogger(zap.NewNop().Sugar())), dir
}

func TestSweep(t *testing.T) {
	store, dir := newStore(t)

	for _, name := range []string{"a.mp3", "b.mp3", "c.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("stale"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// не-mp3 файлы обход не трогает
	if err := os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	if removed := store.Sweep(); removed != 3 {
		t.Errorf("removed: got %d, want 3", removed)
	}

	left, err := filepath.Glob(filepath.Join(dir, "*.mp3"))
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 0 {
		t.Errorf("mp3 files left after sweep: %v", left)
	}

	if _, err := os.Stat(filepath.Join(dir, "keep.txt")); err != nil {
		t.Errorf("keep.txt should survive sweep: %v", err)
	}
}

func TestSweep_EmptyDir(t *testing.T) {
	store, _ := newStore(t)

	if removed := store.Sweep(); removed != 0 {
		t.Errorf("removed: got %d, want 0", removed)
	}
}

func TestNewFileName_Unique(t *testing.T) {
	store, _ := newStore(t)

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		name := store.NewFileName()
		if name == "" {
			t.Fatal("empty file name")
		}
		if _, ok := seen[name]; ok {
			t.Fatalf("duplicate file name: %s", name)
		}
		seen[name] = struct{}{}
	}
}
