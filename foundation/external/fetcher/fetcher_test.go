package fetcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/superfeelapi/goEmotion/foundation/external/fetcher"
)

func TestIsMediaURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"https://www.youtube.com/watch?v=abc", true},
		{"http://example.com/clip.mp3", true},
		{"/var/audio/clip.wav", false},
		{"clip.wav", false},
	}

	for _, tt := range tests {
		if got := fetcher.IsMediaURL(tt.input); got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCleanupTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.wav")
	drop := filepath.Join(dir, "drop.mp3")
	for _, path := range []string{keep, drop} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := fetcher.CleanupTempFiles(dir, "*.mp3"); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(drop); !os.IsNotExist(err) {
		t.Fatal("expected mp3 to be removed")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Fatal("expected wav to survive")
	}
}
