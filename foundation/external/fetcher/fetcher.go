// Package fetcher acquires source audio from network media URLs through
// yt-dlp, yielding a local audio file path for analysis.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const fetchTimeout = 10 * time.Minute

type VideoInfo struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
	Uploader string  `json:"uploader"`
}

// Fetch downloads the best audio stream of url into outputDir as mp3 and
// returns the downloaded file path.
func Fetch(ctx context.Context, url string, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("fetcher: create output directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	template := filepath.Join(outputDir, "%(id)s.%(ext)s")
	args := []string{
		"--no-playlist",
		"-x",
		"--audio-format", "mp3",
		"--print", "after_move:filepath",
		"-o", template,
		url,
	}

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("fetcher: yt-dlp: %w: %s", err, stderr.String())
	}

	path := strings.TrimSpace(stdout.String())
	if path == "" {
		return "", fmt.Errorf("fetcher: yt-dlp reported no output file for %s", url)
	}

	return path, nil
}

// Info probes url without downloading.
func Info(ctx context.Context, url string) (VideoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "yt-dlp", "-J", "--no-download", url)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return VideoInfo{}, fmt.Errorf("fetcher: yt-dlp probe: %w: %s", err, stderr.String())
	}

	var info VideoInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return VideoInfo{}, fmt.Errorf("fetcher: decode probe output: %w", err)
	}

	return info, nil
}

// IsMediaURL reports whether input looks like a network media URL rather
// than a local file path.
func IsMediaURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// CleanupTempFiles removes downloaded media matching pattern under directory.
func CleanupTempFiles(directory string, pattern string) error {
	matches, err := filepath.Glob(filepath.Join(directory, pattern))
	if err != nil {
		return fmt.Errorf("fetcher: glob: %w", err)
	}

	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			return fmt.Errorf("fetcher: remove %s: %w", match, err)
		}
	}
	return nil
}
