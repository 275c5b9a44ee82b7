package worker_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/superfeelapi/goEmotion/business/analysis"
	"github.com/superfeelapi/goEmotion/business/worker"
	"github.com/superfeelapi/goEmotion/foundation/audio"
	"github.com/superfeelapi/goEmotion/foundation/report"
	"go.uber.org/zap"
)

func writeSilenceWav(t *testing.T, path string, seconds int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	encoder := wav.NewEncoder(f, audio.AnalysisSampleRate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: audio.AnalysisSampleRate},
		Data:           make([]int, seconds*audio.AnalysisSampleRate),
		SourceBitDepth: 16,
	}
	if err := encoder.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := encoder.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.wav")
	writeSilenceWav(t, inputPath, 12)

	analysisDir := filepath.Join(dir, "analysis")

	errCh := worker.Run(worker.Settings{
		Config: worker.Config{
			RunID:             "test-run",
			InputPath:         inputPath,
			AnalysisDirectory: analysisDir,
		},
		Logger:   zap.NewNop().Sugar(),
		Analyzer: analysis.New(analysis.DefaultConfig()),
	})

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(60 * time.Second):
		t.Fatal("worker did not finish in time")
	}

	matches, err := filepath.Glob(filepath.Join(analysisDir, "emotion_report_*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one report, got %d", len(matches))
	}

	record, err := report.Read(matches[0])
	if err != nil {
		t.Fatal(err)
	}

	if len(record.EmotionsTimeline) != 2 {
		t.Fatalf("expected 2 timeline entries for 12s of audio, got %d", len(record.EmotionsTimeline))
	}
	if record.OverallMood != analysis.EmotionSad {
		t.Fatalf("got mood %s, want sad for silence", record.OverallMood)
	}
	if math.Abs(record.ConfidenceScore-0.6) > 1e-9 {
		t.Fatalf("got confidence %v, want 0.6", record.ConfidenceScore)
	}
	if record.SpeechPatterns.SpeechDuration != 12.0 {
		t.Fatalf("got duration %v, want 12", record.SpeechPatterns.SpeechDuration)
	}
	if record.ToneAnalysis.SpeakingRate != 150.0 {
		t.Fatalf("got speaking rate %v, want 150", record.ToneAnalysis.SpeakingRate)
	}
	if record.Timestamp == "" || record.ReportID == "" {
		t.Fatal("expected report id and timestamp to be set")
	}
}

func TestRunMissingInput(t *testing.T) {
	errCh := worker.Run(worker.Settings{
		Config: worker.Config{
			RunID:             "test-run",
			InputPath:         filepath.Join(t.TempDir(), "missing.wav"),
			AnalysisDirectory: t.TempDir(),
		},
		Logger:   zap.NewNop().Sugar(),
		Analyzer: analysis.New(analysis.DefaultConfig()),
	})

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected an error for a missing input file")
		}
	case <-time.After(30 * time.Second):
		t.Fatal("worker did not finish in time")
	}
}
