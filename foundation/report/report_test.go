package report_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/superfeelapi/goEmotion/foundation/report"
)

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	record := report.Record{
		ReportID:        "a1b2c3",
		Timestamp:       time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC).Format(time.RFC3339),
		OverallMood:     "happy",
		ConfidenceScore: 0.7333333333333333,
		ToneAnalysis: report.Tone{
			PitchMean:      210.5,
			PitchStd:       34.2,
			EnergyMean:     0.09,
			SpeakingRate:   150,
			PauseFrequency: 0.25,
		},
		SpeechPatterns: report.Patterns{
			SpeechDuration:    42.5,
			VolumeVariability: 0.04,
			PitchVariability:  31.7,
			SpeechRhythm:      118,
		},
		EmotionsTimeline: []report.TimelineEntry{
			{Timestamp: 0, Emotion: "happy", Confidence: 0.7},
			{Timestamp: 5, Emotion: "excited", Confidence: 0.8},
			{Timestamp: 10, Emotion: "happy", Confidence: 0.7},
		},
	}

	path := report.Path(t.TempDir(), time.Now(), record.ReportID)
	if err := report.Write(record, path); err != nil {
		t.Fatal(err)
	}

	got, err := report.Read(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.OverallMood != record.OverallMood {
		t.Fatalf("got mood %s, want %s", got.OverallMood, record.OverallMood)
	}
	if math.Abs(got.ConfidenceScore-record.ConfidenceScore) > 1e-9 {
		t.Fatalf("got confidence %v, want %v", got.ConfidenceScore, record.ConfidenceScore)
	}
	if len(got.EmotionsTimeline) != len(record.EmotionsTimeline) {
		t.Fatalf("got %d timeline entries, want %d", len(got.EmotionsTimeline), len(record.EmotionsTimeline))
	}
	for i, entry := range got.EmotionsTimeline {
		if entry != record.EmotionsTimeline[i] {
			t.Fatalf("timeline entry %d: got %+v, want %+v", i, entry, record.EmotionsTimeline[i])
		}
	}
}

func TestWriteCreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "report.json")
	if err := report.Write(report.Record{ReportID: "x"}, path); err != nil {
		t.Fatal(err)
	}

	if _, err := report.Read(path); err != nil {
		t.Fatal(err)
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	at := time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC)
	got := report.Path("/var/analysis", at, "abc123")

	if !strings.HasSuffix(got, "emotion_report_20230405_060708_abc123.json") {
		t.Fatalf("unexpected report path %s", got)
	}
}
