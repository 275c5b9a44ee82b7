// Package report defines the serialized analysis record and its JSON
// persistence.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Tone mirrors the whole-clip tonal statistics of one run.
type Tone struct {
	PitchMean      float64 `json:"pitch_mean"`
	PitchStd       float64 `json:"pitch_std"`
	EnergyMean     float64 `json:"energy_mean"`
	SpeakingRate   float64 `json:"speaking_rate"`
	PauseFrequency float64 `json:"pause_frequency"`
}

// Patterns mirrors the whole-clip speech pattern figures.
type Patterns struct {
	SpeechDuration    float64 `json:"speech_duration"`
	VolumeVariability float64 `json:"volume_variability"`
	PitchVariability  float64 `json:"pitch_variability"`
	SpeechRhythm      float64 `json:"speech_rhythm"`
}

// TimelineEntry is one labeled segment in segment order.
type TimelineEntry struct {
	Timestamp  float64 `json:"timestamp"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Record is the persisted form of one analysis run.
type Record struct {
	ReportID         string          `json:"report_id"`
	Timestamp        string          `json:"timestamp"`
	OverallMood      string          `json:"overall_mood"`
	ConfidenceScore  float64         `json:"confidence_score"`
	ToneAnalysis     Tone            `json:"tone_analysis"`
	SpeechPatterns   Patterns        `json:"speech_patterns"`
	Transcript       string          `json:"transcript,omitempty"`
	EmotionsTimeline []TimelineEntry `json:"emotions_timeline"`
}

// Path builds the report filename under dir for one run.
func Path(dir string, t time.Time, reportID string) string {
	name := fmt.Sprintf("emotion_report_%s_%s.json", t.Format("20060102_150405"), reportID)
	return filepath.Join(dir, name)
}

// Write persists the record as indented JSON, creating parent directories.
func Write(r Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report: create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return nil
}

// Read loads a previously written record.
func Read(path string) (Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("report: read file: %w", err)
	}

	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return Record{}, fmt.Errorf("report: decode: %w", err)
	}

	return r, nil
}
