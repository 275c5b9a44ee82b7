// Package analysis turns a decoded sample buffer into an emotional profile of
// the speaker: a per-segment emotion timeline, whole-clip tonal statistics,
// speech patterns and an aggregate mood verdict.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/superfeelapi/goEmotion/foundation/audio"
	"github.com/superfeelapi/goEmotion/foundation/dsp"
)

// ErrAnalysisFailure wraps unexpected failures during feature extraction,
// tone analysis or result assembly.
var ErrAnalysisFailure = errors.New("audio analysis failure")

// Config carries the tunables of one Analyzer. Construct it once and share it
// across runs; the Analyzer keeps no per-run state.
type Config struct {
	SampleRate              int
	SegmentSeconds          float64
	PitchMagnitudeThreshold float64
	SegmentWorkers          int
}

func DefaultConfig() Config {
	return Config{
		SampleRate:              audio.AnalysisSampleRate,
		SegmentSeconds:          5,
		PitchMagnitudeThreshold: 0.1,
		SegmentWorkers:          4,
	}
}

// Analyzer runs the analysis pipeline. Safe for concurrent use.
type Analyzer struct {
	config    Config
	transform *dsp.Transform
}

func New(config Config) *Analyzer {
	if config.SampleRate <= 0 {
		config.SampleRate = audio.AnalysisSampleRate
	}
	if config.SegmentSeconds <= 0 {
		config.SegmentSeconds = 5
	}
	if config.SegmentWorkers <= 0 {
		config.SegmentWorkers = 4
	}

	return &Analyzer{
		config:    config,
		transform: dsp.NewTransform(config.SampleRate),
	}
}

// Analyze runs the full pipeline over one buffer: segmentation with
// per-segment classification, whole-clip tone and pattern analysis, then
// aggregation. Segmentation and tone analysis run concurrently; the buffer is
// read-only throughout.
func (a *Analyzer) Analyze(ctx context.Context, buffer audio.SampleBuffer) (AudioAnalysis, error) {
	if len(buffer.Samples) == 0 {
		return AudioAnalysis{}, fmt.Errorf("%w: empty sample buffer", ErrAnalysisFailure)
	}

	var (
		wg          sync.WaitGroup
		emotions    []EmotionResult
		tone        ToneAnalysis
		patterns    SpeechPatterns
		segmentsErr error
		toneErr     error
		patternsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		emotions, segmentsErr = a.DetectEmotions(ctx, buffer)
	}()
	go func() {
		defer wg.Done()
		tone, toneErr = a.AnalyzeTone(buffer)
		if toneErr == nil {
			patterns, patternsErr = a.AnalyzeSpeechPatterns(buffer)
		}
	}()
	wg.Wait()

	for _, err := range []error{segmentsErr, toneErr, patternsErr} {
		if err != nil {
			return AudioAnalysis{}, err
		}
	}

	mood, confidence := Aggregate(emotions)

	return AudioAnalysis{
		Emotions:        emotions,
		Tone:            tone,
		SpeechPatterns:  patterns,
		OverallMood:     mood,
		ConfidenceScore: confidence,
	}, nil
}
