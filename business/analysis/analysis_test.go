package analysis_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/superfeelapi/goEmotion/business/analysis"
	"github.com/superfeelapi/goEmotion/foundation/audio"
)

func silenceBuffer(seconds float64) audio.SampleBuffer {
	return audio.SampleBuffer{
		Samples:    make([]float64, int(seconds*audio.AnalysisSampleRate)),
		SampleRate: audio.AnalysisSampleRate,
	}
}

func toneBuffer(freq, amplitude, seconds float64) audio.SampleBuffer {
	n := int(seconds * audio.AnalysisSampleRate)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/audio.AnalysisSampleRate)
	}
	return audio.SampleBuffer{Samples: samples, SampleRate: audio.AnalysisSampleRate}
}

func TestAnalyzeSilence(t *testing.T) {
	t.Parallel()

	analyzer := analysis.New(analysis.DefaultConfig())

	result, err := analyzer.Analyze(context.Background(), silenceBuffer(12))
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Emotions) != 2 {
		t.Fatalf("expected 2 segments for 12s of audio, got %d", len(result.Emotions))
	}

	// Silence has zero energy and no voiced pitch, so the low-energy
	// low-pitch rule fires before the calm rule is reached.
	for i, e := range result.Emotions {
		if e.Emotion != analysis.EmotionSad || e.Confidence != 0.6 {
			t.Fatalf("segment %d: got (%s, %v), want (sad, 0.6)", i, e.Emotion, e.Confidence)
		}
		if want := float64(i) * 5.0; e.Timestamp != want {
			t.Fatalf("segment %d: got timestamp %v, want %v", i, e.Timestamp, want)
		}
	}

	if result.OverallMood != analysis.EmotionSad {
		t.Fatalf("got mood %s, want sad", result.OverallMood)
	}
	if math.Abs(result.ConfidenceScore-0.6) > 1e-9 {
		t.Fatalf("got confidence %v, want 0.6", result.ConfidenceScore)
	}

	if result.Tone.EnergyMean != 0 || result.Tone.PitchMean != 0 {
		t.Fatalf("expected zero tone energy and pitch, got %+v", result.Tone)
	}
	if result.SpeechPatterns.SpeechDuration != 12.0 {
		t.Fatalf("got duration %v, want 12", result.SpeechPatterns.SpeechDuration)
	}
}

func TestAnalyzeQuietVoiced(t *testing.T) {
	t.Parallel()

	analyzer := analysis.New(analysis.DefaultConfig())

	// Low energy but clearly pitched above 150 Hz: only the calm rule holds.
	result, err := analyzer.Analyze(context.Background(), toneBuffer(400, 0.02, 12))
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Emotions) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(result.Emotions))
	}
	for i, e := range result.Emotions {
		if e.Emotion != analysis.EmotionCalm || e.Confidence != 0.8 {
			t.Fatalf("segment %d: got (%s, %v), want (calm, 0.8)", i, e.Emotion, e.Confidence)
		}
	}
	if result.OverallMood != analysis.EmotionCalm {
		t.Fatalf("got mood %s, want calm", result.OverallMood)
	}
	if math.Abs(result.ConfidenceScore-0.8) > 1e-9 {
		t.Fatalf("got confidence %v, want 0.8", result.ConfidenceScore)
	}
}

func TestAnalyzeShortClip(t *testing.T) {
	t.Parallel()

	analyzer := analysis.New(analysis.DefaultConfig())

	result, err := analyzer.Analyze(context.Background(), toneBuffer(300, 0.1, 3))
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Emotions) != 0 {
		t.Fatalf("expected no segments for 3s of audio, got %d", len(result.Emotions))
	}
	if result.OverallMood != analysis.EmotionNeutral {
		t.Fatalf("got mood %s, want neutral", result.OverallMood)
	}
	if result.ConfidenceScore != 0.0 {
		t.Fatalf("got confidence %v, want 0", result.ConfidenceScore)
	}
	if result.SpeechPatterns.SpeechDuration != 3.0 {
		t.Fatalf("got duration %v, want 3", result.SpeechPatterns.SpeechDuration)
	}
}

func TestAnalyzeEmptyBufferFails(t *testing.T) {
	t.Parallel()

	analyzer := analysis.New(analysis.DefaultConfig())

	_, err := analyzer.Analyze(context.Background(), audio.SampleBuffer{SampleRate: audio.AnalysisSampleRate})
	if !errors.Is(err, analysis.ErrAnalysisFailure) {
		t.Fatalf("expected ErrAnalysisFailure, got %v", err)
	}
}

func TestDetectEmotionsSegmentCount(t *testing.T) {
	t.Parallel()

	analyzer := analysis.New(analysis.DefaultConfig())

	tests := []struct {
		seconds float64
		want    int
	}{
		{3, 0},
		{5, 1},
		{9.9, 1},
		{10, 2},
		{17.5, 3},
	}

	for _, tt := range tests {
		emotions, err := analyzer.DetectEmotions(context.Background(), silenceBuffer(tt.seconds))
		if err != nil {
			t.Fatal(err)
		}
		if len(emotions) != tt.want {
			t.Fatalf("%vs: got %d segments, want %d", tt.seconds, len(emotions), tt.want)
		}
	}
}

func TestDetectEmotionsCancellation(t *testing.T) {
	t.Parallel()

	analyzer := analysis.New(analysis.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analyzer.DetectEmotions(ctx, silenceBuffer(10))
	if !errors.Is(err, analysis.ErrAnalysisFailure) {
		t.Fatalf("expected ErrAnalysisFailure on cancelled context, got %v", err)
	}
}

func TestAnalyzeToneSpeakingRate(t *testing.T) {
	t.Parallel()

	analyzer := analysis.New(analysis.DefaultConfig())

	// The estimator's duration term cancels, so the rate is a constant
	// 150 words per minute for any non-empty clip.
	for _, seconds := range []float64{3, 12, 60} {
		tone, err := analyzer.AnalyzeTone(silenceBuffer(seconds))
		if err != nil {
			t.Fatal(err)
		}
		if tone.SpeakingRate != 150.0 {
			t.Fatalf("%vs: got speaking rate %v, want 150", seconds, tone.SpeakingRate)
		}
	}
}

func TestAnalyzeTonePauseFrequencyBounds(t *testing.T) {
	t.Parallel()

	analyzer := analysis.New(analysis.DefaultConfig())

	buffers := []audio.SampleBuffer{
		silenceBuffer(6),
		toneBuffer(220, 0.3, 6),
		mixedBuffer(t),
	}

	for i, buffer := range buffers {
		tone, err := analyzer.AnalyzeTone(buffer)
		if err != nil {
			t.Fatal(err)
		}
		if tone.PauseFrequency < 0 || tone.PauseFrequency > 1 {
			t.Fatalf("buffer %d: pause frequency %v out of [0,1]", i, tone.PauseFrequency)
		}
	}
}

// mixedBuffer alternates one second of tone with one second of silence.
func mixedBuffer(t *testing.T) audio.SampleBuffer {
	t.Helper()

	n := 8 * audio.AnalysisSampleRate
	samples := make([]float64, n)
	for i := range samples {
		if (i/audio.AnalysisSampleRate)%2 == 0 {
			samples[i] = 0.4 * math.Sin(2*math.Pi*250*float64(i)/audio.AnalysisSampleRate)
		}
	}
	return audio.SampleBuffer{Samples: samples, SampleRate: audio.AnalysisSampleRate}
}

func TestExtractFeatures(t *testing.T) {
	t.Parallel()

	analyzer := analysis.New(analysis.DefaultConfig())

	buffer := toneBuffer(400, 0.5, 5)
	features := analyzer.ExtractFeatures(buffer.Samples)

	for _, key := range []string{
		analysis.FeaturePitchMean,
		analysis.FeaturePitchStd,
		analysis.FeatureEnergyMean,
		analysis.FeatureEnergyStd,
		analysis.FeatureSpectralCentroid,
		analysis.FeatureMFCCMean,
		analysis.FeatureMFCCStd,
		analysis.FeatureZCRMean,
	} {
		if _, ok := features[key]; !ok {
			t.Fatalf("missing feature %s", key)
		}
	}

	wantEnergy := 0.5 / math.Sqrt2
	if got := features[analysis.FeatureEnergyMean]; math.Abs(got-wantEnergy) > 0.02 {
		t.Fatalf("got energy mean %v, want near %v", got, wantEnergy)
	}
	if got := features[analysis.FeaturePitchMean]; got < 300 || got > 500 {
		t.Fatalf("got pitch mean %v, want near 400", got)
	}
}
