package analysis

import (
	"fmt"

	"github.com/superfeelapi/goEmotion/foundation/audio"
	"github.com/superfeelapi/goEmotion/foundation/dsp"
)

// Assumed constant speech rate used by the speaking-rate estimate.
const wordsPerSecond = 2.5

// AnalyzeTone computes the whole-clip tonal statistics.
func (a *Analyzer) AnalyzeTone(buffer audio.SampleBuffer) (ToneAnalysis, error) {
	if len(buffer.Samples) == 0 {
		return ToneAnalysis{}, fmt.Errorf("%w: empty sample buffer", ErrAnalysisFailure)
	}

	pitches := a.pitchValues(buffer.Samples)
	rms := frameRMS(buffer.Samples)

	return ToneAnalysis{
		PitchMean:      dsp.Mean(pitches),
		PitchStd:       dsp.Std(pitches),
		EnergyMean:     dsp.Mean(rms),
		EnergyStd:      dsp.Std(rms),
		SpeakingRate:   estimateSpeakingRate(buffer.Duration()),
		PauseFrequency: pauseFrequency(rms),
	}, nil
}

// AnalyzeSpeechPatterns computes the whole-clip speech pattern figures.
func (a *Analyzer) AnalyzeSpeechPatterns(buffer audio.SampleBuffer) (SpeechPatterns, error) {
	if len(buffer.Samples) == 0 {
		return SpeechPatterns{}, fmt.Errorf("%w: empty sample buffer", ErrAnalysisFailure)
	}

	rms := frameRMS(buffer.Samples)
	pitches := a.pitchValues(buffer.Samples)

	spectra := a.transform.Spectra(buffer.Samples)
	tempo := a.transform.EstimateTempo(dsp.OnsetEnvelope(spectra))

	return SpeechPatterns{
		SpeechDuration:    buffer.Duration(),
		VolumeVariability: dsp.Std(rms),
		PitchVariability:  dsp.Std(pitches),
		SpeechRhythm:      tempo,
	}, nil
}

// estimateSpeakingRate converts an assumed words-per-second rate into words
// per minute. The duration term cancels algebraically, so the result is the
// same for every non-zero duration; this mirrors the historical estimator and
// is locked in by a regression test.
func estimateSpeakingRate(duration float64) float64 {
	if duration == 0 {
		return 0
	}
	estimatedWords := duration * wordsPerSecond
	return estimatedWords / (duration / 60.0)
}

// pauseFrequency is the fraction of frames whose RMS energy falls below
// 0.3 times the clip's mean RMS.
func pauseFrequency(rms []float64) float64 {
	if len(rms) == 0 {
		return 0
	}

	threshold := dsp.Mean(rms) * 0.3
	var pauses int
	for _, v := range rms {
		if v < threshold {
			pauses++
		}
	}
	return float64(pauses) / float64(len(rms))
}

func (a *Analyzer) pitchValues(samples []float64) []float64 {
	var pitches []float64
	for _, spectrum := range a.transform.Spectra(samples) {
		pitches = append(pitches, a.transform.PitchCandidates(spectrum, a.config.PitchMagnitudeThreshold)...)
	}
	return pitches
}

func frameRMS(samples []float64) []float64 {
	frames := dsp.Frames(samples)
	rms := make([]float64, 0, len(frames))
	for _, frame := range frames {
		rms = append(rms, dsp.RMS(frame))
	}
	return rms
}
