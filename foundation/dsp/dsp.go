// Package dsp provides the signal primitives used by the analysis engine:
// framing, windowed magnitude spectra, spectral centroid, mel-frequency
// cepstral coefficients, pitch candidate tracking and tempo estimation.
package dsp

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// FrameSize is the analysis frame length in samples.
	FrameSize = 2048

	// HopSize is the frame advance in samples.
	HopSize = 512

	// NumMFCC is the number of cepstral coefficients per frame.
	NumMFCC = 13

	numMelFilters = 26

	pitchMinHz = 50.0
	pitchMaxHz = 2000.0

	tempoMinBPM     = 60.0
	tempoMaxBPM     = 200.0
	tempoDefaultBPM = 120.0
)

// Transform holds the per-sample-rate constants of the spectral transforms.
// A Transform is immutable after construction and safe for concurrent use.
type Transform struct {
	sampleRate int
	window     []float64
	melFilters [][]float64
}

func NewTransform(sampleRate int) *Transform {
	window := make([]float64, FrameSize)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(FrameSize-1)))
	}

	return &Transform{
		sampleRate: sampleRate,
		window:     window,
		melFilters: melFilterbank(numMelFilters, FrameSize, sampleRate),
	}
}

func (t *Transform) SampleRate() int {
	return t.sampleRate
}

// Frames slices samples into FrameSize windows advanced by HopSize.
// A buffer shorter than one frame yields a single zero-padded frame.
func Frames(samples []float64) [][]float64 {
	if len(samples) == 0 {
		return nil
	}

	if len(samples) < FrameSize {
		frame := make([]float64, FrameSize)
		copy(frame, samples)
		return [][]float64{frame}
	}

	var frames [][]float64
	for start := 0; start+FrameSize <= len(samples); start += HopSize {
		frames = append(frames, samples[start:start+FrameSize])
	}
	return frames
}

// Spectra computes the windowed magnitude spectrum of every frame.
// Each spectrum holds FrameSize/2 bins.
func (t *Transform) Spectra(samples []float64) [][]float64 {
	frames := Frames(samples)
	if frames == nil {
		return nil
	}

	// fourier.FFT keeps internal scratch, so each call gets its own.
	fft := fourier.NewFFT(FrameSize)
	windowed := make([]float64, FrameSize)

	spectra := make([][]float64, 0, len(frames))
	for _, frame := range frames {
		for i := range windowed {
			windowed[i] = frame[i] * t.window[i]
		}

		coeffs := fft.Coefficients(nil, windowed)

		spectrum := make([]float64, FrameSize/2)
		for i := range spectrum {
			spectrum[i] = cmplx.Abs(coeffs[i])
		}
		spectra = append(spectra, spectrum)
	}

	return spectra
}

// RMS computes the root-mean-square amplitude of one frame.
func RMS(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}

	var sum float64
	for _, s := range frame {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(frame)))
}

// ZCR computes the fraction of sign changes in one frame.
func ZCR(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}

	var crossings int
	for i := 1; i < len(frame); i++ {
		if (frame[i] >= 0 && frame[i-1] < 0) || (frame[i] < 0 && frame[i-1] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(frame))
}

// Centroid computes the magnitude-weighted mean frequency of a spectrum in Hz.
func (t *Transform) Centroid(spectrum []float64) float64 {
	freqPerBin := float64(t.sampleRate) / float64(FrameSize)

	var weightedSum, sum float64
	for i, mag := range spectrum {
		weightedSum += float64(i) * freqPerBin * mag
		sum += mag
	}

	if sum == 0 {
		return 0
	}
	return weightedSum / sum
}

// PitchCandidates returns the frequencies of spectral peaks whose magnitude
// exceeds threshold, restricted to the voiced pitch range.
func (t *Transform) PitchCandidates(spectrum []float64, threshold float64) []float64 {
	freqPerBin := float64(t.sampleRate) / float64(FrameSize)

	var candidates []float64
	for i := 1; i < len(spectrum)-1; i++ {
		if spectrum[i] <= threshold {
			continue
		}
		if spectrum[i] <= spectrum[i-1] || spectrum[i] < spectrum[i+1] {
			continue
		}

		freq := float64(i) * freqPerBin
		if freq < pitchMinHz || freq > pitchMaxHz {
			continue
		}
		candidates = append(candidates, freq)
	}
	return candidates
}

// MFCC computes NumMFCC mel-frequency cepstral coefficients for a spectrum:
// mel filterbank energies, log compression, then a DCT.
func (t *Transform) MFCC(spectrum []float64) []float64 {
	melEnergies := make([]float64, numMelFilters)
	for i := 0; i < numMelFilters; i++ {
		for j := 0; j < len(spectrum) && j < len(t.melFilters[i]); j++ {
			melEnergies[i] += spectrum[j] * spectrum[j] * t.melFilters[i][j]
		}
		if melEnergies[i] < 1e-10 {
			melEnergies[i] = 1e-10
		}
		melEnergies[i] = math.Log(melEnergies[i])
	}

	mfcc := make([]float64, NumMFCC)
	for i := 0; i < NumMFCC; i++ {
		for j := 0; j < numMelFilters; j++ {
			mfcc[i] += melEnergies[j] * math.Cos(math.Pi*float64(i)*(float64(j)+0.5)/float64(numMelFilters))
		}
	}
	return mfcc
}

// OnsetEnvelope computes the positive spectral flux between consecutive
// spectra, a per-frame onset strength signal for tempo estimation.
func OnsetEnvelope(spectra [][]float64) []float64 {
	if len(spectra) < 2 {
		return nil
	}

	envelope := make([]float64, 0, len(spectra)-1)
	for i := 1; i < len(spectra); i++ {
		var flux float64
		for j := range spectra[i] {
			diff := spectra[i][j] - spectra[i-1][j]
			if diff > 0 {
				flux += diff * diff
			}
		}
		envelope = append(envelope, math.Sqrt(flux))
	}
	return envelope
}

// EstimateTempo estimates a beats-per-minute figure from an onset envelope by
// autocorrelation, clamped to [tempoMinBPM, tempoMaxBPM]. Envelopes too short
// to correlate yield the default tempo.
func (t *Transform) EstimateTempo(envelope []float64) float64 {
	if len(envelope) < 10 {
		return tempoDefaultBPM
	}

	hopDuration := float64(HopSize) / float64(t.sampleRate)
	minLag := int(60.0 / tempoMaxBPM / hopDuration)
	maxLag := int(60.0 / tempoMinBPM / hopDuration)

	if maxLag >= len(envelope) {
		maxLag = len(envelope) - 1
	}
	if minLag < 1 {
		minLag = 1
	}

	bestLag := minLag
	bestCorr := 0.0

	for lag := minLag; lag <= maxLag; lag++ {
		var corr float64
		for i := 0; i < len(envelope)-lag; i++ {
			corr += envelope[i] * envelope[i+lag]
		}
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}

	bpm := 60.0 / (float64(bestLag) * hopDuration)
	if bpm < tempoMinBPM {
		bpm = tempoMinBPM
	}
	if bpm > tempoMaxBPM {
		bpm = tempoMaxBPM
	}
	return bpm
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Std returns the population standard deviation, or 0 for an empty slice.
func Std(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := Mean(values)
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	if variance <= 0 {
		return 0
	}
	return math.Sqrt(variance)
}

// =====================================================================================================================

func melFilterbank(numFilters, fftSize, sampleRate int) [][]float64 {
	hzToMel := func(hz float64) float64 {
		return 2595 * math.Log10(1+hz/700)
	}
	melToHz := func(mel float64) float64 {
		return 700 * (math.Pow(10, mel/2595) - 1)
	}

	nyquist := float64(sampleRate) / 2
	lowMel := hzToMel(20)
	highMel := hzToMel(nyquist)

	binPoints := make([]int, numFilters+2)
	for i := range binPoints {
		mel := lowMel + float64(i)*(highMel-lowMel)/float64(numFilters+1)
		binPoints[i] = int(math.Floor(melToHz(mel) * float64(fftSize) / float64(sampleRate)))
	}

	filters := make([][]float64, numFilters)
	for i := 0; i < numFilters; i++ {
		filters[i] = make([]float64, fftSize/2)

		for j := binPoints[i]; j < binPoints[i+1] && j < fftSize/2; j++ {
			if binPoints[i+1] != binPoints[i] {
				filters[i][j] = float64(j-binPoints[i]) / float64(binPoints[i+1]-binPoints[i])
			}
		}
		for j := binPoints[i+1]; j < binPoints[i+2] && j < fftSize/2; j++ {
			if binPoints[i+2] != binPoints[i+1] {
				filters[i][j] = float64(binPoints[i+2]-j) / float64(binPoints[i+2]-binPoints[i+1])
			}
		}
	}

	return filters
}
