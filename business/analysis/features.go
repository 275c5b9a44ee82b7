package analysis

import (
	"github.com/superfeelapi/goEmotion/foundation/dsp"
)

// ExtractFeatures computes the acoustic descriptors of one sample window.
// Pitch candidates below the magnitude threshold are discarded before the
// pitch statistics; when none survive, the pitch figures are 0.
func (a *Analyzer) ExtractFeatures(samples []float64) FeatureSet {
	frames := dsp.Frames(samples)
	spectra := a.transform.Spectra(samples)

	var pitches []float64
	centroids := make([]float64, 0, len(spectra))
	mfccs := make([]float64, 0, len(spectra)*dsp.NumMFCC)
	for _, spectrum := range spectra {
		pitches = append(pitches, a.transform.PitchCandidates(spectrum, a.config.PitchMagnitudeThreshold)...)
		centroids = append(centroids, a.transform.Centroid(spectrum))
		mfccs = append(mfccs, a.transform.MFCC(spectrum)...)
	}

	rms := make([]float64, 0, len(frames))
	zcr := make([]float64, 0, len(frames))
	for _, frame := range frames {
		rms = append(rms, dsp.RMS(frame))
		zcr = append(zcr, dsp.ZCR(frame))
	}

	return FeatureSet{
		FeaturePitchMean:        dsp.Mean(pitches),
		FeaturePitchStd:         dsp.Std(pitches),
		FeatureEnergyMean:       dsp.Mean(rms),
		FeatureEnergyStd:        dsp.Std(rms),
		FeatureSpectralCentroid: dsp.Mean(centroids),
		FeatureMFCCMean:         dsp.Mean(mfccs),
		FeatureMFCCStd:          dsp.Std(mfccs),
		FeatureZCRMean:          dsp.Mean(zcr),
	}
}
