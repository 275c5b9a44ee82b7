package analysis

// Emotion labels produced by the classifier.
const (
	EmotionHappy   = "happy"
	EmotionSad     = "sad"
	EmotionAngry   = "angry"
	EmotionNeutral = "neutral"
	EmotionExcited = "excited"
	EmotionCalm    = "calm"
)

// Feature names the classifier reads.
const (
	FeaturePitchMean        = "pitch_mean"
	FeaturePitchStd         = "pitch_std"
	FeatureEnergyMean       = "energy_mean"
	FeatureEnergyStd        = "energy_std"
	FeatureSpectralCentroid = "spectral_centroid_mean"
	FeatureMFCCMean         = "mfcc_mean"
	FeatureMFCCStd          = "mfcc_std"
	FeatureZCRMean          = "zcr_mean"
)

// FeatureSet maps feature names to scalar descriptors of one sample window.
type FeatureSet map[string]float64

// EmotionResult labels one analyzed segment.
type EmotionResult struct {
	Emotion    string
	Confidence float64
	Timestamp  float64
}

// ToneAnalysis holds whole-clip tonal statistics.
type ToneAnalysis struct {
	PitchMean      float64
	PitchStd       float64
	EnergyMean     float64
	EnergyStd      float64
	SpeakingRate   float64 // words per minute
	PauseFrequency float64 // fraction of low-energy frames, in [0,1]
}

// SpeechPatterns holds whole-clip speech pattern figures.
type SpeechPatterns struct {
	SpeechDuration    float64 // seconds
	VolumeVariability float64
	PitchVariability  float64
	SpeechRhythm      float64 // estimated tempo
}

// AudioAnalysis is the aggregate result of one analysis run. It is built once
// per input file and read-only afterwards.
type AudioAnalysis struct {
	Emotions        []EmotionResult
	Tone            ToneAnalysis
	SpeechPatterns  SpeechPatterns
	OverallMood     string
	ConfidenceScore float64
}
