package analysis

// rule is one entry of the classification decision list.
type rule struct {
	emotion    string
	confidence float64
	match      func(FeatureSet) bool
}

// rules is evaluated top to bottom, first match wins. The order is a contract:
// several predicates overlap and earlier entries shadow later ones.
var rules = []rule{
	{EmotionExcited, 0.8, func(f FeatureSet) bool {
		return f[FeatureEnergyMean] > 0.1 && f[FeaturePitchMean] > 200
	}},
	{EmotionHappy, 0.7, func(f FeatureSet) bool {
		return f[FeatureEnergyMean] > 0.08 && f[FeatureSpectralCentroid] > 2000
	}},
	{EmotionSad, 0.6, func(f FeatureSet) bool {
		return f[FeatureEnergyMean] < 0.05 && f[FeaturePitchMean] < 150
	}},
	{EmotionAngry, 0.7, func(f FeatureSet) bool {
		return f[FeatureEnergyMean] > 0.12 && f[FeatureSpectralCentroid] > 3000
	}},
	{EmotionCalm, 0.8, func(f FeatureSet) bool {
		return f[FeatureEnergyMean] < 0.03
	}},
}

// Classify maps a feature set to an emotion label and a fixed confidence.
// Pure and deterministic; features outside the rule predicates are ignored.
func Classify(features FeatureSet) (string, float64) {
	for _, r := range rules {
		if r.match(features) {
			return r.emotion, r.confidence
		}
	}
	return EmotionNeutral, 0.5
}
