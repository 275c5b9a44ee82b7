package analysis

// Aggregate reduces an ordered emotion timeline to an overall mood and a
// confidence score. The mood is the most frequent label; ties go to the label
// seen first in timestamp order. An empty timeline is neutral with score 0.
func Aggregate(emotions []EmotionResult) (string, float64) {
	if len(emotions) == 0 {
		return EmotionNeutral, 0.0
	}

	counts := make(map[string]int, len(emotions))
	var order []string
	var confidenceSum float64

	for _, e := range emotions {
		if _, seen := counts[e.Emotion]; !seen {
			order = append(order, e.Emotion)
		}
		counts[e.Emotion]++
		confidenceSum += e.Confidence
	}

	mood := order[0]
	best := counts[mood]
	for _, label := range order[1:] {
		if counts[label] > best {
			mood = label
			best = counts[label]
		}
	}

	return mood, confidenceSum / float64(len(emotions))
}
