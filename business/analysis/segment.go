package analysis

import (
	"context"
	"fmt"
	"sync"

	"github.com/superfeelapi/goEmotion/foundation/audio"
)

// DetectEmotions partitions the buffer into fixed-duration windows and
// classifies each one. A trailing remainder shorter than one window is
// discarded; an input shorter than one window yields no segments.
//
// Windows are classified with bounded concurrency, but the returned timeline
// is always in window index order, so timestamps are non-decreasing.
func (a *Analyzer) DetectEmotions(ctx context.Context, buffer audio.SampleBuffer) ([]EmotionResult, error) {
	if len(buffer.Samples) == 0 {
		return nil, fmt.Errorf("%w: empty sample buffer", ErrAnalysisFailure)
	}

	segmentLength := int(a.config.SegmentSeconds * float64(buffer.SampleRate))
	if segmentLength <= 0 {
		return nil, fmt.Errorf("%w: segment length %d", ErrAnalysisFailure, segmentLength)
	}

	numSegments := len(buffer.Samples) / segmentLength
	results := make([]EmotionResult, numSegments)

	sem := make(chan struct{}, a.config.SegmentWorkers)
	var wg sync.WaitGroup

	for i := 0; i < numSegments; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, fmt.Errorf("%w: %v", ErrAnalysisFailure, err)
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			start := i * segmentLength
			segment := buffer.Samples[start : start+segmentLength]

			features := a.ExtractFeatures(segment)
			emotion, confidence := Classify(features)

			results[i] = EmotionResult{
				Emotion:    emotion,
				Confidence: confidence,
				Timestamp:  float64(i) * a.config.SegmentSeconds,
			}
		}(i)
	}
	wg.Wait()

	return results, nil
}
