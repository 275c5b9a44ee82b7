package worker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/superfeelapi/goEmotion/business/analysis"
	"github.com/superfeelapi/goEmotion/foundation/external/visualization"
	"github.com/superfeelapi/goEmotion/foundation/report"
	"github.com/superfeelapi/goEmotion/foundation/state"
)

func (w *Worker) reportOperation() {
	w.logger.Infow("worker: reportOperation: G started")
	defer w.logger.Infow("worker: reportOperation: G completed")

	var (
		emotions       []analysis.EmotionResult
		tone           analysis.ToneAnalysis
		patterns       analysis.SpeechPatterns
		transcript     string
		haveEmotions   bool
		haveTone       bool
		havePatterns   bool
		haveTranscript bool
	)

	needTranscript := w.state.Get(state.Transcriber)

	w.logger.Infow("worker: reportOperation: G listening")
	for !(haveEmotions && haveTone && havePatterns && (haveTranscript || !needTranscript)) {
		select {
		case emotions = <-w.emotionsCh:
			haveEmotions = true

		case tone = <-w.toneCh:
			haveTone = true

		case patterns = <-w.patternsCh:
			havePatterns = true

		case transcript = <-w.transcriptCh:
			haveTranscript = true

		case <-w.shut:
			w.logger.Infow("worker: reportOperation: received shut signal")
			return
		}
	}

	mood, confidence := analysis.Aggregate(emotions)

	result := analysis.AudioAnalysis{
		Emotions:        emotions,
		Tone:            tone,
		SpeechPatterns:  patterns,
		OverallMood:     mood,
		ConfidenceScore: confidence,
	}

	now := time.Now()
	reportID := createReportID()
	record := buildRecord(result, transcript, reportID, now)

	reportPath := report.Path(w.config.AnalysisDirectory, now, reportID)
	if err := report.Write(record, reportPath); err != nil {
		w.Shutdown(err)
		return
	}
	w.logger.Infow("worker: reportOperation: report written", "path", reportPath)

	if transcript != "" && w.config.TranscriptDirectory != "" {
		if err := w.saveTranscript(transcript, reportID, now); err != nil {
			w.logger.Errorw("worker: reportOperation: save transcript", "ERROR", err)
		}
	}

	if w.state.Get(state.Redis) {
		if err := w.redis.Produce(record); err != nil {
			w.logger.Errorw("worker: reportOperation: redis publish", "ERROR", err)
		}
	}

	if w.state.Get(state.Visualization) {
		imagePath := filepath.Join(w.config.AnalysisDirectory,
			fmt.Sprintf("emotion_analysis_%s_%s.png", now.Format("20060102_150405"), reportID))

		resp, err := visualization.Render(w.config.VisualizationEndpoint, w.config.VisualizationApiKey, visualization.Request{
			OutputPath: imagePath,
			Report:     record,
		})
		if err != nil {
			w.logger.Errorw("worker: reportOperation: visualization", "ERROR", err)
		} else {
			w.logger.Infow("worker: reportOperation: visualization rendered", "path", resp.ImagePath)
		}
	}

	w.logger.Infow("worker: reportOperation: run complete",
		"overallMood", record.OverallMood,
		"confidenceScore", record.ConfidenceScore,
		"segments", len(record.EmotionsTimeline),
	)

	w.Shutdown(nil)
}

func (w *Worker) saveTranscript(transcript string, reportID string, at time.Time) error {
	if err := os.MkdirAll(w.config.TranscriptDirectory, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("transcript_%s_%s.txt", at.Format("20060102_150405"), reportID)
	path := filepath.Join(w.config.TranscriptDirectory, name)

	if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
		return err
	}

	w.logger.Infow("worker: reportOperation: transcript saved", "path", path)
	return nil
}

func buildRecord(result analysis.AudioAnalysis, transcript string, reportID string, at time.Time) report.Record {
	timeline := make([]report.TimelineEntry, 0, len(result.Emotions))
	for _, e := range result.Emotions {
		timeline = append(timeline, report.TimelineEntry{
			Timestamp:  e.Timestamp,
			Emotion:    e.Emotion,
			Confidence: e.Confidence,
		})
	}

	return report.Record{
		ReportID:        reportID,
		Timestamp:       at.Format(time.RFC3339),
		OverallMood:     result.OverallMood,
		ConfidenceScore: result.ConfidenceScore,
		ToneAnalysis: report.Tone{
			PitchMean:      result.Tone.PitchMean,
			PitchStd:       result.Tone.PitchStd,
			EnergyMean:     result.Tone.EnergyMean,
			SpeakingRate:   result.Tone.SpeakingRate,
			PauseFrequency: result.Tone.PauseFrequency,
		},
		SpeechPatterns: report.Patterns{
			SpeechDuration:    result.SpeechPatterns.SpeechDuration,
			VolumeVariability: result.SpeechPatterns.VolumeVariability,
			PitchVariability:  result.SpeechPatterns.PitchVariability,
			SpeechRhythm:      result.SpeechPatterns.SpeechRhythm,
		},
		Transcript:       transcript,
		EmotionsTimeline: timeline,
	}
}

// =================================================================================================================

func createReportID() string {
	return uuid.NewString()[:8]
}
