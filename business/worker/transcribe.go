package worker

import (
	"strings"

	"github.com/superfeelapi/goEmotion/foundation/state"
)

// transcriberChunkBytes is the size of one streamed PCM chunk.
const transcriberChunkBytes = 8000

func (w *Worker) transcribeOperation() {
	w.logger.Infow("worker: transcribeOperation: G started")
	defer w.logger.Infow("worker: transcribeOperation: G completed")

	if !w.state.Get(state.Transcriber) {
		return
	}

	w.logger.Infow("worker: transcribeOperation: G listening")
	select {
	case buffer := <-w.transcribeSub.GetChannel():
		transcript, err := w.transcribe(buffer.PCM16())
		if err != nil {
			// Transcription is best effort: the analysis result stands
			// without it.
			w.logger.Errorw("worker: transcribeOperation", "ERROR", err)
		}

		select {
		case w.transcriptCh <- transcript:
		case <-w.shut:
		}

	case <-w.shut:
		w.logger.Infow("worker: transcribeOperation: received shut signal")
	}
}

func (w *Worker) transcribe(pcm []byte) (string, error) {
	for offset := 0; offset < len(pcm); offset += transcriberChunkBytes {
		end := offset + transcriberChunkBytes
		if end > len(pcm) {
			end = len(pcm)
		}
		if err := w.transcriber.Send(pcm[offset:end]); err != nil {
			return "", err
		}
	}

	if err := w.transcriber.Flush(); err != nil {
		return "", err
	}

	var parts []string
	for {
		result, err := w.transcriber.ReadResult()
		if err != nil {
			return "", err
		}
		if result.Transcription != "" {
			parts = append(parts, result.Transcription)
		}
		if result.IsFinal {
			break
		}
	}

	transcript := strings.Join(parts, " ")
	w.logger.Infow("worker: transcribeOperation: transcript received", "characters", len(transcript))

	return transcript, nil
}
