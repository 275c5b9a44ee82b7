package worker

func (w *Worker) toneOperation() {
	w.logger.Infow("worker: toneOperation: G started")
	defer w.logger.Infow("worker: toneOperation: G completed")

	w.logger.Infow("worker: toneOperation: G listening")
	select {
	case buffer := <-w.toneSub.GetChannel():
		tone, err := w.analyzer.AnalyzeTone(buffer)
		if err != nil {
			w.Shutdown(err)
			return
		}

		patterns, err := w.analyzer.AnalyzeSpeechPatterns(buffer)
		if err != nil {
			w.Shutdown(err)
			return
		}
		w.logger.Infow("worker: toneOperation: analyzed",
			"pitchMean", tone.PitchMean,
			"energyMean", tone.EnergyMean,
			"speechDuration", patterns.SpeechDuration,
		)

		select {
		case w.toneCh <- tone:
		case <-w.shut:
			return
		}
		select {
		case w.patternsCh <- patterns:
		case <-w.shut:
		}

	case <-w.shut:
		w.logger.Infow("worker: toneOperation: received shut signal")
	}
}
