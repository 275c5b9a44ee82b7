package worker

func (w *Worker) emotionOperation() {
	w.logger.Infow("worker: emotionOperation: G started")
	defer w.logger.Infow("worker: emotionOperation: G completed")

	w.logger.Infow("worker: emotionOperation: G listening")
	select {
	case buffer := <-w.emotionSub.GetChannel():
		emotions, err := w.analyzer.DetectEmotions(w.ctx, buffer)
		if err != nil {
			w.Shutdown(err)
			return
		}
		w.logger.Infow("worker: emotionOperation: classified", "segments", len(emotions))

		select {
		case w.emotionsCh <- emotions:
		case <-w.shut:
		}

	case <-w.shut:
		w.logger.Infow("worker: emotionOperation: received shut signal")
	}
}
