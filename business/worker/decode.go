package worker

import (
	"github.com/superfeelapi/goEmotion/foundation/audio"
	"github.com/superfeelapi/goEmotion/foundation/external/fetcher"
)

func (w *Worker) decodeOperation() {
	w.logger.Infow("worker: decodeOperation: G started")
	defer w.logger.Infow("worker: decodeOperation: G completed")

	path := w.config.InputPath

	if fetcher.IsMediaURL(path) {
		w.logger.Infow("worker: decodeOperation: fetching media", "url", path)

		localPath, err := fetcher.Fetch(w.ctx, path, w.config.MediaDirectory)
		if err != nil {
			w.Shutdown(err)
			return
		}
		path = localPath
		w.logger.Infow("worker: decodeOperation: media fetched", "path", path)
	}

	buffer, err := audio.DecodeFile(w.ctx, path)
	if err != nil {
		w.Shutdown(err)
		return
	}
	w.logger.Infow("worker: decodeOperation: decoded", "path", path, "seconds", buffer.Duration())

	if err := w.broker.Publish(samplesTopic, buffer); err != nil {
		w.Shutdown(err)
		return
	}
}
