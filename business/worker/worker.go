package worker

import (
	"context"
	"sync"

	"github.com/superfeelapi/goEmotion/business/analysis"
	"github.com/superfeelapi/goEmotion/foundation/audio"
	"github.com/superfeelapi/goEmotion/foundation/external/transcriber"
	"github.com/superfeelapi/goEmotion/foundation/pubsub"
	"github.com/superfeelapi/goEmotion/foundation/redis"
	"github.com/superfeelapi/goEmotion/foundation/state"
	"go.uber.org/zap"
)

const samplesTopic = "samples"

type Worker struct {
	config Config
	state  *state.State
	logger *zap.SugaredLogger

	analyzer    *analysis.Analyzer
	redis       *redis.Redis
	transcriber *transcriber.Transcriber

	broker        *pubsub.Broker[audio.SampleBuffer]
	emotionSub    *pubsub.Subscriber[audio.SampleBuffer]
	toneSub       *pubsub.Subscriber[audio.SampleBuffer]
	transcribeSub *pubsub.Subscriber[audio.SampleBuffer]

	ctx    context.Context
	cancel context.CancelFunc

	wg       sync.WaitGroup
	shut     chan struct{}
	shutOnce sync.Once
	error    chan error

	emotionsCh   chan []analysis.EmotionResult
	toneCh       chan analysis.ToneAnalysis
	patternsCh   chan analysis.SpeechPatterns
	transcriptCh chan string
}

func Run(s Settings) <-chan error {
	ctx, cancel := context.WithCancel(context.Background())

	w := &Worker{
		config:       s.Config,
		state:        state.NewState(),
		logger:       s.Logger,
		analyzer:     s.Analyzer,
		redis:        s.Redis,
		transcriber:  s.Transcriber,
		broker:       pubsub.NewBroker[audio.SampleBuffer](),
		ctx:          ctx,
		cancel:       cancel,
		shut:         make(chan struct{}),
		error:        make(chan error, 1),
		emotionsCh:   make(chan []analysis.EmotionResult, 1),
		toneCh:       make(chan analysis.ToneAnalysis, 1),
		patternsCh:   make(chan analysis.SpeechPatterns, 1),
		transcriptCh: make(chan string, 1),
	}

	w.state.Set(state.Transcriber, s.Transcriber != nil)
	w.state.Set(state.Redis, s.Redis != nil)
	w.state.Set(state.Visualization, s.Config.VisualizationInUse)

	// Subscriptions happen before any operation runs so the decoded buffer
	// reaches every consumer regardless of goroutine start order.
	w.emotionSub = pubsub.NewSubscriber[audio.SampleBuffer](1)
	w.broker.Subscribe(samplesTopic, w.emotionSub)

	w.toneSub = pubsub.NewSubscriber[audio.SampleBuffer](1)
	w.broker.Subscribe(samplesTopic, w.toneSub)

	if w.transcriber != nil {
		w.transcribeSub = pubsub.NewSubscriber[audio.SampleBuffer](1)
		w.broker.Subscribe(samplesTopic, w.transcribeSub)
	}

	operations := []func(){
		w.decodeOperation,
		w.emotionOperation,
		w.toneOperation,
		w.transcribeOperation,
		w.reportOperation,
	}

	g := len(operations)
	w.wg.Add(g)

	hasStarted := make(chan bool)

	for _, op := range operations {
		go func(op func()) {
			defer w.wg.Done()
			hasStarted <- true
			op()
		}(op)
	}

	for i := 0; i < g; i++ {
		<-hasStarted
	}

	return w.error
}

// Shutdown terminates every operation and, once they have drained, reports
// err on the worker's error channel. A nil err marks a completed run.
func (w *Worker) Shutdown(err error) {
	w.shutOnce.Do(func() {
		w.logger.Infow("worker: shutdown: started")

		w.cancel()
		close(w.shut)

		go func() {
			w.wg.Wait()
			w.logger.Infow("worker: shutdown: completed")
			w.error <- err
		}()
	})
}
