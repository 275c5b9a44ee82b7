package worker

import (
	"github.com/superfeelapi/goEmotion/business/analysis"
	"github.com/superfeelapi/goEmotion/foundation/external/transcriber"
	"github.com/superfeelapi/goEmotion/foundation/redis"
	"go.uber.org/zap"
)

type Settings struct {
	Config
	Logger      *zap.SugaredLogger
	Analyzer    *analysis.Analyzer
	Redis       *redis.Redis
	Transcriber *transcriber.Transcriber
}

type Config struct {
	RunID                 string
	InputPath             string
	MediaDirectory        string
	AnalysisDirectory     string
	TranscriptDirectory   string
	VisualizationInUse    bool
	VisualizationEndpoint string
	VisualizationApiKey   string
}
