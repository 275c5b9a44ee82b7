package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf/v3"
	"github.com/google/uuid"
	"github.com/superfeelapi/goEmotion/business/analysis"
	"github.com/superfeelapi/goEmotion/business/worker"
	"github.com/superfeelapi/goEmotion/foundation/config"
	"github.com/superfeelapi/goEmotion/foundation/external/transcriber"
	"github.com/superfeelapi/goEmotion/foundation/logger"
	"github.com/superfeelapi/goEmotion/foundation/redis"
)

var (
	version   string
	buildTime string
)

func main() {
	// =================================================================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Input struct {
			Path            string `conf:"help:path or URL of the audio to analyze"`
			ProfileID       string `conf:"default:podcast"`
			ProfileFilePath string `conf:"default:/etc/goEmotion/profiles.json,noprint"`
		}
		Transcriber struct {
			Model string `conf:"default:base"`
		}
		Media struct {
			Directory string `conf:"default:outputs/media"`
		}
		Logger struct {
			LogDirectory string `conf:"default:logs,noprint"`
		}
	}{
		Version: conf.Version{
			Build: version,
			Desc:  buildTime,
		},
	}

	// Configuration Parsing
	help, err := conf.Parse("", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	if cfg.Input.Path == "" {
		fmt.Fprintln(os.Stderr, "ERROR: no input audio given")
		os.Exit(1)
	}

	// =================================================================================================================
	// Application Logger

	runID := uuid.NewString()[:8]

	log, err := logger.New(cfg.Logger.LogDirectory, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// =================================================================================================================
	// Set Profile Configuration

	profile, err := config.GetProfile(cfg.Input.ProfileFilePath, cfg.Input.ProfileID)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}

	// =================================================================================================================
	// Configuration Stringify

	out, err := conf.String(&cfg)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}
	log.Infow("startup", "config", out, "profile", profile.Name, "runID", runID)

	// =================================================================================================================
	// Redis

	var redisClient *redis.Redis
	if profile.IsRedisInUse() {
		redisClient, err = redis.New(profile.Redis.Address, profile.Redis.Password, profile.Redis.ResultsChannel, log)
		if err != nil {
			log.Errorw("startup", "ERROR", err)
			os.Exit(1)
		}
		defer redisClient.Close()
	}

	// =================================================================================================================
	// Speech2Text

	var speech2Text *transcriber.Transcriber
	if profile.IsTranscriberInUse() {
		speech2Text, err = transcriber.New(profile.Transcriber.Endpoint, profile.Transcriber.ApiKey, cfg.Transcriber.Model, profile.Language)
		if err != nil {
			log.Errorw("startup", "ERROR", err)
			os.Exit(1)
		}
		defer speech2Text.Close()
	}

	// =================================================================================================================
	// Run Worker

	workerCh := worker.Run(worker.Settings{
		Logger:      log,
		Analyzer:    analysis.New(analysis.DefaultConfig()),
		Redis:       redisClient,
		Transcriber: speech2Text,
		Config: worker.Config{
			RunID:                 runID,
			InputPath:             cfg.Input.Path,
			MediaDirectory:        cfg.Media.Directory,
			AnalysisDirectory:     profile.AnalysisDir,
			TranscriptDirectory:   profile.TranscriptDir,
			VisualizationInUse:    profile.IsVisualizationInUse(),
			VisualizationEndpoint: profile.Visualization.Endpoint,
			VisualizationApiKey:   profile.Visualization.ApiKey,
		},
	})

	// Blocking main and waiting for error or completion.
	err = <-workerCh

	log.Infow("shutdown", "status", "shutdown started")
	defer log.Infow("shutdown", "status", "shutdown complete")

	if err != nil {
		log.Errorw("shutdown", "ERROR", err)
		os.Exit(1)
	}
}
