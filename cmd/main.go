package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/nrepin/voice_agent/internal/ai"
	"github.com/nrepin/voice_agent/internal/config"
	"github.com/nrepin/voice_agent/internal/delivery"
	"github.com/nrepin/voice_agent/internal/speech"
	"github.com/nrepin/voice_agent/internal/transcribe"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (AI / STT / TTS)
	// =========================================================================

	groqClient := ai.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)
	aiService := ai.NewAiService(groqClient)

	transcriber := transcribe.NewAssemblyAIClient(cfg.AssemblyAIKey)

	store := speech.NewAudioStore(cfg.AudioDir, zl)
	if err := store.EnsureDir(); err != nil {
		log.Fatalf("failed to create audio dir: %v", err)
	}
	ttsClient := speech.NewGoogleTTSClient(store)

	// =========================================================================
	// STARTUP CLEANUP
	// =========================================================================

	removed := store.Sweep()
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("swept %d stale audio files from %s", removed, cfg.AudioDir),
		Service: "voice_agent",
	})

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	handler := delivery.NewVoiceHandler(aiService, transcriber, ttsClient, cfg, zl)
	delivery.RegisterRoutes(r, handler)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "voice_agent",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
