package config

import (
	"fmt"
	"os"
)

// Config carries everything the process reads from the environment.
// It is built once in main and handed to constructors explicitly.
type Config struct {
	Port string

	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	AssemblyAIKey string

	AudioDir string
}

// Load reads the environment and fails if a required credential is missing.
func Load() (*Config, error) {
	groqKey := os.Getenv("GROQ_API_KEY")
	if groqKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is not set")
	}

	assemblyKey := os.Getenv("ASSEMBLYAI_API_KEY")
	if assemblyKey == "" {
		return nil, fmt.Errorf("ASSEMBLYAI_API_KEY is not set")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GroqAPIKey:    groqKey,
		GroqBaseURL:   getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:     getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		AssemblyAIKey: assemblyKey,
		AudioDir:      getEnv("AUDIO_DIR", "temp_audio"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
