package delivery

import (
	"io"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/nrepin/voice_agent/internal/ai"
	"github.com/nrepin/voice_agent/internal/config"
	"github.com/nrepin/voice_agent/internal/speech"
	"github.com/nrepin/voice_agent/internal/transcribe"
)

type VoiceHandler struct {
	aiService   ai.Service
	transcriber transcribe.Transcriber
	synthesizer speech.Synthesizer
	cfg         *config.Config
	log         *logger.ZapLogger
}

func NewVoiceHandler(
	aiService ai.Service,
	transcriber transcribe.Transcriber,
	synthesizer speech.Synthesizer,
	cfg *config.Config,
	log *logger.ZapLogger,
) *VoiceHandler {
	return &VoiceHandler{
		aiService:   aiService,
		transcriber: transcriber,
		synthesizer: synthesizer,
		cfg:         cfg,
		log:         log,
	}
}

func (h *VoiceHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing message"})
		return
	}

	reply, err := h.aiService.GetReply(r.Context(), req.Message)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "chat completion failed", Error: err})
		// клиент ждёт ответ в том же поле, статус остаётся 200
		writeJSON(w, http.StatusOK, map[string]string{"response": "Error: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (h *VoiceHandler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart: " + err.Error()})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing file: " + err.Error()})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read file: " + err.Error()})
		return
	}

	text, err := h.transcriber.Transcribe(r.Context(), audio)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "transcription failed", Error: err})
		writeJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (h *VoiceHandler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing text"})
		return
	}

	path, err := h.synthesizer.Synthesize(r.Context(), req.Text)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "synthesis failed", Error: err})
		writeJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}

	f, err := os.Open(path)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "failed to open synthesized file", Error: err})
		writeJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="speech.mp3"`)
	if _, err := io.Copy(w, f); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "failed to stream audio", Error: err})
	}
}

func (h *VoiceHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "Voice Agent API is running"})
}

func (h *VoiceHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":                "healthy",
		"groq_configured":       h.cfg.GroqAPIKey != "",
		"assemblyai_configured": h.cfg.AssemblyAIKey != "",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
