package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(r chi.Router, h *VoiceHandler) {
	r.Use(httputil.RecoverMiddleware)

	// --- health ---
	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	// --- relay ---
	r.Group(func(gr chi.Router) {
		gr.Use(httprate.LimitByIP(60, time.Minute))

		gr.Post("/chat", h.Chat)
		gr.Post("/stt", h.SpeechToText)
		gr.Post("/tts", h.TextToSpeech)
	})
}
