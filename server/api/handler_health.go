package api

import (
	"net/http"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, err := h.Synthesizer("elevenlabs")

	writeJson(w, HealthResponse{
		Status: "ok",

		ElevenLabsConfigured: err == nil,
	})
}
