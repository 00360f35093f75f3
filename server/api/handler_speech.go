package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianliechti/tts-gateway/pkg/provider"
)

func (h *Handler) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("No text provided"))
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, errors.New("No text provided"))
		return
	}

	synthesizer, err := h.Synthesizer("elevenlabs")

	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("ElevenLabs API key not configured"))
		return
	}

	options := &provider.SynthesizeOptions{
		Voice: req.Voice,
	}

	synthesis, err := synthesizer.Synthesize(r.Context(), req.Text, options)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", synthesis.ContentType)
	w.Header().Set("Content-Disposition", "inline")

	w.Write(synthesis.Content)
}
