package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianliechti/tts-gateway/pkg/provider"
)

func (h *Handler) handleSpeechSarvam(w http.ResponseWriter, r *http.Request) {
	synthesizer, err := h.Synthesizer("sarvam")

	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("Sarvam API key not configured"))
		return
	}

	var req SpeechSarvamRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("No text provided"))
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, errors.New("No text provided"))
		return
	}

	options := &provider.SynthesizeOptions{
		Language: req.Language,
	}

	synthesis, err := synthesizer.Synthesize(r.Context(), req.Text, options)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", synthesis.ContentType)

	w.Write(synthesis.Content)
}
