package api

type SpeechRequest struct {
	Text string `json:"text"`

	Voice string `json:"voice"`
}

type SpeechSarvamRequest struct {
	Text string `json:"text"`

	Language string `json:"language"`
}

type HealthResponse struct {
	Status string `json:"status"`

	ElevenLabsConfigured bool `json:"elevenlabs_configured"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
