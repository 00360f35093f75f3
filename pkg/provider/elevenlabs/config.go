package elevenlabs

import (
	"net/http"
	"time"
)

// MaxInputLength is the longest text the API accepts per request.
// Longer input is truncated, not rejected.
const MaxInputLength = 1000

var defaultClient = &http.Client{
	Timeout: 30 * time.Second,
}

var Voices = map[string]string{
	"rachel": "21m00Tcm4TlvDq8ikWAM",
	"adam":   "pNInz6obpgDQGcFmaJgB",
	"josh":   "TxGEqnHWrfWFTfGW9XjX",
	"bella":  "EXAVITQu4vr4xnSDxMaL",
}

const DefaultVoice = "rachel"

// VoiceID resolves a short voice name to its API identifier.
// Unknown names fall back to the default voice.
func VoiceID(name string) string {
	if id, ok := Voices[name]; ok {
		return id
	}

	return Voices[DefaultVoice]
}

type Config struct {
	url string

	token string

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

type SpeechRequest struct {
	Text string `json:"text"`

	ModelID string `json:"model_id"`

	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}
