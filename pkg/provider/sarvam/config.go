package sarvam

import (
	"net/http"
	"time"
)

// MaxInputLength is the longest text the API accepts per request.
const MaxInputLength = 500

const (
	DefaultLanguage = "en-IN"

	// Available speakers include "meera" and "arvind".
	DefaultSpeaker = "meera"
)

var defaultClient = &http.Client{
	Timeout: 30 * time.Second,
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

	TargetLanguageCode string `json:"target_language_code"`

	Speaker string `json:"speaker"`

	Pitch    float64 `json:"pitch"`
	Pace     float64 `json:"pace"`
	Loudness float64 `json:"loudness"`
}

type SpeechResponse struct {
	Audios []string `json:"audios"`
}
