package sarvam

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adrianliechti/tts-gateway/pkg/provider"
	"github.com/adrianliechti/tts-gateway/pkg/text"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Client)(nil)

type Client struct {
	*Config
}

func New(token string, options ...Option) (*Client, error) {
	cfg := &Config{
		url: "https://api.sarvam.ai/text-to-speech",

		token: token,

		client: defaultClient,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.token == "" {
		return nil, errors.New("invalid token")
	}

	return &Client{
		Config: cfg,
	}, nil
}

func (c *Client) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	language := options.Language

	if language == "" {
		language = DefaultLanguage
	}

	body, _ := json.Marshal(&SpeechRequest{
		Text: text.Truncate(content, MaxInputLength),

		TargetLanguageCode: language,

		Speaker: DefaultSpeaker,

		Pitch:    0,
		Pace:     1.0,
		Loudness: 1.0,
	})

	req, _ := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("API-Subscription-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var response SpeechResponse

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	if len(response.Audios) == 0 || response.Audios[0] == "" {
		return nil, errors.New("No audio returned")
	}

	data, err := base64.StdEncoding.DecodeString(response.Audios[0])

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID: uuid.NewString(),

		Content:     data,
		ContentType: "audio/wav",
	}, nil
}

func convertError(resp *http.Response) error {
	return errors.New("Sarvam error: " + strconv.Itoa(resp.StatusCode))
}
