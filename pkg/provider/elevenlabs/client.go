package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
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
		url: "https://api.elevenlabs.io/v1",

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

	voice := VoiceID(options.Voice)

	body, _ := json.Marshal(&SpeechRequest{
		Text: text.Truncate(content, MaxInputLength),

		ModelID: "eleven_monolingual_v1",

		VoiceSettings: VoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})

	u, _ := url.JoinPath(c.url, "/text-to-speech/"+voice)

	req, _ := http.NewRequestWithContext(ctx, "POST", u, bytes.NewReader(body))
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID: uuid.NewString(),

		Content:     data,
		ContentType: "audio/mpeg",
	}, nil
}

func convertError(resp *http.Response) error {
	return errors.New("ElevenLabs error: " + strconv.Itoa(resp.StatusCode))
}
