package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type SynthesisService struct {
	Options []RequestOption
}

func NewSynthesisService(opts ...RequestOption) SynthesisService {
	return SynthesisService{
		Options: opts,
	}
}

type SynthesizeRequest struct {
	Text string `json:"text"`

	Voice    string `json:"voice,omitempty"`
	Language string `json:"language,omitempty"`
}

type Synthesis struct {
	Content     []byte
	ContentType string
}

// New synthesizes speech via the primary provider (POST /tts).
func (r *SynthesisService) New(ctx context.Context, input SynthesizeRequest, opts ...RequestOption) (*Synthesis, error) {
	return r.synthesize(ctx, "/tts", input, opts...)
}

// NewSarvam synthesizes speech via the regional-language provider (POST /tts/sarvam).
func (r *SynthesisService) NewSarvam(ctx context.Context, input SynthesizeRequest, opts ...RequestOption) (*Synthesis, error) {
	return r.synthesize(ctx, "/tts/sarvam", input, opts...)
}

func (r *SynthesisService) synthesize(ctx context.Context, path string, input SynthesizeRequest, opts ...RequestOption) (*Synthesis, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, _ := json.Marshal(input)

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)

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

	return &Synthesis{
		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func convertError(resp *http.Response) error {
	var response struct {
		Error string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err == nil && response.Error != "" {
		return errors.New(response.Error)
	}

	return errors.New(resp.Status)
}
