package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/tts-gateway/pkg/limiter"
	"github.com/adrianliechti/tts-gateway/pkg/otel"
	"github.com/adrianliechti/tts-gateway/pkg/provider"
	"github.com/adrianliechti/tts-gateway/pkg/provider/elevenlabs"
	"github.com/adrianliechti/tts-gateway/pkg/provider/sarvam"
)

func (cfg *Config) RegisterSynthesizer(id string, p provider.Synthesizer) {
	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]provider.Synthesizer)
	}

	cfg.synthesizer[id] = p
}

func (cfg *Config) Synthesizer(id string) (provider.Synthesizer, error) {
	if cfg.synthesizer != nil {
		if s, ok := cfg.synthesizer[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("synthesizer not found: " + id)
}

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerSynthesizers(f *configFile) error {
	configs := defaultProviders()

	if f != nil && len(f.Providers) > 0 {
		configs = f.Providers
	}

	for _, config := range configs {
		id := strings.ToLower(config.Type)

		if config.Token == "" {
			config.Token = Credential(credentialName(id))
		}

		if config.Token == "" {
			continue
		}

		synthesizer, err := createSynthesizer(config)

		if err != nil {
			return err
		}

		if _, ok := synthesizer.(limiter.Synthesizer); !ok {
			synthesizer = limiter.NewSynthesizer(createLimiter(config.Limit), synthesizer)
		}

		if _, ok := synthesizer.(otel.Synthesizer); !ok {
			synthesizer = otel.NewSynthesizer(id, id, synthesizer)
		}

		cfg.RegisterSynthesizer(id, synthesizer)
	}

	return nil
}

func defaultProviders() []providerConfig {
	return []providerConfig{
		{Type: "elevenlabs"},
		{Type: "sarvam"},
	}
}

func credentialName(id string) string {
	switch id {
	case "elevenlabs":
		return "VITE_ELEVENLABS_API_KEY"

	case "sarvam":
		return "VITE_SARVAM_API_KEY"

	default:
		return ""
	}
}

func createSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "elevenlabs":
		return elevenlabsSynthesizer(cfg)

	case "sarvam":
		return sarvamSynthesizer(cfg)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func elevenlabsSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	var options []elevenlabs.Option

	if cfg.URL != "" {
		options = append(options, elevenlabs.WithURL(cfg.URL))
	}

	return elevenlabs.New(cfg.Token, options...)
}

func sarvamSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	var options []sarvam.Option

	if cfg.URL != "" {
		options = append(options, sarvam.WithURL(cfg.URL))
	}

	return sarvam.New(cfg.Token, options...)
}
