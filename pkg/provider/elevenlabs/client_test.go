package elevenlabs_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/tts-gateway/pkg/provider/elevenlabs"

	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	ctx := context.Background()

	var request elevenlabs.SpeechRequest
	var path, key, accept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.Header.Get("xi-api-key")
		accept = r.Header.Get("Accept")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))

	defer server.Close()

	c, err := elevenlabs.New("test-token", elevenlabs.WithURL(server.URL))
	require.NoError(t, err)

	synthesis, err := c.Synthesize(ctx, "hello", nil)
	require.NoError(t, err)

	require.Equal(t, "/text-to-speech/21m00Tcm4TlvDq8ikWAM", path)
	require.Equal(t, "test-token", key)
	require.Equal(t, "audio/mpeg", accept)

	require.Equal(t, "hello", request.Text)
	require.Equal(t, "eleven_monolingual_v1", request.ModelID)
	require.Equal(t, 0.5, request.VoiceSettings.Stability)
	require.Equal(t, 0.75, request.VoiceSettings.SimilarityBoost)

	require.NotEmpty(t, synthesis.ID)
	require.Equal(t, []byte("mp3-bytes"), synthesis.Content)
	require.Equal(t, "audio/mpeg", synthesis.ContentType)
}

func TestSynthesizeTruncates(t *testing.T) {
	ctx := context.Background()

	var request elevenlabs.SpeechRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		w.Write([]byte("ok"))
	}))

	defer server.Close()

	c, err := elevenlabs.New("test-token", elevenlabs.WithURL(server.URL))
	require.NoError(t, err)

	input := strings.Repeat("a", elevenlabs.MaxInputLength+1)

	_, err = c.Synthesize(ctx, input, nil)
	require.NoError(t, err)

	require.Len(t, request.Text, elevenlabs.MaxInputLength)
}

func TestSynthesizeError(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	defer server.Close()

	c, err := elevenlabs.New("test-token", elevenlabs.WithURL(server.URL))
	require.NoError(t, err)

	_, err = c.Synthesize(ctx, "hello", nil)
	require.ErrorContains(t, err, "401")
}

func TestNewInvalidToken(t *testing.T) {
	_, err := elevenlabs.New("")
	require.Error(t, err)
}

func TestVoiceID(t *testing.T) {
	require.Equal(t, "pNInz6obpgDQGcFmaJgB", elevenlabs.VoiceID("adam"))
	require.Equal(t, "21m00Tcm4TlvDq8ikWAM", elevenlabs.VoiceID("rachel"))

	// unknown names fall back to the default voice
	require.Equal(t, "21m00Tcm4TlvDq8ikWAM", elevenlabs.VoiceID("unknown"))
	require.Equal(t, "21m00Tcm4TlvDq8ikWAM", elevenlabs.VoiceID(""))
}
