package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("VITE_ELEVENLABS_API_KEY", "")
	t.Setenv("VITE_SARVAM_API_KEY", "")

	cfg, err := Parse("")
	require.NoError(t, err)

	require.Equal(t, ":5000", cfg.Address)

	_, err = cfg.Synthesizer("elevenlabs")
	require.Error(t, err)

	_, err = cfg.Synthesizer("sarvam")
	require.Error(t, err)
}

func TestParseDefaultsFromEnv(t *testing.T) {
	t.Setenv("VITE_ELEVENLABS_API_KEY", "test-token")
	t.Setenv("VITE_SARVAM_API_KEY", "")

	cfg, err := Parse("")
	require.NoError(t, err)

	_, err = cfg.Synthesizer("elevenlabs")
	require.NoError(t, err)

	_, err = cfg.Synthesizer("sarvam")
	require.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	t.Setenv("VITE_ELEVENLABS_API_KEY", "")
	t.Setenv("VITE_SARVAM_API_KEY", "")

	cfg, err := Parse(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, ":5000", cfg.Address)
}

func TestParseFile(t *testing.T) {
	t.Setenv("TEST_SARVAM_TOKEN", "sarvam-token")

	data := `
address: ":8080"

providers:
  - type: elevenlabs
    token: elevenlabs-token
    limit: 10

  - type: sarvam
    token: ${TEST_SARVAM_TOKEN}
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)

	_, err = cfg.Synthesizer("elevenlabs")
	require.NoError(t, err)

	_, err = cfg.Synthesizer("sarvam")
	require.NoError(t, err)
}

func TestParseFileInvalidType(t *testing.T) {
	data := `
providers:
  - type: polly
    token: test-token
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	_, err := Parse(path)
	require.ErrorContains(t, err, "invalid synthesizer type")
}

func TestCredential(t *testing.T) {
	t.Setenv("TEST_CREDENTIAL", "from-env")

	require.Equal(t, "from-env", Credential("TEST_CREDENTIAL"))
	require.Empty(t, Credential(""))
}

func TestFileCredential(t *testing.T) {
	data := "OTHER_KEY=other\nTEST_KEY=from-file\n"

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	require.Equal(t, "from-file", fileCredential(path, "TEST_KEY"))
	require.Equal(t, "other", fileCredential(path, "OTHER_KEY"))
	require.Empty(t, fileCredential(path, "MISSING_KEY"))

	require.Empty(t, fileCredential(filepath.Join(t.TempDir(), ".env"), "TEST_KEY"))
}
