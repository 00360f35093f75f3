package config

import (
	"os"
	"strings"
)

const credentialsFile = ".env"

// Credential resolves a secret by environment variable name, falling back
// to a NAME=value line in the local .env file. Resolution happens once at
// startup; the result is baked into the provider clients.
func Credential(name string) string {
	if name == "" {
		return ""
	}

	if val := os.Getenv(name); val != "" {
		return val
	}

	return fileCredential(credentialsFile, name)
}

func fileCredential(path, name string) string {
	data, err := os.ReadFile(path)

	if err != nil {
		return ""
	}

	for line := range strings.Lines(string(data)) {
		if val, ok := strings.CutPrefix(line, name+"="); ok {
			return strings.TrimSpace(val)
		}
	}

	return ""
}
