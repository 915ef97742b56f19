package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvToken is the environment variable the token discovery reads.
const EnvToken = "WORKFLOWY_API_TOKEN"

// ConfigFile returns the path of the local token file, ~/.workflowy/config.
func ConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".workflowy", "config"), nil
}

// DiscoverToken finds the API token by the fixed precedence order: the
// explicit value, then the environment variable, then the config file with
// surrounding whitespace trimmed. It returns "" when nothing is configured;
// deciding that this is an error is the caller's job.
func DiscoverToken(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env, ok := os.LookupEnv(EnvToken); ok {
		return env
	}
	path, err := ConfigFile()
	if err != nil {
		return ""
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(content))
}
