package platform

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetEnvToken guarantees the variable is absent, not just empty, and
// restores it after the test.
func unsetEnvToken(t *testing.T) {
	t.Helper()
	t.Setenv(EnvToken, "")
	os.Unsetenv(EnvToken)
}

// writeConfigToken points HOME at a temp dir holding ~/.workflowy/config.
func writeConfigToken(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".workflowy")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverToken_Precedence(t *testing.T) {
	t.Run("explicit wins over everything", func(t *testing.T) {
		t.Setenv(EnvToken, "env-token")
		writeConfigToken(t, "file-token")

		if got := DiscoverToken("explicit-token"); got != "explicit-token" {
			t.Errorf("expected explicit-token, got %q", got)
		}
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv(EnvToken, "env-token")
		writeConfigToken(t, "file-token")

		if got := DiscoverToken(""); got != "env-token" {
			t.Errorf("expected env-token, got %q", got)
		}
	})

	t.Run("file is the last resort", func(t *testing.T) {
		unsetEnvToken(t)
		writeConfigToken(t, "file-token")

		if got := DiscoverToken(""); got != "file-token" {
			t.Errorf("expected file-token, got %q", got)
		}
	})

	t.Run("file contents are trimmed", func(t *testing.T) {
		unsetEnvToken(t)
		writeConfigToken(t, "\n  file-token  \n")

		if got := DiscoverToken(""); got != "file-token" {
			t.Errorf("expected trimmed file-token, got %q", got)
		}
	})

	t.Run("set but empty environment short-circuits the file", func(t *testing.T) {
		t.Setenv(EnvToken, "")
		writeConfigToken(t, "file-token")

		if got := DiscoverToken(""); got != "" {
			t.Errorf("expected empty token, got %q", got)
		}
	})

	t.Run("nothing configured", func(t *testing.T) {
		unsetEnvToken(t)
		t.Setenv("HOME", t.TempDir())

		if got := DiscoverToken(""); got != "" {
			t.Errorf("expected empty token, got %q", got)
		}
	})
}
