// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every variable the parsers read
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "VOTING_API_URL", "VITE_API_URL", "REQUEST_TIMEOUT", "SESSION_SALT", "SESSION_TTL",
		"DATABASE_URL", "DATABASE_TYPE", "IP_HASH_SALT", "SEED_FILE", "NO_COLOR",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.Timeout)
	}
	if cfg.SessionTTL != DefaultSessionTTL {
		t.Errorf("expected TTL %s, got %s", DefaultSessionTTL, cfg.SessionTTL)
	}
	// Missing API URL is reported by the pages, not here
	if cfg.APIURL != "" {
		t.Errorf("expected empty API URL, got %q", cfg.APIURL)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("VOTING_API_URL", "http://localhost:5005/votaciones")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("SESSION_SALT", "s3cret")
	t.Setenv("SESSION_TTL", "5m")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.APIURL != "http://localhost:5005/votaciones" {
		t.Errorf("unexpected API URL %q", cfg.APIURL)
	}
	if cfg.Timeout != 3*time.Second || cfg.SessionTTL != 5*time.Minute {
		t.Errorf("unexpected durations %s %s", cfg.Timeout, cfg.SessionTTL)
	}
	if cfg.SessionSalt != "s3cret" {
		t.Errorf("unexpected salt %q", cfg.SessionSalt)
	}
}

func TestParseFlags_ViteFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_API_URL", "localhost:5005/votaciones")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIURL != "localhost:5005/votaciones" {
		t.Errorf("expected VITE_API_URL fallback, got %q", cfg.APIURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("VOTING_API_URL", "http://env.example.com")

	cfg, err := ParseFlags([]string{"-p", "8080", "-api", "http://cli.example.com", "-timeout", "2s"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.APIURL != "http://cli.example.com" {
		t.Errorf("CLI should override env: got %q", cfg.APIURL)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("expected 2s, got %s", cfg.Timeout)
	}
}

func TestParseFlags_InvalidEnv(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "abc"},
		{"REQUEST_TIMEOUT", "ten seconds"},
		{"SESSION_TTL", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := ParseFlags([]string{}); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestParseBackendFlags(t *testing.T) {
	clearEnv(t)

	if _, err := ParseBackendFlags([]string{}); err == nil {
		t.Error("expected error without IP_HASH_SALT")
	}

	t.Setenv("IP_HASH_SALT", "ip-salt")
	cfg, err := ParseBackendFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != DefaultBackendPort || cfg.DatabaseType != "sqlite" || cfg.DatabaseURL == "" {
		t.Errorf("unexpected defaults %+v", cfg)
	}

	if _, err := ParseBackendFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("expected postgres to require a database URL")
	}
	if _, err := ParseBackendFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("expected unsupported database type to fail")
	}

	cfg, err = ParseBackendFlags([]string{"-t", "postgres", "-d", "postgres://u@h/db", "-seed", "c.json"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseURL != "postgres://u@h/db" || cfg.SeedFile != "c.json" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParseStatusFlags(t *testing.T) {
	clearEnv(t)

	if _, err := ParseStatusFlags([]string{}); err == nil {
		t.Error("expected error without a backend URL")
	}

	t.Setenv("VOTING_API_URL", "http://localhost:5005/votaciones")
	cfg, err := ParseStatusFlags([]string{"-watch", "5s"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != DefaultTimeout || cfg.Watch != 5*time.Second || cfg.NoColor {
		t.Errorf("unexpected config %+v", cfg)
	}

	t.Setenv("NO_COLOR", "1")
	cfg, err = ParseStatusFlags([]string{"-api", "http://cli.example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIURL != "http://cli.example.com" || !cfg.NoColor {
		t.Errorf("unexpected config %+v", cfg)
	}

	if _, err := ParseStatusFlags([]string{"-watch", "-1s"}); err == nil {
		t.Error("expected error for negative watch interval")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("VOTING_API_URL=http://dotenv.example.com\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing files must be ignored, got %v", err)
	}

	// t.Setenv set the variable to "", which godotenv does not override.
	os.Unsetenv("VOTING_API_URL")
	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIURL != "http://dotenv.example.com" {
		t.Errorf("expected value from .env, got %q", cfg.APIURL)
	}
}
