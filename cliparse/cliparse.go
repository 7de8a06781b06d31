package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = 3000
	DefaultBackendPort = 5005
	DefaultTimeout     = 10 * time.Second
	DefaultSessionTTL  = 30 * time.Minute
)

// Config is the web frontend configuration.
// APIURL is kept raw: a missing or malformed value is reported on the pages,
// not at startup.
type Config struct {
	Port        int
	APIURL      string
	Timeout     time.Duration
	SessionSalt string
	SessionTTL  time.Duration
}

// BackendConfig configures the development backend
type BackendConfig struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	IPHashSalt   string
	SeedFile     string
}

// StatusConfig configures the terminal results viewer
type StatusConfig struct {
	APIURL  string
	Timeout time.Duration
	Watch   time.Duration
	NoColor bool
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding the process environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return err
	}
	slog.Debug("loaded environment files", "files", existing)
	return nil
}

// ParseFlags parses the frontend flags with environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("votaciones", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.APIURL, "api", "", "Voting backend base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Backend request timeout")
	fs.StringVar(&cfg.SessionSalt, "session-salt", "", "Session cookie secret (prefer env)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Idle session lifetime")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	port, err := portFromEnv(cfg.Port, DefaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.Port = port

	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("VOTING_API_URL")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("VITE_API_URL")
	}

	if cfg.Timeout == 0 {
		cfg.Timeout, err = durationFromEnv("REQUEST_TIMEOUT", DefaultTimeout)
		if err != nil {
			return Config{}, err
		}
	}
	if cfg.Timeout < 0 {
		return Config{}, errors.New("timeout must be positive")
	}

	if cfg.SessionTTL == 0 {
		cfg.SessionTTL, err = durationFromEnv("SESSION_TTL", DefaultSessionTTL)
		if err != nil {
			return Config{}, err
		}
	}
	if cfg.SessionTTL < 0 {
		return Config{}, errors.New("session TTL must be positive")
	}

	if cfg.SessionSalt == "" {
		cfg.SessionSalt = os.Getenv("SESSION_SALT")
	}

	return cfg, nil
}

// ParseBackendFlags parses the development backend flags
func ParseBackendFlags(args []string) (BackendConfig, error) {
	var cfg BackendConfig

	fs := flag.NewFlagSet("devbackend", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "IP hash salt (prefer env)")
	fs.StringVar(&cfg.SeedFile, "seed", "", "JSON file with candidates to seed")

	if err := fs.Parse(args); err != nil {
		return BackendConfig{}, err
	}

	port, err := portFromEnv(cfg.Port, DefaultBackendPort)
	if err != nil {
		return BackendConfig{}, err
	}
	cfg.Port = port

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return BackendConfig{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return BackendConfig{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:votaciones.db"
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		return BackendConfig{}, errors.New("IP_HASH_SALT required")
	}

	if cfg.SeedFile == "" {
		cfg.SeedFile = os.Getenv("SEED_FILE")
	}

	return cfg, nil
}

// ParseStatusFlags parses the votestatus flags. Unlike the web frontend it
// requires a backend URL.
func ParseStatusFlags(args []string) (StatusConfig, error) {
	var cfg StatusConfig

	fs := flag.NewFlagSet("votestatus", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "api", "", "Voting backend base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Backend request timeout")
	fs.DurationVar(&cfg.Watch, "watch", 0, "Refresh interval (0 prints once)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return StatusConfig{}, err
	}

	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("VOTING_API_URL")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("VITE_API_URL")
	}
	if cfg.APIURL == "" {
		return StatusConfig{}, errors.New("backend URL required (use -api or VOTING_API_URL env)")
	}

	if cfg.Timeout == 0 {
		var err error
		cfg.Timeout, err = durationFromEnv("REQUEST_TIMEOUT", DefaultTimeout)
		if err != nil {
			return StatusConfig{}, err
		}
	}
	if cfg.Timeout < 0 || cfg.Watch < 0 {
		return StatusConfig{}, errors.New("durations must be positive")
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return cfg, nil
}

func portFromEnv(flagPort, def int) (int, error) {
	if flagPort != 0 {
		return flagPort, nil
	}
	portStr := os.Getenv("PORT")
	if portStr == "" {
		return def, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, errors.New("invalid PORT env variable")
	}
	return port, nil
}

func durationFromEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.New("invalid " + key + " env variable")
	}
	return d, nil
}
