// Package config reads server settings from flags, the environment and an
// optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr       = ":3000"
	DefaultUploadsDir = "uploads"
)

// Config holds the server settings.
type Config struct {
	Addr       string
	UploadsDir string
	PublicURL  string
	LogPath    string
	NoSeed     bool
}

const usage = `Usage: najdeno [flags]

Flags:
  -a, -addr <host:port>     listen address (env ADDR or PORT, default: :3000)
  -u, -uploads <dir>        photo upload directory (env UPLOADS_DIR, default: uploads)
  -p, -public-url <url>     base URL for photo links (env PUBLIC_URL, default: relative)
  -l, -log <path>           log file path (env LOG_FILE, default: stdout/stderr only)
  -no-seed                  start with an empty board (env NO_SEED=1)
  -h, -help                 show this help and exit
`

// LoadEnv loads variables from a .env file without overriding ones already
// set. A missing file is not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// Parse parses command line arguments, falling back to environment
// variables and then defaults. Usage goes to out. It returns flag.ErrHelp
// when help was requested.
func Parse(args []string, out io.Writer) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("najdeno", flag.ContinueOnError)
	flags.SetOutput(out)

	flags.StringVar(&cfg.Addr, "addr", "", "")
	flags.StringVar(&cfg.Addr, "a", "", "")

	flags.StringVar(&cfg.UploadsDir, "uploads", "", "")
	flags.StringVar(&cfg.UploadsDir, "u", "", "")

	flags.StringVar(&cfg.PublicURL, "public-url", "", "")
	flags.StringVar(&cfg.PublicURL, "p", "", "")

	flags.StringVar(&cfg.LogPath, "log", "", "")
	flags.StringVar(&cfg.LogPath, "l", "", "")

	flags.BoolVar(&cfg.NoSeed, "no-seed", false, "")

	flags.Usage = func() { fmt.Fprint(out, usage) }

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return Config{}, fmt.Errorf("unexpected argument: %s", flags.Arg(0))
	}

	// Fall back to environment variables.
	if cfg.Addr == "" {
		cfg.Addr = os.Getenv("ADDR")
	}
	if cfg.Addr == "" {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil || port < 0 || port > 65535 {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Addr = ":" + portStr
		} else {
			cfg.Addr = DefaultAddr
		}
	}

	if cfg.UploadsDir == "" {
		cfg.UploadsDir = os.Getenv("UPLOADS_DIR")
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = DefaultUploadsDir
	}

	if cfg.PublicURL == "" {
		cfg.PublicURL = os.Getenv("PUBLIC_URL")
	}
	if cfg.LogPath == "" {
		cfg.LogPath = os.Getenv("LOG_FILE")
	}
	if !cfg.NoSeed {
		cfg.NoSeed = os.Getenv("NO_SEED") == "1"
	}

	return cfg, nil
}
