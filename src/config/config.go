// Package config reads the optional .env file shared by the grapher binaries.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvLogLevel = "DYNGRAPH_LOG_LEVEL"
	EnvDPI      = "DYNGRAPH_DPI"
	EnvFont     = "DYNGRAPH_FONT"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Env holds settings that may come from the process environment or a .env file.
// Zero values mean "not set".
type Env struct {
	LogLevel string
	DPI      float64
	Font     string
}

// Load reads the given dotenv files (DefaultEnvFile when none are named).
// Missing files are skipped. Variables already set in the process
// environment take precedence over file values.
func Load(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	values := map[string]string{}
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Env{}, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range m {
			values[k] = v
		}
	}
	get := func(key string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(values[key])
	}
	env := Env{LogLevel: get(EnvLogLevel), Font: get(EnvFont)}
	if raw := get(EnvDPI); raw != "" {
		dpi, err := strconv.ParseFloat(raw, 64)
		if err != nil || dpi <= 0 {
			return env, fmt.Errorf("%s: invalid value %q", EnvDPI, raw)
		}
		env.DPI = dpi
	}
	return env, nil
}
