package config

import (
	"errors"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/WayleX/Beerter/internal/flagx"
)

// parseEnv overlays cfg with BEERTER_* variables. Variables that are not set
// leave the current value untouched.
//
// A dotenv file named by -e/-env-file must exist; the implicit ./.env is
// optional. Values from the dotenv file never override the real environment.
func parseEnv(cfg *Config, args []string, environ []string) error {
	vars := envMap(environ)

	dotenv, err := readDotenv(flagx.EnvFileFlag(args))
	if err != nil {
		return err
	}
	for k, v := range dotenv {
		if _, ok := vars[k]; !ok {
			vars[k] = v
		}
	}

	return env.ParseWithOptions(cfg, env.Options{Environment: vars})
}

func readDotenv(path string) (map[string]string, error) {
	if path != "" {
		return godotenv.Read(path)
	}
	m, err := godotenv.Read()
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return m, nil
}

func envMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}
