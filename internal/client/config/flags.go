package config

import (
	"flag"
	"io"
	"time"

	"github.com/WayleX/Beerter/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the Beerter API
//	-d string   session database path
//	-t int      request timeout in seconds
//	-l string   log level
//	-m          in-memory session
//
// The arguments are filtered with flagx.FilterArgs first so flags owned by
// other loaders (-c, -e) do not cause parse errors here.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-l", "-m"}, "-m")

	fs := flag.NewFlagSet("beerter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the Beerter API")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.Ephemeral, "m", cfg.Ephemeral, "keep the session in memory only")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	// Only an explicit -t replaces the timeout: the seconds default would
	// truncate sub-second values coming from JSON or env.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
