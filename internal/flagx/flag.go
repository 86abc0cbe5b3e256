// Package flagx lets several loaders pick their own flags out of the same
// command line without tripping over each other's definitions.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args made of the allowed flags and
// their values, in their original order.
//
// Both "-f value" and "-f=value" forms are recognised. A token following an
// allowed flag is taken as its value unless it starts with "-" or the flag
// is listed in boolFlags; bool flags only take a value as "-f=value".
func FilterArgs(args []string, allowedFlags []string, boolFlags ...string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}
	isBool := make(map[string]struct{}, len(boolFlags))
	for _, f := range boolFlags {
		isBool[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if _, ok := isBool[arg]; ok {
				continue
			}
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFileFlag extracts the JSON config path given with -c or -config.
// An empty string means no file was requested.
func ConfigFileFlag(args []string) string {
	return stringFlag(args, "config", "c", "path to JSON config file")
}

// EnvFileFlag extracts the dotenv path given with -e or -env-file.
// An empty string means no file was requested.
func EnvFileFlag(args []string) string {
	return stringFlag(args, "env-file", "e", "path to .env file")
}

// stringFlag parses a single string flag known by a long and a short name.
// When both are present the last one on the command line wins.
func stringFlag(args []string, long, short, usage string) string {
	var v string

	filtered := FilterArgs(args, []string{"-" + short, "-" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&v, long, "", usage)
	fs.StringVar(&v, short, "", usage+" (short)")
	_ = fs.Parse(filtered)

	return v
}
