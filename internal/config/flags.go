package config

import (
	"flag"
	"os"
	"time"

	"github.com/docbotdev/docbot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   credential database file
//	-l string   chat log export directory
//	-m string   assistant model name
//	-u string   assistant API base URL
//	-t int      assistant request timeout, seconds
//
// Args are first filtered to the flags handled here (flagx.FilterArgs) to
// avoid collisions with the -c/-config flags owned by the JSON overlay.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-m", "-u", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "credential database file")
	fs.StringVar(&config.ChatLogDir, "l", config.ChatLogDir, "chat log export directory")
	fs.StringVar(&config.Model, "m", config.Model, "assistant model name")
	fs.StringVar(&config.APIBaseURL, "u", config.APIBaseURL, "assistant API base URL")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "assistant request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
