package config

import (
	"flag"
	"os"
	"time"

	"github.com/zsaab/linkboard/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s int      session validity, hours
//	-t int      session resolve timeout, milliseconds
//	-n int      front page size
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	sessionValidity := fs.Int("s", int(config.SessionValidityDuration.Hours()), "session validity duration (in hours)")
	resolveTimeout := fs.Int("t", int(config.SessionResolveTimeout.Milliseconds()), "session resolve timeout (in milliseconds)")

	fs.IntVar(&config.FrontPageSize, "n", config.FrontPageSize, "front page size")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Hour
	config.SessionResolveTimeout = time.Duration(*resolveTimeout) * time.Millisecond
}
