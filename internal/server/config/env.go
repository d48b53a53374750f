package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config values from environment variables. Duration
// values use Go duration syntax ("24h", "500ms"). Unset or malformed
// variables leave the current value in place.
//
// Recognized variables:
//
//	ADDRESS                    HTTP bind address
//	DATABASE_DSN               PostgreSQL DSN
//	SESSION_VALIDITY_DURATION  session token lifetime
//	SESSION_RESOLVE_TIMEOUT    session lookup timeout
//	FRONT_PAGE_SIZE            ranked entries per page
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SESSION_VALIDITY_DURATION"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("SESSION_RESOLVE_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionResolveTimeout = d
		}
	}
	if v, ok := os.LookupEnv("FRONT_PAGE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.FrontPageSize = n
		}
	}
}
