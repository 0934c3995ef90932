package config

import (
	"os"
	"strings"
)

type Config struct {
	// Addr is the address the HTTP server binds to.
	Addr string

	// AllowedOrigins restricts websocket upgrades to the listed Origin
	// headers. Empty means any origin is accepted.
	AllowedOrigins []string

	// GinMode selects the gin runtime mode: debug, release or test.
	GinMode string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func Load() *Config {
	return &Config{
		Addr:           getenv("CHESS_ADDR", ":5000"),
		AllowedOrigins: getenvList("CHESS_ORIGIN_ALLOWLIST"),
		GinMode:        getenv("GIN_MODE", "debug"),
	}
}
