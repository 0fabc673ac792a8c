// Package config reads application settings from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"hangman/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "CORE_API_", "SERVICE_PGSQL_")
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully-qualified env var name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.Key(k))) }

// mayParse returns def when the key is unset and logs a warning when parse fails
func mayParse[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing, empty or invalid
func (c Conf) MayInt(key string, def int) int {
	return mayParse(c, key, def, "int", strconv.Atoi)
}

// MayBool returns the value or def if missing, empty or invalid
func (c Conf) MayBool(key string, def bool) bool {
	return mayParse(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns the value or def if missing, empty or invalid (e.g. 250ms, 2s)
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return mayParse(c, key, def, "duration", time.ParseDuration)
}

// MayPort returns a listen addr like ":4000", def when missing or outside 1..65535
func (c Conf) MayPort(key, def string) string {
	return mayParse(c, key, def, "port", func(s string) (string, error) {
		p, err := strconv.Atoi(strings.TrimPrefix(s, ":"))
		if err != nil {
			return "", err
		}
		if p < 1 || p > 65535 {
			return "", strconv.ErrRange
		}
		return ":" + strconv.Itoa(p), nil
	})
}

// MayCSV splits a comma-separated value, dropping blanks; def if nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
