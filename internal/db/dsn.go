package db

import (
	"regexp"
	"strings"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// NormalizeDSN accepts either a URL style DSN (postgres://...) or a lib/pq
// key=value list, trims quotes and whitespace, and defaults sslmode=disable
// for key=value form when absent.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	if !kvPairRegex.MatchString(s) {
		return s
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}
