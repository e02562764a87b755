package auth

import (
	"os"
	"strings"
	"sync/atomic"
	"time"
)

var authLogEnabled atomic.Bool

// SetAuthLogging turns the append-only auth log on or off.
func SetAuthLogging(enabled bool) {
	authLogEnabled.Store(enabled)
}

// LogAuthAttempt appends an authentication event record to log/auth.log.
// Fields: timestamp (RFC3339) | level | event | status | identifier? | message?
// level: debug|info|warning|error
// event: Token|SignOut|...
// status: Success|Fail
func LogAuthAttempt(level string, event string, status string, identifier string, message string) {
	if !authLogEnabled.Load() {
		return
	}

	if err := os.MkdirAll("log", 0o750); err != nil {
		return
	}
	f, err := os.OpenFile("log/auth.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	ts := time.Now().UTC().Format(time.RFC3339)
	parts := []string{ts, level, event, status}
	if identifier != "" {
		parts = append(parts, identifier)
	}
	if message != "" {
		parts = append(parts, message)
	}
	line := strings.Join(parts, " | ") + "\n"

	_, _ = f.WriteString(line)
}
