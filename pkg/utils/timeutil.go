// Package utils provides small shared helpers: time-window arithmetic
// for provider queries and filename sanitization for artifacts.
package utils

import (
	"strings"
	"time"
)

// Window is a closed time interval [From, To] in UTC.
type Window struct {
	From time.Time
	To   time.Time
}

// WindowDaysBack returns the window covering the last daysBack days up
// to now, inclusive, in UTC. daysBack of 0 yields a zero-length window
// anchored at now.
func WindowDaysBack(now time.Time, daysBack int) Window {
	if daysBack < 0 {
		daysBack = 0
	}
	to := now.UTC()
	return Window{
		From: to.AddDate(0, 0, -daysBack),
		To:   to,
	}
}

// Contains reports whether t falls inside the window, inclusive.
func (w Window) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(w.From) && !t.After(w.To)
}

// FormatISO renders a time in the ISO-8601 form providers expect,
// e.g. "2024-11-02T15:04:05Z".
func FormatISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// SanitizeFilename makes a product/query string safe for use as a file
// name prefix. Path separators and whitespace become underscores.
func SanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", " ", "_",
		":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_",
	)
	return replacer.Replace(s)
}
