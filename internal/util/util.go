// Package util formats sizes and durations for log attributes.
package util

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders n in binary units with one decimal, e.g. "2.5 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value, unit := float64(n), ""
	for _, unit = range byteUnits {
		value /= 1024
		if value < 1024 {
			break
		}
	}

	return strconv.FormatFloat(value, 'f', 1, 64) + " " + unit
}

// FormatDuration rounds to the second, and to the minute once past an hour ("1h30m").
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Hour {
		return d.String()
	}

	return strings.TrimSuffix(d.Truncate(time.Minute).String(), "0s")
}

// Size is a log attribute holding a byte count in human units.
func Size(key string, n int) slog.Attr {
	return slog.String(key, FormatBytes(int64(n)))
}

// Elapsed is a log attribute holding a rounded duration.
func Elapsed(key string, d time.Duration) slog.Attr {
	return slog.String(key, FormatDuration(d))
}
