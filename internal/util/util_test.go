package util

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0 B"},
		{n: 1023, want: "1023 B"},
		{n: 1024, want: "1.0 KB"},
		{n: 1536, want: "1.5 KB"},
		{n: 2621440, want: "2.5 MB"},
		{n: 5 * 1024 * 1024 * 1024, want: "5.0 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.n), "FormatBytes(%d)", tt.n)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0s"},
		{d: time.Second, want: "1s"},
		{d: 1500 * time.Millisecond, want: "2s"},
		{d: 59*time.Second + 500*time.Millisecond, want: "1m0s"},
		{d: 2*time.Minute + 30*time.Second, want: "2m30s"},
		{d: time.Hour + 30*time.Minute + 20*time.Second, want: "1h30m"},
		{d: 3 * time.Hour, want: "3h0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d), "FormatDuration(%s)", tt.d)
	}
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("size", "640 B"), Size("size", 640))
	assert.Equal(t, slog.String("backoff", "4s"), Elapsed("backoff", 4*time.Second))
}
