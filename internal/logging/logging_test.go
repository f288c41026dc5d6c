package logging

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	initWriter(&buf, slog.LevelInfo)
	Debug("hidden")
	Info("shown", "k", "v")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "k=v")

	buf.Reset()
	initWriter(&buf, slog.LevelDebug)
	Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	Init(false)
}
