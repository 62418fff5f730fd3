package bitvec

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := New(WithLogger(logger))
	v.Set(2*WordBits, On)

	logOutput := buf.String()
	require.Contains(t, logOutput, "bit vector grown")
	require.Contains(t, logOutput, `"old_blocks":0`)
	require.Contains(t, logOutput, `"blocks":3`)
	require.Contains(t, logOutput, `"index":`)

	// No growth, no log.
	buf.Reset()
	v.Set(0, On)
	v.Flip(1)
	assert.Empty(t, buf.String())
}

func TestStructuredLogging_InfoLevelSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	v := New(WithLogger(logger))
	v.Set(10*WordBits, On)
	assert.Empty(t, buf.String())
}

func TestLogger_WithBlocks(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil)).WithBlocks(5)

	logger.Info("sized")
	require.Contains(t, buf.String(), `"blocks":5`)
}

func TestWithLogger_EmptyLogger(t *testing.T) {
	v := New(WithLogger(&Logger{}))
	assert.Nil(t, v.logger)

	assert.NotPanics(t, func() { v.Set(1, On) })
	assert.Equal(t, uint(WordBits), v.Len())

	// Called directly, an empty Logger is a no-op as well.
	assert.NotPanics(t, func() {
		(&Logger{}).LogGrow(context.Background(), 0, 0, 1)
	})
}

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewTextLogger(slog.LevelDebug))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))

	noop := NoopLogger()
	v := New(WithLogger(noop))
	v.Flip(WordBits)
	assert.Equal(t, uint(2*WordBits), v.Len())
}

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	v := WithBlocks(2, WithMetricsCollector(mc))
	assert.Equal(t, BasicMetricsStats{}, mc.GetStats(), "preallocation is not growth")

	v.Set(0, On)
	assert.Equal(t, int64(0), mc.GetStats().GrowCount)

	v.Set(5*WordBits, On)
	v.Flip(5*WordBits + 1)
	v.Reserve(8 * WordBits)
	v.Reserve(WordBits)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.GrowCount)
	assert.Equal(t, int64(6), stats.BlocksAllocated)
	assert.Equal(t, int64(8), stats.MaxBlocks)

	// Shared across vectors.
	other := New(WithMetricsCollector(mc))
	other.Set(0, On)
	stats = mc.GetStats()
	assert.Equal(t, int64(3), stats.GrowCount)
	assert.Equal(t, int64(7), stats.BlocksAllocated)
	assert.Equal(t, int64(8), stats.MaxBlocks)
}

func TestNilOptions(t *testing.T) {
	v := New(WithLogger(nil), WithMetricsCollector(nil))
	v.Set(3*WordBits, On)
	assert.Equal(t, uint(4*WordBits), v.Len())

	v = New(WithMetricsCollector(NoopMetricsCollector{}))
	v.Flip(0)
	got, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, On, got)
}
