package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	l, buf := newTestLogger()
	ctx := context.Background()

	l.Debug(ctx, "dbg", "k", "v")
	l.Info(ctx, "inf")
	l.Warn(ctx, "wrn")
	l.Error(ctx, "err")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "k=v")
}

func TestNewTextLogger_WritesTextLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)

	l.Info(context.Background(), "starting", "db", "bookstall.db")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=starting")
	assert.Contains(t, out, "db=bookstall.db")
}

func TestSlogLogger_WithAddsAttributes(t *testing.T) {
	l, buf := newTestLogger()
	child := l.With("component", "session")
	require.NotNil(t, child)

	child.Info(context.Background(), "hello")

	lines := strings.TrimSpace(buf.String())
	assert.Contains(t, lines, "component=session")
	assert.Contains(t, lines, "msg=hello")
}
