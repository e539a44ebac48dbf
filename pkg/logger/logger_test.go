package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARNING "))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}

func TestWithContext_FallsBackToProcessLogger(t *testing.T) {
	assert.Same(t, Get(), WithContext(context.Background()))

	l := WithRequestID("req-1")
	ctx := NewContext(context.Background(), &l)
	assert.Same(t, &l, WithContext(ctx))
}
