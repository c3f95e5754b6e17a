package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()

	require.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Info().Str("key", "value").Msg("discarded")
		log.Error().Msg("also discarded")
	})
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "foyer-client").Logger()}

	child := parent.GetChildLogger()
	require.NotNil(t, child)

	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "foyer-client", entry["role"])
	assert.Equal(t, "from child", entry["message"])
}

func TestGetChildLogger_ExtraFieldsDoNotLeakToParent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	child := &Logger{parent.With().Str("screen", "login").Logger()}
	child.Info().Msg("child entry")

	buf.Reset()
	parent.Info().Msg("parent entry")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "screen")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("role", "foyer-client").Logger()
	ctx := attached.WithContext(context.Background())

	log := FromContext(ctx)
	require.NotNil(t, log)

	log.Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "foyer-client", entry["role"])
}

func TestFromContext_WithoutAttachedLogger(t *testing.T) {
	log := FromContext(context.Background())

	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Debug().Msg("global fallback") })
}
