package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, "warn", "json")

	logger.Info().Msg("dropped")
	logger.Warn().Str("plz", "8001").Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "8001", entry["plz"])
	assert.Contains(t, entry, "time")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, "loud", "json")

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestSetup_ContextDefault(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "info", "json")

	zerolog.Ctx(context.Background()).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}
