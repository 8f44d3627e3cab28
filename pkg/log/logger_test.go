package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestInitJSONComponents(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.InfoLevel, Type: JSONLogger, Out: &buf})
	t.Cleanup(func() { Init(Options{LogLevel: zerolog.Disabled, Out: &bytes.Buffer{}}) })

	Store.Debug().Msg("dropped")
	Store.Info().Str("key", "01").Msg("stored")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "store", line["component"])
	assert.Equal(t, "stored", line["message"])
	assert.Equal(t, "01", line["key"])
}

func TestInitConsole(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.DebugLevel, Type: ConsoleLogger, Out: &buf})
	t.Cleanup(func() { Init(Options{LogLevel: zerolog.Disabled, Out: &bytes.Buffer{}}) })

	Codec.Debug().Msg("hello")
	assert.Contains(t, buf.String(), `message: "hello" |`)
	assert.Contains(t, buf.String(), "| DEBUG |")
}
