package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		_ = Configure("info", "json")
		SetOutput(os.Stdout)
	})

	require.NoError(t, Configure("debug", "text"))
	require.NoError(t, Configure("warn", "JSON"))
	assert.Error(t, Configure("loud", "json"))
	assert.Error(t, Configure("info", "xml"))
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		_ = Configure("info", "json")
		SetOutput(os.Stdout)
	})
	require.NoError(t, Configure("info", "json"))

	Debug("hidden")
	assert.Empty(t, buf.String())

	WithFields(Fields{"location_id": 1}).Info("fetched")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fetched", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 1, entry["location_id"])

	buf.Reset()
	Error(errors.New("boom"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "error", entry["level"])
}
