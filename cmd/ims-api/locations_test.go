package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/ims-api/internal/locations"
)

func TestLocationsCommand(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"locations"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, locations.Len()+1)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "ירושלים")
}

func TestLocationsCommandJSON(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"locations", "--json"})

	require.NoError(t, root.Execute())

	var got []locations.Location
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, locations.Sorted(), got)
}
