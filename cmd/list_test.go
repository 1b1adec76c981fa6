package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/azztche/ate-dme-obst/core/objects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleInfos = []objects.ObjectInfo{
	{Key: "photos/a.jpg", Size: 2048, LastModified: "2024-05-01 10:00:00+00:00", ETag: "abc"},
	{Key: "photos/b.jpg", Size: 10, LastModified: "2024-05-02 11:30:00+00:00", ETag: "def"},
}

func TestWriteObjectsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeObjectsTable(&buf, sampleInfos))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.Contains(t, lines[1], "photos/a.jpg")
	assert.Contains(t, lines[1], "2.0 KiB")
	assert.Contains(t, lines[2], "10 B")
	assert.Contains(t, lines[2], "2024-05-02 11:30:00+00:00")
}

func TestWriteObjectsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeObjectsJSON(&buf, sampleInfos))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "photos/a.jpg", out[0]["key"])
	assert.EqualValues(t, 2048, out[0]["size"])
	assert.Equal(t, "abc", out[0]["etag"])
	assert.Equal(t, "2024-05-01 10:00:00+00:00", out[0]["last_modified"])
}

func TestWriteObjectsJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeObjectsJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"upload", "list", "url", "delete", "exists"} {
		c, _, err := RootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}
