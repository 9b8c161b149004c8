package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) Entry {
	t.Helper()
	var e Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	return e
}

func TestLoggerInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("editor").WithOutput(&buf)

	log.Info("class_added", map[string]interface{}{"class": "Account"})

	e := decode(t, &buf)
	assert.Equal(t, LevelInfo, e.Level)
	assert.Equal(t, "editor", e.Component)
	assert.Equal(t, "class_added", e.Event)
	assert.Equal(t, "Account", e.Extra["class"])
	assert.Empty(t, e.Error)
}

func TestLoggerError(t *testing.T) {
	var buf bytes.Buffer
	log := New("storage").WithOutput(&buf)

	log.Error("save_failed", map[string]interface{}{"path": "/tmp/d.json"}, errors.New("disk full"))

	e := decode(t, &buf)
	assert.Equal(t, LevelError, e.Level)
	assert.Equal(t, "disk full", e.Error)
	assert.Equal(t, "/tmp/d.json", e.Extra["path"])
}

func TestLoggerWithDiagram(t *testing.T) {
	var buf bytes.Buffer
	log := New("editor").WithDiagram("billing").WithOutput(&buf)

	log.Info("renamed", nil)

	e := decode(t, &buf)
	assert.Equal(t, "billing", e.Diagram)
}

func TestTimedEvent(t *testing.T) {
	var buf bytes.Buffer
	log := New("storage").WithOutput(&buf)

	start := time.Now().Add(-25 * time.Millisecond)
	log.TimedEvent("load", start, map[string]interface{}{"classes": 3})

	e := decode(t, &buf)
	assert.Equal(t, "load", e.Event)
	assert.GreaterOrEqual(t, e.Duration, int64(25))
}
