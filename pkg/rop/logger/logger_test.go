package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, line []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(line, &m))
	return m
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.DebugLevel).
		WithComponent("compose").
		WithFields(Fields(FieldInvocationID, "abc")).
		WithError(errors.New("bad"))

	l.Debug("step failed", Fields(FieldStep, 2, FieldFunction, "inc"))

	entry := decode(t, buf.Bytes())
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "step failed", entry["message"])
	assert.Equal(t, "compose", entry[FieldComponent])
	assert.Equal(t, "abc", entry[FieldInvocationID])
	assert.Equal(t, "bad", entry[FieldError])
	assert.EqualValues(t, 2, entry[FieldStep])
	assert.Equal(t, "inc", entry[FieldFunction])
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.WarnLevel)

	l.Debug("hidden")
	l.Info("hidden")
	assert.Empty(t, buf.String())
	assert.False(t, l.Enabled(zerolog.DebugLevel))
	assert.True(t, l.Enabled(zerolog.ErrorLevel))

	l.Warn("shown")
	l.Error("shown")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestLogger_Nop(t *testing.T) {
	l := NewNop()

	assert.False(t, l.Enabled(zerolog.ErrorLevel))
	l.Error("discarded")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowless.log")
	l := New(&Config{Level: "debug", Format: "json", Output: path}, "test")

	l.Debug("written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decode(t, bytes.TrimSpace(data))
	assert.Equal(t, "test", entry[FieldComponent])
	assert.Equal(t, "written", entry["message"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := New(&Config{Level: "loud", Output: filepath.Join(t.TempDir(), "x.log")}, "")

	assert.False(t, l.Enabled(zerolog.DebugLevel))
	assert.True(t, l.Enabled(zerolog.InfoLevel))
}

func TestConfig(t *testing.T) {
	var c Config
	c.ApplyDefaults()

	assert.Equal(t, Config{Level: "info", Format: "console", Output: "stderr"}, c)
	assert.NoError(t, c.Validate())

	c.Level = "loud"
	assert.Error(t, c.Validate())

	c.Level = "debug"
	c.Format = "xml"
	assert.Error(t, c.Validate())
}

func TestFields_IgnoresOddAndNonStringKeys(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"a": 1}, Fields("a", 1, 2, "b", "dangling"))
}

func TestGlobalLogger(t *testing.T) {
	prev := GetGlobalLogger()
	t.Cleanup(func() { SetGlobalLogger(prev) })

	var buf bytes.Buffer
	SetGlobalLogger(NewWriter(&buf, zerolog.InfoLevel))

	WithComponent("curry").Info("hello")

	entry := decode(t, buf.Bytes())
	assert.Equal(t, "curry", entry[FieldComponent])
}
