package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "json stdout", config: Config{Level: "debug", Format: "json", Output: "stdout"}},
		{name: "text stderr", config: Config{Level: "info", Format: "text", Output: "stderr"}},
		{name: "file", config: Config{Level: "warn", Format: "json", Output: filepath.Join(t.TempDir(), "logs", "cronbuild.log")}},
		{name: "invalid level", config: Config{Level: "verbose", Format: "json", Output: "stdout"}, wantErr: true},
		{name: "invalid format", config: Config{Level: "debug", Format: "xml", Output: "stdout"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestFieldsAreWritten(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "json", "debug")
	require.NoError(t, err)

	log.With(Field{Key: "session", Value: "abc"}).Info("parsed", Field{Key: "cron", Value: "0 0 0 * * *"})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "parsed", record["msg"])
	assert.Equal(t, "abc", record["session"])
	assert.Equal(t, "0 0 0 * * *", record["cron"])
}

func TestErrorAttachesError(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "text", "info")
	require.NoError(t, err)

	log.Error("validation failed", errors.New("no months"))
	assert.Contains(t, buf.String(), `error="no months"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "text", "warn")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	assert.Equal(t, 1, strings.Count(buf.String(), "msg="))
	assert.Contains(t, buf.String(), "shown")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	log.Error("nothing", errors.New("x"))
	assert.NotNil(t, log.StdLogger())
}
