package logging

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSortsFields(t *testing.T) {
	line := Format(InfoLevel, nil, "started", Fields{"widget": "metronome"}, Fields{"bpm": 120})
	assert.Equal(t, "[INFO] started bpm=120 widget=metronome", line)

	line = Format(ErrorLevel, errors.New("boom"), "failed", nil)
	assert.Equal(t, `[ERROR] failed error="boom"`, line)
}

func TestDefaultLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	level := InfoLevel
	l := &DefaultLogger{
		stdout: log.New(&out, "", 0),
		stderr: log.New(&errOut, "", 0),
		level:  &level,
		fields: Fields{},
	}

	child := l.WithFields(Fields{"id": "a"})
	child.Debug("hidden")
	child.Info("shown")
	child.Warn("careful")

	assert.Equal(t, "[INFO] shown id=a\n", out.String())
	assert.Equal(t, "[WARN] careful id=a\n", errOut.String())

	l.SetLevel(DebugLevel)
	child.Debug("now visible")
	assert.Contains(t, out.String(), "[DEBUG] now visible id=a")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestNilGlobalLoggerBecomesNoOp(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	assert.IsType(t, NoOpLogger{}, GetGlobalLogger())
}
