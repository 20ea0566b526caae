package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelInfo)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("failed %s", "x")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[INFO] shown 2")
	require.Contains(t, out, "[ERROR] failed x")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"":      LevelInfo,
		"info":  LevelInfo,
		"DEBUG": LevelDebug,
		"error": LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Errorf("nothing %d", 1)
}
