package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	defer L.SetLevel(L.GetLevel())

	require.NoError(t, SetLevel("debug"))
	require.Equal(t, logrus.DebugLevel, L.GetLevel())

	require.NoError(t, SetLevel("ERROR"))
	require.Equal(t, logrus.ErrorLevel, L.GetLevel())

	err := SetLevel("loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "loud")
	require.Equal(t, logrus.ErrorLevel, L.GetLevel())
}

func TestLoggerWritesFields(t *testing.T) {
	out := L.Out
	level := L.GetLevel()
	defer func() {
		L.SetOutput(out)
		L.SetLevel(level)
	}()

	var buf bytes.Buffer
	L.SetOutput(&buf)
	L.SetLevel(logrus.InfoLevel)

	L.WithField("country", "USA").Info("filtered rows")
	L.Debug("hidden")

	require.Contains(t, buf.String(), "filtered rows")
	require.Contains(t, buf.String(), "country=USA")
	require.NotContains(t, buf.String(), "hidden")
}
