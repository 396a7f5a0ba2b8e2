package logging_test

import (
	"testing"

	"github.com/2beens/fitforge/internal/logging"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logging.GetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, logging.GetLevel("DEBUG"))
	assert.Equal(t, logrus.TraceLevel, logging.GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, logging.GetLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, logging.GetLevel("error"))
	assert.Equal(t, logrus.InfoLevel, logging.GetLevel("info"))
	assert.Equal(t, logrus.InfoLevel, logging.GetLevel("whatever"))
}

func TestSentryHook(t *testing.T) {
	// no DSN, events are dropped by the client
	require.NoError(t, sentry.Init(sentry.ClientOptions{}))

	hook := logging.NewSentryHook([]logrus.Level{logrus.ErrorLevel})
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	logger := logrus.New()
	entry := logrus.NewEntry(logger).WithField("draft", "d-1")
	entry.Level = logrus.ErrorLevel
	entry.Message = "finish draft failed"
	assert.NoError(t, hook.Fire(entry))
}
