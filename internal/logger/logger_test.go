package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	prevOut, prevFormatter := std.Out, std.Formatter
	logrus.SetOutput(buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetFormatter(prevFormatter)
	})
	return buf
}

func TestWithContextFields(t *testing.T) {
	buf := captureOutput(t)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithUser(ctx, "alice")

	WithContext(ctx).WithField("component_type", "engine").WithError(errors.New("boom")).Info("assign failed")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "alice", line["user"])
	assert.Equal(t, "engine", line["component_type"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "assign failed", line["msg"])
}

func TestWithContextUnknownUser(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).WithFields(map[string]interface{}{"a": 1}).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "unknown", line["user"])
	assert.NotContains(t, line, "request_id")
	assert.Equal(t, "", RequestID(context.Background()))
}
