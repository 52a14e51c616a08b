package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey string

func TestSetupLevels(t *testing.T) {
	defer Setup("info", nil)

	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
	}
	for level, want := range cases {
		Setup(level, &bytes.Buffer{})
		assert.Equal(t, want, logrus.GetLevel(), level)
	}
}

func TestWithContextAddsUser(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", nil)

	//nolint:staticcheck // plain string keys mirror gin.Context keys
	ctx := context.WithValue(context.Background(), "user_id", "42")
	WithContext(ctx).WithField("team", 3).Info("team created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "42", entry["user"])
	assert.Equal(t, float64(3), entry["team"])
	assert.Equal(t, "team created", entry["msg"])
}

func TestWithContextDefaultsToSystem(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", nil)

	ctx := context.WithValue(context.Background(), ctxKey("other"), "x")
	WithContext(ctx).Info("tick")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "system", entry["user"])
}
