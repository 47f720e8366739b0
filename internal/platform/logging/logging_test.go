package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ogurasousui/learning-dashboard/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNew_LevelAndFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "warn", Format: "json"})
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "value", entry["key"])

	buf.Reset()
	New(&buf, config.LogConfig{Level: "info", Format: "text"}).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestUnaryServerInterceptor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	interceptor := UnaryServerInterceptor(New(&buf, config.LogConfig{Level: "info", Format: "json"}))
	info := &grpc.UnaryServerInfo{FullMethod: "/learning.v1.AuthService/Login"}

	resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Contains(t, buf.String(), `"code":"OK"`)
	assert.Contains(t, buf.String(), "AuthService/Login")

	buf.Reset()
	_, err = interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	})
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"code":"Unauthenticated"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}
