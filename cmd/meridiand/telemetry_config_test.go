package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePort(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"valid", "36660", 36660},
		{"whitespace", " 8080 ", 8080},
		{"empty", "", 0},
		{"zero", "0", 0},
		{"negative", "-1", 0},
		{"too large", "70000", 0},
		{"garbage", "metrics", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, parsePort(tc.input))
		})
	}
}

func TestSanitizeHostPort(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"wildcard ipv4", "0.0.0.0:26657", "localhost:26657"},
		{"wildcard ipv6", "[::]:26657", "localhost:26657"},
		{"loopback", "127.0.0.1:26657", "127.0.0.1:26657"},
		{"empty", "", ""},
		{"no port", "localhost", "localhost"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, sanitizeHostPort(tc.input))
		})
	}
}

func TestResolveNodeHomeFlagParsing(t *testing.T) {
	t.Setenv("MERIDIAN_HOME", "")

	require.Equal(t, "/tmp/node1", resolveNodeHome([]string{"start", "--home=/tmp/node1"}))
	require.Equal(t, "/tmp/node2", resolveNodeHome([]string{"start", "--home", "/tmp/node2"}))

	t.Setenv("MERIDIAN_HOME", "/tmp/env-home")
	require.Equal(t, "/tmp/env-home", resolveNodeHome([]string{"start", "--home", "/tmp/node2"}))
}

func TestLoadTelemetryPortsFromConfig(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, "config")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	appToml := `[telemetry]
metrics-port = 46660
health-port = 46661
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "app.toml"), []byte(appToml), 0o644))

	t.Setenv("MERIDIAN_TELEMETRY_METRICS_PORT", "")
	t.Setenv("MERIDIAN_TELEMETRY_HEALTH_PORT", "")

	metricsPort, healthPort := loadTelemetryPorts(home)
	require.Equal(t, 46660, metricsPort)
	require.Equal(t, 46661, healthPort)

	// Environment overrides the config file
	t.Setenv("MERIDIAN_TELEMETRY_METRICS_PORT", "56660")
	metricsPort, _ = loadTelemetryPorts(home)
	require.Equal(t, 56660, metricsPort)
}

func TestLoadTelemetryPortsDefaults(t *testing.T) {
	t.Setenv("MERIDIAN_TELEMETRY_METRICS_PORT", "")
	t.Setenv("MERIDIAN_TELEMETRY_HEALTH_PORT", "")

	metricsPort, healthPort := loadTelemetryPorts(t.TempDir())
	require.Equal(t, defaultMetricsPort, metricsPort)
	require.Equal(t, defaultHealthPort, healthPort)
}

func TestLoadTracingConfig(t *testing.T) {
	t.Setenv("MERIDIAN_OTLP_ENDPOINT", "")
	t.Setenv("MERIDIAN_TRACE_SAMPLE_RATE", "")

	// No endpoint configured keeps tracing disabled.
	cfg := loadTracingConfig(t.TempDir())
	require.False(t, cfg.Enabled)
	require.Equal(t, defaultTraceSampleRate, cfg.SampleRate)

	home := t.TempDir()
	configDir := filepath.Join(home, "config")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	appToml := `[telemetry]
otlp-endpoint = "http://collector:4318"
trace-sample-rate = 0.5
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "app.toml"), []byte(appToml), 0o644))

	cfg = loadTracingConfig(home)
	require.True(t, cfg.Enabled)
	require.Equal(t, "http://collector:4318", cfg.OTLPEndpoint)
	require.Equal(t, 0.5, cfg.SampleRate)

	t.Setenv("MERIDIAN_OTLP_ENDPOINT", "http://other:4318")
	t.Setenv("MERIDIAN_TRACE_SAMPLE_RATE", "0.25")
	cfg = loadTracingConfig(home)
	require.Equal(t, "http://other:4318", cfg.OTLPEndpoint)
	require.Equal(t, 0.25, cfg.SampleRate)
}

func TestResolveRPCAddress(t *testing.T) {
	t.Setenv("MERIDIAN_RPC_ENDPOINT", "")

	require.Equal(t, defaultRPCAddress, resolveRPCAddress(t.TempDir()))

	home := t.TempDir()
	configDir := filepath.Join(home, "config")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	configToml := `[rpc]
laddr = "tcp://0.0.0.0:26657"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(configToml), 0o644))

	require.Equal(t, "http://localhost:26657", resolveRPCAddress(home))

	t.Setenv("MERIDIAN_RPC_ENDPOINT", "http://sentry:26657")
	require.Equal(t, "http://sentry:26657", resolveRPCAddress(home))
}
