package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIToken, EnvEndpointURL, EnvAuthHeader, EnvDatasets} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaultsWithoutFileOrEnv(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "logpush.yml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.APIToken)
	assert.Empty(t, cfg.EndpointURL)
	assert.Equal(t, []string{DefaultDataset}, cfg.Datasets)
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "logpush.yml")
	yaml := `api_token: file-token
endpoint_url: https://file.example.net/logs
datasets:
  - dns_logs
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	t.Setenv(EnvAPIToken, "env-token")
	t.Setenv(EnvDatasets, "http_requests, firewall_events")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.APIToken, "environment must win over the file")
	assert.Equal(t, "https://file.example.net/logs", cfg.EndpointURL)
	assert.Equal(t, []string{"http_requests", "firewall_events"}, cfg.Datasets)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "logpush.yml")
	require.NoError(t, os.WriteFile(path, []byte("datasets: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSplitDatasets(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "single dataset",
			raw:  "http_requests",
			want: []string{"http_requests"},
		},
		{
			name: "multiple with whitespace",
			raw:  " http_requests , firewall_events ",
			want: []string{"http_requests", "firewall_events"},
		},
		{
			name: "empty entries dropped",
			raw:  "http_requests,,dns_logs,",
			want: []string{"http_requests", "dns_logs"},
		},
		{
			name: "empty string",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitDatasets(tt.raw))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			APIToken:    "token",
			EndpointURL: "https://logs.example.net/ingest",
			Datasets:    []string{"http_requests"},
		}
	}

	tests := []struct {
		name            string
		modify          func(*Config)
		requireEndpoint bool
		shouldError     bool
		errContains     string
	}{
		{
			name:            "valid create config",
			modify:          func(c *Config) {},
			requireEndpoint: true,
			shouldError:     false,
		},
		{
			name:            "missing token",
			modify:          func(c *Config) { c.APIToken = "" },
			requireEndpoint: false,
			shouldError:     true,
			errContains:     "api_token",
		},
		{
			name:            "missing endpoint for create",
			modify:          func(c *Config) { c.EndpointURL = "" },
			requireEndpoint: true,
			shouldError:     true,
			errContains:     "endpoint_url",
		},
		{
			name:            "missing endpoint ok for disable",
			modify:          func(c *Config) { c.EndpointURL = "" },
			requireEndpoint: false,
			shouldError:     false,
		},
		{
			name:            "unknown dataset",
			modify:          func(c *Config) { c.Datasets = []string{"http_requests", "pagerules"} },
			requireEndpoint: true,
			shouldError:     true,
			errContains:     "pagerules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)

			err := Validate(cfg, tt.requireEndpoint)
			if tt.shouldError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
