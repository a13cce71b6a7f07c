package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/types"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the tool. Each overrides the
// corresponding logpush.yml field.
const (
	EnvAPIToken    = "CLOUDFLARE_API_TOKEN"
	EnvEndpointURL = "LOGPUSH_ENDPOINT_URL"
	EnvAuthHeader  = "LOGPUSH_AUTH_HEADER"
	EnvDatasets    = "LOGPUSH_DATASET"
)

// DefaultDataset is used when no dataset selection is configured.
const DefaultDataset = "http_requests"

// ValidZoneDatasets are the zone-level datasets the Logpush API accepts.
var ValidZoneDatasets = []string{
	"http_requests",
	"firewall_events",
	"dns_logs",
	"nel_reports",
	"spectrum_events",
}

// Config is the fully resolved run configuration.
type Config struct {
	APIToken    string
	EndpointURL string
	AuthHeader  string
	Datasets    []string
}

// Load resolves the configuration from the optional logpush.yml at filename
// and the environment, environment winning. A missing file is not an error;
// a file that exists but does not parse is.
func Load(filename string) (*Config, error) {
	var fileCfg types.FileConfig

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML in %s: %w", filename, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	cfg := &Config{
		APIToken:    fileCfg.APIToken,
		EndpointURL: fileCfg.EndpointURL,
		AuthHeader:  fileCfg.AuthHeader,
		Datasets:    fileCfg.Datasets,
	}

	if v := os.Getenv(EnvAPIToken); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv(EnvEndpointURL); v != "" {
		cfg.EndpointURL = v
	}
	if v := os.Getenv(EnvAuthHeader); v != "" {
		cfg.AuthHeader = v
	}
	if v := os.Getenv(EnvDatasets); v != "" {
		cfg.Datasets = SplitDatasets(v)
	}

	if len(cfg.Datasets) == 0 {
		cfg.Datasets = []string{DefaultDataset}
	}

	return cfg, nil
}

// SplitDatasets parses a comma-separated dataset list, dropping empty
// entries and surrounding whitespace.
func SplitDatasets(raw string) []string {
	var datasets []string
	for _, d := range strings.Split(raw, ",") {
		if d = strings.TrimSpace(d); d != "" {
			datasets = append(datasets, d)
		}
	}
	return datasets
}

// Validate checks the resolved configuration. requireEndpoint is true for
// the create mode, which is the only one that needs a destination.
// Validation failures are fatal and happen before any network call.
func Validate(cfg *Config, requireEndpoint bool) error {
	if cfg.APIToken == "" {
		return fmt.Errorf("field 'api_token' is required (set %s)", EnvAPIToken)
	}

	if requireEndpoint && cfg.EndpointURL == "" {
		return fmt.Errorf("field 'endpoint_url' is required (set %s)", EnvEndpointURL)
	}

	var invalid []string
	for _, d := range cfg.Datasets {
		if !slices.Contains(ValidZoneDatasets, d) {
			invalid = append(invalid, d)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid dataset(s) %s: valid options are %s",
			strings.Join(invalid, ", "), strings.Join(ValidZoneDatasets, ", "))
	}

	return nil
}
