package cfapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// LogpushJob is a remote configuration object that streams a log dataset to
// an HTTP destination.
type LogpushJob struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Dataset         string `json:"dataset"`
	Enabled         bool   `json:"enabled"`
	DestinationConf string `json:"destination_conf"`
}

// OutputOptions controls the format of pushed log lines.
type OutputOptions struct {
	TimestampFormat string `json:"timestamp_format"`
}

// NewLogpushJob is the creation payload for a zone-scoped Logpush job.
type NewLogpushJob struct {
	Name            string         `json:"name"`
	DestinationConf string         `json:"destination_conf"`
	Dataset         string         `json:"dataset"`
	Enabled         bool           `json:"enabled"`
	OutputOptions   *OutputOptions `json:"output_options,omitempty"`
}

// DestinationConf builds the destination_conf string for an HTTP endpoint.
// The optional auth header rides along as a header_Authorization query
// parameter, which is how the Logpush API configures destination headers.
func DestinationConf(endpointURL, authHeader string) string {
	if authHeader == "" {
		return endpointURL
	}
	separator := "?"
	if strings.Contains(endpointURL, "?") {
		separator = "&"
	}
	return endpointURL + separator + "header_Authorization=" + authHeader
}

// ListLogpushJobs fetches every Logpush job configured on a zone.
func (c *Client) ListLogpushJobs(ctx context.Context, zoneID string) ([]LogpushJob, error) {
	var jobs []LogpushJob
	path := fmt.Sprintf("/zones/%s/logpush/jobs", zoneID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateLogpushJob creates a new Logpush job on a zone.
func (c *Client) CreateLogpushJob(ctx context.Context, zoneID string, job NewLogpushJob) (*LogpushJob, error) {
	var created LogpushJob
	path := fmt.Sprintf("/zones/%s/logpush/jobs", zoneID)
	if _, err := c.do(ctx, http.MethodPost, path, nil, job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DisableLogpushJob updates a job to enabled=false. The job itself is kept.
func (c *Client) DisableLogpushJob(ctx context.Context, zoneID string, jobID int) error {
	path := fmt.Sprintf("/zones/%s/logpush/jobs/%d", zoneID, jobID)
	payload := struct {
		Enabled bool `json:"enabled"`
	}{Enabled: false}
	_, err := c.do(ctx, http.MethodPut, path, nil, payload, nil)
	return err
}

// DeleteLogpushJob permanently deletes a job from a zone.
func (c *Client) DeleteLogpushJob(ctx context.Context, zoneID string, jobID int) error {
	path := fmt.Sprintf("/zones/%s/logpush/jobs/%d", zoneID, jobID)
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}
