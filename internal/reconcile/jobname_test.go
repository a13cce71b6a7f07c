package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobNameIsDeterministic(t *testing.T) {
	first := JobName("http_requests", "example.com")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, JobName("http_requests", "example.com"))
	}
}

func TestJobNameFormat(t *testing.T) {
	tests := []struct {
		dataset string
		zone    string
		want    string
	}{
		{"http_requests", "example.com", "logpush_http_requests_example.com"},
		{"firewall_events", "example.com", "logpush_firewall_events_example.com"},
		{"dns_logs", "sub.domain.org", "logpush_dns_logs_sub.domain.org"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JobName(tt.dataset, tt.zone))
	}
}
