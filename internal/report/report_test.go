package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/models"
)

func record(zone string, dataset string, outcome models.Outcome) models.ActionRecord {
	rec := models.ActionRecord{
		ZoneID:   "id-" + zone,
		ZoneName: zone,
		Dataset:  dataset,
		Outcome:  outcome,
	}
	if outcome == models.OutcomeFailed {
		rec.Reason = "simulated failure"
	}
	return rec
}

func TestSummarizeCounts(t *testing.T) {
	agg := NewAggregator()
	agg.Add(record("one.com", "http_requests", models.OutcomeCreated))
	agg.Add(record("one.com", "firewall_events", models.OutcomeSkippedDuplicate))
	agg.Add(record("two.com", "http_requests", models.OutcomeCreated))
	agg.Add(record("three.com", "http_requests", models.OutcomeFailed))

	summary := agg.Summarize(uuid.New(), time.Now(), "create", []string{"http_requests", "firewall_events"})

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.SkippedDuplicate)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 3, summary.ZonesVisited)
	assert.Equal(t, "Failed", summary.OverallStatus)

	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "three.com", summary.Failures[0].Zone)
	assert.Equal(t, "http_requests", summary.Failures[0].Dataset)
	assert.Equal(t, "simulated failure", summary.Failures[0].Reason)
}

func TestSummarizeFailureCountMatchesFailedZones(t *testing.T) {
	agg := NewAggregator()
	for i := 0; i < 5; i++ {
		zone := fmt.Sprintf("zone-%d.com", i)
		outcome := models.OutcomeDisabled
		if i%2 == 0 {
			outcome = models.OutcomeFailed
		}
		agg.Add(record(zone, "", outcome))
	}

	summary := agg.Summarize(uuid.New(), time.Now(), "disable", nil)
	assert.Equal(t, 3, summary.Failed)
	assert.Len(t, summary.Failures, 3)
	assert.Equal(t, 2, summary.Disabled)
}

func TestSummarizeSuccessAndNoZones(t *testing.T) {
	agg := NewAggregator()
	agg.Add(record("one.com", "http_requests", models.OutcomeCreated))
	summary := agg.Summarize(uuid.New(), time.Now(), "create", nil)
	assert.Equal(t, "Success", summary.OverallStatus)

	empty := NewAggregator()
	summary = empty.Summarize(uuid.New(), time.Now(), "create", nil)
	assert.Equal(t, "NoZones", summary.OverallStatus)
	assert.Zero(t, summary.ZonesVisited)
}

func TestMarkZoneVisitedCountsZonesWithoutRecords(t *testing.T) {
	agg := NewAggregator()
	agg.MarkZoneVisited("z1")
	agg.MarkZoneVisited("z1")
	agg.MarkZoneVisited("z2")

	summary := agg.Summarize(uuid.New(), time.Now(), "disable", nil)
	assert.Equal(t, 2, summary.ZonesVisited)
	assert.Equal(t, "Success", summary.OverallStatus)
}

func TestEnumerationFailureAppearsInSummary(t *testing.T) {
	agg := NewAggregator()
	agg.AddEnumerationFailure("Broken Account", fmt.Errorf("server_error (HTTP 500)"))

	summary := agg.Summarize(uuid.New(), time.Now(), "create", nil)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Failures, 1)
	assert.Contains(t, summary.Failures[0].Reason, "Broken Account")
}

func TestRenderHumanListsFailures(t *testing.T) {
	agg := NewAggregator()
	agg.Add(record("one.com", "http_requests", models.OutcomeCreated))
	agg.Add(record("two.com", "dns_logs", models.OutcomeFailed))
	summary := agg.Summarize(uuid.New(), time.Now(), "create", nil)

	var buf bytes.Buffer
	RenderHuman(&buf, summary)

	out := buf.String()
	assert.Contains(t, out, "--- Summary ---")
	assert.Contains(t, out, "two.com [dns_logs]: simulated failure")
	assert.Contains(t, out, "Overall: Failed")
}
