package models

import (
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/types"
	"github.com/google/uuid"
)

// Outcome is the terminal result of one attempted job operation.
type Outcome string

const (
	OutcomeCreated          Outcome = "created"
	OutcomeSkippedDuplicate Outcome = "skipped_duplicate"
	OutcomeDisabled         Outcome = "disabled"
	OutcomeAlreadyDisabled  Outcome = "already_disabled"
	OutcomeDeleted          Outcome = "deleted"
	OutcomeFailed           Outcome = "failed"
)

// ActionRecord contains ALL information about a single attempted job
// operation. One record is saved per unit to the run's log directory.
type ActionRecord struct {
	RunId   uuid.UUID `json:"run_id"`
	Command string    `json:"command"`

	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	ZoneID      string `json:"zone_id"`
	ZoneName    string `json:"zone_name"`
	Dataset     string `json:"dataset,omitempty"`
	JobName     string `json:"job_name,omitempty"`
	JobID       int    `json:"job_id,omitempty"` // remote id, when known

	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"` // set when Outcome is failed

	StartTime  string `json:"start_time"`  // RFC3339
	FinishTime string `json:"finish_time"` // RFC3339
	DurationMs int64  `json:"duration_ms"`
}

// FailureDetail is one entry in the summary's literal failure list.
type FailureDetail struct {
	Zone    string `json:"zone"`
	Dataset string `json:"dataset,omitempty"`
	Reason  string `json:"reason"`
}

// RunSummary holds the overall results of a sweep.
type RunSummary struct {
	RunId        uuid.UUID       `json:"run_id"`
	RunStartTime string          `json:"run_start_time"`
	Command      string          `json:"command"`
	Datasets     []string        `json:"datasets,omitempty"`
	Initiator    types.Initiator `json:"initiator"`

	ZonesVisited int `json:"zones_visited"`

	Created          int `json:"created"`
	SkippedDuplicate int `json:"skipped_duplicate"`
	Disabled         int `json:"disabled"`
	AlreadyDisabled  int `json:"already_disabled"`
	Deleted          int `json:"deleted"`
	Failed           int `json:"failed"`

	Failures []FailureDetail `json:"failures,omitempty"`

	OverallStatus   string `json:"overall_status"` // "Success", "Failed", "NoZones"
	TotalDurationMs int64  `json:"total_duration_ms"`
}
