package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/models"
	"github.com/google/uuid"
)

// CreateLogDir returns a full path like
// ".logpush/logs/20250423T213245_create_3c43e9f4-9026-4d04-ba06-054e8903e80a"
func CreateLogDir(runId uuid.UUID, runStartTime time.Time, command string) (string, error) {
	timestampStr := runStartTime.Format("20060102T150405")

	dirName := fmt.Sprintf("%s_%s_%s", timestampStr, command, runId)
	fullPath := filepath.Join(".logpush", "logs", dirName)

	err := os.MkdirAll(fullPath, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("failed to create log directory '%s': %w", fullPath, err)
	}
	return fullPath, nil
}

// SaveActionRecord stores the detailed record for a single attempted job
// operation. Filename: ZONE_JOBNAME_OUTCOME.json with dots flattened so the
// zone name does not read as extra extensions.
func SaveActionRecord(logDir string, record models.ActionRecord) error {
	zone := strings.ReplaceAll(record.ZoneName, ".", "_")
	label := record.JobName
	if label == "" {
		label = record.Dataset
	}
	if label == "" {
		label = "zone"
	}

	fileName := fmt.Sprintf("%s_%s_%s.json", zone, label, record.Outcome)
	filePath := filepath.Join(logDir, fileName)

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create action log file %s: %w", filePath, err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to encode action record to %s: %w", filePath, err)
	}
	return nil
}
