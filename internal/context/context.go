package context

import (
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/config"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/log"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/types"
	"github.com/google/uuid"
)

// RunContext carries the shared state of one sweep invocation.
type RunContext struct {
	RunId       uuid.UUID
	Config      *config.Config
	LogDir      string
	Command     string // "create", "disable", "delete"
	OutputStyle types.OutputStyle
	Logger      *log.ConsoleLogger
}
