package log

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/types"
	"github.com/briandowns/spinner"
)

// ConsoleLogger writes human-facing progress to the terminal. In machine
// mode (--json) everything but Json is silent so stdout stays parseable.
type ConsoleLogger struct {
	OutputStyle types.OutputStyle
	Spinner     *spinner.Spinner
}

func NewLogger(style types.OutputStyle) *ConsoleLogger {
	return &ConsoleLogger{
		OutputStyle: style,
		Spinner: spinner.New(
			spinner.CharSets[11],
			100*time.Millisecond,
			spinner.WithHiddenCursor(true)),
	}
}

func (l *ConsoleLogger) human() bool {
	return l.OutputStyle == types.StyleHuman || l.OutputStyle == types.StyleHumanVerbose
}

func (l *ConsoleLogger) Info(msg string, args ...any) {
	if l.human() {
		fmt.Printf(msg+"\n", args...)
	}
}

func (l *ConsoleLogger) Verbose(msg string, args ...any) {
	if l.OutputStyle == types.StyleHumanVerbose {
		fmt.Printf(msg+"\n", args...)
	}
}

func (l *ConsoleLogger) Error(msg string, args ...any) {
	if l.human() {
		fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	}
}

// Json emits data to stdout in machine mode and is silent otherwise.
func (l *ConsoleLogger) Json(data any) {
	if l.OutputStyle == types.StyleMachineJSON {
		encoded, _ := json.MarshalIndent(data, "", "  ")
		fmt.Println(string(encoded))
	}
}

// StartSpinner shows a progress spinner with the given suffix text. No-op
// in machine mode.
func (l *ConsoleLogger) StartSpinner(text string) {
	if l.human() {
		l.Spinner.Suffix = " " + text
		l.Spinner.Start()
	}
}

func (l *ConsoleLogger) StopSpinner() {
	if l.human() {
		l.Spinner.Stop()
	}
}
