// Command aesa is the process driver (spec.md §6): it reads an input
// document from stdin (capped at 1 MiB), runs the scheduler core, and
// writes the output document to stdout. Exit code is 0 for any
// well-formed output (including success=false, which is also how a
// recovered allocation failure inside the solver is reported), and 1 when
// the input cannot be parsed, a task in it is invalid, or the output
// cannot be written.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/lennoxgray/aesa-scheduler/internal/constants"
	"github.com/lennoxgray/aesa-scheduler/internal/document"
	"github.com/lennoxgray/aesa-scheduler/internal/logger"
	"github.com/lennoxgray/aesa-scheduler/internal/scheduler"
	"github.com/lennoxgray/aesa-scheduler/internal/validation"
)

type cli struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging to stderr." env:"AESA_DEBUG"`
	LogDir  string `help:"Directory for the rotating log file." default:"~/.config/aesa/logs" env:"AESA_LOG_DIR"`
	NumDays int    `help:"Scheduling horizon in days." default:"7"`
}

func main() {
	c := cli{}
	kong.Parse(&c,
		kong.Name(constants.AppName),
		kong.Description("Energy-aware task scheduler core"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	logDir := c.LogDir
	if logDir == "~/.config/aesa/logs" {
		home, err := os.UserHomeDir()
		if err == nil {
			logDir = filepath.Join(home, ".config", "aesa", "logs")
		}
	}
	if err := logger.Init(logger.Config{Debug: c.Debug, LogDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	requestID := uuid.NewString()

	inDoc, err := document.Parse(os.Stdin)
	if err != nil {
		logger.Error("aesa: failed to parse input", "request_id", requestID, "error", err)
		fmt.Fprintln(os.Stderr, `{"success": false, "error_message": "Failed to parse input JSON"}`)
		os.Exit(1)
	}

	numSlots := c.NumDays * constants.SlotsPerDay
	if numSlots <= 0 || numSlots > constants.MaxSlots {
		numSlots = constants.MaxSlots
	}

	if diag := validation.InspectRequest(inDoc, numSlots); diag.HasConflicts() {
		for _, conflict := range diag.Conflicts {
			logger.Debug("aesa: request diagnostic", "request_id", requestID, "type", conflict.Type, "detail", conflict.Description)
		}
	}

	tasks, err := document.ToTasks(inDoc.Tasks)
	if err != nil {
		logger.Error("aesa: invalid task in input", "request_id", requestID, "error", err)
		fmt.Fprintln(os.Stderr, `{"success": false, "error_message": "Failed to parse input JSON"}`)
		os.Exit(1)
	}
	fixedSlots := document.ToFixedSlots(inDoc.FixedSlots)

	logger.Info("aesa: optimize start", "request_id", requestID, "num_tasks", len(tasks), "num_fixed", len(fixedSlots), "num_days", c.NumDays)

	timeline := scheduler.Optimize(tasks, fixedSlots, c.NumDays)

	logger.Info("aesa: optimize done", "request_id", requestID, "success", timeline.Success)

	outDoc := document.FromTimeline(timeline)
	if err := document.Emit(os.Stdout, outDoc); err != nil {
		logger.Error("aesa: failed to emit output", "request_id", requestID, "error", err)
		fmt.Fprintln(os.Stderr, `{"success": false, "error_message": "JSON serialization failed"}`)
		os.Exit(1)
	}
}
