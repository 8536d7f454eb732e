// Package constants holds the wire-level limits and taxonomy shared by the
// scheduler core and its document boundary.
package constants

const (
	AppName = "aesa"
	Version = "v0.1.0"

	// MaxTasks is the largest task count optimize_schedule will accept.
	MaxTasks = 500
	// MaxSlots is the largest timeline size (7 days * 48 half-hour slots).
	MaxSlots = 336
	// SlotsPerDay is the number of half-hour slots in a 24h day.
	SlotsPerDay = 48
	// MaxNameLen is the longest task name accepted, in bytes.
	MaxNameLen = 128

	// DefaultNumDays is the horizon used when the caller does not override it.
	DefaultNumDays = 7

	// NoSolutionPrefix begins every error_message produced when the search
	// space is exhausted without placing all non-fixed tasks.
	NoSolutionPrefix = "NO_SOLUTION:"
)

// Well-known priority bands (spec.md §3). Tasks are not required to use
// these exact values; they document the intended scale.
const (
	PriorityFreeTime     = 10
	PriorityRegularStudy = 50
	PriorityAssignment   = 60
	PriorityRevisionDue  = 65
	PriorityUrgentLab    = 75
	PriorityExamPrep     = 85
	PriorityDueToday     = 90
	PriorityOverdue      = 100
)
