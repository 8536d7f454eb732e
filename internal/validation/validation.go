// Package validation produces human-readable diagnostics about an input
// document without ever blocking the solver. It follows the same
// Conflict/ValidationResult shape the teacher's internal/validation
// package uses for task/plan conflicts, repurposed for this domain: a
// report the process driver can log at debug level, never a reason to
// refuse a request (spec.md §7: only num_tasks range is a core-level
// rejection; everything else here is diagnostic).
package validation

import (
	"fmt"

	"github.com/lennoxgray/aesa-scheduler/internal/document"
)

// ConflictType names the kind of diagnostic raised.
type ConflictType string

const (
	ConflictDuplicateFixedSlot ConflictType = "duplicate_fixed_slot"
	ConflictOutOfRangeFixed    ConflictType = "out_of_range_fixed_slot"
	ConflictUnscheduledFixed   ConflictType = "fixed_task_without_slot"
)

// Conflict is one detected, non-fatal issue with the request.
type Conflict struct {
	Type        ConflictType
	Description string
}

// Result collects every Conflict found in a single pass.
type Result struct {
	Conflicts []Conflict
}

// HasConflicts reports whether anything was found.
func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// InspectRequest checks a parsed input document for conditions the spec
// documents as silently-handled but worth surfacing in logs: fixed-slot
// collisions (last-writer-wins, spec.md §9), out-of-range fixed slots
// (silently ignored, spec.md §7 kind 5), and tasks flagged is_fixed with no
// matching fixed-slot entry (effectively unscheduled, spec.md §9).
func InspectRequest(doc document.InputDocument, numSlots int) Result {
	var result Result

	seen := make(map[int]int) // slot_index -> task_id of last writer seen so far
	for _, fs := range doc.FixedSlots {
		if fs.SlotIndex < 0 || fs.SlotIndex >= numSlots {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOutOfRangeFixed,
				Description: fmt.Sprintf("fixed slot index %d is outside [0,%d); ignored", fs.SlotIndex, numSlots),
			})
			continue
		}
		if prior, ok := seen[fs.SlotIndex]; ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateFixedSlot,
				Description: fmt.Sprintf("fixed slot %d assigned to task %d then overwritten by task %d", fs.SlotIndex, prior, fs.TaskID),
			})
		}
		seen[fs.SlotIndex] = fs.TaskID
	}

	fixedTaskIDs := make(map[int]bool)
	for _, fs := range doc.FixedSlots {
		fixedTaskIDs[fs.TaskID] = true
	}
	for _, t := range doc.Tasks {
		if t.IsFixed && !fixedTaskIDs[t.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnscheduledFixed,
				Description: fmt.Sprintf("task %d is marked fixed but no fixed_slots entry references it; it will not appear anywhere", t.ID),
			})
		}
	}

	return result
}
