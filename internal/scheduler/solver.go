// Package scheduler implements the constraint-satisfaction core: task
// ordering (C2), candidate enumeration (C3), and the backtracking solver
// (C4) operating on a model.Timeline (C5). See spec.md §4 for the contract
// this package implements.
package scheduler

import (
	"fmt"

	"github.com/lennoxgray/aesa-scheduler/internal/constants"
	"github.com/lennoxgray/aesa-scheduler/internal/logger"
	"github.com/lennoxgray/aesa-scheduler/internal/model"
)

// Optimize is the core entry point (spec.md §6: optimize_schedule). It
// builds a Timeline of numDays*constants.SlotsPerDay slots (clamped to
// constants.MaxSlots, matching timeline_init in the reference C engine),
// applies fixedSlots, then searches for a placement of every non-fixed
// task in tasks. It always returns a well-formed Timeline — Success is the
// only signal callers should branch on; ErrorMessage explains a false.
func Optimize(tasks []model.Task, fixedSlots []model.FixedSlot, numDays int) *model.Timeline {
	numSlots := numDays * constants.SlotsPerDay
	if numSlots > constants.MaxSlots || numSlots <= 0 {
		numSlots = constants.MaxSlots
	}

	// spec.md §4.4 also rejects a negative num_tasks; a Go slice's length
	// can never be negative, so only the upper bound is reachable here.
	if len(tasks) > constants.MaxTasks {
		tl := model.New(numSlots)
		tl.Success = false
		tl.ErrorMessage = fmt.Sprintf("Invalid number of tasks: %d", len(tasks))
		return tl
	}

	tl := model.New(numSlots)

	for _, fs := range fixedSlots {
		tl.ApplyFixedSlot(fs.Index, fs.TaskID)
	}

	if len(tasks) == 0 {
		tl.Success = true
		return tl
	}

	// The reference C engine allocates a sorted working copy and a
	// placements array and reports allocation failure as a distinct error
	// kind (spec.md §4.4, §7 kind 3: Resource-exhausted). Go's allocator
	// does not return nil on failure — make()/append() panic instead — so
	// the idiomatic equivalent is to recover from that panic here and
	// report the same wire-level outcome rather than crash the process.
	return runSearch(tl, tasks)
}

func runSearch(tl *model.Timeline, tasks []model.Task) (result *model.Timeline) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("scheduler: recovered from panic during search", "panic", r)
			tl.Success = false
			tl.ErrorMessage = "Memory allocation failed"
			result = tl
		}
	}()

	sorted := OrderTasks(tasks)
	placements := make([]int, len(sorted))
	for i := range placements {
		placements[i] = model.EmptyAssignment
	}

	if backtrack(tl, sorted, 0, placements) {
		tl.Success = true
	} else {
		tl.Success = false
		tl.ErrorMessage = constants.NoSolutionPrefix + " Cannot find valid placement for all tasks"
	}
	return tl
}

// backtrack explores the search tree indexed by position in sorted
// (spec.md §4.4, component C4). It mutates tl in place, always undoing a
// trial placement before returning failure so that no partial state is
// observable after Optimize returns a failed Timeline.
func backtrack(tl *model.Timeline, sorted []model.Task, index int, placements []int) bool {
	if index == len(sorted) {
		return true
	}

	t := sorted[index]
	if t.Fixed {
		return backtrack(tl, sorted, index+1, placements)
	}

	candidates := Candidates(tl, t)
	for _, c := range candidates {
		for i := c.Start; i < c.Start+t.Duration; i++ {
			tl.Assign(i, t.ID)
		}
		placements[index] = c.Start

		if backtrack(tl, sorted, index+1, placements) {
			return true
		}

		for i := c.Start; i < c.Start+t.Duration; i++ {
			tl.Clear(i)
		}
		placements[index] = model.EmptyAssignment
	}

	return false
}
