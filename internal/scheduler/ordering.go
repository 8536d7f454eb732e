package scheduler

import (
	"sort"

	"github.com/lennoxgray/aesa-scheduler/internal/model"
)

// OrderTasks produces a stable copy of tasks sorted by descending priority
// (spec.md §4.2, component C2). Ties keep their original relative order —
// required for determinism (P5) — which is why this uses sort.SliceStable
// rather than the reference C engine's qsort with a `priority_b - priority_a`
// comparator (qsort is not guaranteed stable; Go's SliceStable is, and the
// spec calls this out as a deliberate behavioral strengthening over the
// reference C implementation).
//
// Fixed tasks remain in the returned sequence; the solver is responsible
// for skipping them (spec.md §4.4 step 2).
func OrderTasks(tasks []model.Task) []model.Task {
	ordered := make([]model.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})
	return ordered
}
