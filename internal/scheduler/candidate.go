package scheduler

import (
	"sort"

	"github.com/lennoxgray/aesa-scheduler/internal/energy"
	"github.com/lennoxgray/aesa-scheduler/internal/model"
)

// Candidate is a (task, start-slot) pair already known to be feasible, with
// the score used to order it against other candidates for the same task.
type Candidate struct {
	Start int
	Score int
}

// Feasible reports whether task t could start at slot s on tl: in range,
// deadline-respecting, and landing entirely on empty, non-fixed slots
// (spec.md §4.3).
func Feasible(tl *model.Timeline, t model.Task, s int) bool {
	if s < 0 || s+t.Duration > tl.NumSlots {
		return false
	}
	if t.Deadline != nil && s+t.Duration > *t.Deadline {
		return false
	}
	for i := s; i < s+t.Duration; i++ {
		if !tl.IsAvailable(i) {
			return false
		}
	}
	return true
}

// score computes the T1-T6 energy-match bonus for starting t at slot s.
// Only the start slot's energy class is consulted (spec.md §4.3: "Only s
// is evaluated... this is an approximation" — preserved as-is, it matches
// the reference C `calculate_energy_score`).
func score(t model.Task, s int) int {
	class := energy.ClassOf(s)
	total := 0

	switch t.Kind {
	case model.TaskStudy, model.TaskDeepWork:
		switch class {
		case energy.Peak:
			total += 10 // T1
		case energy.Medium:
			total += 5 // T2
		}
	case model.TaskPractice, model.TaskRevision:
		switch class {
		case energy.Peak:
			total += 7 // T3
		case energy.Medium:
			total += 8 // T4
		}
	case model.TaskBreak, model.TaskFreeTime:
		if class == energy.Low {
			total += 10 // T5
		}
	}

	if t.PreferredEnergy != model.PreferNone {
		matches := (t.PreferredEnergy == model.PreferPeak && class == energy.Peak) ||
			(t.PreferredEnergy == model.PreferMedium && class == energy.Medium) ||
			(t.PreferredEnergy == model.PreferLow && class == energy.Low)
		if matches {
			total += 5 // T6
		}
	}

	return total
}

// Candidates enumerates every feasible start slot for t on tl, scored and
// sorted descending by score, ties broken by ascending slot index for
// determinism (spec.md §4.3, component C3).
func Candidates(tl *model.Timeline, t model.Task) []Candidate {
	var out []Candidate
	for s := 0; s+t.Duration <= tl.NumSlots; s++ {
		if Feasible(tl, t, s) {
			out = append(out, Candidate{Start: s, Score: score(t, s)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Start < out[j].Start
	})
	return out
}
