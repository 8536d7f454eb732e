package model

import "github.com/lennoxgray/aesa-scheduler/internal/energy"

// EmptyAssignment is the sentinel task id meaning "nothing placed here".
const EmptyAssignment = -1

// FixedSlot describes one pre-placed slot supplied by the caller (a class,
// a meal, sleep) to be written into the timeline before the search starts.
type FixedSlot struct {
	Index  int
	TaskID int
}

// TimeSlot is a single half-hour cell of the timeline (spec.md §3).
type TimeSlot struct {
	Index       int
	Assignment  int // task id, or EmptyAssignment
	EnergyLevel int // cosmetic scalar, see internal/energy
	Fixed       bool
}

// Timeline is the board the solver mutates: num_slots TimeSlots plus the
// terminal outcome fields (spec.md §3, C5).
type Timeline struct {
	Slots        []TimeSlot
	NumSlots     int
	Success      bool
	ErrorMessage string
}

// New builds a Timeline of numSlots empty, non-fixed slots with their
// cosmetic energy level pre-computed (C1 is pure, so this can run once up
// front rather than on every read).
func New(numSlots int) *Timeline {
	slots := make([]TimeSlot, numSlots)
	for i := range slots {
		slots[i] = TimeSlot{
			Index:       i,
			Assignment:  EmptyAssignment,
			EnergyLevel: energy.Level(i),
			Fixed:       false,
		}
	}
	return &Timeline{Slots: slots, NumSlots: numSlots}
}

// IsAvailable reports whether slot i is empty and not fixed. Out-of-range
// indices are never available.
func (tl *Timeline) IsAvailable(i int) bool {
	if i < 0 || i >= tl.NumSlots {
		return false
	}
	return tl.Slots[i].Assignment == EmptyAssignment && !tl.Slots[i].Fixed
}

// Assign writes taskID into slot i. Callers must only invoke this on
// non-fixed slots; the solver never writes to a fixed slot.
func (tl *Timeline) Assign(i, taskID int) {
	tl.Slots[i].Assignment = taskID
}

// Clear resets slot i to empty. Same non-fixed-only contract as Assign.
func (tl *Timeline) Clear(i int) {
	tl.Slots[i].Assignment = EmptyAssignment
}

// ApplyFixedSlot writes a pre-placed slot into the timeline. Out-of-range
// indices are silently ignored (spec.md §4.4, §7 kind 5: Silent-ignore).
// Two descriptors for the same index overwrite each other in input order
// (last-writer-wins, per the original C engine — spec.md §9).
func (tl *Timeline) ApplyFixedSlot(index, taskID int) {
	if index < 0 || index >= tl.NumSlots {
		return
	}
	tl.Slots[index].Assignment = taskID
	tl.Slots[index].Fixed = true
}
