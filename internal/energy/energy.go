// Package energy implements the pure time-of-day energy map (spec.md §4.1,
// component C1). It has no dependency on the timeline or solver: given a
// slot index it always returns the same class.
package energy

import "github.com/lennoxgray/aesa-scheduler/internal/constants"

// Class is the coarse cognitive-load period a slot falls into.
type Class int

const (
	Low Class = iota
	Medium
	Peak
)

func (c Class) String() string {
	switch c {
	case Peak:
		return "peak"
	case Medium:
		return "medium"
	default:
		return "low"
	}
}

// hourOf returns the hour-of-day (0-23) for a slot index, independent of
// which day the slot falls on.
func hourOf(slotIndex int) int {
	slotInDay := slotIndex % constants.SlotsPerDay
	return slotInDay / 2
}

// ClassOf returns the energy class for slotIndex per the fixed schedule in
// spec.md §4.1: peak 8-10 & 16-18, medium 6-8 & 10-12 & 14-16 & 18-20, low
// the rest (12-14, 20-24, 0-6).
func ClassOf(slotIndex int) Class {
	hour := hourOf(slotIndex)
	switch {
	case (hour >= 8 && hour < 10) || (hour >= 16 && hour < 18):
		return Peak
	case (hour >= 6 && hour < 8) || (hour >= 10 && hour < 12) ||
		(hour >= 14 && hour < 16) || (hour >= 18 && hour < 20):
		return Medium
	default:
		return Low
	}
}

// Level returns the cosmetic scalar summary surfaced on TimeSlot.EnergyLevel
// (spec.md §4.1). The solver never reads this; it is output-only.
func Level(slotIndex int) int {
	switch ClassOf(slotIndex) {
	case Peak:
		return 9
	case Medium:
		return 6
	case Low:
		return 3
	default:
		return 5
	}
}
