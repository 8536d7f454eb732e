// Package document is the I/O boundary (spec.md §6, component C6): the
// wire representation of a schedule request and response, and the
// conversion to/from the internal model the scheduler operates on. It is
// deliberately outside internal/scheduler — the core never imports
// encoding/json.
package document

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lennoxgray/aesa-scheduler/internal/model"
)

// MaxInputBytes bounds how much of an input stream Parse will read
// (spec.md §6: "up to a 1 MiB cap").
const MaxInputBytes = 1 << 20

// TaskRecord is the wire shape of one task (spec.md §6).
type TaskRecord struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	DurationSlots   int    `json:"duration_slots"`
	Priority        int    `json:"priority"`
	DeadlineSlot    int    `json:"deadline_slot"` // -1 = none
	IsFixed         bool   `json:"is_fixed"`
	PreferredEnergy int    `json:"preferred_energy"` // 0..3
}

// FixedSlotRecord is the wire shape of one pre-placed slot (spec.md §6).
type FixedSlotRecord struct {
	SlotIndex int `json:"slot_index"`
	TaskID    int `json:"task_id"`
}

// InputDocument is the full request (spec.md §6).
type InputDocument struct {
	Tasks      []TaskRecord      `json:"tasks"`
	FixedSlots []FixedSlotRecord `json:"fixed_slots"`
}

// SlotRecord is the wire shape of one output slot (spec.md §6).
type SlotRecord struct {
	SlotIndex   int  `json:"slot_index"`
	TaskID      int  `json:"task_id"`
	EnergyLevel int  `json:"energy_level"`
	IsFixed     bool `json:"is_fixed"`
}

// OutputDocument is the full response (spec.md §6).
type OutputDocument struct {
	Success      bool          `json:"success"`
	ErrorMessage EscapedString `json:"error_message"`
	NumSlots     int           `json:"num_slots"`
	Slots        []SlotRecord  `json:"slots"`
}

// Parse reads up to MaxInputBytes from r and decodes an InputDocument.
func Parse(r io.Reader) (InputDocument, error) {
	var doc InputDocument
	limited := io.LimitReader(r, MaxInputBytes)
	data, err := io.ReadAll(limited)
	if err != nil {
		return doc, fmt.Errorf("reading input: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parsing input document: %w", err)
	}
	return doc, nil
}

// Emit writes an OutputDocument to w.
func Emit(w io.Writer, doc OutputDocument) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// kindFromWire maps a wire taxonomy string to model.TaskKind, reporting
// whether it named one of the 14 known variants (spec.md §3).
func kindFromWire(s string) (model.TaskKind, bool) {
	k := model.TaskKind(s)
	return k, k.Valid()
}

// preferredFromWire maps the 0..3 wire integer to model.PreferredEnergy.
func preferredFromWire(n int) model.PreferredEnergy {
	switch n {
	case 1:
		return model.PreferLow
	case 2:
		return model.PreferMedium
	case 3:
		return model.PreferPeak
	default:
		return model.PreferNone
	}
}

// ToTasks converts the wire task records into the internal model, in the
// same order they appeared in the document (task ordering stability,
// spec.md §4.2, depends on this order being preserved).
func ToTasks(records []TaskRecord) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(records))
	for _, r := range records {
		kind, ok := kindFromWire(r.Type)
		if !ok {
			return nil, fmt.Errorf("task %d: unknown type %q", r.ID, r.Type)
		}

		t := model.Task{
			ID:              r.ID,
			Name:            r.Name,
			Kind:            kind,
			Duration:        r.DurationSlots,
			Priority:        r.Priority,
			Fixed:           r.IsFixed,
			PreferredEnergy: preferredFromWire(r.PreferredEnergy),
		}
		if r.DeadlineSlot >= 0 {
			deadline := r.DeadlineSlot
			t.Deadline = &deadline
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// ToFixedSlots converts the wire fixed-slot records into the internal
// model, preserving input order (last-writer-wins on collisions depends on
// this, spec.md §9).
func ToFixedSlots(records []FixedSlotRecord) []model.FixedSlot {
	out := make([]model.FixedSlot, len(records))
	for i, r := range records {
		out[i] = model.FixedSlot{Index: r.SlotIndex, TaskID: r.TaskID}
	}
	return out
}

// FromTimeline converts a solved Timeline into the wire response.
func FromTimeline(tl *model.Timeline) OutputDocument {
	slots := make([]SlotRecord, len(tl.Slots))
	for i, s := range tl.Slots {
		slots[i] = SlotRecord{
			SlotIndex:   s.Index,
			TaskID:      s.Assignment,
			EnergyLevel: s.EnergyLevel,
			IsFixed:     s.Fixed,
		}
	}
	return OutputDocument{
		Success:      tl.Success,
		ErrorMessage: EscapedString(tl.ErrorMessage),
		NumSlots:     tl.NumSlots,
		Slots:        slots,
	}
}

// ToTimeline reconstructs a Timeline from a decoded OutputDocument, used by
// the round-trip property test (P4, spec.md §8).
func ToTimeline(doc OutputDocument) *model.Timeline {
	tl := &model.Timeline{
		NumSlots:     doc.NumSlots,
		Success:      doc.Success,
		ErrorMessage: string(doc.ErrorMessage),
		Slots:        make([]model.TimeSlot, len(doc.Slots)),
	}
	for i, s := range doc.Slots {
		tl.Slots[i] = model.TimeSlot{
			Index:       s.SlotIndex,
			Assignment:  s.TaskID,
			EnergyLevel: s.EnergyLevel,
			Fixed:       s.IsFixed,
		}
	}
	return tl
}
