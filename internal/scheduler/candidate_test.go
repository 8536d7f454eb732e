package scheduler

import (
	"testing"

	"github.com/lennoxgray/aesa-scheduler/internal/model"
)

func TestFeasibleRespectsBoundsAndOccupancy(t *testing.T) {
	tl := model.New(10)
	tl.Assign(3, 99)

	task := model.Task{ID: 1, Duration: 2, Kind: model.TaskStudy}

	if Feasible(tl, task, -1) {
		t.Error("start before 0 should be infeasible")
	}
	if Feasible(tl, task, 9) {
		t.Error("start that overruns timeline should be infeasible")
	}
	if Feasible(tl, task, 2) {
		t.Error("a run overlapping slot 3 (occupied) should be infeasible")
	}
	if !Feasible(tl, task, 5) {
		t.Error("an empty, in-range run should be feasible")
	}
}

func TestFeasibleRespectsFixedSlots(t *testing.T) {
	tl := model.New(10)
	tl.ApplyFixedSlot(4, 7)

	task := model.Task{ID: 1, Duration: 1, Kind: model.TaskStudy}
	if Feasible(tl, task, 4) {
		t.Error("fixed slot should never be feasible for a new placement")
	}
}

func TestFeasibleRespectsDeadline(t *testing.T) {
	tl := model.New(20)
	deadline := 5
	task := model.Task{ID: 1, Duration: 2, Kind: model.TaskStudy, Deadline: &deadline}

	if Feasible(tl, task, 4) { // end = 6 > deadline 5
		t.Error("placement ending after the deadline should be infeasible")
	}
	if !Feasible(tl, task, 3) { // end = 5 == deadline
		t.Error("placement ending exactly at the deadline should be feasible")
	}
}

func TestCandidatesSortedByScoreThenSlot(t *testing.T) {
	tl := model.New(48) // exactly one day
	task := model.Task{ID: 1, Duration: 1, Kind: model.TaskStudy}

	cands := Candidates(tl, task)
	if len(cands) == 0 {
		t.Fatal("expected candidates in a fully empty day")
	}
	for i := 1; i < len(cands); i++ {
		prev, cur := cands[i-1], cands[i]
		if prev.Score < cur.Score {
			t.Fatalf("candidates not sorted by descending score at %d: %+v then %+v", i, prev, cur)
		}
		if prev.Score == cur.Score && prev.Start > cur.Start {
			t.Fatalf("tie not broken by ascending slot at %d: %+v then %+v", i, prev, cur)
		}
	}
	// hour 8 (slot 16) is peak; study/deep_work should score it highest.
	if cands[0].Start != 16 {
		t.Errorf("expected the first candidate to be the peak slot 16, got %d (score %d)", cands[0].Start, cands[0].Score)
	}
}

func TestScoreOnlyLooksAtStartSlot(t *testing.T) {
	tl := model.New(48)
	// A 4-slot study task starting at slot 15 (07:30, medium) runs into
	// peak (slot 16) but the score must reflect only the start.
	task := model.Task{ID: 1, Duration: 4, Kind: model.TaskStudy}
	cands := Candidates(tl, task)
	for _, c := range cands {
		if c.Start == 15 {
			if c.Score != 5 { // T2: medium start
				t.Errorf("expected medium-start score 5 for slot 15, got %d", c.Score)
			}
		}
	}
}
