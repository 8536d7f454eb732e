package scheduler

import (
	"testing"

	"github.com/lennoxgray/aesa-scheduler/internal/model"
)

func TestOrderTasksDescendingPriority(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Priority: 50, Kind: model.TaskStudy, Duration: 1},
		{ID: 2, Priority: 90, Kind: model.TaskStudy, Duration: 1},
		{ID: 3, Priority: 10, Kind: model.TaskStudy, Duration: 1},
	}
	ordered := OrderTasks(tasks)
	want := []int{2, 1, 3}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Fatalf("position %d: got task %d, want %d", i, ordered[i].ID, id)
		}
	}
}

func TestOrderTasksStableOnTies(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Priority: 50, Kind: model.TaskStudy, Duration: 1},
		{ID: 2, Priority: 50, Kind: model.TaskStudy, Duration: 1},
		{ID: 3, Priority: 50, Kind: model.TaskStudy, Duration: 1},
	}
	ordered := OrderTasks(tasks)
	for i, want := range []int{1, 2, 3} {
		if ordered[i].ID != want {
			t.Fatalf("tie-break order broken: position %d got %d, want %d", i, ordered[i].ID, want)
		}
	}
}

func TestOrderTasksDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Priority: 10, Kind: model.TaskStudy, Duration: 1},
		{ID: 2, Priority: 90, Kind: model.TaskStudy, Duration: 1},
	}
	_ = OrderTasks(tasks)
	if tasks[0].ID != 1 || tasks[1].ID != 2 {
		t.Fatalf("OrderTasks mutated its input: %+v", tasks)
	}
}
