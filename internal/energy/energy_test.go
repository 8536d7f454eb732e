package energy

import "testing"

func TestClassOf(t *testing.T) {
	cases := []struct {
		hour int
		want Class
	}{
		{0, Low}, {5, Low}, {6, Medium}, {7, Medium},
		{8, Peak}, {9, Peak}, {10, Medium}, {11, Medium},
		{12, Low}, {13, Low}, {14, Medium}, {15, Medium},
		{16, Peak}, {17, Peak}, {18, Medium}, {19, Medium},
		{20, Low}, {23, Low},
	}
	for _, c := range cases {
		slot := c.hour * 2 // 2 slots per hour, slot 0 of the hour
		if got := ClassOf(slot); got != c.want {
			t.Errorf("ClassOf(hour=%d, slot=%d) = %v, want %v", c.hour, slot, got, c.want)
		}
	}
}

func TestClassOfWrapsAcrossDays(t *testing.T) {
	// Day 3, hour 9 (peak) should behave identically to day 0, hour 9.
	daySlots := 48
	slot := 3*daySlots + 9*2
	if got := ClassOf(slot); got != Peak {
		t.Errorf("ClassOf(%d) = %v, want Peak", slot, got)
	}
}

func TestLevelMatchesClass(t *testing.T) {
	for slot := 0; slot < 336; slot++ {
		class := ClassOf(slot)
		level := Level(slot)
		switch class {
		case Peak:
			if level != 9 {
				t.Errorf("slot %d: peak level = %d, want 9", slot, level)
			}
		case Medium:
			if level != 6 {
				t.Errorf("slot %d: medium level = %d, want 6", slot, level)
			}
		case Low:
			if level != 3 {
				t.Errorf("slot %d: low level = %d, want 3", slot, level)
			}
		}
	}
}
