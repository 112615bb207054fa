package models

import "testing"

func TestWorkoutGroupsOrder(t *testing.T) {
	g := NewWorkoutGroups()
	g.Add("2026-08-30", "2026-08-30: Power Zone")
	g.Add("2026-08-29", "2026-08-29: Yoga Flow")
	g.Add("2026-08-30", "2026-08-30: Cool Down")

	dates := g.Dates()
	if len(dates) != 2 || dates[0] != "2026-08-30" || dates[1] != "2026-08-29" {
		t.Errorf("unexpected date order: %v", dates)
	}

	labels := g.Labels("2026-08-30")
	if len(labels) != 2 || labels[1] != "2026-08-30: Cool Down" {
		t.Errorf("unexpected labels: %v", labels)
	}

	if g.Len() != 2 {
		t.Errorf("expected len 2, got %d", g.Len())
	}
}
