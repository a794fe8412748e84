package content

import (
	"testing"
	"time"
)

type fixedRandom struct {
	idx int
}

func (f fixedRandom) Intn(n int) int {
	if f.idx >= n {
		return n - 1
	}
	return f.idx
}

func testRoute() TrackerRoute {
	return TrackerRoute{
		Home: "Spain",
		BeforeChristmas: []Location{
			{Location: "the workshop", Activity: "testing toys", Distance: 6200},
			{Location: "the stable", Activity: "feeding reindeer", Distance: 6200},
		},
		ChristmasEve: []Location{
			{Location: "New Zealand", Distance: 18500},
			{Location: "Australia", Distance: 17100},
			{Location: "Japan", Distance: 10800},
		},
		FunFacts: []string{"fact"},
	}
}

func TestLocate(t *testing.T) {
	route := testRoute()

	tests := []struct {
		name          string
		now           time.Time
		rnd           fixedRandom
		expectPhase   Phase
		expectPlace   string
		expectTransit bool
		expectEve     bool
	}{
		{"november", time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC), fixedRandom{1}, PhaseBeforeEvent, "the stable", false, false},
		{"early december", time.Date(2025, 12, 23, 23, 0, 0, 0, time.UTC), fixedRandom{0}, PhaseBeforeEvent, "the workshop", false, false},
		{"eve before takeoff", time.Date(2025, 12, 24, 17, 59, 0, 0, time.UTC), fixedRandom{0}, PhasePreparing, "the North Pole", false, true},
		{"takeoff hour", time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC), fixedRandom{0}, PhaseInFlight, "New Zealand", true, true},
		{"second hour", time.Date(2025, 12, 24, 19, 10, 0, 0, time.UTC), fixedRandom{0}, PhaseInFlight, "Australia", true, true},
		{"clamped to last waypoint", time.Date(2025, 12, 24, 23, 0, 0, 0, time.UTC), fixedRandom{0}, PhaseInFlight, "Japan", true, true},
		{"christmas night", time.Date(2025, 12, 25, 3, 0, 0, 0, time.UTC), fixedRandom{0}, PhaseStillFinishing, "the last few rooftops", true, true},
		{"christmas morning", time.Date(2025, 12, 25, 8, 0, 0, 0, time.UTC), fixedRandom{0}, PhaseReturned, "the North Pole, back home", false, false},
		{"after christmas", time.Date(2025, 12, 28, 8, 0, 0, 0, time.UTC), fixedRandom{0}, PhaseResting, "the North Pole", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Locate(tt.now, route, tt.rnd)
			if pos.Phase != tt.expectPhase {
				t.Errorf("Phase = %v, expected %v", pos.Phase, tt.expectPhase)
			}
			if pos.Location != tt.expectPlace {
				t.Errorf("Location = %q, expected %q", pos.Location, tt.expectPlace)
			}
			if pos.InTransit != tt.expectTransit {
				t.Errorf("InTransit = %v, expected %v", pos.InTransit, tt.expectTransit)
			}
			if pos.IsEve != tt.expectEve {
				t.Errorf("IsEve = %v, expected %v", pos.IsEve, tt.expectEve)
			}
		})
	}
}
