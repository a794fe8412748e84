package content

import (
	"time"

	"github.com/AccelByte/extend-santa-skill/pkg/common"
)

// returnHour is when Santa is back home on Christmas morning.
const returnHour = 8

// Phase is a discrete stage of Santa's simulated journey.
type Phase int

const (
	PhaseBeforeEvent Phase = iota
	PhasePreparing
	PhaseInFlight
	PhaseStillFinishing
	PhaseReturned
	PhaseResting
)

// Position is Santa's simulated whereabouts at a given instant.
type Position struct {
	Phase     Phase
	Location  string
	Activity  string
	Distance  int
	InTransit bool
	IsEve     bool
}

// Locate computes Santa's position at now.
func Locate(now time.Time, route TrackerRoute, rnd common.Random) Position {
	month, day, hour := now.Month(), now.Day(), now.Hour()

	if month != time.December || day < 24 {
		loc := route.BeforeChristmas[rnd.Intn(len(route.BeforeChristmas))]
		return Position{
			Phase:    PhaseBeforeEvent,
			Location: loc.Location,
			Activity: loc.Activity,
			Distance: loc.Distance,
		}
	}

	switch day {
	case 24:
		if hour < TakeoffHour {
			return Position{
				Phase:    PhasePreparing,
				Location: "the North Pole",
				Activity: "making the last preparations for his epic journey",
				Distance: 6200,
				IsEve:    true,
			}
		}

		idx := hour - TakeoffHour
		if idx > len(route.ChristmasEve)-1 {
			idx = len(route.ChristmasEve) - 1
		}
		loc := route.ChristmasEve[idx]
		return Position{
			Phase:     PhaseInFlight,
			Location:  loc.Location,
			Activity:  loc.Activity,
			Distance:  loc.Distance,
			InTransit: true,
			IsEve:     true,
		}

	case 25:
		if hour < returnHour {
			return Position{
				Phase:     PhaseStillFinishing,
				Location:  "the last few rooftops",
				Activity:  "reaching the last homes in America",
				Distance:  7000,
				InTransit: true,
				IsEve:     true,
			}
		}
		return Position{
			Phase:    PhaseReturned,
			Location: "the North Pole, back home",
			Activity: "resting with a cup of hot chocolate. Mission accomplished!",
			Distance: 6200,
		}
	}

	return Position{
		Phase:    PhaseResting,
		Location: "the North Pole",
		Activity: "resting and planning next year",
		Distance: 6200,
	}
}
