package content

import (
	"fmt"
	"time"

	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

const (
	// EveDinnerHour is when the Christmas Eve countdown ends.
	EveDinnerHour = 20
	// TakeoffHour is when Santa leaves the North Pole on Christmas Eve.
	TakeoffHour = 18
)

// Remaining is a whole-unit breakdown of the time left until a target.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// TimeUntil returns the time left until December 24th at hour:00 in now's
// location. Once that instant has passed, next year's is used.
func TimeUntil(now time.Time, hour int) Remaining {
	target := time.Date(now.Year(), time.December, 24, hour, 0, 0, 0, now.Location())
	if now.After(target) {
		target = time.Date(now.Year()+1, time.December, 24, hour, 0, 0, 0, now.Location())
	}

	total := int64(target.Sub(now) / time.Second)
	return Remaining{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

// Tier classifies how close Christmas Eve is.
type Tier int

const (
	TierArrived Tier = iota
	TierSameDay
	TierOneDay
	TierThreeDays
	TierWeek
	TierTwoWeeks
	TierAdvent
	TierFar
)

var tierNames = map[Tier]string{
	TierArrived:   "arrived",
	TierSameDay:   "same_day",
	TierOneDay:    "one_day",
	TierThreeDays: "three_days",
	TierWeek:      "week",
	TierTwoWeeks:  "two_weeks",
	TierAdvent:    "advent",
	TierFar:       "far",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// CountdownTier picks the message tier for r.
func CountdownTier(r Remaining) Tier {
	switch {
	case r.Days == 0 && r.Hours == 0 && r.Minutes == 0:
		return TierArrived
	case r.Days == 0:
		return TierSameDay
	case r.Days == 1:
		return TierOneDay
	case r.Days <= 3:
		return TierThreeDays
	case r.Days <= 7:
		return TierWeek
	case r.Days <= 14:
		return TierTwoWeeks
	case r.Days <= 24:
		return TierAdvent
	default:
		return TierFar
	}
}

// CountdownMessage renders the countdown to Christmas Eve dinner.
func CountdownMessage(now time.Time) string {
	r := TimeUntil(now, EveDinnerHour)
	p := speech.Pause

	switch CountdownTier(r) {
	case TierArrived:
		return fmt.Sprintf("%s%s IT'S CHRISTMAS EVE! %s The most magical night of the year is here! Santa Claus is getting his sleigh ready to fly around the world. %s Ho ho ho! Merry Christmas! %s",
			speech.Bells, speech.Celebration, p(300), p(300), speech.SleighBells)
	case TierSameDay:
		return fmt.Sprintf("%s Today is Christmas Eve! %s Only %d hours and %d minutes until Santa Claus starts his magical journey. %s Get the milk and cookies ready! Ho ho ho! %s",
			speech.SleighBells, p(300), r.Hours, r.Minutes, p(300), speech.Magic)
	case TierOneDay:
		return fmt.Sprintf("%s Just one day until Christmas Eve! %s The elves are working non-stop in the workshop. %s In exactly %d hours and %d minutes, Santa Claus will be ready to fly. %s Have you written your letter yet? Ho ho ho!",
			speech.Bells, p(300), p(200), r.Hours, r.Minutes, p(300))
	case TierThreeDays:
		return fmt.Sprintf("%s Christmas is very close! %s There are %d days, %d hours and %d minutes until Christmas Eve. %s The reindeer are already practising their flights. Ho ho ho!",
			speech.Bells, p(300), r.Days, r.Hours, r.Minutes, p(200))
	case TierWeek:
		return fmt.Sprintf("%s Only one week to go! %s There are exactly %d days, %d hours and %d minutes until Christmas Eve. %s Santa is checking his nice list. Are you on it? Ho ho ho!",
			speech.SleighBells, p(200), r.Days, r.Hours, r.Minutes, p(300))
	case TierTwoWeeks:
		return fmt.Sprintf("%s There are %d days, %d hours and %d minutes until Christmas Eve. %s The elves are working very hard on the toys. %s You can feel the magic of Christmas in the air!",
			speech.Bells, r.Days, r.Hours, r.Minutes, p(300), p(200))
	case TierAdvent:
		return fmt.Sprintf("There are %d days left until Christmas Eve. %s Plus %d hours and %d minutes. %s It's the perfect time to start decorating and to write your letter to Santa!",
			r.Days, p(200), r.Hours, r.Minutes, p(300))
	default:
		return fmt.Sprintf("There are %d days until Christmas Eve. %s It sounds like a long time, but for Santa Claus it flies by! %s The elves have already started polishing the telescopes to see who is being good. Ho ho ho!",
			r.Days, p(300), p(200))
	}
}
