package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-santa-skill/pkg/content"
	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

// SantaTrackerHandler reports Santa's simulated position.
type SantaTrackerHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewSantaTrackerHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &SantaTrackerHandler{
		BaseHandler: intent.NewBaseHandler(config, "Santa Tracker", intent.IntentIs(IntentSantaTracker)),
		deps:        deps,
	}
}

func (h *SantaTrackerHandler) Handle(_ context.Context, in *intent.Input) (*intent.Output, error) {
	route := h.deps.Catalog.Tracker()
	pos := content.Locate(in.Now, route, h.deps.Random)
	fact := h.deps.Picker.Pick(route.FunFacts)

	text := fmt.Sprintf("%s%s Santa tracker activated! %s Right now Santa is in %s, %s. %s ",
		speech.SleighBells, speech.Magic, pause(300), pos.Location, pos.Activity, pause(300))

	switch {
	case pos.InTransit:
		if pos.Distance > 0 {
			text += fmt.Sprintf("He's about %d kilometres from %s. Get to bed soon, he's on his way! ", pos.Distance, route.Home)
		} else {
			text += fmt.Sprintf("Santa is flying over %s right now! %s ", route.Home, speech.Whisper("Quick, close your eyes and go to sleep!"))
		}
	case pos.IsEve:
		left := content.TimeUntil(in.Now, content.TakeoffHour)
		text += fmt.Sprintf("He takes off in %d hours and %d minutes. The reindeer are ready! ", left.Hours, left.Minutes)
	default:
		text += trackerDistanceLine(pos, content.TimeUntil(in.Now, content.TakeoffHour).Days)
	}

	text += fmt.Sprintf("%s Did you know? %s", pause(400), fact)
	return intent.Ask(text, "Do you want to know anything else about Santa, or shall we do something else?"), nil
}

func trackerDistanceLine(pos content.Position, days int) string {
	switch {
	case days > 20:
		return fmt.Sprintf("He's %d kilometres away, and there's still plenty of time until Christmas. ", pos.Distance)
	case days > 10:
		return fmt.Sprintf("He's %d kilometres away, and the elves are speeding up in the workshop. ", pos.Distance)
	case days > 5:
		return fmt.Sprintf("He's %d kilometres away. Christmas is getting closer! ", pos.Distance)
	case days > 1:
		return fmt.Sprintf("He's %d kilometres away and checking the last details of his route. ", pos.Distance)
	default:
		return fmt.Sprintf("He's %d kilometres away and almost ready to take off! ", pos.Distance)
	}
}
