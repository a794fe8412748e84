package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-santa-skill/pkg/content"
	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

// AdventCalendarHandler opens today's advent calendar window.
type AdventCalendarHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewAdventCalendarHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &AdventCalendarHandler{
		BaseHandler: intent.NewBaseHandler(config, "Advent Calendar", intent.IntentIs(IntentAdventCalendar)),
		deps:        deps,
	}
}

func (h *AdventCalendarHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	status, day := content.AdventWindow(in.Now)
	switch status {
	case content.AdventNotStarted:
		text := fmt.Sprintf("%s The advent calendar opens on December 1st. %s Come back then to open a window every day until Christmas Eve!",
			speech.Bells, pause(200))
		return intent.Ask(text, promptWhatToDo), nil
	case content.AdventEnded:
		text := fmt.Sprintf("%s The advent calendar is finished for this year. %s I hope you enjoyed every window! Merry Christmas!",
			speech.Bells, pause(200))
		return intent.Ask(text, promptWhatToDo), nil
	}

	surprise, ok := h.deps.Catalog.AdventContent(day)
	if !ok {
		return nil, fmt.Errorf("no advent content for day %d", day)
	}

	opened, err := h.deps.Store.OpenAdventDay(ctx, in.UserID, day)
	if err != nil {
		return nil, err
	}

	var intro string
	if opened {
		intro = fmt.Sprintf("%s Day %d! Opening the window... %s", speech.Magic, day, pause(400))
	} else {
		intro = fmt.Sprintf("%s You already opened day %d. Here it is again: %s", speech.Bells, day, pause(300))
	}

	return intent.Ask(fmt.Sprintf("%s %s %s %s", intro, surprise, pause(400), promptAnythingElse), promptAnythingElse), nil
}
