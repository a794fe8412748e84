package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-santa-skill/pkg/common"
	"github.com/AccelByte/extend-santa-skill/pkg/content"
	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/skill"
	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

// LaunchHandler greets the user, counts the visit and teases the countdown.
type LaunchHandler struct {
	intent.BaseHandler
	deps         *Dependencies
	teaserLength int
}

func NewLaunchHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &LaunchHandler{
		BaseHandler:  intent.NewBaseHandler(config, "Launch", intent.RequestIs(skill.RequestLaunch)),
		deps:         deps,
		teaserLength: config.GetInt("teaser_length", 150),
	}
}

func (h *LaunchHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	stats, err := h.deps.Store.RecordVisit(ctx, in.UserID, in.Now)
	if err != nil {
		return nil, err
	}

	var greeting string
	if stats.Visits <= 1 {
		greeting = fmt.Sprintf("%s%s Ho ho ho! Welcome to Santa's magical world! %s I'm your Christmas helper and I can do lots of things for you. %s",
			speech.Bells, speech.SleighBells, pause(300), pause(200))
	} else {
		greeting = fmt.Sprintf("%s Ho ho ho! %s So happy to see you again! This is visit number %d. %s",
			speech.Bells, h.deps.Picker.Greeting(), stats.Visits, pause(300))
	}

	teaser := common.Truncate(speech.StripMarkup(content.CountdownMessage(in.Now)), h.teaserLength)
	menu := fmt.Sprintf("%s I can help you write your letter to Santa, tell you Christmas stories, play trivia, open the advent calendar, track Santa, and much more. %s %s",
		pause(400), pause(300), promptWhatToDo)

	return intent.Ask(greeting+teaser+menu,
		"You can say: write my letter, tell me a story, play trivia, open the advent calendar, or how long until Christmas?"), nil
}

// CountdownHandler says how long is left until Christmas Eve.
type CountdownHandler struct {
	intent.BaseHandler
}

func NewCountdownHandler(config intent.HandlerConfig, _ *Dependencies) intent.Handler {
	return &CountdownHandler{
		BaseHandler: intent.NewBaseHandler(config, "Countdown", intent.IntentIs(IntentCountdown)),
	}
}

func (h *CountdownHandler) Handle(_ context.Context, in *intent.Input) (*intent.Output, error) {
	return intent.Ask(content.CountdownMessage(in.Now),
		"Want to know anything else about Christmas? I can tell you a story, play trivia, or help you write your letter to Santa."), nil
}

// HelpHandler lists what the skill can do.
type HelpHandler struct {
	intent.BaseHandler
}

func NewHelpHandler(config intent.HandlerConfig, _ *Dependencies) intent.Handler {
	return &HelpHandler{
		BaseHandler: intent.NewBaseHandler(config, "Help", intent.IntentIs(IntentHelp)),
	}
}

func (h *HelpHandler) Handle(_ context.Context, _ *intent.Input) (*intent.Output, error) {
	text := fmt.Sprintf(`%s I'm Santa's helper and I can do lots of things! %s `+
		`I can tell you how long is left until Christmas Eve. `+
		`I can help you write your letter to Santa and send it to the North Pole. `+
		`I can tell you Christmas stories and play trivia with you. `+
		`Every day in December you can open a window of the advent calendar. `+
		`You can also ask where Santa is, whether you are on the nice list, for a message from Santa, or for gift ideas. %s %s`,
		speech.Bells, pause(300), pause(300), promptWhatToDo)
	return intent.Ask(text, promptWhatToDo), nil
}

// YesHandler continues trivia when a round is in progress, otherwise it
// asks what to do next.
type YesHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewYesHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &YesHandler{
		BaseHandler: intent.NewBaseHandler(config, "Yes", intent.IntentIs(IntentYes)),
		deps:        deps,
	}
}

func (h *YesHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	if in.Session.InTrivia() {
		return startTrivia(ctx, h.deps, in)
	}
	return intent.Ask("Great! What would you like to do? I can tell you a story, play trivia, or help you with your letter to Santa.",
		"What would you prefer?"), nil
}

// NoHandler ends the conversation politely.
type NoHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewNoHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &NoHandler{
		BaseHandler: intent.NewBaseHandler(config, "No", intent.IntentIs(IntentNo)),
		deps:        deps,
	}
}

func (h *NoHandler) Handle(_ context.Context, in *intent.Input) (*intent.Output, error) {
	in.Session.Enter(skill.ModeIdle)
	return intent.Tell(fmt.Sprintf("%s Okay. If you need anything, I'll be right here. %s",
		speech.Bells, h.deps.Picker.Farewell())), nil
}

// CancelStopHandler says goodbye.
type CancelStopHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewCancelStopHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &CancelStopHandler{
		BaseHandler: intent.NewBaseHandler(config, "Cancel and Stop", intent.IntentIs(IntentCancel, IntentStop)),
		deps:        deps,
	}
}

func (h *CancelStopHandler) Handle(_ context.Context, in *intent.Input) (*intent.Output, error) {
	in.Session.Enter(skill.ModeIdle)
	return intent.Tell(fmt.Sprintf("%s %s %s", speech.Bells, h.deps.Picker.Farewell(), speech.SleighBells)), nil
}

// FallbackHandler answers utterances no other intent matched.
type FallbackHandler struct {
	intent.BaseHandler
}

func NewFallbackHandler(config intent.HandlerConfig, _ *Dependencies) intent.Handler {
	return &FallbackHandler{
		BaseHandler: intent.NewBaseHandler(config, "Fallback", intent.IntentIs(IntentFallback)),
	}
}

func (h *FallbackHandler) Handle(_ context.Context, _ *intent.Input) (*intent.Output, error) {
	text := fmt.Sprintf("Hmm, I didn't quite get that. %s You can ask me for the Christmas countdown, to write your letter, for a story, for trivia, or for the advent calendar. What would you prefer?",
		pause(200))
	return intent.Ask(text, promptWhatToDo), nil
}

// SessionEndedHandler acknowledges the end of a session. There is nothing
// to say and nothing to persist.
type SessionEndedHandler struct {
	intent.BaseHandler
}

func NewSessionEndedHandler(config intent.HandlerConfig, _ *Dependencies) intent.Handler {
	return &SessionEndedHandler{
		BaseHandler: intent.NewBaseHandler(config, "Session Ended", intent.RequestIs(skill.RequestSessionEnded)),
	}
}

func (h *SessionEndedHandler) Handle(_ context.Context, _ *intent.Input) (*intent.Output, error) {
	return &intent.Output{}, nil
}
