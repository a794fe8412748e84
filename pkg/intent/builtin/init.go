// Package builtin implements the skill's intent handlers.
package builtin

import (
	"github.com/AccelByte/extend-santa-skill/pkg/common"
	"github.com/AccelByte/extend-santa-skill/pkg/content"
	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/service"
	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

// Dependencies holds everything handlers need beyond the turn itself.
type Dependencies struct {
	Store   *service.Store
	Catalog *content.Catalog
	Random  common.Random
	Picker  *speech.Picker
}

// NewDependencies wires a phrase picker onto the given random source.
func NewDependencies(store *service.Store, catalog *content.Catalog, rnd common.Random) *Dependencies {
	return &Dependencies{
		Store:   store,
		Catalog: catalog,
		Random:  rnd,
		Picker:  speech.NewPicker(rnd),
	}
}

// RegisterHandlers registers all built-in handler types with the factory.
func RegisterHandlers(deps *Dependencies) {
	register := func(handlerType string, build func(config intent.HandlerConfig, deps *Dependencies) intent.Handler) {
		intent.RegisterHandlerType(handlerType, func(config intent.HandlerConfig) (intent.Handler, error) {
			return build(config, deps), nil
		})
	}

	register(TypeLaunch, NewLaunchHandler)
	register(TypeCountdown, NewCountdownHandler)

	register(TypeWriteLetter, NewWriteLetterHandler)
	register(TypeAddGift, NewAddGiftHandler)
	register(TypeReadLetter, NewReadLetterHandler)
	register(TypeModifyLetter, NewModifyLetterHandler)
	register(TypeRemoveGift, NewRemoveGiftHandler)
	register(TypeClearLetter, NewClearLetterHandler)
	register(TypeSendLetter, NewSendLetterHandler)

	register(TypeTellStory, NewTellStoryHandler)
	register(TypeNextStory, NewNextStoryHandler)

	register(TypeTrivia, NewTriviaHandler)
	register(TypeTriviaNext, NewTriviaNextHandler)
	register(TypeRestartTrivia, NewRestartTriviaHandler)
	register(TypeAnswer, NewAnswerHandler)

	register(TypeSantaTracker, NewSantaTrackerHandler)
	register(TypeAdventCalendar, NewAdventCalendarHandler)

	register(TypeNaughtyOrNice, NewNaughtyOrNiceHandler)
	register(TypeSantaMessage, NewSantaMessageHandler)
	register(TypeGiftSuggestion, NewGiftSuggestionHandler)
	register(TypeChristmasSounds, NewChristmasSoundsHandler)

	register(TypeHelp, NewHelpHandler)
	register(TypeYes, NewYesHandler)
	register(TypeNo, NewNoHandler)
	register(TypeCancelStop, NewCancelStopHandler)
	register(TypeFallback, NewFallbackHandler)
	register(TypeSessionEnded, NewSessionEndedHandler)
}
