package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/AccelByte/extend-santa-skill/pkg/content"
	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

// NaughtyOrNiceHandler checks Santa's list.
type NaughtyOrNiceHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewNaughtyOrNiceHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &NaughtyOrNiceHandler{
		BaseHandler: intent.NewBaseHandler(config, "Naughty or Nice", intent.IntentIs(IntentNaughtyOrNice)),
		deps:        deps,
	}
}

func (h *NaughtyOrNiceHandler) Handle(_ context.Context, _ *intent.Input) (*intent.Output, error) {
	verdict := h.deps.Picker.Pick(h.deps.Catalog.NiceListResponses())
	return intent.Ask(fmt.Sprintf("%s%s %s", speech.Bells, speech.Magic, verdict), promptAnythingElse), nil
}

// SantaMessageHandler plays a message from Santa.
type SantaMessageHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewSantaMessageHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &SantaMessageHandler{
		BaseHandler: intent.NewBaseHandler(config, "Santa Message", intent.IntentIs(IntentSantaMessage)),
		deps:        deps,
	}
}

func (h *SantaMessageHandler) Handle(_ context.Context, _ *intent.Input) (*intent.Output, error) {
	message := h.deps.Picker.Pick(h.deps.Catalog.SantaMessages())
	return intent.Ask(fmt.Sprintf("%s %s", speech.Bells, speech.SantaVoice(message)), "Do you want another message from Santa?"), nil
}

// GiftSuggestionHandler suggests gifts for a kind of person.
type GiftSuggestionHandler struct {
	intent.BaseHandler
	deps  *Dependencies
	count int
}

func NewGiftSuggestionHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &GiftSuggestionHandler{
		BaseHandler: intent.NewBaseHandler(config, "Gift Suggestion", intent.IntentIs(IntentGiftSuggestion)),
		deps:        deps,
		count:       config.GetInt("count", 3),
	}
}

func (h *GiftSuggestionHandler) Handle(_ context.Context, in *intent.Input) (*intent.Output, error) {
	person := strings.ToLower(in.Slot(SlotPerson))
	pool, _ := h.deps.Catalog.GiftSuggestions(person)
	ideas := content.SuggestGifts(pool, h.count, h.deps.Random)

	who := speech.Escape(person)
	if who == "" {
		who = "a " + content.DefaultGiftCategory
	}

	text := fmt.Sprintf("%s Gift ideas for %s: %s %s. %s Do you like these ideas?",
		speech.Magic, who, pause(200), strings.Join(ideas, ", "+pause(200)), pause(300))
	return intent.Ask(text, "Do you want more suggestions?"), nil
}

// ChristmasSoundsHandler plays festive sounds.
type ChristmasSoundsHandler struct {
	intent.BaseHandler
}

func NewChristmasSoundsHandler(config intent.HandlerConfig, _ *Dependencies) intent.Handler {
	return &ChristmasSoundsHandler{
		BaseHandler: intent.NewBaseHandler(config, "Christmas Sounds", intent.IntentIs(IntentChristmasSounds)),
	}
}

func (h *ChristmasSoundsHandler) Handle(_ context.Context, _ *intent.Input) (*intent.Output, error) {
	text := fmt.Sprintf("%s%s Ho ho ho! %s %s%s Merry Christmas!", speech.SleighBells, speech.Bells, pause(300), speech.HoHoHo, speech.Magic)
	return intent.Ask(text, "What else would you like to hear?"), nil
}
