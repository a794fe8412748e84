package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/skill"
	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

var pause = speech.Pause

func giftCount(n int) string {
	return speech.Count(n, "gift", "gifts")
}

// giftList renders stored gifts for speech.
func giftList(gifts []string) string {
	return speech.Escape(speech.FormatList(gifts))
}

// WriteLetterHandler starts or resumes writing the letter to Santa.
type WriteLetterHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewWriteLetterHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &WriteLetterHandler{
		BaseHandler: intent.NewBaseHandler(config, "Write Letter", intent.IntentIs(IntentWriteLetter)),
		deps:        deps,
	}
}

func (h *WriteLetterHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	letter := h.deps.Store.Letter(ctx, in.UserID)

	var text string
	if n := len(letter.Gifts); n > 0 {
		text = fmt.Sprintf("%s Hello! I see you already started a letter with %s. %s Do you want to add more gifts to your list? Just tell me what you would like to ask Santa for.",
			speech.Bells, giftCount(n), pause(300))
	} else {
		text = fmt.Sprintf(`%s How exciting! %s Let's write your letter to Santa Claus. %s Tell me which gift you would like to ask for. You can say something like "I want a bicycle" or "add a video game". %s What will you ask Santa for?`,
			speech.Bells, pause(200), pause(300), pause(300))
	}

	in.Session.Enter(skill.ModeWritingLetter)
	return intent.Ask(text, "Which gift would you like to add to your letter to Santa?"), nil
}

// AddGiftHandler adds the spoken gift to the letter.
type AddGiftHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewAddGiftHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &AddGiftHandler{
		BaseHandler: intent.NewBaseHandler(config, "Add Gift", intent.IntentIs(IntentAddGift)),
		deps:        deps,
	}
}

func (h *AddGiftHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	gift := in.Slot(SlotGift)
	if gift == "" {
		return intent.Ask("I didn't catch which gift you want to add. Can you tell me again?",
			"Which gift would you like to ask Santa for?"), nil
	}

	added, count, err := h.deps.Store.AddGift(ctx, in.UserID, gift, in.Now)
	if err != nil {
		return nil, err
	}

	var text string
	if added {
		text = fmt.Sprintf("%s %s %s Now you have %s on your list. Do you want to add something else, or shall I read your letter?",
			speech.Magic, h.deps.Picker.GiftConfirmation(gift), pause(300), giftCount(count))
	} else {
		text = fmt.Sprintf(`It looks like "%s" is already in your letter. Do you want to add a different gift?`, speech.Escape(gift))
	}
	return intent.Ask(text, "Do you want to add another gift or read your letter?"), nil
}

// ReadLetterHandler reads the letter back.
type ReadLetterHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewReadLetterHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &ReadLetterHandler{
		BaseHandler: intent.NewBaseHandler(config, "Read Letter", intent.IntentIs(IntentReadLetter)),
		deps:        deps,
	}
}

func (h *ReadLetterHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	letter := h.deps.Store.Letter(ctx, in.UserID)

	if letter.IsEmpty() {
		text := fmt.Sprintf("%s You haven't written anything in your letter to Santa yet. %s Do you want to start now? Just tell me which gift you would like to ask for.",
			speech.Bells, pause(300))
		return intent.Ask(text, "Which gift would you like to ask Santa for?"), nil
	}

	status := ""
	if letter.IsSent() {
		status = "This letter was already sent to Santa. " + pause(200)
	}

	text := fmt.Sprintf(`%s%s Here is your letter to Santa Claus: %s "Dear Santa, this year I have been very good and I would like to ask for: %s %s. %s With love, and merry Christmas." %s %s Your letter has %s. Do you want to change something, add more gifts, or send your letter to Santa?`,
		speech.Bells, speech.Magic, pause(500), pause(300), giftList(letter.Gifts), pause(200), pause(500), status, giftCount(len(letter.Gifts)))
	return intent.Ask(text, "Do you want to change your letter, add something else, or send it to Santa?"), nil
}

// ModifyLetterHandler lists the gifts and explains how to change them.
type ModifyLetterHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewModifyLetterHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &ModifyLetterHandler{
		BaseHandler: intent.NewBaseHandler(config, "Modify Letter", intent.IntentIs(IntentModifyLetter)),
		deps:        deps,
	}
}

func (h *ModifyLetterHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	letter := h.deps.Store.Letter(ctx, in.UserID)

	if letter.IsEmpty() {
		return intent.Ask("Your letter is still empty. Do you want to start adding gifts? Just tell me what you would like to ask for.",
			"Which gift do you want to add?"), nil
	}

	text := fmt.Sprintf(`%s Sure! Let's change your letter. %s Right now you have: %s. %s You can say "add" followed by a gift to include something new, or "remove" followed by a gift you no longer want. You can also say "clear everything" to start over. What would you like to do?`,
		speech.Bells, pause(300), giftList(letter.Gifts), pause(400))

	in.Session.Enter(skill.ModeModifyingLetter)
	return intent.Ask(text, "What change do you want to make to your letter?"), nil
}

// RemoveGiftHandler removes the first gift matching the spoken one.
type RemoveGiftHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewRemoveGiftHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &RemoveGiftHandler{
		BaseHandler: intent.NewBaseHandler(config, "Remove Gift", intent.IntentIs(IntentRemoveGift)),
		deps:        deps,
	}
}

func (h *RemoveGiftHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	gift := in.Slot(SlotGift)
	if gift == "" {
		return intent.Ask("I didn't catch which gift you want to remove. Can you tell me again?",
			"Which gift do you want to remove from your list?"), nil
	}

	removed, found, remaining, err := h.deps.Store.RemoveGift(ctx, in.UserID, gift)
	if err != nil {
		return nil, err
	}

	var text string
	switch {
	case !found:
		text = fmt.Sprintf(`I couldn't find "%s" in your letter. %s Maybe it was written differently? Tell me exactly which gift you want to remove.`,
			speech.Escape(gift), pause(200))
	case remaining > 0:
		text = fmt.Sprintf(`%s Done! I removed "%s" from your letter. %s You have %s left on your list. Do you want to make more changes?`,
			speech.Magic, speech.Escape(removed), pause(200), giftCount(remaining))
	default:
		text = fmt.Sprintf(`I removed "%s". Your letter is now empty. Do you want to add new gifts?`, speech.Escape(removed))
	}
	return intent.Ask(text, "Do you want to do anything else with your letter?"), nil
}

// ClearLetterHandler throws the letter away.
type ClearLetterHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewClearLetterHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &ClearLetterHandler{
		BaseHandler: intent.NewBaseHandler(config, "Clear Letter", intent.IntentIs(IntentClearLetter)),
		deps:        deps,
	}
}

func (h *ClearLetterHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	if err := h.deps.Store.ClearLetter(ctx, in.UserID); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s I erased your letter completely. %s Now you have a brand new, empty letter. Do you want to start writing your new gift list?",
		speech.Magic, pause(300))
	return intent.Ask(text, "Do you want to add gifts to your new letter?"), nil
}

// SendLetterHandler sends the letter to Santa, once.
type SendLetterHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewSendLetterHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &SendLetterHandler{
		BaseHandler: intent.NewBaseHandler(config, "Send Letter", intent.IntentIs(IntentSendLetter)),
		deps:        deps,
	}
}

func (h *SendLetterHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	letter, sent, err := h.deps.Store.SendLetter(ctx, in.UserID, in.Now)
	if err != nil {
		return nil, err
	}

	if !sent {
		if letter.IsEmpty() {
			return intent.Ask("Your letter is empty. You need to add some gifts before sending it to Santa. What would you like to ask for?",
				"Which gift do you want to add to your letter?"), nil
		}
		text := fmt.Sprintf("%s Your letter was already sent to Santa Claus. The elves are reading it right now. %s If you want to make changes, you can still modify your letter.",
			speech.Bells, pause(300))
		return intent.Ask(text, "Do you want to modify your letter?"), nil
	}

	text := fmt.Sprintf("%s%s Your letter has been sent! %s The messenger reindeer will fly it all the way to the North Pole. %s Santa Claus will receive your letter with your list of %s: %s. %s %s Ho ho ho! Santa will read your letter with lots of love. Remember to keep being good!",
		speech.SleighBells, speech.Magic, pause(300), pause(200), giftCount(len(letter.Gifts)), giftList(letter.Gifts), pause(400), speech.Bells)
	in.Session.Enter(skill.ModeIdle)
	return intent.Ask(text, "Is there anything else I can help you with?"), nil
}
