package builtin

// Handler types, as referenced from the skill configuration file.
const (
	TypeLaunch          = "launch"
	TypeCountdown       = "countdown"
	TypeWriteLetter     = "write_letter"
	TypeAddGift         = "add_gift"
	TypeReadLetter      = "read_letter"
	TypeModifyLetter    = "modify_letter"
	TypeRemoveGift      = "remove_gift"
	TypeClearLetter     = "clear_letter"
	TypeSendLetter      = "send_letter"
	TypeTellStory       = "tell_story"
	TypeNextStory       = "next_story"
	TypeTrivia          = "trivia"
	TypeTriviaNext      = "trivia_next"
	TypeRestartTrivia   = "restart_trivia"
	TypeAnswer          = "answer"
	TypeSantaTracker    = "santa_tracker"
	TypeAdventCalendar  = "advent_calendar"
	TypeNaughtyOrNice   = "naughty_or_nice"
	TypeSantaMessage    = "santa_message"
	TypeGiftSuggestion  = "gift_suggestion"
	TypeChristmasSounds = "christmas_sounds"
	TypeHelp            = "help"
	TypeYes             = "yes"
	TypeNo              = "no"
	TypeCancelStop      = "cancel_stop"
	TypeFallback        = "fallback"
	TypeSessionEnded    = "session_ended"
)

// Intent names from the interaction model.
const (
	IntentCountdown       = "CountdownIntent"
	IntentWriteLetter     = "WriteLetterIntent"
	IntentAddGift         = "AddGiftIntent"
	IntentReadLetter      = "ReadLetterIntent"
	IntentModifyLetter    = "ModifyLetterIntent"
	IntentRemoveGift      = "RemoveGiftIntent"
	IntentClearLetter     = "ClearLetterIntent"
	IntentSendLetter      = "SendLetterIntent"
	IntentTellStory       = "TellStoryIntent"
	IntentNextStory       = "NextStoryIntent"
	IntentTrivia          = "TriviaIntent"
	IntentNextQuestion    = "NextQuestionIntent"
	IntentRestartTrivia   = "RestartTriviaIntent"
	IntentAnswer          = "AnswerIntent"
	IntentSantaTracker    = "SantaTrackerIntent"
	IntentAdventCalendar  = "AdventCalendarIntent"
	IntentNaughtyOrNice   = "NaughtyOrNiceIntent"
	IntentSantaMessage    = "SantaMessageIntent"
	IntentGiftSuggestion  = "GiftSuggestionIntent"
	IntentChristmasSounds = "ChristmasSoundsIntent"
	IntentHelp            = "AMAZON.HelpIntent"
	IntentYes             = "AMAZON.YesIntent"
	IntentNo              = "AMAZON.NoIntent"
	IntentCancel          = "AMAZON.CancelIntent"
	IntentStop            = "AMAZON.StopIntent"
	IntentFallback        = "AMAZON.FallbackIntent"
)

// Slot names.
const (
	SlotGift   = "gift"
	SlotAnswer = "answer"
	SlotPerson = "person"
)

const (
	promptWhatToDo     = "What would you like to do?"
	promptAnythingElse = "Is there anything else?"
)
