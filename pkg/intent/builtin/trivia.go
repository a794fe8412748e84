package builtin

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-santa-skill/pkg/content"
	"github.com/AccelByte/extend-santa-skill/pkg/intent"
	"github.com/AccelByte/extend-santa-skill/pkg/skill"
	"github.com/AccelByte/extend-santa-skill/pkg/speech"
)

// startTrivia asks a question the user hasn't answered yet. When every
// question has been answered, the answered set is reset first.
func startTrivia(ctx context.Context, deps *Dependencies, in *intent.Input) (*intent.Output, error) {
	progress := deps.Store.Trivia(ctx, in.UserID)
	q, exhausted := content.PickUnansweredQuestion(deps.Catalog.Questions(), progress.AnsweredQuestions, deps.Random)
	if exhausted {
		logrus.Debugf("user %s answered every question, resetting answered set", in.UserID)
		if err := deps.Store.ResetAnsweredQuestions(ctx, in.UserID); err != nil {
			return nil, err
		}
	}

	in.Session.AwaitAnswer(q)

	intro := fmt.Sprintf("%s Let's play Christmas trivia! %s", speech.Bells, pause(300))
	if progress.QuestionsAnswered > 0 {
		intro += fmt.Sprintf("So far you've answered %s and got %d right. %s",
			speech.Count(progress.QuestionsAnswered, "question", "questions"), progress.CorrectAnswers, pause(300))
	}

	options := content.FormatOptions(q.Options)
	text := fmt.Sprintf("%sHere's your question: %s %s %s The options are: %s. %s What's your answer? You can say the number of the option.",
		intro, pause(400), q.Question, pause(600), options, pause(300))
	return intent.Ask(text, fmt.Sprintf("The options are: %s. Which one do you choose?", options)), nil
}

// TriviaHandler starts a round of trivia.
type TriviaHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewTriviaHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &TriviaHandler{
		BaseHandler: intent.NewBaseHandler(config, "Trivia", intent.IntentIs(IntentTrivia)),
		deps:        deps,
	}
}

func (h *TriviaHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	return startTrivia(ctx, h.deps, in)
}

// TriviaNextHandler asks another question, or offers a replay once every
// question has been answered.
type TriviaNextHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewTriviaNextHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &TriviaNextHandler{
		BaseHandler: intent.NewBaseHandler(config, "Next Question", intent.IntentIs(IntentNextQuestion)),
		deps:        deps,
	}
}

func (h *TriviaNextHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	progress := h.deps.Store.Trivia(ctx, in.UserID)
	if len(content.UnansweredQuestions(h.deps.Catalog.Questions(), progress.AnsweredQuestions)) == 0 {
		in.Session.Enter(skill.ModePlayingTrivia)
		text := fmt.Sprintf(`%s You've answered every question I have! %s Your score is %d of %d. %s Do you want to play again? Say "yes" to shuffle the questions, or "restart trivia" to start from zero.`,
			speech.Celebration, pause(300), progress.CorrectAnswers, progress.QuestionsAnswered, pause(300))
		return intent.Ask(text, "Do you want to play trivia again?"), nil
	}

	return startTrivia(ctx, h.deps, in)
}

// RestartTriviaHandler wipes the trivia score and starts over.
type RestartTriviaHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewRestartTriviaHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &RestartTriviaHandler{
		BaseHandler: intent.NewBaseHandler(config, "Restart Trivia", intent.IntentIs(IntentRestartTrivia)),
		deps:        deps,
	}
}

func (h *RestartTriviaHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	if err := h.deps.Store.RestartTrivia(ctx, in.UserID); err != nil {
		return nil, err
	}
	return startTrivia(ctx, h.deps, in)
}

// AnswerHandler checks an answer to the pending question.
type AnswerHandler struct {
	intent.BaseHandler
	deps *Dependencies
}

func NewAnswerHandler(config intent.HandlerConfig, deps *Dependencies) intent.Handler {
	return &AnswerHandler{
		BaseHandler: intent.NewBaseHandler(config, "Answer", intent.IntentIs(IntentAnswer)),
		deps:        deps,
	}
}

var answerWords = map[string]int{"one": 1, "two": 2, "three": 3, "four": 4}

// parseAnswer accepts "2" or "two". Returns 0 when the value is unusable.
func parseAnswer(value string) int {
	value = strings.ToLower(strings.TrimSpace(value))
	if n, ok := answerWords[value]; ok {
		return n
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > content.TriviaOptionCount {
		return 0
	}
	return n
}

func (h *AnswerHandler) Handle(ctx context.Context, in *intent.Input) (*intent.Output, error) {
	q, ok := in.Session.PendingQuestion()
	if !ok {
		text := fmt.Sprintf(`There's no active question. %s Do you want to start playing trivia? Just say "play trivia".`, pause(200))
		return intent.Ask(text, "Do you want to play Christmas trivia?"), nil
	}

	answer := parseAnswer(in.Slot(SlotAnswer))
	if answer == 0 {
		return intent.Ask("I didn't understand your answer. Please say a number from 1 to 4.",
			"What's your answer? Say a number from 1 to 4."), nil
	}

	correct := answer == q.CorrectAnswer
	progress, err := h.deps.Store.RecordAnswer(ctx, in.UserID, q.ID, correct)
	if err != nil {
		return nil, err
	}
	in.Session.Enter(skill.ModePlayingTrivia)

	var text string
	if correct {
		text = h.deps.Picker.Celebration()
	} else {
		text = fmt.Sprintf("%s %s %s The correct answer was option %d: %s.",
			speech.Wind, speech.Emphasize("Oh, that's not right.", "moderate"), pause(200), q.CorrectAnswer, q.CorrectOption())
	}
	text += fmt.Sprintf(" %s %s %s Your score is %d of %d. %s Do you want another question?",
		pause(300), q.Explanation, pause(400), progress.CorrectAnswers, progress.QuestionsAnswered, pause(300))

	return intent.Ask(text, "Do you want another trivia question?"), nil
}
