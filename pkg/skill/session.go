package skill

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-santa-skill/pkg/content"
)

// Mode is where the conversation currently is. Exactly one mode is active,
// so contradictory flag combinations cannot be represented.
type Mode int

const (
	ModeIdle Mode = iota
	ModeWritingLetter
	ModeModifyingLetter
	ModePlayingTrivia
	ModeAwaitingTriviaAnswer
)

var modeNames = map[Mode]string{
	ModeIdle:                 "idle",
	ModeWritingLetter:        "writing_letter",
	ModeModifyingLetter:      "modifying_letter",
	ModePlayingTrivia:        "playing_trivia",
	ModeAwaitingTriviaAnswer: "awaiting_trivia_answer",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "idle"
}

// ParseMode maps an encoded mode back, defaulting to ModeIdle.
func ParseMode(s string) Mode {
	for m, name := range modeNames {
		if name == s {
			return m
		}
	}
	return ModeIdle
}

// SessionState is the ephemeral state of one conversation. It lives in the
// envelope's session attributes and is never persisted.
type SessionState struct {
	Mode        Mode
	Question    *content.Question
	LastStoryID string
}

// NewSessionState returns an idle session.
func NewSessionState() *SessionState {
	return &SessionState{Mode: ModeIdle}
}

// Enter switches to a mode that carries no pending question.
func (s *SessionState) Enter(mode Mode) {
	s.Mode = mode
	s.Question = nil
	if mode == ModeAwaitingTriviaAnswer {
		s.Mode = ModePlayingTrivia
	}
}

// AwaitAnswer switches to waiting for an answer to q. A copy of q is kept.
func (s *SessionState) AwaitAnswer(q content.Question) {
	q.Options = append([]string(nil), q.Options...)
	s.Mode = ModeAwaitingTriviaAnswer
	s.Question = &q
}

// PendingQuestion returns the question awaiting an answer, if any.
func (s *SessionState) PendingQuestion() (content.Question, bool) {
	if s.Mode != ModeAwaitingTriviaAnswer || s.Question == nil {
		return content.Question{}, false
	}
	return *s.Question, true
}

// InTrivia reports whether a trivia game is in progress.
func (s *SessionState) InTrivia() bool {
	return s.Mode == ModePlayingTrivia || s.Mode == ModeAwaitingTriviaAnswer
}

type sessionAttributes struct {
	Mode            string            `json:"mode,omitempty"`
	CurrentQuestion *content.Question `json:"currentQuestion,omitempty"`
	LastStoryID     string            `json:"lastStoryId,omitempty"`
}

// DecodeSession reads the session state out of envelope attributes.
// Missing or malformed attributes decode to an idle session.
func DecodeSession(attrs map[string]interface{}) *SessionState {
	state := NewSessionState()
	if len(attrs) == 0 {
		return state
	}

	raw, err := json.Marshal(attrs)
	if err != nil {
		logrus.Warnf("failed to read session attributes: %v", err)
		return state
	}
	var decoded sessionAttributes
	if err := json.Unmarshal(raw, &decoded); err != nil {
		logrus.Warnf("failed to decode session attributes: %v", err)
		return state
	}

	state.Mode = ParseMode(decoded.Mode)
	state.LastStoryID = decoded.LastStoryID
	if state.Mode == ModeAwaitingTriviaAnswer {
		if decoded.CurrentQuestion == nil {
			state.Mode = ModePlayingTrivia
		} else {
			state.Question = decoded.CurrentQuestion
		}
	}
	return state
}

// Encode renders the session state as envelope attributes.
func (s *SessionState) Encode() map[string]interface{} {
	attrs := map[string]interface{}{
		"mode": s.Mode.String(),
	}
	if q, ok := s.PendingQuestion(); ok {
		attrs["currentQuestion"] = map[string]interface{}{
			"id":            q.ID,
			"question":      q.Question,
			"options":       append([]string(nil), q.Options...),
			"correctAnswer": q.CorrectAnswer,
			"explanation":   q.Explanation,
		}
	}
	if s.LastStoryID != "" {
		attrs["lastStoryId"] = s.LastStoryID
	}
	return attrs
}
