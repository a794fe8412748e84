package skill

import (
	"encoding/json"
	"testing"

	"github.com/AccelByte/extend-santa-skill/pkg/content"
)

// roundTrip sends attributes through JSON the way the platform echoes them.
func roundTrip(t *testing.T, attrs map[string]interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(attrs)
	if err != nil {
		t.Fatalf("failed to marshal attributes: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("failed to unmarshal attributes: %v", err)
	}
	return out
}

func TestSessionState_RoundTrip(t *testing.T) {
	q := content.Question{
		ID:            "reindeer-count",
		Question:      "How many reindeer?",
		Options:       []string{"Six", "Eight", "Nine", "Twelve"},
		CorrectAnswer: 3,
		Explanation:   "Nine with Rudolph.",
	}

	state := NewSessionState()
	state.AwaitAnswer(q)
	state.LastStoryID = "santas-lost-boot"

	decoded := DecodeSession(roundTrip(t, state.Encode()))

	if decoded.Mode != ModeAwaitingTriviaAnswer {
		t.Errorf("Mode = %v, expected %v", decoded.Mode, ModeAwaitingTriviaAnswer)
	}
	got, ok := decoded.PendingQuestion()
	if !ok {
		t.Fatal("PendingQuestion() reported no question")
	}
	if got.ID != q.ID || got.CorrectAnswer != q.CorrectAnswer || len(got.Options) != 4 {
		t.Errorf("PendingQuestion() = %+v, expected %+v", got, q)
	}
	if decoded.LastStoryID != "santas-lost-boot" {
		t.Errorf("LastStoryID = %s, expected santas-lost-boot", decoded.LastStoryID)
	}
}

func TestDecodeSession(t *testing.T) {
	tests := []struct {
		name     string
		attrs    map[string]interface{}
		expected Mode
		question bool
	}{
		{name: "nil attributes", attrs: nil, expected: ModeIdle},
		{name: "unknown mode", attrs: map[string]interface{}{"mode": "dancing"}, expected: ModeIdle},
		{name: "writing letter", attrs: map[string]interface{}{"mode": "writing_letter"}, expected: ModeWritingLetter},
		{
			name:     "awaiting answer without question",
			attrs:    map[string]interface{}{"mode": "awaiting_trivia_answer"},
			expected: ModePlayingTrivia,
		},
		{
			name:     "malformed question",
			attrs:    map[string]interface{}{"mode": "writing_letter", "currentQuestion": "oops"},
			expected: ModeIdle,
		},
		{
			name: "awaiting answer with question",
			attrs: map[string]interface{}{
				"mode":            "awaiting_trivia_answer",
				"currentQuestion": map[string]interface{}{"id": "q1", "options": []interface{}{"a", "b", "c", "d"}, "correctAnswer": 2},
			},
			expected: ModeAwaitingTriviaAnswer,
			question: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := DecodeSession(tt.attrs)
			if state.Mode != tt.expected {
				t.Errorf("Mode = %v, expected %v", state.Mode, tt.expected)
			}
			if _, ok := state.PendingQuestion(); ok != tt.question {
				t.Errorf("PendingQuestion() ok = %v, expected %v", ok, tt.question)
			}
		})
	}
}

func TestSessionState_Enter(t *testing.T) {
	state := NewSessionState()
	state.AwaitAnswer(content.Question{ID: "q1"})

	state.Enter(ModePlayingTrivia)
	if _, ok := state.PendingQuestion(); ok {
		t.Error("pending question survived leaving the answer mode")
	}
	if !state.InTrivia() {
		t.Error("InTrivia() = false while playing trivia")
	}

	state.Enter(ModeAwaitingTriviaAnswer)
	if state.Mode != ModePlayingTrivia {
		t.Errorf("Mode = %v, expected %v without a question", state.Mode, ModePlayingTrivia)
	}

	state.Enter(ModeWritingLetter)
	if state.InTrivia() {
		t.Error("InTrivia() = true while writing a letter")
	}
}

func TestSessionState_AwaitAnswerCopiesQuestion(t *testing.T) {
	options := []string{"a", "b", "c", "d"}
	state := NewSessionState()
	state.AwaitAnswer(content.Question{ID: "q1", Options: options})

	options[0] = "changed"
	q, _ := state.PendingQuestion()
	if q.Options[0] != "a" {
		t.Errorf("Options[0] = %s, expected a", q.Options[0])
	}
}
