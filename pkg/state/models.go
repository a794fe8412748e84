// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import "time"

const (
	// FirstAdventDay and LastAdventDay bound the advent calendar windows.
	FirstAdventDay = 1
	LastAdventDay  = 24
)

// Document is the durable per-user record. It is created lazily on first
// access and never deleted; resets zero out sub-documents instead.
type Document struct {
	Letter       Letter         `json:"letter"`
	Trivia       TriviaProgress `json:"trivia"`
	StoriesRead  []string       `json:"storiesRead"`
	AdventOpened []int          `json:"adventOpened"`
	Stats        *VisitStats    `json:"stats,omitempty"`
}

// Letter is the wish-list sent to Santa.
// Gifts are stored lower-cased and never contain duplicates.
type Letter struct {
	Gifts     []string   `json:"gifts"`
	CreatedAt *time.Time `json:"createdAt"`
	SentAt    *time.Time `json:"sentAt"`
}

// TriviaProgress tracks answered trivia questions.
// CorrectAnswers never exceeds QuestionsAnswered.
type TriviaProgress struct {
	QuestionsAnswered int      `json:"questionsAnswered"`
	CorrectAnswers    int      `json:"correctAnswers"`
	AnsweredQuestions []string `json:"answeredQuestions"`
}

// VisitStats counts skill launches.
type VisitStats struct {
	Visits     int       `json:"visits"`
	FirstVisit time.Time `json:"firstVisit"`
	LastVisit  time.Time `json:"lastVisit"`
}

// IsEmpty reports whether the letter has no gifts.
func (l Letter) IsEmpty() bool {
	return len(l.Gifts) == 0
}

// IsSent reports whether the letter was already sent.
func (l Letter) IsSent() bool {
	return l.SentAt != nil
}
