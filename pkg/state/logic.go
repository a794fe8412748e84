// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrInvalidAdventDay is returned when a day outside the advent calendar is opened.
var ErrInvalidAdventDay = errors.New("advent day out of range")

// NewDocument returns a defaulted document for a user seen for the first time.
func NewDocument() *Document {
	return &Document{
		Letter:       EmptyLetter(),
		Trivia:       TriviaProgress{AnsweredQuestions: []string{}},
		StoriesRead:  []string{},
		AdventOpened: []int{},
	}
}

// EmptyLetter returns a letter with no gifts and no timestamps.
func EmptyLetter() Letter {
	return Letter{Gifts: []string{}}
}

// Normalize fills nil collections left by partially written documents.
func Normalize(doc *Document) *Document {
	if doc == nil {
		return NewDocument()
	}
	if doc.Letter.Gifts == nil {
		doc.Letter.Gifts = []string{}
	}
	if doc.Trivia.AnsweredQuestions == nil {
		doc.Trivia.AnsweredQuestions = []string{}
	}
	if doc.StoriesRead == nil {
		doc.StoriesRead = []string{}
	}
	if doc.AdventOpened == nil {
		doc.AdventOpened = []int{}
	}
	return doc
}

// NormalizeGift lower-cases and trims a gift as spoken by the user.
func NormalizeGift(gift string) string {
	return strings.ToLower(strings.TrimSpace(gift))
}

// AddGift appends gift to the letter unless already present.
// Returns true if the letter changed. CreatedAt is stamped on the first gift.
func AddGift(doc *Document, gift string, now time.Time) bool {
	normalized := NormalizeGift(gift)
	if normalized == "" {
		return false
	}

	for _, g := range doc.Letter.Gifts {
		if g == normalized {
			logrus.Debugf("gift %q already in letter", normalized)
			return false
		}
	}

	doc.Letter.Gifts = append(doc.Letter.Gifts, normalized)
	if doc.Letter.CreatedAt == nil {
		createdAt := now
		doc.Letter.CreatedAt = &createdAt
	}
	return true
}

// FindGift returns the index of the first stored gift that contains the
// query, or is contained by it, ignoring case. Ties resolve to store order.
func FindGift(gifts []string, query string) int {
	q := NormalizeGift(query)
	if q == "" {
		return -1
	}
	for i, g := range gifts {
		if strings.Contains(g, q) || strings.Contains(q, g) {
			return i
		}
	}
	return -1
}

// RemoveGift removes the first gift matching query (see FindGift).
// Returns the removed gift and whether anything was removed.
func RemoveGift(doc *Document, query string) (string, bool) {
	idx := FindGift(doc.Letter.Gifts, query)
	if idx < 0 {
		return "", false
	}

	removed := doc.Letter.Gifts[idx]
	gifts := make([]string, 0, len(doc.Letter.Gifts)-1)
	gifts = append(gifts, doc.Letter.Gifts[:idx]...)
	gifts = append(gifts, doc.Letter.Gifts[idx+1:]...)
	doc.Letter.Gifts = gifts
	return removed, true
}

// ClearLetter resets the whole letter, including the sent stamp.
func ClearLetter(doc *Document) {
	doc.Letter = EmptyLetter()
}

// MarkLetterSent stamps SentAt once. Returns false if the letter was
// empty or already sent.
func MarkLetterSent(doc *Document, now time.Time) bool {
	if doc.Letter.IsEmpty() || doc.Letter.IsSent() {
		return false
	}
	sentAt := now
	doc.Letter.SentAt = &sentAt
	return true
}

// RecordAnswer counts an attempt on questionID and adds it to the answered set.
func RecordAnswer(doc *Document, questionID string, correct bool) {
	doc.Trivia.QuestionsAnswered++
	if correct {
		doc.Trivia.CorrectAnswers++
	}
	if !containsString(doc.Trivia.AnsweredQuestions, questionID) {
		doc.Trivia.AnsweredQuestions = append(doc.Trivia.AnsweredQuestions, questionID)
	}
}

// ResetAnsweredQuestions empties the answered set but keeps the score.
func ResetAnsweredQuestions(doc *Document) {
	doc.Trivia.AnsweredQuestions = []string{}
}

// ResetTrivia zeroes all trivia progress.
func ResetTrivia(doc *Document) {
	doc.Trivia = TriviaProgress{AnsweredQuestions: []string{}}
}

// MarkStoryRead adds storyID to the read set. Returns true if newly added.
func MarkStoryRead(doc *Document, storyID string) bool {
	if containsString(doc.StoriesRead, storyID) {
		return false
	}
	doc.StoriesRead = append(doc.StoriesRead, storyID)
	return true
}

// OpenAdventDay marks an advent window as opened. Returns true if the
// window had not been opened before.
func OpenAdventDay(doc *Document, day int) (bool, error) {
	if day < FirstAdventDay || day > LastAdventDay {
		return false, ErrInvalidAdventDay
	}
	for _, d := range doc.AdventOpened {
		if d == day {
			return false, nil
		}
	}
	doc.AdventOpened = append(doc.AdventOpened, day)
	return true, nil
}

// RecordVisit increments the visit counter, creating stats on first use.
func RecordVisit(doc *Document, now time.Time) VisitStats {
	if doc.Stats == nil {
		doc.Stats = &VisitStats{FirstVisit: now}
	}
	doc.Stats.Visits++
	doc.Stats.LastVisit = now
	return *doc.Stats
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
