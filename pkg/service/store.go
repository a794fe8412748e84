package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-santa-skill/pkg/state"
)

// Store exposes read-merge-write accessors over a DocumentStore.
//
// Reads never fail: a transport error is logged and treated as an absent
// document. Writes propagate transport errors. A mutation whose load failed
// is not written back, so an unreadable document is never replaced by a
// defaulted one; it fails with ErrDocumentUnavailable instead.
//
// There is no locking. Two concurrent turns for the same user both read,
// mutate and write the whole document, so the last write wins and the
// other update is lost.
type Store struct {
	docs DocumentStore
}

func NewStore(docs DocumentStore) *Store {
	return &Store{docs: docs}
}

// ErrDocumentUnavailable is returned by mutations when the stored document
// could not be read.
var ErrDocumentUnavailable = errors.New("document unavailable")

// Document returns the user's document, defaulted when absent or unreadable.
func (s *Store) Document(ctx context.Context, userID string) *state.Document {
	doc, _ := s.load(ctx, userID)
	return doc
}

// load returns the defaulted document along with the transport error, if any.
func (s *Store) load(ctx context.Context, userID string) (*state.Document, error) {
	doc, err := s.docs.Load(ctx, userID)
	if err != nil {
		logrus.Warnf("failed to load document for user %s, using defaults: %v", userID, err)
		return state.NewDocument(), err
	}
	return state.Normalize(doc), nil
}

func (s *Store) put(ctx context.Context, userID string, doc *state.Document) error {
	if err := s.docs.Save(ctx, userID, doc); err != nil {
		return fmt.Errorf("failed to save document for user %s: %w", userID, err)
	}
	return nil
}

// update loads the document, applies fn and writes it back when fn reports
// a change.
func (s *Store) update(ctx context.Context, userID string, fn func(doc *state.Document) bool) (*state.Document, error) {
	doc, loadErr := s.load(ctx, userID)
	if !fn(doc) {
		return doc, nil
	}
	if loadErr != nil {
		return nil, fmt.Errorf("refusing to overwrite document for user %s: %w: %v", userID, ErrDocumentUnavailable, loadErr)
	}
	if err := s.put(ctx, userID, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) Letter(ctx context.Context, userID string) state.Letter {
	return s.Document(ctx, userID).Letter
}

// AddGift adds gift to the letter. It returns whether the gift was new and
// the resulting gift count.
func (s *Store) AddGift(ctx context.Context, userID, gift string, now time.Time) (bool, int, error) {
	var added bool
	doc, err := s.update(ctx, userID, func(doc *state.Document) bool {
		added = state.AddGift(doc, gift, now)
		return added
	})
	if err != nil {
		return false, 0, err
	}
	return added, len(doc.Letter.Gifts), nil
}

// RemoveGift removes the first gift matching query. It returns the removed
// gift, whether one was found and the remaining count.
func (s *Store) RemoveGift(ctx context.Context, userID, query string) (string, bool, int, error) {
	var (
		removed string
		found   bool
	)
	doc, err := s.update(ctx, userID, func(doc *state.Document) bool {
		removed, found = state.RemoveGift(doc, query)
		return found
	})
	if err != nil {
		return "", false, 0, err
	}
	return removed, found, len(doc.Letter.Gifts), nil
}

func (s *Store) ClearLetter(ctx context.Context, userID string) error {
	_, err := s.update(ctx, userID, func(doc *state.Document) bool {
		state.ClearLetter(doc)
		return true
	})
	return err
}

// SendLetter stamps the letter as sent. It returns the letter and whether
// it was sent by this call; an empty or already sent letter is unchanged.
func (s *Store) SendLetter(ctx context.Context, userID string, now time.Time) (state.Letter, bool, error) {
	var sent bool
	doc, err := s.update(ctx, userID, func(doc *state.Document) bool {
		sent = state.MarkLetterSent(doc, now)
		return sent
	})
	if err != nil {
		return state.Letter{}, false, err
	}
	return doc.Letter, sent, nil
}

func (s *Store) Trivia(ctx context.Context, userID string) state.TriviaProgress {
	return s.Document(ctx, userID).Trivia
}

// RecordAnswer counts an attempt and returns the updated progress.
func (s *Store) RecordAnswer(ctx context.Context, userID, questionID string, correct bool) (state.TriviaProgress, error) {
	doc, err := s.update(ctx, userID, func(doc *state.Document) bool {
		state.RecordAnswer(doc, questionID, correct)
		return true
	})
	if err != nil {
		return state.TriviaProgress{}, err
	}
	return doc.Trivia, nil
}

// ResetAnsweredQuestions forgets which questions were asked, keeping the score.
func (s *Store) ResetAnsweredQuestions(ctx context.Context, userID string) error {
	_, err := s.update(ctx, userID, func(doc *state.Document) bool {
		state.ResetAnsweredQuestions(doc)
		return true
	})
	return err
}

// RestartTrivia zeroes all trivia progress.
func (s *Store) RestartTrivia(ctx context.Context, userID string) error {
	_, err := s.update(ctx, userID, func(doc *state.Document) bool {
		state.ResetTrivia(doc)
		return true
	})
	return err
}

func (s *Store) StoriesRead(ctx context.Context, userID string) []string {
	return s.Document(ctx, userID).StoriesRead
}

// MarkStoryRead records a story as read. Returns true if newly read.
func (s *Store) MarkStoryRead(ctx context.Context, userID, storyID string) (bool, error) {
	var added bool
	_, err := s.update(ctx, userID, func(doc *state.Document) bool {
		added = state.MarkStoryRead(doc, storyID)
		return added
	})
	return added, err
}

func (s *Store) AdventOpened(ctx context.Context, userID string) []int {
	return s.Document(ctx, userID).AdventOpened
}

// OpenAdventDay marks day as opened. Returns true if newly opened.
func (s *Store) OpenAdventDay(ctx context.Context, userID string, day int) (bool, error) {
	var (
		opened  bool
		openErr error
	)
	_, err := s.update(ctx, userID, func(doc *state.Document) bool {
		opened, openErr = state.OpenAdventDay(doc, day)
		return opened
	})
	if openErr != nil {
		return false, openErr
	}
	return opened, err
}

// RecordVisit counts a conversation start and returns the updated stats.
func (s *Store) RecordVisit(ctx context.Context, userID string, now time.Time) (state.VisitStats, error) {
	var stats state.VisitStats
	_, err := s.update(ctx, userID, func(doc *state.Document) bool {
		stats = state.RecordVisit(doc, now)
		return true
	})
	if err != nil {
		return state.VisitStats{}, err
	}
	return stats, nil
}
