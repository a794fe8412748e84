package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AccelByte/extend-santa-skill/pkg/state"
)

// memoryDocumentStore is an in-memory DocumentStore that counts writes and
// can be made to fail.
type memoryDocumentStore struct {
	docs    map[string]*state.Document
	saves   int
	loadErr error
	saveErr error
}

func newMemoryDocumentStore() *memoryDocumentStore {
	return &memoryDocumentStore{docs: make(map[string]*state.Document)}
}

func (m *memoryDocumentStore) Load(ctx context.Context, userID string) (*state.Document, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	doc, ok := m.docs[userID]
	if !ok {
		return nil, nil
	}
	clone := *doc
	clone.Letter.Gifts = append([]string(nil), doc.Letter.Gifts...)
	clone.Trivia.AnsweredQuestions = append([]string(nil), doc.Trivia.AnsweredQuestions...)
	clone.StoriesRead = append([]string(nil), doc.StoriesRead...)
	clone.AdventOpened = append([]int(nil), doc.AdventOpened...)
	return &clone, nil
}

func (m *memoryDocumentStore) Save(ctx context.Context, userID string, doc *state.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.docs[userID] = doc
	return nil
}

var testNow = time.Date(2025, 12, 5, 18, 30, 0, 0, time.UTC)

func TestStore_DocumentDefaults(t *testing.T) {
	docs := newMemoryDocumentStore()
	store := NewStore(docs)

	doc := store.Document(context.Background(), "new-user")
	if !doc.Letter.IsEmpty() || doc.Stats != nil || len(doc.AdventOpened) != 0 {
		t.Errorf("Document() = %+v, expected a defaulted document", doc)
	}
	if docs.saves != 0 {
		t.Errorf("saves = %d, expected reads not to write", docs.saves)
	}
}

func TestStore_LoadErrorIsSwallowed(t *testing.T) {
	docs := newMemoryDocumentStore()
	docs.loadErr = errors.New("connection refused")
	store := NewStore(docs)

	letter := store.Letter(context.Background(), "user1")
	if !letter.IsEmpty() {
		t.Errorf("Letter() = %+v, expected empty letter on load failure", letter)
	}
}

func TestStore_LoadErrorBlocksOverwrite(t *testing.T) {
	docs := newMemoryDocumentStore()
	store := NewStore(docs)
	ctx := context.Background()

	if _, _, err := store.AddGift(ctx, "user1", "kite", testNow); err != nil {
		t.Fatalf("AddGift() error = %v", err)
	}
	saves := docs.saves

	docs.loadErr = errors.New("connection reset")
	if _, _, err := store.AddGift(ctx, "user1", "sled", testNow); !errors.Is(err, ErrDocumentUnavailable) {
		t.Errorf("AddGift() error = %v, expected %v", err, ErrDocumentUnavailable)
	}
	if _, err := store.RecordVisit(ctx, "user1", testNow); !errors.Is(err, ErrDocumentUnavailable) {
		t.Errorf("RecordVisit() error = %v, expected %v", err, ErrDocumentUnavailable)
	}
	if docs.saves != saves {
		t.Errorf("saves = %d, expected %d after failed loads", docs.saves, saves)
	}

	docs.loadErr = nil
	if gifts := store.Letter(ctx, "user1").Gifts; len(gifts) != 1 || gifts[0] != "kite" {
		t.Errorf("Gifts = %v, expected [kite] to survive", gifts)
	}
}

func TestStore_SaveErrorPropagates(t *testing.T) {
	boom := errors.New("write failed")
	docs := newMemoryDocumentStore()
	docs.saveErr = boom
	store := NewStore(docs)

	if _, _, err := store.AddGift(context.Background(), "user1", "kite", testNow); !errors.Is(err, boom) {
		t.Errorf("AddGift() error = %v, expected %v", err, boom)
	}
}

func TestStore_AddGift(t *testing.T) {
	docs := newMemoryDocumentStore()
	store := NewStore(docs)
	ctx := context.Background()

	added, count, err := store.AddGift(ctx, "user1", "Bicicleta", testNow)
	if err != nil {
		t.Fatalf("AddGift() error = %v", err)
	}
	if !added || count != 1 {
		t.Errorf("AddGift() = %v, %d; expected true, 1", added, count)
	}

	added, count, err = store.AddGift(ctx, "user1", "BICICLETA", testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("AddGift() error = %v", err)
	}
	if added || count != 1 {
		t.Errorf("repeat AddGift() = %v, %d; expected false, 1", added, count)
	}
	if docs.saves != 1 {
		t.Errorf("saves = %d, expected the repeat add not to write", docs.saves)
	}

	letter := store.Letter(ctx, "user1")
	if letter.CreatedAt == nil || !letter.CreatedAt.Equal(testNow) {
		t.Errorf("CreatedAt = %v, expected %v", letter.CreatedAt, testNow)
	}
}

func TestStore_RemoveGift(t *testing.T) {
	docs := newMemoryDocumentStore()
	store := NewStore(docs)
	ctx := context.Background()

	store.AddGift(ctx, "user1", "bicicleta", testNow)
	store.AddGift(ctx, "user1", "muñeca", testNow)
	saves := docs.saves

	removed, found, remaining, err := store.RemoveGift(ctx, "user1", "bici")
	if err != nil {
		t.Fatalf("RemoveGift() error = %v", err)
	}
	if !found || removed != "bicicleta" || remaining != 1 {
		t.Errorf("RemoveGift() = %q, %v, %d; expected bicicleta, true, 1", removed, found, remaining)
	}

	_, found, remaining, err = store.RemoveGift(ctx, "user1", "bici")
	if err != nil {
		t.Fatalf("RemoveGift() error = %v", err)
	}
	if found || remaining != 1 {
		t.Errorf("repeat RemoveGift() = %v, %d; expected false, 1", found, remaining)
	}
	if docs.saves != saves+1 {
		t.Errorf("saves = %d, expected a missed removal not to write", docs.saves)
	}
}

func TestStore_SendLetter(t *testing.T) {
	docs := newMemoryDocumentStore()
	store := NewStore(docs)
	ctx := context.Background()

	if _, sent, err := store.SendLetter(ctx, "user1", testNow); err != nil || sent {
		t.Errorf("SendLetter() on empty letter = %v, %v; expected false, nil", sent, err)
	}

	store.AddGift(ctx, "user1", "bicicleta", testNow)

	letter, sent, err := store.SendLetter(ctx, "user1", testNow)
	if err != nil || !sent {
		t.Fatalf("SendLetter() = %v, %v; expected true, nil", sent, err)
	}
	if len(letter.Gifts) != 1 || letter.Gifts[0] != "bicicleta" {
		t.Errorf("Gifts = %v, expected [bicicleta]", letter.Gifts)
	}

	letter, sent, err = store.SendLetter(ctx, "user1", testNow.Add(24*time.Hour))
	if err != nil || sent {
		t.Errorf("second SendLetter() = %v, %v; expected false, nil", sent, err)
	}
	if !letter.SentAt.Equal(testNow) {
		t.Errorf("SentAt = %v, expected unchanged %v", letter.SentAt, testNow)
	}

	if err := store.ClearLetter(ctx, "user1"); err != nil {
		t.Fatalf("ClearLetter() error = %v", err)
	}
	if letter := store.Letter(ctx, "user1"); !letter.IsEmpty() || letter.IsSent() {
		t.Errorf("Letter() after clear = %+v", letter)
	}
}

func TestStore_Trivia(t *testing.T) {
	store := NewStore(newMemoryDocumentStore())
	ctx := context.Background()

	answers := []struct {
		id      string
		correct bool
	}{
		{"q1", true},
		{"q2", false},
		{"q1", true},
	}
	var progress state.TriviaProgress
	for _, a := range answers {
		var err error
		progress, err = store.RecordAnswer(ctx, "user1", a.id, a.correct)
		if err != nil {
			t.Fatalf("RecordAnswer() error = %v", err)
		}
		if progress.CorrectAnswers > progress.QuestionsAnswered {
			t.Fatalf("CorrectAnswers %d > QuestionsAnswered %d", progress.CorrectAnswers, progress.QuestionsAnswered)
		}
	}
	if progress.QuestionsAnswered != 3 || progress.CorrectAnswers != 2 || len(progress.AnsweredQuestions) != 2 {
		t.Errorf("progress = %+v", progress)
	}

	if err := store.ResetAnsweredQuestions(ctx, "user1"); err != nil {
		t.Fatalf("ResetAnsweredQuestions() error = %v", err)
	}
	progress = store.Trivia(ctx, "user1")
	if len(progress.AnsweredQuestions) != 0 || progress.QuestionsAnswered != 3 {
		t.Errorf("progress after reset = %+v, expected score kept", progress)
	}

	if err := store.RestartTrivia(ctx, "user1"); err != nil {
		t.Fatalf("RestartTrivia() error = %v", err)
	}
	if progress = store.Trivia(ctx, "user1"); progress.QuestionsAnswered != 0 {
		t.Errorf("progress after restart = %+v, expected zero", progress)
	}
}

func TestStore_OpenAdventDay(t *testing.T) {
	docs := newMemoryDocumentStore()
	store := NewStore(docs)
	ctx := context.Background()

	opened, err := store.OpenAdventDay(ctx, "user1", 5)
	if err != nil || !opened {
		t.Errorf("OpenAdventDay(5) = %v, %v; expected true, nil", opened, err)
	}
	opened, err = store.OpenAdventDay(ctx, "user1", 5)
	if err != nil || opened {
		t.Errorf("second OpenAdventDay(5) = %v, %v; expected false, nil", opened, err)
	}

	saves := docs.saves
	if _, err := store.OpenAdventDay(ctx, "user1", 30); !errors.Is(err, state.ErrInvalidAdventDay) {
		t.Errorf("OpenAdventDay(30) error = %v, expected %v", err, state.ErrInvalidAdventDay)
	}
	if docs.saves != saves {
		t.Error("OpenAdventDay(30) wrote the document")
	}
	if got := store.AdventOpened(ctx, "user1"); len(got) != 1 || got[0] != 5 {
		t.Errorf("AdventOpened() = %v, expected [5]", got)
	}
}

func TestStore_StoriesAndVisits(t *testing.T) {
	store := NewStore(newMemoryDocumentStore())
	ctx := context.Background()

	if added, _ := store.MarkStoryRead(ctx, "user1", "a"); !added {
		t.Error("MarkStoryRead() = false for a new story")
	}
	if added, _ := store.MarkStoryRead(ctx, "user1", "a"); added {
		t.Error("MarkStoryRead() = true for a story already read")
	}
	if got := store.StoriesRead(ctx, "user1"); len(got) != 1 {
		t.Errorf("StoriesRead() = %v", got)
	}

	first, err := store.RecordVisit(ctx, "user1", testNow)
	if err != nil {
		t.Fatalf("RecordVisit() error = %v", err)
	}
	second, _ := store.RecordVisit(ctx, "user1", testNow.Add(time.Hour))
	if first.Visits != 1 || second.Visits != 2 {
		t.Errorf("Visits = %d then %d, expected 1 then 2", first.Visits, second.Visits)
	}
	if !second.FirstVisit.Equal(testNow) {
		t.Errorf("FirstVisit = %v, expected %v", second.FirstVisit, testNow)
	}
}
