package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/AccelByte/extend-santa-skill/pkg/common"
)

// UnreadStories returns the stories whose id is not in read.
func UnreadStories(stories []Story, read []string) []Story {
	seen := toSet(read)
	var unread []Story
	for _, s := range stories {
		if !seen[s.ID] {
			unread = append(unread, s)
		}
	}
	return unread
}

// PickUnreadStory picks a random unread story. When every story has been
// read it picks from the whole catalog. stories must not be empty.
func PickUnreadStory(stories []Story, read []string, rnd common.Random) Story {
	unread := UnreadStories(stories, read)
	if len(unread) == 0 {
		return stories[rnd.Intn(len(stories))]
	}
	return unread[rnd.Intn(len(unread))]
}

// UnansweredQuestions returns the questions whose id is not in answered.
func UnansweredQuestions(questions []Question, answered []string) []Question {
	seen := toSet(answered)
	var unanswered []Question
	for _, q := range questions {
		if !seen[q.ID] {
			unanswered = append(unanswered, q)
		}
	}
	return unanswered
}

// PickUnansweredQuestion picks a random unanswered question. When every
// question has been answered it picks from the whole catalog and reports
// exhausted=true; the caller owns resetting the persisted answered set.
func PickUnansweredQuestion(questions []Question, answered []string, rnd common.Random) (Question, bool) {
	unanswered := UnansweredQuestions(questions, answered)
	if len(unanswered) == 0 {
		return questions[rnd.Intn(len(questions))], true
	}
	return unanswered[rnd.Intn(len(unanswered))], false
}

// FormatOptions renders options as "1: a. 2: b. 3: c. 4: d".
func FormatOptions(options []string) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = fmt.Sprintf("%d: %s", i+1, opt)
	}
	return strings.Join(parts, ". ")
}

// AdventStatus says whether the advent calendar can be opened.
type AdventStatus int

const (
	AdventNotStarted AdventStatus = iota
	AdventOpen
	AdventEnded
)

// AdventWindow returns the status of the advent calendar at now and, when
// open, today's day number.
func AdventWindow(now time.Time) (AdventStatus, int) {
	if now.Month() != time.December {
		return AdventNotStarted, 0
	}
	if now.Day() > 24 {
		return AdventEnded, 0
	}
	return AdventOpen, now.Day()
}

// SuggestGifts picks up to n distinct suggestions from pool at random.
func SuggestGifts(pool []string, n int, rnd common.Random) []string {
	remaining := append([]string(nil), pool...)
	selected := make([]string, 0, n)
	for i := 0; i < n && len(remaining) > 0; i++ {
		idx := rnd.Intn(len(remaining))
		selected = append(selected, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return selected
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
