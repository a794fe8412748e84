// Package content holds the static skill content and the selectors that
// decide what to say from the clock and the user's history.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

// DefaultGiftCategory is used when no or an unknown recipient is given.
const DefaultGiftCategory = "friend"

// TriviaOptionCount is the number of options every question carries.
const TriviaOptionCount = 4

// Story is a read-aloud Christmas story.
type Story struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Question is a multiple-choice trivia question. CorrectAnswer is 1-based.
type Question struct {
	ID            string   `yaml:"id" json:"id"`
	Question      string   `yaml:"question" json:"question"`
	Options       []string `yaml:"options" json:"options"`
	CorrectAnswer int      `yaml:"correctAnswer" json:"correctAnswer"`
	Explanation   string   `yaml:"explanation" json:"explanation"`
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.CorrectAnswer < 1 || q.CorrectAnswer > len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectAnswer-1]
}

// AdventDay is the surprise behind one advent calendar window.
type AdventDay struct {
	Day     int    `yaml:"day"`
	Content string `yaml:"content"`
}

// Location is a simulated stop on Santa's journey. Distance is in km from
// the listener's home region.
type Location struct {
	Location string `yaml:"location"`
	Activity string `yaml:"activity"`
	Distance int    `yaml:"distance"`
}

// TrackerRoute configures the Santa tracker.
type TrackerRoute struct {
	Home            string     `yaml:"home"`
	BeforeChristmas []Location `yaml:"beforeChristmas"`
	ChristmasEve    []Location `yaml:"christmasEve"`
	FunFacts        []string   `yaml:"funFacts"`
}

type storiesFile struct {
	Stories []Story `yaml:"stories"`
}

type triviaFile struct {
	Questions []Question `yaml:"questions"`
}

type adventFile struct {
	Calendar []AdventDay `yaml:"calendar"`
}

type giftsFile struct {
	Suggestions map[string][]string `yaml:"suggestions"`
}

type messagesFile struct {
	Messages          []string `yaml:"messages"`
	NiceListResponses []string `yaml:"niceListResponses"`
}

// Catalog is the immutable content set loaded once at startup. Accessors
// return copies so callers cannot alter shared data.
type Catalog struct {
	stories           []Story
	questions         []Question
	advent            map[int]string
	gifts             map[string][]string
	messages          []string
	niceListResponses []string
	tracker           TrackerRoute
}

// LoadDefault loads the fixtures embedded in the binary.
func LoadDefault() (*Catalog, error) {
	sub, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded fixtures: %w", err)
	}
	return Load(sub)
}

// LoadDir loads fixtures from a directory, or the embedded ones if dir is empty.
func LoadDir(dir string) (*Catalog, error) {
	if dir == "" {
		return LoadDefault()
	}
	return Load(os.DirFS(dir))
}

// Load reads and validates every fixture file from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		stories  storiesFile
		trivia   triviaFile
		advent   adventFile
		gifts    giftsFile
		messages messagesFile
		tracker  TrackerRoute
	)

	files := []struct {
		name string
		out  interface{}
	}{
		{"stories.yaml", &stories},
		{"trivia.yaml", &trivia},
		{"advent.yaml", &advent},
		{"gifts.yaml", &gifts},
		{"messages.yaml", &messages},
		{"tracker.yaml", &tracker},
	}

	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.out); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		stories:           stories.Stories,
		questions:         trivia.Questions,
		advent:            make(map[int]string, len(advent.Calendar)),
		gifts:             gifts.Suggestions,
		messages:          messages.Messages,
		niceListResponses: messages.NiceListResponses,
		tracker:           tracker,
	}
	for _, d := range advent.Calendar {
		if _, dup := c.advent[d.Day]; dup {
			return nil, fmt.Errorf("invalid content: duplicate advent day %d", d.Day)
		}
		c.advent[d.Day] = d.Content
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}

	logrus.Infof("loaded content: %d stories, %d questions, %d advent days, %d gift categories",
		len(c.stories), len(c.questions), len(c.advent), len(c.gifts))
	return c, nil
}

func decodeFile(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read content file %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse content file %s: %w", path.Base(name), err)
	}
	return nil
}

// Validate checks the catalog for the shapes the handlers rely on.
func (c *Catalog) Validate() error {
	if len(c.stories) == 0 {
		return fmt.Errorf("no stories")
	}
	storyIDs := make(map[string]bool)
	for _, s := range c.stories {
		if s.ID == "" || s.Body == "" {
			return fmt.Errorf("story %q is missing id or body", s.Title)
		}
		if storyIDs[s.ID] {
			return fmt.Errorf("duplicate story id: %s", s.ID)
		}
		storyIDs[s.ID] = true
	}

	if len(c.questions) == 0 {
		return fmt.Errorf("no trivia questions")
	}
	questionIDs := make(map[string]bool)
	for _, q := range c.questions {
		if q.ID == "" {
			return fmt.Errorf("trivia question with empty id")
		}
		if questionIDs[q.ID] {
			return fmt.Errorf("duplicate question id: %s", q.ID)
		}
		questionIDs[q.ID] = true
		if len(q.Options) != TriviaOptionCount {
			return fmt.Errorf("question %s has %d options, expected %d", q.ID, len(q.Options), TriviaOptionCount)
		}
		if q.CorrectAnswer < 1 || q.CorrectAnswer > TriviaOptionCount {
			return fmt.Errorf("question %s has correct answer %d out of range", q.ID, q.CorrectAnswer)
		}
	}

	for day := 1; day <= 24; day++ {
		if _, ok := c.advent[day]; !ok {
			return fmt.Errorf("advent day %d missing", day)
		}
	}
	if len(c.advent) != 24 {
		return fmt.Errorf("advent calendar has %d days, expected 24", len(c.advent))
	}

	if len(c.gifts[DefaultGiftCategory]) == 0 {
		return fmt.Errorf("gift suggestions must include %q", DefaultGiftCategory)
	}
	if len(c.messages) == 0 || len(c.niceListResponses) == 0 {
		return fmt.Errorf("message banks must not be empty")
	}
	if len(c.tracker.BeforeChristmas) == 0 || len(c.tracker.ChristmasEve) == 0 || len(c.tracker.FunFacts) == 0 {
		return fmt.Errorf("tracker needs locations, a route and fun facts")
	}

	return nil
}

// Stories returns the story catalog.
func (c *Catalog) Stories() []Story {
	return append([]Story(nil), c.stories...)
}

// Questions returns the trivia catalog. Options slices are shared but
// must be treated as read-only.
func (c *Catalog) Questions() []Question {
	return append([]Question(nil), c.questions...)
}

// AdventContent returns the surprise for day.
func (c *Catalog) AdventContent(day int) (string, bool) {
	content, ok := c.advent[day]
	return content, ok
}

// GiftSuggestions returns the suggestions for category and the category
// actually used, falling back to DefaultGiftCategory.
func (c *Catalog) GiftSuggestions(category string) ([]string, string) {
	if list, ok := c.gifts[category]; ok && len(list) > 0 {
		return append([]string(nil), list...), category
	}
	return append([]string(nil), c.gifts[DefaultGiftCategory]...), DefaultGiftCategory
}

// SantaMessages returns the bank of messages from Santa.
func (c *Catalog) SantaMessages() []string {
	return append([]string(nil), c.messages...)
}

// NiceListResponses returns the bank of naughty-or-nice answers.
func (c *Catalog) NiceListResponses() []string {
	return append([]string(nil), c.niceListResponses...)
}

// Tracker returns the tracker configuration.
func (c *Catalog) Tracker() TrackerRoute {
	t := c.tracker
	t.BeforeChristmas = append([]Location(nil), c.tracker.BeforeChristmas...)
	t.ChristmasEve = append([]Location(nil), c.tracker.ChristmasEve...)
	t.FunFacts = append([]string(nil), c.tracker.FunFacts...)
	return t
}
