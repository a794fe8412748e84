package speech

import (
	"fmt"

	"github.com/AccelByte/extend-santa-skill/pkg/common"
)

var greetings = []string{
	"Ho ho ho!",
	"Merry Christmas!",
	"Jolly greetings!",
	"How wonderful to see you!",
	"Hello, little friend!",
}

var farewells = []string{
	"See you soon, and merry Christmas!",
	"Ho ho ho! See you soon!",
	"Have a magical day!",
	"Happy holidays!",
	"Until next time, little friend!",
	"May the magic of Christmas be with you!",
}

// giftConfirmations take the gift as their only argument.
var giftConfirmations = []string{
	`Perfect! I added "%s" to your letter.`,
	`Excellent choice! "%s" is now on your list.`,
	`Ho ho ho! Santa made a note of "%s".`,
	`Great! I wrote "%s" in your letter.`,
}

var celebrations = []string{
	Cheer + " CORRECT! Well done!",
	Magic + " Excellent! You got it!",
	Bells + " Yes! That is the right answer!",
	Celebration + " Amazing! You knew it!",
}

// Picker chooses flavour phrases uniformly at random. Repeats across calls
// are allowed.
type Picker struct {
	rnd common.Random
}

// NewPicker creates a phrase picker drawing from rnd.
func NewPicker(rnd common.Random) *Picker {
	return &Picker{rnd: rnd}
}

// Pick returns a uniformly chosen entry of bank, or "" for an empty bank.
func (p *Picker) Pick(bank []string) string {
	if len(bank) == 0 {
		return ""
	}
	return bank[p.rnd.Intn(len(bank))]
}

// Greeting returns a random greeting.
func (p *Picker) Greeting() string {
	return p.Pick(greetings)
}

// Farewell returns a random farewell.
func (p *Picker) Farewell() string {
	return p.Pick(farewells)
}

// GiftConfirmation returns a random confirmation mentioning gift. gift is
// escaped.
func (p *Picker) GiftConfirmation(gift string) string {
	return fmt.Sprintf(p.Pick(giftConfirmations), Escape(gift))
}

// Celebration returns a random reaction to a correct answer.
func (p *Picker) Celebration() string {
	return p.Pick(celebrations)
}
