// Package speech renders plain response text into SSML for the voice runtime.
package speech

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Sound cues from the voice platform's sound library.
const (
	Bells       = `<audio src="soundbank://soundlibrary/ui/gameshow/amzn_ui_sfx_gameshow_intro_01"/>`
	HoHoHo      = `<audio src="soundbank://soundlibrary/human/amzn_sfx_crowd_applause_01"/>`
	SleighBells = `<audio src="soundbank://soundlibrary/ui/gameshow/amzn_ui_sfx_gameshow_positive_response_02"/>`
	Magic       = `<audio src="soundbank://soundlibrary/ui/gameshow/amzn_ui_sfx_gameshow_player1_01"/>`
	Wind        = `<audio src="soundbank://soundlibrary/foley/amzn_sfx_swoosh_fast_1x_01"/>`
	Cheer       = `<audio src="soundbank://soundlibrary/human/amzn_sfx_crowd_applause_01"/>`
	Celebration = `<audio src="soundbank://soundlibrary/musical/amzn_sfx_trumpet_bugle_03"/>`
)

const (
	speakOpen  = "<speak>"
	speakClose = "</speak>"

	emptyList = "nothing yet"
)

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// Wrap encloses text in a single <speak> envelope. Already wrapped text is
// returned unchanged.
func Wrap(text string) string {
	if strings.HasPrefix(text, speakOpen) {
		return text
	}
	return speakOpen + text + speakClose
}

// Escape makes user-provided text safe to embed in SSML.
func Escape(text string) string {
	return html.EscapeString(text)
}

// Pause renders a timed silence.
func Pause(ms int) string {
	return fmt.Sprintf(`<break time="%dms"/>`, ms)
}

// Emphasize renders text with the given emphasis level (strong, moderate, reduced).
func Emphasize(text, level string) string {
	if level == "" {
		level = "moderate"
	}
	return fmt.Sprintf(`<emphasis level="%s">%s</emphasis>`, level, text)
}

// Whisper renders whispered text.
func Whisper(text string) string {
	return `<amazon:effect name="whispered">` + text + `</amazon:effect>`
}

// SantaVoice renders text slightly slower and deeper.
func SantaVoice(text string) string {
	return `<prosody rate="95%" pitch="-5%">` + text + `</prosody>`
}

// FormatList joins items for natural speech: "a", "a and b", "a, b, and c".
// The input slice is never modified.
func FormatList(items []string) string {
	switch len(items) {
	case 0:
		return emptyList
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}

	head := make([]string, len(items)-1)
	copy(head, items[:len(items)-1])
	return strings.Join(head, ", ") + ", and " + items[len(items)-1]
}

// Plural picks the singular or plural noun for n.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Count renders "n noun" with the right plural.
func Count(n int, singular, plural string) string {
	return fmt.Sprintf("%d %s", n, Plural(n, singular, plural))
}

var ordinals = map[int]string{
	1: "first", 2: "second", 3: "third", 4: "fourth", 5: "fifth",
	6: "sixth", 7: "seventh", 8: "eighth", 9: "ninth", 10: "tenth",
	11: "eleventh", 12: "twelfth", 13: "thirteenth", 14: "fourteenth",
	15: "fifteenth",
}

// Ordinal maps 1-15 to an ordinal word, anything else to "number N".
func Ordinal(n int) string {
	if word, ok := ordinals[n]; ok {
		return word
	}
	return fmt.Sprintf("number %d", n)
}

// StripMarkup removes SSML tags and collapses whitespace.
func StripMarkup(text string) string {
	return strings.Join(strings.Fields(markupPattern.ReplaceAllString(text, " ")), " ")
}

// Parts describes a framed response.
type Parts struct {
	Intro string
	Main  string
	Outro string
	Bells bool
	Magic bool
}

// Compose builds a wrapped response from its parts, separating intro and
// outro from the main content with short pauses.
func Compose(p Parts) string {
	var b strings.Builder
	if p.Bells {
		b.WriteString(Bells)
	}
	if p.Intro != "" {
		b.WriteString(p.Intro)
		b.WriteString(Pause(300))
	}
	b.WriteString(p.Main)
	if p.Outro != "" {
		b.WriteString(Pause(300))
		b.WriteString(p.Outro)
	}
	if p.Magic {
		b.WriteString(Magic)
	}
	return Wrap(b.String())
}
