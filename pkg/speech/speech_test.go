package speech

import (
	"strings"
	"testing"
)

// fixedRandom always returns the same index, clamped to n.
type fixedRandom struct {
	idx int
}

func (f fixedRandom) Intn(n int) int {
	if f.idx >= n {
		return n - 1
	}
	return f.idx
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text", input: "hello", expected: "<speak>hello</speak>"},
		{name: "already wrapped", input: "<speak>hello</speak>", expected: "<speak>hello</speak>"},
		{name: "empty", input: "", expected: "<speak></speak>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.input)
			if got != tt.expected {
				t.Errorf("Wrap(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
			if Wrap(got) != got {
				t.Errorf("Wrap is not idempotent for %q", tt.input)
			}
		})
	}
}

func TestPause(t *testing.T) {
	if got := Pause(300); got != `<break time="300ms"/>` {
		t.Errorf("Pause(300) = %s", got)
	}
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{name: "nil", items: nil, expected: "nothing yet"},
		{name: "empty", items: []string{}, expected: "nothing yet"},
		{name: "one", items: []string{"a"}, expected: "a"},
		{name: "two", items: []string{"a", "b"}, expected: "a and b"},
		{name: "three", items: []string{"a", "b", "c"}, expected: "a, b, and c"},
		{name: "four", items: []string{"a", "b", "c", "d"}, expected: "a, b, c, and d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatList(tt.items); got != tt.expected {
				t.Errorf("FormatList(%v) = %q, expected %q", tt.items, got, tt.expected)
			}
		})
	}
}

func TestFormatList_DoesNotMutateInput(t *testing.T) {
	items := []string{"kite", "doll", "train"}

	first := FormatList(items)
	second := FormatList(items)

	if first != second {
		t.Errorf("FormatList() = %q then %q, expected identical results", first, second)
	}
	if len(items) != 3 || items[2] != "train" {
		t.Errorf("input was modified: %v", items)
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{1, "first"},
		{3, "third"},
		{15, "fifteenth"},
		{16, "number 16"},
		{0, "number 0"},
	}

	for _, tt := range tests {
		if got := Ordinal(tt.n); got != tt.expected {
			t.Errorf("Ordinal(%d) = %q, expected %q", tt.n, got, tt.expected)
		}
	}
}

func TestPlural(t *testing.T) {
	if got := Count(1, "gift", "gifts"); got != "1 gift" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(0, "gift", "gifts"); got != "0 gifts" {
		t.Errorf("Count(0) = %q", got)
	}
}

func TestStripMarkup(t *testing.T) {
	input := Bells + " Hello " + Pause(200) + " there"
	if got := StripMarkup(input); got != "Hello there" {
		t.Errorf("StripMarkup() = %q, expected %q", got, "Hello there")
	}
}

func TestCompose(t *testing.T) {
	got := Compose(Parts{Intro: "Once", Main: "upon a time", Outro: "the end", Bells: true})

	if !strings.HasPrefix(got, "<speak>"+Bells+"Once") {
		t.Errorf("Compose() = %q, expected bells then intro", got)
	}
	if !strings.HasSuffix(got, Pause(300)+"the end</speak>") {
		t.Errorf("Compose() = %q, expected outro last", got)
	}
	if strings.Contains(got, Magic) {
		t.Error("Compose() added magic without being asked")
	}
}

func TestPicker(t *testing.T) {
	picker := NewPicker(fixedRandom{idx: 0})

	if got := picker.Greeting(); got != greetings[0] {
		t.Errorf("Greeting() = %q, expected %q", got, greetings[0])
	}
	if got := picker.GiftConfirmation("kite"); got != `Perfect! I added "kite" to your letter.` {
		t.Errorf("GiftConfirmation() = %q", got)
	}

	last := NewPicker(fixedRandom{idx: 100})
	if got := last.Farewell(); got != farewells[len(farewells)-1] {
		t.Errorf("Farewell() = %q, expected last farewell", got)
	}
	if got := last.Pick(nil); got != "" {
		t.Errorf("Pick(nil) = %q, expected empty", got)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "kite", expected: "kite"},
		{input: "tom & jerry", expected: "tom &amp; jerry"},
		{input: "<dvd>", expected: "&lt;dvd&gt;"},
		{input: `a "big" sled`, expected: "a &#34;big&#34; sled"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.expected {
				t.Errorf("Escape(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEffects(t *testing.T) {
	if got := Emphasize("now", ""); got != `<emphasis level="moderate">now</emphasis>` {
		t.Errorf("Emphasize() = %q", got)
	}
	if got := Whisper("shh"); got != `<amazon:effect name="whispered">shh</amazon:effect>` {
		t.Errorf("Whisper() = %q", got)
	}
	if got := SantaVoice("ho"); got != `<prosody rate="95%" pitch="-5%">ho</prosody>` {
		t.Errorf("SantaVoice() = %q", got)
	}
}
