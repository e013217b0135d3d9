package model

import "strings"

// Caption holds the top and bottom meme text.
type Caption struct {
	Top    string
	Bottom string
}

// SpokenText is what the read-aloud action says: top and bottom joined by a
// single space, exactly as typed.
func (c Caption) SpokenText() string {
	return c.Top + " " + c.Bottom
}

// IsBlank reports whether both lines are empty or whitespace.
func (c Caption) IsBlank() bool {
	return strings.TrimSpace(c.Top) == "" && strings.TrimSpace(c.Bottom) == ""
}

// Utterance is a unit of text configured for speech synthesis.
type Utterance struct {
	Text   string
	Lang   string  // BCP 47 tag of the selected voice
	Volume float64 // 0.0 to 1.0
}
