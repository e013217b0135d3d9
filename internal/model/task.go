package model

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// DisplayTextLimit caps the characters shown for an utterance in status lines
const DisplayTextLimit = 40

// SpeechTask represents a single read-aloud request
type SpeechTask struct {
	ID         string
	Utterance  Utterance
	Status     TaskStatus
	LastError  string    // last error message if any
	StartedAt  time.Time // when the task was queued
	FinishedAt time.Time // when the engine exited
}

// GetDisplayText returns the utterance text, shortened for status lines
func (st *SpeechTask) GetDisplayText() string {
	text := st.Utterance.Text
	if utf8.RuneCountInString(text) <= DisplayTextLimit {
		return text
	}

	runes := []rune(text)
	return string(runes[:DisplayTextLimit-1]) + "…"
}

// GetElapsedString returns how long the task ran as m:ss, or "—" if unfinished
func (st *SpeechTask) GetElapsedString() string {
	if st.FinishedAt.IsZero() || st.StartedAt.IsZero() {
		return "—"
	}

	elapsed := int(st.FinishedAt.Sub(st.StartedAt).Round(time.Second).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	return fmt.Sprintf("%d:%02d", elapsed/60, elapsed%60)
}
