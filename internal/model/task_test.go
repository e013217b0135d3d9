package model

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestSpeechTask_GetDisplayText(t *testing.T) {
	long := strings.Repeat("ab", 30)

	tests := []struct {
		text     string
		expected string
	}{
		{"", ""},
		{"one does not simply", "one does not simply"},
		{long, long[:DisplayTextLimit-1] + "…"},
	}

	for _, test := range tests {
		task := &SpeechTask{Utterance: Utterance{Text: test.text}}
		result := task.GetDisplayText()
		if result != test.expected {
			t.Errorf("GetDisplayText() with text=%q = %q, expected %q", test.text, result, test.expected)
		}
	}
}

func TestSpeechTask_GetDisplayText_Multibyte(t *testing.T) {
	task := &SpeechTask{Utterance: Utterance{Text: strings.Repeat("я", 50)}}
	result := task.GetDisplayText()

	if utf8.RuneCountInString(result) != DisplayTextLimit {
		t.Errorf("Expected %d runes, got %d", DisplayTextLimit, utf8.RuneCountInString(result))
	}
	if !utf8.ValidString(result) {
		t.Error("Expected valid UTF-8 after truncation")
	}
}

func TestSpeechTask_GetElapsedString(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		finished time.Time
		expected string
	}{
		{time.Time{}, "—"},
		{start.Add(3 * time.Second), "0:03"},
		{start.Add(75 * time.Second), "1:15"},
		{start.Add(-time.Second), "0:00"},
	}

	for _, test := range tests {
		task := &SpeechTask{StartedAt: start, FinishedAt: test.finished}
		result := task.GetElapsedString()
		if result != test.expected {
			t.Errorf("GetElapsedString() with finished=%v = %s, expected %s", test.finished, result, test.expected)
		}
	}
}

func TestCaption_SpokenText(t *testing.T) {
	tests := []struct {
		caption  Caption
		expected string
	}{
		{Caption{Top: "top", Bottom: "bottom"}, "top bottom"},
		{Caption{Top: "only top"}, "only top "},
		{Caption{Bottom: "only bottom"}, " only bottom"},
		{Caption{}, " "},
	}

	for _, test := range tests {
		result := test.caption.SpokenText()
		if result != test.expected {
			t.Errorf("SpokenText() for %+v = %q, expected %q", test.caption, result, test.expected)
		}
	}
}

func TestCaption_IsBlank(t *testing.T) {
	if !(Caption{Top: "  ", Bottom: "\t"}).IsBlank() {
		t.Error("Expected whitespace caption to be blank")
	}
	if (Caption{Bottom: "x"}).IsBlank() {
		t.Error("Expected caption with bottom text not to be blank")
	}
}
