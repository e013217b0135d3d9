package model

import (
	"errors"
	"testing"
)

func TestPhase_Next(t *testing.T) {
	tests := []struct {
		from     Phase
		event    Event
		expected Phase
		valid    bool
	}{
		{PhaseIdle, EventImageLoaded, PhaseImageLoaded, true},
		{PhaseIdle, EventGenerate, PhaseCaptionsDrawn, true},
		{PhaseIdle, EventClear, PhaseIdle, false},
		{PhaseImageLoaded, EventImageLoaded, PhaseImageLoaded, true},
		{PhaseImageLoaded, EventGenerate, PhaseCaptionsDrawn, true},
		{PhaseImageLoaded, EventClear, PhaseIdle, true},
		{PhaseCaptionsDrawn, EventImageLoaded, PhaseImageLoaded, true},
		{PhaseCaptionsDrawn, EventGenerate, PhaseCaptionsDrawn, false},
		{PhaseCaptionsDrawn, EventClear, PhaseIdle, true},
	}

	for _, test := range tests {
		result, err := test.from.Next(test.event)
		if test.valid && err != nil {
			t.Errorf("%s.Next(%s) returned error: %v", test.from, test.event, err)
		}
		if !test.valid && !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s.Next(%s) error = %v, expected ErrInvalidTransition", test.from, test.event, err)
		}
		if result != test.expected {
			t.Errorf("%s.Next(%s) = %s, expected %s", test.from, test.event, result, test.expected)
		}
	}
}

func TestPhase_Controls(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected Controls
	}{
		{PhaseIdle, Controls{Generate: true, Clear: false, ReadAloud: false}},
		{PhaseImageLoaded, Controls{Generate: true, Clear: true, ReadAloud: false}},
		{PhaseCaptionsDrawn, Controls{Generate: false, Clear: true, ReadAloud: true}},
	}

	for _, test := range tests {
		result := test.phase.Controls()
		if result != test.expected {
			t.Errorf("%s.Controls() = %+v, expected %+v", test.phase, result, test.expected)
		}
	}
}

func TestPhase_String(t *testing.T) {
	if PhaseCaptionsDrawn.String() != "CaptionsDrawn" {
		t.Errorf("Phase.String() = %s, expected CaptionsDrawn", PhaseCaptionsDrawn.String())
	}
	if Phase(42).String() != "Unknown" {
		t.Errorf("Phase(42).String() = %s, expected Unknown", Phase(42).String())
	}
}
