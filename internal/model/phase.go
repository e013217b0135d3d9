package model

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an event is not allowed in the current phase
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the editor's position in the make-a-meme workflow
type Phase int

const (
	// PhaseIdle means the surface is empty
	PhaseIdle Phase = iota
	// PhaseImageLoaded means a picture is drawn without captions
	PhaseImageLoaded
	// PhaseCaptionsDrawn means captions are on the surface
	PhaseCaptionsDrawn
)

// String returns a human-friendly phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseImageLoaded:
		return "ImageLoaded"
	case PhaseCaptionsDrawn:
		return "CaptionsDrawn"
	default:
		return "Unknown"
	}
}

// Event triggers a phase transition
type Event int

const (
	EventImageLoaded Event = iota
	EventGenerate
	EventClear
)

// String returns the event name
func (e Event) String() string {
	switch e {
	case EventImageLoaded:
		return "ImageLoaded"
	case EventGenerate:
		return "Generate"
	case EventClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Next returns the phase reached by applying event, or ErrInvalidTransition.
//
// A newly loaded picture always lands in PhaseImageLoaded, dropping any captions.
// Generate is allowed until captions are drawn. Clear needs something on the surface.
func (p Phase) Next(event Event) (Phase, error) {
	switch event {
	case EventImageLoaded:
		return PhaseImageLoaded, nil
	case EventGenerate:
		if p == PhaseIdle || p == PhaseImageLoaded {
			return PhaseCaptionsDrawn, nil
		}
	case EventClear:
		if p == PhaseImageLoaded || p == PhaseCaptionsDrawn {
			return PhaseIdle, nil
		}
	}
	return p, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, p)
}

// Can reports whether event is accepted in this phase
func (p Phase) Can(event Event) bool {
	_, err := p.Next(event)
	return err == nil
}

// Controls is the enabled state of the three action buttons
type Controls struct {
	Generate  bool
	Clear     bool
	ReadAloud bool
}

// Controls derives which actions are enabled in this phase
func (p Phase) Controls() Controls {
	return Controls{
		Generate:  p.Can(EventGenerate),
		Clear:     p.Can(EventClear),
		ReadAloud: p == PhaseCaptionsDrawn,
	}
}
