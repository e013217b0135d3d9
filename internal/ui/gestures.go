package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents the touch gestures the preview reacts to
type GestureType int

const (
	// GestureNone is a touch that moved too far to be a tap or a press
	GestureNone GestureType = iota
	GestureTap
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultMoveThreshold     float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// ClassifyGesture names the gesture made by moving (dx, dy) over duration
func ClassifyGesture(dx, dy float32, duration time.Duration) GestureType {
	switch {
	case dx*dx+dy*dy >= DefaultMoveThreshold*DefaultMoveThreshold:
		return GestureNone
	case duration >= DefaultLongPressDuration:
		return GestureLongPress
	default:
		return GestureTap
	}
}

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType, fyne.Position)

	touchStartTime time.Time
	touchStartPos  fyne.Position
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType, fyne.Position)) *GestureHandler {
	return &GestureHandler{onGesture: onGesture}
}

// TouchDown starts tracking a touch
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp ends a touch and reports the gesture it made
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	gesture := ClassifyGesture(dx, dy, time.Since(gh.touchStartTime))
	gh.touchStartTime = time.Time{}

	if gh.onGesture != nil {
		gh.onGesture(gesture, event.Position)
	}
}

// TouchCancel drops the tracked touch
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}
