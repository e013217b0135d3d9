package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconSpeaker  = "🔊"
	IconStop     = "⏹"
)

// StatusSeparator joins a status label and its detail
const StatusSeparator = ": "

// Layout sizing
const (
	PreviewMinSize  float32 = 320
	LogoSize        float32 = 32
	SettingsDialogW float32 = 460
	SettingsDialogH float32 = 420

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Slider range of the volume control
const (
	VolumeSliderMin  = 0
	VolumeSliderMax  = 100
	VolumeSliderStep = 1
)
