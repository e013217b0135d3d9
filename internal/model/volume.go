package model

import "fmt"

// Slider bounds for the volume control
const (
	VolumeMin = 0
	VolumeMax = 100
)

// Bucket thresholds: 0 | 1-33 | 34-66 | 67-100
const (
	volumeLevelTwoFrom   = 34
	volumeLevelThreeFrom = 67
)

// VolumeLevel is the icon state shown next to the volume slider
type VolumeLevel int

const (
	VolumeLevelMute VolumeLevel = iota
	VolumeLevelLow
	VolumeLevelMedium
	VolumeLevelHigh
)

// VolumeLevelFor picks the icon state for a slider value
func VolumeLevelFor(value int) VolumeLevel {
	switch {
	case value <= VolumeMin:
		return VolumeLevelMute
	case value < volumeLevelTwoFrom:
		return VolumeLevelLow
	case value < volumeLevelThreeFrom:
		return VolumeLevelMedium
	default:
		return VolumeLevelHigh
	}
}

// IconName returns the icon file name for the level
func (l VolumeLevel) IconName() string {
	return fmt.Sprintf("volume-level-%d.svg", int(l))
}

// Alt returns the accessible label for the level
func (l VolumeLevel) Alt() string {
	return fmt.Sprintf("Volume Level %d", int(l))
}

// VolumeFraction converts a 0-100 slider value to the 0.0-1.0 speech volume
func VolumeFraction(value int) float64 {
	if value < VolumeMin {
		value = VolumeMin
	}
	if value > VolumeMax {
		value = VolumeMax
	}
	return float64(value) / VolumeMax
}
