package model

import "testing"

func TestVolumeLevelFor(t *testing.T) {
	tests := []struct {
		value    int
		expected VolumeLevel
	}{
		{-5, VolumeLevelMute},
		{0, VolumeLevelMute},
		{1, VolumeLevelLow},
		{33, VolumeLevelLow},
		{34, VolumeLevelMedium},
		{66, VolumeLevelMedium},
		{67, VolumeLevelHigh},
		{100, VolumeLevelHigh},
	}

	for _, test := range tests {
		result := VolumeLevelFor(test.value)
		if result != test.expected {
			t.Errorf("VolumeLevelFor(%d) = %d, expected %d", test.value, result, test.expected)
		}
	}
}

func TestVolumeLevel_IconAndAlt(t *testing.T) {
	tests := []struct {
		level        VolumeLevel
		expectedIcon string
		expectedAlt  string
	}{
		{VolumeLevelMute, "volume-level-0.svg", "Volume Level 0"},
		{VolumeLevelLow, "volume-level-1.svg", "Volume Level 1"},
		{VolumeLevelMedium, "volume-level-2.svg", "Volume Level 2"},
		{VolumeLevelHigh, "volume-level-3.svg", "Volume Level 3"},
	}

	for _, test := range tests {
		if icon := test.level.IconName(); icon != test.expectedIcon {
			t.Errorf("VolumeLevel(%d).IconName() = %s, expected %s", test.level, icon, test.expectedIcon)
		}
		if alt := test.level.Alt(); alt != test.expectedAlt {
			t.Errorf("VolumeLevel(%d).Alt() = %s, expected %s", test.level, alt, test.expectedAlt)
		}
	}
}

func TestVolumeFraction(t *testing.T) {
	tests := []struct {
		value    int
		expected float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{-10, 0},
		{150, 1},
	}

	for _, test := range tests {
		result := VolumeFraction(test.value)
		if result != test.expected {
			t.Errorf("VolumeFraction(%d) = %v, expected %v", test.value, result, test.expected)
		}
	}
}
