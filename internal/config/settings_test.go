package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/memes"
	settings.SetExportDirectory(customDir)

	retrievedDir := settings.GetExportDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, retrievedDir)
	}
}

func TestVoiceLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetVoiceLanguage(); lang != "" {
		t.Errorf("Expected no voice by default, got %s", lang)
	}

	settings.SetVoiceLanguage("pt-BR")
	if lang := settings.GetVoiceLanguage(); lang != "pt-BR" {
		t.Errorf("Expected voice language pt-BR, got %s", lang)
	}
}

func TestVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if volume := settings.GetVolume(); volume != DefaultVolume {
		t.Errorf("Expected default volume %d, got %d", DefaultVolume, volume)
	}

	tests := []struct {
		name     string
		value    int
		expected int
	}{
		{"mute is kept", 0, 0},
		{"middle", 50, 50},
		{"full", 100, 100},
		{"below range", -5, 0},
		{"above range", 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings.SetVolume(tt.value)
			if got := settings.GetVolume(); got != tt.expected {
				t.Errorf("GetVolume() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestCanvasSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	width, height := settings.GetCanvasSize()
	if width != DefaultCanvasWidth || height != DefaultCanvasHeight {
		t.Errorf("Expected default canvas %dx%d, got %dx%d", DefaultCanvasWidth, DefaultCanvasHeight, width, height)
	}

	settings.SetCanvasSize(800, 600)
	width, height = settings.GetCanvasSize()
	if width != 800 || height != 600 {
		t.Errorf("Expected canvas 800x600, got %dx%d", width, height)
	}

	// Test boundary values
	settings.SetCanvasSize(10, 5000)
	width, height = settings.GetCanvasSize()
	if width != MinCanvasSize || height != MaxCanvasSize {
		t.Errorf("Expected clamped canvas %dx%d, got %dx%d", MinCanvasSize, MaxCanvasSize, width, height)
	}
}

func TestFontSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if size := settings.GetFontSize(); size != DefaultFontSize {
		t.Errorf("Expected default font size %v, got %v", DefaultFontSize, size)
	}

	settings.SetFontSize(48)
	if size := settings.GetFontSize(); size != 48 {
		t.Errorf("Expected font size 48, got %v", size)
	}

	settings.SetFontSize(2) // Should be clamped to MinFontSize
	if settings.GetFontSize() != MinFontSize {
		t.Error("Font size should be clamped to minimum")
	}

	settings.SetFontSize(500) // Should be clamped to MaxFontSize
	if settings.GetFontSize() != MaxFontSize {
		t.Error("Font size should be clamped to maximum")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestAutoReload(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoReload() {
		t.Error("Auto reload should be enabled by default")
	}

	settings.SetAutoReload(false)
	if settings.GetAutoReload() {
		t.Error("Expected auto reload to be disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
