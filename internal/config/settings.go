package config

import (
	"fyne.io/fyne/v2"
	"github.com/ytget/memegen/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir    = "export_directory"
	KeyVoiceLang    = "voice_language"
	KeyVolume       = "speech_volume"
	KeyCanvasWidth  = "canvas_width"
	KeyCanvasHeight = "canvas_height"
	KeyFontSize     = "caption_font_size"
	KeyLanguage     = "app_language"
	KeyAutoReload   = "auto_reload_image"
)

// Default values
const (
	DefaultVolume       = 100
	DefaultCanvasWidth  = 400
	DefaultCanvasHeight = 400
	DefaultFontSize     = 30.0
	DefaultLanguage     = "system"
	DefaultAutoReload   = true
)

// Limits applied by the setters
const (
	MinCanvasSize = 100
	MaxCanvasSize = 2000
	MinFontSize   = 8.0
	MaxFontSize   = 120.0
	MinVolume     = 0
	MaxVolume     = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportDirectory returns the directory memes are exported to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use system default Pictures directory
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = "/tmp/memes"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetVoiceLanguage returns the language tag of the last chosen voice.
// Empty means the engine default.
func (s *Settings) GetVoiceLanguage() string {
	return s.app.Preferences().String(KeyVoiceLang)
}

// SetVoiceLanguage remembers the chosen voice
func (s *Settings) SetVoiceLanguage(lang string) {
	s.app.Preferences().SetString(KeyVoiceLang, lang)
}

// GetVolume returns the read-aloud volume slider position (0-100)
func (s *Settings) GetVolume() int {
	return clampInt(s.app.Preferences().IntWithFallback(KeyVolume, DefaultVolume), MinVolume, MaxVolume)
}

// SetVolume sets the read-aloud volume
func (s *Settings) SetVolume(volume int) {
	s.app.Preferences().SetInt(KeyVolume, clampInt(volume, MinVolume, MaxVolume))
}

// GetCanvasSize returns the drawing surface size in pixels
func (s *Settings) GetCanvasSize() (int, int) {
	prefs := s.app.Preferences()
	width := clampInt(prefs.IntWithFallback(KeyCanvasWidth, DefaultCanvasWidth), MinCanvasSize, MaxCanvasSize)
	height := clampInt(prefs.IntWithFallback(KeyCanvasHeight, DefaultCanvasHeight), MinCanvasSize, MaxCanvasSize)
	return width, height
}

// SetCanvasSize sets the drawing surface size
func (s *Settings) SetCanvasSize(width, height int) {
	prefs := s.app.Preferences()
	prefs.SetInt(KeyCanvasWidth, clampInt(width, MinCanvasSize, MaxCanvasSize))
	prefs.SetInt(KeyCanvasHeight, clampInt(height, MinCanvasSize, MaxCanvasSize))
}

// GetFontSize returns the caption font size in points
func (s *Settings) GetFontSize() float64 {
	size := s.app.Preferences().FloatWithFallback(KeyFontSize, DefaultFontSize)
	return clampFloat(size, MinFontSize, MaxFontSize)
}

// SetFontSize sets the caption font size
func (s *Settings) SetFontSize(size float64) {
	s.app.Preferences().SetFloat(KeyFontSize, clampFloat(size, MinFontSize, MaxFontSize))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoReload returns whether the image is redrawn when its file changes
func (s *Settings) GetAutoReload() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoReload, DefaultAutoReload)
}

// SetAutoReload sets whether the image is redrawn when its file changes
func (s *Settings) SetAutoReload(autoReload bool) {
	s.app.Preferences().SetBool(KeyAutoReload, autoReload)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
