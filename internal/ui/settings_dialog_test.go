package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/memegen/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	settings.SetExportDirectory(t.TempDir())
	sd := NewSettingsDialog(settings, NewLocalization(), window, nil)
	sd.loadCurrentSettings()
	return sd, settings
}

func TestSettingsDialog_LoadCurrentSettings(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	if sd.exportDirEntry.Text != settings.GetExportDirectory() {
		t.Errorf("export dir = %q, expected %q", sd.exportDirEntry.Text, settings.GetExportDirectory())
	}
	if sd.widthEntry.Text != "400" || sd.heightEntry.Text != "400" {
		t.Errorf("size = %sx%s, expected 400x400", sd.widthEntry.Text, sd.heightEntry.Text)
	}
	if sd.fontSizeEntry.Text != "30" {
		t.Errorf("font size = %q, expected 30", sd.fontSizeEntry.Text)
	}
	if !sd.autoReload.Checked {
		t.Error("auto reload should be checked by default")
	}
}

func TestSettingsDialog_Apply(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	dir := t.TempDir()

	saved := false
	sd.onSaved = func() { saved = true }

	sd.exportDirEntry.SetText(dir)
	sd.widthEntry.SetText("640")
	sd.heightEntry.SetText("480")
	sd.fontSizeEntry.SetText("42.5")
	sd.autoReload.SetChecked(false)
	sd.languageSelect.SetSelected("Русский")

	sd.onSave(true)

	if !saved {
		t.Error("onSaved was not called")
	}
	if settings.GetExportDirectory() != dir {
		t.Errorf("GetExportDirectory() = %q, expected %q", settings.GetExportDirectory(), dir)
	}
	if w, h := settings.GetCanvasSize(); w != 640 || h != 480 {
		t.Errorf("GetCanvasSize() = %dx%d, expected 640x480", w, h)
	}
	if settings.GetFontSize() != 42.5 {
		t.Errorf("GetFontSize() = %v, expected 42.5", settings.GetFontSize())
	}
	if settings.GetAutoReload() {
		t.Error("GetAutoReload() = true, expected false")
	}
	if settings.GetLanguage() != "ru" {
		t.Errorf("GetLanguage() = %q, expected ru", settings.GetLanguage())
	}
}

func TestSettingsDialog_ApplyKeepsInvalidNumbers(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.widthEntry.SetText("wide")
	sd.heightEntry.SetText("250")
	sd.fontSizeEntry.SetText("big")
	sd.apply()

	if w, h := settings.GetCanvasSize(); w != 400 || h != 250 {
		t.Errorf("GetCanvasSize() = %dx%d, expected 400x250", w, h)
	}
	if settings.GetFontSize() != config.DefaultFontSize {
		t.Errorf("GetFontSize() = %v, expected %v", settings.GetFontSize(), config.DefaultFontSize)
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.widthEntry.SetText("800")
	sd.onSave(false)

	if w, _ := settings.GetCanvasSize(); w != 400 {
		t.Errorf("GetCanvasSize() width = %d, expected 400 after cancel", w)
	}
}
