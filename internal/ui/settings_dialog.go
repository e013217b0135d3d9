package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/memegen/internal/config"
)

// languageOrder fixes the order of the language select
var languageOrder = []string{"system", "en", "ru", "pt"}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	exportDirEntry *widget.Entry
	widthEntry     *widget.Entry
	heightEntry    *widget.Entry
	fontSizeEntry  *widget.Entry
	autoReload     *widget.Check
	languageSelect *widget.Select
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// the values are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	// Canvas size
	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinCanvasSize, config.MaxCanvasSize))
	sd.widthEntry.Validator = intValidator
	sd.heightEntry = widget.NewEntry()
	sd.heightEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinCanvasSize, config.MaxCanvasSize))
	sd.heightEntry.Validator = intValidator
	sizeRow := container.NewGridWithColumns(2, sd.widthEntry, sd.heightEntry)

	// Caption font size
	sd.fontSizeEntry = widget.NewEntry()
	sd.fontSizeEntry.SetPlaceHolder(fmt.Sprintf("%g-%g", config.MinFontSize, config.MaxFontSize))
	sd.fontSizeEntry.Validator = floatValidator

	sd.autoReload = widget.NewCheck(text(KeyAutoReload), nil)

	// Language selection, shown by name
	names := sd.settings.GetLanguageOptions()
	languageNames := make([]string, 0, len(languageOrder))
	for _, code := range languageOrder {
		languageNames = append(languageNames, names[code])
	}
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyCaptionSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewLabel(text(KeyCanvasSize)+":"),
		sizeRow,

		widget.NewLabel(text(KeyFontSize)+":"),
		sd.fontSizeEntry,

		sd.autoReload,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	width, height := sd.settings.GetCanvasSize()

	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.widthEntry.SetText(strconv.Itoa(width))
	sd.heightEntry.SetText(strconv.Itoa(height))
	sd.fontSizeEntry.SetText(strconv.FormatFloat(sd.settings.GetFontSize(), 'g', -1, 64))
	sd.autoReload.SetChecked(sd.settings.GetAutoReload())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the valid values from the form. Unparseable numbers keep
// their previous setting.
func (sd *SettingsDialog) apply() {
	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	width, height := sd.settings.GetCanvasSize()
	if w, err := strconv.Atoi(sd.widthEntry.Text); err == nil {
		width = w
	}
	if h, err := strconv.Atoi(sd.heightEntry.Text); err == nil {
		height = h
	}
	sd.settings.SetCanvasSize(width, height)

	if size, err := strconv.ParseFloat(sd.fontSizeEntry.Text, 64); err == nil {
		sd.settings.SetFontSize(size)
	}

	sd.settings.SetAutoReload(sd.autoReload.Checked)

	for code, name := range sd.settings.GetLanguageOptions() {
		if name == sd.languageSelect.Selected {
			sd.settings.SetLanguage(code)
			break
		}
	}
}

func intValidator(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("not a whole number: %q", s)
	}
	return nil
}

func floatValidator(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	return nil
}
