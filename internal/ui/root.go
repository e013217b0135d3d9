package ui

import (
	"errors"
	"log"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/memegen/internal/config"
	"github.com/ytget/memegen/internal/imagewatch"
	"github.com/ytget/memegen/internal/meme"
	"github.com/ytget/memegen/internal/model"
	"github.com/ytget/memegen/internal/platform"
	"github.com/ytget/memegen/internal/render"
	"github.com/ytget/memegen/internal/speech"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	session      *meme.Session
	speaker      speech.Speaker
	catalog      *speech.Catalog
	watcher      *imagewatch.Watcher
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	preview      *PreviewSurface
	openBtn      *widget.Button
	topEntry     *widget.Entry
	bottomEntry  *widget.Entry
	generateBtn  *widget.Button
	clearBtn     *widget.Button
	readBtn      *widget.Button
	stopBtn      *widget.Button
	exportBtn    *widget.Button
	voiceLabel   *widget.Label
	voiceSelect  *widget.Select
	volumeTitle  *widget.Label
	volumeSlider *widget.Slider
	volumeIcon   *widget.Icon
	volumeLabel  *widget.Label
	statusLabel  *widget.Label

	stateMutex   sync.Mutex
	state        meme.State
	voices       []model.Voice
	activeSpeech string
	unsubscribe  func()
}

// NewRootUI creates and initializes the main UI. catalog, speaker and watcher
// may be nil when the host lacks them.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, session *meme.Session,
	speaker speech.Speaker, catalog *speech.Catalog, watcher *imagewatch.Watcher) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure export directory exists
	if err := platform.CreateDirectoryIfNotExists(settings.GetExportDirectory()); err != nil {
		log.Printf("failed to create export directory: %v", err)
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		session:      session,
		speaker:      speaker,
		catalog:      catalog,
		watcher:      watcher,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	if speaker != nil {
		speaker.SetUpdateCallback(ui.onSpeechUpdate)
	}
	session.OnChange(ui.onSessionChange)

	ui.setupUI()
	ui.applyState(session.State())

	if catalog != nil {
		voices, cancel := catalog.Subscribe()
		ui.unsubscribe = cancel
		go ui.consumeVoices(voices)
	} else {
		ui.voiceSelect.PlaceHolder = localization.GetText(KeyNoSpeechEngine)
		ui.voiceSelect.Refresh()
	}

	return ui
}

// Close stops listening for voice list changes
func (ui *RootUI) Close() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	text := ui.localization.GetText

	ui.createMenu()

	// Preview of the drawing surface
	ui.preview = NewPreviewSurface()
	ui.preview.OnTapped = func() {
		if ui.currentState().Phase == model.PhaseIdle {
			ui.onOpenImage()
		}
	}
	ui.preview.OnContextMenu = ui.showContextMenu

	ui.openBtn = widget.NewButton(text(KeyOpenImage), ui.onOpenImage)
	ui.openBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, settingsBtn, ui.openBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, settingsBtn, ui.openBtn)
	}

	// Caption entries
	ui.topEntry = widget.NewEntry()
	ui.topEntry.SetPlaceHolder(text(KeyTopText))
	ui.bottomEntry = widget.NewEntry()
	ui.bottomEntry.SetPlaceHolder(text(KeyBottomText))
	// Enter in the bottom field submits like the Generate button
	ui.bottomEntry.OnSubmitted = func(string) {
		if ui.currentState().Controls.Generate {
			ui.onGenerate()
		}
	}

	ui.generateBtn = widget.NewButton(text(KeyGenerate), ui.onGenerate)
	ui.generateBtn.Importance = widget.HighImportance
	ui.clearBtn = widget.NewButton(text(KeyClear), ui.onClear)

	// Voice selection stays disabled until the catalog first reports
	ui.voiceLabel = widget.NewLabel(text(KeyVoice))
	ui.voiceSelect = widget.NewSelect(nil, ui.onVoiceSelected)
	ui.voiceSelect.PlaceHolder = text(KeyLoadingVoices)
	ui.voiceSelect.Disable()

	// Volume slider with a four-state indicator
	ui.volumeTitle = widget.NewLabel(text(KeyVolume))
	ui.volumeSlider = widget.NewSlider(VolumeSliderMin, VolumeSliderMax)
	ui.volumeSlider.Step = VolumeSliderStep
	ui.volumeSlider.SetValue(float64(ui.settings.GetVolume()))
	ui.volumeSlider.OnChanged = ui.onVolumeChanged
	ui.volumeIcon = widget.NewIcon(nil)
	ui.volumeLabel = widget.NewLabel("")
	ui.updateVolumeIndicator(ui.settings.GetVolume())
	volumeRow := container.NewBorder(nil, nil, ui.volumeIcon, ui.volumeLabel, ui.volumeSlider)

	ui.readBtn = widget.NewButton(IconSpeaker+" "+text(KeyReadText), ui.onReadAloud)
	ui.stopBtn = widget.NewButton(IconStop, ui.onStopSpeech)
	ui.stopBtn.Disable()

	ui.exportBtn = widget.NewButton(text(KeyExport), ui.onExport)

	ui.statusLabel = widget.NewLabel(text(KeyReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	controls := container.NewVBox(
		header,
		widget.NewSeparator(),
		ui.topEntry,
		ui.bottomEntry,
		ui.mobile.ButtonRow(ui.mobile.TouchTarget(ui.generateBtn), ui.mobile.TouchTarget(ui.clearBtn)),
		widget.NewSeparator(),
		ui.voiceLabel,
		ui.voiceSelect,
		ui.volumeTitle,
		volumeRow,
		ui.mobile.ButtonRow(ui.mobile.TouchTarget(ui.readBtn), ui.mobile.TouchTarget(ui.stopBtn)),
		widget.NewSeparator(),
		ui.exportBtn,
		ui.statusLabel,
	)

	ui.window.SetContent(ui.mobile.EditorLayout(ui.preview, controls))

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	openItem := fyne.NewMenuItem(text(KeyOpenImage), ui.onOpenImage)
	exportItem := fyne.NewMenuItem(text(KeyExport), ui.onExport)
	exportAsItem := fyne.NewMenuItem(text(KeyExportAs), ui.onExportAs)
	settingsItem := fyne.NewMenuItem(text(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(text(KeyLanguage))
	for _, code := range languageOrder[1:] {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(text(KeyFile), openItem, exportItem, exportAsItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText

	ui.window.SetTitle(text(KeyAppTitle))

	ui.openBtn.SetText(text(KeyOpenImage))
	ui.topEntry.SetPlaceHolder(text(KeyTopText))
	ui.bottomEntry.SetPlaceHolder(text(KeyBottomText))
	ui.generateBtn.SetText(text(KeyGenerate))
	ui.clearBtn.SetText(text(KeyClear))
	ui.readBtn.SetText(IconSpeaker + " " + text(KeyReadText))
	ui.exportBtn.SetText(text(KeyExport))
	ui.voiceLabel.SetText(text(KeyVoice))
	ui.volumeTitle.SetText(text(KeyVolume))
	ui.statusLabel.SetText(text(KeyReady))
}

func (ui *RootUI) currentState() meme.State {
	ui.stateMutex.Lock()
	defer ui.stateMutex.Unlock()
	return ui.state
}

// onSessionChange receives session updates from any goroutine
func (ui *RootUI) onSessionChange(state meme.State) {
	fyne.Do(func() {
		ui.applyState(state)
	})
}

// applyState redraws the preview and sets the buttons for the phase
func (ui *RootUI) applyState(state meme.State) {
	ui.stateMutex.Lock()
	ui.state = state
	ui.stateMutex.Unlock()

	ui.preview.SetImage(state.Image)
	setEnabled(ui.generateBtn, state.Controls.Generate)
	setEnabled(ui.clearBtn, state.Controls.Clear)
	setEnabled(ui.readBtn, state.Controls.ReadAloud)
	setEnabled(ui.exportBtn, state.Phase != model.PhaseIdle)
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

// onOpenImage shows the picture chooser
func (ui *RootUI) onOpenImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(KeyErrorLoadingImage, err)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		uri := reader.URI()
		if uri.Scheme() == "file" {
			if err := ui.OpenImage(uri.Path()); err != nil {
				ui.showError(KeyErrorLoadingImage, err)
			}
			return
		}

		// content:// and other non-file sources cannot be watched
		if err := ui.session.LoadImageReader(reader, uri.Name()); err != nil {
			ui.showError(KeyErrorLoadingImage, err)
			return
		}
		ui.unwatch()
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.SupportedImageExtensions))
	fd.Show()
}

// OpenImage loads the picture at path and follows it for changes
func (ui *RootUI) OpenImage(path string) error {
	if err := ui.session.LoadImage(path); err != nil {
		return err
	}
	ui.watch(path)
	return nil
}

func (ui *RootUI) watch(path string) {
	if ui.watcher == nil || !ui.settings.GetAutoReload() {
		return
	}
	if err := ui.watcher.Watch(path); err != nil {
		log.Printf("failed to watch image %s: %v", path, err)
	}
}

func (ui *RootUI) unwatch() {
	if ui.watcher != nil {
		ui.watcher.Unwatch()
	}
}

// OnImageFileChanged redraws the picture after it changed on disk
func (ui *RootUI) OnImageFileChanged(path string) {
	if !ui.settings.GetAutoReload() {
		return
	}
	log.Printf("Image changed on disk: %s", path)
	if err := ui.session.Reload(); err != nil {
		log.Printf("failed to reload image: %v", err)
		return
	}
	fyne.Do(func() {
		ui.statusLabel.SetText(ui.localization.GetText(KeyImageReloaded))
	})
}

// onGenerate draws the typed captions
func (ui *RootUI) onGenerate() {
	caption := model.Caption{Top: ui.topEntry.Text, Bottom: ui.bottomEntry.Text}
	if err := ui.session.Generate(caption); err != nil {
		log.Printf("failed to generate meme: %v", err)
	}
}

// onClear erases the surface
func (ui *RootUI) onClear() {
	if err := ui.session.Clear(); err != nil {
		log.Printf("failed to clear meme: %v", err)
		return
	}
	ui.unwatch()
}

// onReadAloud speaks the caption entries as typed now, with the selected
// voice and volume
func (ui *RootUI) onReadAloud() {
	caption := model.Caption{Top: ui.topEntry.Text, Bottom: ui.bottomEntry.Text}
	lang := ui.selectedVoiceLang()
	volume := int(math.Round(ui.volumeSlider.Value))

	task, err := ui.session.ReadAloud(caption, lang, volume)
	if err != nil {
		if errors.Is(err, speech.ErrNoSpeechEngine) {
			ui.showPopup(ui.localization.GetText(KeyNoSpeechEngine))
			return
		}
		if errors.Is(err, speech.ErrNotSpeakable) {
			return
		}
		ui.showError(KeyErrorSpeaking, err)
		return
	}

	ui.stateMutex.Lock()
	ui.activeSpeech = task.ID
	ui.stateMutex.Unlock()
	log.Printf("Reading captions: id=%s lang=%s volume=%d", task.ID, lang, volume)
}

// onStopSpeech stops the utterance started from this window
func (ui *RootUI) onStopSpeech() {
	ui.stateMutex.Lock()
	id := ui.activeSpeech
	ui.stateMutex.Unlock()

	if id == "" || ui.speaker == nil {
		return
	}
	if err := ui.speaker.Stop(id); err != nil {
		log.Printf("failed to stop speech %s: %v", id, err)
	}
}

// onSpeechUpdate reflects speech task progress in the status line
func (ui *RootUI) onSpeechUpdate(task model.SpeechTask) {
	log.Printf("Speech update received: id=%s status=%s", task.ID, task.Status)

	fyne.Do(func() {
		ui.stateMutex.Lock()
		active := ui.activeSpeech
		ui.stateMutex.Unlock()
		if task.ID != active {
			return
		}
		ui.showSpeechStatus(task)
	})
}

func (ui *RootUI) showSpeechStatus(task model.SpeechTask) {
	text := ui.localization.GetText

	switch {
	case task.Status == model.TaskStatusPending || task.Status.IsActive():
		ui.stopBtn.Enable()
		ui.statusLabel.SetText(text(KeySpeaking) + StatusSeparator + task.GetDisplayText())
	case task.Status == model.TaskStatusError:
		ui.stopBtn.Disable()
		ui.statusLabel.SetText(text(KeyErrorSpeaking) + StatusSeparator + task.LastError)
	default:
		ui.stopBtn.Disable()
		ui.statusLabel.SetText(text(KeyReady))
	}
}

// consumeVoices feeds voice lists from the catalog to the select
func (ui *RootUI) consumeVoices(voices <-chan []model.Voice) {
	for list := range voices {
		fyne.Do(func() {
			ui.setVoices(list)
		})
	}
}

// setVoices replaces the select options and enables it. The previous choice
// is kept when still offered, then the saved language, then the engine default.
func (ui *RootUI) setVoices(voices []model.Voice) {
	ui.stateMutex.Lock()
	ui.voices = voices
	ui.stateMutex.Unlock()

	previous := ui.voiceSelect.Selected
	ui.voiceSelect.Options = model.VoiceLabels(voices)
	ui.voiceSelect.Enable()

	if len(voices) == 0 {
		ui.voiceSelect.ClearSelected()
		ui.voiceSelect.PlaceHolder = ui.localization.GetText(KeyNoSpeechEngine)
		ui.voiceSelect.Refresh()
		return
	}

	if _, ok := model.FindVoiceByLabel(voices, previous); ok {
		ui.voiceSelect.Refresh()
		return
	}

	choice, ok := model.FindVoiceByLang(voices, ui.settings.GetVoiceLanguage())
	if !ok {
		choice, _ = model.DefaultVoice(voices)
	}
	ui.voiceSelect.SetSelected(choice.Label())
}

// onVoiceSelected remembers the chosen voice language
func (ui *RootUI) onVoiceSelected(label string) {
	ui.stateMutex.Lock()
	voices := ui.voices
	ui.stateMutex.Unlock()

	if voice, ok := model.FindVoiceByLabel(voices, label); ok {
		ui.settings.SetVoiceLanguage(voice.Lang)
	}
}

func (ui *RootUI) selectedVoiceLang() string {
	ui.stateMutex.Lock()
	voices := ui.voices
	ui.stateMutex.Unlock()

	if voice, ok := model.FindVoiceByLabel(voices, ui.voiceSelect.Selected); ok {
		return voice.Lang
	}
	return ui.settings.GetVoiceLanguage()
}

// onVolumeChanged updates the indicator and stores the position
func (ui *RootUI) onVolumeChanged(value float64) {
	volume := int(math.Round(value))
	ui.updateVolumeIndicator(volume)
	ui.settings.SetVolume(volume)
}

func (ui *RootUI) updateVolumeIndicator(volume int) {
	level := model.VolumeLevelFor(volume)
	if icon, err := VolumeIconResource(level); err == nil {
		ui.volumeIcon.SetResource(icon)
	} else {
		log.Printf("failed to load volume icon: %v", err)
	}
	ui.volumeLabel.SetText(level.Alt())
}

// onExport writes the meme next to the other exports
func (ui *RootUI) onExport() {
	state := ui.currentState()
	if state.Phase == model.PhaseIdle {
		ui.showPopup(ui.localization.GetText(KeyNothingToExport))
		return
	}

	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.showError(KeyErrorExporting, err)
		return
	}
	path, err := platform.GenerateExportPath(dir, state.ImagePath)
	if err != nil {
		ui.showError(KeyErrorExporting, err)
		return
	}
	ui.exportTo(path)
}

// onExportAs lets the user choose the export file
func (ui *RootUI) onExportAs() {
	state := ui.currentState()
	if state.Phase == model.PhaseIdle {
		ui.showPopup(ui.localization.GetText(KeyNothingToExport))
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.showError(KeyErrorExporting, err)
			return
		}
		if writer == nil {
			return // cancelled
		}
		path := writer.URI().Path()
		writer.Close()

		switch strings.ToLower(filepath.Ext(path)) {
		case ".png", ".jpg", ".jpeg":
		default:
			path += platform.ExportExtension
		}
		ui.exportTo(path)
	}, ui.window)

	if suggested, err := platform.GenerateExportPath(ui.settings.GetExportDirectory(), state.ImagePath); err == nil {
		fd.SetFileName(filepath.Base(suggested))
	}
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"}))
	fd.Show()
}

func (ui *RootUI) exportTo(path string) {
	if err := ui.session.Export(path); err != nil {
		if errors.Is(err, meme.ErrNoImage) {
			ui.showPopup(ui.localization.GetText(KeyNothingToExport))
			return
		}
		ui.showError(KeyErrorExporting, err)
		return
	}

	ui.statusLabel.SetText(ui.localization.GetText(KeyExported) + StatusSeparator + filepath.Base(path))
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyExported),
		Content: filepath.Base(path),
	})
	ui.showExportToast(path)
}

// showExportToast shows an in-app toast with reveal/open actions
func (ui *RootUI) showExportToast(path string) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyExported))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(filepath.Base(path))
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
		ui.onRevealFile(path)
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		ui.onOpenFile(path)
	})

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		toastPopup.Hide()
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(revealBtn, openBtn),
	)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}

// onRevealFile shows the file in the system file manager
func (ui *RootUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		ui.showError(KeyErrorOpeningFile, err)
	}
}

// onOpenFile opens the file with the default application
func (ui *RootUI) onOpenFile(path string) {
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		ui.showError(KeyErrorOpeningFile, err)
	}
}

// showContextMenu offers the phase's actions at pos
func (ui *RootUI) showContextMenu(pos fyne.Position) {
	text := ui.localization.GetText
	state := ui.currentState()

	items := []*fyne.MenuItem{fyne.NewMenuItem(text(KeyOpenImage), ui.onOpenImage)}
	if state.Phase != model.PhaseIdle {
		items = append(items, fyne.NewMenuItem(text(KeyExport), ui.onExport))
	}
	if state.Controls.Clear {
		items = append(items, fyne.NewMenuItem(text(KeyClear), ui.onClear))
	}

	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), ui.window.Canvas(), pos)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies stored settings to the running session
func (ui *RootUI) onSettingsSaved() {
	width, height := ui.settings.GetCanvasSize()
	style := render.DefaultStyle()
	style.FontSize = ui.settings.GetFontSize()
	if err := ui.session.Resize(width, height, style); err != nil {
		ui.showError(KeyErrorLoadingImage, err)
	}

	if ui.settings.GetAutoReload() {
		if path := ui.currentState().ImagePath; path != "" {
			ui.watch(path)
		}
	} else {
		ui.unwatch()
	}

	if code := ui.settings.GetLanguage(); code != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(code)
	}

	ui.showPopup(ui.localization.GetText(KeySettingsSaved))
}

func (ui *RootUI) showError(key string, err error) {
	log.Printf("%s: %v", ui.localization.GetText(key), err)
	ui.showPopup(ui.localization.GetText(key) + ": " + err.Error())
}

func (ui *RootUI) showPopup(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}
