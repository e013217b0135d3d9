package ui

import (
	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyOpenImage         = "open_image"
	KeyTopText           = "top_text"
	KeyBottomText        = "bottom_text"
	KeyGenerate          = "generate"
	KeyClear             = "clear"
	KeyReadText          = "read_text"
	KeyStop              = "stop"
	KeyVoice             = "voice"
	KeyLoadingVoices     = "loading_voices"
	KeyVolume            = "volume"
	KeyExport            = "export"
	KeyExportAs          = "export_as"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeyExportDirectory   = "export_directory"
	KeyCanvasSize        = "canvas_size"
	KeyFontSize          = "font_size"
	KeyAutoReload        = "auto_reload"
	KeyCaptionSettings   = "caption_settings"
	KeyInterfaceSettings = "interface_settings"
	KeySettingsSaved     = "settings_saved"
	KeyExported          = "exported"
	KeyImageReloaded     = "image_reloaded"
	KeySpeaking          = "speaking"
	KeyReady             = "ready"
	KeyErrorLoadingImage = "error_loading_image"
	KeyErrorExporting    = "error_exporting"
	KeyErrorSpeaking     = "error_speaking"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyNoSpeechEngine    = "no_speech_engine"
	KeyNothingToExport   = "nothing_to_export"
	KeyInvalidNumber     = "invalid_number"
)

// supportedLanguages is ordered; the first entry is the fallback
var supportedLanguages = []language.Tag{language.English, language.Russian, language.Portuguese}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// MatchLanguage maps a locale such as "pt-BR" or "ru_RU" to the closest
// translated language code, falling back to English.
func MatchLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "en"
	}
	base, _ := supportedLanguages[index].Base()
	return base.String()
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = MatchLanguage(lang.SystemLocale().String())
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Meme Generator",
		KeyOpenImage:         "Open Image",
		KeyTopText:           "Top text",
		KeyBottomText:        "Bottom text",
		KeyGenerate:          "Generate",
		KeyClear:             "Clear",
		KeyReadText:          "Read Text",
		KeyStop:              "Stop",
		KeyVoice:             "Voice",
		KeyLoadingVoices:     "Loading voices...",
		KeyVolume:            "Volume",
		KeyExport:            "Export",
		KeyExportAs:          "Export As...",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyReveal:            "Reveal",
		KeyOpen:              "Open",
		KeyExportDirectory:   "Export Directory",
		KeyCanvasSize:        "Canvas Size (width × height)",
		KeyFontSize:          "Caption Font Size",
		KeyAutoReload:        "Reload image when the file changes",
		KeyCaptionSettings:   "Meme Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyExported:          "Meme exported",
		KeyImageReloaded:     "Image reloaded",
		KeySpeaking:          "Speaking",
		KeyReady:             "Ready",
		KeyErrorLoadingImage: "Error loading image",
		KeyErrorExporting:    "Error exporting meme",
		KeyErrorSpeaking:     "Error reading text",
		KeyErrorOpeningFile:  "Error opening file",
		KeyNoSpeechEngine:    "No speech engine found",
		KeyNothingToExport:   "Open an image first",
		KeyInvalidNumber:     "Invalid number",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Генератор мемов",
		KeyOpenImage:         "Открыть изображение",
		KeyTopText:           "Верхний текст",
		KeyBottomText:        "Нижний текст",
		KeyGenerate:          "Создать",
		KeyClear:             "Очистить",
		KeyReadText:          "Прочитать",
		KeyStop:              "Стоп",
		KeyVoice:             "Голос",
		KeyLoadingVoices:     "Загрузка голосов...",
		KeyVolume:            "Громкость",
		KeyExport:            "Экспорт",
		KeyExportAs:          "Экспорт как...",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyReveal:            "Показать",
		KeyOpen:              "Открыть",
		KeyExportDirectory:   "Папка экспорта",
		KeyCanvasSize:        "Размер холста (ширина × высота)",
		KeyFontSize:          "Размер шрифта подписи",
		KeyAutoReload:        "Перезагружать изображение при изменении файла",
		KeyCaptionSettings:   "Настройки мема",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyExported:          "Мем сохранён",
		KeyImageReloaded:     "Изображение обновлено",
		KeySpeaking:          "Чтение",
		KeyReady:             "Готово",
		KeyErrorLoadingImage: "Ошибка загрузки изображения",
		KeyErrorExporting:    "Ошибка экспорта мема",
		KeyErrorSpeaking:     "Ошибка чтения текста",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyNoSpeechEngine:    "Синтезатор речи не найден",
		KeyNothingToExport:   "Сначала откройте изображение",
		KeyInvalidNumber:     "Неверное число",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gerador de Memes",
		KeyOpenImage:         "Abrir Imagem",
		KeyTopText:           "Texto superior",
		KeyBottomText:        "Texto inferior",
		KeyGenerate:          "Gerar",
		KeyClear:             "Limpar",
		KeyReadText:          "Ler Texto",
		KeyStop:              "Parar",
		KeyVoice:             "Voz",
		KeyLoadingVoices:     "Carregando vozes...",
		KeyVolume:            "Volume",
		KeyExport:            "Exportar",
		KeyExportAs:          "Exportar Como...",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyReveal:            "Mostrar",
		KeyOpen:              "Abrir",
		KeyExportDirectory:   "Diretório de Exportação",
		KeyCanvasSize:        "Tamanho da Tela (largura × altura)",
		KeyFontSize:          "Tamanho da Fonte da Legenda",
		KeyAutoReload:        "Recarregar imagem quando o arquivo mudar",
		KeyCaptionSettings:   "Configurações do Meme",
		KeyInterfaceSettings: "Configurações da Interface",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyExported:          "Meme exportado",
		KeyImageReloaded:     "Imagem recarregada",
		KeySpeaking:          "Lendo",
		KeyReady:             "Pronto",
		KeyErrorLoadingImage: "Erro ao carregar imagem",
		KeyErrorExporting:    "Erro ao exportar meme",
		KeyErrorSpeaking:     "Erro ao ler texto",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyNoSpeechEngine:    "Nenhum sintetizador de voz encontrado",
		KeyNothingToExport:   "Abra uma imagem primeiro",
		KeyInvalidNumber:     "Número inválido",
	}
}
