package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle     = "app_title"
	KeyErrorTitle   = "error_title"
	KeyErrorMessage = "error_message"
	KeyOK           = "ok"
	KeyLoading      = "loading"
	KeyPrevious     = "previous"
	KeyNext         = "next"

	KeySettingsTitle     = "settings_title"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBaseURL           = "base_url"
	KeyMaxResourceID     = "max_resource_id"
	KeyLanguage          = "language"
	KeyRestartNote       = "restart_note"
	KeyInvalidMaxID      = "invalid_max_id"
	KeySettingsSaved     = "settings_saved"
	KeySettingsSavedNote = "settings_saved_note"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:     "PokeApp",
		KeyErrorTitle:   "Error",
		KeyErrorMessage: "Something went wrong with the request!",
		KeyOK:           "OK",
		KeyLoading:      "Loading...",
		KeyPrevious:     "Previous",
		KeyNext:         "Next",

		KeySettingsTitle:     "Settings",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBaseURL:           "Resource base URL:",
		KeyMaxResourceID:     "Highest resource ID:",
		KeyLanguage:          "Language:",
		KeyRestartNote:       "Base URL changes apply after a restart.",
		KeyInvalidMaxID:      "Highest resource ID must be a whole number.",
		KeySettingsSaved:     "Settings Saved",
		KeySettingsSavedNote: "Settings have been saved.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:     "PokeApp",
		KeyErrorTitle:   "Erro",
		KeyErrorMessage: "Aconteceu algo de errado na requisição!!!",
		KeyOK:           "OK",
		KeyLoading:      "Carregando...",
		KeyPrevious:     "Anterior",
		KeyNext:         "Próximo",

		KeySettingsTitle:     "Configurações",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBaseURL:           "URL base dos recursos:",
		KeyMaxResourceID:     "Maior ID de recurso:",
		KeyLanguage:          "Idioma:",
		KeyRestartNote:       "Mudanças na URL base valem após reiniciar.",
		KeyInvalidMaxID:      "O maior ID de recurso deve ser um número inteiro.",
		KeySettingsSaved:     "Configurações Salvas",
		KeySettingsSavedNote: "As configurações foram salvas.",
	}
}
