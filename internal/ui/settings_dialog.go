package ui

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pokeapp/poke-viewer/internal/config"
)

// SettingsDialog edits the stored preferences. onSaved runs after a save with
// whether the UI language changed.
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(languageChanged bool)

	// UI components
	baseURLEntry   *widget.Entry
	maxIDEntry     *widget.Entry
	languageSelect *widget.Select

	// display name -> language code
	languageCodes map[string]string
	loadedBaseURL string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(bool)) *SettingsDialog {
	return &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}
}

// Show builds the dialog in the current language and displays it
func (sd *SettingsDialog) Show() {
	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultBaseURL)

	sd.maxIDEntry = widget.NewEntry()
	sd.maxIDEntry.SetPlaceHolder(strconv.Itoa(config.MinResourceID) + "-" + strconv.Itoa(config.UpperMaxResourceID))

	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	restartNote := widget.NewLabelWithStyle(sd.text(KeyRestartNote), fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	restartNote.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		widget.NewLabel(sd.text(KeyBaseURL)),
		sd.baseURLEntry,
		restartNote,

		widget.NewLabel(sd.text(KeyMaxResourceID)),
		sd.maxIDEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.text(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.text(KeySettingsTitle),
		sd.text(KeySave),
		sd.text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.loadedBaseURL = sd.settings.GetBaseURL()
	sd.baseURLEntry.SetText(sd.loadedBaseURL)
	sd.maxIDEntry.SetText(strconv.Itoa(sd.settings.GetMaxResourceID()))

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onSave validates and stores the form
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	maxID, err := strconv.Atoi(strings.TrimSpace(sd.maxIDEntry.Text))
	if err != nil {
		dialog.ShowError(errors.New(sd.text(KeyInvalidMaxID)), sd.window)
		return
	}
	sd.settings.SetMaxResourceID(maxID)

	message := sd.text(KeySettingsSavedNote)
	if baseURL := strings.TrimSpace(sd.baseURLEntry.Text); baseURL != sd.loadedBaseURL {
		sd.settings.SetBaseURL(baseURL)
		message += "\n" + sd.text(KeyRestartNote)
	}

	languageChanged := false
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
		previous := sd.localization.GetCurrentLanguage()
		sd.localization.SetLanguage(code)
		languageChanged = previous != sd.localization.GetCurrentLanguage()
	}

	if sd.onSaved != nil {
		sd.onSaved(languageChanged)
	}

	dialog.ShowInformation(sd.text(KeySettingsSaved), message, sd.window)
}

func (sd *SettingsDialog) text(key string) string {
	return sd.localization.GetText(key)
}
