package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/pokeapp/poke-viewer/internal/config"
)

func TestSettingsDialog_LoadsCurrentSettings(t *testing.T) {
	home, _, settings := makeHome(t)
	settings.SetMaxResourceID(151)

	home.onShowSettings()
	sd := home.settingsDialog

	if sd.baseURLEntry.Text != config.DefaultBaseURL {
		t.Errorf("Expected base URL %s, got %s", config.DefaultBaseURL, sd.baseURLEntry.Text)
	}
	if sd.maxIDEntry.Text != "151" {
		t.Errorf("Expected max ID '151', got '%s'", sd.maxIDEntry.Text)
	}
	if sd.languageSelect.Selected != "System Default" {
		t.Errorf("Expected language 'System Default', got '%s'", sd.languageSelect.Selected)
	}
	if len(sd.languageSelect.Options) != len(settings.GetLanguageOptions()) {
		t.Errorf("Expected %d language options, got %v", len(settings.GetLanguageOptions()), sd.languageSelect.Options)
	}
}

func TestSettingsDialog_SaveLowersMax(t *testing.T) {
	home, spy, settings := makeHome(t)
	settings.SetLastResourceID(42)
	home.stepper.SetValue(42)

	home.onShowSettings()
	home.settingsDialog.maxIDEntry.SetText("20")
	home.settingsDialog.onSave(true)

	if settings.GetMaxResourceID() != 20 {
		t.Errorf("Expected stored max ID 20, got %d", settings.GetMaxResourceID())
	}
	if home.stepper.Max() != 20 || home.stepper.Value() != 20 {
		t.Errorf("Expected stepper clamped to 20, got max %d value %d", home.stepper.Max(), home.stepper.Value())
	}
	if len(spy.updates) != 1 || spy.updates[0] != 20 {
		t.Errorf("Expected the clamped ID to be fetched, got %v", spy.updates)
	}
	if settings.GetLastResourceID() != 20 {
		t.Errorf("Expected last ID 20, got %d", settings.GetLastResourceID())
	}
}

func TestSettingsDialog_SaveRaisesMaxWithoutFetch(t *testing.T) {
	home, spy, _ := makeHome(t)

	home.onShowSettings()
	home.settingsDialog.maxIDEntry.SetText("300")
	home.settingsDialog.onSave(true)

	if home.stepper.Max() != 300 {
		t.Errorf("Expected stepper max 300, got %d", home.stepper.Max())
	}
	if len(spy.updates) != 0 {
		t.Errorf("Raising the max should not refetch, got %v", spy.updates)
	}
}

func TestSettingsDialog_SaveLanguage(t *testing.T) {
	home, _, settings := makeHome(t)

	home.onShowSettings()
	home.settingsDialog.languageSelect.SetSelected("Português")
	home.settingsDialog.onSave(true)

	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected stored language 'pt', got '%s'", settings.GetLanguage())
	}
	if home.localization.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected UI language 'pt', got '%s'", home.localization.GetCurrentLanguage())
	}
	if home.stepper.minus.Text != "Anterior" || home.loadingLabel.Text != "Carregando..." {
		t.Errorf("Expected Portuguese texts, got '%s' and '%s'", home.stepper.minus.Text, home.loadingLabel.Text)
	}
}

func TestSettingsDialog_SaveBaseURL(t *testing.T) {
	home, _, settings := makeHome(t)

	home.onShowSettings()
	home.settingsDialog.baseURLEntry.SetText("http://localhost:8080/pokemon")
	home.settingsDialog.onSave(true)

	if settings.GetBaseURL() != "http://localhost:8080/pokemon/" {
		t.Errorf("Expected stored base URL with trailing slash, got %s", settings.GetBaseURL())
	}
}

func TestSettingsDialog_CancelKeepsSettings(t *testing.T) {
	home, _, settings := makeHome(t)

	home.onShowSettings()
	home.settingsDialog.maxIDEntry.SetText("7")
	home.settingsDialog.languageSelect.SetSelected("Português")
	home.settingsDialog.onSave(false)

	if settings.GetMaxResourceID() != config.DefaultMaxResourceID {
		t.Errorf("Cancel should keep max ID %d, got %d", config.DefaultMaxResourceID, settings.GetMaxResourceID())
	}
	if home.localization.GetCurrentLanguage() != "en" {
		t.Errorf("Cancel should keep language 'en', got '%s'", home.localization.GetCurrentLanguage())
	}
}

func TestSettingsDialog_InvalidMaxID(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	window := test.NewWindow(widget.NewLabel(""))
	defer window.Close()

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func(bool) { saved = true })
	sd.Show()
	sd.maxIDEntry.SetText("lots")
	sd.onSave(true)

	if saved {
		t.Error("Invalid input should not be saved")
	}
	if settings.GetMaxResourceID() != config.DefaultMaxResourceID {
		t.Errorf("Expected max ID to stay %d, got %d", config.DefaultMaxResourceID, settings.GetMaxResourceID())
	}
}
