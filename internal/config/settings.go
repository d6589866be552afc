package config

import (
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/pokeapp/poke-viewer/internal/fetch"
)

// Settings keys for Fyne preferences
const (
	KeyBaseURL        = "resource_base_url"
	KeyLastResourceID = "last_resource_id"
	KeyMaxResourceID  = "max_resource_id"
	KeyLanguage       = "app_language"
)

// Environment overrides, taking precedence over stored preferences
const (
	EnvBaseURL       = "POKEAPP_BASE_URL"
	EnvMaxResourceID = "POKEAPP_MAX_ID"
)

// Default values
const (
	DefaultBaseURL       = fetch.DefaultBaseURL
	DefaultResourceID    = 1
	MinResourceID        = 1
	DefaultMaxResourceID = 100
	UpperMaxResourceID   = 898
	DefaultLanguage      = "system"
)

// Settings manages application configuration
type Settings struct {
	app    fyne.App
	getenv func(string) string
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, getenv: os.Getenv}
}

// GetBaseURL returns the base path resources are fetched from
func (s *Settings) GetBaseURL() string {
	if env := strings.TrimSpace(s.getenv(EnvBaseURL)); env != "" {
		return withTrailingSlash(env)
	}

	baseURL := s.app.Preferences().String(KeyBaseURL)
	if baseURL == "" {
		s.SetBaseURL(DefaultBaseURL)
		return DefaultBaseURL
	}
	return baseURL
}

// SetBaseURL sets the base path resources are fetched from
func (s *Settings) SetBaseURL(baseURL string) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s.app.Preferences().SetString(KeyBaseURL, withTrailingSlash(baseURL))
}

// GetMaxResourceID returns the highest ID the stepper may reach
func (s *Settings) GetMaxResourceID() int {
	if env := s.getenv(EnvMaxResourceID); env != "" {
		if value, err := strconv.Atoi(env); err == nil {
			return clampMax(value)
		}
	}

	value := s.app.Preferences().Int(KeyMaxResourceID)
	if value <= 0 {
		s.SetMaxResourceID(DefaultMaxResourceID)
		return DefaultMaxResourceID
	}
	return clampMax(value)
}

// SetMaxResourceID sets the highest ID the stepper may reach
func (s *Settings) SetMaxResourceID(max int) {
	s.app.Preferences().SetInt(KeyMaxResourceID, clampMax(max))
}

// GetLastResourceID returns the last viewed ID, clamped to the valid range
func (s *Settings) GetLastResourceID() int {
	value := s.app.Preferences().IntWithFallback(KeyLastResourceID, DefaultResourceID)
	return s.ClampResourceID(value)
}

// SetLastResourceID remembers the last viewed ID
func (s *Settings) SetLastResourceID(id int) {
	s.app.Preferences().SetInt(KeyLastResourceID, s.ClampResourceID(id))
}

// ClampResourceID keeps id inside [MinResourceID, GetMaxResourceID()]
func (s *Settings) ClampResourceID(id int) int {
	if id < MinResourceID {
		return MinResourceID
	}
	if max := s.GetMaxResourceID(); id > max {
		return max
	}
	return id
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pt":     "Português",
	}
}

func clampMax(max int) int {
	if max < MinResourceID {
		return MinResourceID
	}
	if max > UpperMaxResourceID {
		return UpperMaxResourceID
	}
	return max
}

func withTrailingSlash(baseURL string) string {
	if strings.HasSuffix(baseURL, "/") {
		return baseURL
	}
	return baseURL + "/"
}
