package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pokeapp/poke-viewer/internal/config"
	"github.com/pokeapp/poke-viewer/internal/fetch"
	"github.com/pokeapp/poke-viewer/internal/presenter"
	"github.com/pokeapp/poke-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.pokeapp.poke-viewer"

	WindowWidth  = 400
	WindowHeight = 640
)

func main() {
	// Log version information
	log.Printf("PokeApp v%s starting...", version)

	if err := config.LoadEnv(); err != nil {
		log.Printf("failed to load environment overrides: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPokeTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("PokeApp v%s", version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	service := fetch.NewService(settings.GetBaseURL(), fetch.NewHTTPTransport(fetch.DefaultConfig()))
	homePresenter := presenter.NewPresenter(service, settings.GetLastResourceID(), presenter.WithDispatcher(fyne.Do))

	// Create and setup UI
	home := ui.NewHomeScreen(myWindow, homePresenter, settings, localization)
	homePresenter.SetDelegate(home)
	home.Start()

	// Show and run
	myWindow.ShowAndRun()
}
