package ui

import (
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"

	"github.com/pokeapp/poke-viewer/internal/config"
	"github.com/pokeapp/poke-viewer/internal/model"
	"github.com/pokeapp/poke-viewer/internal/presenter"
)

// ArtworkPixels bounds decoded artwork so large sprites don't sit in memory at
// full size; twice the layout size keeps it sharp on high-DPI screens.
const ArtworkPixels = int(ArtworkSize) * 2

// HomeScreen shows a single resource and lets the user step through IDs. It is
// the presenter's delegate; its Display methods must run on the UI goroutine.
type HomeScreen struct {
	window       fyne.Window
	presenter    presenter.Presenting
	settings     *config.Settings
	localization *Localization

	nameLabel    *widget.Label
	idLabel      *widget.Label
	artwork      *canvas.Image
	stepper      *Stepper
	progress     *widget.ProgressBarInfinite
	loadingLabel *widget.Label
	loadingRow   *fyne.Container
	settingsBtn  *widget.Button
	content      fyne.CanvasObject

	settingsDialog *SettingsDialog
	errorDialog    dialog.Dialog

	// inFlight counts fetch chains started but not yet finished
	inFlight int
	status   model.FetchStatus
}

// NewHomeScreen creates the home screen and sets it as the window content
func NewHomeScreen(window fyne.Window, p presenter.Presenting, settings *config.Settings, localization *Localization) *HomeScreen {
	h := &HomeScreen{
		window:       window,
		presenter:    p,
		settings:     settings,
		localization: localization,
		status:       model.FetchStatusIdle,
	}

	h.setupUI()
	h.settingsDialog = NewSettingsDialog(settings, localization, window, h.onSettingsSaved)
	h.applyTexts()
	window.SetContent(h.content)
	return h
}

// setupUI creates and arranges all UI components
func (h *HomeScreen) setupUI() {
	h.nameLabel = widget.NewLabelWithStyle(DashPlaceholder, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	h.nameLabel.Wrapping = fyne.TextWrapWord

	h.artwork = canvas.NewImageFromImage(nil)
	h.artwork.FillMode = canvas.ImageFillContain
	h.artwork.ScaleMode = canvas.ImageScaleSmooth
	h.artwork.SetMinSize(fyne.NewSize(ArtworkSize, ArtworkSize))

	initialID := h.settings.GetLastResourceID()
	h.stepper = NewStepper(config.MinResourceID, h.settings.GetMaxResourceID(), initialID, h.onStepperChanged)

	h.idLabel = widget.NewLabel(DashPlaceholder)

	h.progress = widget.NewProgressBarInfinite()
	h.loadingLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	h.loadingRow = container.NewVBox(h.loadingLabel, h.progress)
	h.loadingRow.Hide()

	h.settingsBtn = widget.NewButton(IconSettings, h.onShowSettings)
	h.settingsBtn.Importance = widget.LowImportance

	topSpacer := canvas.NewRectangle(color.Transparent)
	topSpacer.SetMinSize(fyne.NewSize(0, NameTopSpacing))

	artworkSpacer := canvas.NewRectangle(color.Transparent)
	artworkSpacer.SetMinSize(fyne.NewSize(0, ArtworkSpacing))

	labelSpacer := canvas.NewRectangle(color.Transparent)
	labelSpacer.SetMinSize(fyne.NewSize(StepperLabelSpace, 0))

	h.content = container.NewVBox(
		container.NewHBox(layout.NewSpacer(), h.settingsBtn),
		topSpacer,
		h.nameLabel,
		container.NewCenter(h.artwork),
		artworkSpacer,
		container.NewHBox(layout.NewSpacer(), h.stepper, labelSpacer, h.idLabel, layout.NewSpacer()),
		h.loadingRow,
	)
}

// applyTexts (re)applies localized strings after a language change
func (h *HomeScreen) applyTexts() {
	h.window.SetTitle(h.localization.GetText(KeyAppTitle))
	h.stepper.SetLabels(h.localization.GetText(KeyPrevious), h.localization.GetText(KeyNext))
	h.loadingLabel.SetText(h.localization.GetText(KeyLoading))
}

// Content returns the root canvas object of the screen
func (h *HomeScreen) Content() fyne.CanvasObject {
	return h.content
}

// Status returns the state of the latest fetch as seen by the screen
func (h *HomeScreen) Status() model.FetchStatus {
	return h.status
}

// Start fetches the resource the presenter currently points at
func (h *HomeScreen) Start() {
	h.setFetching()
	h.presenter.FetchResource()
}

// onStepperChanged remembers the new ID and asks the presenter for it
func (h *HomeScreen) onStepperChanged(id int) {
	h.settings.SetLastResourceID(id)
	h.setFetching()
	h.presenter.UpdateID(id)
}

// onShowSettings opens the settings dialog
func (h *HomeScreen) onShowSettings() {
	h.settingsDialog.Show()
}

// onSettingsSaved applies saved settings that take effect immediately
func (h *HomeScreen) onSettingsSaved(languageChanged bool) {
	if languageChanged {
		h.applyTexts()
	}

	previous := h.stepper.Value()
	h.stepper.SetMax(h.settings.GetMaxResourceID())
	if current := h.stepper.Value(); current != previous {
		h.onStepperChanged(current)
	}
}

// DisplayResource implements presenter.Delegate
func (h *HomeScreen) DisplayResource(viewModel model.ViewModel) {
	h.nameLabel.SetText(viewModel.DisplayName)
	h.idLabel.SetText(viewModel.IDCaption)
}

// DisplayImage implements presenter.Delegate
func (h *HomeScreen) DisplayImage(img image.Image) {
	h.artwork.Image = imaging.Fit(img, ArtworkPixels, ArtworkPixels, imaging.Lanczos)
	h.artwork.Refresh()
	h.setFinished(model.FetchStatusSucceeded)
}

// DisplayError implements presenter.Delegate
func (h *HomeScreen) DisplayError() {
	h.setFinished(model.FetchStatusFailed)

	if h.errorDialog != nil {
		log.Printf("ui: error dialog suppressed, one is already showing")
		return
	}

	d := dialog.NewInformation(
		h.localization.GetText(KeyErrorTitle),
		h.localization.GetText(KeyErrorMessage),
		h.window,
	)
	d.SetDismissText(h.localization.GetText(KeyOK))
	d.SetOnClosed(func() { h.errorDialog = nil })
	h.errorDialog = d
	d.Show()
}

func (h *HomeScreen) setFetching() {
	h.inFlight++
	h.status = model.FetchStatusFetching
	h.loadingRow.Show()
	h.progress.Start()
}

// setFinished records the end of one chain; the screen stays in the fetching
// state until every chain started has finished.
func (h *HomeScreen) setFinished(status model.FetchStatus) {
	if h.inFlight > 0 {
		h.inFlight--
	}
	if h.inFlight == 0 {
		h.status = status
	}

	if !h.status.IsActive() {
		h.progress.Stop()
		h.loadingRow.Hide()
	}
}
