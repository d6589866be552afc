package ui

// Package ui contains the Fyne-based user interface for the application. The
// home screen drives the presenter from stepper changes and renders the
// resource name, its artwork and ID caption. All UI strings are localized via
// Localization.
