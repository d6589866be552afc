package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Layout sizing
const (
	ArtworkSize float32 = 280

	NameTopSpacing    float32 = 80
	ArtworkSpacing    float32 = 40
	StepperLabelSpace float32 = 30
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 320
)
