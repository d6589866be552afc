package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"
)

// Base palette, as hex so it can be tweaked without touching the blending code
const (
	PrimaryHex         = "#1976d2"
	ErrorHex           = "#b71c1c"
	LightBackgroundHex = "#ffffff"
	DarkBackgroundHex  = "#121212"
	LabelHex           = "#a9a9a9"
)

// ForegroundBlend is how far label text is pulled from dark gray towards black
const ForegroundBlend = 0.45

// PokeTheme is the application theme: white background and dark gray labels,
// falling back to the default theme for everything else
type PokeTheme struct {
	primary    color.Color
	errorColor color.Color
	foreground map[fyne.ThemeVariant]color.Color
	background map[fyne.ThemeVariant]color.Color
}

// NewPokeTheme creates the application theme
func NewPokeTheme() fyne.Theme {
	label := hexColor(LabelHex, colorful.Color{R: 0.66, G: 0.66, B: 0.66})
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}

	return &PokeTheme{
		primary:    hexColor(PrimaryHex, colorful.Color{R: 0.1, G: 0.46, B: 0.82}),
		errorColor: hexColor(ErrorHex, colorful.Color{R: 0.72, G: 0.11, B: 0.11}),
		foreground: map[fyne.ThemeVariant]color.Color{
			theme.VariantLight: label.BlendLab(black, ForegroundBlend).Clamped(),
			theme.VariantDark:  label.BlendLab(white, ForegroundBlend).Clamped(),
		},
		background: map[fyne.ThemeVariant]color.Color{
			theme.VariantLight: hexColor(LightBackgroundHex, white),
			theme.VariantDark:  hexColor(DarkBackgroundHex, colorful.Color{R: 0.07, G: 0.07, B: 0.07}),
		},
	}
}

// Color returns theme colors
func (t *PokeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.primary
	case theme.ColorNameError:
		return t.errorColor
	case theme.ColorNameForeground:
		if c, ok := t.foreground[variant]; ok {
			return c
		}
	case theme.ColorNameBackground:
		if c, ok := t.background[variant]; ok {
			return c
		}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PokeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PokeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; headings are sized for the 24pt name label
func (t *PokeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 17
	case theme.SizeNameHeadingText:
		return 24
	}

	return theme.DefaultTheme().Size(name)
}

func hexColor(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}
