package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Editor palette. The preview surface is black, so the chrome stays dark in
// both variants and only the text contrast changes.
var (
	editorAccent      = color.NRGBA{R: 255, G: 138, B: 0, A: 255}
	editorDanger      = color.NRGBA{R: 229, G: 57, B: 53, A: 255}
	editorSuccess     = color.NRGBA{R: 67, G: 160, B: 71, A: 255}
	editorBackground  = color.NRGBA{R: 24, G: 24, B: 27, A: 255}
	editorInput       = color.NRGBA{R: 39, G: 39, B: 42, A: 255}
	editorPanel       = color.NRGBA{R: 32, G: 32, B: 36, A: 255}
	editorForeground  = color.NRGBA{R: 244, G: 244, B: 245, A: 255}
	editorPlaceholder = color.NRGBA{R: 161, G: 161, B: 170, A: 255}
)

// CompactTheme is the dark editor theme with tight spacing around the preview
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

func (t *CompactTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return editorAccent
	case theme.ColorNameError:
		return editorDanger
	case theme.ColorNameSuccess:
		return editorSuccess
	case theme.ColorNameBackground:
		return editorBackground
	case theme.ColorNameInputBackground, theme.ColorNameButton:
		return editorInput
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return editorPanel
	case theme.ColorNameForeground:
		return editorForeground
	case theme.ColorNamePlaceHolder:
		return editorPlaceholder
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size shrinks padding and body text
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSeparatorThickness:
		return 2
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
