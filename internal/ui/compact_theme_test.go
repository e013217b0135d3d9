package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestCompactTheme(t *testing.T) {
	th := NewCompactTheme()

	for _, variant := range []fyne.ThemeVariant{theme.VariantDark, theme.VariantLight} {
		if got := th.Color(theme.ColorNameBackground, variant); got != editorBackground {
			t.Errorf("Background(%d) = %v, expected %v", variant, got, editorBackground)
		}
	}
	if got := th.Color(theme.ColorNamePrimary, theme.VariantDark); got != editorAccent {
		t.Errorf("Primary = %v, expected %v", got, editorAccent)
	}
	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("Padding = %v, expected 3", got)
	}
	if got, want := th.Size(theme.SizeNameScrollBar), theme.DefaultTheme().Size(theme.SizeNameScrollBar); got != want {
		t.Errorf("ScrollBar = %v, expected default %v", got, want)
	}
}
