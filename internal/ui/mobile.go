package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI picks layouts that suit the current device
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.app.Driver().Device().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := m.app.Driver().Device().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// EditorLayout places the preview beside the controls on desktop and in
// landscape, and above them on a portrait phone.
func (m *MobileUI) EditorLayout(preview, controls fyne.CanvasObject) fyne.CanvasObject {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return container.NewBorder(nil, container.NewVScroll(controls), nil, nil, preview)
	}
	split := container.NewHSplit(preview, container.NewVScroll(controls))
	split.Offset = 0.6
	return split
}

// ButtonRow lays buttons out in one row, as a grid with equal cells on mobile
func (m *MobileUI) ButtonRow(buttons ...fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() {
		return container.NewAdaptiveGrid(len(buttons), buttons...)
	}
	return container.NewHBox(buttons...)
}

// TouchTarget gives obj a finger-sized minimum on mobile
func (m *MobileUI) TouchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return obj
	}
	return container.NewGridWrap(fyne.NewSize(MinTouchTargetSize*2, MobileButtonHeight), obj)
}
