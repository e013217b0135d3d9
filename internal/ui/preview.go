package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// PreviewSurface shows the drawing surface. Tapping it opens a picture and a
// secondary tap or long press asks for the context menu.
type PreviewSurface struct {
	widget.BaseWidget

	image    *canvas.Image
	gestures *GestureHandler

	OnTapped      func()
	OnContextMenu func(pos fyne.Position)
}

// NewPreviewSurface creates an empty preview
func NewPreviewSurface() *PreviewSurface {
	p := &PreviewSurface{
		image: canvas.NewImageFromImage(nil),
	}
	p.image.FillMode = canvas.ImageFillContain
	p.image.ScaleMode = canvas.ImageScaleFastest
	p.image.SetMinSize(fyne.NewSize(PreviewMinSize, PreviewMinSize))
	p.gestures = NewGestureHandler(p.onGesture)
	p.ExtendBaseWidget(p)
	return p
}

// SetImage replaces the shown pixels
func (p *PreviewSurface) SetImage(img image.Image) {
	p.image.Image = img
	p.image.Refresh()
}

// Image returns the pixels currently shown
func (p *PreviewSurface) Image() image.Image {
	return p.image.Image
}

// CreateRenderer implements fyne.Widget
func (p *PreviewSurface) CreateRenderer() fyne.WidgetRenderer {
	// transparent surface areas show the backdrop
	backdrop := canvas.NewRectangle(color.NRGBA{R: 128, G: 128, B: 128, A: 48})
	return widget.NewSimpleRenderer(container.NewStack(backdrop, p.image))
}

// Tapped implements fyne.Tappable
func (p *PreviewSurface) Tapped(*fyne.PointEvent) {
	if p.OnTapped != nil {
		p.OnTapped()
	}
}

// TappedSecondary implements fyne.SecondaryTappable
func (p *PreviewSurface) TappedSecondary(event *fyne.PointEvent) {
	if p.OnContextMenu != nil {
		p.OnContextMenu(event.AbsolutePosition)
	}
}

// TouchDown implements mobile.Touchable
func (p *PreviewSurface) TouchDown(event *mobile.TouchEvent) {
	p.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (p *PreviewSurface) TouchUp(event *mobile.TouchEvent) {
	p.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (p *PreviewSurface) TouchCancel(event *mobile.TouchEvent) {
	p.gestures.TouchCancel(event)
}

func (p *PreviewSurface) onGesture(gesture GestureType, pos fyne.Position) {
	if gesture == GestureLongPress && p.OnContextMenu != nil {
		p.OnContextMenu(fyne.CurrentApp().Driver().AbsolutePositionForObject(p).Add(pos))
	}
}
