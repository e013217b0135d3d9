package render

import (
	"image/color"
)

// Surface defaults match a 400x400 canvas with 30px captions
const (
	DefaultWidth        = 400
	DefaultHeight       = 400
	DefaultFontSize     = 30.0
	DefaultTopBaseline  = 50.0
	DefaultBottomMargin = 30.0
	DefaultOutlineWidth = 1.5
	DefaultJPEGQuality  = 90
)

// Style controls caption appearance
type Style struct {
	FontSize     float64
	FontPath     string // TTF/OTF file; empty uses the embedded Go Regular face
	Fill         color.Color
	Outline      color.Color
	OutlineWidth float64
	TopBaseline  float64 // baseline of the top line, from the top edge
	BottomMargin float64 // baseline of the bottom line, from the bottom edge
}

// DefaultStyle returns white captions with a thin black outline
func DefaultStyle() Style {
	return Style{
		FontSize:     DefaultFontSize,
		Fill:         color.White,
		Outline:      color.Black,
		OutlineWidth: DefaultOutlineWidth,
		TopBaseline:  DefaultTopBaseline,
		BottomMargin: DefaultBottomMargin,
	}
}

func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.FontSize <= 0 {
		s.FontSize = d.FontSize
	}
	if s.Fill == nil {
		s.Fill = d.Fill
	}
	if s.Outline == nil {
		s.Outline = d.Outline
	}
	if s.OutlineWidth < 0 {
		s.OutlineWidth = 0
	}
	if s.TopBaseline <= 0 {
		s.TopBaseline = d.TopBaseline
	}
	if s.BottomMargin <= 0 {
		s.BottomMargin = d.BottomMargin
	}
	return s
}
