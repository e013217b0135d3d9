package geometry

import (
	"image"
	"math"
)

// FitResult is the placement of scaled content inside a target area.
type FitResult struct {
	Width  float64
	Height float64
	StartX float64
	StartY float64
}

// Fit scales a sourceWidth x sourceHeight picture to the largest size that fits
// in targetWidth x targetHeight without distortion and centers it on the
// unconstrained axis. The saturated axis starts at 0.
//
// The source aspect is compared with the target aspect, not with 1. The two
// agree on a square target; on a non-square one comparing with 1 would let the
// content overflow. Equal aspects take the width-saturated branch.
//
// Inputs are not validated: a zero-sized source produces NaN or Inf values,
// which callers can detect with IsFinite.
func Fit(targetWidth, targetHeight, sourceWidth, sourceHeight float64) FitResult {
	aspectRatio := sourceWidth / sourceHeight

	// Narrower than the target: height is saturated, width is centered.
	if aspectRatio < targetWidth/targetHeight {
		width := targetHeight * aspectRatio
		return FitResult{
			Width:  width,
			Height: targetHeight,
			StartX: (targetWidth - width) / 2,
			StartY: 0,
		}
	}

	height := targetWidth / aspectRatio
	return FitResult{
		Width:  targetWidth,
		Height: height,
		StartX: 0,
		StartY: (targetHeight - height) / 2,
	}
}

// IsFinite reports whether every field is a usable number.
func (r FitResult) IsFinite() bool {
	for _, v := range [...]float64{r.Width, r.Height, r.StartX, r.StartY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Bounds returns the pixel rectangle covered by the content, rounded outward.
// The result is empty when the fit is not finite.
func (r FitResult) Bounds() image.Rectangle {
	if !r.IsFinite() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.StartX)),
		int(math.Floor(r.StartY)),
		int(math.Ceil(r.StartX+r.Width)),
		int(math.Ceil(r.StartY+r.Height)),
	)
}
