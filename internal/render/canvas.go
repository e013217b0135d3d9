package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ytget/memegen/internal/geometry"
	"github.com/ytget/memegen/internal/model"
)

// ErrUnsupportedFormat is returned by Save for unknown file extensions
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Canvas is a fixed-size drawing surface. It is not safe for concurrent use.
type Canvas struct {
	ctx    *gg.Context
	width  int
	height int
	style  Style
	font   *text.FontSource
}

// NewCanvas creates a transparent width x height surface
func NewCanvas(width, height int, style Style) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	style = style.withDefaults()

	var (
		source *text.FontSource
		err    error
	)
	if style.FontPath != "" {
		source, err = text.NewFontSourceFromFile(style.FontPath)
	} else {
		source, err = text.NewFontSource(goregular.TTF)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load caption font: %w", err)
	}

	c := &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		style:  style,
		font:   source,
	}
	c.ctx.SetFont(source.Face(style.FontSize))
	c.ctx.Clear()
	return c, nil
}

// Width returns the surface width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the surface height in pixels
func (c *Canvas) Height() int { return c.height }

// Style returns the caption style in use
func (c *Canvas) Style() Style { return c.style }

// Clear erases the whole surface to transparent
func (c *Canvas) Clear() {
	c.ctx.Clear()
}

// DrawImage paints the black background and the picture fitted and centered
// on it. The fit is returned so callers can inspect placement. A degenerate
// picture leaves only the background.
func (c *Canvas) DrawImage(img image.Image) geometry.FitResult {
	c.ctx.Clear()
	c.ctx.ClearWithColor(gg.Black)

	b := img.Bounds()
	fit := geometry.Fit(float64(c.width), float64(c.height), float64(b.Dx()), float64(b.Dy()))
	if !fit.IsFinite() || fit.Width <= 0 || fit.Height <= 0 {
		return fit
	}

	c.ctx.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             fit.StartX,
		Y:             fit.StartY,
		DstWidth:      fit.Width,
		DstHeight:     fit.Height,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
	return fit
}

// DrawCaptions writes the top and bottom lines centered horizontally
func (c *Canvas) DrawCaptions(caption model.Caption) {
	x := float64(c.width) / 2
	c.drawOutlined(caption.Top, x, c.style.TopBaseline)
	c.drawOutlined(caption.Bottom, x, float64(c.height)-c.style.BottomMargin)
}

// drawOutlined draws s with its baseline at y, outline first, fill on top
func (c *Canvas) drawOutlined(s string, x, y float64) {
	if s == "" {
		return
	}

	if w := c.style.OutlineWidth; w > 0 {
		c.ctx.SetColor(c.style.Outline)
		for _, o := range outlineOffsets(w) {
			c.ctx.DrawStringAnchored(s, x+o[0], y+o[1], 0.5, 0)
		}
	}

	c.ctx.SetColor(c.style.Fill)
	c.ctx.DrawStringAnchored(s, x, y, 0.5, 0)
}

// outlineOffsets returns 8 compass offsets at distance w
func outlineOffsets(w float64) [8][2]float64 {
	var offsets [8][2]float64
	for i := range offsets {
		angle := float64(i) * math.Pi / 4
		offsets[i] = [2]float64{w * math.Cos(angle), w * math.Sin(angle)}
	}
	return offsets
}

// Image returns a copy of the current pixels
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// EncodePNG writes the surface as PNG
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

// EncodeJPEG writes the surface as JPEG
func (c *Canvas) EncodeJPEG(w io.Writer, quality int) error {
	return c.ctx.EncodeJPEG(w, quality)
}

// Save writes the surface to path, choosing the encoder by extension
func (c *Canvas) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if ext == ".png" {
		err = c.EncodePNG(f)
	} else {
		err = c.EncodeJPEG(f, DefaultJPEGQuality)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Close releases the font and drawing state
func (c *Canvas) Close() error {
	err := c.ctx.Close()
	if fontErr := c.font.Close(); err == nil {
		err = fontErr
	}
	return err
}
