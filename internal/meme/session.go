package meme

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"sync"

	"github.com/ytget/memegen/internal/geometry"
	"github.com/ytget/memegen/internal/model"
	"github.com/ytget/memegen/internal/render"
	"github.com/ytget/memegen/internal/speech"
)

var (
	// ErrNoImage is returned when an action needs a picture that is not loaded
	ErrNoImage = errors.New("no image loaded")

	// ErrInvalidTransition aliases the phase machine error for callers of this package
	ErrInvalidTransition = model.ErrInvalidTransition
)

// State is what the UI needs to redraw after a change
type State struct {
	Phase     model.Phase
	Controls  model.Controls
	ImagePath string
	Caption   model.Caption
	Fit       geometry.FitResult
	Image     image.Image // copy of the surface pixels
}

// Session owns the surface and moves it through the phases
type Session struct {
	mu       sync.Mutex
	canvas   *render.Canvas
	speaker  speech.Speaker
	phase    model.Phase
	path     string      // file the picture came from, empty for streams
	picture  image.Image // decoded picture, nil when idle
	caption  model.Caption
	fit      geometry.FitResult
	onChange func(State)
}

// NewSession creates an idle session drawing on canvas
func NewSession(canvas *render.Canvas, speaker speech.Speaker) *Session {
	return &Session{
		canvas:  canvas,
		speaker: speaker,
		phase:   model.PhaseIdle,
	}
}

// OnChange sets the callback invoked after every state change
func (s *Session) OnChange(callback func(State)) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Phase returns the current phase
func (s *Session) Phase() model.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// LoadImage decodes the picture at path and draws it fitted on a black surface
func (s *Session) LoadImage(path string) error {
	log.Printf("Loading image: %s", path)

	img, err := render.LoadImageFile(path)
	if err != nil {
		return err
	}
	s.setPicture(img, path)
	return nil
}

// LoadImageReader is LoadImage for pictures that have no local path
func (s *Session) LoadImageReader(r io.Reader, name string) error {
	img, format, err := render.DecodeImage(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Printf("Loaded %s image: %s", format, name)
	s.setPicture(img, "")
	return nil
}

func (s *Session) setPicture(img image.Image, path string) {
	s.mu.Lock()
	// always valid: any phase accepts a new picture
	s.phase, _ = s.phase.Next(model.EventImageLoaded)
	s.picture = img
	s.path = path
	s.caption = model.Caption{}
	s.fit = s.canvas.DrawImage(img)
	if !s.fit.IsFinite() {
		log.Printf("Image has no usable size, drawing background only")
	}
	state := s.stateLocked()
	s.mu.Unlock()

	s.notify(state)
}

// Generate draws the captions over the current surface
func (s *Session) Generate(caption model.Caption) error {
	s.mu.Lock()
	next, err := s.phase.Next(model.EventGenerate)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.canvas.DrawCaptions(caption)
	s.caption = caption
	s.phase = next
	state := s.stateLocked()
	s.mu.Unlock()

	s.notify(state)
	return nil
}

// Clear erases the surface and forgets the picture
func (s *Session) Clear() error {
	s.mu.Lock()
	next, err := s.phase.Next(model.EventClear)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.canvas.Clear()
	s.phase = next
	s.picture = nil
	s.path = ""
	s.caption = model.Caption{}
	s.fit = geometry.FitResult{}
	state := s.stateLocked()
	s.mu.Unlock()

	s.notify(state)
	return nil
}

// ReadAloud speaks caption with the chosen voice once captions are drawn.
// caption is the text as currently typed, which may differ from what was
// drawn. sliderValue is the 0-100 volume control position.
func (s *Session) ReadAloud(caption model.Caption, lang string, sliderValue int) (model.SpeechTask, error) {
	s.mu.Lock()
	phase := s.phase
	s.mu.Unlock()
	if phase != model.PhaseCaptionsDrawn {
		return model.SpeechTask{}, fmt.Errorf("%w: read aloud on %s", ErrInvalidTransition, phase)
	}
	if caption.IsBlank() {
		return model.SpeechTask{}, speech.ErrNotSpeakable
	}
	utterance := model.Utterance{
		Text:   caption.SpokenText(),
		Lang:   lang,
		Volume: model.VolumeFraction(sliderValue),
	}

	if s.speaker == nil {
		return model.SpeechTask{}, speech.ErrNoSpeechEngine
	}
	return s.speaker.Speak(utterance)
}

// Export writes the surface to path as PNG or JPEG
func (s *Session) Export(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == model.PhaseIdle {
		return ErrNoImage
	}
	if err := s.canvas.Save(path); err != nil {
		return err
	}
	log.Printf("Exported meme: %s", path)
	return nil
}

// Reload decodes the picture file again and redraws it. Drawn captions are
// drawn again on top; the phase does not change.
func (s *Session) Reload() error {
	s.mu.Lock()
	path := s.path
	s.mu.Unlock()

	if path == "" {
		return ErrNoImage
	}

	img, err := render.LoadImageFile(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.path != path {
		// another picture was chosen meanwhile
		s.mu.Unlock()
		return nil
	}
	s.picture = img
	s.redrawLocked()
	state := s.stateLocked()
	s.mu.Unlock()

	log.Printf("Reloaded image: %s", path)
	s.notify(state)
	return nil
}

// Resize swaps in a surface with a new size and style and redraws onto it
func (s *Session) Resize(width, height int, style render.Style) error {
	canvas, err := render.NewCanvas(width, height, style)
	if err != nil {
		return err
	}

	s.mu.Lock()
	old := s.canvas
	s.canvas = canvas
	s.redrawLocked()
	state := s.stateLocked()
	s.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			log.Printf("failed to release surface: %v", err)
		}
	}
	s.notify(state)
	return nil
}

// Close releases the surface
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.Close()
}

// redrawLocked repaints the surface for the current phase
func (s *Session) redrawLocked() {
	switch s.phase {
	case model.PhaseIdle:
		s.canvas.Clear()
		return
	case model.PhaseImageLoaded, model.PhaseCaptionsDrawn:
		if s.picture != nil {
			s.fit = s.canvas.DrawImage(s.picture)
		} else {
			s.canvas.Clear()
		}
	}
	if s.phase == model.PhaseCaptionsDrawn {
		s.canvas.DrawCaptions(s.caption)
	}
}

func (s *Session) stateLocked() State {
	return State{
		Phase:     s.phase,
		Controls:  s.phase.Controls(),
		ImagePath: s.path,
		Caption:   s.caption,
		Fit:       s.fit,
		Image:     s.canvas.Image(),
	}
}

func (s *Session) notify(state State) {
	s.mu.Lock()
	callback := s.onChange
	s.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}
