package speech

import (
	"context"
	"errors"

	"github.com/ytget/memegen/internal/model"
)

var (
	// ErrNoSpeechEngine is returned when no supported speech command is installed
	ErrNoSpeechEngine = errors.New("no speech engine found")

	// ErrNotSpeakable is returned for utterances with nothing to say
	ErrNotSpeakable = errors.New("nothing to speak")
)

// VoiceLister lists the voices an engine offers.
type VoiceLister interface {
	Voices(ctx context.Context) ([]model.Voice, error)
}

// Synthesizer turns an utterance into audio on the default output device.
// Speak blocks until playback ends or ctx is cancelled.
type Synthesizer interface {
	VoiceLister
	Speak(ctx context.Context, u model.Utterance) error
}

// Speaker defines the interface for the speech service.
type Speaker interface {
	SetUpdateCallback(func(model.SpeechTask))
	Speak(u model.Utterance) (model.SpeechTask, error)
	Stop(taskID string) error
	GetTask(taskID string) (model.SpeechTask, bool)
}
