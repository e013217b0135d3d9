package model

// DefaultVoiceSuffix marks the engine's default voice in the selector
const DefaultVoiceSuffix = " -- DEFAULT"

// Voice is a speech engine voice
type Voice struct {
	Name    string
	Lang    string // BCP 47 language tag, also the selector value
	Default bool
}

// Label returns the selector text: "<name> (<lang>)", with the default marker
func (v Voice) Label() string {
	label := v.Name + " (" + v.Lang + ")"
	if v.Default {
		label += DefaultVoiceSuffix
	}
	return label
}

// VoiceLabels returns selector labels in list order
func VoiceLabels(voices []Voice) []string {
	labels := make([]string, 0, len(voices))
	for _, v := range voices {
		labels = append(labels, v.Label())
	}
	return labels
}

// FindVoiceByLabel returns the voice whose Label matches
func FindVoiceByLabel(voices []Voice, label string) (Voice, bool) {
	for _, v := range voices {
		if v.Label() == label {
			return v, true
		}
	}
	return Voice{}, false
}

// FindVoiceByLang returns the first voice for lang
func FindVoiceByLang(voices []Voice, lang string) (Voice, bool) {
	for _, v := range voices {
		if v.Lang == lang {
			return v, true
		}
	}
	return Voice{}, false
}

// DefaultVoice returns the voice marked default, or the first voice
func DefaultVoice(voices []Voice) (Voice, bool) {
	for _, v := range voices {
		if v.Default {
			return v, true
		}
	}
	if len(voices) > 0 {
		return voices[0], true
	}
	return Voice{}, false
}

// SameVoices reports whether two voice lists are identical in order and content
func SameVoices(a, b []Voice) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
