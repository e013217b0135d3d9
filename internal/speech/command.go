package speech

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/ytget/memegen/internal/model"
)

// Engine identifies a speech command-line tool
type Engine string

const (
	EngineEspeakNG   Engine = "espeak-ng"
	EngineEspeak     Engine = "espeak"
	EngineSay        Engine = "say"
	EnginePowerShell Engine = "powershell"
)

// Engine defaults
const (
	// EspeakDefaultVoice is the voice espeak-ng uses without -v
	EspeakDefaultVoice = "en"
	// EspeakFullAmplitude is espeak's normal loudness for volume 1.0
	EspeakFullAmplitude = 100
	// SayVolumeCommand is the embedded command macOS say uses for loudness
	SayVolumeCommand = "[[volm %.2f]] "
	// PowerShellFullVolume is System.Speech's maximum volume
	PowerShellFullVolume = 100
)

// PowerShell scripts. Text arrives on stdin so it never needs quoting.
const (
	powerShellVoicesScript = `Add-Type -AssemblyName System.Speech; ` +
		`$s = New-Object System.Speech.Synthesis.SpeechSynthesizer; $d = $s.Voice.Name; ` +
		`$s.GetInstalledVoices() | ForEach-Object { $i = $_.VoiceInfo; '{0}|{1}|{2}' -f $i.Name, $i.Culture.Name, ($i.Name -eq $d) }`
	powerShellSpeakScript = `Add-Type -AssemblyName System.Speech; ` +
		`$s = New-Object System.Speech.Synthesis.SpeechSynthesizer; $s.Volume = %d; ` +
		`$v = $s.GetInstalledVoices() | Where-Object { $_.VoiceInfo.Culture.Name -eq '%s' } | Select-Object -First 1; ` +
		`if ($v) { $s.SelectVoice($v.VoiceInfo.Name) }; $s.Speak([Console]::In.ReadToEnd())`
)

// engineCandidates lists engines to try per OS, most preferred first
var engineCandidates = map[string][]Engine{
	"linux":   {EngineEspeakNG, EngineEspeak},
	"freebsd": {EngineEspeakNG, EngineEspeak},
	"darwin":  {EngineSay, EngineEspeakNG},
	"windows": {EnginePowerShell},
}

// runFunc executes a command with stdin and returns its combined output
type runFunc func(ctx context.Context, stdin, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, stdin, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	return cmd.CombinedOutput()
}

// CommandSynthesizer speaks through an external speech command
type CommandSynthesizer struct {
	engine Engine
	binary string
	run    runFunc

	voicesMutex sync.RWMutex
	voices      []model.Voice
}

// NewCommandSynthesizer finds a speech command for the current OS
func NewCommandSynthesizer() (*CommandSynthesizer, error) {
	for _, engine := range engineCandidates[runtime.GOOS] {
		if path, err := exec.LookPath(string(engine)); err == nil {
			return NewCommandSynthesizerFor(engine, path), nil
		}
	}
	return nil, fmt.Errorf("%w for %s", ErrNoSpeechEngine, runtime.GOOS)
}

// NewCommandSynthesizerFor uses a specific engine binary
func NewCommandSynthesizerFor(engine Engine, binary string) *CommandSynthesizer {
	if binary == "" {
		binary = string(engine)
	}
	return &CommandSynthesizer{
		engine: engine,
		binary: binary,
		run:    runCommand,
	}
}

// Engine returns the engine in use
func (c *CommandSynthesizer) Engine() Engine {
	return c.engine
}

// Voices queries the engine for installed voices and remembers them
func (c *CommandSynthesizer) Voices(ctx context.Context) ([]model.Voice, error) {
	var (
		args  []string
		parse func(string) []model.Voice
	)

	switch c.engine {
	case EngineEspeakNG, EngineEspeak:
		args = []string{"--voices"}
		parse = func(out string) []model.Voice { return ParseEspeakVoices(out, EspeakDefaultVoice) }
	case EngineSay:
		args = []string{"-v", "?"}
		parse = ParseSayVoices
	case EnginePowerShell:
		args = powerShellArgs(powerShellVoicesScript)
		parse = ParsePowerShellVoices
	default:
		return nil, fmt.Errorf("unsupported speech engine: %s", c.engine)
	}

	output, err := c.run(ctx, "", c.binary, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list voices with %s: %w", c.engine, err)
	}

	voices := parse(string(output))

	c.voicesMutex.Lock()
	c.voices = voices
	c.voicesMutex.Unlock()

	return voices, nil
}

// Speak plays the utterance and waits for the engine to exit
func (c *CommandSynthesizer) Speak(ctx context.Context, u model.Utterance) error {
	if strings.TrimSpace(u.Text) == "" {
		return ErrNotSpeakable
	}

	args, stdin := c.BuildSpeakArgs(u)
	output, err := c.run(ctx, stdin, c.binary, args...)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if msg := strings.TrimSpace(string(output)); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", c.engine, err, msg)
		}
		return fmt.Errorf("%s failed: %w", c.engine, err)
	}
	return nil
}

// BuildSpeakArgs builds the engine arguments and stdin text for an utterance
func (c *CommandSynthesizer) BuildSpeakArgs(u model.Utterance) ([]string, string) {
	switch c.engine {
	case EngineSay:
		return BuildSayArgs(c.voiceNameFor(u.Lang)), fmt.Sprintf(SayVolumeCommand, clampVolume(u.Volume)) + u.Text
	case EnginePowerShell:
		return BuildPowerShellSpeakArgs(u.Lang, u.Volume), u.Text
	default:
		return BuildEspeakArgs(u.Lang, u.Volume), u.Text
	}
}

// voiceNameFor maps a language tag to a say voice name
func (c *CommandSynthesizer) voiceNameFor(lang string) string {
	c.voicesMutex.RLock()
	defer c.voicesMutex.RUnlock()

	if v, ok := model.FindVoiceByLang(c.voices, lang); ok {
		return v.Name
	}
	return ""
}

// BuildEspeakArgs builds espeak-ng arguments; text is read from stdin
func BuildEspeakArgs(lang string, volume float64) []string {
	args := []string{}
	if lang != "" {
		args = append(args, "-v", strings.ToLower(lang))
	}
	amplitude := int(math.Round(clampVolume(volume) * EspeakFullAmplitude))
	args = append(args, "-a", strconv.Itoa(amplitude), "--stdin")
	return args
}

// BuildSayArgs builds macOS say arguments; text is read from stdin
func BuildSayArgs(voiceName string) []string {
	args := []string{}
	if voiceName != "" {
		args = append(args, "-v", voiceName)
	}
	return append(args, "-f", "-")
}

// BuildPowerShellSpeakArgs builds the System.Speech invocation
func BuildPowerShellSpeakArgs(lang string, volume float64) []string {
	// Only a parsed BCP 47 tag reaches the script.
	tag := NormalizeLang(lang)
	level := int(math.Round(clampVolume(volume) * PowerShellFullVolume))
	return powerShellArgs(fmt.Sprintf(powerShellSpeakScript, level, tag))
}

func powerShellArgs(script string) []string {
	return []string{"-NoProfile", "-NonInteractive", "-Command", script}
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeLang canonicalises engine locale names ("en_US", "en-us") to BCP 47
// ("en-US"). It returns "" for names that are not language tags.
func NormalizeLang(raw string) string {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "_", "-"))
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}
	return tag.String()
}

// ParseEspeakVoices parses `espeak-ng --voices`. The voice espeak-ng picks for
// defaultVoice is marked default: the one whose Language or voice file matches
// it, otherwise the one listing it under Other Languages with the best
// priority.
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  af              --/M      Afrikaans          gmw/af
//	 2  en-gb           --/M      English_(Great_Britain) gmw/en          (en 2)
//	 2  en-us           --/M      English_(America)  gmw/en-US            (en 3)
func ParseEspeakVoices(output, defaultVoice string) []model.Voice {
	var voices []model.Voice
	exact, fallback, fallbackPriority := -1, -1, 0

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] == "Pty" {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}

		lang := NormalizeLang(fields[1])
		if lang == "" {
			continue
		}

		if exact < 0 && espeakVoiceIs(fields, defaultVoice) {
			exact = len(voices)
		}
		if priority, ok := espeakOtherPriority(fields, defaultVoice); ok && (fallback < 0 || priority < fallbackPriority) {
			fallback, fallbackPriority = len(voices), priority
		}

		voices = append(voices, model.Voice{
			Name: strings.ReplaceAll(fields[3], "_", " "),
			Lang: lang,
		})
	}

	switch {
	case exact >= 0:
		voices[exact].Default = true
	case fallback >= 0:
		voices[fallback].Default = true
	}
	return voices
}

// espeakVoiceIs reports whether the row's language or voice file is name
func espeakVoiceIs(fields []string, name string) bool {
	if strings.EqualFold(fields[1], name) {
		return true
	}
	if len(fields) < 5 {
		return false
	}
	file := fields[4]
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		file = file[idx+1:]
	}
	return strings.EqualFold(file, name)
}

// espeakOtherPriority finds "(name N)" in the Other Languages column
func espeakOtherPriority(fields []string, name string) (int, bool) {
	if len(fields) < 7 {
		return 0, false
	}
	others := fields[5:]
	for i := 0; i+1 < len(others); i++ {
		code, ok := strings.CutPrefix(others[i], "(")
		if !ok || !strings.EqualFold(code, name) {
			continue
		}
		priority, err := strconv.Atoi(strings.TrimSuffix(others[i+1], ")"))
		if err != nil {
			continue
		}
		return priority, true
	}
	return 0, false
}

// ParseSayVoices parses `say -v ?`. Names may contain spaces, so the locale is
// taken as the last field before the '#' sample sentence. say has no notion of
// a default in this listing; none is marked.
//
//	Alex                en_US    # Most people recognize me by my voice.
//	Eddy (English (UK)) en_GB    # Hello! My name is Eddy.
func ParseSayVoices(output string) []model.Voice {
	var voices []model.Voice
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		lang := NormalizeLang(fields[len(fields)-1])
		if lang == "" {
			continue
		}
		voices = append(voices, model.Voice{
			Name: strings.Join(fields[:len(fields)-1], " "),
			Lang: lang,
		})
	}
	return voices
}

// ParsePowerShellVoices parses "Name|Culture|True/False" lines
func ParsePowerShellVoices(output string) []model.Voice {
	var voices []model.Voice
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		parts := strings.Split(strings.TrimSpace(scanner.Text()), "|")
		if len(parts) != 3 {
			continue
		}

		lang := NormalizeLang(parts[1])
		if parts[0] == "" || lang == "" {
			continue
		}
		voices = append(voices, model.Voice{
			Name:    parts[0],
			Lang:    lang,
			Default: strings.EqualFold(parts[2], "true"),
		})
	}
	return voices
}
