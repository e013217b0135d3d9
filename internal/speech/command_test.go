package speech

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ytget/memegen/internal/model"
)

const espeakVoicesOutput = `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      Afrikaans          gmw/af               
 5  de              --/M      German             gmw/de               
 2  en-029          --/M      English_(Caribbean) gmw/en-029           (en 10)
 2  en-gb           --/M      English_(Great_Britain) gmw/en               (en 2)
 5  en-gb-scotland  --/M      English_(Scotland) gmw/en-GB-scotland   (en 4)
 2  en-us           --/M      English_(America)  gmw/en-US            (en 3)
 5  ru              --/M      Russian            zle/ru               
`

const sayVoicesOutput = `Alex                en_US    # Most people recognize me by my voice.
Eddy (English (UK)) en_GB    # Hello! My name is Eddy.
Milena              ru_RU    # Здравствуйте, меня зовут Милена.

garbage
`

const powerShellVoicesOutput = "Microsoft David Desktop|en-US|True\r\n" +
	"Microsoft Irina Desktop|ru-RU|False\r\n" +
	"broken line\r\n"

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"en_US", "en-US"},
		{"en-us", "en-US"},
		{"ru", "ru"},
		{" pt_BR ", "pt-BR"},
		{"", ""},
		{"not a tag!", ""},
	}

	for _, test := range tests {
		result := NormalizeLang(test.raw)
		if result != test.expected {
			t.Errorf("NormalizeLang(%q) = %q, expected %q", test.raw, result, test.expected)
		}
	}
}

func TestParseEspeakVoices(t *testing.T) {
	voices := ParseEspeakVoices(espeakVoicesOutput, EspeakDefaultVoice)

	expected := []model.Voice{
		{Name: "Afrikaans", Lang: "af"},
		{Name: "German", Lang: "de"},
		{Name: "English (Caribbean)", Lang: "en-029"},
		{Name: "English (Great Britain)", Lang: "en-GB", Default: true},
		{Name: "English (Scotland)", Lang: "en-GB-scotland"},
		{Name: "English (America)", Lang: "en-US"},
		{Name: "Russian", Lang: "ru"},
	}
	if !model.SameVoices(voices, expected) {
		t.Errorf("ParseEspeakVoices() = %+v, expected %+v", voices, expected)
	}

	if voice, ok := model.DefaultVoice(voices); !ok || voice.Lang != "en-GB" {
		t.Errorf("DefaultVoice() = %+v, %v, expected the en-GB voice", voice, ok)
	}
}

func TestParseEspeakVoices_DefaultFromOtherLanguages(t *testing.T) {
	output := `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      Afrikaans          gmw/af               
 2  en-029          --/M      English_(Caribbean) gmw/en-029           (en 10)
 2  en-us           --/M      English_(America)  gmw/en-US            (en 3)
`
	voices := ParseEspeakVoices(output, EspeakDefaultVoice)

	var defaults []string
	for _, v := range voices {
		if v.Default {
			defaults = append(defaults, v.Lang)
		}
	}
	if len(defaults) != 1 || defaults[0] != "en-US" {
		t.Errorf("default voices = %v, expected [en-US]", defaults)
	}
}

func TestParseEspeakVoices_LanguageColumnMatch(t *testing.T) {
	output := ` 5  af              --/M      Afrikaans          gmw/af
 2  en              --/M      English            default              (en 2)
`
	voices := ParseEspeakVoices(output, EspeakDefaultVoice)

	if len(voices) != 2 || voices[0].Default || !voices[1].Default {
		t.Errorf("ParseEspeakVoices() = %+v, expected only English marked default", voices)
	}
}

func TestParseSayVoices(t *testing.T) {
	voices := ParseSayVoices(sayVoicesOutput)

	expected := []model.Voice{
		{Name: "Alex", Lang: "en-US"},
		{Name: "Eddy (English (UK))", Lang: "en-GB"},
		{Name: "Milena", Lang: "ru-RU"},
	}
	if !model.SameVoices(voices, expected) {
		t.Errorf("ParseSayVoices() = %+v, expected %+v", voices, expected)
	}
}

func TestParsePowerShellVoices(t *testing.T) {
	voices := ParsePowerShellVoices(powerShellVoicesOutput)

	expected := []model.Voice{
		{Name: "Microsoft David Desktop", Lang: "en-US", Default: true},
		{Name: "Microsoft Irina Desktop", Lang: "ru-RU"},
	}
	if !model.SameVoices(voices, expected) {
		t.Errorf("ParsePowerShellVoices() = %+v, expected %+v", voices, expected)
	}
}

func TestBuildEspeakArgs(t *testing.T) {
	tests := []struct {
		lang     string
		volume   float64
		expected []string
	}{
		{"en-US", 1, []string{"-v", "en-us", "-a", "100", "--stdin"}},
		{"ru", 0.5, []string{"-v", "ru", "-a", "50", "--stdin"}},
		{"", 0, []string{"-a", "0", "--stdin"}},
		{"en", 3, []string{"-v", "en", "-a", "100", "--stdin"}},
	}

	for _, test := range tests {
		args := BuildEspeakArgs(test.lang, test.volume)
		if strings.Join(args, " ") != strings.Join(test.expected, " ") {
			t.Errorf("BuildEspeakArgs(%q, %v) = %v, expected %v", test.lang, test.volume, args, test.expected)
		}
	}
}

func TestBuildSayArgs(t *testing.T) {
	if args := BuildSayArgs("Alex"); strings.Join(args, " ") != "-v Alex -f -" {
		t.Errorf("BuildSayArgs(Alex) = %v", args)
	}
	if args := BuildSayArgs(""); strings.Join(args, " ") != "-f -" {
		t.Errorf("BuildSayArgs(\"\") = %v", args)
	}
}

func TestBuildPowerShellSpeakArgs(t *testing.T) {
	args := BuildPowerShellSpeakArgs("en_us", 0.25)
	if len(args) != 4 || args[2] != "-Command" {
		t.Fatalf("Unexpected args: %v", args)
	}
	script := args[3]
	if !strings.Contains(script, "$s.Volume = 25;") {
		t.Errorf("Expected volume 25 in script: %s", script)
	}
	if !strings.Contains(script, "-eq 'en-US'") {
		t.Errorf("Expected normalized culture in script: %s", script)
	}

	injected := BuildPowerShellSpeakArgs("en'; Remove-Item x; '", 1)[3]
	if strings.Contains(injected, "Remove-Item") {
		t.Errorf("Expected invalid language to be dropped from script: %s", injected)
	}
}

type recordedRun struct {
	stdin string
	name  string
	args  []string
}

func fakeRunner(output string, err error, calls *[]recordedRun) runFunc {
	return func(ctx context.Context, stdin, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, recordedRun{stdin: stdin, name: name, args: args})
		return []byte(output), err
	}
}

func TestCommandSynthesizer_SayUsesVoiceNameForLang(t *testing.T) {
	var calls []recordedRun
	synth := NewCommandSynthesizerFor(EngineSay, "/usr/bin/say")
	synth.run = fakeRunner(sayVoicesOutput, nil, &calls)

	if _, err := synth.Voices(context.Background()); err != nil {
		t.Fatalf("Voices() error: %v", err)
	}

	err := synth.Speak(context.Background(), model.Utterance{Text: "hello there", Lang: "ru-RU", Volume: 0.5})
	if err != nil {
		t.Fatalf("Speak() error: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("Expected 2 command runs, got %d", len(calls))
	}
	speak := calls[1]
	if speak.name != "/usr/bin/say" {
		t.Errorf("Expected binary /usr/bin/say, got %s", speak.name)
	}
	if strings.Join(speak.args, " ") != "-v Milena -f -" {
		t.Errorf("Unexpected say args: %v", speak.args)
	}
	if speak.stdin != "[[volm 0.50]] hello there" {
		t.Errorf("Unexpected say stdin: %q", speak.stdin)
	}
}

func TestCommandSynthesizer_EspeakSpeak(t *testing.T) {
	var calls []recordedRun
	synth := NewCommandSynthesizerFor(EngineEspeakNG, "")
	synth.run = fakeRunner("", nil, &calls)

	err := synth.Speak(context.Background(), model.Utterance{Text: "-top bottom", Lang: "en-US", Volume: 1})
	if err != nil {
		t.Fatalf("Speak() error: %v", err)
	}
	if calls[0].name != "espeak-ng" {
		t.Errorf("Expected default binary espeak-ng, got %s", calls[0].name)
	}
	if calls[0].stdin != "-top bottom" {
		t.Errorf("Expected text on stdin, got %q", calls[0].stdin)
	}
}

func TestCommandSynthesizer_Errors(t *testing.T) {
	var calls []recordedRun
	synth := NewCommandSynthesizerFor(EngineEspeakNG, "")
	synth.run = fakeRunner("voice not found", errors.New("exit status 1"), &calls)

	if err := synth.Speak(context.Background(), model.Utterance{Text: "   "}); !errors.Is(err, ErrNotSpeakable) {
		t.Errorf("Speak(blank) error = %v, expected ErrNotSpeakable", err)
	}
	if len(calls) != 0 {
		t.Errorf("Expected no command for blank text, got %d", len(calls))
	}

	err := synth.Speak(context.Background(), model.Utterance{Text: "hi"})
	if err == nil || !strings.Contains(err.Error(), "voice not found") {
		t.Errorf("Speak() error = %v, expected engine output in message", err)
	}

	if _, err := synth.Voices(context.Background()); err == nil {
		t.Error("Expected Voices() error when command fails")
	}

	unknown := NewCommandSynthesizerFor(Engine("festival"), "")
	if _, err := unknown.Voices(context.Background()); err == nil {
		t.Error("Expected error for unsupported engine")
	}
}
