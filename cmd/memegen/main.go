package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ytget/memegen/internal/meme"
	"github.com/ytget/memegen/internal/model"
	"github.com/ytget/memegen/internal/platform"
	"github.com/ytget/memegen/internal/render"
	"github.com/ytget/memegen/internal/speech"
)

func main() {
	in := flag.String("in", "", "source image (png, jpeg, gif, webp, bmp, tiff)")
	out := flag.String("out", "", "output file (.png or .jpg); defaults to <name>-meme.png next to the source")
	top := flag.String("top", "", "top caption")
	bottom := flag.String("bottom", "", "bottom caption")
	width := flag.Int("width", render.DefaultWidth, "surface width in pixels")
	height := flag.Int("height", render.DefaultHeight, "surface height in pixels")
	fontSize := flag.Float64("font-size", render.DefaultFontSize, "caption font size")
	speak := flag.Bool("speak", false, "read the captions aloud after rendering")
	voice := flag.String("voice", "", "voice language tag, e.g. en-US (engine default when empty)")
	volume := flag.Int("volume", model.VolumeMax, "speech volume 0-100")
	listVoices := flag.Bool("list-voices", false, "print the installed voices and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *listVoices {
		if err := printVoices(ctx); err != nil {
			fail("list voices: %v", err)
		}
		return
	}

	if *in == "" {
		fmt.Fprintln(os.Stderr, "-in is required")
		flag.Usage()
		os.Exit(2)
	}

	style := render.DefaultStyle()
	style.FontSize = *fontSize
	surface, err := render.NewCanvas(*width, *height, style)
	if err != nil {
		fail("create surface: %v", err)
	}

	var service *speech.Service
	var speaker speech.Speaker
	var synth *speech.CommandSynthesizer
	if *speak {
		synth, err = speech.NewCommandSynthesizer()
		if err != nil {
			fail("speech: %v", err)
		}
		service = speech.NewService(synth)
		speaker = service
	}

	session := meme.NewSession(surface, speaker)
	defer session.Close()

	if err := session.LoadImage(*in); err != nil {
		fail("%v", err)
	}
	caption := model.Caption{Top: *top, Bottom: *bottom}
	if err := session.Generate(caption); err != nil {
		fail("draw captions: %v", err)
	}

	path := *out
	if path == "" {
		path, err = platform.GenerateExportPath(filepath.Dir(*in), *in)
		if err != nil {
			fail("%v", err)
		}
	}
	if err := session.Export(path); err != nil {
		fail("%v", err)
	}
	fmt.Printf("saved %s (%dx%d)\n", path, surface.Width(), surface.Height())

	if !*speak {
		return
	}

	lang := *voice
	if lang == "" {
		if voices, err := synth.Voices(ctx); err == nil {
			if v, ok := model.DefaultVoice(voices); ok {
				lang = v.Lang
			}
		}
	}

	task, err := session.ReadAloud(caption, lang, *volume)
	if err != nil {
		if errors.Is(err, speech.ErrNotSpeakable) {
			return
		}
		fail("speak: %v", err)
	}
	task, err = service.Wait(ctx, task.ID)
	if err != nil {
		if active, ok := service.ActiveTask(); ok {
			_ = service.Stop(active.ID)
		}
		fail("speak: %v", err)
	}
	if task.Status == model.TaskStatusError {
		fail("speak: %s", task.LastError)
	}
	fmt.Printf("spoke %q with voice %q in %s\n", task.GetDisplayText(), lang, task.GetElapsedString())
}

func printVoices(ctx context.Context) error {
	synth, err := speech.NewCommandSynthesizer()
	if err != nil {
		return err
	}
	voices, err := synth.Voices(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("engine=%s voices=%d\n", synth.Engine(), len(voices))
	for _, v := range voices {
		fmt.Println(v.Label())
	}
	return nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "memegen: "+format+"\n", args...)
	os.Exit(1)
}
