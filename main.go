package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/gogpu/gg"

	"github.com/ytget/memegen/internal/config"
	"github.com/ytget/memegen/internal/imagewatch"
	"github.com/ytget/memegen/internal/meme"
	"github.com/ytget/memegen/internal/platform"
	"github.com/ytget/memegen/internal/render"
	"github.com/ytget/memegen/internal/speech"
	"github.com/ytget/memegen/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.memegen"
	AppName = "Meme Generator"

	WindowWidth  = 900
	WindowHeight = 560

	// DebugEnv routes drawing library logs to stderr when set
	DebugEnv = "MEMEGEN_DEBUG"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	if os.Getenv(DebugEnv) != "" {
		gg.SetLogger(slog.Default())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	width, height := settings.GetCanvasSize()
	style := render.DefaultStyle()
	style.FontSize = settings.GetFontSize()
	surface, err := render.NewCanvas(width, height, style)
	if err != nil {
		log.Fatalf("failed to create drawing surface: %v", err)
	}

	var speaker speech.Speaker
	var catalog *speech.Catalog
	synth, err := speech.NewCommandSynthesizer()
	switch {
	case errors.Is(err, speech.ErrNoSpeechEngine):
		log.Printf("Speech disabled: %v", err)
	case err != nil:
		log.Printf("failed to set up speech: %v", err)
	default:
		log.Printf("Using speech engine: %s", synth.Engine())
		speaker = speech.NewService(synth)
		catalog = speech.NewCatalog(synth)
		go func() {
			if err := catalog.Run(ctx, speech.DefaultCatalogInterval); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("voice catalog stopped: %v", err)
			}
		}()
	}

	session := meme.NewSession(surface, speaker)

	var root *ui.RootUI
	watcher, err := imagewatch.New(func(path string) {
		if root != nil {
			root.OnImageFileChanged(path)
		}
	})
	if err != nil {
		log.Printf("failed to start image watcher: %v", err)
		watcher = nil
	} else {
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("image watcher stopped: %v", err)
			}
		}()
	}

	// Create and setup UI
	root = ui.NewRootUI(myWindow, myApp, settings, session, speaker, catalog, watcher)

	// An image path on the command line is opened right away
	if len(os.Args) > 1 && platform.IsSupportedImage(os.Args[1]) {
		if err := root.OpenImage(os.Args[1]); err != nil {
			log.Printf("failed to open %s: %v", os.Args[1], err)
		}
	}

	myWindow.SetOnClosed(func() {
		cancel()
		root.Close()
		if watcher != nil {
			if err := watcher.Close(); err != nil {
				log.Printf("failed to close image watcher: %v", err)
			}
		}
		if err := session.Close(); err != nil {
			log.Printf("failed to release drawing surface: %v", err)
		}
	})

	// Show and run
	myWindow.ShowAndRun()
}
