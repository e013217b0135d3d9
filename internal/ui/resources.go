package ui

import (
	"embed"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/ytget/memegen/internal/model"
)

const (
	AppIcon = "memegen.svg"
)

//go:embed icons/*.svg
var iconFS embed.FS

// LoadLogoResource returns the embedded application icon
func LoadLogoResource() (fyne.Resource, error) {
	return loadIcon(AppIcon)
}

// VolumeIconResource returns the speaker icon for a volume level
func VolumeIconResource(level model.VolumeLevel) (fyne.Resource, error) {
	return loadIcon(level.IconName())
}

func loadIcon(name string) (fyne.Resource, error) {
	content, err := iconFS.ReadFile("icons/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to load icon %s: %w", name, err)
	}
	return fyne.NewStaticResource(name, content), nil
}
