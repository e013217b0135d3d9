package ui

// Package ui contains the Fyne-based user interface for the meme generator.
// It wires the editing session, the voice catalog and the speech service to
// widgets whose enabled state follows the session phase. All UI strings are
// localized via Localization.
