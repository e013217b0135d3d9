package model

// Package model defines domain values shared across the app: the editor phase
// machine, captions, voices, volume levels, and speech tasks. Values are plain
// structs so the UI can bind to them and tests can build them directly.
