package platform

// Package platform contains OS integration: well-known directories, export
// file naming, image file detection and OS open/reveal.
