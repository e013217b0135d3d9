// Package imagewatch reports when the picture being edited changes on disk.
package imagewatch
