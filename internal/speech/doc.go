package speech

// Package speech reads captions aloud through the host speech engine
// (espeak-ng, macOS say, or Windows System.Speech via PowerShell). It tracks
// each utterance as a task, supersedes the previous utterance when a new one
// starts, and publishes the available voice list to subscribers.
