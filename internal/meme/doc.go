// Package meme drives one editing session: the drawing surface, the workflow
// phase and the read-aloud request made from the drawn captions.
package meme
