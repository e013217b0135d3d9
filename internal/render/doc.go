package render

// Package render owns the meme drawing surface. It is a thin layer over
// github.com/gogpu/gg that knows how to lay out a fitted picture on a black
// background, draw outlined captions, and encode the result.
