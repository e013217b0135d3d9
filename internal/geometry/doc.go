package geometry

// Package geometry computes how a source picture is scaled and placed on the
// drawing surface: fit inside the target, keep the aspect ratio, center on the
// axis that has slack.
