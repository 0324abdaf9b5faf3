// Package compose implements the watermark compositing core: image format
// validation, transparency policy resolution, and the per-pixel blending
// engine.
//
// The pipeline is strictly single-pass. Images are validated once after
// decoding, the transparency policy and blend weight are resolved once from
// the watermark's alpha classification and the caller's answers, and the
// compositor then produces a fresh output buffer in one deterministic sweep
// over the base image's coordinate space.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. Single placement offsets are
// validated against the base image so the watermark footprint always lies
// fully inside the base.
//
// # Blending Model
//
// For a covered, non-transparent pixel the output channel is the integer
// linear mix
//
//	out = (weight*wm + (100-weight)*base) / 100
//
// applied independently to red, green and blue, truncating toward zero.
// The output carries no alpha: every output pixel is fully opaque.
//
// # Error Handling
//
// Validation and resolution functions return typed errors (FormatError,
// SizeError, RangeError) that callers surface with errors.As. Nothing in
// this package terminates the process or performs I/O.
package compose
