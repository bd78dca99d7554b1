// Package filter implements the edge-adaptive anti-aliasing pipeline.
//
// The pipeline has four stages:
//   - luminance: per-pixel weighted brightness in [0,1]
//   - edge strength: mean absolute luminance deviation over the 8 neighbors
//   - blending: one of two closed policies applied to edge pixels
//   - orchestration: N ping-pong passes over an owned buffer pair
//
// Border pixels are never blended; they are copied through every pass.
// Within a pass the input buffer and luminance map are read-only and every
// output row is written by exactly one band, so bands may run concurrently.
package filter
