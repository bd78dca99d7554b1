// Package fxaa provides an edge-adaptive spatial anti-aliasing filter for
// 8-bit RGB and RGBA pixel buffers.
//
// # Overview
//
// fxaa smooths aliased edges of an already rasterized image without
// re-rendering it. For every pixel it computes a luminance value, estimates
// edge strength as the mean absolute luminance difference to its 8
// neighbors, and blends pixels whose edge strength exceeds a threshold with
// their neighborhood. Several passes compound the smoothing.
//
// # Quick Start
//
//	import "github.com/gogpu/fxaa"
//
//	buf, _ := fxaa.FromImage(img)
//	out, err := fxaa.Apply(buf, fxaa.DefaultConfig())
//
// For a stream of frames, create a Filter once and reuse it:
//
//	f, err := fxaa.New(fxaa.WithPasses(3), fxaa.WithLuminanceRecompute(true))
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	out, stats, err := f.Process(ctx, buf)
//
// # Blend Policies
//
// WeightedNeighborAverage averages the 3×3 neighborhood. Each sample is
// weighted by 1 - |ΔL|·edge; the weights are deliberately left unclamped,
// so with weight vectors summing above 1 they can turn negative.
//
// SigmoidCenterBlend mixes each neighbor with the center by
// 0.33·sigmoid(|ΔL|), a logistic curve centered at 0.2, and averages the
// eight mixes. Neighbors of similar luminance barely contribute.
//
// # Borders
//
// Pixels on the outermost rows and columns are never blended; they are
// copied unchanged in every pass. Blending kernels sample clamped
// coordinates, so pixels next to the border still see a full 3×3 window.
//
// # Luminance Policy
//
// By default the luminance map is computed once from the original image and
// reused for all passes. WithLuminanceRecompute(true) recomputes it from the
// input of each pass, which lets later passes react to earlier smoothing.
//
// # Concurrency
//
// Passes are sequential. Within a pass, rows are split into bands processed
// by a worker pool; a pass completes only after every band is written.
//
// # Logging
//
// The package is silent by default. Use SetLogger to receive diagnostics
// through log/slog.
package fxaa

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
