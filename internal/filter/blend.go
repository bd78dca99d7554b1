package filter

import (
	"errors"
	"math"
	"strings"

	"github.com/gogpu/fxaa/internal/image"
)

// ErrUnknownPolicy is returned when a blend policy name is not recognized.
var ErrUnknownPolicy = errors.New("filter: unknown blend policy")

// BlendPolicy selects how an edge pixel is mixed with its neighbors.
type BlendPolicy uint8

const (
	// WeightedNeighborAverage averages the 3×3 neighborhood, weighting each
	// sample by 1 - |ΔL|·edge. Weights are not clamped and can go negative
	// for strongly divergent neighbors.
	WeightedNeighborAverage BlendPolicy = iota

	// SigmoidCenterBlend mixes each of the 8 neighbors with the center by a
	// logistic weight of their luminance difference, biasing toward the
	// center when neighbors are close in luminance.
	SigmoidCenterBlend

	policyCount
)

// String returns the policy name accepted by ParseBlendPolicy.
func (p BlendPolicy) String() string {
	switch p {
	case WeightedNeighborAverage:
		return "weighted-neighbor-average"
	case SigmoidCenterBlend:
		return "sigmoid-center"
	default:
		return "unknown"
	}
}

// IsValid returns true for the known policies.
func (p BlendPolicy) IsValid() bool {
	return p < policyCount
}

// ParseBlendPolicy parses a policy name. Short names "wna" and "sigmoid"
// are accepted too.
func ParseBlendPolicy(s string) (BlendPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weighted-neighbor-average", "wna", "weighted":
		return WeightedNeighborAverage, nil
	case "sigmoid-center", "sigmoid":
		return SigmoidCenterBlend, nil
	default:
		return 0, ErrUnknownPolicy
	}
}

// Blend writes the blended color of (x, y) into dst, which must hold at
// least one pixel of src's format. src and lm are only read.
// Unknown policies copy the source pixel.
func (p BlendPolicy) Blend(src *image.PixelBuffer, lm *LuminanceMap, x, y int, edge float32, dst []byte) {
	switch p {
	case WeightedNeighborAverage:
		blendWeightedAverage(src, lm, x, y, edge, dst)
	case SigmoidCenterBlend:
		blendSigmoidCenter(src, lm, x, y, dst)
	default:
		copy(dst, src.Pixel(x, y))
	}
}

// blendWeightedAverage averages the clamped 3×3 neighborhood, center
// included, per channel.
func blendWeightedAverage(src *image.PixelBuffer, lm *LuminanceMap, x, y int, edge float32, dst []byte) {
	width, height := src.Width(), src.Height()
	channels := src.Format().Channels()
	center := lm.At(x, y)

	var sum [4]float32
	var weightSum float32

	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			sx := clampToEdge(x+i, width)
			sy := clampToEdge(y+j, height)

			weight := 1 - absf32(lm.At(sx, sy)-center)*edge

			sample := src.Pixel(sx, sy)
			for c := range channels {
				sum[c] += float32(sample[c]) * weight
			}
			weightSum += weight
		}
	}

	for c := range channels {
		dst[c] = clampChannel(sum[c] / weightSum)
	}
}

// Sigmoid parameters for SigmoidCenterBlend.
const (
	sigmoidCenter    = 0.2
	sigmoidSteepness = 100
	sigmoidMaxWeight = 0.33
)

// sigmoid is the logistic curve centered at 0.2 with steepness 100.
func sigmoid(x float32) float32 {
	return float32(1 / (1 + math.Exp(-sigmoidSteepness*(float64(x)-sigmoidCenter))))
}

// blendSigmoidCenter mixes each clamped neighbor with the center pixel and
// averages the 8 mixes. The divisor is the neighbor count, not the weight sum.
func blendSigmoidCenter(src *image.PixelBuffer, lm *LuminanceMap, x, y int, dst []byte) {
	width, height := src.Width(), src.Height()
	channels := src.Format().Channels()
	centerLum := lm.At(x, y)
	centerPix := src.Pixel(x, y)

	var sum [4]float32

	for _, o := range mooreNeighbors {
		sx := clampToEdge(x+o.dx, width)
		sy := clampToEdge(y+o.dy, height)

		weight := sigmoidMaxWeight * sigmoid(absf32(lm.At(sx, sy)-centerLum))
		keep := 1 - weight

		sample := src.Pixel(sx, sy)
		for c := range channels {
			sum[c] += float32(sample[c])*weight + float32(centerPix[c])*keep
		}
	}

	for c := range channels {
		dst[c] = clampChannel(sum[c] / 8)
	}
}

// clampChannel clamps v to [0, 255] and truncates toward zero.
// NaN maps to 0.
func clampChannel(v float32) uint8 {
	if math.IsNaN(float64(v)) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
