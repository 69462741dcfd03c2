package scheme

import (
	"math"
	"math/cmplx"

	"github.com/kyleking/lazytheme/internal/color"
)

const (
	goldenRatio = 0.618033988749895
	goldenAngle = 137.50776405003785
)

// Generate returns the scheme hues for baseHue. Every hue is normalized to
// [0,360). Unknown schemes return just the base hue. The result is never
// empty, so callers may index modulo its length.
func Generate(baseHue float64, s Scheme) []float64 {
	h := color.NormalizeHue(baseHue)
	offsets, ok := offsetsFor(h, s)
	if !ok {
		return []float64{h}
	}
	return rotate(h, offsets)
}

// AdditionalHues returns a smaller companion set for hue, used to widen the
// syntax hue pool around the accent colors. It may be empty.
func AdditionalHues(hue float64, s Scheme) []float64 {
	h := color.NormalizeHue(hue)
	switch s {
	case Monochromatic:
		return []float64{h}
	case Analogous:
		return rotate(h, []float64{30, -30})
	case Complementary:
		return rotate(h, []float64{180})
	case SplitComplementary:
		return rotate(h, []float64{150, 210})
	case Triadic:
		return rotate(h, []float64{120, 240})
	case Tetradic:
		return rotate(h, []float64{90, 180, 270})
	case GoldenRatio:
		return rotate(h, []float64{360 * goldenRatio, 720 * goldenRatio, 1080 * goldenRatio})
	case Fibonacci:
		return rotate(h, []float64{360.0 / 13, 360.0 / 8, 360.0 / 5})
	case PentagramStar:
		return rotate(h, []float64{72, 144, 216, 288})
	}

	if !s.Valid() {
		return nil
	}

	// Everything else borrows up to three non-base hues of its own scheme.
	var out []float64
	for _, v := range Generate(h, s) {
		if v == h {
			continue
		}
		out = append(out, v)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func rotate(h float64, offsets []float64) []float64 {
	out := make([]float64, len(offsets))
	for i, o := range offsets {
		out[i] = color.NormalizeHue(h + o)
	}
	return out
}

func steps(n int, step, start float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// offsetsFor returns the hue offsets from h. Only MandelbrotSet depends on h
// itself beyond rotation.
func offsetsFor(h float64, s Scheme) ([]float64, bool) {
	switch s {
	case Monochromatic:
		return []float64{0, 0, 0, 0}, true
	case Analogous:
		return []float64{0, 30, 60, -30, -60}, true
	case Complementary:
		return []float64{0, 180}, true
	case SplitComplementary:
		return []float64{0, 150, 210}, true
	case Triadic:
		return []float64{0, 60, 120}, true
	case Tetradic:
		return []float64{0, 90, 180, 270}, true
	case GoldenRatio:
		return []float64{0, 360 * goldenRatio, 720 * goldenRatio, 1080 * goldenRatio}, true
	case GoldenRatio3:
		return []float64{
			0,
			360 * goldenRatio,
			360 * math.Pow(goldenRatio, 2),
			360 * math.Pow(goldenRatio, 3),
		}, true
	case Fibonacci:
		return []float64{0, 360.0 / 13, 360.0 / 8, 360.0 / 5}, true
	case PentagramStar:
		return steps(5, 72, 0), true
	case VesicaPiscis:
		return []float64{33, 66}, true
	case FlowerOfLife:
		return steps(5, 60, 60), true
	case PlatonicSolids:
		return steps(4, 72, 72), true
	case SpiralOfTheodorus:
		return []float64{math.Sqrt(2) * 180, math.Sqrt(3) * 180, math.Sqrt(4) * 180}, true
	case MetatronsCube:
		return append(steps(5, 60, 60), steps(6, 60, 30)...), true
	case SeedOfLife:
		return steps(6, 51.4, 51.4), true
	case FibonacciSequence:
		out := []float64{0}
		for _, f := range []float64{2, 3, 5, 8, 13, 21} {
			out = append(out, 360/f)
		}
		return out, true
	case GoldenSpiral:
		return steps(6, goldenAngle, 0), true
	case MetallicMeans:
		out := []float64{0}
		for n := 1.0; n <= 4; n++ {
			mean := (n + math.Sqrt(n*n+4)) / 2
			out = append(out, 360/mean)
		}
		return out, true
	case ContinuedFraction:
		// Convergents of the golden ratio.
		out := []float64{0}
		p, q := 1.0, 2.0
		for range 5 {
			out = append(out, 360*p/q)
			p, q = q, p+q
		}
		return out, true
	case GoldenTrisection:
		return []float64{0, 120 * goldenRatio, 240 * goldenRatio}, true
	case FareySequence:
		out := []float64{0}
		for _, f := range [][2]float64{{1, 5}, {1, 4}, {1, 3}, {2, 5}, {1, 2}, {3, 5}, {2, 3}, {3, 4}, {4, 5}} {
			out = append(out, 360*f[0]/f[1])
		}
		return out, true
	case NobleNumbers:
		out := []float64{0}
		phi := 1 / goldenRatio
		for n := 0.0; n < 4; n++ {
			out = append(out, 360/(phi+n))
		}
		return out, true
	case GoldenTriangle:
		return []float64{0, 36, 72, 144}, true
	case SriYantra:
		out := make([]float64, 9)
		for k := range out {
			out[k] = float64(k)*40 + float64(k%2)*180
		}
		return out, true
	case KabbalahTreeOfLife:
		// Middle, right and left pillars, descending.
		return []float64{0, 120, 240, 30, 150, 270, 60, 180, 300, 90}, true
	case Torus:
		out := make([]float64, 8)
		for k := range out {
			out[k] = float64(k)*45 + 15*math.Sin(float64(k)*math.Pi/2)
		}
		return out, true
	case MandelbrotSet:
		return mandelbrotOffsets(h), true
	case SierpinskiTriangle:
		return []float64{0, 120, 240, 60, 180, 300, 30, 150, 270}, true
	case KochSnowflake:
		out := make([]float64, 0, 12)
		for k := range 6 {
			out = append(out, float64(k)*60, float64(k)*60+20)
		}
		return out, true
	case CelticKnot:
		return []float64{0, 90, 180, 270, 45, 225}, true
	case Labyrinth:
		// Seven-circuit walk order 3-2-1-4-7-6-5 around the centre.
		return []float64{0, 135, 90, 45, 180, 315, 270, 225}, true
	case YinYang:
		return []float64{0, 180, 15, 195}, true
	case StarTetrahedron:
		return []float64{0, 120, 240, 60, 180, 300}, true
	case Hamsa:
		return []float64{0, -60, -30, 30, 60, 180}, true
	case Enneagram:
		out := make([]float64, 0, 9)
		for _, point := range []float64{9, 1, 4, 2, 8, 5, 7, 3, 6} {
			out = append(out, point*40)
		}
		return out, true
	case Hexagram:
		return steps(6, 60, 0), true
	case ChakraSymbols:
		return steps(7, 360.0/7, 0), true
	case SpiralDynamics:
		out := make([]float64, 8)
		for k := range out {
			out[k] = float64(k)*45 + float64(k%2)*22.5
		}
		return out, true
	case DoubleTorus:
		return append(steps(4, 90, 0), steps(4, 90, 60)...), true
	case RosettePattern:
		out := make([]float64, 12)
		for k := range out {
			out[k] = float64(k)*30 + float64(k%2)*10
		}
		return out, true
	case NestedPolygons:
		out := steps(3, 120, 0)
		out = append(out, steps(4, 90, 45)...)
		return append(out, steps(5, 72, 18)...), true
	}
	return nil, false
}

// mandelbrotOffsets follows the orbit of z -> z^2 + c for a c on the circle
// of radius 0.7885 at angle h and uses each iterate's argument as a hue.
func mandelbrotOffsets(h float64) []float64 {
	theta := h * math.Pi / 180
	c := cmplx.Rect(0.7885, theta)
	z := complex(0, 0)

	out := []float64{0}
	for range 6 {
		z = z*z + c
		if cmplx.Abs(z) > 2 {
			z /= complex(cmplx.Abs(z), 0)
		}
		arg := cmplx.Phase(z) * 180 / math.Pi
		out = append(out, arg-h)
	}
	return out
}
