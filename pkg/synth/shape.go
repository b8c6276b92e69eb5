// ABOUTME: Wave shape enumeration and evaluation
// ABOUTME: Implements sine, square, triangle, sawtooth, point and circle waves
package synth

import (
	"fmt"
	"math"
)

// Shape identifies a periodic wave shape.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeSquare
	ShapeTriangle
	ShapeSawtooth
	ShapePoint
	ShapeCircle
)

// ParseShape maps a shape name to its Shape value.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "sine":
		return ShapeSine, nil
	case "square":
		return ShapeSquare, nil
	case "triangle":
		return ShapeTriangle, nil
	case "sawtooth":
		return ShapeSawtooth, nil
	case "point":
		return ShapePoint, nil
	case "circle":
		return ShapeCircle, nil
	default:
		return 0, fmt.Errorf("unknown wave shape: %q (supported: sine, square, triangle, sawtooth, point, circle)", name)
	}
}

// String returns the shape's canonical name.
func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	case ShapeSawtooth:
		return "sawtooth"
	case ShapePoint:
		return "point"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Value evaluates the shape for a frequency at discrete time index t,
// returning a value in [-1, 1]. Phase is t*freq/rate, continuous across
// calls rather than reset per period.
func (s Shape) Value(freq float64, t uint32, rate uint32) float64 {
	switch s {
	case ShapeSine:
		return math.Sin(2 * math.Pi * float64(t) * freq / float64(rate))
	case ShapeSquare:
		x := 2 * float64(t) * freq / float64(rate)
		if int64(math.Floor(x))%2 != 0 {
			return 1
		}
		return -1
	case ShapeTriangle:
		// Tent function of period 4 in x-units, sign flipped every period.
		x := 4 * float64(t) * freq / float64(rate)
		return (x - 2*math.Floor((x+1)/2)) * halfPeriodSign(x)
	case ShapeSawtooth:
		x := float64(t) * freq / float64(rate)
		return 2*(x-math.Floor(x)) - 1
	case ShapePoint:
		// Upward-pinched half-circle arcs alternating with their mirror.
		x := 4 * float64(t) * freq / float64(rate)
		root := x - (1 + 2*math.Floor(x/2))
		return (1 - math.Sqrt(1-root*root)) * halfPeriodSign(x)
	case ShapeCircle:
		// Convex half-circle arcs alternating sign.
		x := 4 * float64(t) * freq / float64(rate)
		root := x - 2*math.Floor(x/2) - 1
		return math.Sqrt(1-root*root) * halfPeriodSign(x)
	default:
		// Unknown shapes are rejected at configuration time; evaluating one
		// is a programming error.
		panic(fmt.Sprintf("synth: invalid shape %d", int(s)))
	}
}

// halfPeriodSign alternates sign every half period of the folded coordinate x.
func halfPeriodSign(x float64) float64 {
	if int64(math.Floor((x+1)/2))%2 != 0 {
		return -1
	}
	return 1
}
