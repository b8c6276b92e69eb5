// ABOUTME: Tests for wave shape parsing and evaluation
// ABOUTME: Checks shape values, periodicity and sign alternation
package synth

import (
	"math"
	"testing"
)

func TestParseShape(t *testing.T) {
	names := map[string]Shape{
		"sine":     ShapeSine,
		"square":   ShapeSquare,
		"triangle": ShapeTriangle,
		"sawtooth": ShapeSawtooth,
		"point":    ShapePoint,
		"circle":   ShapeCircle,
	}

	for name, want := range names {
		got, err := ParseShape(name)
		if err != nil {
			t.Fatalf("ParseShape(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseShape(%q) = %v, want %v", name, got, want)
		}
		if got.String() != name {
			t.Errorf("Shape.String() = %q, want %q", got.String(), name)
		}
	}
}

func TestParseShape_Unknown(t *testing.T) {
	if _, err := ParseShape("heartbeat"); err == nil {
		t.Fatal("expected error for unknown shape name, got nil")
	}
}

func TestShapeValuesStartAtKnownPoints(t *testing.T) {
	const rate = 44100
	const freq = 440.0

	// t=0 pins each shape to a known point of its cycle.
	if v := ShapeSine.Value(freq, 0, rate); v != 0 {
		t.Errorf("sine at t=0 = %v, want 0", v)
	}
	if v := ShapeSquare.Value(freq, 0, rate); v != -1 {
		t.Errorf("square at t=0 = %v, want -1", v)
	}
	if v := ShapeTriangle.Value(freq, 0, rate); v != 0 {
		t.Errorf("triangle at t=0 = %v, want 0", v)
	}
	if v := ShapeSawtooth.Value(freq, 0, rate); v != -1 {
		t.Errorf("sawtooth at t=0 = %v, want -1", v)
	}
	if v := ShapePoint.Value(freq, 0, rate); v != 1 {
		t.Errorf("point at t=0 = %v, want 1", v)
	}
	if v := ShapeCircle.Value(freq, 0, rate); v != 0 {
		t.Errorf("circle at t=0 = %v, want 0", v)
	}
}

func TestShapesStayInRange(t *testing.T) {
	const rate = 44100
	shapes := []Shape{ShapeSine, ShapeSquare, ShapeTriangle, ShapeSawtooth, ShapePoint, ShapeCircle}

	for _, shape := range shapes {
		for t64 := uint32(0); t64 < 2000; t64++ {
			v := shape.Value(440, t64, rate)
			if math.IsNaN(v) || v < -1.0000001 || v > 1.0000001 {
				t.Fatalf("%v.Value(440, %d, %d) = %v, outside [-1, 1]", shape, t64, rate, v)
			}
		}
	}
}

func TestShapesArePeriodic(t *testing.T) {
	const rate = 44100
	const freq = 441.0 // exact period of 100 samples at 44100 Hz
	period := uint32(math.Round(rate / freq))
	shapes := []Shape{ShapeSine, ShapeSquare, ShapeTriangle, ShapeSawtooth, ShapePoint, ShapeCircle}

	for _, shape := range shapes {
		for t64 := uint32(0); t64 < 3*period; t64++ {
			a := shape.Value(freq, t64, rate)
			b := shape.Value(freq, t64+period, rate)
			if math.Abs(a-b) > 1e-6 {
				t.Fatalf("%v not periodic: value at t=%d is %v, at t+%d is %v", shape, t64, a, period, b)
			}
		}
	}
}

func TestSquareHalfPeriodAlternation(t *testing.T) {
	// f=100 at rate=1000 gives a half period of exactly 5 samples.
	const rate = 1000
	const freq = 100.0

	for t64 := uint32(0); t64 < 50; t64++ {
		v := ShapeSquare.Value(freq, t64, rate)
		want := -1.0
		if (t64/5)%2 == 1 {
			want = 1.0
		}
		if v != want {
			t.Errorf("square at t=%d = %v, want %v", t64, v, want)
		}
	}
}

func TestTriangleFoldAndSignFlip(t *testing.T) {
	// f=1 at rate=8 gives x = t/2: one full period every 8 samples.
	const rate = 8
	const freq = 1.0

	want := []float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5, 0}
	for i, w := range want {
		v := ShapeTriangle.Value(freq, uint32(i), rate)
		if math.Abs(v-w) > 1e-9 {
			t.Errorf("triangle at t=%d = %v, want %v", i, v, w)
		}
	}
}

func TestSawtoothRamp(t *testing.T) {
	// f=1 at rate=4: ramp from -1 advancing 0.5 per sample, period 4.
	const rate = 4
	const freq = 1.0

	want := []float64{-1, -0.5, 0, 0.5, -1, -0.5}
	for i, w := range want {
		v := ShapeSawtooth.Value(freq, uint32(i), rate)
		if math.Abs(v-w) > 1e-9 {
			t.Errorf("sawtooth at t=%d = %v, want %v", i, v, w)
		}
	}
}

func TestPointAndCircleArcExtremes(t *testing.T) {
	// f=1 at rate=8 gives x = t/2, so each half period covers 2 samples.
	const rate = 8
	const freq = 1.0

	// Point pinches to zero where its root crosses the arc center and swings
	// to ±1 at the fold boundaries, sign alternating per half period.
	pointWant := map[uint32]float64{0: 1, 2: 0, 4: -1, 6: 0}
	for t64, w := range pointWant {
		if v := ShapePoint.Value(freq, t64, rate); math.Abs(v-w) > 1e-9 {
			t.Errorf("point at t=%d = %v, want %v", t64, v, w)
		}
	}

	// Circle is zero at the fold boundaries and reaches ±1 between them.
	circleWant := map[uint32]float64{0: 0, 2: -1, 4: 0, 6: 1}
	for t64, w := range circleWant {
		if v := ShapeCircle.Value(freq, t64, rate); math.Abs(v-w) > 1e-9 {
			t.Errorf("circle at t=%d = %v, want %v", t64, v, w)
		}
	}
}
