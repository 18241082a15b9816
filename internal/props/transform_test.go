package props

import (
	"math"
	"testing"
)

func TestParallelAxisShift(t *testing.T) {
	for _, d := range []float64{-7.5, -1, 0, 0.25, 3} {
		for _, area := range []float64{0.5, 4, 40} {
			const i = 53.25
			got := ParallelAxisShift(i, area, d) - area*d*d
			diff(t, i, got, approx)
		}
	}
	// Removing area subtracts the transfer term.
	diff(t, 10.0-4*9, ParallelAxisShift(10, -4, 3), approx)
}

func TestAxisRotationTrace(t *testing.T) {
	const ix, iy, ixy = 120.0, 35.0, -12.5
	for phi := -math.Pi; phi <= math.Pi; phi += math.Pi / 7 {
		iu, iv := AxisRotation(ix, iy, ixy, phi)
		diff(t, ix+iy, iu+iv, approx)
	}
}

func TestAxisRotationInverse(t *testing.T) {
	const ix, iy, ixy, phi = 80.0, 20.0, 6.0, 0.7
	iu, iv := AxisRotation(ix, iy, ixy, phi)
	iuv := ProductRotation(ix, iy, ixy, phi)
	bx, by := AxisRotation(iu, iv, iuv, -phi)
	diff(t, []float64{ix, iy, ixy}, []float64{bx, by, ProductRotation(iu, iv, iuv, -phi)}, approx)
}

func TestAxisRotationQuarterTurnSwaps(t *testing.T) {
	iu, iv := AxisRotation(53, 333, 0, math.Pi/2)
	diff(t, []float64{333, 53}, []float64{iu, iv}, approx)
	diff(t, 0.0, ProductRotation(53, 333, 0, math.Pi/2), nearZero)
}

func TestAxisRotationPrincipal(t *testing.T) {
	// At the principal angle tan 2φ = -2Ixy/(Ix-Iy), the product vanishes.
	const ix, iy, ixy = 90.0, 30.0, 20.0
	phi := math.Atan2(-2*ixy, ix-iy) / 2
	diff(t, 0.0, ProductRotation(ix, iy, ixy, phi), nearZero)
	iu, iv := AxisRotation(ix, iy, ixy, phi)
	r := math.Hypot((ix-iy)/2, ixy)
	diff(t, []float64{(ix+iy)/2 + r, (ix+iy)/2 - r}, []float64{iu, iv}, approx)
}
