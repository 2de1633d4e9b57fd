package explorer

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RefPeak is a reference peak used as a calibration anchor: a ToF value
// known from prior chemistry to correspond to a given m/z.
type RefPeak struct {
	Species string  `db:"Species"`
	ToF     float64 `db:"ToF"` // nanoseconds
	Mz      float64 `db:"Mz"`  // atomic units
}

// Built-in reference peaks: 12000 ns corresponds to C6H6I+ (m/z = 204),
// 6100 ns corresponds to H2O+ (m/z = 18).
func DefaultRefPeaks() (RefPeak, RefPeak) {
	return RefPeak{Species: "C6H6I+", ToF: 12000.0, Mz: 204.0},
		RefPeak{Species: "H2O+", ToF: 6100.0, Mz: 18.0}
}

// Calibration holds the coefficients of the fit sqrt(m/z) = A*ToF + B.
type Calibration struct {
	A float64
	B float64
}

// NewCalibration fits a first-degree polynomial through the two
// (ToF, sqrt(m/z)) reference points. With exactly two points the
// least-squares fit is an exact solve.
func NewCalibration(p1, p2 RefPeak) (Calibration, error) {
	if p1.ToF == p2.ToF {
		return Calibration{}, &ErrCalibration{Reason: "reference peaks have identical ToF values"}
	}
	if p1.Mz <= 0 || p2.Mz <= 0 {
		return Calibration{}, &ErrCalibration{Reason: "reference m/z values must be positive"}
	}

	tofRef := []float64{p1.ToF, p2.ToF}
	sqrtMz := []float64{math.Sqrt(p1.Mz), math.Sqrt(p2.Mz)}
	b, a := stat.LinearRegression(tofRef, sqrtMz, nil, false)
	return Calibration{A: a, B: b}, nil
}

// ToFToMz converts a time-of-flight value (ns) to m/z.
//
// The conversion squares the fitted line, so it is defined for all t but
// only monotonic above the zero-crossing of A*t + B. Inputs are expected
// to stay on the physical branch; no domain validation is performed.
func (c Calibration) ToFToMz(t float64) float64 {
	v := c.A*t + c.B
	return v * v
}

// ToFToMzSlice applies the conversion elementwise.
func (c Calibration) ToFToMzSlice(tof []float64) []float64 {
	mz := make([]float64, len(tof))
	for i, t := range tof {
		mz[i] = c.ToFToMz(t)
	}
	return mz
}
