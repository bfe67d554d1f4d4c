// Package wavelet implements a single-level Daubechies-4 discrete wavelet
// transform over fixed-length price windows. Signals are extended
// periodically (indices wrap modulo the window length), so no special edge
// filters are required.
package wavelet

import "fmt"

// motherWaveletLength is the tap count of the DB4 filter banks.
const motherWaveletLength = 8

// ErrInvalidSignalLength reports a window whose length is zero, odd, or
// shorter than the filter support. Coefficients computed from such a window
// would be silently wrong, so callers get an error instead.
var ErrInvalidSignalLength = fmt.Errorf("wavelet: signal length must be even and >= %d", motherWaveletLength)

// DB4 decomposition filters.
var (
	decompositionLow = [motherWaveletLength]float64{
		-0.010597401784997278,
		0.032883011666982945,
		0.030841381835986965,
		-0.18703481171888114,
		-0.02798376941698385,
		0.6308807679295904,
		0.7148465705525415,
		0.23037781330885523,
	}
	decompositionHigh = [motherWaveletLength]float64{
		-0.23037781330885523,
		0.7148465705525415,
		-0.6308807679295904,
		-0.02798376941698385,
		0.18703481171888114,
		0.030841381835986965,
		-0.032883011666982945,
		-0.010597401784997278,
	}
)

// DB4 reconstruction filters.
var (
	reconstructionLow = [motherWaveletLength]float64{
		0.23037781330885523,
		0.7148465705525415,
		0.6308807679295904,
		-0.02798376941698385,
		-0.18703481171888114,
		0.030841381835986965,
		0.032883011666982945,
		-0.010597401784997278,
	}
	reconstructionHigh = [motherWaveletLength]float64{
		-0.010597401784997278,
		-0.032883011666982945,
		0.030841381835986965,
		0.18703481171888114,
		-0.02798376941698385,
		-0.6308807679295904,
		0.7148465705525415,
		-0.23037781330885523,
	}
)

func checkLength(n int) error {
	if n < motherWaveletLength || n%2 != 0 {
		return ErrInvalidSignalLength
	}
	return nil
}

// Decompose runs one level of the forward DWT. The result has the same
// length as the input: approximation coefficients in the first half, detail
// coefficients in the second.
func Decompose(signal []float64) ([]float64, error) {
	n := len(signal)
	if err := checkLength(n); err != nil {
		return nil, err
	}

	coeffs := make([]float64, n)
	half := n >> 1
	for i := 0; i < half; i++ {
		for j := 0; j < motherWaveletLength; j++ {
			k := (i << 1) + j
			for k >= n {
				k -= n
			}
			coeffs[i] += signal[k] * decompositionLow[j]
			coeffs[i+half] += signal[k] * decompositionHigh[j]
		}
	}
	return coeffs, nil
}

// Reconstruct runs the inverse DWT. Contributions are accumulated: each
// output index receives terms from every overlapping filter placement.
func Reconstruct(coeffs []float64) ([]float64, error) {
	n := len(coeffs)
	if err := checkLength(n); err != nil {
		return nil, err
	}

	signal := make([]float64, n)
	half := n >> 1
	for i := 0; i < half; i++ {
		for j := 0; j < motherWaveletLength; j++ {
			k := (i << 1) + j
			for k >= n {
				k -= n
			}
			signal[k] += coeffs[i]*reconstructionLow[j] + coeffs[i+half]*reconstructionHigh[j]
		}
	}
	return signal, nil
}

// Predict round-trips a price history through the transform. With untouched
// coefficients this reproduces the input up to floating-point error; it is
// the hook point for coefficient smoothing before reconstruction.
func Predict(history []float64) ([]float64, error) {
	coeffs, err := Decompose(history)
	if err != nil {
		return nil, err
	}
	return Reconstruct(coeffs)
}

// Denoise zeroes the detail half of the coefficients before reconstructing,
// keeping only the coarse approximation of the input.
func Denoise(history []float64) ([]float64, error) {
	coeffs, err := Decompose(history)
	if err != nil {
		return nil, err
	}
	half := len(coeffs) >> 1
	for i := half; i < len(coeffs); i++ {
		coeffs[i] = 0
	}
	return Reconstruct(coeffs)
}
