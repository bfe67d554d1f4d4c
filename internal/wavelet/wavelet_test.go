package wavelet

import (
	"errors"
	"math"
	"testing"
)

func TestRoundTripIdentity(t *testing.T) {
	signal := []float64{9997, 10002, 9998, 10001, 10004, 9999, 9996, 10000,
		10003, 10001, 9998, 9995, 10002, 10006, 10001, 9999}

	out, err := Predict(signal)
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if len(out) != len(signal) {
		t.Fatalf("expected %d samples, got %d", len(signal), len(out))
	}
	for i := range signal {
		rel := math.Abs(out[i]-signal[i]) / math.Abs(signal[i])
		if rel > 1e-9 {
			t.Fatalf("sample %d drifted: want %.6f got %.6f", i, signal[i], out[i])
		}
	}
}

func TestRoundTripMinimumLength(t *testing.T) {
	signal := []float64{1, -2, 3, -4, 5, -6, 7, -8}
	out, err := Predict(signal)
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	for i := range signal {
		if math.Abs(out[i]-signal[i]) > 1e-9 {
			t.Fatalf("sample %d drifted: want %.6f got %.6f", i, signal[i], out[i])
		}
	}
}

func TestDecomposeRejectsBadLengths(t *testing.T) {
	for _, n := range []int{0, 3, 6, 7, 9} {
		if _, err := Decompose(make([]float64, n)); !errors.Is(err, ErrInvalidSignalLength) {
			t.Fatalf("expected ErrInvalidSignalLength for n=%d, got %v", n, err)
		}
	}
}

func TestReconstructRejectsBadLengths(t *testing.T) {
	if _, err := Reconstruct(make([]float64, 5)); !errors.Is(err, ErrInvalidSignalLength) {
		t.Fatalf("expected ErrInvalidSignalLength, got %v", err)
	}
}

func TestDecomposeConstantSignal(t *testing.T) {
	// DB4 high-pass taps sum to zero, so a constant signal has no detail.
	signal := make([]float64, 16)
	for i := range signal {
		signal[i] = 100
	}
	coeffs, err := Decompose(signal)
	if err != nil {
		t.Fatalf("Decompose returned error: %v", err)
	}
	for i := len(coeffs) / 2; i < len(coeffs); i++ {
		if math.Abs(coeffs[i]) > 1e-9 {
			t.Fatalf("detail coefficient %d nonzero: %g", i, coeffs[i])
		}
	}
}

func TestDenoiseKeepsConstantSignal(t *testing.T) {
	signal := make([]float64, 16)
	for i := range signal {
		signal[i] = 42
	}
	out, err := Denoise(signal)
	if err != nil {
		t.Fatalf("Denoise returned error: %v", err)
	}
	for i := range out {
		if math.Abs(out[i]-42) > 1e-9 {
			t.Fatalf("sample %d drifted after denoise: %g", i, out[i])
		}
	}
}

func TestDenoiseRemovesDetail(t *testing.T) {
	noisy := []float64{100, 101, 100, 99, 100, 101, 100, 99, 100, 101, 100, 99, 100, 101, 100, 99}

	out, err := Denoise(noisy)
	if err != nil {
		t.Fatalf("Denoise returned error: %v", err)
	}
	identity, err := Predict(noisy)
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}

	var diff float64
	for i := range out {
		diff += math.Abs(out[i] - identity[i])
	}
	if diff == 0 {
		t.Fatalf("expected denoised output to differ from the exact round trip")
	}
}
