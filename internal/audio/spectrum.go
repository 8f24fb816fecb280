package audio

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Analyser defaults, matching a browser AnalyserNode.
const (
	DefaultSmoothing = 0.8
	DefaultMinDB     = -100.0
	DefaultMaxDB     = -30.0
)

// Analyser turns the most recent samples into normalized frequency
// magnitudes: a Blackman-windowed FFT of 2*bins samples, smoothed over time
// and mapped from [MinDB, MaxDB] onto [0,1].
//
// An Analyser is not safe for concurrent use.
type Analyser struct {
	fftSize   int
	smoothing float64
	minDB     float64
	maxDB     float64

	fft      *fourier.FFT
	frame    []float64
	coeffs   []complex128
	smoothed []float64
}

// NewAnalyser returns an analyser producing bins magnitudes. bins must be a
// power of two.
func NewAnalyser(bins int) *Analyser {
	size := bins * 2
	return &Analyser{
		fftSize:   size,
		smoothing: DefaultSmoothing,
		minDB:     DefaultMinDB,
		maxDB:     DefaultMaxDB,
		fft:       fourier.NewFFT(size),
		frame:     make([]float64, size),
		smoothed:  make([]float64, bins),
	}
}

// Bins returns the number of magnitudes per frame.
func (a *Analyser) Bins() int {
	return a.fftSize / 2
}

// FFTSize returns the number of samples analysed per frame.
func (a *Analyser) FFTSize() int {
	return a.fftSize
}

// Reset forgets the smoothing history.
func (a *Analyser) Reset() {
	clear(a.smoothed)
}

// Levels analyses the last FFTSize samples (zero-padded at the front when
// fewer are given) and returns Bins values in [0,1].
func (a *Analyser) Levels(samples []int16) []float64 {
	clear(a.frame)
	if len(samples) > a.fftSize {
		samples = samples[len(samples)-a.fftSize:]
	}
	offset := a.fftSize - len(samples)
	for i, s := range samples {
		a.frame[offset+i] = float64(s) / 32768
	}

	window.Blackman(a.frame)
	a.coeffs = a.fft.Coefficients(a.coeffs, a.frame)

	levels := make([]float64, a.Bins())
	scale := 1 / float64(a.fftSize)
	for k := range levels {
		magnitude := cmplx.Abs(a.coeffs[k]) * scale
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*magnitude
		levels[k] = a.normalize(a.smoothed[k])
	}

	return levels
}

func (a *Analyser) normalize(magnitude float64) float64 {
	if magnitude <= 0 {
		return 0
	}
	db := 20 * math.Log10(magnitude)
	v := (db - a.minDB) / (a.maxDB - a.minDB)
	return math.Max(0, math.Min(1, v))
}
