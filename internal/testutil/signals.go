package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// PulseTrain generates a gate signal that is high for width samples at the
// start of every period. Non-positive period or width yields silence.
func PulseTrain(period, width int, high float64, length int) []float64 {
	out := make([]float64, length)
	if period <= 0 || width <= 0 {
		return out
	}
	for i := range out {
		if i%period < width {
			out[i] = high
		}
	}
	return out
}

// Gate generates a single high gate of width samples starting at pos.
func Gate(pos, width int, high float64, length int) []float64 {
	out := make([]float64, length)
	for i := pos; i < pos+width && i < length; i++ {
		if i >= 0 {
			out[i] = high
		}
	}
	return out
}

// RisingEdges counts transitions from below to at-or-above threshold.
func RisingEdges(data []float64, threshold float64) int {
	edges := 0
	high := false
	for _, v := range data {
		if v >= threshold {
			if !high {
				edges++
			}
			high = true
		} else {
			high = false
		}
	}
	return edges
}
