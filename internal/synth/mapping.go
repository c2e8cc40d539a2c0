package synth

import "math"

const (
	MinPitch = 200.0
	MaxPitch = 800.0

	MinVolume = 0.1
	MaxVolume = 0.8

	// lengths at or beyond this many pixels all sound at MinPitch
	pitchLengthRange = 1000.0
	// speeds in px/ms at or beyond this all sound at MaxVolume
	volumeSpeedRange = 5.0
)

// Pitch maps stroke length to frequency in Hz. Longer strokes sound lower.
func Pitch(length float64) float64 {
	return MaxPitch - clamp01(length/pitchLengthRange)*(MaxPitch-MinPitch)
}

// Volume maps stroke speed to peak amplitude. Faster strokes are louder.
func Volume(speed float64) float64 {
	return MinVolume + clamp01(speed/volumeSpeedRange)*(MaxVolume-MinVolume)
}

// clamp01 treats NaN as 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// finiteSeconds turns NaN, infinite or negative durations into 0.
func finiteSeconds(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
