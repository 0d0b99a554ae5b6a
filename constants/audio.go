package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same sound
	MinSoundGap = 50 * time.Millisecond
)

// Egg Sound
const (
	EggSoundDuration  = 60 * time.Millisecond
	EggSoundFrequency = 880.0
)

// Special Egg Sound (two-tone chime)
const (
	SpecialSoundDuration  = 90 * time.Millisecond
	SpecialSoundFrequency = 1320.0
	SpecialSoundOvertone  = 1760.0
)

// Rejected Turn Sound
const (
	RejectSoundDuration  = 120 * time.Millisecond
	RejectSoundFrequency = 120.0
)
