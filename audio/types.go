// Package audio plays short beep tones in response to simulation events
package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundEgg        SoundType = iota // Ordinary egg swallowed
	SoundSpecialEgg                  // Special egg swallowed
	SoundReject                      // Reversal turn refused
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEgg:
		return "egg"
	case SoundSpecialEgg:
		return "special_egg"
	case SoundReject:
		return "reject"
	default:
		return "unknown"
	}
}
