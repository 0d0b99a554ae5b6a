package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-snake/constants"
)

// Envelope shaping
const (
	attackDuration  = 5 * time.Millisecond
	releaseDuration = 20 * time.Millisecond
)

// envelope applies a linear attack/release to a finite streamer
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, rate beep.SampleRate, total time.Duration) *envelope {
	all := rate.N(total)
	att := rate.N(attackDuration)
	rel := rate.N(releaseDuration)
	sus := all - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   all,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear volume in [0,1]
// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a finite enveloped sine at freq Hz, scaled by gain
func tone(rate beep.SampleRate, freq float64, d time.Duration, gain float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return newVolume(newEnvelope(beep.Take(rate.N(d), sine), rate, d), gain), nil
}

// CreateSound builds the streamer for a sound type at the given master volume
func CreateSound(sound SoundType, rate beep.SampleRate, master float64) (beep.Streamer, error) {
	switch sound {
	case SoundEgg:
		s, err := tone(rate, constants.EggSoundFrequency, constants.EggSoundDuration, 0.5)
		if err != nil {
			return nil, err
		}
		return newVolume(s, master), nil

	case SoundSpecialEgg:
		// Two-tone chime
		base, err := tone(rate, constants.SpecialSoundFrequency, constants.SpecialSoundDuration, 0.4)
		if err != nil {
			return nil, err
		}
		over, err := tone(rate, constants.SpecialSoundOvertone, constants.SpecialSoundDuration, 0.25)
		if err != nil {
			return nil, err
		}
		return newVolume(beep.Mix(base, over), master), nil

	case SoundReject:
		s, err := tone(rate, constants.RejectSoundFrequency, constants.RejectSoundDuration, 0.6)
		if err != nil {
			return nil, err
		}
		return newVolume(s, master), nil
	}

	return nil, errUnknownSound
}
