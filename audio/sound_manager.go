package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

var errUnknownSound = errors.New("unknown sound type")

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager manages all game audio
// Playback runs on the speaker goroutine; every method is safe to call from the game loop
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64

	clock      engine.TimeProvider
	lastPlayed [soundTypeCount]time.Time

	log *zap.Logger
}

// NewSoundManager creates a new sound manager
// A nil clock uses the monotonic wall clock; a nil logger is replaced by a no-op logger
func NewSoundManager(cfg config.AudioConfig, clock engine.TimeProvider, log *zap.Logger) *SoundManager {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled,
		volume:  cfg.MasterVolume,
		clock:   clock,
		log:     log,
	}
}

// Initialize sets up the audio system
// Disabled audio is not an error and leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; an empty mixer keeps the device quiet
	sm.initialized = false
}

// Play queues a sound, returning false when it was not played
// Repeats of the same sound closer than constants.MinSoundGap are dropped
func (sm *SoundManager) Play(sound SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sound < 0 || sound >= soundTypeCount {
		return false
	}
	if !sm.allow(sound) {
		return false
	}

	streamer, err := CreateSound(sound, sampleRate, sm.volume)
	if err != nil {
		sm.log.Warn("sound build failed", zap.Stringer("sound", sound), zap.Error(err))
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// allow applies the per-sound gap and records the play time
func (sm *SoundManager) allow(sound SoundType) bool {
	now := sm.clock.Now()
	last := sm.lastPlayed[sound]
	if !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[sound] = now
	return true
}

// HandleEvents plays the sounds for one snapshot's events
func (sm *SoundManager) HandleEvents(events []engine.Event) {
	for _, ev := range events {
		if sound, ok := SoundForEvent(ev); ok {
			sm.Play(sound)
		}
	}
}

// SoundForEvent maps a simulation event to its sound
func SoundForEvent(ev engine.Event) (SoundType, bool) {
	switch ev.Type {
	case engine.EventEggConsumed:
		if ev.Special {
			return SoundSpecialEgg, true
		}
		return SoundEgg, true
	case engine.EventTurnRejected:
		return SoundReject, true
	default:
		return 0, false
	}
}
