// Package audio plays the pet's sound cues through beep's speaker.
//
// Audio is optional: when the speaker cannot be initialized every Play call
// is a no-op and the pet runs muted.
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pet/needs"
	"github.com/lixenwraith/vi-pet/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Cue identifies a one-shot sound
type Cue uint8

const (
	CueDeath Cue = iota
	CueFeed
	CuePet
	CueRevive
)

func (c Cue) String() string {
	switch c {
	case CueDeath:
		return "death"
	case CueFeed:
		return "feed"
	case CuePet:
		return "pet"
	case CueRevive:
		return "revive"
	default:
		return "unknown"
	}
}

// Streamer builds a fresh streamer for the cue at the given linear volume
func (c Cue) Streamer(rate beep.SampleRate, vol float64) beep.Streamer {
	switch c {
	case CueDeath:
		return CreateDeathCue(rate, vol)
	case CueFeed:
		return CreateCareCue(parameter.CareCueFeedFreq, rate, vol)
	case CuePet:
		return CreateCareCue(parameter.CareCuePetFreq, rate, vol)
	case CueRevive:
		return CreateReviveCue(rate, vol)
	default:
		return nil
	}
}

// SoundManager owns the speaker and a mixer that one-shot cues are added to
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	volume      float64
}

// NewSoundManager creates an uninitialized, unmuted manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: parameter.AudioMasterVolume,
	}
}

// Initialize sets up the speaker; calling it twice is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer
// beep has no speaker Close, clearing the mixer leaves no audio artifacts
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Play queues a cue; dropped when uninitialized or muted
func (sm *SoundManager) Play(c Cue) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	s := c.Streamer(sampleRate, sm.volume)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

func (sm *SoundManager) PlayDeath()  { sm.Play(CueDeath) }
func (sm *SoundManager) PlayRevive() { sm.Play(CueRevive) }

// PlayCare picks the chirp pitch by care kind
func (sm *SoundManager) PlayCare(k needs.Kind) {
	if k == needs.Pet {
		sm.Play(CuePet)
		return
	}
	sm.Play(CueFeed)
}
