package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every cue, 0..1
	AudioMasterVolume = 0.6
)

// Death Cue
// Descending two-tone with a long tail, the audible half of the death notice
const (
	DeathCueNote1Duration = 220 * time.Millisecond
	DeathCueNote2Duration = 480 * time.Millisecond
	DeathCueAttack        = 10 * time.Millisecond
	DeathCueRelease       = 300 * time.Millisecond
	DeathCueNote1Freq     = 440.0  // A4
	DeathCueNote2Freq     = 293.66 // D4
)

// Care Cue
// Short rising chirp for feed and pet
const (
	CareCueDuration = 90 * time.Millisecond
	CareCueAttack   = 5 * time.Millisecond
	CareCueRelease  = 60 * time.Millisecond
	CareCueFeedFreq = 659.25 // E5
	CareCuePetFreq  = 783.99 // G5
	CareCueHarmonic = 2.0
)

// Revive Cue
// Ascending arpeggio played on bury
const (
	ReviveCueNoteDuration = 110 * time.Millisecond
	ReviveCueAttack       = 5 * time.Millisecond
	ReviveCueRelease      = 70 * time.Millisecond
)

// ReviveCueFreqs are played in order, C5 E5 G5
var ReviveCueFreqs = [...]float64{523.25, 659.25, 783.99}
