// Package audio plays short cues when a maze pass finishes
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/labyrinth/maze"
)

// Cue identifies a sound
type Cue uint8

const (
	CueNone Cue = iota
	CueComplete
	CueError
)

// Cues manages the speaker and the cue mixer.
// Every method is a no-op until Initialize succeeds.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewCues creates an uninitialized cue player
func NewCues() *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup stops queued cues
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences output
	c.mixer.Clear()
	c.initialized = false
}

// SetMuted toggles playback without tearing down the speaker
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

// Muted reports the mute state
func (c *Cues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Play queues cue on the mixer
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}

	switch cue {
	case CueComplete:
		c.mixer.Add(NewChimeGenerator(sampleRate, chimeFrequenciesHz, time.Millisecond*chimeNoteDurationMs))
	case CueError:
		c.mixer.Add(beep.Take(sampleRate.N(time.Millisecond*errorBuzzDurationMs),
			NewBuzzGenerator(sampleRate, errorBuzzFrequencyHz)))
	}
}

// OnPass plays the cue for a finished pass; fits maze.WithCompleted
func (c *Cues) OnPass(m *maze.Maze) {
	c.Play(CueFor(m.Diagnostics()))
}

// CueFor picks the error buzz when any diagnostic is an error, else the chime
func CueFor(diags []maze.Diagnostic) Cue {
	for _, d := range diags {
		if d.Severity == maze.SeverityError {
			return CueError
		}
	}
	return CueComplete
}
