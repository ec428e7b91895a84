package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/labyrinth/maze"
)

// TestCuesGracefulDegradation verifies playback is safe without a speaker
func TestCuesGracefulDegradation(t *testing.T) {
	c := NewCues()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cue operations panicked without initialization: %v", r)
		}
	}()

	c.Play(CueComplete)
	c.Play(CueError)
	c.Play(CueNone)
	c.OnPass(maze.New(maze.DefaultConfig()))
	c.Cleanup()
}

// TestCuesInitialization may fail where no audio device exists; that is not a failure
func TestCuesInitialization(t *testing.T) {
	c := NewCues()
	if err := c.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := c.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	c.Play(CueComplete)
	c.Cleanup()
}

func TestCuesMute(t *testing.T) {
	c := NewCues()
	if c.Muted() {
		t.Error("Expected unmuted by default")
	}
	c.SetMuted(true)
	if !c.Muted() {
		t.Error("Expected muted")
	}
}

func TestCueFor(t *testing.T) {
	warn := maze.Diagnostic{Severity: maze.SeverityWarning, Step: "rooms", Err: errors.New("w")}
	fail := maze.Diagnostic{Severity: maze.SeverityError, Step: "entry", Err: errors.New("e")}

	tests := []struct {
		name  string
		diags []maze.Diagnostic
		want  Cue
	}{
		{"clean", nil, CueComplete},
		{"warnings only", []maze.Diagnostic{warn, warn}, CueComplete},
		{"error", []maze.Diagnostic{warn, fail}, CueError},
	}
	for _, tt := range tests {
		if got := CueFor(tt.diags); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestChimeGeneratorFinite(t *testing.T) {
	g := NewChimeGenerator(sampleRate, chimeFrequenciesHz, 10*time.Millisecond)
	want := sampleRate.N(10*time.Millisecond) * len(chimeFrequenciesHz)
	if g.Len() != want {
		t.Fatalf("Expected %d samples, got %d", want, g.Len())
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := g.Stream(buf)
		total += n
		for _, s := range buf[:n] {
			if math.Abs(s[0]) > chimeAmplitude || s[0] != s[1] {
				t.Fatalf("Sample out of range or unbalanced: %v", s)
			}
		}
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("Expected %d streamed samples, got %d", want, total)
	}
}

func TestBuzzGeneratorBounded(t *testing.T) {
	g := NewBuzzGenerator(sampleRate, errorBuzzFrequencyHz)
	buf := make([][2]float64, sampleRate.N(50*time.Millisecond))
	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Expected full buffer, got n=%d ok=%v", n, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	for _, s := range buf {
		if math.Abs(s[0]) > errorBuzzAmplitude {
			t.Fatalf("Sample exceeds amplitude: %f", s[0])
		}
	}
}

// TestAudioFrequencies verifies cue pitches are audible
func TestAudioFrequencies(t *testing.T) {
	freqs := append([]float64{errorBuzzFrequencyHz}, chimeFrequenciesHz...)
	for _, f := range freqs {
		if f < 20 || f > 2000 {
			t.Errorf("Frequency %f outside cue range", f)
		}
	}
	if chimeAmplitude <= 0 || chimeAmplitude > 1 || errorBuzzAmplitude <= 0 || errorBuzzAmplitude > 1 {
		t.Error("Amplitudes must be in (0, 1]")
	}
}
