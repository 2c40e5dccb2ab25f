package sim

import (
	"fmt"
	"time"
)

// PaceMode names a pacing strategy accepted by NewPacer.
type PaceMode string

const (
	// PaceRealTime sleeps a fixed wall-clock delay on every tick.
	PaceRealTime PaceMode = "realtime"
	// PaceInstant advances the clock as fast as the loop can run.
	PaceInstant PaceMode = "instant"
)

// DefaultTickDelay makes one simulated hour last one wall-clock second.
const DefaultTickDelay = time.Second / 60

// validPaceModes maps accepted pace mode strings.
var validPaceModes = map[PaceMode]bool{
	PaceRealTime: true,
	PaceInstant:  true,
}

// IsValidPaceMode returns true if the given string is a recognized pace mode.
func IsValidPaceMode(mode string) bool {
	return validPaceModes[PaceMode(mode)]
}

// Pacer controls how much wall-clock time a single tick takes.
// Pacing never affects simulation results, only how fast they are produced.
type Pacer interface {
	Wait()
}

// RealTimePacer blocks for Delay on every tick.
type RealTimePacer struct {
	Delay time.Duration
}

// Wait sleeps for the configured delay. A non-positive delay returns immediately.
func (p RealTimePacer) Wait() {
	if p.Delay <= 0 {
		return
	}
	time.Sleep(p.Delay)
}

// InstantPacer never blocks.
type InstantPacer struct{}

func (InstantPacer) Wait() {}

// NewPacer builds the pacer for the given mode; delay is only used by PaceRealTime.
func NewPacer(mode string, delay time.Duration) (Pacer, error) {
	switch PaceMode(mode) {
	case PaceRealTime:
		if delay < 0 {
			return nil, fmt.Errorf("tick delay must be non-negative, got %s", delay)
		}
		return RealTimePacer{Delay: delay}, nil
	case PaceInstant:
		return InstantPacer{}, nil
	default:
		return nil, fmt.Errorf("unknown pace mode %q (valid: %s, %s)", mode, PaceRealTime, PaceInstant)
	}
}
