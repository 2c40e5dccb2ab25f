// Implements the Clock, which advances simulated time one minute per tick
// and drives the salon's per-tick steps.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	// OpeningHour is the simulated hour the clock starts at.
	OpeningHour    = 9
	minutesPerHour = 60
)

// Listener is invoked once per tick, after the clock has advanced.
type Listener func()

// Clock tracks simulated wall time as (hour, minute).
// Thread-safety: NOT thread-safe. Start, Stop and the listeners run on one goroutine.
type Clock struct {
	hour   int
	minute int
	active bool
	pacer  Pacer
}

// NewClock creates a clock at 09:00 using the given pacer.
// A nil pacer defaults to real-time pacing with DefaultTickDelay.
func NewClock(pacer Pacer) *Clock {
	if pacer == nil {
		pacer = RealTimePacer{Delay: DefaultTickDelay}
	}
	return &Clock{hour: OpeningHour, pacer: pacer}
}

// Start runs the tick loop until Stop is called. Each tick waits on the pacer,
// advances one minute, then invokes every listener in order.
// The active flag is only checked between ticks: a listener calling Stop does
// not prevent the listeners after it from running in the same tick.
func (c *Clock) Start(listeners []Listener) {
	for i, l := range listeners {
		if l == nil {
			panic(fmt.Sprintf("Clock.Start: listener %d must not be nil", i))
		}
	}
	c.active = true
	for c.active {
		c.waitOneMinute()
		logrus.Debugf("tick %s", c.CurrentTime())
		for _, l := range listeners {
			l()
		}
	}
}

// Stop ends the tick loop after the current tick completes.
func (c *Clock) Stop() {
	c.active = false
}

// Active reports whether the tick loop is running.
func (c *Clock) Active() bool {
	return c.active
}

// Hour returns the current simulated hour. Hours are not wrapped at 24.
func (c *Clock) Hour() int {
	return c.hour
}

// Minute returns the current simulated minute within the hour.
func (c *Clock) Minute() int {
	return c.minute
}

// CurrentTime returns the clock time formatted as zero-padded HH:MM.
func (c *Clock) CurrentTime() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

func (c *Clock) waitOneMinute() {
	c.pacer.Wait()
	c.minute++
	if c.minute >= minutesPerHour {
		c.hour++
		c.minute = 0
	}
}
