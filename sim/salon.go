// Implements the Salon, which owns the stylists and the wait queue and
// reacts to every clock tick.

package sim

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/salon-sim/sim/trace"
)

const (
	// ClosingHour is the simulated hour at which the salon stops admitting customers.
	ClosingHour = 17
	// ArrivalIntervalMinutes is the minute-of-hour divisor at which a customer arrives.
	ArrivalIntervalMinutes = 7
)

// DefaultRoster is the stylist line-up of a regular workday.
var DefaultRoster = []string{"Ann", "Ben", "Carol", "Derek"}

// Salon keeps track of all stylists on shift and the customers waiting for them.
type Salon struct {
	stylists []*Stylist // Fixed at construction, in registration order
	waiting  WaitQueue
	open     bool
	clock    *Clock
	seq      *CustomerSequence
	out      io.Writer
	journal  *trace.Journal // nil when recording is disabled
}

// Option configures a Salon at construction.
type Option func(*Salon)

// WithPacer sets the pacing strategy of the salon's clock.
func WithPacer(p Pacer) Option {
	return func(s *Salon) { s.clock = NewClock(p) }
}

// WithClock replaces the salon's clock.
func WithClock(c *Clock) Option {
	return func(s *Salon) { s.clock = c }
}

// WithOutput redirects the event log. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Salon) { s.out = w }
}

// WithSequence injects the customer numbering sequence.
func WithSequence(seq *CustomerSequence) Option {
	return func(s *Salon) { s.seq = seq }
}

// WithJournal records every event into j in addition to the event log.
func WithJournal(j *trace.Journal) Option {
	return func(s *Salon) { s.journal = j }
}

// NewSalon creates a closed salon staffed by the given stylists.
// Panics if there are no stylists or two stylists share a name.
func NewSalon(stylists []*Stylist, opts ...Option) *Salon {
	if len(stylists) == 0 {
		panic("NewSalon: at least one stylist is required")
	}
	seen := make(map[string]bool, len(stylists))
	for _, st := range stylists {
		if st == nil {
			panic("NewSalon: stylist must not be nil")
		}
		if seen[st.Name] {
			panic(fmt.Sprintf("NewSalon: duplicate stylist %q", st.Name))
		}
		seen[st.Name] = true
	}

	s := &Salon{
		stylists: stylists,
		seq:      NewCustomerSequence(),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewClock(nil)
	}
	return s
}

// NewSalonFromRoster creates a salon with one stylist per name.
func NewSalonFromRoster(names []string, opts ...Option) *Salon {
	stylists := make([]*Stylist, 0, len(names))
	for _, n := range names {
		stylists = append(stylists, NewStylist(n))
	}
	return NewSalon(stylists, opts...)
}

// Steps returns the per-tick steps in the order the clock runs them.
func (s *Salon) Steps() []Listener {
	return []Listener{
		s.CheckClosingTime,
		s.CheckForCustomers,
		s.UpdateStylistProgress,
	}
}

// Open opens the salon for business and blocks until the clock stops:
// after closing time, once every haircut in progress is finished.
func (s *Salon) Open() {
	s.logEvent(trace.Record{Kind: trace.KindOpened}, "Hair salon opened")
	s.open = true
	s.clock.Start(s.Steps())
}

// Run simulates a full workday: opens the salon, then kicks out whoever is still waiting.
func (s *Salon) Run() {
	s.Open()
	s.KickOutCustomers()
}

// CheckClosingTime stops admitting customers from ClosingHour on. The clock
// itself is only stopped once no haircut is in progress.
func (s *Salon) CheckClosingTime() {
	if s.clock.Hour() < ClosingHour {
		return
	}
	if s.open {
		logrus.Debugf("%s closing, %d waiting", s.clock.CurrentTime(), s.waiting.Len())
	}
	s.open = false
	if !s.HaircutInProgress() {
		s.clock.Stop()
	}
}

// CheckForCustomers admits a new customer every ArrivalIntervalMinutes while open.
func (s *Salon) CheckForCustomers() {
	if !s.open || s.clock.Minute()%ArrivalIntervalMinutes != 0 {
		return
	}
	s.CustomerEntered(s.seq.Next())
}

// CustomerEntered puts c in the wait queue, then hands the queue head to a
// free stylist in the same tick if there is one.
func (s *Salon) CustomerEntered(c *Customer) {
	s.logEvent(trace.Record{Kind: trace.KindEntered, Customer: c.Name}, fmt.Sprintf("%s entered", c))
	s.waiting.Enqueue(c)
	if st := s.NextAvailable(); st != nil {
		s.AssignNextCustomerTo(st)
	}
}

// AssignNextCustomerTo starts the haircut of the longest-waiting customer.
// No-op when nobody is waiting.
func (s *Salon) AssignNextCustomerTo(st *Stylist) {
	c := s.waiting.Dequeue()
	if c == nil {
		return
	}
	st.Assign(c)
	s.logEvent(trace.Record{Kind: trace.KindStarted, Customer: c.Name, Stylist: st.Name},
		fmt.Sprintf("%s started cutting %s's hair", st, c))
}

// NextAvailable returns the first free stylist in registration order, or nil if everyone is busy.
func (s *Salon) NextAvailable() *Stylist {
	for _, st := range s.stylists {
		if st.Available() {
			return st
		}
	}
	return nil
}

// UpdateStylistProgress advances every haircut in progress by one minute.
// A finished haircut sends its customer home satisfied and the stylist picks
// up the next waiting customer within the same tick.
func (s *Salon) UpdateStylistProgress() {
	for _, st := range s.busy() {
		if !st.IsDone() {
			st.CutHair()
			continue
		}
		c := st.Customer()
		c.Satisfied = true
		s.logEvent(trace.Record{Kind: trace.KindEnded, Customer: c.Name, Stylist: st.Name},
			fmt.Sprintf("%s ended cutting %s's hair", st, c))
		s.customerLeft(c)
		st.Release()
		s.AssignNextCustomerTo(st)
	}
}

// HaircutInProgress reports whether any stylist has a customer in the chair.
func (s *Salon) HaircutInProgress() bool {
	return len(s.busy()) > 0
}

// KickOutCustomers sends every waiting customer home. They never got a
// haircut, so they always leave furious.
func (s *Salon) KickOutCustomers() {
	for _, c := range s.waiting.Drain() {
		s.customerLeft(c)
	}
}

// IsOpen reports whether the salon is admitting customers.
func (s *Salon) IsOpen() bool {
	return s.open
}

// Clock returns the salon's clock.
func (s *Salon) Clock() *Clock {
	return s.clock
}

// Stylists returns the stylists in registration order. Callers MUST NOT modify the slice.
func (s *Salon) Stylists() []*Stylist {
	return s.stylists
}

// Waiting returns the salon's wait queue.
func (s *Salon) Waiting() *WaitQueue {
	return &s.waiting
}

// busy snapshots the stylists that currently have a customer, in registration order.
func (s *Salon) busy() []*Stylist {
	var busy []*Stylist
	for _, st := range s.stylists {
		if !st.Available() {
			busy = append(busy, st)
		}
	}
	return busy
}

func (s *Salon) customerLeft(c *Customer) {
	mood := c.Mood()
	s.logEvent(trace.Record{Kind: trace.KindLeft, Customer: c.Name, Mood: string(mood)},
		fmt.Sprintf("%s left %s", c, mood))
}

// logEvent writes one "HH:MM message" line to the event log and records it in the journal.
func (s *Salon) logEvent(r trace.Record, msg string) {
	now := s.clock.CurrentTime()
	if _, err := fmt.Fprintf(s.out, "%s %s\n", now, msg); err != nil {
		logrus.Warnf("event log write failed: %v", err)
	}
	if s.journal != nil {
		r.Clock = now
		s.journal.Record(r)
	}
}
