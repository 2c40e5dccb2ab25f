package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/salon-sim/sim/internal/testutil"
	"github.com/inference-sim/salon-sim/sim/trace"
)

// newTestSalon builds an instant-paced salon whose clock reads hh:mm and whose
// event log is captured in the returned buffer.
func newTestSalon(t *testing.T, names []string, hh, mm int) (*Salon, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	clock := &Clock{hour: hh, minute: mm, pacer: InstantPacer{}}
	return NewSalonFromRoster(names, WithClock(clock), WithOutput(&out)), &out
}

// tick advances the salon's clock one minute and runs that tick's steps.
func tick(s *Salon) {
	s.clock.waitOneMinute()
	for _, step := range s.Steps() {
		step()
	}
}

func TestNewSalon_InvalidRoster_Panics(t *testing.T) {
	assert.Panics(t, func() { NewSalon(nil) })
	assert.Panics(t, func() { NewSalonFromRoster([]string{"Ann", "Ann"}) })
	assert.Panics(t, func() { NewSalon([]*Stylist{nil}) })
}

func TestNewSalon_Defaults(t *testing.T) {
	s := NewSalonFromRoster(DefaultRoster)
	assert.False(t, s.IsOpen())
	assert.Equal(t, "09:00", s.Clock().CurrentTime())
	require.Len(t, s.Stylists(), 4)
	assert.Equal(t, "Ann", s.Stylists()[0].Name)
	assert.Equal(t, "Derek", s.Stylists()[3].Name)
}

func TestSalon_NextAvailable_RegistrationOrder(t *testing.T) {
	s, _ := newTestSalon(t, []string{"Ann", "Ben", "Carol"}, 9, 0)
	assert.Equal(t, "Ann", s.NextAvailable().Name)

	s.Stylists()[0].Assign(&Customer{Name: "x"})
	assert.Equal(t, "Ben", s.NextAvailable().Name)

	s.Stylists()[2].Assign(&Customer{Name: "y"})
	assert.Equal(t, "Ben", s.NextAvailable().Name)

	s.Stylists()[1].Assign(&Customer{Name: "z"})
	assert.Nil(t, s.NextAvailable())
	assert.True(t, s.HaircutInProgress())
}

func TestSalon_CustomerEntered_AssignsImmediatelyWhenFree(t *testing.T) {
	s, out := newTestSalon(t, []string{"Ann"}, 9, 7)
	c := &Customer{Name: "Customer-1"}

	s.CustomerEntered(c)

	assert.Same(t, c, s.Stylists()[0].Customer())
	assert.Equal(t, 0, s.Waiting().Len())
	assert.Equal(t, "09:07 Customer-1 entered\n09:07 Ann started cutting Customer-1's hair\n", out.String())
}

func TestSalon_AssignNextCustomerTo_EmptyQueue_NoOp(t *testing.T) {
	s, out := newTestSalon(t, []string{"Ann"}, 9, 0)
	s.AssignNextCustomerTo(s.Stylists()[0])
	assert.True(t, s.Stylists()[0].Available())
	assert.Empty(t, out.String())
}

func TestSalon_CheckForCustomers_ClosingTimeGating(t *testing.T) {
	tests := []struct {
		name      string
		open      bool
		minute    int
		wantQueue int
	}{
		{name: "closed on arrival minute", open: false, minute: 14, wantQueue: 0},
		{name: "open on arrival minute", open: true, minute: 14, wantQueue: 1},
		{name: "open on top of hour", open: true, minute: 0, wantQueue: 1},
		{name: "open off arrival minute", open: true, minute: 15, wantQueue: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// GIVEN a salon whose only stylist is busy
			s, _ := newTestSalon(t, []string{"Ann"}, 10, tc.minute)
			s.Stylists()[0].Assign(&Customer{Name: "joe"})
			s.open = tc.open

			// WHEN arrivals are checked
			s.CheckForCustomers()

			// THEN exactly the expected number of customers is waiting
			assert.Equal(t, tc.wantQueue, s.Waiting().Len())
		})
	}
}

func TestSalon_CheckForCustomers_OnePerCall(t *testing.T) {
	s, _ := newTestSalon(t, []string{"Ann"}, 10, 21)
	s.Stylists()[0].Assign(&Customer{Name: "joe"})
	s.open = true

	s.CheckForCustomers()
	s.CheckForCustomers()

	require.Equal(t, 2, s.Waiting().Len())
	assert.Equal(t, "Customer-1", s.Waiting().Items()[0].Name)
	assert.Equal(t, "Customer-2", s.Waiting().Items()[1].Name)
}

func TestSalon_CheckForCustomers_UsesInjectedSequence(t *testing.T) {
	seq := NewCustomerSequence()
	seq.Next()
	clock := &Clock{hour: 9, minute: 7, pacer: InstantPacer{}}
	var out bytes.Buffer
	s := NewSalonFromRoster([]string{"Ann"}, WithClock(clock), WithOutput(&out), WithSequence(seq))
	s.open = true

	s.CheckForCustomers()

	assert.Equal(t, "Customer-2", s.Stylists()[0].Customer().Name)
}

func TestSalon_QueueFairness_EarliestArrivalServedFirst(t *testing.T) {
	// GIVEN Ann is busy and C1, C2 arrive in that order
	s, _ := newTestSalon(t, []string{"Ann"}, 9, 0)
	ann := s.Stylists()[0]
	ann.Assign(&Customer{Name: "joe"})
	c1 := &Customer{Name: "C1"}
	c2 := &Customer{Name: "C2"}
	s.CustomerEntered(c1)
	s.CustomerEntered(c2)
	require.Equal(t, 2, s.Waiting().Len())

	// WHEN Ann finishes her haircut
	for !ann.IsDone() {
		ann.CutHair()
	}
	s.UpdateStylistProgress()

	// THEN C1 is in the chair and C2 is still waiting
	assert.Same(t, c1, ann.Customer())
	assert.Same(t, c2, s.Waiting().Peek())
	assert.Equal(t, HaircutMinutes, ann.Minutes())
}

func TestSalon_UpdateStylistProgress_CompletesAfterThirtyDecrements(t *testing.T) {
	s, out := newTestSalon(t, []string{"Ann"}, 9, 0)
	ann := s.Stylists()[0]
	c := &Customer{Name: "joe"}
	ann.Assign(c)

	for i := 0; i < HaircutMinutes; i++ {
		s.UpdateStylistProgress()
	}
	assert.True(t, ann.IsDone())
	assert.False(t, c.Satisfied)
	assert.Empty(t, out.String())

	s.UpdateStylistProgress()

	assert.True(t, c.Satisfied)
	assert.Equal(t, MoodSatisfied, c.Mood())
	assert.True(t, ann.Available())
	assert.Equal(t, "09:00 Ann ended cutting joe's hair\n09:00 joe left Satisfied\n", out.String())
}

func TestSalon_UpdateStylistProgress_ReassignedStylistNotCutSameTick(t *testing.T) {
	s, _ := newTestSalon(t, []string{"Ann"}, 9, 0)
	ann := s.Stylists()[0]
	ann.Assign(&Customer{Name: "joe"})
	for !ann.IsDone() {
		ann.CutHair()
	}
	s.Waiting().Enqueue(&Customer{Name: "moe"})

	s.UpdateStylistProgress()

	assert.Equal(t, "moe", ann.Customer().Name)
	assert.Equal(t, HaircutMinutes, ann.Minutes())
}

func TestSalon_SingleStylistMorning(t *testing.T) {
	// GIVEN a salon with only Ann, opened at 09:00
	s, out := newTestSalon(t, []string{"Ann"}, 9, 0)
	s.open = true

	// WHEN the clock advances to 09:37
	for s.Clock().CurrentTime() != "09:37" {
		tick(s)
	}

	// THEN Customer-1 was served and Customer-2 took the chair in the same minute
	want := []string{
		"09:07 Customer-1 entered",
		"09:07 Ann started cutting Customer-1's hair",
		"09:14 Customer-2 entered",
		"09:21 Customer-3 entered",
		"09:28 Customer-4 entered",
		"09:35 Customer-5 entered",
		"09:37 Ann ended cutting Customer-1's hair",
		"09:37 Customer-1 left Satisfied",
		"09:37 Ann started cutting Customer-2's hair",
	}
	testutil.AssertLinesEqual(t, want, testutil.SplitLines(out.String()))
	assert.Equal(t, "[Customer-3 Customer-4 Customer-5]", s.Waiting().String())
}

func TestSalon_CheckClosingTime_NoHaircutInProgress_StopsClock(t *testing.T) {
	s, _ := newTestSalon(t, []string{"Ann"}, 17, 0)
	s.open = true
	s.clock.active = true

	s.CheckClosingTime()

	assert.False(t, s.IsOpen())
	assert.False(t, s.Clock().Active())
}

func TestSalon_CheckClosingTime_HaircutInProgress_KeepsClockRunning(t *testing.T) {
	s, _ := newTestSalon(t, []string{"Ann"}, 17, 0)
	s.open = true
	s.clock.active = true
	s.Stylists()[0].Assign(&Customer{Name: "joe"})

	s.CheckClosingTime()

	assert.False(t, s.IsOpen())
	assert.True(t, s.Clock().Active())
}

func TestSalon_CheckClosingTime_BeforeClosing_NoChange(t *testing.T) {
	s, _ := newTestSalon(t, []string{"Ann"}, 16, 59)
	s.open = true
	s.clock.active = true

	s.CheckClosingTime()

	assert.True(t, s.IsOpen())
	assert.True(t, s.Clock().Active())
}

func TestSalon_Closing_ClockRunsUntilHaircutsFinish(t *testing.T) {
	// GIVEN Ann starts a haircut at 16:50 on an open salon
	s, out := newTestSalon(t, []string{"Ann"}, 16, 50)
	s.Stylists()[0].Assign(&Customer{Name: "joe"})
	s.open = true

	// WHEN the clock runs to completion
	s.clock.Start(s.Steps())

	// THEN no one is admitted after 17:00, but queued haircuts still finish
	want := []string{
		"16:56 Customer-1 entered",
		"17:21 Ann ended cutting joe's hair",
		"17:21 joe left Satisfied",
		"17:21 Ann started cutting Customer-1's hair",
		"17:52 Ann ended cutting Customer-1's hair",
		"17:52 Customer-1 left Satisfied",
	}
	testutil.AssertLinesEqual(t, want, testutil.SplitLines(out.String()))
	assert.False(t, s.IsOpen())
	assert.False(t, s.HaircutInProgress())
	assert.Equal(t, "17:53", s.Clock().CurrentTime())
}

func TestSalon_KickOutCustomers_WaitingLeaveFurious(t *testing.T) {
	s, out := newTestSalon(t, []string{"Ann"}, 17, 30)
	s.Stylists()[0].Assign(&Customer{Name: "joe"})
	s.CustomerEntered(&Customer{Name: "Customer-1"})
	s.CustomerEntered(&Customer{Name: "Customer-2"})
	out.Reset()

	s.KickOutCustomers()

	assert.Equal(t, "17:30 Customer-1 left Furious\n17:30 Customer-2 left Furious\n", out.String())
	assert.Equal(t, 0, s.Waiting().Len())
}

func TestSalon_Run_DefaultDay_MatchesGoldenLog(t *testing.T) {
	// GIVEN the regular four-stylist roster with instant pacing
	var out bytes.Buffer
	journal := trace.NewJournal()
	s := NewSalonFromRoster(DefaultRoster, WithPacer(InstantPacer{}), WithOutput(&out), WithJournal(journal))

	// WHEN a full day is simulated
	s.Run()

	// THEN the event log matches the golden log byte-for-byte
	want := testutil.LoadGoldenLog(t, "default_day.log")
	testutil.AssertLinesEqual(t, want, testutil.SplitLines(out.String()))
	assert.Equal(t, len(want), journal.Len())

	summary := trace.Summarize(journal)
	assert.Equal(t, 71, summary.Arrivals)
	assert.Equal(t, summary.Arrivals, summary.Served+summary.Furious)
	assert.Equal(t, "18:38", summary.LastEvent)
}

func TestSalon_Run_ShortStaffedDay_MatchesGoldenLog(t *testing.T) {
	var out bytes.Buffer
	s := NewSalonFromRoster([]string{"Ann", "Ben"}, WithPacer(InstantPacer{}), WithOutput(&out))

	s.Run()

	want := testutil.LoadGoldenLog(t, "short_staffed_day.log")
	testutil.AssertLinesEqual(t, want, testutil.SplitLines(out.String()))
}

func TestSalon_Run_Deterministic(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		NewSalonFromRoster(DefaultRoster, WithPacer(InstantPacer{}), WithOutput(&out)).Run()
		return out.String()
	}
	assert.Equal(t, run(), run())
}

func TestSalon_Journal_RecordsEventKinds(t *testing.T) {
	journal := trace.NewJournal()
	clock := &Clock{hour: 9, minute: 7, pacer: InstantPacer{}}
	var out bytes.Buffer
	s := NewSalonFromRoster([]string{"Ann"}, WithClock(clock), WithOutput(&out), WithJournal(journal))

	s.CustomerEntered(&Customer{Name: "Customer-1"})

	want := []trace.Record{
		{Clock: "09:07", Kind: trace.KindEntered, Customer: "Customer-1"},
		{Clock: "09:07", Kind: trace.KindStarted, Customer: "Customer-1", Stylist: "Ann"},
	}
	assert.Equal(t, want, journal.Records())
}
