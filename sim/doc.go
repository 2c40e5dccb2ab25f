// Package sim provides the discrete-time simulation engine for a hair salon's workday.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - clock.go: the tick loop that advances simulated time one minute at a time
//   - salon.go: the per-tick steps (closing check, arrivals, haircut progress)
//   - stylist.go: the per-haircut countdown and availability state
//
// # Tick Order
//
// Every tick runs the salon's steps in a fixed order, sequentially and on a
// single goroutine:
//
//	CheckClosingTime → CheckForCustomers → UpdateStylistProgress
//
// The clock checks its active flag only between ticks, so a tick that stops
// the clock still runs its remaining steps.
//
// # Business Constants
//
// The salon opens at 09:00, admits a customer every ArrivalIntervalMinutes,
// spends HaircutMinutes on each haircut and stops admitting at ClosingHour.
// These are fixed; only pacing (how long a tick takes in wall-clock time) is
// configurable, see Pacer.
//
// Decision records for the day live in sim/trace.
package sim
