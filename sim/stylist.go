package sim

import "fmt"

// HaircutMinutes is how long every haircut takes, in ticks.
const HaircutMinutes = 30

// Stylist works one customer at a time.
// Invariant: minutes > 0 implies a customer is assigned; no customer implies minutes == 0.
type Stylist struct {
	Name     string
	customer *Customer
	minutes  int // Minutes remaining on the current haircut
}

// NewStylist creates an available stylist.
func NewStylist(name string) *Stylist {
	return &Stylist{Name: name}
}

// Assign binds c to the stylist and starts a HaircutMinutes countdown.
// Callers must only assign to an available stylist.
func (s *Stylist) Assign(c *Customer) {
	if c == nil {
		panic(fmt.Sprintf("Stylist.Assign(%s): customer must not be nil", s.Name))
	}
	if s.customer != nil {
		panic(fmt.Sprintf("Stylist.Assign(%s): already cutting %s's hair, cannot take %s", s.Name, s.customer, c))
	}
	s.minutes = HaircutMinutes
	s.customer = c
}

// CutHair spends one minute on the current haircut.
// It never touches the customer's satisfaction; the salon sets that on completion.
func (s *Stylist) CutHair() {
	if s.customer == nil {
		panic(fmt.Sprintf("Stylist.CutHair(%s): no customer assigned", s.Name))
	}
	if s.minutes == 0 {
		panic(fmt.Sprintf("Stylist.CutHair(%s): haircut of %s already done", s.Name, s.customer))
	}
	s.minutes--
}

// IsDone reports whether the current haircut has no minutes left.
func (s *Stylist) IsDone() bool {
	return s.minutes == 0
}

// Available reports whether the stylist can take a customer.
func (s *Stylist) Available() bool {
	return s.customer == nil
}

// Release unbinds and returns the customer whose haircut is done.
func (s *Stylist) Release() *Customer {
	if s.customer == nil || s.minutes != 0 {
		panic(fmt.Sprintf("Stylist.Release(%s): no finished haircut to release", s.Name))
	}
	c := s.customer
	s.customer = nil
	return c
}

// Customer returns the customer currently in the chair, or nil.
func (s *Stylist) Customer() *Customer {
	return s.customer
}

// Minutes returns the minutes remaining on the current haircut.
func (s *Stylist) Minutes() int {
	return s.minutes
}

func (s *Stylist) String() string {
	return s.Name
}
