package sim

import "fmt"

// Mood is a customer's sentiment towards the salon when they leave.
type Mood string

const (
	MoodSatisfied Mood = "Satisfied"
	MoodFurious   Mood = "Furious"
)

// Customer is a salon visitor looking for a haircut.
// Satisfied is only set by the salon once the haircut completes.
type Customer struct {
	ID        int    // Sequential identifier, starting at 1
	Name      string // "Customer-<ID>"
	Satisfied bool
}

// Mood derives the customer's sentiment from Satisfied.
func (c *Customer) Mood() Mood {
	if c.Satisfied {
		return MoodSatisfied
	}
	return MoodFurious
}

func (c *Customer) String() string {
	return c.Name
}

// CustomerSequence hands out customer identities in creation order.
// Each salon owns its own sequence, so two simulations never share numbering.
type CustomerSequence struct {
	last int
}

// NewCustomerSequence returns a sequence whose first customer is Customer-1.
func NewCustomerSequence() *CustomerSequence {
	return &CustomerSequence{}
}

// Next creates the next customer in the sequence.
func (s *CustomerSequence) Next() *Customer {
	s.last++
	return &Customer{ID: s.last, Name: fmt.Sprintf("Customer-%d", s.last)}
}

// Issued returns how many customers the sequence has created.
func (s *CustomerSequence) Issued() int {
	return s.last
}
