// Implements the WaitQueue, which holds all customers waiting for a stylist.
// Customers are enqueued on arrival

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of customers waiting for a haircut.
// The earliest arrival is always served first.
type WaitQueue struct {
	queue []*Customer // FIFO queue of customers
}

// Enqueue adds a customer to the back of the wait queue.
func (wq *WaitQueue) Enqueue(c *Customer) {
	if c == nil {
		panic("Enqueue: customer must not be nil")
	}
	wq.queue = append(wq.queue, c)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of customers in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the customer at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (wq *WaitQueue) Items() []*Customer {
	return wq.queue
}

// Dequeue removes and returns the customer at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	c := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return c
}

// Drain removes every customer, returning them in arrival order.
func (wq *WaitQueue) Drain() []*Customer {
	drained := wq.queue
	wq.queue = nil
	return drained
}
