package trace

// Journal collects event records during a salon day, in the order they happen.
type Journal struct {
	records []Record
}

// NewJournal creates a Journal ready for recording.
func NewJournal() *Journal {
	return &Journal{records: make([]Record, 0)}
}

// Record appends an event record.
func (j *Journal) Record(r Record) {
	j.records = append(j.records, r)
}

// Records returns the recorded events. Callers MUST NOT modify the slice.
func (j *Journal) Records() []Record {
	return j.records
}

// Len returns the number of recorded events.
func (j *Journal) Len() int {
	return len(j.records)
}
