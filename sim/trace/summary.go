package trace

const moodSatisfied = "Satisfied"

// DaySummary aggregates statistics from a Journal.
type DaySummary struct {
	Arrivals          int
	Served            int            // customers who left Satisfied
	Furious           int            // customers who left without a haircut
	HaircutsByStylist map[string]int // stylist name → completed haircuts
	LastEvent         string         // HH:MM of the final recorded event
}

// Summarize computes aggregate statistics from a Journal.
// Safe for nil or empty journals (returns zero-value fields).
func Summarize(j *Journal) *DaySummary {
	summary := &DaySummary{
		HaircutsByStylist: make(map[string]int),
	}
	if j == nil {
		return summary
	}

	for _, r := range j.records {
		switch r.Kind {
		case KindEntered:
			summary.Arrivals++
		case KindEnded:
			summary.HaircutsByStylist[r.Stylist]++
		case KindLeft:
			if r.Mood == moodSatisfied {
				summary.Served++
			} else {
				summary.Furious++
			}
		}
	}

	if n := len(j.records); n > 0 {
		summary.LastEvent = j.records[n-1].Clock
	}

	return summary
}
