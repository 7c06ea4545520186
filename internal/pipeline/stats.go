package pipeline

// Status classifies the outcome of one conversion.
type Status int

const (
	StatusFixed Status = iota
	StatusDeclined
	StatusFailed
)

// Outcome records how one input fared, for the batch summary.
type Outcome struct {
	Input  string
	Status Status
	Err    error
}

// RunStats tracks aggregate counters and per-file outcomes across a run.
type RunStats struct {
	Total    int
	Current  int
	Fixed    int
	Skipped  int
	Failed   int
	Outcomes []Outcome
}

func (s *RunStats) record(input string, status Status, err error) {
	s.Outcomes = append(s.Outcomes, Outcome{Input: input, Status: status, Err: err})
	switch status {
	case StatusFixed:
		s.Fixed++
	case StatusDeclined:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}
