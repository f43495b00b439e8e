package models

// AggregateState holds the running totals of one pass over an access log.
// It is owned by a single goroutine from creation through reporting.
type AggregateState struct {
	TotalRequests int64
	TotalBytes    int64

	RequestsByResource    *FrequencyCounter
	RequestsByClient      *FrequencyCounter
	RequestsByStatusClass *FrequencyCounter
}

func NewAggregateState() *AggregateState {
	return &AggregateState{
		RequestsByResource:    NewFrequencyCounter(),
		RequestsByClient:      NewFrequencyCounter(),
		RequestsByStatusClass: NewFrequencyCounter(),
	}
}

// IsEmpty reports whether no record has been aggregated.
func (s *AggregateState) IsEmpty() bool {
	return s.TotalRequests == 0
}
