package models

// SummaryReport is derived once from a finished AggregateState.
//
// Example JSON:
//
//	{
//	  "totalRequests": 3,
//	  "totalBytes": 2000,
//	  "topResource": {"value": "/index.html", "count": 2, "percentage": 66.66666666666667},
//	  "topClient": {"value": "10.0.0.1", "count": 2, "percentage": 66.66666666666667},
//	  "statusClasses": [
//	    {"class": "2", "count": 2, "percentage": 66.66666666666667},
//	    {"class": "4", "count": 1, "percentage": 33.333333333333336}
//	  ]
//	}
type SummaryReport struct {
	TotalRequests int64         `json:"totalRequests"`
	TotalBytes    int64         `json:"totalBytes"`
	TopResource   RankedValue   `json:"topResource"`
	TopClient     RankedValue   `json:"topClient"`
	StatusClasses []StatusShare `json:"statusClasses"` // ascending by class
}

// RankedValue is the winner of a frequency counter.
type RankedValue struct {
	Value      string  `json:"value"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatusShare is the share of requests answered with one status class.
type StatusShare struct {
	Class      string  `json:"class"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatusPercentages returns class to percentage for every class present.
func (r *SummaryReport) StatusPercentages() map[string]float64 {
	pct := make(map[string]float64, len(r.StatusClasses))
	for _, share := range r.StatusClasses {
		pct[share.Class] = share.Percentage
	}
	return pct
}
