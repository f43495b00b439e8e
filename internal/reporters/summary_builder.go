package reporters

import (
	"sort"

	"access-log-stats/internal/models"
)

type SummaryBuilder interface {
	// Build derives the report from a finished state. It fails when state holds no records.
	Build(state *models.AggregateState) (*models.SummaryReport, error)
}

type summaryBuilder struct{}

func NewSummaryBuilder() SummaryBuilder {
	return &summaryBuilder{}
}

func (b *summaryBuilder) Build(state *models.AggregateState) (*models.SummaryReport, error) {
	if state == nil || state.IsEmpty() {
		return nil, errNoRecords()
	}
	total := state.TotalRequests

	report := &models.SummaryReport{
		TotalRequests: total,
		TotalBytes:    state.TotalBytes,
		TopResource:   topOf(state.RequestsByResource, total),
		TopClient:     topOf(state.RequestsByClient, total),
	}

	classes := state.RequestsByStatusClass.Keys()
	sort.Strings(classes)
	report.StatusClasses = make([]models.StatusShare, 0, len(classes))
	for _, class := range classes {
		count := state.RequestsByStatusClass.Count(class)
		report.StatusClasses = append(report.StatusClasses, models.StatusShare{
			Class:      class,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}

	return report, nil
}

// topOf picks the most frequent key, the first seen in log order on ties.
func topOf(counter *models.FrequencyCounter, total int64) models.RankedValue {
	key, count, _ := counter.Top()
	return models.RankedValue{
		Value:      key,
		Count:      count,
		Percentage: percentage(count, total),
	}
}

func percentage(count, total int64) float64 {
	return float64(count) / float64(total) * 100
}
