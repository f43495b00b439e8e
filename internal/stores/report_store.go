package stores

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"access-log-stats/internal/models"
	"access-log-stats/internal/shared/filestorages"
)

// ReportStore writes the human-readable report, replacing any previous content.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Put(ctx context.Context, report *models.SummaryReport) error
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	key         string
}

func NewReportStore(fileStorage filestorages.FileStorage, key string) ReportStore {
	return &reportStore{fileStorage: fileStorage, key: key}
}

func (s *reportStore) Put(ctx context.Context, report *models.SummaryReport) error {
	_, err := s.fileStorage.Put(ctx, s.key, bytes.NewReader(RenderText(report)))
	if err != nil {
		return fmt.Errorf("failed to put report %q: %w", s.key, err)
	}
	return nil
}

// RenderText renders report in the fixed text layout. Status classes are listed in
// ascending order and every percentage carries two decimals.
func RenderText(report *models.SummaryReport) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Total number of requests: %d\n", report.TotalRequests)
	fmt.Fprintf(&buf, "Total data transmitted: %d bytes\n", report.TotalBytes)
	fmt.Fprintf(&buf, "Most requested resource: %s (%d requests)\n", report.TopResource.Value, report.TopResource.Count)
	fmt.Fprintf(&buf, "Percentage of requests for this resource: %.2f%%\n", report.TopResource.Percentage)
	fmt.Fprintf(&buf, "Remote host with the most requests: %s (%d requests)\n", report.TopClient.Value, report.TopClient.Count)
	fmt.Fprintf(&buf, "Percentage of requests from this host: %.2f%%\n", report.TopClient.Percentage)

	buf.WriteString("\nPercentage of each class of HTTP status code:\n")

	shares := make([]models.StatusShare, len(report.StatusClasses))
	copy(shares, report.StatusClasses)
	sort.Slice(shares, func(i, j int) bool { return shares[i].Class < shares[j].Class })
	for _, share := range shares {
		fmt.Fprintf(&buf, "%sxx: %.2f%%\n", share.Class, share.Percentage)
	}

	return buf.Bytes()
}
