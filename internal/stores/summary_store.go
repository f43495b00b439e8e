package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"access-log-stats/internal/models"
	"access-log-stats/internal/shared/filestorages"
)

// SummaryStore keeps a machine-readable JSON snapshot of the last report.
//
//go:generate mockgen -source=summary_store.go -destination=./mocks/summary_store_mock.go -package=mocks
type SummaryStore interface {
	Put(ctx context.Context, report *models.SummaryReport) error
	Get(ctx context.Context) (*models.SummaryReport, error)
}

type summaryStore struct {
	fileStorage filestorages.FileStorage
	key         string
}

func NewSummaryStore(fileStorage filestorages.FileStorage, key string) SummaryStore {
	return &summaryStore{fileStorage: fileStorage, key: key}
}

func (s *summaryStore) Put(ctx context.Context, report *models.SummaryReport) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.key, bytes.NewReader(append(jsonData, '\n')))
	if err != nil {
		return fmt.Errorf("failed to put summary %q: %w", s.key, err)
	}
	return nil
}

func (s *summaryStore) Get(ctx context.Context) (*models.SummaryReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary %q: %w", s.key, err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}
	var report models.SummaryReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &report, nil
}
