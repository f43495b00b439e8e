package aggregators

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"access-log-stats/internal/models"
	"access-log-stats/internal/parsers"
	"access-log-stats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioLog = `10.0.0.1 - - [10/Oct/2023:13:55:36 +0000] "GET /index.html HTTP/1.1" 200 500 "-" "Mozilla/5.0"
10.0.0.1 - - [10/Oct/2023:13:55:37 +0000] "GET /index.html HTTP/1.1" 200 1500 "-" "Mozilla/5.0"
10.0.0.2 - - [10/Oct/2023:13:55:38 +0000] "GET /favicon.ico HTTP/1.1" 404 - "-" "Mozilla/5.0"
`

func aggregateString(t *testing.T, input string) (*models.AggregateState, error) {
	t.Helper()
	seq := parsers.NewLineParser(1024*1024).Records(context.Background(), strings.NewReader(input))
	return NewAggregator().Aggregate(context.Background(), seq)
}

func assertCountersMatchTotal(t *testing.T, state *models.AggregateState) {
	t.Helper()
	assert.Equal(t, state.TotalRequests, state.RequestsByResource.Total())
	assert.Equal(t, state.TotalRequests, state.RequestsByClient.Total())
	assert.Equal(t, state.TotalRequests, state.RequestsByStatusClass.Total())

	for _, counter := range []*models.FrequencyCounter{state.RequestsByResource, state.RequestsByClient, state.RequestsByStatusClass} {
		var sum int64
		for _, n := range counter.Counts() {
			sum += n
		}
		assert.Equal(t, state.TotalRequests, sum)
	}
}

func TestAggregator_Aggregate_Scenario(t *testing.T) {
	t.Parallel()

	state, err := aggregateString(t, scenarioLog)
	require.NoError(t, err)

	assert.Equal(t, int64(3), state.TotalRequests)
	assert.Equal(t, int64(2000), state.TotalBytes)
	assert.Equal(t, map[string]int64{"/index.html": 2, "/favicon.ico": 1}, state.RequestsByResource.Counts())
	assert.Equal(t, map[string]int64{"10.0.0.1": 2, "10.0.0.2": 1}, state.RequestsByClient.Counts())
	assert.Equal(t, map[string]int64{"2": 2, "4": 1}, state.RequestsByStatusClass.Counts())
	assertCountersMatchTotal(t, state)
}

func TestAggregator_Aggregate_MalformedStatusIsNotCounted(t *testing.T) {
	t.Parallel()

	input := scenarioLog +
		`10.0.0.9 - - [10/Oct/2023:13:55:39 +0000] "GET /broken HTTP/1.1" 50 100 "-" "Mozilla/5.0"` + "\n"

	state, err := aggregateString(t, input)
	require.NoError(t, err)

	assert.Equal(t, int64(3), state.TotalRequests)
	assert.Equal(t, int64(2000), state.TotalBytes)
	assert.Equal(t, int64(0), state.RequestsByResource.Count("/broken"))
	assert.Equal(t, int64(0), state.RequestsByClient.Count("10.0.0.9"))
	assert.Equal(t, int64(0), state.RequestsByStatusClass.Count("5"))
	assertCountersMatchTotal(t, state)
}

func TestAggregator_Aggregate_EmptyInput(t *testing.T) {
	t.Parallel()

	state, err := aggregateString(t, "")
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())
	assert.Equal(t, 0, state.RequestsByResource.Len())
}

func TestAggregator_Add_AbsentBytesStillCounted(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator()
	state := models.NewAggregateState()

	err := aggregator.Add(state, &models.LogRecord{
		ClientIP: "10.0.0.2",
		Resource: "/favicon.ico",
		Status:   "404",
		Bytes:    models.BytesAbsent,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), state.TotalRequests)
	assert.Equal(t, int64(0), state.TotalBytes)
	assert.Equal(t, int64(1), state.RequestsByResource.Count("/favicon.ico"))
	assert.Equal(t, int64(1), state.RequestsByClient.Count("10.0.0.2"))
	assert.Equal(t, int64(1), state.RequestsByStatusClass.Count("4"))
}

func TestAggregator_Add_InvalidBytesLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    string
		total    int64
		wantCode string
	}{
		{
			name:     "digits overflow int64",
			bytes:    "99999999999999999999",
			wantCode: codeInvalidBytes,
		},
		{
			name:     "total overflows",
			bytes:    "10",
			total:    math.MaxInt64 - 5,
			wantCode: codeTotalBytesOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := models.NewAggregateState()
			state.TotalBytes = tt.total

			err := NewAggregator().Add(state, &models.LogRecord{
				ClientIP: "10.0.0.1",
				Resource: "/",
				Status:   "200",
				Bytes:    tt.bytes,
			})

			svcErr, ok := svcerrors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, svcerrors.ExitData, svcErr.ExitCode)

			assert.Equal(t, int64(0), state.TotalRequests)
			assert.Equal(t, tt.total, state.TotalBytes)
			assert.Equal(t, 0, state.RequestsByResource.Len())
		})
	}
}

func TestAggregator_Aggregate_InvalidBytesReportsLine(t *testing.T) {
	t.Parallel()

	input := scenarioLog +
		`10.0.0.1 - - [10/Oct/2023:13:55:39 +0000] "GET / HTTP/1.1" 200 99999999999999999999 "-" "Mozilla/5.0"` + "\n"

	state, err := aggregateString(t, input)
	assert.Nil(t, state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
	assert.Equal(t, svcerrors.ExitData, svcerrors.ExitCodeOf(err))
}

func TestAggregator_Aggregate_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seq := parsers.NewLineParser(1024).Records(ctx, strings.NewReader(scenarioLog))
	state, err := NewAggregator().Aggregate(ctx, seq)

	assert.Nil(t, state)
	assert.ErrorIs(t, err, context.Canceled)

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.True(t, svcErr.IsInternalError())
	assert.Equal(t, svcerrors.ExitInternal, svcErr.ExitCode)
}

type failingSequence struct {
	err error
}

func (s *failingSequence) Scan() bool                { return false }
func (s *failingSequence) Record() *models.LogRecord { return nil }
func (s *failingSequence) Err() error                { return s.err }
func (s *failingSequence) LinesRead() int64          { return 0 }
func (s *failingSequence) Skipped() int64            { return 0 }
func (s *failingSequence) Close() error              { return nil }

func TestAggregator_Aggregate_ReadErrorPropagates(t *testing.T) {
	t.Parallel()

	readErr := svcerrors.NewIOError("PARSE_9002", "failed to read access log at line 1", errors.New("disk gone"))

	state, err := NewAggregator().Aggregate(context.Background(), &failingSequence{err: readErr})
	assert.Nil(t, state)
	assert.ErrorIs(t, err, readErr)
}
