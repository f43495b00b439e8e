package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyCounter_Top(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		keys      []string
		wantKey   string
		wantCount int64
		wantOk    bool
	}{
		{
			name:   "empty counter",
			keys:   nil,
			wantOk: false,
		},
		{
			name:      "single key",
			keys:      []string{"/"},
			wantKey:   "/",
			wantCount: 1,
			wantOk:    true,
		},
		{
			name:      "clear winner",
			keys:      []string{"/a", "/b", "/b", "/c"},
			wantKey:   "/b",
			wantCount: 2,
			wantOk:    true,
		},
		{
			name:      "tie goes to first seen",
			keys:      []string{"/z", "/a", "/a", "/z"},
			wantKey:   "/z",
			wantCount: 2,
			wantOk:    true,
		},
		{
			name:      "later key overtakes",
			keys:      []string{"/z", "/a", "/a"},
			wantKey:   "/a",
			wantCount: 2,
			wantOk:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			counter := NewFrequencyCounter()
			for _, k := range tt.keys {
				counter.Inc(k)
			}

			key, count, ok := counter.Top()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, int64(len(tt.keys)), counter.Total())
		})
	}
}

func TestFrequencyCounter_KeysAndCountsAreCopies(t *testing.T) {
	t.Parallel()

	counter := NewFrequencyCounter()
	counter.Inc("b")
	counter.Inc("a")
	counter.Inc("b")

	keys := counter.Keys()
	assert.Equal(t, []string{"b", "a"}, keys)
	keys[0] = "mutated"
	assert.Equal(t, []string{"b", "a"}, counter.Keys())

	counts := counter.Counts()
	assert.Equal(t, map[string]int64{"a": 1, "b": 2}, counts)
	counts["a"] = 100
	assert.Equal(t, int64(1), counter.Count("a"))
	assert.Equal(t, int64(0), counter.Count("missing"))
	assert.Equal(t, 2, counter.Len())
}

func TestLogRecord_StatusClassAndBytes(t *testing.T) {
	t.Parallel()

	record := &LogRecord{Status: "404", Bytes: BytesAbsent}
	assert.Equal(t, "4", record.StatusClass())
	assert.False(t, record.HasBytes())

	record = &LogRecord{Status: "200", Bytes: "512"}
	assert.Equal(t, "2", record.StatusClass())
	assert.True(t, record.HasBytes())

	assert.Equal(t, "", (&LogRecord{}).StatusClass())
}
