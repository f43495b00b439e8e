package models

// FrequencyCounter counts occurrences per key and remembers the order in which
// keys were first seen.
type FrequencyCounter struct {
	counts map[string]int64
	order  []string
	total  int64
}

func NewFrequencyCounter() *FrequencyCounter {
	return &FrequencyCounter{counts: make(map[string]int64)}
}

// Inc adds one occurrence of key.
func (c *FrequencyCounter) Inc(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
	c.total++
}

// Count returns the occurrences of key, 0 if it was never seen.
func (c *FrequencyCounter) Count(key string) int64 {
	return c.counts[key]
}

// Total returns the sum of all counts.
func (c *FrequencyCounter) Total() int64 {
	return c.total
}

// Len returns the number of distinct keys.
func (c *FrequencyCounter) Len() int {
	return len(c.order)
}

// Keys returns the distinct keys in first-seen order.
func (c *FrequencyCounter) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Counts returns a copy of the key to count mapping.
func (c *FrequencyCounter) Counts() map[string]int64 {
	counts := make(map[string]int64, len(c.counts))
	for k, v := range c.counts {
		counts[k] = v
	}
	return counts
}

// Top returns the key with the highest count. Among tied keys the one seen first wins.
// ok is false when the counter is empty.
func (c *FrequencyCounter) Top() (key string, count int64, ok bool) {
	for _, k := range c.order {
		if n := c.counts[k]; n > count {
			key, count, ok = k, n, true
		}
	}
	return key, count, ok
}
