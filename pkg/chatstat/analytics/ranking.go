package analytics

import "sort"

// Point is one label/count pair of an ordered series.
type Point struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Points is an ordered label/count series.
type Points []Point

// Map returns the series as a plain label→count mapping.
func (p Points) Map() map[string]int {
	out := make(map[string]int, len(p))
	for _, pt := range p {
		out[pt.Label] = pt.Count
	}
	return out
}

// counter counts keys and remembers the order in which they were first seen,
// so rankings can break ties deterministically.
type counter struct {
	index  map[string]int
	keys   []string
	counts []int
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(key string) {
	if i, ok := c.index[key]; ok {
		c.counts[i]++
		return
	}
	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	c.counts = append(c.counts, 1)
}

func (c *counter) total() int {
	sum := 0
	for _, n := range c.counts {
		sum += n
	}
	return sum
}

// ranked returns keys by descending count, ties in first-seen order.
// limit <= 0 returns every key.
func (c *counter) ranked(limit int) Points {
	out := make(Points, len(c.keys))
	for i, k := range c.keys {
		out[i] = Point{Label: k, Count: c.counts[i]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Rank counts labels and returns them by descending count, ties in
// first-seen order. limit <= 0 returns every label.
func Rank(labels []string, limit int) Points {
	c := newCounter()
	for _, l := range labels {
		c.add(l)
	}
	return c.ranked(limit)
}
