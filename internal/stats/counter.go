package stats

import (
	"strings"

	"neurojobs-engine/internal/domain"
)

// counter tallies occurrences of an open string domain while remembering
// the order values were first seen, so ties on the maximum break toward the
// earlier value instead of map iteration order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() counter {
	return counter{counts: map[string]int{}}
}

func (c *counter) add(v string) {
	if _, seen := c.counts[v]; !seen {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

func (c counter) topValue() (string, bool) {
	best := ""
	bestN := 0
	found := false
	for _, v := range c.order {
		if n := c.counts[v]; n > bestN {
			best, bestN = v, n
			found = true
		}
	}
	return best, found
}

func (c counter) top() string {
	v, _ := c.topValue()
	return v
}

func displayType(raw string) string {
	return domain.Category(raw).DisplayName()
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
