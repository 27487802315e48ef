package stats

// RequestState is the outcome of asking the cache for a week.
type RequestState uint8

const (
	// Cached means the result is already available.
	Cached RequestState = iota
	// Started means the caller must issue the fetch.
	Started
	// Pending means a fetch for the week is already in flight.
	Pending
)

func (s RequestState) String() string {
	switch s {
	case Cached:
		return "cached"
	case Started:
		return "started"
	default:
		return "pending"
	}
}

// Cache holds weekly results for the session. It is not safe for concurrent
// use; all calls happen on the update goroutine, and fetch goroutines only
// hand their results back as messages.
type Cache struct {
	results  map[int]*WeekResult
	inflight map[int]bool
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		results:  make(map[int]*WeekResult),
		inflight: make(map[int]bool),
	}
}

// Request reports whether week is cached, already being fetched, or needs a
// fetch. Only a Started answer should lead to a provider call.
func (c *Cache) Request(week int) RequestState {
	if _, ok := c.results[week]; ok {
		return Cached
	}
	if c.inflight[week] {
		return Pending
	}
	c.inflight[week] = true
	return Started
}

// Complete records a finished fetch. Successful results are stored once and
// never replaced; failures are dropped so a later request retries.
func (c *Cache) Complete(week int, res *WeekResult, err error) *WeekResult {
	delete(c.inflight, week)
	if err != nil || res == nil {
		return nil
	}
	if existing, ok := c.results[week]; ok {
		return existing
	}
	c.results[week] = res
	return res
}

// Get returns the cached result for week.
func (c *Cache) Get(week int) (*WeekResult, bool) {
	r, ok := c.results[week]
	return r, ok
}

// InFlight reports whether week is being fetched.
func (c *Cache) InFlight(week int) bool {
	return c.inflight[week]
}

// Results exposes the cached results for read-only use.
func (c *Cache) Results() map[int]*WeekResult {
	return c.results
}

// Len returns the number of cached weeks.
func (c *Cache) Len() int {
	return len(c.results)
}

// Latest returns the highest cached week that has a matchup.
func (c *Cache) Latest() (*WeekResult, bool) {
	weeks := SortedWeeks(c.results)
	for i := len(weeks) - 1; i >= 0; i-- {
		if r := c.results[weeks[i]]; r.HasMatchup() {
			return r, true
		}
	}
	return nil, false
}
