package stats

import (
	"context"
	"sync"
)

// countingProvider records how many times each week is fetched.
type countingProvider struct {
	mu    sync.Mutex
	calls map[int]int
	res   map[int]*WeekResult
	err   error
}

func newCountingProvider() *countingProvider {
	return &countingProvider{calls: map[int]int{}, res: map[int]*WeekResult{}}
}

func (p *countingProvider) FetchWeek(_ context.Context, key Key) (*WeekResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls[key.Week]++
	if p.err != nil {
		return nil, p.err
	}
	if r, ok := p.res[key.Week]; ok {
		return r, nil
	}
	return &WeekResult{Week: key.Week}, nil
}

func (p *countingProvider) Teams(context.Context, string, int) ([]Team, error) {
	return []Team{{ID: 1, Name: "Gridiron Gurus"}, {ID: 2, Name: "Bench Mob"}}, nil
}

func sampleGames() []Game {
	return []Game{
		{
			Home: Side{TeamID: 1, TeamName: "Gridiron Gurus", Score: 110, Won: false},
			Away: Side{TeamID: 2, TeamName: "Bench Mob", Score: 95, Won: true},
		},
		{
			Home: Side{TeamID: 3, TeamName: "Waiver Wolves", Score: 80},
			Away: Side{TeamID: 4, TeamName: "Sunday Scaries", Score: 101.5},
		},
	}
}
