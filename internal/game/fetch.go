package game

import (
	"fmt"

	"github.com/vovakirdan/season-quest/internal/stats"
)

// fetchQueue tracks which weeks the platform should load next.
type fetchQueue struct {
	requests []int

	prefetch bool
	started  bool
	pending  []int
	current  int // week the prefetcher is waiting on, 0 if none
}

// requestWeek asks for a week unless it is cached or already in flight.
func (s *State) requestWeek(week int) stats.RequestState {
	st := s.Cache.Request(week)
	if st == stats.Started {
		s.fetch.requests = append(s.fetch.requests, week)
	}
	return st
}

// Requests drains the weeks the platform must fetch. Each returned week
// must eventually be answered with Deliver.
func (s *State) Requests() []int {
	out := s.fetch.requests
	s.fetch.requests = nil
	return out
}

// Deliver hands a finished fetch back to the game.
func (s *State) Deliver(week int, res *stats.WeekResult, err error) {
	stored := s.Cache.Complete(week, res, err)

	if s.fetch.current == week {
		s.fetch.current = 0
	}

	if err != nil || stored == nil {
		if s.Trans.Purpose == PurposeEnterBattle && s.Trans.Week == week &&
			(s.Trans.Phase == TransCovering || s.Trans.Phase == TransHidden) {
			s.abortTransition(fmt.Sprintf("Couldn't load week %d", week))
		}
		if s.Mode == ModeOverlay && s.Overlay.Week == week {
			s.Overlay.Err = errText(err)
		}
	} else if !s.fetch.started && s.fetch.prefetch {
		s.startPrefetch()
	}

	s.pumpPrefetch()
}

func errText(err error) string {
	if err == nil {
		return "no data"
	}
	return err.Error()
}

// startPrefetch queues every week of the season once.
func (s *State) startPrefetch() {
	s.fetch.started = true
	for w := s.StartWeek; w <= s.EndWeek; w++ {
		s.fetch.pending = append(s.fetch.pending, w)
	}
}

// pumpPrefetch keeps exactly one background fetch in flight, skipping
// weeks that are cached or already being loaded. Failures are not retried.
func (s *State) pumpPrefetch() {
	if !s.fetch.started || s.fetch.current != 0 {
		return
	}
	for len(s.fetch.pending) > 0 {
		w := s.fetch.pending[0]
		s.fetch.pending = s.fetch.pending[1:]
		if s.requestWeek(w) == stats.Started {
			s.fetch.current = w
			return
		}
	}
}

// Prefetching reports whether background loading is still running.
func (s *State) Prefetching() bool {
	return s.fetch.current != 0 || len(s.fetch.pending) > 0
}
