package storage

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/season-quest/internal/stats"
)

// Archive is a stats.Provider that writes every successful upstream fetch
// into the store and answers from the store when upstream fails.
type Archive struct {
	Upstream stats.Provider
	Store    *Store
	Logger   *log.Logger
}

var _ stats.Provider = (*Archive)(nil)

// NewArchive wraps upstream. A nil logger discards messages.
func NewArchive(upstream stats.Provider, store *Store, logger *log.Logger) *Archive {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Archive{Upstream: upstream, Store: store, Logger: logger}
}

// FetchWeek implements stats.Provider.
func (a *Archive) FetchWeek(ctx context.Context, key stats.Key) (*stats.WeekResult, error) {
	res, err := a.Upstream.FetchWeek(ctx, key)
	if err == nil {
		if len(res.AllMatchups) > 0 {
			if serr := a.Store.SaveWeek(ctx, key.LeagueID, key.Year, key.Week, res.AllMatchups, res.Standings); serr != nil {
				a.Logger.Warn("archive write failed", "week", key.Week, "error", serr)
			}
		}
		return res, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	cached, cerr := a.Store.FetchWeek(ctx, key)
	if cerr != nil {
		if !errors.Is(cerr, stats.ErrNotFound) {
			a.Logger.Warn("archive read failed", "week", key.Week, "error", cerr)
		}
		return nil, err
	}
	a.Logger.Info("serving archived week", "week", key.Week, "upstream_error", err)
	return cached, nil
}

// Teams implements stats.Provider, saving the upstream list on success.
func (a *Archive) Teams(ctx context.Context, leagueID string, year int) ([]stats.Team, error) {
	teams, err := a.Upstream.Teams(ctx, leagueID, year)
	if err == nil {
		if serr := a.Store.SaveTeams(ctx, leagueID, year, teams); serr != nil {
			a.Logger.Warn("archive teams write failed", "error", serr)
		}
		return teams, nil
	}
	cached, cerr := a.Store.Teams(ctx, leagueID, year)
	if cerr != nil || len(cached) == 0 {
		return nil, err
	}
	return cached, nil
}
