package stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const deepDiveBody = `{
  "week": 5,
  "my_matchup": {
    "my_team": {"team_id": 1, "team_name": "Gridiron Gurus", "score": 110, "optimal_score": 121.4,
      "starters": [{"name": "J. Allen", "points": 31.2}, {"name": "C. McCaffrey", "points": 18}],
      "errors": [{"bench_player": "D. Samuel", "should_replace": "A. Cooper", "points_lost": 6.1}],
      "won": false},
    "opponent": {"team_id": 2, "team_name": "Bench Mob", "score": 95, "optimal_score": 99,
      "starters": [{"name": "P. Mahomes", "points": 22.5}], "errors": [], "won": true}
  },
  "all_matchups": [{"home": {"team_id": 1, "team_name": "Gridiron Gurus", "score": 110},
                    "away": {"team_id": 2, "team_name": "Bench Mob", "score": 95}}],
  "standings": [{"rank": 1, "team_id": 1, "team_name": "Gridiron Gurus", "record": "4-1", "points_for": 560.2}],
  "error": null
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/league/777/week/5/deep-dive", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("team_id") != "1" || r.URL.Query().Get("year") != "2024" {
			http.Error(w, `{"error": "bad query"}`, http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(deepDiveBody))
	})
	mux.HandleFunc("/league/777/week/6/deep-dive", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"week": 6, "my_matchup": {"my_team": {"team_id": 1, "score": 10}, "opponent": null}}`))
	})
	mux.HandleFunc("/league/777/week/7/deep-dive", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "upstream unavailable"}`))
	})
	mux.HandleFunc("/league/777/teams", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"teams": [{"team_id": 1, "team_name": "Gridiron Gurus"}, {"team_id": 2, "team_name": "Bench Mob"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPProviderFetchWeek(t *testing.T) {
	srv := newTestServer(t)
	p := NewHTTPProvider(srv.URL, 0)

	r, err := p.FetchWeek(context.Background(), Key{LeagueID: "777", Year: 2024, Week: 5, TeamID: 1})
	if err != nil {
		t.Fatalf("FetchWeek: %v", err)
	}
	if !r.HasMatchup() {
		t.Fatal("expected a matchup")
	}
	m := r.Matchup
	if m.Mine.Score != 110 || m.Opponent.Score != 95 {
		t.Errorf("scores = %v vs %v", m.Mine.Score, m.Opponent.Score)
	}
	// The payload's won flag is wrong on purpose; scores decide.
	if !m.Mine.Won || m.Opponent.Won {
		t.Error("won flags should be recomputed from scores")
	}
	if len(m.Mine.Starters) != 2 || m.Mine.Starters[0].Name != "J. Allen" {
		t.Errorf("starters = %+v", m.Mine.Starters)
	}
	if len(m.Mine.Errors) != 1 || m.Mine.Errors[0].PointsLost != 6.1 {
		t.Errorf("errors = %+v", m.Mine.Errors)
	}
	if len(r.AllMatchups) != 1 || len(r.Standings) != 1 || r.Standings[0].Record != "4-1" {
		t.Errorf("overview = %+v / %+v", r.AllMatchups, r.Standings)
	}
}

func TestHTTPProviderMissingSide(t *testing.T) {
	srv := newTestServer(t)
	p := NewHTTPProvider(srv.URL, 0)

	r, err := p.FetchWeek(context.Background(), Key{LeagueID: "777", Year: 2024, Week: 6, TeamID: 1})
	if err != nil {
		t.Fatalf("FetchWeek: %v", err)
	}
	if r.HasMatchup() {
		t.Error("a missing opponent means no matchup")
	}
}

func TestHTTPProviderErrors(t *testing.T) {
	srv := newTestServer(t)
	p := NewHTTPProvider(srv.URL, 0)

	_, err := p.FetchWeek(context.Background(), Key{LeagueID: "777", Year: 2024, Week: 7, TeamID: 1})
	if err == nil || !strings.Contains(err.Error(), "upstream unavailable") {
		t.Errorf("expected server message, got %v", err)
	}

	_, err = p.FetchWeek(context.Background(), Key{LeagueID: "777", Year: 2024, Week: 8, TeamID: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHTTPProviderTeams(t *testing.T) {
	srv := newTestServer(t)
	p := NewHTTPProvider(srv.URL, 0)

	teams, err := p.Teams(context.Background(), "777", 2024)
	if err != nil {
		t.Fatalf("Teams: %v", err)
	}
	if len(teams) != 2 || teams[1].Name != "Bench Mob" {
		t.Errorf("teams = %+v", teams)
	}
}
