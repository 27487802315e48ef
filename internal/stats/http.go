package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultHTTPTimeout bounds a single request.
const DefaultHTTPTimeout = 15 * time.Second

// HTTPProvider talks to the league analysis API:
//
//	GET {base}/league/{id}/week/{week}/deep-dive?year=&team_id=
//	GET {base}/league/{id}/teams?year=
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPProvider returns a provider for baseURL with the given timeout.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &HTTPProvider{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

type deepDiveSides struct {
	MyTeam   *Side `json:"my_team"`
	Opponent *Side `json:"opponent"`
}

type deepDive struct {
	Week        int            `json:"week"`
	MyMatchup   *deepDiveSides `json:"my_matchup"`
	AllMatchups []Game         `json:"all_matchups"`
	Standings   []Standing     `json:"standings"`
}

type apiError struct {
	Error string `json:"error"`
}

// FetchWeek implements Provider.
func (p *HTTPProvider) FetchWeek(ctx context.Context, key Key) (*WeekResult, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(key.Year))
	q.Set("team_id", strconv.Itoa(key.TeamID))
	endpoint := fmt.Sprintf("%s/league/%s/week/%d/deep-dive?%s",
		p.BaseURL, url.PathEscape(key.LeagueID), key.Week, q.Encode())

	var body deepDive
	if err := p.get(ctx, endpoint, &body); err != nil {
		return nil, fmt.Errorf("stats: fetch week %d: %w", key.Week, err)
	}
	return body.result(key.Week), nil
}

// Teams implements Provider.
func (p *HTTPProvider) Teams(ctx context.Context, leagueID string, year int) ([]Team, error) {
	endpoint := fmt.Sprintf("%s/league/%s/teams?year=%d", p.BaseURL, url.PathEscape(leagueID), year)
	var body struct {
		Teams []Team `json:"teams"`
	}
	if err := p.get(ctx, endpoint, &body); err != nil {
		return nil, fmt.Errorf("stats: teams: %w", err)
	}
	return body.Teams, nil
}

func (p *HTTPProvider) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		_ = json.Unmarshal(data, &ae)
		msg := ae.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, msg)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode, msg)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// result converts the payload. A missing side means no matchup.
func (d deepDive) result(week int) *WeekResult {
	res := &WeekResult{
		Week:        week,
		AllMatchups: d.AllMatchups,
		Standings:   d.Standings,
	}
	if d.MyMatchup == nil || d.MyMatchup.MyTeam == nil || d.MyMatchup.Opponent == nil {
		return res
	}
	mine, opp := *d.MyMatchup.MyTeam, *d.MyMatchup.Opponent
	mine.Won = mine.Score > opp.Score
	opp.Won = opp.Score > mine.Score
	res.Matchup = &Matchup{Mine: mine, Opponent: opp}
	return res
}
