// Package storage archives league results in SQLite so a season can be
// replayed offline. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Only statistics are stored, never game progress.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/season-quest/internal/stats"
)

// Store manages the SQLite database connection for the results archive.
type Store struct {
	db *sql.DB
}

// WeekSummary describes one archived week.
type WeekSummary struct {
	Week      int
	Games     int
	UpdatedAt time.Time
}

// ImportRecord is one row of the import log.
type ImportRecord struct {
	ID        int64
	LeagueID  string
	Year      int
	Weeks     int
	Source    string
	CreatedAt time.Time
}

var _ stats.Provider = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Fetch goroutines may write concurrently; SQLite wants one writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS teams (
			league_id TEXT NOT NULL,
			year INTEGER NOT NULL,
			team_id INTEGER NOT NULL,
			team_name TEXT NOT NULL,
			PRIMARY KEY (league_id, year, team_id)
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			league_id TEXT NOT NULL,
			year INTEGER NOT NULL,
			week INTEGER NOT NULL,
			ordinal INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_week ON games(league_id, year, week);

		CREATE TABLE IF NOT EXISTS sides (
			game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			home INTEGER NOT NULL,
			team_id INTEGER NOT NULL,
			team_name TEXT NOT NULL,
			score REAL NOT NULL,
			optimal_score REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (game_id, home)
		);

		CREATE TABLE IF NOT EXISTS starters (
			game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			team_id INTEGER NOT NULL,
			ordinal INTEGER NOT NULL,
			name TEXT NOT NULL,
			position TEXT NOT NULL DEFAULT '',
			points REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_starters_game ON starters(game_id, team_id);

		CREATE TABLE IF NOT EXISTS lineup_errors (
			game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			team_id INTEGER NOT NULL,
			ordinal INTEGER NOT NULL,
			bench_player TEXT NOT NULL,
			should_replace TEXT NOT NULL,
			points_lost REAL NOT NULL
		);

		CREATE TABLE IF NOT EXISTS standings (
			league_id TEXT NOT NULL,
			year INTEGER NOT NULL,
			week INTEGER NOT NULL,
			rank INTEGER NOT NULL,
			team_id INTEGER NOT NULL,
			team_name TEXT NOT NULL,
			record TEXT NOT NULL,
			points_for REAL NOT NULL,
			PRIMARY KEY (league_id, year, week, team_id)
		);

		CREATE TABLE IF NOT EXISTS imports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			league_id TEXT NOT NULL,
			year INTEGER NOT NULL,
			weeks INTEGER NOT NULL,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveTeams replaces the team list for a league season.
func (s *Store) SaveTeams(ctx context.Context, leagueID string, year int, teams []stats.Team) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: begin: %w", err)
	}
	defer tx.Rollback()

	if err := saveTeams(ctx, tx, leagueID, year, teams); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit teams: %w", err)
	}
	return nil
}

func saveTeams(ctx context.Context, tx *sql.Tx, leagueID string, year int, teams []stats.Team) error {
	for _, t := range teams {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO teams (league_id, year, team_id, team_name) VALUES (?, ?, ?, ?)
			 ON CONFLICT(league_id, year, team_id) DO UPDATE SET team_name = excluded.team_name`,
			leagueID, year, t.ID, t.Name,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save team %d: %w", t.ID, err)
		}
	}
	return nil
}

// SaveWeek replaces every game and the standings of one week.
func (s *Store) SaveWeek(ctx context.Context, leagueID string, year, week int, games []stats.Game, standings []stats.Standing) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: begin: %w", err)
	}
	defer tx.Rollback()

	if err := saveWeek(ctx, tx, leagueID, year, week, games, standings); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit week %d: %w", week, err)
	}
	return nil
}

func saveWeek(ctx context.Context, tx *sql.Tx, leagueID string, year, week int, games []stats.Game, standings []stats.Standing) error {
	// Children first: foreign keys are declared but not enforced by default.
	for _, table := range []string{"starters", "lineup_errors", "sides"} {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM `+table+` WHERE game_id IN
			 (SELECT id FROM games WHERE league_id = ? AND year = ? AND week = ?)`,
			leagueID, year, week,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot clear %s for week %d: %w", table, week, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM games WHERE league_id = ? AND year = ? AND week = ?`, leagueID, year, week); err != nil {
		return fmt.Errorf("storage: cannot clear week %d: %w", week, err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM standings WHERE league_id = ? AND year = ? AND week = ?`, leagueID, year, week); err != nil {
		return fmt.Errorf("storage: cannot clear standings for week %d: %w", week, err)
	}

	for i, g := range games {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO games (league_id, year, week, ordinal) VALUES (?, ?, ?, ?)`,
			leagueID, year, week, i,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save game: %w", err)
		}
		gameID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("storage: cannot get inserted ID: %w", err)
		}
		if err := saveSide(ctx, tx, gameID, true, g.Home); err != nil {
			return err
		}
		if err := saveSide(ctx, tx, gameID, false, g.Away); err != nil {
			return err
		}
	}

	for _, st := range standings {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO standings (league_id, year, week, rank, team_id, team_name, record, points_for)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			leagueID, year, week, st.Rank, st.TeamID, st.TeamName, st.Record, st.PointsFor,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save standing: %w", err)
		}
	}
	return nil
}

func saveSide(ctx context.Context, tx *sql.Tx, gameID int64, home bool, side stats.Side) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO sides (game_id, home, team_id, team_name, score, optimal_score) VALUES (?, ?, ?, ?, ?, ?)`,
		gameID, home, side.TeamID, side.TeamName, side.Score, side.OptimalScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save side: %w", err)
	}
	for i, p := range side.Starters {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO starters (game_id, team_id, ordinal, name, position, points) VALUES (?, ?, ?, ?, ?, ?)`,
			gameID, side.TeamID, i, p.Name, p.Position, p.Points,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save starter: %w", err)
		}
	}
	for i, e := range side.Errors {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO lineup_errors (game_id, team_id, ordinal, bench_player, should_replace, points_lost)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			gameID, side.TeamID, i, e.BenchPlayer, e.ShouldReplace, e.PointsLost,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save lineup error: %w", err)
		}
	}
	return nil
}

// ImportSeason writes a whole season file in one transaction and logs it.
// Returns the number of weeks written.
func (s *Store) ImportSeason(ctx context.Context, sf *stats.SeasonFile, source string) (int, error) {
	if sf.LeagueID == "" || sf.Year == 0 {
		return 0, errors.New("storage: season file needs league_id and year")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: begin: %w", err)
	}
	defer tx.Rollback()

	if err := saveTeams(ctx, tx, sf.LeagueID, sf.Year, sf.Teams); err != nil {
		return 0, err
	}
	for _, w := range sf.Weeks {
		if err := saveWeek(ctx, tx, sf.LeagueID, sf.Year, w.Week, w.Games, w.Standings); err != nil {
			return 0, err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports (league_id, year, weeks, source) VALUES (?, ?, ?, ?)`,
		sf.LeagueID, sf.Year, len(sf.Weeks), source); err != nil {
		return 0, fmt.Errorf("storage: cannot log import: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: commit import: %w", err)
	}
	return len(sf.Weeks), nil
}

// FetchWeek implements stats.Provider from archived rows.
func (s *Store) FetchWeek(ctx context.Context, key stats.Key) (*stats.WeekResult, error) {
	games, err := s.loadGames(ctx, key.LeagueID, key.Year, key.Week)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("%w: week %d not archived", stats.ErrNotFound, key.Week)
	}
	standings, err := s.loadStandings(ctx, key.LeagueID, key.Year, key.Week)
	if err != nil {
		return nil, err
	}
	return stats.BuildWeek(key.Week, key.TeamID, games, standings), nil
}

// Teams implements stats.Provider.
func (s *Store) Teams(ctx context.Context, leagueID string, year int) ([]stats.Team, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT team_id, team_name FROM teams WHERE league_id = ? AND year = ? ORDER BY team_id`,
		leagueID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query teams: %w", err)
	}
	defer rows.Close()

	var teams []stats.Team
	for rows.Next() {
		var t stats.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *Store) loadGames(ctx context.Context, leagueID string, year, week int) ([]stats.Game, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, sd.home, sd.team_id, sd.team_name, sd.score, sd.optimal_score
		 FROM games g JOIN sides sd ON sd.game_id = g.id
		 WHERE g.league_id = ? AND g.year = ? AND g.week = ?
		 ORDER BY g.ordinal, sd.home DESC`,
		leagueID, year, week,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}

	var (
		games []stats.Game
		ids   []int64
		index = make(map[int64]int)
	)
	for rows.Next() {
		var (
			id   int64
			home bool
			side stats.Side
		)
		if err := rows.Scan(&id, &home, &side.TeamID, &side.TeamName, &side.Score, &side.OptimalScore); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan side: %w", err)
		}
		i, ok := index[id]
		if !ok {
			i = len(games)
			index[id] = i
			ids = append(ids, id)
			games = append(games, stats.Game{})
		}
		if home {
			games[i].Home = side
		} else {
			games[i].Away = side
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i, id := range ids {
		g := &games[i]
		for _, side := range []*stats.Side{&g.Home, &g.Away} {
			if side.Starters, err = s.loadStarters(ctx, id, side.TeamID); err != nil {
				return nil, err
			}
			if side.Errors, err = s.loadErrors(ctx, id, side.TeamID); err != nil {
				return nil, err
			}
		}
	}
	return games, nil
}

func (s *Store) loadStarters(ctx context.Context, gameID int64, teamID int) ([]stats.PlayerScore, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, position, points FROM starters WHERE game_id = ? AND team_id = ? ORDER BY ordinal`,
		gameID, teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query starters: %w", err)
	}
	defer rows.Close()

	var out []stats.PlayerScore
	for rows.Next() {
		var p stats.PlayerScore
		if err := rows.Scan(&p.Name, &p.Position, &p.Points); err != nil {
			return nil, fmt.Errorf("storage: cannot scan starter: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) loadErrors(ctx context.Context, gameID int64, teamID int) ([]stats.LineupError, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT bench_player, should_replace, points_lost FROM lineup_errors
		 WHERE game_id = ? AND team_id = ? ORDER BY ordinal`,
		gameID, teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lineup errors: %w", err)
	}
	defer rows.Close()

	var out []stats.LineupError
	for rows.Next() {
		var e stats.LineupError
		if err := rows.Scan(&e.BenchPlayer, &e.ShouldReplace, &e.PointsLost); err != nil {
			return nil, fmt.Errorf("storage: cannot scan lineup error: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) loadStandings(ctx context.Context, leagueID string, year, week int) ([]stats.Standing, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT rank, team_id, team_name, record, points_for FROM standings
		 WHERE league_id = ? AND year = ? AND week = ? ORDER BY rank`,
		leagueID, year, week,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var out []stats.Standing
	for rows.Next() {
		var st stats.Standing
		if err := rows.Scan(&st.Rank, &st.TeamID, &st.TeamName, &st.Record, &st.PointsFor); err != nil {
			return nil, fmt.Errorf("storage: cannot scan standing: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Weeks lists the archived weeks of a season in ascending order.
func (s *Store) Weeks(ctx context.Context, leagueID string, year int) ([]WeekSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT week, COUNT(*), MAX(created_at) FROM games
		 WHERE league_id = ? AND year = ? GROUP BY week ORDER BY week`,
		leagueID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query weeks: %w", err)
	}
	defer rows.Close()

	var out []WeekSummary
	for rows.Next() {
		var (
			w       WeekSummary
			updated any
		)
		if err := rows.Scan(&w.Week, &w.Games, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan week: %w", err)
		}
		w.UpdatedAt = parseTime(updated)
		out = append(out, w)
	}
	return out, rows.Err()
}

// RecentImports returns the newest import log entries first.
func (s *Store) RecentImports(ctx context.Context, limit int) ([]ImportRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, league_id, year, weeks, source, created_at FROM imports
		 ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query imports: %w", err)
	}
	defer rows.Close()

	var out []ImportRecord
	for rows.Next() {
		var (
			r       ImportRecord
			created any
		)
		if err := rows.Scan(&r.ID, &r.LeagueID, &r.Year, &r.Weeks, &r.Source, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan import: %w", err)
		}
		r.CreatedAt = parseTime(created)
		out = append(out, r)
	}
	return out, rows.Err()
}
