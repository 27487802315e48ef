package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/season-quest/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleSeason() *stats.SeasonFile {
	return &stats.SeasonFile{
		LeagueID: "42",
		Year:     2024,
		Teams: []stats.Team{
			{ID: 1, Name: "Gridiron Gurus"},
			{ID: 2, Name: "Bench Mob"},
			{ID: 3, Name: "Waiver Wolves"},
			{ID: 4, Name: "Sunday Scaries"},
		},
		Weeks: []stats.SeasonWeek{
			{
				Week: 1,
				Games: []stats.Game{
					{
						Home: stats.Side{
							TeamID: 1, TeamName: "Gridiron Gurus", Score: 110, OptimalScore: 121.5,
							Starters: []stats.PlayerScore{
								{Name: "J. Allen", Position: "QB", Points: 31.2},
								{Name: "C. McCaffrey", Position: "RB", Points: 22},
							},
							Errors: []stats.LineupError{
								{BenchPlayer: "T. Pollard", ShouldReplace: "D. Swift", PointsLost: 11.5},
							},
						},
						Away: stats.Side{TeamID: 2, TeamName: "Bench Mob", Score: 95, OptimalScore: 99},
					},
					{
						Home: stats.Side{TeamID: 3, TeamName: "Waiver Wolves", Score: 80},
						Away: stats.Side{TeamID: 4, TeamName: "Sunday Scaries", Score: 101.5},
					},
				},
				Standings: []stats.Standing{
					{Rank: 1, TeamID: 1, TeamName: "Gridiron Gurus", Record: "1-0", PointsFor: 110},
					{Rank: 2, TeamID: 4, TeamName: "Sunday Scaries", Record: "1-0", PointsFor: 101.5},
				},
			},
			{
				Week: 2,
				Games: []stats.Game{
					{
						Home: stats.Side{TeamID: 2, TeamName: "Bench Mob", Score: 120},
						Away: stats.Side{TeamID: 1, TeamName: "Gridiron Gurus", Score: 90},
					},
				},
			},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.ImportSeason(ctx, sampleSeason(), "season.yaml"); err != nil {
		t.Fatalf("ImportSeason() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	teams, err := store.Teams(ctx, "42", 2024)
	if err != nil {
		t.Fatalf("Teams() failed: %v", err)
	}
	if len(teams) != 4 {
		t.Errorf("Expected 4 teams after reopen, got %d", len(teams))
	}
}

func TestImportAndFetchWeek(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	n, err := store.ImportSeason(ctx, sampleSeason(), "season.yaml")
	if err != nil {
		t.Fatalf("ImportSeason() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 weeks imported, got %d", n)
	}

	res, err := store.FetchWeek(ctx, stats.Key{LeagueID: "42", Year: 2024, Week: 1, TeamID: 1})
	if err != nil {
		t.Fatalf("FetchWeek() failed: %v", err)
	}
	if !res.HasMatchup() {
		t.Fatal("Expected a matchup for team 1")
	}
	m := res.Matchup
	if m.Mine.Score != 110 || m.Opponent.Score != 95 {
		t.Errorf("Scores = %v vs %v, want 110 vs 95", m.Mine.Score, m.Opponent.Score)
	}
	if !m.Mine.Won || m.Opponent.Won {
		t.Error("Won flags should be recomputed from scores")
	}
	if m.Mine.OptimalScore != 121.5 {
		t.Errorf("OptimalScore = %v, want 121.5", m.Mine.OptimalScore)
	}
	if len(m.Mine.Starters) != 2 || m.Mine.Starters[0].Name != "J. Allen" || m.Mine.Starters[1].Position != "RB" {
		t.Errorf("Starters not preserved in order: %+v", m.Mine.Starters)
	}
	if len(m.Mine.Errors) != 1 || m.Mine.Errors[0].PointsLost != 11.5 {
		t.Errorf("Errors not preserved: %+v", m.Mine.Errors)
	}
	if len(res.AllMatchups) != 2 {
		t.Errorf("Expected 2 matchups, got %d", len(res.AllMatchups))
	}
	if res.AllMatchups[1].Away.TeamName != "Sunday Scaries" {
		t.Errorf("Game order not preserved: %+v", res.AllMatchups[1])
	}
	if len(res.Standings) != 2 || res.Standings[0].Record != "1-0" {
		t.Errorf("Standings not preserved: %+v", res.Standings)
	}
}

func TestFetchWeekFromAwaySide(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	if _, err := store.ImportSeason(ctx, sampleSeason(), "season.yaml"); err != nil {
		t.Fatalf("ImportSeason() failed: %v", err)
	}

	res, err := store.FetchWeek(ctx, stats.Key{LeagueID: "42", Year: 2024, Week: 2, TeamID: 1})
	if err != nil {
		t.Fatalf("FetchWeek() failed: %v", err)
	}
	if !res.HasMatchup() {
		t.Fatal("Expected a matchup")
	}
	if res.Matchup.Mine.TeamName != "Gridiron Gurus" || res.Matchup.Won() {
		t.Errorf("Expected Gridiron Gurus loss, got %+v", res.Matchup)
	}
}

func TestFetchWeekMissing(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	if _, err := store.ImportSeason(ctx, sampleSeason(), "season.yaml"); err != nil {
		t.Fatalf("ImportSeason() failed: %v", err)
	}

	tests := []struct {
		name string
		key  stats.Key
	}{
		{"unknown week", stats.Key{LeagueID: "42", Year: 2024, Week: 9, TeamID: 1}},
		{"unknown year", stats.Key{LeagueID: "42", Year: 2023, Week: 1, TeamID: 1}},
		{"unknown league", stats.Key{LeagueID: "7", Year: 2024, Week: 1, TeamID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.FetchWeek(ctx, tt.key)
			if !errors.Is(err, stats.ErrNotFound) {
				t.Errorf("FetchWeek() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestFetchWeekWithoutMatchup(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	if _, err := store.ImportSeason(ctx, sampleSeason(), "season.yaml"); err != nil {
		t.Fatalf("ImportSeason() failed: %v", err)
	}

	// Team 3 has a bye in week 2.
	res, err := store.FetchWeek(ctx, stats.Key{LeagueID: "42", Year: 2024, Week: 2, TeamID: 3})
	if err != nil {
		t.Fatalf("FetchWeek() failed: %v", err)
	}
	if res.HasMatchup() {
		t.Error("Expected no matchup for a bye week")
	}
}

func TestSaveWeekReplaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := []stats.Game{{
		Home: stats.Side{TeamID: 1, TeamName: "A", Score: 10, Starters: []stats.PlayerScore{{Name: "x", Points: 10}}},
		Away: stats.Side{TeamID: 2, TeamName: "B", Score: 20},
	}}
	second := []stats.Game{{
		Home: stats.Side{TeamID: 1, TeamName: "A", Score: 30},
		Away: stats.Side{TeamID: 2, TeamName: "B", Score: 20},
	}}
	if err := store.SaveWeek(ctx, "42", 2024, 3, first, nil); err != nil {
		t.Fatalf("SaveWeek() failed: %v", err)
	}
	if err := store.SaveWeek(ctx, "42", 2024, 3, second, nil); err != nil {
		t.Fatalf("second SaveWeek() failed: %v", err)
	}

	res, err := store.FetchWeek(ctx, stats.Key{LeagueID: "42", Year: 2024, Week: 3, TeamID: 1})
	if err != nil {
		t.Fatalf("FetchWeek() failed: %v", err)
	}
	if len(res.AllMatchups) != 1 {
		t.Fatalf("Expected 1 game after replace, got %d", len(res.AllMatchups))
	}
	if res.Matchup.Mine.Score != 30 {
		t.Errorf("Score = %v, want 30", res.Matchup.Mine.Score)
	}
	if len(res.Matchup.Mine.Starters) != 0 {
		t.Errorf("Old starters survived the replace: %+v", res.Matchup.Mine.Starters)
	}
}

func TestWeeksAndImports(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	if _, err := store.ImportSeason(ctx, sampleSeason(), "season.yaml"); err != nil {
		t.Fatalf("ImportSeason() failed: %v", err)
	}

	weeks, err := store.Weeks(ctx, "42", 2024)
	if err != nil {
		t.Fatalf("Weeks() failed: %v", err)
	}
	if len(weeks) != 2 {
		t.Fatalf("Expected 2 weeks, got %d", len(weeks))
	}
	if weeks[0].Week != 1 || weeks[0].Games != 2 {
		t.Errorf("weeks[0] = %+v, want week 1 with 2 games", weeks[0])
	}
	if weeks[1].Week != 2 || weeks[1].Games != 1 {
		t.Errorf("weeks[1] = %+v, want week 2 with 1 game", weeks[1])
	}

	imports, err := store.RecentImports(ctx, 10)
	if err != nil {
		t.Fatalf("RecentImports() failed: %v", err)
	}
	if len(imports) != 1 {
		t.Fatalf("Expected 1 import, got %d", len(imports))
	}
	if imports[0].Source != "season.yaml" || imports[0].Weeks != 2 || imports[0].LeagueID != "42" {
		t.Errorf("Unexpected import record: %+v", imports[0])
	}
}

func TestImportRejectsIncompleteSeason(t *testing.T) {
	store := openTestStore(t)
	_, err := store.ImportSeason(context.Background(), &stats.SeasonFile{Year: 2024}, "x")
	if err == nil {
		t.Error("Expected error for missing league id")
	}
}
