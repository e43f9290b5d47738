package querybuilder

import "testing"

func TestSelect_WithWhereOrderLimit(t *testing.T) {
	t.Parallel()

	query, args, err := Select("fixture_id", "league_id").
		From("watched_marks").
		Where(Eq("user_id", "u-1"), Eq("event_date", "2026-02-01")).
		OrderBy("kickoff_time", "fixture_id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT fixture_id, league_id FROM watched_marks WHERE user_id = $1 AND event_date = $2 ORDER BY kickoff_time, fixture_id LIMIT 10"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 2 || args[0] != "u-1" || args[1] != "2026-02-01" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModel_UsesDBTagsAndSuffix(t *testing.T) {
	t.Parallel()

	model := struct {
		UserID    string `db:"user_id"`
		FixtureID string `db:"fixture_id"`
		Skipped   string `db:"-"`
	}{UserID: "u-1", FixtureID: "fx-9", Skipped: "x"}

	query, args, err := InsertModel("watched_marks", model, "ON CONFLICT (user_id, fixture_id) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO watched_marks (user_id, fixture_id) VALUES ($1, $2) ON CONFLICT (user_id, fixture_id) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteFrom_RequiresCondition(t *testing.T) {
	t.Parallel()

	if _, _, err := DeleteFrom("watched_marks").ToSQL(); err == nil {
		t.Fatal("expected error for unconditional delete")
	}

	query, args, err := DeleteFrom("watched_marks").
		Where(Eq("user_id", "u-1"), Eq("fixture_id", "fx-9")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete: %v", err)
	}

	want := "DELETE FROM watched_marks WHERE user_id = $1 AND fixture_id = $2"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}
