package query_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/discvault/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "albums", "a").
		Project("id", "ID").
		Project("title", "Title").
		Project("release_year", "ReleaseYear")
}

func TestBuilder_BuildCount_NoConditions(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection()).BuildCount()

	want := "SELECT COUNT(*) FROM public.albums a"
	if sql != want {
		t.Errorf("BuildCount() sql = %q, want %q", sql, want)
	}

	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Title"})

	sql, _ := b.BuildPage(3, 20)

	checks := []string{
		"SELECT a.id, a.title, a.release_year FROM public.albums a",
		"ORDER BY a.title ASC",
		"LIMIT 20 OFFSET 40",
	}

	for _, c := range checks {
		if !strings.Contains(sql, c) {
			t.Errorf("BuildPage() missing %q, got %q", c, sql)
		}
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection()).BuildSingle("ID", int64(42))

	want := "SELECT a.id, a.title, a.release_year FROM public.albums a WHERE a.id = $1"
	if sql != want {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, want)
	}

	if len(args) != 1 || args[0] != int64(42) {
		t.Errorf("BuildSingle() args = %v, want [42]", args)
	}
}

func TestBuilder_OrderByFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []query.SortField
		want   string
	}{
		{
			"single descending",
			[]query.SortField{{Field: "release_year", Descending: true}},
			"ORDER BY a.release_year DESC",
		},
		{
			"multiple",
			[]query.SortField{{Field: "title"}, {Field: "ReleaseYear", Descending: true}},
			"ORDER BY a.title ASC, a.release_year DESC",
		},
		{
			"unknown dropped keeps default",
			[]query.SortField{{Field: "bogus"}},
			"ORDER BY a.id DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), query.SortField{Field: "ID", Descending: true}).
				OrderByFields(tt.fields)

			sql, _ := b.BuildPage(1, 10)
			if !strings.Contains(sql, tt.want) {
				t.Errorf("BuildPage() = %q, want to contain %q", sql, tt.want)
			}
		})
	}
}

func TestBuilder_Conditions(t *testing.T) {
	title := "abbey"
	empty := ""

	b := query.NewBuilder(newTestProjection()).
		WhereEquals("ReleaseYear", 1969).
		WhereEquals("ID", nil).
		WhereContains("Title", &title).
		WhereContains("Title", &empty).
		WhereIn("ID", []any{1, 2}).
		WhereIn("ID", nil)

	sql, args := b.BuildCount()

	for _, c := range []string{"a.release_year = $1", "a.title ILIKE $2", "a.id IN ($3, $4)", " AND "} {
		if !strings.Contains(sql, c) {
			t.Errorf("BuildCount() missing %q, got %q", c, sql)
		}
	}

	if len(args) != 4 {
		t.Fatalf("len(args) = %d, want 4", len(args))
	}

	if args[1] != "%abbey%" {
		t.Errorf("args[1] = %v, want %%abbey%%", args[1])
	}
}

func TestBuilder_WhereSearch(t *testing.T) {
	search := "beatles"
	sql, args := query.NewBuilder(newTestProjection()).
		WhereSearch(&search, "Title", "ReleaseYear").
		BuildCount()

	if !strings.Contains(sql, "(a.title ILIKE $1 OR a.release_year ILIKE $2)") {
		t.Errorf("BuildCount() = %q, missing search clause", sql)
	}

	if len(args) != 2 {
		t.Errorf("len(args) = %d, want 2", len(args))
	}

	sql, _ = query.NewBuilder(newTestProjection()).WhereSearch(nil, "Title").BuildCount()
	if strings.Contains(sql, "WHERE") {
		t.Errorf("nil search produced WHERE: %q", sql)
	}
}

func TestBuilder_WhereExists(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection()).
		WhereEquals("ReleaseYear", 1973).
		WhereExists("SELECT 1 FROM album_tags at WHERE at.album_id = a.id AND at.tag_id = $%d", int64(7)).
		BuildCount()

	want := "EXISTS (SELECT 1 FROM album_tags at WHERE at.album_id = a.id AND at.tag_id = $2)"
	if !strings.Contains(sql, want) {
		t.Errorf("BuildCount() = %q, want to contain %q", sql, want)
	}

	if len(args) != 2 || args[1] != int64(7) {
		t.Errorf("args = %v, want [1973 7]", args)
	}
}

func TestBuilder_WhereNull(t *testing.T) {
	title := "blue"
	sql, args := query.NewBuilder(newTestProjection()).
		WhereContains("Title", &title).
		WhereNull("ReleaseYear", true).
		WhereEquals("ID", int64(7)).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.albums a WHERE a.title ILIKE $1 AND a.release_year IS NULL AND a.id = $2"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2 values", args)
	}

	sql, _ = query.NewBuilder(newTestProjection()).WhereNull("ReleaseYear", false).BuildCount()
	if !strings.HasSuffix(sql, "WHERE a.release_year IS NOT NULL") {
		t.Errorf("sql = %q, want IS NOT NULL condition", sql)
	}
}
