package generations_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/JaimeStill/weekly/internal/generations"
	"github.com/JaimeStill/weekly/pkg/pagination"
	"github.com/JaimeStill/weekly/pkg/routes"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSystem(t *testing.T) generations.System {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	up, err := fs.ReadFile(generations.Migrations, "migrations/000001_create_generations.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if _, err := db.Exec(string(up)); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := pagination.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("pagination: %v", err)
	}
	return generations.New(db, discard(), cfg)
}

func record(t *testing.T, sys generations.System, template string, seed int) *generations.Generation {
	t.Helper()
	g, err := sys.Record(context.Background(), generations.CreateCommand{
		Template:    template,
		Tone:        "Short and efficient",
		Seed:        seed,
		Fragments:   2,
		NotesLength: 52,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	return g
}

func TestRecordAndFind(t *testing.T) {
	sys := newSystem(t)
	g := record(t, sys, "Exam and assessment update", 455250)

	got, err := sys.Find(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.ID != g.ID || got.Template != g.Template || got.Seed != 455250 || got.NotesLength != 52 {
		t.Errorf("Find: got %+v, want %+v", got, g)
	}
	if !got.CreatedAt.Equal(g.CreatedAt) {
		t.Errorf("created_at: got %v, want %v", got.CreatedAt, g.CreatedAt)
	}
}

func TestFindMissing(t *testing.T) {
	sys := newSystem(t)

	_, err := sys.Find(context.Background(), uuid.New())
	if !errors.Is(err, generations.ErrNotFound) {
		t.Errorf("Find: got %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	sys := newSystem(t)
	var ids []uuid.UUID
	for i := range 3 {
		ids = append(ids, record(t, sys, "Preschool weekly update", i).ID)
	}

	result, err := sys.List(context.Background(), pagination.PageRequest{Page: 1, PageSize: 2}, generations.Filters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 3 || result.TotalPages != 2 || len(result.Data) != 2 {
		t.Fatalf("List: got total=%d pages=%d len=%d", result.Total, result.TotalPages, len(result.Data))
	}
	for i := 1; i < len(result.Data); i++ {
		if result.Data[i].CreatedAt.After(result.Data[i-1].CreatedAt) {
			t.Errorf("results not ordered newest first: %v", result.Data)
		}
	}

	second, err := sys.List(context.Background(), pagination.PageRequest{Page: 2, PageSize: 2}, generations.Filters{})
	if err != nil {
		t.Fatalf("List page 2: %v", err)
	}
	if len(second.Data) != 1 {
		t.Errorf("page 2: got %d items, want 1", len(second.Data))
	}
}

func TestListFilters(t *testing.T) {
	sys := newSystem(t)
	record(t, sys, "Preschool weekly update", 30)
	record(t, sys, "Exam and assessment update", 10)
	record(t, sys, "Exam and assessment update", 20)

	tests := []struct {
		name    string
		filters generations.Filters
		seeds   []int
	}{
		{"template", generations.Filters{Template: "Exam and assessment update", Sort: "seed"}, []int{10, 20}},
		{"sort descending", generations.Filters{Sort: "-seed"}, []int{30, 20, 10}},
		{"no match", generations.Filters{Tone: "Warm and friendly"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sys.List(context.Background(), pagination.PageRequest{Page: 1, PageSize: 10}, tt.filters)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if result.Total != len(tt.seeds) {
				t.Errorf("total: got %d, want %d", result.Total, len(tt.seeds))
			}
			var seeds []int
			for _, g := range result.Data {
				seeds = append(seeds, g.Seed)
			}
			if diff := cmp.Diff(tt.seeds, seeds); diff != "" {
				t.Errorf("seeds (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{generations.ErrNotFound, http.StatusNotFound},
		{generations.ErrDuplicate, http.StatusConflict},
		{generations.ErrInvalidID, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := generations.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestHandler(t *testing.T) {
	sys := newSystem(t)
	g := record(t, sys, "Exam and assessment update", 7)

	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"list", "/generations?page=1&page_size=5", http.StatusOK},
		{"filtered list", "/generations?tone=Short+and+efficient&sort=-seed", http.StatusOK},
		{"find", "/generations/" + g.ID.String(), http.StatusOK},
		{"missing", "/generations/" + uuid.NewString(), http.StatusNotFound},
		{"malformed id", "/generations/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Fatalf("status: got %d, want %d: %s", rec.Code, tt.status, rec.Body)
			}
			if rec.Code != http.StatusOK {
				var body map[string]string
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["error"] == "" {
					t.Errorf("expected error body, got %v (%v)", body, err)
				}
			}
		})
	}
}
