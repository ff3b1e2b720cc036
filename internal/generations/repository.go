package generations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/weekly/pkg/pagination"
	"github.com/JaimeStill/weekly/pkg/query"
	"github.com/JaimeStill/weekly/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	now        func() time.Time
}

// New creates a generation log over db. Queries use $N placeholders, which
// both pgx and modernc sqlite accept.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "generations"),
		pagination: pagination,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Record(ctx context.Context, cmd CreateCommand) (*Generation, error) {
	g := Generation{
		ID:          uuid.New(),
		Template:    cmd.Template,
		Tone:        cmd.Tone,
		Seed:        cmd.Seed,
		Fragments:   cmd.Fragments,
		NotesLength: cmd.NotesLength,
		CreatedAt:   r.now().Truncate(time.Microsecond),
	}

	q := `INSERT INTO generations (` + columns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	err := repository.ExecExpectOne(
		ctx, r.db, q,
		g.ID.String(), g.Template, g.Tone, g.Seed, g.Fragments, g.NotesLength, g.CreatedAt,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Debug("generation recorded", "id", g.ID, "template", g.Template, "tone", g.Tone)
	return &g, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Generation], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort...).
		WhereEquals("template", filters.Template).
		WhereEquals("tone", filters.Tone).
		OrderByFields(query.ParseSortFields(filters.Sort))

	countQ, countArgs := qb.BuildCount()
	total, err := repository.Count(ctx, r.db, countQ, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("count generations: %w", err)
	}

	pageQ, pageArgs := qb.BuildPage(page.PageSize, page.Offset())
	items, err := repository.QueryMany(ctx, r.db, pageQ, pageArgs, scanGeneration)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Generation, error) {
	q, args := query.NewBuilder(projection).BuildSingle("id", id.String())

	g, err := repository.QueryOne(ctx, r.db, q, args, scanGeneration)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &g, nil
}
