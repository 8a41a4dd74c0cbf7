// Package repo provides postgres access for urls
package repo

import (
	"context"

	"searchgov/internal/modkit/repokit"
	perr "searchgov/internal/platform/errors"
	"searchgov/internal/platform/store"
)

// Repo defines the repository contract for urls
type Repo interface {
	// Insert stores one url for a batch, reporting whether a new row was created
	Insert(ctx context.Context, batchID, url, sourceFile string, reindex bool) (created bool, err error)

	// CountByBatch returns how many rows a batch owns
	CountByBatch(ctx context.Context, batchID string) (int, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, batchID, url, sourceFile string, reindex bool) (bool, error) {
	const sql = `
insert into searchgov_urls (url, batch_id, source_file, reindex, created_at)
values ($1, $2, $3, $4, now())
on conflict (url) do nothing
`
	tag, err := r.q.Exec(ctx, sql, url, batchID, sourceFile, reindex)
	if err != nil {
		return false, perr.FromPg(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) CountByBatch(ctx context.Context, batchID string) (int, error) {
	const sql = `select count(*) from searchgov_urls where batch_id = $1`
	n, err := store.Scalar[int](ctx, r.q, sql, batchID)
	if err != nil {
		return 0, perr.FromPg(err)
	}
	return n, nil
}
