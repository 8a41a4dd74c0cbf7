//go:build integration_pg
// +build integration_pg

package pg

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres boots a disposable postgres; generous deadlines for first image pull
func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func TestURLIngestionDedupe_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	appName := "searchgov-pg-integration"

	WithTestDB(t, dsn, func(pc *pgxpool.Config) {
		if pc.ConnConfig.RuntimeParams == nil {
			pc.ConnConfig.RuntimeParams = map[string]string{}
		}
		pc.ConnConfig.RuntimeParams["application_name"] = appName
		pc.MinConns = 1
	}, func(p *PG) {
		conn := AcquireConn(t, p, ctx)

		if _, err := conn.Exec(ctx, `
			create table if not exists searchgov_urls (
				url         text primary key,
				batch_id    uuid not null,
				source_file text not null,
				reindex     boolean not null default false,
				created_at  timestamptz not null default now()
			)`); err != nil {
			t.Fatalf("create table failed: %v", err)
		}
		defer func() { _, _ = conn.Exec(ctx, `drop table if exists searchgov_urls`) }()

		const ins = `
			insert into searchgov_urls (url, batch_id, source_file, reindex, created_at)
			values ($1, $2, $3, $4, now())
			on conflict (url) do nothing`

		batch := "9f41a0e2-20bb-4cf1-9b63-0c4f85f0a001"

		tag, err := conn.Exec(ctx, ins, "https://example.gov/a", batch, "seed.txt", false)
		if err != nil {
			t.Fatalf("first insert failed: %v", err)
		}
		if tag.RowsAffected() != 1 {
			t.Fatalf("first insert affected %d rows, want 1", tag.RowsAffected())
		}

		// same url again must be a silent no-op
		tag, err = conn.Exec(ctx, ins, "https://example.gov/a", batch, "seed.txt", false)
		if err != nil {
			t.Fatalf("duplicate insert errored: %v", err)
		}
		if tag.RowsAffected() != 0 {
			t.Fatalf("duplicate insert affected %d rows, want 0", tag.RowsAffected())
		}

		tag, err = conn.Exec(ctx, ins, "https://example.gov/b", batch, "seed.txt", true)
		if err != nil {
			t.Fatalf("second url insert failed: %v", err)
		}
		if tag.RowsAffected() != 1 {
			t.Fatalf("second url affected %d rows, want 1", tag.RowsAffected())
		}

		var n int
		if err := conn.QueryRow(ctx, `select count(*) from searchgov_urls where batch_id = $1`, batch).Scan(&n); err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if n != 2 {
			t.Fatalf("batch count = %d, want 2", n)
		}

		var gotApp string
		if err := conn.QueryRow(ctx, `select current_setting('application_name')`).Scan(&gotApp); err != nil {
			t.Fatalf("check app name: %v", err)
		}
		if gotApp != appName {
			t.Fatalf("application_name mismatch: got %q want %q", gotApp, appName)
		}
	})
}
