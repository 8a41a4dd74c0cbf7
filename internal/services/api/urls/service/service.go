// Package service contains url ingestion workflows
package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"searchgov/internal/modkit/repokit"
	perr "searchgov/internal/platform/errors"
	"searchgov/internal/platform/logger"
	"searchgov/internal/services/api/urls/domain"
	"searchgov/internal/services/api/urls/repo"
)

// Service defines the service contract for urls
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo     repo.Repo
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	notifier domain.Notifier
	log      logger.Logger
}

// New creates a new urls service
// notifier may be nil when no completion notice is wanted
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], notifier domain.Notifier, log logger.Logger) *Svc {
	if db == nil {
		panic("urls.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("urls.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:     repokit.MustBind(binder, db),
		binder:   binder,
		db:       db,
		notifier: notifier,
		log:      log,
	}
}

// BulkUpload persists a deduplicated batch of URLs inside one transaction
// invalid entries are counted and reported, they never abort the batch
func (s *Svc) BulkUpload(ctx context.Context, in domain.BulkUploadInput) (domain.Receipt, error) {
	rcpt := domain.Receipt{
		BatchID:    uuid.NewString(),
		SourceFile: in.SourceFile,
		Submitted:  len(in.URLs),
		Reindex:    in.Reindex,
	}

	var valid []string
	for _, raw := range in.URLs {
		if ok := validURL(raw); !ok {
			rcpt.Invalid++
			rcpt.InvalidURLs = append(rcpt.InvalidURLs, raw)
			continue
		}
		valid = append(valid, strings.TrimSpace(raw))
	}

	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		for _, u := range valid {
			created, err := r.Insert(ctx, rcpt.BatchID, u, in.SourceFile, in.Reindex)
			if err != nil {
				return err
			}
			if created {
				rcpt.Inserted++
			} else {
				rcpt.Duplicate++
			}
		}

		// the batch only commits if every insert actually landed
		landed, err := r.CountByBatch(ctx, rcpt.BatchID)
		if err != nil {
			return err
		}
		if landed != rcpt.Inserted {
			return perr.DBf("batch %s landed %d rows, expected %d", rcpt.BatchID, landed, rcpt.Inserted)
		}
		return nil
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	s.log.Info().
		Str("batch_id", rcpt.BatchID).
		Str("source_file", rcpt.SourceFile).
		Int("inserted", rcpt.Inserted).
		Int("duplicate", rcpt.Duplicate).
		Int("invalid", rcpt.Invalid).
		Bool("reindex", rcpt.Reindex).
		Msg("url batch landed")

	if s.notifier != nil {
		s.notifier.BatchDone(ctx, rcpt)
	}
	return rcpt, nil
}

// validURL accepts absolute http or https URLs with a host
func validURL(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
