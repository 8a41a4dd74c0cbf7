package module

import (
	"context"

	"searchgov/internal/platform/logger"
	urlsdom "searchgov/internal/services/api/urls/domain"
)

// logNotifier announces batch completion through the structured log.
// Swap for a queue-backed notifier when downstream indexing moves async
type logNotifier struct{ log logger.Logger }

func (n logNotifier) BatchDone(_ context.Context, r urlsdom.Receipt) {
	n.log.Info().
		Str("batch_id", r.BatchID).
		Str("source_file", r.SourceFile).
		Int("submitted", r.Submitted).
		Int("inserted", r.Inserted).
		Int("duplicate", r.Duplicate).
		Int("invalid", r.Invalid).
		Bool("reindex", r.Reindex).
		Msg("url batch processed")
}
