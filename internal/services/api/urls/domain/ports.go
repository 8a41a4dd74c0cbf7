package domain

import "context"

// ServicePort defines the service contract for urls
type ServicePort interface {
	BulkUpload(ctx context.Context, in BulkUploadInput) (Receipt, error)
}

// Notifier receives a completion notice after a batch lands
// production wiring may send mail or post to a queue, the service only
// needs the seam
type Notifier interface {
	BatchDone(ctx context.Context, r Receipt)
}
