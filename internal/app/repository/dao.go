package repository

import (
	"context"

	"meetscribe/internal/app/model"
)

// TranscriptDAO is the storage contract for transcripts. Both the sqlite and
// postgres backends implement it; each call runs in its own implicit
// transaction and any storage-layer fault propagates to the caller unretried.
type TranscriptDAO interface {
	// Create inserts a row with a store-assigned id and creation time and
	// returns the new id. Ids are never reused, even after deletion.
	Create(ctx context.Context, title, content string) (int64, error)

	// ListAll returns every transcript ordered by created_at descending.
	ListAll(ctx context.Context) ([]model.Transcript, error)

	// FetchContents returns the content of each row whose id appears in ids.
	// Ids with no matching row are silently omitted.
	FetchContents(ctx context.Context, ids []int64) ([]string, error)

	// Delete removes the row with the given id and reports whether a row was
	// actually removed. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	Close() error
}
