// internal/core/ports/store.go
package ports

import (
	"context"

	"github.com/smoradi/stockroom-be/internal/core/domain"
)

// SnapshotStore defines the persistence port for ledger snapshots.
// This interface is implemented by the spreadsheet adapter.
//
// Load tolerates absent files: a collection whose file does not exist
// comes back empty. Malformed content is an error, never silently
// dropped. Save overwrites the backing files with the full snapshot.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, s domain.Snapshot) error
}
