// Package molecule defines the repository interface for document persistence.
package molecule

import (
	"context"

	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// Repository defines the persistence contract for Document aggregates.
// Implementations must ensure the name-uniqueness invariant and map storage
// failures onto pkg/errors codes.
type Repository interface {
	// Save persists a new document.
	// Returns errors.ErrCodeMoleculeAlreadyExists when the name is taken.
	Save(ctx context.Context, doc *Document) error

	// FindByID retrieves a document by its unique identifier.
	// Returns errors.ErrCodeMoleculeNotFound if no document with the ID exists.
	FindByID(ctx context.Context, id common.ID) (*Document, error)

	// FindByName retrieves a document by its unique name.
	// Returns errors.ErrCodeMoleculeNotFound if no matching document exists.
	FindByName(ctx context.Context, name string) (*Document, error)

	// List returns documents ordered by creation time descending, together
	// with the total count for pagination.
	List(ctx context.Context, page common.Pagination) ([]*Document, int64, error)

	// Delete removes a document by ID.
	// Returns errors.ErrCodeMoleculeNotFound if the document does not exist.
	Delete(ctx context.Context, id common.ID) error

	// ExistsByName reports whether a document with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Count returns the total number of documents in the store.
	Count(ctx context.Context) (int64, error)
}

//Personal.AI order the ending
