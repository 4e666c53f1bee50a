package bootstrap

import (
	"context"

	"github.com/turtacn/MolCanvas/internal/application/editor"
	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/internal/infrastructure/storage/minio"
)

// artifactStore adapts the MinIO export store to the editor's ArtifactStore
// port so that the application layer stays free of storage imports.
type artifactStore struct {
	store minio.ExportStore
}

// NewArtifactStore wraps a MinIO export store as an editor.ArtifactStore.
func NewArtifactStore(store minio.ExportStore) editor.ArtifactStore {
	return &artifactStore{store: store}
}

func (a *artifactStore) Put(ctx context.Context, doc *molecule.Document, format string) (*editor.Artifact, error) {
	result, err := a.store.Put(ctx, doc, minio.ExportFormat(format))
	if err != nil {
		return nil, err
	}
	return &editor.Artifact{
		ObjectKey:   result.ObjectKey,
		DownloadURL: result.DownloadURL,
		ExpiresAt:   result.ExpiresAt,
	}, nil
}

//Personal.AI order the ending
