// Package repositories contains the PostgreSQL implementations of the domain
// repository interfaces.
package repositories

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	appErrors "github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// moleculeColumns is the canonical column list shared by every SELECT.
const moleculeColumns = `id, name, smiles, graph, properties, created_at, updated_at, version`

// MoleculeRepository is the PostgreSQL implementation of molecule.Repository.
// Graph snapshots and property sets are stored as JSONB columns so the schema
// never needs to track the chemistry model.
type MoleculeRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

var _ molecule.Repository = (*MoleculeRepository)(nil)

// NewMoleculeRepository constructs a ready-to-use MoleculeRepository.
func NewMoleculeRepository(pool *pgxpool.Pool, logger logging.Logger) *MoleculeRepository {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &MoleculeRepository{pool: pool, logger: logger}
}

// Save persists a document, updating the existing row when the ID is already
// present.
func (r *MoleculeRepository) Save(ctx context.Context, doc *molecule.Document) error {
	graphJSON, err := json.Marshal(doc.Graph)
	if err != nil {
		return appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to encode graph snapshot")
	}
	propsJSON, err := json.Marshal(doc.Properties)
	if err != nil {
		return appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to encode properties")
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO molecules (id, name, smiles, graph, properties, created_at, updated_at, version)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			name       = EXCLUDED.name,
			smiles     = EXCLUDED.smiles,
			graph      = EXCLUDED.graph,
			properties = EXCLUDED.properties,
			updated_at = EXCLUDED.updated_at,
			version    = molecules.version + 1`,
		doc.ID, doc.Name, doc.SMILES, graphJSON, propsJSON,
		doc.CreatedAt, doc.UpdatedAt, doc.Version,
	)
	if err != nil {
		r.logger.Error("failed to save molecule",
			logging.String("id", string(doc.ID)), logging.Err(err))
		return appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to save molecule")
	}
	return nil
}

// FindByID loads a document by its identifier.
func (r *MoleculeRepository) FindByID(ctx context.Context, id common.ID) (*molecule.Document, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+moleculeColumns+` FROM molecules WHERE id = $1`, id)
	return r.scanDocument(row)
}

// FindByName loads a document by its unique name.
func (r *MoleculeRepository) FindByName(ctx context.Context, name string) (*molecule.Document, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+moleculeColumns+` FROM molecules WHERE name = $1`, name)
	return r.scanDocument(row)
}

// List returns a page of documents ordered newest-first, plus the total count.
func (r *MoleculeRepository) List(ctx context.Context, page common.Pagination) ([]*molecule.Document, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM molecules`).Scan(&total); err != nil {
		r.logger.Error("failed to count molecules", logging.Err(err))
		return nil, 0, appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to count molecules")
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+moleculeColumns+` FROM molecules
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		page.PageSize, page.Offset(),
	)
	if err != nil {
		r.logger.Error("failed to list molecules", logging.Err(err))
		return nil, 0, appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to list molecules")
	}
	defer rows.Close()

	docs, err := r.scanDocuments(rows)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// Delete removes a document by ID.
func (r *MoleculeRepository) Delete(ctx context.Context, id common.ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM molecules WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete molecule",
			logging.String("id", string(id)), logging.Err(err))
		return appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to delete molecule")
	}
	if tag.RowsAffected() == 0 {
		return appErrors.New(appErrors.CodeMoleculeNotFound, "molecule not found").
			WithDetail(string(id))
	}
	return nil
}

// ExistsByName reports whether a document with the given name already exists.
func (r *MoleculeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM molecules WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check molecule name", logging.Err(err))
		return false, appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to check molecule name")
	}
	return exists, nil
}

// Count returns the total number of saved documents.
func (r *MoleculeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM molecules`).Scan(&count); err != nil {
		r.logger.Error("failed to count molecules", logging.Err(err))
		return 0, appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to count molecules")
	}
	return count, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal scanners
// ─────────────────────────────────────────────────────────────────────────────

func (r *MoleculeRepository) scanDocument(row pgx.Row) (*molecule.Document, error) {
	var doc molecule.Document
	var graphJSON, propsJSON []byte

	err := row.Scan(
		&doc.ID, &doc.Name, &doc.SMILES, &graphJSON, &propsJSON,
		&doc.CreatedAt, &doc.UpdatedAt, &doc.Version,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, appErrors.New(appErrors.CodeMoleculeNotFound, "molecule not found")
		}
		r.logger.Error("failed to scan molecule", logging.Err(err))
		return nil, appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to scan molecule")
	}

	if len(graphJSON) > 0 {
		if err := json.Unmarshal(graphJSON, &doc.Graph); err != nil {
			return nil, appErrors.Wrap(err, appErrors.CodeDBQueryError, "corrupt graph snapshot")
		}
	}
	if len(propsJSON) > 0 {
		if err := json.Unmarshal(propsJSON, &doc.Properties); err != nil {
			return nil, appErrors.Wrap(err, appErrors.CodeDBQueryError, "corrupt properties")
		}
	}
	return &doc, nil
}

func (r *MoleculeRepository) scanDocuments(rows pgx.Rows) ([]*molecule.Document, error) {
	var docs []*molecule.Document
	for rows.Next() {
		var doc molecule.Document
		var graphJSON, propsJSON []byte

		err := rows.Scan(
			&doc.ID, &doc.Name, &doc.SMILES, &graphJSON, &propsJSON,
			&doc.CreatedAt, &doc.UpdatedAt, &doc.Version,
		)
		if err != nil {
			r.logger.Error("failed to scan molecule row", logging.Err(err))
			return nil, appErrors.Wrap(err, appErrors.CodeDBQueryError, "failed to scan molecule row")
		}

		if len(graphJSON) > 0 {
			if err := json.Unmarshal(graphJSON, &doc.Graph); err != nil {
				return nil, appErrors.Wrap(err, appErrors.CodeDBQueryError, "corrupt graph snapshot")
			}
		}
		if len(propsJSON) > 0 {
			if err := json.Unmarshal(propsJSON, &doc.Properties); err != nil {
				return nil, appErrors.Wrap(err, appErrors.CodeDBQueryError, "corrupt properties")
			}
		}
		docs = append(docs, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.CodeDBQueryError, "row iteration error")
	}
	return docs, nil
}

//Personal.AI order the ending
