package redis

import (
	"context"
	"time"

	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

const (
	moleculeIDKeyPrefix   = "molecule:id:"
	moleculeNameKeyPrefix = "molecule:name:"
)

// CachedMoleculeRepository decorates a molecule.Repository with a
// read-through cache on the by-ID and by-name lookups.  Writes invalidate
// both keys; list and count queries always pass through.
type CachedMoleculeRepository struct {
	inner  molecule.Repository
	cache  Cache
	ttl    time.Duration
	logger logging.Logger
}

var _ molecule.Repository = (*CachedMoleculeRepository)(nil)

// NewCachedMoleculeRepository wraps inner with cache.  A zero ttl falls back
// to the cache's default TTL.
func NewCachedMoleculeRepository(inner molecule.Repository, cache Cache, ttl time.Duration, log logging.Logger) *CachedMoleculeRepository {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &CachedMoleculeRepository{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: log,
	}
}

func idKey(id common.ID) string  { return moleculeIDKeyPrefix + string(id) }
func nameKey(name string) string { return moleculeNameKeyPrefix + name }

func (r *CachedMoleculeRepository) Save(ctx context.Context, doc *molecule.Document) error {
	if err := r.inner.Save(ctx, doc); err != nil {
		return err
	}
	r.invalidate(ctx, doc.ID, doc.Name)
	return nil
}

func (r *CachedMoleculeRepository) FindByID(ctx context.Context, id common.ID) (*molecule.Document, error) {
	var doc molecule.Document
	err := r.cache.GetOrSet(ctx, idKey(id), &doc, r.ttl, func(ctx context.Context) (interface{}, error) {
		return r.inner.FindByID(ctx, id)
	})
	if err != nil {
		// Cache infrastructure failures degrade to a direct read.
		if errors.IsCode(err, errors.ErrCodeCacheError) || errors.IsCode(err, errors.ErrCodeSerialization) {
			r.logger.Warn("molecule cache read failed, falling back to store",
				logging.String("key", idKey(id)), logging.Err(err))
			return r.inner.FindByID(ctx, id)
		}
		return nil, err
	}
	return &doc, nil
}

func (r *CachedMoleculeRepository) FindByName(ctx context.Context, name string) (*molecule.Document, error) {
	var doc molecule.Document
	err := r.cache.GetOrSet(ctx, nameKey(name), &doc, r.ttl, func(ctx context.Context) (interface{}, error) {
		return r.inner.FindByName(ctx, name)
	})
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeCacheError) || errors.IsCode(err, errors.ErrCodeSerialization) {
			r.logger.Warn("molecule cache read failed, falling back to store",
				logging.String("key", nameKey(name)), logging.Err(err))
			return r.inner.FindByName(ctx, name)
		}
		return nil, err
	}
	return &doc, nil
}

func (r *CachedMoleculeRepository) List(ctx context.Context, page common.Pagination) ([]*molecule.Document, int64, error) {
	return r.inner.List(ctx, page)
}

func (r *CachedMoleculeRepository) Delete(ctx context.Context, id common.ID) error {
	// Load first so the name key can be invalidated too.
	name := ""
	if doc, err := r.inner.FindByID(ctx, id); err == nil {
		name = doc.Name
	}
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id, name)
	return nil
}

func (r *CachedMoleculeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.inner.ExistsByName(ctx, name)
}

func (r *CachedMoleculeRepository) Count(ctx context.Context) (int64, error) {
	return r.inner.Count(ctx)
}

func (r *CachedMoleculeRepository) invalidate(ctx context.Context, id common.ID, name string) {
	keys := []string{idKey(id)}
	if name != "" {
		keys = append(keys, nameKey(name))
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.logger.Warn("failed to invalidate molecule cache",
			logging.String("id", string(id)), logging.Err(err))
	}
}

//Personal.AI order the ending
