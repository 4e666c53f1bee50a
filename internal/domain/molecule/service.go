// Package molecule provides the domain service layer for saved documents.
package molecule

import (
	"context"
	"strings"

	"github.com/turtacn/MolCanvas/internal/domain/graph"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// EventPublisher delivers domain events to the message bus.  The kafka
// producer satisfies this; tests inject a recording stub.
type EventPublisher interface {
	Publish(ctx context.Context, ev DomainEvent) error
}

// nopPublisher swallows events when no bus is configured.
type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, DomainEvent) error { return nil }

// Service coordinates document business logic, repository access, and event
// publication.  It enforces the name-uniqueness rule and provides the
// high-level API the application layer calls.
type Service struct {
	repo      Repository
	publisher EventPublisher
	logger    logging.Logger
}

// NewService constructs a new document domain service.  publisher may be nil
// when event delivery is disabled.
func NewService(repo Repository, publisher EventPublisher, logger logging.Logger) *Service {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Core Operations
// ─────────────────────────────────────────────────────────────────────────────

// SaveDocument snapshots g under the given name and persists it.  Names are
// unique; saving a taken name fails with ErrCodeMoleculeAlreadyExists and
// changes nothing.
func (s *Service) SaveDocument(ctx context.Context, name string, g *graph.Graph) (*Document, error) {
	doc, err := NewDocument(name, g)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, doc.Name)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to check for existing document")
	}
	if exists {
		return nil, errors.New(errors.ErrCodeMoleculeAlreadyExists, "molecule already exists").
			WithDetail("name=" + doc.Name)
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to save document")
	}

	s.publishEvents(ctx, doc)

	s.logger.Info("saved molecule document",
		logging.String("id", string(doc.ID)),
		logging.String("name", doc.Name),
		logging.String("smiles", doc.SMILES))

	return doc, nil
}

// GetDocument retrieves a document by its ID.
func (s *Service) GetDocument(ctx context.Context, id common.ID) (*Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load document")
	}
	return doc, nil
}

// GetDocumentByName retrieves a document by its unique name.
func (s *Service) GetDocumentByName(ctx context.Context, name string) (*Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New(errors.ErrCodeMoleculeInvalidName, "molecule name cannot be empty")
	}
	doc, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load document")
	}
	return doc, nil
}

// ListDocuments returns a page of documents ordered by creation time.
func (s *Service) ListDocuments(ctx context.Context, page common.Pagination) ([]*Document, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, errors.InvalidParam(err.Error())
	}

	docs, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, 0, errors.Wrap(err, errors.CodeDatabaseError, "failed to list documents")
	}

	s.logger.Debug("listed molecule documents",
		logging.Int("results", len(docs)),
		logging.Int64("total", total))

	return docs, total, nil
}

// DeleteDocument removes a document by ID and publishes a deletion event.
func (s *Service) DeleteDocument(ctx context.Context, id common.ID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to delete document")
	}

	if err := s.publisher.Publish(ctx, DocumentDeletedEvent{DocumentID: id}); err != nil {
		// Event delivery failures never fail the operation.
		s.logger.Warn("failed to publish deletion event",
			logging.String("id", string(id)), logging.Err(err))
	}

	s.logger.Info("deleted molecule document", logging.String("id", string(id)))
	return nil
}

// RecordExport attaches an export event to the document and publishes it.
func (s *Service) RecordExport(ctx context.Context, doc *Document, objectKey string) {
	doc.RecordExported(objectKey)
	s.publishEvents(ctx, doc)
}

// publishEvents flushes the document's accumulated events to the bus.
// Delivery failures are logged and dropped so persistence stays the source
// of truth.
func (s *Service) publishEvents(ctx context.Context, doc *Document) {
	for _, ev := range doc.Events() {
		if err := s.publisher.Publish(ctx, ev); err != nil {
			s.logger.Warn("failed to publish domain event",
				logging.String("event", ev.EventType()),
				logging.String("id", string(doc.ID)),
				logging.Err(err))
		}
	}
	doc.ClearEvents()
}

//Personal.AI order the ending
