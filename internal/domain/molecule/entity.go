// Package molecule provides the domain model for saved molecule documents:
// named snapshots of a canvas graph persisted together with their SMILES
// rendering and estimated properties.  The Document aggregate root is the
// only entity in this package; editing state itself lives in the graph
// package and is never persisted directly.
package molecule

import (
	"strings"
	"time"

	"github.com/turtacn/MolCanvas/internal/domain/graph"
	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// ─────────────────────────────────────────────────────────────────────────────
// Domain Events
// ─────────────────────────────────────────────────────────────────────────────

// DomainEvent is a marker interface for all molecule-related domain events.
type DomainEvent interface {
	EventType() string
}

// DocumentSavedEvent is published when a molecule document is persisted.
type DocumentSavedEvent struct {
	DocumentID common.ID
	Name       string
	SMILES     string
}

func (e DocumentSavedEvent) EventType() string { return "molecule.saved" }

// DocumentExportedEvent is published when an export artifact is produced for
// a saved document.
type DocumentExportedEvent struct {
	DocumentID common.ID
	ObjectKey  string
}

func (e DocumentExportedEvent) EventType() string { return "molecule.exported" }

// DocumentDeletedEvent is published when a document is removed.
type DocumentDeletedEvent struct {
	DocumentID common.ID
}

func (e DocumentDeletedEvent) EventType() string { return "molecule.deleted" }

// ─────────────────────────────────────────────────────────────────────────────
// Document Aggregate Root
// ─────────────────────────────────────────────────────────────────────────────

// maxNameLength bounds document names; longer names are almost always paste
// accidents from SMILES fields.
const maxNameLength = 256

// Document is the aggregate root for a saved molecule.  The graph snapshot,
// SMILES string, and properties are captured at save time and never mutate;
// re-saving under the same name creates a conflict rather than a new version.
type Document struct {
	common.BaseEntity

	// Name is the user-chosen document name, unique across the store.
	Name string `json:"name"`

	// SMILES is the serialized rendering of Graph captured at save time.
	SMILES string `json:"smiles"`

	// Graph is the full wire snapshot of the saved molecular graph.
	Graph chem.GraphDTO `json:"graph"`

	// Properties are the structural estimates captured at save time.
	Properties chem.MolecularProperties `json:"properties"`

	// Domain events (not persisted, cleared after publishing)
	events []DomainEvent
}

// ─────────────────────────────────────────────────────────────────────────────
// Factory Function
// ─────────────────────────────────────────────────────────────────────────────

// NewDocument captures a snapshot of g under the given name.  The name must
// be non-empty after trimming and the graph must contain at least one atom;
// both rules keep the store free of unusable records.
func NewDocument(name string, g *graph.Graph) (*Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New(errors.ErrCodeMoleculeInvalidName, "molecule name cannot be empty")
	}
	if len(name) > maxNameLength {
		return nil, errors.New(errors.ErrCodeMoleculeInvalidName, "molecule name too long").
			WithDetail(name[:32] + "...")
	}
	if g == nil || g.AtomCount() == 0 {
		return nil, errors.New(errors.ErrCodeMoleculeEmptyGraph, "cannot save an empty graph")
	}

	now := time.Now().UTC()
	doc := &Document{
		BaseEntity: common.BaseEntity{
			ID:        common.NewID(),
			CreatedAt: now,
			UpdatedAt: now,
			Version:   1,
		},
		Name:       name,
		SMILES:     g.Serialize(),
		Graph:      g.ToDTO(),
		Properties: g.EstimateProperties(),
	}
	doc.recordEvent(DocumentSavedEvent{
		DocumentID: doc.ID,
		Name:       doc.Name,
		SMILES:     doc.SMILES,
	})
	return doc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Event accessors
// ─────────────────────────────────────────────────────────────────────────────

func (d *Document) recordEvent(ev DomainEvent) {
	d.events = append(d.events, ev)
}

// Events returns the accumulated domain events without clearing them.
func (d *Document) Events() []DomainEvent {
	out := make([]DomainEvent, len(d.events))
	copy(out, d.events)
	return out
}

// ClearEvents drops all accumulated events.  Call after publishing.
func (d *Document) ClearEvents() {
	d.events = nil
}

// RecordExported attaches a DocumentExportedEvent for the given object key.
func (d *Document) RecordExported(objectKey string) {
	d.recordEvent(DocumentExportedEvent{DocumentID: d.ID, ObjectKey: objectKey})
}

// ToDTO renders the document in its wire representation.
func (d *Document) ToDTO() chem.MoleculeDocumentDTO {
	return chem.MoleculeDocumentDTO{
		BaseEntity: d.BaseEntity,
		Name:       d.Name,
		SMILES:     d.SMILES,
		Graph:      d.Graph,
		Properties: d.Properties,
	}
}

//Personal.AI order the ending
