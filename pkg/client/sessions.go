package client

import (
	"context"
	"fmt"
	"time"

	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// SessionsClient operates editing sessions over the REST API.
type SessionsClient struct {
	client *Client
}

// Session describes one editing session as reported by the server.
type Session struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
	Revision   uint64    `json:"revision"`
	AtomCount  int       `json:"atom_count"`
	BondCount  int       `json:"bond_count"`
}

// Snapshot bundles session metadata with the full canvas graph.
type Snapshot struct {
	Session Session       `json:"session"`
	Graph   chem.GraphDTO `json:"graph"`
}

// AtomCreated reports the index assigned to a new atom or merged fragment base.
type AtomCreated struct {
	Index int `json:"index"`
}

// ExportRequest asks the server to persist and export the canvas.
type ExportRequest struct {
	Name   string `json:"name"`
	Format string `json:"format"`
}

// Create opens a new editing session.
func (s *SessionsClient) Create(ctx context.Context) (*Session, error) {
	var sess Session
	if err := s.client.post(ctx, "/api/v1/sessions", nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Get returns the session snapshot: metadata plus graph.
func (s *SessionsClient) Get(ctx context.Context, id string) (*Snapshot, error) {
	var snap Snapshot
	if err := s.client.get(ctx, "/api/v1/sessions/"+id, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Close ends a session and discards its canvas.
func (s *SessionsClient) Close(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/api/v1/sessions/"+id)
}

// AddAtom places one atom and returns its index.
func (s *SessionsClient) AddAtom(ctx context.Context, id string, req chem.AddAtomRequest) (int, error) {
	var created AtomCreated
	if err := s.client.post(ctx, "/api/v1/sessions/"+id+"/atoms", req, &created); err != nil {
		return 0, err
	}
	return created.Index, nil
}

// AddBond creates a bond, or retypes it when the pair is already bonded.
func (s *SessionsClient) AddBond(ctx context.Context, id string, req chem.AddBondRequest) error {
	return s.client.post(ctx, "/api/v1/sessions/"+id+"/bonds", req, nil)
}

// RemoveAtom deletes the atom at index together with its incident bonds.
func (s *SessionsClient) RemoveAtom(ctx context.Context, id string, index int) error {
	return s.client.delete(ctx, fmt.Sprintf("/api/v1/sessions/%s/atoms/%d", id, index))
}

// MergeFragment stamps a library fragment onto the canvas and returns the
// index of the fragment's first atom.
func (s *SessionsClient) MergeFragment(ctx context.Context, id string, req chem.MergeFragmentRequest) (int, error) {
	var created AtomCreated
	if err := s.client.post(ctx, "/api/v1/sessions/"+id+"/fragments", req, &created); err != nil {
		return 0, err
	}
	return created.Index, nil
}

// Clear removes every atom and bond from the canvas.
func (s *SessionsClient) Clear(ctx context.Context, id string) error {
	return s.client.post(ctx, "/api/v1/sessions/"+id+"/clear", nil, nil)
}

// Serialize returns the SMILES string for the current canvas.
func (s *SessionsClient) Serialize(ctx context.Context, id string) (string, error) {
	var resp chem.SerializeResponse
	if err := s.client.get(ctx, "/api/v1/sessions/"+id+"/smiles", &resp); err != nil {
		return "", err
	}
	return resp.SMILES, nil
}

// Properties returns the estimated molecular properties of the canvas.
func (s *SessionsClient) Properties(ctx context.Context, id string) (*chem.MolecularProperties, error) {
	var props chem.MolecularProperties
	if err := s.client.get(ctx, "/api/v1/sessions/"+id+"/properties", &props); err != nil {
		return nil, err
	}
	return &props, nil
}

// Save persists the canvas under the given name.
func (s *SessionsClient) Save(ctx context.Context, id string, name string) (*chem.MoleculeDocumentDTO, error) {
	var doc chem.MoleculeDocumentDTO
	req := chem.SaveMoleculeRequest{Name: name}
	if err := s.client.post(ctx, "/api/v1/sessions/"+id+"/save", req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Export saves (if needed) and uploads the canvas, returning a presigned URL.
func (s *SessionsClient) Export(ctx context.Context, id string, req ExportRequest) (*chem.ExportResponse, error) {
	var resp chem.ExportResponse
	if err := s.client.post(ctx, "/api/v1/sessions/"+id+"/export", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

//Personal.AI order the ending
