package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// MoleculesClient accesses saved molecule records over the REST API.
type MoleculesClient struct {
	client *Client
}

// MoleculeList is one page of saved molecules.
type MoleculeList struct {
	Items      []chem.MoleculeDocumentDTO
	Pagination Pagination
}

// UnmarshalJSON lets MoleculeList receive the envelope's data array directly.
func (l *MoleculeList) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &l.Items)
}

func (l *MoleculeList) setPagination(p Pagination) {
	l.Pagination = p
}

// ListOptions controls list pagination.
type ListOptions struct {
	Page     int
	PageSize int
}

// List returns one page of saved molecule records.
func (m *MoleculesClient) List(ctx context.Context, opts ListOptions) (*MoleculeList, error) {
	path := "/api/v1/molecules"
	query := ""
	if opts.Page > 0 {
		query = fmt.Sprintf("page=%d", opts.Page)
	}
	if opts.PageSize > 0 {
		if query != "" {
			query += "&"
		}
		query += fmt.Sprintf("page_size=%d", opts.PageSize)
	}
	if query != "" {
		path += "?" + query
	}

	var list MoleculeList
	if err := m.client.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get fetches one saved molecule by ID.
func (m *MoleculesClient) Get(ctx context.Context, id string) (*chem.MoleculeDocumentDTO, error) {
	var doc chem.MoleculeDocumentDTO
	if err := m.client.get(ctx, "/api/v1/molecules/"+id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes one saved molecule by ID.
func (m *MoleculesClient) Delete(ctx context.Context, id string) error {
	return m.client.delete(ctx, "/api/v1/molecules/"+id)
}

//Personal.AI order the ending
