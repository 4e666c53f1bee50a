package client

import (
	"context"

	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// LibraryClient reads the static palette data: fragment templates and the
// element table.
type LibraryClient struct {
	client *Client
}

// Fragments lists the fragment template library.
func (l *LibraryClient) Fragments(ctx context.Context) ([]chem.FragmentDTO, error) {
	var dtos []chem.FragmentDTO
	if err := l.client.get(ctx, "/api/v1/fragments", &dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

// Elements lists the placeable element palette.
func (l *LibraryClient) Elements(ctx context.Context) ([]chem.ElementDTO, error) {
	var dtos []chem.ElementDTO
	if err := l.client.get(ctx, "/api/v1/elements", &dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

//Personal.AI order the ending
