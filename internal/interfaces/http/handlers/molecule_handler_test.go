package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MolCanvas/internal/domain/element"
	"github.com/turtacn/MolCanvas/internal/domain/graph"
	pkgerrors "github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// saveMolecule persists one single-carbon document through the molecule
// service and returns its ID.
func (a *testAPI) saveMolecule(t *testing.T, name string) common.ID {
	t.Helper()

	g := graph.New(element.NewRegistry())
	_, err := g.AddAtom("C", chem.Point{})
	require.NoError(t, err)

	doc, err := a.molecules.SaveDocument(context.Background(), name, g)
	require.NoError(t, err)
	return doc.ID
}

func TestMoleculeHandler_Get(t *testing.T) {
	api := newTestAPI(t)
	id := api.saveMolecule(t, "methane")

	rec := api.do(t, http.MethodGet, "/api/v1/molecules/"+string(id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto chem.MoleculeDocumentDTO
	decodeData(t, rec, &dto)
	assert.Equal(t, "methane", dto.Name)
	assert.Equal(t, "C", dto.SMILES)
}

func TestMoleculeHandler_GetNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/molecules/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, string(pkgerrors.ErrCodeMoleculeNotFound), env.Error.Code)
}

func TestMoleculeHandler_List(t *testing.T) {
	api := newTestAPI(t)
	api.saveMolecule(t, "methane")
	api.saveMolecule(t, "ethanol")

	rec := api.do(t, http.MethodGet, "/api/v1/molecules", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []chem.MoleculeDocumentDTO
	env := decodeData(t, rec, &dtos)
	assert.Len(t, dtos, 2)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(2), env.Pagination.Total)
	assert.Equal(t, 1, env.Pagination.Page)
}

func TestMoleculeHandler_ListPagination(t *testing.T) {
	api := newTestAPI(t)
	api.saveMolecule(t, "methane")
	api.saveMolecule(t, "ethanol")
	api.saveMolecule(t, "benzene")

	rec := api.do(t, http.MethodGet, "/api/v1/molecules?page=2&page_size=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []chem.MoleculeDocumentDTO
	env := decodeData(t, rec, &dtos)
	assert.Len(t, dtos, 1)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(3), env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 2, env.Pagination.PageSize)
}

func TestMoleculeHandler_ListIgnoresBogusPagination(t *testing.T) {
	api := newTestAPI(t)
	api.saveMolecule(t, "methane")

	rec := api.do(t, http.MethodGet, "/api/v1/molecules?page=-1&page_size=9999", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.Page)
	assert.Equal(t, 20, env.Pagination.PageSize)
}

func TestMoleculeHandler_Delete(t *testing.T) {
	api := newTestAPI(t)
	id := api.saveMolecule(t, "methane")

	rec := api.do(t, http.MethodDelete, "/api/v1/molecules/"+string(id), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/molecules/"+string(id), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

//Personal.AI order the ending
