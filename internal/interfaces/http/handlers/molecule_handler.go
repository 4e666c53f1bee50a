package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// MoleculeHandler exposes read and delete access to saved molecule records.
type MoleculeHandler struct {
	molecules *molecule.Service
}

// NewMoleculeHandler creates a MoleculeHandler backed by the molecule service.
func NewMoleculeHandler(svc *molecule.Service) *MoleculeHandler {
	return &MoleculeHandler{molecules: svc}
}

// RegisterRoutes mounts the molecule routes on the given router.
func (h *MoleculeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/molecules", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{moleculeID}", h.Get)
		r.Delete("/{moleculeID}", h.Delete)
	})
}

// List handles GET /molecules with page / page_size query parameters.
func (h *MoleculeHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)

	docs, total, err := h.molecules.ListDocuments(r.Context(), page)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	dtos := make([]chem.MoleculeDocumentDTO, 0, len(docs))
	for _, doc := range docs {
		dtos = append(dtos, doc.ToDTO())
	}

	page.Total = total
	writePaginated(w, r, dtos, page)
}

// Get handles GET /molecules/{id}.
func (h *MoleculeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := common.ID(chi.URLParam(r, "moleculeID"))

	doc, err := h.molecules.GetDocument(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, doc.ToDTO())
}

// Delete handles DELETE /molecules/{id}.
func (h *MoleculeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := common.ID(chi.URLParam(r, "moleculeID"))

	if err := h.molecules.DeleteDocument(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

//Personal.AI order the ending
