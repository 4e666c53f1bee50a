package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/MolCanvas/internal/domain/element"
	"github.com/turtacn/MolCanvas/internal/domain/fragmentlib"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// LibraryHandler serves the static palette data the canvas UI needs: the
// element palette and the fragment template library. Both are immutable for
// the lifetime of the process.
type LibraryHandler struct {
	registry *element.Registry
	library  *fragmentlib.Library
}

// NewLibraryHandler creates a LibraryHandler over the given registry and library.
func NewLibraryHandler(registry *element.Registry, library *fragmentlib.Library) *LibraryHandler {
	return &LibraryHandler{registry: registry, library: library}
}

// RegisterRoutes mounts the library routes on the given router.
func (h *LibraryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/fragments", h.ListFragments)
	r.Get("/elements", h.ListElements)
}

// ListFragments handles GET /fragments.
func (h *LibraryHandler) ListFragments(w http.ResponseWriter, r *http.Request) {
	entries := h.library.List()

	dtos := make([]chem.FragmentDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, e.ToDTO())
	}
	writeSuccess(w, r, http.StatusOK, dtos)
}

// ListElements handles GET /elements. Editing markers are excluded; the
// palette only shows placeable elements.
func (h *LibraryHandler) ListElements(w http.ResponseWriter, r *http.Request) {
	elems := h.registry.Elements()

	dtos := make([]chem.ElementDTO, 0, len(elems))
	for _, e := range elems {
		dtos = append(dtos, chem.ElementDTO{
			Symbol:            e.Symbol,
			AtomicNumber:      e.AtomicNumber,
			AtomicWeight:      e.AtomicWeight,
			Electronegativity: e.Electronegativity,
		})
	}
	writeSuccess(w, r, http.StatusOK, dtos)
}

//Personal.AI order the ending
