package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/MolCanvas/internal/application/editor"
	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// SessionHandler exposes the interactive editing session API. Every route
// below /sessions/{id} operates on one in-memory canvas owned by the editor
// service.
type SessionHandler struct {
	editor *editor.Service
}

// NewSessionHandler creates a SessionHandler backed by the given editor service.
func NewSessionHandler(svc *editor.Service) *SessionHandler {
	return &SessionHandler{editor: svc}
}

// RegisterRoutes mounts the session routes on the given router.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.Snapshot)
			r.Delete("/", h.Close)
			r.Post("/atoms", h.AddAtom)
			r.Delete("/atoms/{index}", h.RemoveAtom)
			r.Post("/bonds", h.AddOrUpdateBond)
			r.Post("/fragments", h.MergeFragment)
			r.Post("/clear", h.Clear)
			r.Get("/smiles", h.Serialize)
			r.Get("/properties", h.Properties)
			r.Post("/save", h.Save)
			r.Post("/export", h.Export)
		})
	})
}

// SessionSnapshot is the response body for GET /sessions/{id}: session
// metadata plus the full canvas graph.
type SessionSnapshot struct {
	Session editor.SessionInfo `json:"session"`
	Graph   chem.GraphDTO      `json:"graph"`
}

// atomCreatedResponse reports the index assigned to a newly placed atom or
// the base index of a merged fragment.
type atomCreatedResponse struct {
	Index int `json:"index"`
}

// Create handles POST /sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	info, err := h.editor.CreateSession(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, info)
}

// Snapshot handles GET /sessions/{id}.
func (h *SessionHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	info, err := h.editor.SessionInfo(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	graph, err := h.editor.Snapshot(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, SessionSnapshot{Session: info, Graph: graph})
}

// Close handles DELETE /sessions/{id}.
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.editor.CloseSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// AddAtom handles POST /sessions/{id}/atoms.
func (h *SessionHandler) AddAtom(w http.ResponseWriter, r *http.Request) {
	var req chem.AddAtomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, r, err)
		return
	}

	index, err := h.editor.AddAtom(r.Context(), chi.URLParam(r, "sessionID"), req)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, atomCreatedResponse{Index: index})
}

// RemoveAtom handles DELETE /sessions/{id}/atoms/{index}.
func (h *SessionHandler) RemoveAtom(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeAppError(w, r, errors.New(errors.ErrCodeBadRequest, "atom index must be an integer"))
		return
	}

	if err := h.editor.RemoveAtom(r.Context(), chi.URLParam(r, "sessionID"), index); err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// AddOrUpdateBond handles POST /sessions/{id}/bonds. Posting a bond between
// two already-bonded atoms retypes the existing bond.
func (h *SessionHandler) AddOrUpdateBond(w http.ResponseWriter, r *http.Request) {
	var req chem.AddBondRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, r, err)
		return
	}

	if err := h.editor.AddOrUpdateBond(r.Context(), chi.URLParam(r, "sessionID"), req); err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// MergeFragment handles POST /sessions/{id}/fragments.
func (h *SessionHandler) MergeFragment(w http.ResponseWriter, r *http.Request) {
	var req chem.MergeFragmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, r, err)
		return
	}

	base, err := h.editor.MergeFragment(r.Context(), chi.URLParam(r, "sessionID"), req)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, atomCreatedResponse{Index: base})
}

// Clear handles POST /sessions/{id}/clear.
func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.editor.Clear(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Serialize handles GET /sessions/{id}/smiles.
func (h *SessionHandler) Serialize(w http.ResponseWriter, r *http.Request) {
	smiles, err := h.editor.Serialize(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, chem.SerializeResponse{SMILES: smiles})
}

// Properties handles GET /sessions/{id}/properties.
func (h *SessionHandler) Properties(w http.ResponseWriter, r *http.Request) {
	props, err := h.editor.Properties(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, props)
}

// Save handles POST /sessions/{id}/save.
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req chem.SaveMoleculeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, r, err)
		return
	}

	doc, err := h.editor.Save(r.Context(), chi.URLParam(r, "sessionID"), req.Name)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, doc.ToDTO())
}

// Export handles POST /sessions/{id}/export. The canvas is persisted under
// the given name if not already saved, rendered in the requested format and
// uploaded to the object store; the response carries a presigned download URL.
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req editor.ExportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Format) == "" {
		req.Format = "smi"
	}

	resp, err := h.editor.Export(r.Context(), chi.URLParam(r, "sessionID"), req)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, resp)
}

//Personal.AI order the ending
