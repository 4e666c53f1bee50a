package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MolCanvas/internal/application/editor"
	"github.com/turtacn/MolCanvas/internal/config"
	"github.com/turtacn/MolCanvas/internal/domain/element"
	"github.com/turtacn/MolCanvas/internal/domain/fragmentlib"
	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/common"
)

// envelope mirrors common.APIResponse for decoding test responses without
// committing to a concrete Data type.
type envelope struct {
	Success    bool                `json:"success"`
	Data       json.RawMessage     `json:"data"`
	Error      *common.ErrorDetail `json:"error"`
	Pagination *common.Pagination  `json:"pagination"`
	RequestID  string              `json:"request_id"`
}

// memoryRepo is an in-memory molecule.Repository for handler tests.
type memoryRepo struct {
	mu   sync.Mutex
	docs map[common.ID]*molecule.Document
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{docs: make(map[common.ID]*molecule.Document)}
}

func (r *memoryRepo) Save(_ context.Context, doc *molecule.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = doc
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id common.ID) (*molecule.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc, ok := r.docs[id]; ok {
		return doc, nil
	}
	return nil, pkgerrors.New(pkgerrors.ErrCodeMoleculeNotFound, "molecule not found")
}

func (r *memoryRepo) FindByName(_ context.Context, name string) (*molecule.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range r.docs {
		if doc.Name == name {
			return doc, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.ErrCodeMoleculeNotFound, "molecule not found")
}

func (r *memoryRepo) List(_ context.Context, page common.Pagination) ([]*molecule.Document, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*molecule.Document, 0, len(r.docs))
	for _, doc := range r.docs {
		all = append(all, doc)
	}
	total := int64(len(all))

	start := (page.Page - 1) * page.PageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *memoryRepo) Delete(_ context.Context, id common.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return pkgerrors.New(pkgerrors.ErrCodeMoleculeNotFound, "molecule not found")
	}
	delete(r.docs, id)
	return nil
}

func (r *memoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	if _, err := r.FindByName(ctx, name); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *memoryRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.docs)), nil
}

// testAPI bundles everything a handler test needs: the mounted router, the
// application services behind it and the backing repository.
type testAPI struct {
	router    chi.Router
	editor    *editor.Service
	molecules *molecule.Service
	repo      *memoryRepo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	repo := newMemoryRepo()
	logger := logging.NewNopLogger()
	molecules := molecule.NewService(repo, nil, logger)

	editorSvc := editor.NewService(
		config.EditorConfig{MaxSessions: 16},
		element.NewRegistry(),
		fragmentlib.NewLibrary(),
		molecules,
		nil,
		nil,
		logger,
	)
	t.Cleanup(editorSvc.Close)

	r := chi.NewRouter()
	r.Route("/api/v1", func(api chi.Router) {
		NewSessionHandler(editorSvc).RegisterRoutes(api)
		NewMoleculeHandler(molecules).RegisterRoutes(api)
		NewLibraryHandler(element.NewRegistry(), fragmentlib.NewLibrary()).RegisterRoutes(api)
	})

	return &testAPI{router: r, editor: editorSvc, molecules: molecules, repo: repo}
}

// do executes one request against the test router and returns the recorder.
func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope parses the standard response envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// decodeData parses the envelope and unmarshals its Data payload into dst.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) envelope {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success, "expected a success envelope, got %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, dst))
	return env
}

// createSession opens a session through the API and returns its ID.
func (a *testAPI) createSession(t *testing.T) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var info editor.SessionInfo
	decodeData(t, rec, &info)
	require.NotEmpty(t, info.ID)
	return info.ID
}

//Personal.AI order the ending
