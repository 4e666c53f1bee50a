package editor

import (
	"context"
	"sync"
	"time"

	"github.com/turtacn/MolCanvas/internal/config"
	"github.com/turtacn/MolCanvas/internal/domain/element"
	"github.com/turtacn/MolCanvas/internal/domain/fragmentlib"
	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

// Artifact describes a stored export.
type Artifact struct {
	ObjectKey   string
	DownloadURL string
	ExpiresAt   time.Time
}

// ArtifactStore is the port to object storage.  The minio adapter
// implements it; a nil store disables the export operation.
type ArtifactStore interface {
	Put(ctx context.Context, doc *molecule.Document, format string) (*Artifact, error)
}

// ExportRequest names the document to export and the artifact format
// ("smi" or "json").
type ExportRequest struct {
	Name   string `json:"name"`
	Format string `json:"format"`
}

// Service manages editing sessions and forwards edit commands to the graph
// under each session's lock.
type Service struct {
	cfg       config.EditorConfig
	registry  *element.Registry
	library   *fragmentlib.Library
	molecules *molecule.Service
	exports   ArtifactStore
	metrics   *prometheus.AppMetrics
	logger    logging.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewService wires the editing surface.  exports and metrics may be nil.
func NewService(
	cfg config.EditorConfig,
	registry *element.Registry,
	library *fragmentlib.Library,
	molecules *molecule.Service,
	exports ArtifactStore,
	metrics *prometheus.AppMetrics,
	log logging.Logger,
) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{
		cfg:       cfg,
		registry:  registry,
		library:   library,
		molecules: molecules,
		exports:   exports,
		metrics:   metrics,
		logger:    log,
		sessions:  make(map[string]*Session),
		stopCh:    make(chan struct{}),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Session lifecycle
// ─────────────────────────────────────────────────────────────────────────────

// CreateSession opens a new empty canvas.  Fails with SES_002 when the
// configured session cap is reached.
func (s *Service) CreateSession(_ context.Context) (SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		return SessionInfo{}, errors.New(errors.ErrCodeSessionLimitExceeded, "editing session limit exceeded")
	}

	sess := newSession(s.registry)
	s.sessions[sess.ID] = sess
	s.recordSessionGauge(len(s.sessions))
	if s.metrics != nil {
		s.metrics.SessionsOpenedTotal.WithLabelValues().Inc()
	}
	s.logger.Info("editing session opened", logging.String("session_id", sess.ID))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.info(), nil
}

// SessionInfo returns the current session state without touching its graph.
func (s *Service) SessionInfo(_ context.Context, id string) (SessionInfo, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionInfo{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.info(), nil
}

// CloseSession removes the session.  Closing an unknown session is SES_001.
func (s *Service) CloseSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return errors.New(errors.ErrCodeSessionNotFound, "editing session not found").
			WithDetail("session_id=" + id)
	}
	delete(s.sessions, id)
	s.recordSessionGauge(len(s.sessions))
	s.logger.Info("editing session closed", logging.String("session_id", id))
	return nil
}

// StartReaper launches the idle-session sweeper.  Stop it with Close.
func (s *Service) StartReaper() {
	interval := s.cfg.ReapInterval
	if interval <= 0 {
		interval = time.Minute
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.reapIdleSessions()
			}
		}
	}()
}

// Close stops the reaper and drops all sessions.
func (s *Service) Close() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*Session)
	s.recordSessionGauge(0)
}

func (s *Service) reapIdleSessions() {
	ttl := s.cfg.SessionTTL
	if ttl <= 0 {
		return
	}
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.idleSince(now)
		sess.mu.Unlock()
		if idle > ttl {
			delete(s.sessions, id)
			if s.metrics != nil {
				s.metrics.SessionsExpiredTotal.WithLabelValues().Inc()
			}
			s.logger.Info("editing session expired",
				logging.String("session_id", id),
				logging.Duration("idle", idle))
		}
	}
	s.recordSessionGauge(len(s.sessions))
}

// ─────────────────────────────────────────────────────────────────────────────
// Edit commands
// ─────────────────────────────────────────────────────────────────────────────

// AddAtom places one atom and returns its dense index.
func (s *Service) AddAtom(_ context.Context, id string, req chem.AddAtomRequest) (int, error) {
	var idx int
	err := s.withSession(id, "add_atom", func(sess *Session) error {
		var opErr error
		idx, opErr = sess.graph.AddAtom(req.Symbol, req.Position)
		return opErr
	})
	return idx, err
}

// AddOrUpdateBond creates the bond or retypes an existing one.
func (s *Service) AddOrUpdateBond(_ context.Context, id string, req chem.AddBondRequest) error {
	return s.withSession(id, "add_bond", func(sess *Session) error {
		return sess.graph.AddOrUpdateBond(req.AtomA, req.AtomB, req.Type)
	})
}

// RemoveAtom deletes the atom, cascades its bonds, and shifts indices.
func (s *Service) RemoveAtom(_ context.Context, id string, index int) error {
	return s.withSession(id, "remove_atom", func(sess *Session) error {
		return sess.graph.RemoveAtom(index)
	})
}

// MergeFragment stamps a named library fragment into the graph at the given
// offset and returns the index of the fragment's first atom.
func (s *Service) MergeFragment(_ context.Context, id string, req chem.MergeFragmentRequest) (int, error) {
	entry, err := s.library.Get(req.Fragment)
	if err != nil {
		return 0, err
	}
	var base int
	err = s.withSession(id, "merge_fragment", func(sess *Session) error {
		var opErr error
		base, opErr = sess.graph.MergeFragment(entry.Fragment, req.Offset)
		return opErr
	})
	return base, err
}

// Clear empties the canvas.
func (s *Service) Clear(_ context.Context, id string) error {
	return s.withSession(id, "clear", func(sess *Session) error {
		sess.graph.Clear()
		return nil
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Read-only passes
// ─────────────────────────────────────────────────────────────────────────────

// Snapshot returns the full graph wire representation.
func (s *Service) Snapshot(_ context.Context, id string) (chem.GraphDTO, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return chem.GraphDTO{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastUsed = time.Now().UTC()
	return sess.graph.ToDTO(), nil
}

// Serialize renders the session graph as SMILES.
func (s *Service) Serialize(_ context.Context, id string) (string, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return "", err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastUsed = time.Now().UTC()

	start := time.Now()
	smiles := sess.graph.Serialize()
	if s.metrics != nil {
		prometheus.RecordSerialization(s.metrics, smiles, time.Since(start))
	}
	return smiles, nil
}

// Properties estimates weight, formula, and donor/acceptor counts.
func (s *Service) Properties(_ context.Context, id string) (chem.MolecularProperties, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return chem.MolecularProperties{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastUsed = time.Now().UTC()
	return sess.graph.EstimateProperties(), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Persistence and export
// ─────────────────────────────────────────────────────────────────────────────

// Save persists the session graph under name and returns the stored
// document.
func (s *Service) Save(ctx context.Context, id string, name string) (*molecule.Document, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastUsed = time.Now().UTC()

	doc, err := s.molecules.SaveDocument(ctx, name, sess.graph)
	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "failure"
		}
		s.metrics.MoleculesSavedTotal.WithLabelValues(status).Inc()
	}
	return doc, err
}

// Export stores an artifact for the named document and returns a presigned
// download link.  The document is saved first when it does not exist yet.
func (s *Service) Export(ctx context.Context, id string, req ExportRequest) (*chem.ExportResponse, error) {
	if s.exports == nil {
		return nil, errors.New(errors.ErrCodeNotImplemented, "export storage is not configured")
	}
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastUsed = time.Now().UTC()

	doc, err := s.molecules.GetDocumentByName(ctx, req.Name)
	if errors.IsCode(err, errors.ErrCodeMoleculeNotFound) {
		doc, err = s.molecules.SaveDocument(ctx, req.Name, sess.graph)
	}
	if err != nil {
		return nil, err
	}

	artifact, err := s.exports.Put(ctx, doc, req.Format)
	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "failure"
		}
		s.metrics.MoleculeExportsTotal.WithLabelValues(status).Inc()
	}
	if err != nil {
		return nil, err
	}

	s.molecules.RecordExport(ctx, doc, artifact.ObjectKey)
	return &chem.ExportResponse{
		ObjectKey: artifact.ObjectKey,
		URL:       artifact.DownloadURL,
		ExpiresIn: int64(time.Until(artifact.ExpiresAt).Seconds()),
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────────────────

func (s *Service) lookup(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "editing session not found").
			WithDetail("session_id=" + id)
	}
	return sess, nil
}

// withSession runs one mutation under the session lock and records the
// operation metric.  A failed operation leaves the graph unchanged; that
// guarantee comes from the graph itself.
func (s *Service) withSession(id, operation string, fn func(*Session) error) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastUsed = time.Now().UTC()

	start := time.Now()
	opErr := fn(sess)
	if s.metrics != nil {
		prometheus.RecordEditOperation(s.metrics, operation, opErr, time.Since(start))
		if opErr == nil {
			prometheus.RecordGraphSize(s.metrics, sess.graph.AtomCount(), sess.graph.BondCount())
		}
	}
	return opErr
}

// recordSessionGauge must be called with s.mu held.
func (s *Service) recordSessionGauge(n int) {
	if s.metrics != nil {
		s.metrics.ActiveSessions.WithLabelValues().Set(float64(n))
	}
}

//Personal.AI order the ending
