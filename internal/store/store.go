package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/stormfors/wcag-audit/internal/model"
)

// Store is the in-memory working copy of one audit variant's state.
// Every mutation writes through to the database; a failed write is logged
// and the in-memory state stays authoritative.
//
// All methods are safe for concurrent use. The server handles requests
// from the browser UI concurrently, so mutations are serialized here.
type Store struct {
	mu      sync.Mutex
	db      *AuditDB
	variant model.Variant
	state   model.AuditState
	logger  *slog.Logger
}

// NewStore loads the saved state for the given variant, or starts a fresh
// audit when none is saved. Unreadable saved state is logged and replaced
// with a fresh audit rather than failing the session.
func NewStore(ctx context.Context, db *AuditDB, variant model.Variant, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		db:      db,
		variant: variant,
		logger:  logger,
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Variant returns the audit variant this store holds state for.
func (s *Store) Variant() model.Variant {
	return s.variant
}

// load reads the saved state row for the variant's storage key.
func (s *Store) load(ctx context.Context) error {
	raw, found, err := s.db.Get(ctx, s.variant.StorageKey())
	if err != nil {
		return fmt.Errorf("failed to load audit state: %w", err)
	}
	if !found {
		s.state = *model.NewAuditState()
		return nil
	}

	var state model.AuditState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// Saved state predating the current format is discarded, not fatal.
		s.logger.Warn("discarding unreadable saved audit state",
			"variant", s.variant.String(),
			"error", err)
		s.state = *model.NewAuditState()
		return nil
	}
	state.Normalize()
	s.state = state
	return nil
}

// persist writes the current state through to the database.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Warn("failed to serialize audit state",
			"variant", s.variant.String(),
			"error", err)
		return
	}
	if err := s.db.Put(ctx, s.variant.StorageKey(), string(raw)); err != nil {
		s.logger.Warn("failed to persist audit state",
			"variant", s.variant.String(),
			"error", err)
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.AuditState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.Clone()
}

// SetClientInfo updates the audited client's name and identifier.
func (s *Store) SetClientInfo(ctx context.Context, name, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ClientName = name
	s.state.ClientID = id
	s.persist(ctx)
}

// AddURL registers a page URL under audit and makes it the selected page.
// Whitespace is trimmed; adding an already registered URL only selects it.
func (s *Store) AddURL(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyURL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.HasURL(url) {
		s.state.URLs = append(s.state.URLs, url)
	}
	s.state.SelectedURL = url
	s.persist(ctx)
	return nil
}

// SelectURL switches which page observations and checkmarks apply to.
func (s *Store) SelectURL(ctx context.Context, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedURL = url
	s.persist(ctx)
}

// SetObservation records observation text for a criterion on the selected
// page. Without a selected page there is nothing to attach the text to, so
// the call is a no-op.
func (s *Store) SetObservation(ctx context.Context, criterionKey, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	url := s.state.SelectedURL
	if url == "" {
		return
	}
	if s.state.Observations[url] == nil {
		s.state.Observations[url] = make(map[string]string)
	}
	s.state.Observations[url][criterionKey] = text
	s.persist(ctx)
}

// ToggleCompleted flips the done checkmark for a criterion on the selected
// page. A no-op without a selected page.
func (s *Store) ToggleCompleted(ctx context.Context, criterionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	url := s.state.SelectedURL
	if url == "" {
		return
	}
	if s.state.CompletedItems[url] == nil {
		s.state.CompletedItems[url] = make(map[string]bool)
	}
	s.state.CompletedItems[url][criterionKey] = !s.state.CompletedItems[url][criterionKey]
	s.persist(ctx)
}

// SetExecutiveSummary updates the report's executive summary text.
func (s *Store) SetExecutiveSummary(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ExecutiveSummary = text
	s.persist(ctx)
}

// SetOtherFindings updates the free-form additional findings text.
func (s *Store) SetOtherFindings(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.OtherFindings = text
	s.persist(ctx)
}

// Clear discards all audit data for this variant, both the in-memory state
// and the persisted row, and starts a fresh audit.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Delete(ctx, s.variant.StorageKey()); err != nil {
		return err
	}
	s.state = *model.NewAuditState()
	return nil
}
