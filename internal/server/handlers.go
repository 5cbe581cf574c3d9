package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stormfors/wcag-audit/internal/store"
)

// clientRequest carries the client identification fields.
type clientRequest struct {
	ClientName string `json:"clientName"`
	ClientID   string `json:"clientId"`
}

// urlRequest carries a page URL.
type urlRequest struct {
	URL string `json:"url"`
}

// observationRequest carries observation text for one criterion.
type observationRequest struct {
	Criterion string `json:"criterion"`
	Text      string `json:"text"`
}

// criterionRequest names a criterion.
type criterionRequest struct {
	Criterion string `json:"criterion"`
}

// textRequest carries free-form text.
type textRequest struct {
	Text string `json:"text"`
}

// handleGetState returns the variant's full audit state.
func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	st, _, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	respondJSON(w, http.StatusOK, st.Snapshot())
}

// handleClearState discards all audit data for the variant.
func (s *Server) handleClearState(w http.ResponseWriter, r *http.Request) {
	st, variant, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	if err := st.Clear(r.Context()); err != nil {
		s.logger.Error("failed to clear audit state", "variant", variant.String(), "error", err)
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, st.Snapshot())
}

// handleSetClient updates the client name and identifier.
func (s *Server) handleSetClient(w http.ResponseWriter, r *http.Request) {
	st, _, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	st.SetClientInfo(r.Context(), req.ClientName, req.ClientID)
	respondJSON(w, http.StatusOK, st.Snapshot())
}

// handleAddURL registers a page URL and selects it.
func (s *Server) handleAddURL(w http.ResponseWriter, r *http.Request) {
	st, _, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	var req urlRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := st.AddURL(r.Context(), req.URL); err != nil {
		if errors.Is(err, store.ErrEmptyURL) {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, st.Snapshot())
}

// handleSelectURL switches the page observations apply to.
func (s *Server) handleSelectURL(w http.ResponseWriter, r *http.Request) {
	st, _, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	var req urlRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	st.SelectURL(r.Context(), req.URL)
	respondJSON(w, http.StatusOK, st.Snapshot())
}

// handleSetObservation records observation text on the selected page.
func (s *Server) handleSetObservation(w http.ResponseWriter, r *http.Request) {
	st, _, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	var req observationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	st.SetObservation(r.Context(), req.Criterion, req.Text)
	respondJSON(w, http.StatusOK, st.Snapshot())
}

// handleToggleCompleted flips the done checkmark on the selected page.
func (s *Server) handleToggleCompleted(w http.ResponseWriter, r *http.Request) {
	st, _, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	var req criterionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	st.ToggleCompleted(r.Context(), req.Criterion)
	respondJSON(w, http.StatusOK, st.Snapshot())
}

// handleSetSummary updates the executive summary.
func (s *Server) handleSetSummary(w http.ResponseWriter, r *http.Request) {
	st, _, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	st.SetExecutiveSummary(r.Context(), req.Text)
	respondJSON(w, http.StatusOK, st.Snapshot())
}

// handleSetFindings updates the free-form additional findings.
func (s *Server) handleSetFindings(w http.ResponseWriter, r *http.Request) {
	st, _, err := s.storeFor(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	st.SetOtherFindings(r.Context(), req.Text)
	respondJSON(w, http.StatusOK, st.Snapshot())
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// respondJSON writes v as a JSON response.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes an error as a JSON response body.
func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
