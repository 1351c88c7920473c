package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vbonduro/movecheck/internal/domain"
	"github.com/vbonduro/movecheck/internal/service"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTariffs(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.service.Tariffs())
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req comparisonRequest
	if !s.decode(w, r, &req) {
		return
	}

	cmp, err := s.service.Compare(r.Context(), req.Entry.ToDomain(domain.RoleEntry), *req.Exit.ToDomain(domain.RoleExit))
	if err != nil {
		s.serviceError(w, "compare", err)
		return
	}
	s.writeJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleCreateEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if !s.decode(w, r, &req) {
		return
	}

	est, err := s.service.Estimate(r.Context(), req.toService())
	if err != nil {
		s.serviceError(w, "create estimate", err)
		return
	}
	w.Header().Set("Location", "/estimates/"+est.ID)
	s.writeJSON(w, http.StatusCreated, est)
}

func (s *Server) handleGetEstimate(w http.ResponseWriter, r *http.Request) {
	est, err := s.service.GetEstimate(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, "get estimate", err)
		return
	}
	s.writeJSON(w, http.StatusOK, est)
}

func (s *Server) handleDeleteEstimate(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteEstimate(r.Context(), r.PathValue("id")); err != nil {
		s.serviceError(w, "delete estimate", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListEstimates(w http.ResponseWriter, r *http.Request) {
	ref := strings.TrimSpace(r.PathValue("ref"))
	list, err := s.service.ListEstimates(r.Context(), ref)
	if err != nil {
		s.serviceError(w, "list estimates", err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

// serviceError maps service failures onto HTTP statuses. Precondition
// violations are the caller's fault; anything else is logged as ours.
func (s *Server) serviceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrEstimateNotFound):
		s.writeError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrNotExitInspection),
		errors.Is(err, service.ErrNotEntryInspection),
		errors.Is(err, service.ErrNegativeDeposit),
		errors.Is(err, service.ErrInvalidSnapshot):
		s.writeError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		s.logger.Error(op+" failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to "+op, nil)
	}
}
