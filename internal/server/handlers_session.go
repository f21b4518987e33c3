package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
	"github.com/google/uuid"
)

// --- Session handlers ---
//
// Sessions are saved advice bundles scoped to the authenticated account.
// Every endpoint here requires a bearer token; a session belonging to a
// different account is served as 403, never leaked.

// handleSessions dispatches POST (save) and GET (list) for /api/sessions.
func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	uc, ok := requireUser(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPost:
		s.handleSessionCreate(w, r, uc)
	case http.MethodGet:
		s.handleSessionList(w, r, uc)
	default:
		RequireMethod(w, r, http.MethodPost, http.MethodGet)
	}
}

// routeSessions dispatches /api/sessions/{id} and its report and chart
// subresources.
func (s *Server) routeSessions(w http.ResponseWriter, r *http.Request) {
	uc, ok := requireUser(w, r)
	if !ok {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.Split(rest, "/")
	if parts[0] == "" {
		WriteError(w, http.StatusBadRequest, "session id is required in path")
		return
	}
	id := parts[0]

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			s.handleSessionGet(w, r, uc, id)
		case http.MethodDelete:
			s.handleSessionDelete(w, r, uc, id)
		default:
			RequireMethod(w, r, http.MethodGet, http.MethodDelete)
		}
	case len(parts) == 2 && parts[1] == "report":
		if !RequireMethod(w, r, http.MethodGet) {
			return
		}
		s.handleSessionReport(w, r, uc, id)
	case len(parts) == 3 && parts[1] == "charts":
		if !RequireMethod(w, r, http.MethodGet) {
			return
		}
		s.handleSessionChart(w, r, uc, id, parts[2])
	default:
		WriteError(w, http.StatusNotFound, "not found")
	}
}

// handleSessionCreate saves the advice bundle in the request body as a new
// session. The bundle must carry a valid profile and a completed analysis.
func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request, uc *common.UserContext) {
	bundle, ok := decodeBundle(w, r)
	if !ok {
		return
	}
	if msgs := bundle.Profile.Validate(); len(msgs) > 0 {
		verr := &models.ValidationError{Messages: msgs}
		WriteErrorWithCode(w, http.StatusBadRequest, verr.Error(), "invalid_profile")
		return
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode session bundle")
		WriteError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    uc.UserID,
		Data:      string(data),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.app.Storage.Sessions().Save(r.Context(), session); err != nil {
		s.logger.Error().Err(err).Str("user_id", uc.UserID).Msg("Failed to save session")
		WriteError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	s.logger.Info().
		Str("session_id", session.ID).
		Str("username", uc.Username).
		Msg("Session saved")

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"session": sessionSummary(session),
		},
	})
}

// handleSessionList returns the caller's sessions, newest first.
func (s *Server) handleSessionList(w http.ResponseWriter, r *http.Request, uc *common.UserContext) {
	sessions, err := s.app.Storage.Sessions().ListByUser(r.Context(), uc.UserID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", uc.UserID).Msg("Failed to list sessions")
		WriteError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}

	entries := make([]map[string]interface{}, 0, len(sessions))
	for _, session := range sessions {
		entries = append(entries, sessionSummary(session))
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"sessions": entries,
			"count":    len(entries),
		},
	})
}

// handleSessionLatest handles GET /api/sessions/latest — the caller's most
// recently saved session with its full bundle.
func (s *Server) handleSessionLatest(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	uc, ok := requireUser(w, r)
	if !ok {
		return
	}

	session, err := s.app.Storage.Sessions().Latest(r.Context(), uc.UserID)
	if err != nil {
		if errors.Is(err, interfaces.ErrSessionNotFound) {
			WriteError(w, http.StatusNotFound, "no sessions saved")
			return
		}
		s.logger.Error().Err(err).Str("user_id", uc.UserID).Msg("Failed to load latest session")
		WriteError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	s.writeSessionDetail(w, session)
}

// handleSessionGet handles GET /api/sessions/{id}.
func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request, uc *common.UserContext, id string) {
	session, ok := s.loadOwnedSession(w, r, uc, id)
	if !ok {
		return
	}
	s.writeSessionDetail(w, session)
}

// handleSessionDelete handles DELETE /api/sessions/{id}.
func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request, uc *common.UserContext, id string) {
	if _, ok := s.loadOwnedSession(w, r, uc, id); !ok {
		return
	}

	if err := s.app.Storage.Sessions().Delete(r.Context(), id); err != nil {
		s.logger.Error().Err(err).Str("session_id", id).Msg("Failed to delete session")
		WriteError(w, http.StatusInternalServerError, "failed to delete session")
		return
	}

	s.logger.Info().Str("session_id", id).Str("username", uc.Username).Msg("Session deleted")

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"deleted": id,
		},
	})
}

// handleSessionReport handles GET /api/sessions/{id}/report?variant= —
// render a markdown report from the stored bundle.
func (s *Server) handleSessionReport(w http.ResponseWriter, r *http.Request, uc *common.UserContext, id string) {
	session, ok := s.loadOwnedSession(w, r, uc, id)
	if !ok {
		return
	}
	bundle, ok := s.sessionBundle(w, session)
	if !ok {
		return
	}

	report, err := s.app.ReportService.Generate(r.Context(), bundle, r.URL.Query().Get("variant"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"session_id": session.ID,
			"report":     report,
		},
	})
}

// handleSessionChart handles GET /api/sessions/{id}/charts/{name} — render
// one chart from the stored bundle as a PNG.
func (s *Server) handleSessionChart(w http.ResponseWriter, r *http.Request, uc *common.UserContext, id, name string) {
	session, ok := s.loadOwnedSession(w, r, uc, id)
	if !ok {
		return
	}
	bundle, ok := s.sessionBundle(w, session)
	if !ok {
		return
	}

	data, err := s.app.ReportService.RenderChart(r.Context(), bundle, name)
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	WritePNG(w, data)
}

// --- Session helpers ---

// loadOwnedSession fetches a session and enforces ownership, writing the
// error response when the session cannot be served to the caller.
func (s *Server) loadOwnedSession(w http.ResponseWriter, r *http.Request, uc *common.UserContext, id string) (*models.Session, bool) {
	session, err := s.app.Storage.Sessions().Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrSessionNotFound) {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("session '%s' not found", id))
			return nil, false
		}
		s.logger.Error().Err(err).Str("session_id", id).Msg("Failed to load session")
		WriteError(w, http.StatusInternalServerError, "failed to load session")
		return nil, false
	}
	if session.UserID != uc.UserID {
		WriteError(w, http.StatusForbidden, "session belongs to another account")
		return nil, false
	}
	return session, true
}

// sessionBundle decodes the bundle stored in a session.
func (s *Server) sessionBundle(w http.ResponseWriter, session *models.Session) (*models.Bundle, bool) {
	var bundle models.Bundle
	if err := json.Unmarshal([]byte(session.Data), &bundle); err != nil {
		s.logger.Error().Err(err).Str("session_id", session.ID).Msg("Failed to decode stored session")
		WriteError(w, http.StatusInternalServerError, "stored session cannot be decoded")
		return nil, false
	}
	return &bundle, true
}

// writeSessionDetail responds with a session and its decoded bundle.
func (s *Server) writeSessionDetail(w http.ResponseWriter, session *models.Session) {
	bundle, ok := s.sessionBundle(w, session)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"session": map[string]interface{}{
				"id":         session.ID,
				"created_at": session.CreatedAt,
				"bundle":     bundle,
			},
		},
	})
}

// sessionSummary is the list representation of a saved session. The risk
// fields come from the stored bundle and are omitted when the payload cannot
// be decoded.
func sessionSummary(session *models.Session) map[string]interface{} {
	entry := map[string]interface{}{
		"id":         session.ID,
		"created_at": session.CreatedAt,
	}
	var bundle models.Bundle
	if err := json.Unmarshal([]byte(session.Data), &bundle); err == nil {
		entry["risk_category"] = bundle.Analysis.RiskCategory
		entry["expected_return"] = bundle.Analysis.ExpectedReturn
	}
	return entry
}
