// ABOUTME: HTTP handlers for the converter page and its JSON API.
// ABOUTME: Handlers translate requests into convert events and answer with the session's new state.
package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2389-research/pxrem/convert"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionCookie names the cookie holding the browser's session ID.
const SessionCookie = "pxrem_session"

type sessionKey struct{}

// sessionMiddleware resolves the browser's session from its cookie, creating
// a new one when the cookie is missing or the session has expired.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *Session
		if c, err := r.Cookie(SessionCookie); err == nil {
			sess, _ = s.store.Get(c.Value)
		}
		if sess == nil {
			sess = s.store.Create()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteStrictMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

func sessionFrom(r *http.Request) *Session {
	return r.Context().Value(sessionKey{}).(*Session)
}

// rowResponse is a reference table row with its display labels.
type rowResponse struct {
	Px       float64 `json:"px"`
	Rem      float64 `json:"rem"`
	PxLabel  string  `json:"px_label"`
	RemLabel string  `json:"rem_label"`
}

// stateResponse is the JSON view of a converter state.
type stateResponse struct {
	convert.State
	Source string        `json:"source"`
	Table  []rowResponse `json:"table"`
}

func newRows(rows []convert.Row) []rowResponse {
	out := make([]rowResponse, len(rows))
	for i, r := range rows {
		out[i] = rowResponse{Px: r.Px, Rem: r.Rem, PxLabel: r.PxLabel(), RemLabel: r.RemLabel()}
	}
	return out
}

func newStateResponse(st convert.State) stateResponse {
	return stateResponse{State: st, Source: st.Source.String(), Table: newRows(st.Table())}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleHealth returns a JSON health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex renders the converter page for the session's current state.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := sessionFrom(r).State()
	data := PageData{
		Title:        "PX to REM Converter",
		State:        st,
		Table:        st.Table(),
		Guide:        s.guide,
		CopyWindowMS: s.copyWindow.Milliseconds(),
	}
	if err := s.templates.Render(w, "index.html", data); err != nil {
		s.logger.Error("rendering index", zap.Error(err), zap.String("request_id", RequestID(r.Context())))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// handleState returns the session's state as JSON.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newStateResponse(sessionFrom(r).State()))
}

// editRequest is the body of the px, rem, and base edit endpoints. Client and
// Seq are optional; a page sends them so late arrivals cannot undo newer edits.
type editRequest struct {
	Value  string `json:"value"`
	Client string `json:"client,omitempty"`
	Seq    uint64 `json:"seq,omitempty"`
}

// handleEdit returns a handler applying an edit event of kind with the
// request's raw field text. Unparseable text is not an error: it clears the
// other field, or for the base leaves the state unchanged.
func (s *Server) handleEdit(kind convert.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req editRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		st, applied := sessionFrom(r).ApplyEdit(convert.Event{Kind: kind, Value: req.Value}, req.Client, req.Seq)
		if !applied {
			s.logger.Debug("stale edit dropped",
				zap.String("path", r.URL.Path),
				zap.String("client", req.Client),
				zap.Uint64("seq", req.Seq),
			)
		}
		writeJSON(w, http.StatusOK, newStateResponse(st))
	}
}

// handleToggleSettings shows or hides the base size settings.
func (s *Server) handleToggleSettings(w http.ResponseWriter, r *http.Request) {
	st := sessionFrom(r).Apply(convert.Event{Kind: convert.EventSettingsToggled})
	writeJSON(w, http.StatusOK, newStateResponse(st))
}

// handleTable returns the reference table for the base query parameter, or
// for the session's base when it is absent.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	base := sessionFrom(r).State().Base
	if raw := r.URL.Query().Get("base"); raw != "" {
		v, ok := convert.ParseValue(raw)
		if !ok || !convert.ValidBase(v) {
			writeError(w, http.StatusBadRequest, "base must be a positive number")
			return
		}
		base = v
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"base": base,
		"rows": newRows(convert.GenerateTable(base)),
	})
}

// handleSelectRow loads a reference table row into the converter fields.
func (s *Server) handleSelectRow(w http.ResponseWriter, r *http.Request) {
	px, ok := convert.ParseValue(chi.URLParam(r, "px"))
	if !ok {
		writeError(w, http.StatusBadRequest, "px must be a number")
		return
	}
	sess := sessionFrom(r)
	row, ok := convert.FindRow(px, sess.State().Base)
	if !ok {
		writeError(w, http.StatusNotFound, "no table row for that px value")
		return
	}
	st := sess.Apply(convert.Event{Kind: convert.EventRowSelected, Row: row})
	writeJSON(w, http.StatusOK, newStateResponse(st))
}

// handleCopy returns the clipboard text for a field. The browser performs the
// clipboard write itself.
func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	field, ok := convert.ParseField(chi.URLParam(r, "field"))
	if !ok {
		writeError(w, http.StatusBadRequest, "field must be px or rem")
		return
	}
	text, ok := sessionFrom(r).State().CopyText(field)
	if !ok {
		writeError(w, http.StatusNotFound, "field is empty")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
