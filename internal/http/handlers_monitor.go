// Package httpx provides the HTTP surface of the publication monitor API.
package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gs1ops/edimon/internal/domain/model"
	"github.com/gs1ops/edimon/internal/service"
)

// MonitorHandlers provides HTTP handlers for the publication monitor.
type MonitorHandlers struct {
	Svc *service.MonitorService

	// DefaultPlatform applies when a request does not name a platform.
	DefaultPlatform string
}

// ListJobs handles GET /api/monitor/jobs: one full refresh for the calling
// session, honoring its persisted page and filter toggles.
func (h *MonitorHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	q, err := ParsePageQuery(r, h.DefaultPlatform)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	view, err := h.Svc.View(r.Context(), SessionID(r.Context()), q)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// JobParameters handles GET /api/monitor/jobs/{id}/parameters: the lazy
// drill-down into one job's raw XML payload.
func (h *MonitorHandlers) JobParameters(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("job id must be an integer"),
		})
		return
	}

	xmlText, err := h.Svc.Parameters(r.Context(), jobID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"job_id": jobID, "parameters_xml": xmlText})
}

// GetFilter handles GET /api/monitor/filter.
func (h *MonitorHandlers) GetFilter(w http.ResponseWriter, r *http.Request) {
	active, err := h.Svc.ActiveFilter(r.Context(), SessionID(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"filter": string(active)})
}

type setFilterRequest struct {
	Filter model.FilterToggle `json:"filter"`
}

// PutFilter handles PUT /api/monitor/filter: flips the session's view filter.
// The toggle semantics are last-change-wins, so turning one filter on turns
// the other off.
func (h *MonitorHandlers) PutFilter(w http.ResponseWriter, r *http.Request) {
	var req setFilterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	st, err := h.Svc.SetFilter(r.Context(), SessionID(r.Context()), req.Filter)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"filter": string(st.Active())})
}

// NextPage handles POST /api/monitor/page/next. When the session is already
// on the last page the request succeeds and re-renders that page.
func (h *MonitorHandlers) NextPage(w http.ResponseWriter, r *http.Request) {
	h.stepPage(w, r, h.Svc.NextPage)
}

// PrevPage handles POST /api/monitor/page/prev.
func (h *MonitorHandlers) PrevPage(w http.ResponseWriter, r *http.Request) {
	h.stepPage(w, r, h.Svc.PreviousPage)
}

// JumpPage handles POST /api/monitor/page/{n}: a direct jump that is
// validated against the current total before the session moves.
func (h *MonitorHandlers) JumpPage(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("page number must be an integer"),
		})
		return
	}

	q, err := ParsePageQuery(r, h.DefaultPlatform)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	view, err := h.Svc.GoToPage(r.Context(), SessionID(r.Context()), n, q)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// Platforms handles GET /api/monitor/platforms: the fixed catalog the
// pipeline publishes through.
func (h *MonitorHandlers) Platforms(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"platforms": model.KnownPlatforms()})
}

type stepFunc func(ctx context.Context, sessionID string, q model.PageQuery) (*model.MonitorView, error)

func (h *MonitorHandlers) stepPage(w http.ResponseWriter, r *http.Request, step stepFunc) {
	q, err := ParsePageQuery(r, h.DefaultPlatform)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	view, err := step(r.Context(), SessionID(r.Context()), q)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}
