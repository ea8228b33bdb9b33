package httpx

import (
	"log/slog"
	"net/http"

	"github.com/gs1ops/edimon/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Monitor *service.MonitorService

	// DefaultPlatform is the platform preselected when a request names none.
	DefaultPlatform string
	// CookieDomain scopes the session cookie.
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	monitorHandlers := &MonitorHandlers{
		Svc:             services.Monitor,
		DefaultPlatform: services.DefaultPlatform,
	}
	registerMonitorRoutes(mux, monitorHandlers)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Every monitor route is session-scoped; the session cookie is the only
	// identity the API carries.
	return Session(services.CookieDomain)(mux)
}

func registerMonitorRoutes(mux *http.ServeMux, h *MonitorHandlers) {
	mux.HandleFunc("GET /api/monitor/jobs", h.ListJobs)
	mux.HandleFunc("GET /api/monitor/jobs/{id}/parameters", h.JobParameters)
	mux.HandleFunc("GET /api/monitor/platforms", h.Platforms)
	mux.HandleFunc("GET /api/monitor/filter", h.GetFilter)
	mux.HandleFunc("PUT /api/monitor/filter", h.PutFilter)
	mux.HandleFunc("POST /api/monitor/page/next", h.NextPage)
	mux.HandleFunc("POST /api/monitor/page/prev", h.PrevPage)
	mux.HandleFunc("POST /api/monitor/page/{n}", h.JumpPage)
}
