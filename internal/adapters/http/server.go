package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"go.uber.org/multierr"

	api "github.com/C2IHub/proCURE2/internal/api"
	"github.com/C2IHub/proCURE2/internal/logger"
	"github.com/C2IHub/proCURE2/internal/ports"
	"github.com/C2IHub/proCURE2/internal/services/agents"
	"github.com/C2IHub/proCURE2/internal/services/audit"
	"github.com/C2IHub/proCURE2/internal/services/dashboard"
	"github.com/C2IHub/proCURE2/internal/services/requirements"
	"github.com/C2IHub/proCURE2/internal/services/rfp"
	"github.com/C2IHub/proCURE2/internal/services/suppliers"
	"github.com/C2IHub/proCURE2/internal/webdomain"
	"github.com/C2IHub/proCURE2/internal/workers/reassess"
)

// Deps carries everything the handlers call into.
type Deps struct {
	Suppliers    *suppliers.Service
	Requirements *requirements.Service
	Audit        *audit.Service
	Agents       *agents.Service
	Dashboard    *dashboard.Service
	Directory    ports.SupplierRepository
	Processor    reassess.Processor
	Clock        clockwork.Clock
	Log          *logger.Logger
	// Background reassessments run under this context.
	BaseContext context.Context
}

// Server implements the generated ServerInterface.
type Server struct {
	Deps

	// at most one reassessment run at a time
	running atomic.Bool
	runs    sync.WaitGroup
}

var _ api.ServerInterface = (*Server)(nil)

func New(d Deps) *Server {
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.BaseContext == nil {
		d.BaseContext = context.Background()
	}
	return &Server{Deps: d}
}

// Routes returns a chi.Router with middleware and the generated handlers mounted.
func (s *Server) Routes(requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.Log))
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}
	api.HandlerWithOptions(s, api.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		},
	})
	return r
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"requestId", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Wait blocks until background reassessments started over HTTP have returned.
func (s *Server) Wait() { s.runs.Wait() }

func (s *Server) GetHealthz(w http.ResponseWriter, _ *http.Request) {
	ok := "ok"
	writeJSON(w, http.StatusOK, api.HealthStatus{Status: &ok})
}

// Dashboard

func (s *Server) GetMetrics(w http.ResponseWriter, r *http.Request) {
	out, err := s.Dashboard.Metrics(r.Context())
	s.respond(w, out, err)
}

func (s *Server) GetComplianceDistribution(w http.ResponseWriter, r *http.Request) {
	out, err := s.Dashboard.ComplianceDistribution(r.Context())
	s.respond(w, out, err)
}

func (s *Server) ListActivity(w http.ResponseWriter, r *http.Request, params api.ListActivityParams) {
	out, err := s.Dashboard.RecentActivity(r.Context(), deref(params.Limit))
	s.respond(w, out, err)
}

// Suppliers

func (s *Server) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	out, err := s.Suppliers.List(r.Context())
	s.respond(w, out, err)
}

func (s *Server) LookupSupplier(w http.ResponseWriter, r *http.Request, params api.LookupSupplierParams) {
	out, err := s.Suppliers.Lookup(r.Context(), params.Url)
	s.respond(w, out, err)
}

func (s *Server) GetSupplier(w http.ResponseWriter, r *http.Request, id api.SupplierID) {
	out, err := s.Suppliers.Get(r.Context(), id)
	s.respond(w, out, err)
}

func (s *Server) GetSupplierCompliance(w http.ResponseWriter, r *http.Request, id api.SupplierID) {
	out, err := s.Suppliers.Compliance(r.Context(), id)
	s.respond(w, out, err)
}

func (s *Server) GetSupplierRisk(w http.ResponseWriter, r *http.Request, id api.SupplierID) {
	out, err := s.Suppliers.Risk(r.Context(), id)
	s.respond(w, out, err)
}

func (s *Server) GetSupplierHistory(w http.ResponseWriter, r *http.Request, id api.SupplierID, params api.GetSupplierHistoryParams) {
	out, err := s.Suppliers.History(r.Context(), id, deref(params.Limit))
	s.respond(w, out, err)
}

// Requirements

func (s *Server) ListRequirements(w http.ResponseWriter, r *http.Request, params api.ListRequirementsParams) {
	out, err := s.Requirements.Filter(r.Context(), deref(params.Category), deref(params.Region))
	s.respond(w, out, err)
}

func (s *Server) ListExpiringRequirements(w http.ResponseWriter, r *http.Request, params api.ListExpiringRequirementsParams) {
	out, err := s.Requirements.Expiring(r.Context(), deref(params.Days))
	s.respond(w, out, err)
}

func (s *Server) GetRequirementStatistics(w http.ResponseWriter, r *http.Request) {
	out, err := s.Requirements.Statistics(r.Context())
	s.respond(w, out, err)
}

// Audit trail

func (s *Server) ListAuditEvents(w http.ResponseWriter, r *http.Request, params api.ListAuditEventsParams) {
	page, err := s.Audit.List(r.Context(), deref(params.Page), deref(params.PageSize))
	if err != nil {
		s.fail(w, err)
		return
	}
	data := make([]interface{}, len(page.Events))
	for i, ev := range page.Events {
		data[i] = ev
	}
	writeJSON(w, http.StatusOK, api.Paginated{
		Data:     data,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		HasNext:  page.HasNext,
	})
}

// RFP builder

func (s *Server) SuggestRegulations(w http.ResponseWriter, r *http.Request) {
	var body api.SuggestRegulationsJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid body")
		return
	}
	out, err := rfp.Suggest(rfp.Selection{Categories: deref(body.Categories), Markets: deref(body.Markets)})
	s.respond(w, out, err)
}

// Agents

func (s *Server) ListAgents(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, s.Agents.List(), nil)
}

func (s *Server) GetAgent(w http.ResponseWriter, _ *http.Request, id string) {
	out, err := s.Agents.Get(id)
	s.respond(w, out, err)
}

func (s *Server) InvokeAgent(w http.ResponseWriter, r *http.Request, id string) {
	var body api.InvokeAgentJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid body")
		return
	}
	out, err := s.Agents.Invoke(r.Context(), id, agents.Request{
		Prompt:    body.Prompt,
		SessionID: deref(body.SessionId),
		Context:   deref(body.Context),
	})
	s.respond(w, out, err)
}

// Reassessments

func (s *Server) StartReassessment(w http.ResponseWriter, r *http.Request, params api.StartReassessmentParams) {
	if !s.running.CompareAndSwap(false, true) {
		writeError(w, http.StatusConflict, "conflict", "reassessment already running")
		return
	}
	if !deref(params.Wait) {
		s.runs.Add(1)
		go func() {
			defer s.runs.Done()
			defer s.running.Store(false)
			n, err := reassess.ProcessInline(s.BaseContext, s.Directory, s.Processor)
			if err != nil {
				s.Log.Warn("reassessment finished with errors", "processed", n, "error", err)
				return
			}
			s.Log.Info("reassessment finished", "processed", n)
		}()
		s.envelope(w, http.StatusAccepted, api.ReassessmentResult{Status: api.Accepted}, "reassessment started")
		return
	}
	// Blocking path, same code the background run uses.
	defer s.running.Store(false)
	n, err := reassess.ProcessInline(r.Context(), s.Directory, s.Processor)
	failed := len(multierr.Errors(err))
	if err != nil && n == 0 {
		s.fail(w, err)
		return
	}
	if err != nil {
		s.Log.Warn("reassessment finished with errors", "processed", n, "error", err)
	}
	s.envelope(w, http.StatusOK, api.ReassessmentResult{Status: api.Completed, Processed: &n, Failed: &failed}, "")
}

// helpers

func (s *Server) respond(w http.ResponseWriter, data any, err error) {
	if err != nil {
		s.fail(w, err)
		return
	}
	s.envelope(w, http.StatusOK, data, "")
}

func (s *Server) envelope(w http.ResponseWriter, status int, data any, message string) {
	env := api.Envelope{Data: data, Timestamp: s.Clock.Now().UTC()}
	if message != "" {
		env.Message = &message
	}
	writeJSON(w, status, env)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	var urlErr *url.Error
	switch {
	case errors.Is(err, suppliers.ErrNotFound), errors.Is(err, agents.ErrUnknownAgent):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, webdomain.ErrNoHost), errors.Is(err, rfp.ErrEmptySelection), errors.Is(err, agents.ErrEmptyPrompt),
		errors.As(err, &urlErr):
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		s.Log.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, api.Error{Code: code, Message: msg})
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
