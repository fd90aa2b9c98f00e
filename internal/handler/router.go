package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/org-structure-records/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	deptHandler   *DepartmentHandler
	empHandler    *EmployeeHandler
	reviewHandler *ReviewHandler
}

// NewRouter создаёт новый роутер
func NewRouter(deptHandler *DepartmentHandler, empHandler *EmployeeHandler, reviewHandler *ReviewHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:           http.NewServeMux(),
		logger:        logger,
		deptHandler:   deptHandler,
		empHandler:    empHandler,
		reviewHandler: reviewHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/departments/", r.departmentsRouter)
	r.mux.HandleFunc("/employees/", r.employeesRouter)
	r.mux.HandleFunc("/reviews/", r.reviewsRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

// departmentsRouter обрабатывает все запросы к /departments/
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	parts := pathParts(req, "/departments")

	switch {
	case len(parts) == 0:
		switch req.Method {
		case http.MethodPost:
			r.deptHandler.Create(w, req)
		case http.MethodGet:
			r.deptHandler.List(w, req)
		default:
			methodNotAllowed(w)
		}
	case len(parts) == 1:
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.deptHandler.GetByID(w, req)
	default:
		notFound(w)
	}
}

// employeesRouter обрабатывает /employees/, /employees/{id} и /employees/{id}/reviews
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	parts := pathParts(req, "/employees")

	switch {
	case len(parts) == 0:
		switch req.Method {
		case http.MethodPost:
			r.empHandler.Create(w, req)
		case http.MethodGet:
			r.empHandler.List(w, req)
		default:
			methodNotAllowed(w)
		}
	case len(parts) == 1:
		switch req.Method {
		case http.MethodGet:
			r.empHandler.GetByID(w, req)
		case http.MethodPatch:
			r.empHandler.Update(w, req)
		case http.MethodDelete:
			r.empHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}
	case len(parts) == 2 && parts[1] == "reviews":
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.empHandler.Reviews(w, req)
	default:
		notFound(w)
	}
}

// reviewsRouter обрабатывает все запросы к /reviews/
func (r *Router) reviewsRouter(w http.ResponseWriter, req *http.Request) {
	parts := pathParts(req, "/reviews")

	switch {
	case len(parts) == 0:
		switch req.Method {
		case http.MethodPost:
			r.reviewHandler.Create(w, req)
		case http.MethodGet:
			r.reviewHandler.List(w, req)
		default:
			methodNotAllowed(w)
		}
	case len(parts) == 1:
		switch req.Method {
		case http.MethodGet:
			r.reviewHandler.GetByID(w, req)
		case http.MethodPatch:
			r.reviewHandler.Update(w, req)
		case http.MethodDelete:
			r.reviewHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}
	default:
		notFound(w)
	}
}

func pathParts(req *http.Request, prefix string) []string {
	path := strings.Trim(strings.TrimPrefix(req.URL.Path, prefix), "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}
