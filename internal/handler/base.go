package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/org-structure-records/internal/domain"
	"github.com/org-structure-records/internal/dto"
)

// Код PostgreSQL для нарушения внешнего ключа
const pgForeignKeyViolation = "23503"

// responder содержит общие для всех хендлеров помощники
type responder struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	return responder{
		validator: validator.New(),
		logger:    logger,
	}
}

// decode читает тело запроса и проверяет его теги validate
func (h responder) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}

	return true
}

// extractID достаёт идентификатор из пути вида /{resource}/{id}[/...]
func (h responder) extractID(r *http.Request, resource string) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, "/"+resource+"/")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		return 0, errors.New("id is required")
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

func (h responder) handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var pgErr *pgconn.PgError
	var sqliteErr sqlite3.Error

	switch {
	case errors.Is(err, domain.ErrDepartmentNotFound):
		h.respondError(w, http.StatusNotFound, "department not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrReviewNotFound):
		h.respondError(w, http.StatusNotFound, "review not found", "")
	case errors.As(err, &validationErr) && validationErr.IsReferential():
		h.respondError(w, http.StatusUnprocessableEntity, "referenced record does not exist", validationErr.Error())
	case errors.As(err, &validationErr):
		h.respondError(w, http.StatusBadRequest, "validation error", validationErr.Error())
	case errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation:
		h.respondError(w, http.StatusConflict, "record is still referenced", pgErr.ConstraintName)
	case errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
		h.respondError(w, http.StatusConflict, "record is still referenced", sqliteErr.Error())
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
