package handler

import (
	"log/slog"
	"net/http"

	"github.com/org-structure-records/internal/dto"
	"github.com/org-structure-records/internal/service"
)

type ReviewHandler struct {
	responder
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		responder:     newResponder(logger),
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	review, err := h.reviewService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reviewID(w, r)
	if !ok {
		return
	}

	review, err := h.reviewService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reviewID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	review, err := h.reviewService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reviewID(w, r)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) reviewID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := h.extractID(r, "reviews")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid review id", err.Error())
		return 0, false
	}
	return id, true
}
