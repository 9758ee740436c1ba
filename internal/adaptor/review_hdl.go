package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"glamhaven/internal/dto/request"
	"glamhaven/internal/usecase"
	"glamhaven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetSalonReviews handles GET /api/reviews/salon/{salonId}
func (h *ReviewHandler) GetSalonReviews(w http.ResponseWriter, r *http.Request) {
	salonID := utils.ParseInt(chi.URLParam(r, "salonId"), 0)
	if salonID <= 0 {
		utils.ResponseBadRequest(w, "Invalid salon ID", nil)
		return
	}

	reviews, err := h.service.GetSalonReviews(r.Context(), salonID)
	if err != nil {
		h.handleServiceError(w, err, "list reviews by salon")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetUserReviews handles GET /api/reviews/user/{userId}
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID := utils.ParseInt(chi.URLParam(r, "userId"), 0)
	if userID <= 0 {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	reviews, err := h.service.GetUserReviews(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list reviews by user")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
