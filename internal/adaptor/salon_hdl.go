package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"glamhaven/internal/data/repository"
	"glamhaven/internal/dto/request"
	"glamhaven/internal/usecase"
	"glamhaven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SalonHandler struct {
	service usecase.SalonService
	log     *zap.Logger
}

func NewSalonHandler(service usecase.SalonService, log *zap.Logger) *SalonHandler {
	return &SalonHandler{
		service: service,
		log:     log.With(zap.String("handler", "salon")),
	}
}

// GetSalons handles GET /api/salons with optional equality filters.
// Absent query parameters do not constrain the result.
func (h *SalonHandler) GetSalons(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.SalonFilter{
		IsLadiesOnly:    utils.ParseBoolPtr(query.Get("isLadiesOnly")),
		HasPrivateRooms: utils.ParseBoolPtr(query.Get("hasPrivateRooms")),
		IsHijabFriendly: utils.ParseBoolPtr(query.Get("isHijabFriendly")),
	}
	if city := query.Get("city"); city != "" {
		filter.City = &city
	}

	salons, err := h.service.GetSalons(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "list salons")
		return
	}

	utils.ResponseSuccess(w, "success", salons)
}

// GetSalon handles GET /api/salons/{id}
func (h *SalonHandler) GetSalon(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseInt(chi.URLParam(r, "id"), 0)
	if id <= 0 {
		utils.ResponseBadRequest(w, "Invalid salon ID", nil)
		return
	}

	salon, err := h.service.GetSalon(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get salon")
		return
	}

	utils.ResponseSuccess(w, "success", salon)
}

// GetSalonsByOwner handles GET /api/salons/owner/{ownerId}
func (h *SalonHandler) GetSalonsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := utils.ParseInt(chi.URLParam(r, "ownerId"), 0)
	if ownerID <= 0 {
		utils.ResponseBadRequest(w, "Invalid owner ID", nil)
		return
	}

	salons, err := h.service.GetSalonsByOwner(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err, "list salons by owner")
		return
	}

	utils.ResponseSuccess(w, "success", salons)
}

// CreateSalon handles POST /api/salons
func (h *SalonHandler) CreateSalon(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSalonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	salon, err := h.service.CreateSalon(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create salon")
		return
	}

	utils.ResponseCreated(w, "success", salon)
}

// UpdateSalon handles PATCH /api/salons/{id}
func (h *SalonHandler) UpdateSalon(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseInt(chi.URLParam(r, "id"), 0)
	if id <= 0 {
		utils.ResponseBadRequest(w, "Invalid salon ID", nil)
		return
	}

	var req request.UpdateSalonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	salon, err := h.service.UpdateSalon(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update salon")
		return
	}

	utils.ResponseSuccess(w, "success", salon)
}

// GetServices handles GET /api/services/salon/{salonId}
func (h *SalonHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	salonID := utils.ParseInt(chi.URLParam(r, "salonId"), 0)
	if salonID <= 0 {
		utils.ResponseBadRequest(w, "Invalid salon ID", nil)
		return
	}

	services, err := h.service.GetServicesBySalon(r.Context(), salonID)
	if err != nil {
		h.handleServiceError(w, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// CreateService handles POST /api/services
func (h *SalonHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	service, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create service")
		return
	}

	utils.ResponseCreated(w, "success", service)
}

// UpdateService handles PATCH /api/services/{id}
func (h *SalonHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseInt(chi.URLParam(r, "id"), 0)
	if id <= 0 {
		utils.ResponseBadRequest(w, "Invalid service ID", nil)
		return
	}

	var req request.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	service, err := h.service.UpdateService(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// DeleteService handles DELETE /api/services/{id}
func (h *SalonHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseInt(chi.URLParam(r, "id"), 0)
	if id <= 0 {
		utils.ResponseBadRequest(w, "Invalid service ID", nil)
		return
	}

	if err := h.service.DeleteService(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *SalonHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
