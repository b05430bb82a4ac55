package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-backend/internal/dto/request"
	"cinema-backend/internal/usecase"
	"cinema-backend/pkg/utils"

	"go.uber.org/zap"
)

type SaveHandler struct {
	service usecase.SaveService
	log     *zap.Logger
}

func NewSaveHandler(service usecase.SaveService, log *zap.Logger) *SaveHandler {
	return &SaveHandler{
		service: service,
		log:     log.With(zap.String("handler", "save")),
	}
}

// CreateSave handles POST /api/saves
func (h *SaveHandler) CreateSave(w http.ResponseWriter, r *http.Request) {
	var req request.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	save, err := h.service.CreateSave(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create save")
		return
	}

	utils.ResponseCreated(w, "success", save)
}

// DeleteSave handles DELETE /api/saves
func (h *SaveHandler) DeleteSave(w http.ResponseWriter, r *http.Request) {
	var req request.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.DeleteSave(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "delete save")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
