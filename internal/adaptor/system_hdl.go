package adaptor

import (
	"net/http"
	"time"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/dto/response"
	"mobile-mechanic/pkg/utils"

	"go.uber.org/zap"
)

type SystemHandler struct {
	log *zap.Logger
}

func NewSystemHandler(log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		log: log.With(zap.String("handler", "system")),
	}
}

// Health handles GET /api/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseOK(w, response.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Pricing handles GET /api/pricing. The table is a process-wide constant, so
// repeated calls return identical output.
func (h *SystemHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	utils.ResponseOK(w, entity.Pricing)
}

// NotFound is the JSON fallthrough for unknown routes.
func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "Endpoint not found")
}
