package handler

import (
	"net/http"

	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/service"
)

// AnalyzeHandler handles HTTP requests for password analysis.
type AnalyzeHandler struct {
	service *service.AnalyzerService
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(svc *service.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{service: svc}
}

// HandleAnalyze handles POST /api/v1/analyze requests.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := decodeJSON(w, r, 64<<10, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.Password == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("password is required"))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Analyze(*req.Password))
}
