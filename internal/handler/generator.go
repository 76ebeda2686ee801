package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/service"
)

// maxGenerateLength bounds the password length a single request may ask for.
const maxGenerateLength = 1024

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// selects the default length.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		if err := decodeJSON(w, r, 1<<20, &req); err != nil && !errors.Is(err, errEmptyBody) {
			writeDecodeError(w, err)
			return
		}
	}

	h.generate(w, req)
}

// HandleGenerateQuery handles GET /api/v1/generate?length=N requests.
func (h *GeneratorHandler) HandleGenerateQuery(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if raw := r.URL.Query().Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("length must be an integer"))
			return
		}
		req.Length = &n
	}

	h.generate(w, req)
}

func (h *GeneratorHandler) generate(w http.ResponseWriter, req model.GenerateRequest) {
	if req.Length != nil && *req.Length > maxGenerateLength {
		writeJSON(w, http.StatusBadRequest, errorResponse(fmt.Sprintf("length must be at most %d", maxGenerateLength)))
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidArgument) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
