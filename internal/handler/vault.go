package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/service"
)

// maxUploadBody allows for the base64 overhead of a MaxFileSize upload.
const maxUploadBody = service.MaxFileSize*4/3 + 1<<20

// VaultHandler handles HTTP requests for the file vault.
type VaultHandler struct {
	service *service.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(svc *service.VaultService) *VaultHandler {
	return &VaultHandler{service: svc}
}

// HandleUnlock handles POST /api/v1/vault/unlock requests.
func (h *VaultHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	var req model.UnlockRequest
	if err := decodeJSON(w, r, 1<<20, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Unlock(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleListFiles handles GET /api/v1/vault/files requests.
func (h *VaultHandler) HandleListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, files)
}

// HandleUploadFile handles POST /api/v1/vault/files requests.
func (h *VaultHandler) HandleUploadFile(w http.ResponseWriter, r *http.Request) {
	var req model.UploadFileRequest
	if err := decodeJSON(w, r, maxUploadBody, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Upload(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileNameRequired),
			errors.Is(err, service.ErrInvalidFileName),
			errors.Is(err, service.ErrInvalidContent):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrFileTooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleGetFile handles GET /api/v1/vault/files/{name} requests.
func (h *VaultHandler) HandleGetFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid file name"))
		return
	}

	resp, err := h.service.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
