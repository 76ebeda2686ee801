package service

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/repository"
)

// MaxFileSize is the largest decoded upload accepted by the vault.
const MaxFileSize = 10 << 20

const maxFileNameLength = 255

var (
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid vault password")
	ErrFileNameRequired   = errors.New("name is required")
	ErrInvalidFileName    = errors.New("name must be at most 255 bytes and contain no path separators")
	ErrInvalidContent     = errors.New("content must be base64 encoded")
	ErrFileTooLarge       = errors.New("file exceeds 10MB")
	ErrFileNotFound       = errors.New("vault file not found")
)

// FileStore persists vault files.
type FileStore interface {
	Save(ctx context.Context, file *model.VaultFile) error
	GetByName(ctx context.Context, name string) (*model.VaultFile, error)
	List(ctx context.Context) ([]model.VaultFile, error)
}

// VaultService gates file storage behind a single hashed secret.
type VaultService struct {
	store      FileStore
	secretHash string
	jwtSecret  string
	jwtExpiry  time.Duration
}

// NewVaultService creates a new VaultService. secretHash must be an
// Argon2id PHC string.
func NewVaultService(store FileStore, secretHash, jwtSecret string, jwtExpiry time.Duration) *VaultService {
	return &VaultService{
		store:      store,
		secretHash: secretHash,
		jwtSecret:  jwtSecret,
		jwtExpiry:  jwtExpiry,
	}
}

// Unlock verifies the vault password and issues a session token.
// A wrong password changes nothing.
func (s *VaultService) Unlock(ctx context.Context, req model.UnlockRequest) (model.UnlockResponse, error) {
	if req.Password == "" {
		return model.UnlockResponse{}, ErrPasswordRequired
	}

	ok, err := crypto.VerifySecret(req.Password, s.secretHash)
	if err != nil {
		return model.UnlockResponse{}, err
	}
	if !ok {
		slog.WarnContext(ctx, "vault unlock rejected")
		return model.UnlockResponse{}, ErrInvalidCredentials
	}

	token, expires, err := crypto.IssueSessionToken(s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.UnlockResponse{}, err
	}

	return model.UnlockResponse{Token: token, ExpiresAt: expires.UTC()}, nil
}

// Upload stores a file, replacing any file with the same name.
func (s *VaultService) Upload(ctx context.Context, req model.UploadFileRequest) (model.VaultFileInfo, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateFileName(name); err != nil {
		return model.VaultFileInfo{}, err
	}

	if base64.StdEncoding.DecodedLen(len(req.Content)) > MaxFileSize+2 {
		return model.VaultFileInfo{}, ErrFileTooLarge
	}
	content, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return model.VaultFileInfo{}, ErrInvalidContent
	}
	if len(content) > MaxFileSize {
		return model.VaultFileInfo{}, ErrFileTooLarge
	}

	file := model.VaultFile{
		Name:    name,
		Content: content,
		Size:    int64(len(content)),
	}
	if err := s.store.Save(ctx, &file); err != nil {
		return model.VaultFileInfo{}, err
	}

	// Re-read so timestamps reflect the stored row, which keeps created_at on replace.
	stored, err := s.store.GetByName(ctx, name)
	if err != nil {
		return model.VaultFileInfo{}, err
	}
	slog.InfoContext(ctx, "vault file stored", "name", name, "size", stored.Size)

	return fileToInfo(*stored), nil
}

// List returns metadata for every stored file, newest first.
func (s *VaultService) List(ctx context.Context) ([]model.VaultFileInfo, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return filesToInfo(files), nil
}

// Get returns a single file with its content.
func (s *VaultService) Get(ctx context.Context, name string) (model.VaultFileResponse, error) {
	file, err := s.store.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return model.VaultFileResponse{}, ErrFileNotFound
		}
		return model.VaultFileResponse{}, err
	}

	return model.VaultFileResponse{
		VaultFileInfo: fileToInfo(*file),
		Content:       base64.StdEncoding.EncodeToString(file.Content),
	}, nil
}

func validateFileName(name string) error {
	if name == "" {
		return ErrFileNameRequired
	}
	if len(name) > maxFileNameLength || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return ErrInvalidFileName
	}
	return nil
}

func fileToInfo(f model.VaultFile) model.VaultFileInfo {
	return model.VaultFileInfo{
		Name:      f.Name,
		Size:      f.Size,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// filesToInfo never returns nil so empty vaults encode as [].
func filesToInfo(files []model.VaultFile) []model.VaultFileInfo {
	result := make([]model.VaultFileInfo, len(files))
	for i, f := range files {
		result[i] = fileToInfo(f)
	}
	return result
}
