package model

import "time"

// VaultFile represents a stored vault file in the database.
type VaultFile struct {
	ID        int64
	Name      string
	Content   []byte
	Size      int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnlockRequest carries the vault secret.
type UnlockRequest struct {
	Password string `json:"password"`
}

// UnlockResponse carries a vault session token.
type UnlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UploadFileRequest represents a file upload.
type UploadFileRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"` // base64 encoded
}

// VaultFileInfo describes a file without its content.
type VaultFileInfo struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VaultFileResponse returns a file with its content.
type VaultFileResponse struct {
	VaultFileInfo
	Content string `json:"content"` // base64 encoded
}
