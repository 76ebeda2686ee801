package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vaultpass/passcheck-go/internal/model"
)

var ErrFileNotFound = errors.New("vault file not found")

const schemaQuery = `
	CREATE TABLE IF NOT EXISTS vault_files (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		name       VARCHAR(255) NOT NULL UNIQUE,
		content    LONGBLOB NOT NULL,
		size       BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

// upsertQuery replaces the content of an existing file with the same name.
const upsertQuery = `
	INSERT INTO vault_files (name, content, size)
	VALUES (?, ?, ?)
	ON DUPLICATE KEY UPDATE
		content    = VALUES(content),
		size       = VALUES(size),
		updated_at = CURRENT_TIMESTAMP`

// VaultRepository handles vault file persistence.
type VaultRepository struct {
	db *sql.DB
}

// NewVaultRepository creates a new VaultRepository.
func NewVaultRepository(db *sql.DB) *VaultRepository {
	return &VaultRepository{db: db}
}

// EnsureSchema creates the vault_files table if it does not exist.
func (r *VaultRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schemaQuery)
	return err
}

// Save inserts a file or replaces the content of the file with the same name.
func (r *VaultRepository) Save(ctx context.Context, file *model.VaultFile) error {
	_, err := r.db.ExecContext(ctx, upsertQuery, file.Name, file.Content, file.Size)
	return err
}

// GetByName retrieves a file including its content.
func (r *VaultRepository) GetByName(ctx context.Context, name string) (*model.VaultFile, error) {
	query := `SELECT id, name, content, size, created_at, updated_at FROM vault_files WHERE name = ?`

	file := &model.VaultFile{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&file.ID, &file.Name, &file.Content, &file.Size, &file.CreatedAt, &file.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return file, nil
}

// List retrieves all files without content, newest first.
func (r *VaultRepository) List(ctx context.Context) ([]model.VaultFile, error) {
	query := `SELECT id, name, size, created_at, updated_at FROM vault_files ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []model.VaultFile
	for rows.Next() {
		var f model.VaultFile
		if err := rows.Scan(&f.ID, &f.Name, &f.Size, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, rows.Err()
}
