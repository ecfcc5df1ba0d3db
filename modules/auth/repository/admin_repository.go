package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"rsvp-manager/core/database"
	"rsvp-manager/core/logger"
	"rsvp-manager/modules/auth/entity"
)

const adminColumns = `id, email, password, name, google_linked, created_at, updated_at`

type AdminRepository struct {
	db database.IDatabase
}

func NewAdminRepository(db database.IDatabase) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByEmail returns nil, nil when no account exists for the email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE email = $1`
	var admin entity.AdminUser
	if err := r.db.GetContext(ctx, &admin, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("AdminRepository:GetByEmail:Error:", err)
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1`
	var admin entity.AdminUser
	if err := r.db.GetContext(ctx, &admin, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("AdminRepository:GetByID:Error:", err)
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *entity.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, password, name, google_linked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}

	err := r.db.ExecContext(ctx, query,
		admin.ID, admin.Email, admin.Password, admin.Name, admin.GoogleLinked,
		admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		logger.Error("AdminRepository:Create:Error:", err)
	}
	return err
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	query := `UPDATE admin_users SET password = $2, updated_at = $3 WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id, hashedPassword, time.Now())
	if err != nil {
		logger.Error("AdminRepository:UpdatePassword:Error:", err)
	}
	return err
}

func (r *AdminRepository) SetGoogleLinked(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE admin_users SET google_linked = TRUE, updated_at = $2 WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		logger.Error("AdminRepository:SetGoogleLinked:Error:", err)
	}
	return err
}
