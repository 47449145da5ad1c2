package auth

import (
	"context"
	"fitcoach-backend/entities"

	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		CreateAdmin(ctx context.Context, admin *entities.Admin) error
		GetAdminByEmail(ctx context.Context, email string) (*entities.Admin, error)
		GetAdminByID(ctx context.Context, id string) (*entities.Admin, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateAdmin(ctx context.Context, admin *entities.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) GetAdminByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	var admin entities.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetAdminByID(ctx context.Context, id string) (*entities.Admin, error) {
	var admin entities.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
