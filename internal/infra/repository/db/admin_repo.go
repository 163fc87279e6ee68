package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepo struct {
	db *DbDao
}

func NewAdminRepo(db *DbDao) *AdminRepo {
	return &AdminRepo{db: db}
}

func (s *AdminRepo) CreateAdmin(ctx context.Context, admin *model.Admin) (*model.Admin, error) {
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminRepo) GetAdminByID(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	err := s.db.WithContext(ctx).First(&admin, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminRepo) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminRepo) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	err := s.db.WithContext(ctx).Order("admin_id").Find(&admins).Error
	return admins, err
}
