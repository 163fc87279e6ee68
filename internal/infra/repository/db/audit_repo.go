package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
)

type AuditRepo struct {
	db *DbDao
}

func NewAuditRepo(db *DbDao) *AuditRepo {
	return &AuditRepo{db: db}
}

func (s *AuditRepo) CreateAuditLog(ctx context.Context, log *model.AuditLog) error {
	return s.db.WithContext(ctx).Create(log).Error
}

// ListAuditLogs tableName 為空字串表示不過濾
func (s *AuditRepo) ListAuditLogs(ctx context.Context, tableName string, adminID *uint, offset, limit int) ([]model.AuditLog, int64, error) {
	var logs []model.AuditLog
	var total int64

	query := s.db.WithContext(ctx).Model(&model.AuditLog{})
	if tableName != "" {
		query = query.Where("table_name = ?", tableName)
	}
	if adminID != nil {
		query = query.Where("admin_id = ?", *adminID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("audit_id DESC").Find(&logs).Error
	return logs, total, err
}
