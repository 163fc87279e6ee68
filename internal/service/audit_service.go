package service

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/rs/zerolog"
)

type RecordAuditParams struct {
	AdminID   *uint
	UserID    *uint
	Action    string
	TableName string
	RecordID  uint
	OldValues any
	NewValues any
}

type IAuditService interface {
	// Record 寫入稽核記錄，old/new 會序列化為 JSON
	// 稽核寫入失敗不阻斷主流程，呼叫端不需處理錯誤
	Record(ctx context.Context, params RecordAuditParams)
	ListAuditLogs(ctx context.Context, tableName string, adminID *uint, offset, limit int) ([]model.AuditLog, int64, error)
}

type AuditService struct {
	store  db.Store
	logger zerolog.Logger
}

func NewAuditService(store db.Store, logger zerolog.Logger) IAuditService {
	if reflect.ValueOf(store).IsNil() {
		panic("audit service initialization failed: store cannot be nil")
	}
	return &AuditService{
		store:  store,
		logger: logger.With().Str("component", "audit_service").Logger(),
	}
}

func (a *AuditService) Record(ctx context.Context, params RecordAuditParams) {
	log := &model.AuditLog{
		AdminID:   params.AdminID,
		UserID:    params.UserID,
		Action:    params.Action,
		TableName: params.TableName,
		RecordID:  params.RecordID,
		IPAddress: util.GetClientIPFromContext(ctx),
		UserAgent: util.GetUserAgentFromContext(ctx),
	}

	if params.OldValues != nil {
		if data, err := json.Marshal(params.OldValues); err == nil {
			log.OldValues = string(data)
		}
	}
	if params.NewValues != nil {
		if data, err := json.Marshal(params.NewValues); err == nil {
			log.NewValues = string(data)
		}
	}

	if err := a.store.CreateAuditLog(ctx, log); err != nil {
		a.logger.Error().Err(err).
			Str("action", params.Action).
			Str("table", params.TableName).
			Msg("write audit log failed")
	}
}

func (a *AuditService) ListAuditLogs(ctx context.Context, tableName string, adminID *uint, offset, limit int) ([]model.AuditLog, int64, error) {
	return a.store.ListAuditLogs(ctx, tableName, adminID, offset, limit)
}

var _ IAuditService = (*AuditService)(nil)
