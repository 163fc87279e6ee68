package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type AdminHandler struct {
	adminService service.IAdminService
	auditService service.IAuditService
}

func NewAdminHandler(adminService service.IAdminService, auditService service.IAuditService) *AdminHandler {
	if adminService == nil {
		panic("adminService cannot be nil")
	}
	if auditService == nil {
		panic("auditService cannot be nil")
	}
	return &AdminHandler{
		adminService: adminService,
		auditService: auditService,
	}
}

// CreateAdmin 建立管理員帳號
//
// POST /admin/admins
func (a *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var createDTO dto.CreateAdminDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, err := a.adminService.CreateAdmin(r.Context(), createDTO.Username, createDTO.Email, createDTO.Password, createDTO.Role)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	a.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "create_admin",
		TableName: "admins",
		RecordID:  admin.AdminID,
		NewValues: admin,
	})
	api.CreatedJSON(w, admin)
}

// ListAdmins 管理員列表
//
// GET /admin/admins
func (a *AdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := a.adminService.ListAdmins(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, admins)
}

// GetDashboardStats 儀表板統計
//
// GET /admin/stats
func (a *AdminHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.adminService.GetDashboardStats(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, stats)
}

// ListAuditLogs 稽核記錄查詢，可用 table_name 與 admin_id 過濾
//
// GET /admin/audit-logs
func (a *AdminHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	offset, limit := paging(r)

	var adminID *uint
	if v := r.URL.Query().Get("admin_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, "invalid admin id")
			return
		}
		aid := uint(id)
		adminID = &aid
	}

	logs, total, err := a.auditService.ListAuditLogs(r.Context(), r.URL.Query().Get("table_name"), adminID, offset, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.PagedJSON(w, logs, offset, limit, total)
}
