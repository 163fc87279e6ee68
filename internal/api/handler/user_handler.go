package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type UserHandler struct {
	userService  service.IUserService
	auditService service.IAuditService
}

func NewUserHandler(userService service.IUserService, auditService service.IAuditService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	if auditService == nil {
		panic("auditService cannot be nil")
	}
	return &UserHandler{
		userService:  userService,
		auditService: auditService,
	}
}

// UpdateProfile 更新個人資料
//
// PUT /users/me
func (u *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	if payload == nil {
		api.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var updateDTO dto.UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := u.userService.UpdateProfile(r.Context(), payload.UserID, updateDTO.Name, updateDTO.Phone, updateDTO.Address)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, user)
}

// Deactivate 停用自己的帳號
//
// DELETE /users/me
func (u *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	if payload == nil {
		api.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := u.userService.Deactivate(r.Context(), payload.UserID); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]string{"message": "account deactivated"})
}

// ListUsers 管理端使用者列表
//
// GET /admin/users
func (u *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	offset, limit := paging(r)
	users, total, err := u.userService.ListUsers(r.Context(), offset, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.PagedJSON(w, users, offset, limit, total)
}

// GetUser 管理端查詢單一使用者
//
// GET /admin/users/{id}
func (u *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := u.userService.GetUserByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, user)
}

// DeactivateUser 管理端停用使用者，寫稽核記錄
//
// DELETE /admin/users/{id}
func (u *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}

	before, err := u.userService.GetUserByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := u.userService.Deactivate(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	u.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "deactivate_user",
		TableName: "users",
		RecordID:  id,
		OldValues: before,
	})
	api.SuccessJSON(w, map[string]string{"message": "user deactivated"})
}
