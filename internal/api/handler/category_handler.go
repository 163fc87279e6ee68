package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CategoryHandler struct {
	categoryService service.ICategoryService
	auditService    service.IAuditService
}

func NewCategoryHandler(categoryService service.ICategoryService, auditService service.IAuditService) *CategoryHandler {
	if categoryService == nil {
		panic("categoryService cannot be nil")
	}
	if auditService == nil {
		panic("auditService cannot be nil")
	}
	return &CategoryHandler{
		categoryService: categoryService,
		auditService:    auditService,
	}
}

// ListCategories 分類列表
//
// GET /categories
func (c *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	offset, limit := paging(r)
	categories, err := c.categoryService.ListCategories(r.Context(), offset, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, categories)
}

// GetCategory 單一分類
//
// GET /categories/{id}
func (c *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := c.categoryService.GetCategoryByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, category)
}

// CreateCategory 建立分類，管理端操作
//
// POST /admin/categories
func (c *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var createDTO dto.CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := c.categoryService.CreateCategory(r.Context(), createDTO.Name, createDTO.Description)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	c.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "create_category",
		TableName: "categories",
		RecordID:  category.CategoryID,
		NewValues: category,
	})
	api.CreatedJSON(w, category)
}

// UpdateCategory 更新分類
//
// PUT /admin/categories/{id}
func (c *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var updateDTO dto.UpdateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	before, err := c.categoryService.GetCategoryByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	category, err := c.categoryService.UpdateCategory(r.Context(), id, updateDTO.Name, updateDTO.Description)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	c.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "update_category",
		TableName: "categories",
		RecordID:  id,
		OldValues: before,
		NewValues: category,
	})
	api.SuccessJSON(w, category)
}

// DeleteCategory 刪除分類
//
// DELETE /admin/categories/{id}
func (c *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := c.categoryService.DeleteCategory(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	c.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "delete_category",
		TableName: "categories",
		RecordID:  id,
	})
	api.SuccessJSON(w, map[string]string{"message": "category deleted"})
}
