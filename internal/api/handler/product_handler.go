package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
	auditService   service.IAuditService
}

func NewProductHandler(productService service.IProductService, auditService service.IAuditService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	if auditService == nil {
		panic("auditService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
		auditService:   auditService,
	}
}

// ListProducts 商品列表，可用 category_id 過濾
//
// GET /products
func (p *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	offset, limit := paging(r)

	var categoryID *uint
	if v := r.URL.Query().Get("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, "invalid category id")
			return
		}
		cid := uint(id)
		categoryID = &cid
	}

	products, total, err := p.productService.ListProducts(r.Context(), offset, limit, categoryID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.PagedJSON(w, products, offset, limit, total)
}

// SearchProducts 以關鍵字搜尋名稱與描述
//
// GET /products/search?q=...
func (p *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	offset, limit := paging(r)
	products, err := p.productService.SearchProducts(r.Context(), r.URL.Query().Get("q"), offset, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, products)
}

// GetProduct 單一商品
//
// GET /products/{id}
func (p *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := p.productService.GetProductByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, product)
}

// GetProductRating 商品評分彙總
//
// GET /products/{id}/rating
func (p *ProductHandler) GetProductRating(w http.ResponseWriter, r *http.Request) {
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	rating, err := p.productService.GetProductRating(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, rating)
}

// CreateProduct 上架商品，管理端操作
//
// POST /admin/products
func (p *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := p.productService.CreateProduct(r.Context(), service.CreateProductParams{
		Name:        createDTO.Name,
		Description: createDTO.Description,
		Price:       createDTO.Price,
		StockQty:    createDTO.StockQty,
		CategoryID:  createDTO.CategoryID,
		Brand:       createDTO.Brand,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	p.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "create_product",
		TableName: "products",
		RecordID:  product.ProductID,
		NewValues: product,
	})
	api.CreatedJSON(w, product)
}

// UpdateProduct 更新商品
//
// PUT /admin/products/{id}
func (p *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var updateDTO dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	before, err := p.productService.GetProductByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	product, err := p.productService.UpdateProduct(r.Context(), id, service.UpdateProductParams{
		Name:        updateDTO.Name,
		Description: updateDTO.Description,
		Price:       updateDTO.Price,
		CategoryID:  updateDTO.CategoryID,
		Brand:       updateDTO.Brand,
		IsActive:    updateDTO.IsActive,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	p.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "update_product",
		TableName: "products",
		RecordID:  id,
		OldValues: before,
		NewValues: product,
	})
	api.SuccessJSON(w, product)
}

// AdjustStock 調整庫存，delta 可為負
//
// POST /admin/products/{id}/stock
func (p *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var adjustDTO dto.AdjustStockDTO
	if err := json.NewDecoder(r.Body).Decode(&adjustDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stock, err := p.productService.AdjustStock(r.Context(), id, adjustDTO.Delta)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	p.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "adjust_stock",
		TableName: "products",
		RecordID:  id,
		NewValues: dto.AdjustStockResponse{ProductID: id, StockQty: stock},
	})
	api.SuccessJSON(w, dto.AdjustStockResponse{ProductID: id, StockQty: stock})
}

// DeactivateProduct 下架商品
//
// DELETE /admin/products/{id}
func (p *ProductHandler) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := p.productService.Deactivate(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	p.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "deactivate_product",
		TableName: "products",
		RecordID:  id,
	})
	api.SuccessJSON(w, map[string]string{"message": "product deactivated"})
}
