package service

import (
	"context"
	"reflect"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
)

type ICategoryService interface {
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*model.Category, error)
	ListCategories(ctx context.Context, offset, limit int) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id uint, name, description string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type CategoryService struct {
	store db.Store
}

func NewCategoryService(store db.Store) ICategoryService {
	if reflect.ValueOf(store).IsNil() {
		panic("category service initialization failed: store cannot be nil")
	}
	return &CategoryService{store: store}
}

func (c *CategoryService) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	if name == "" {
		return nil, ErrInvalidParam
	}
	return c.store.CreateCategory(ctx, &model.Category{
		CategoryName: name,
		Description:  description,
	})
}

func (c *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*model.Category, error) {
	return c.store.GetCategoryByID(ctx, id)
}

func (c *CategoryService) ListCategories(ctx context.Context, offset, limit int) ([]model.Category, error) {
	return c.store.ListCategories(ctx, offset, limit)
}

func (c *CategoryService) UpdateCategory(ctx context.Context, id uint, name, description string) (*model.Category, error) {
	category, err := c.store.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		category.CategoryName = name
	}
	if description != "" {
		category.Description = description
	}

	if err := c.store.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory 軟刪除分類，底下商品的 category_id 會被置空
func (c *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return c.store.DeleteCategory(ctx, id)
}

var _ ICategoryService = (*CategoryService)(nil)
