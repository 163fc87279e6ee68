package service

import (
	"context"
	"fmt"
	"reflect"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"golang.org/x/crypto/bcrypt"
)

// DashboardStats 管理端儀表板彙總
type DashboardStats struct {
	TotalUsers       int64 `json:"total_users"`
	ActiveUsers      int64 `json:"active_users"`
	TotalProducts    int64 `json:"total_products"`
	ActiveProducts   int64 `json:"active_products"`
	LowStockProducts int64 `json:"low_stock_products"`
	TotalOrders      int64 `json:"total_orders"`
	PendingOrders    int64 `json:"pending_orders"`
	DeliveredOrders  int64 `json:"delivered_orders"`
}

type IAdminService interface {
	// CreateAdmin 建立管理員帳號，role 限定 super/manager/support
	CreateAdmin(ctx context.Context, username, email, password, role string) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id uint) (*model.Admin, error)
	ListAdmins(ctx context.Context) ([]model.Admin, error)
	// GetDashboardStats 使用者、商品、訂單統計
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type AdminService struct {
	store db.Store
}

func NewAdminService(store db.Store) IAdminService {
	if reflect.ValueOf(store).IsNil() {
		panic("admin service initialization failed: store cannot be nil")
	}
	return &AdminService{store: store}
}

func (a *AdminService) CreateAdmin(ctx context.Context, username, email, password, role string) (*model.Admin, error) {
	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", ErrInvalidParam)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidParam)
	}
	switch role {
	case model.AdminRoleSuper, model.AdminRoleManager, model.AdminRoleSupport:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidParam, role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return a.store.CreateAdmin(ctx, &model.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		IsActive:     true,
	})
}

func (a *AdminService) GetAdminByID(ctx context.Context, id uint) (*model.Admin, error) {
	return a.store.GetAdminByID(ctx, id)
}

func (a *AdminService) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	return a.store.ListAdmins(ctx)
}

func (a *AdminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalUsers, activeUsers, err := a.store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	totalProducts, activeProducts, lowStock, err := a.store.CountProducts(ctx, constants.LowStockThreshold)
	if err != nil {
		return nil, err
	}

	totalOrders, pendingOrders, deliveredOrders, err := a.store.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:       totalUsers,
		ActiveUsers:      activeUsers,
		TotalProducts:    totalProducts,
		ActiveProducts:   activeProducts,
		LowStockProducts: lowStock,
		TotalOrders:      totalOrders,
		PendingOrders:    pendingOrders,
		DeliveredOrders:  deliveredOrders,
	}, nil
}

var _ IAdminService = (*AdminService)(nil)
