package db

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

// Store 統一的資料庫介面
type Store interface {
	// 基礎操作
	GetDB() *gorm.DB
	InitMigrate() error

	// User 相關操作
	IUserRepository

	// Admin 相關操作
	IAdminRepository

	// Category 相關操作
	ICategoryRepository

	// Product 相關操作
	IProductRepository

	// Cart 相關操作
	ICartRepository

	// Order 相關操作
	IOrderRepository

	// Checkout 下單核心
	ICheckoutRepository

	// Coupon 相關操作
	ICouponRepository

	// Review 相關操作
	IReviewRepository

	// Wishlist 相關操作
	IWishlistRepository

	// AuditLog 相關操作
	IAuditRepository
}

// IUserRepository User 相關操作介面
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]model.User, int64, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeactivateUser(ctx context.Context, id uint) error
	CountUsers(ctx context.Context) (total int64, active int64, err error)
}

// IAdminRepository Admin 相關操作介面
type IAdminRepository interface {
	CreateAdmin(ctx context.Context, admin *model.Admin) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id uint) (*model.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	ListAdmins(ctx context.Context) ([]model.Admin, error)
}

// ICategoryRepository Category 相關操作介面
type ICategoryRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*model.Category, error)
	ListCategories(ctx context.Context, offset, limit int) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProductByID(ctx context.Context, productID uint) (*model.Product, error)
	ListProducts(ctx context.Context, offset, limit int, categoryID *uint) ([]model.Product, int64, error)
	SearchProducts(ctx context.Context, term string, offset, limit int) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	AdjustStock(ctx context.Context, productID uint, delta int) (int, error)
	DeactivateProduct(ctx context.Context, productID uint) error
	CountProducts(ctx context.Context, lowStock int) (total, active, low int64, err error)
}

// ICartRepository Cart 相關操作介面
type ICartRepository interface {
	GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error)
	GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error)
	AddItem(ctx context.Context, cartID, productID uint, quantity int) (*model.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID, productID uint, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID uint) error
	ClearCart(ctx context.Context, cartID uint) error
	GetCartItems(ctx context.Context, cartID uint) ([]model.CartItem, error)
}

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	ListOrdersByUserID(ctx context.Context, userID uint, offset, limit int) ([]model.Order, int64, error)
	ListOrders(ctx context.Context, offset, limit int) ([]model.Order, int64, error)
	MarkOrderPaid(ctx context.Context, orderID uint, transactionID string) error
	MarkOrderShipped(ctx context.Context, orderID uint, trackingNumber string, estimatedDelivery time.Time) error
	MarkOrderDelivered(ctx context.Context, orderID uint) error
	MarkPaymentFailed(ctx context.Context, orderID uint) error
	CountOrders(ctx context.Context) (total, created, delivered int64, err error)
}

// ICheckoutRepository 下單核心介面
type ICheckoutRepository interface {
	PlaceOrderTx(ctx context.Context, params PlaceOrderParams) (*model.Order, error)
	CancelOrderTx(ctx context.Context, orderID, userID uint) error
}

// ICouponRepository Coupon 相關操作介面
type ICouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	GetCouponByID(ctx context.Context, id uint) (*model.Coupon, error)
	GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error)
	ListCoupons(ctx context.Context, offset, limit int) ([]model.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *model.Coupon) error
	DeactivateCoupon(ctx context.Context, id uint) error
}

// IReviewRepository Review 相關操作介面
type IReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	GetReviewByID(ctx context.Context, id uint) (*model.Review, error)
	ListReviewsByProduct(ctx context.Context, productID uint, offset, limit int) ([]model.Review, error)
	UpdateReview(ctx context.Context, review *model.Review) error
	DeleteReview(ctx context.Context, id uint) error
	GetProductRating(ctx context.Context, productID uint) (avg float64, count int64, err error)
	HasUserPurchasedProduct(ctx context.Context, userID, productID uint) (bool, error)
}

// IWishlistRepository Wishlist 相關操作介面
type IWishlistRepository interface {
	AddWishlistItem(ctx context.Context, userID, productID uint) (*model.WishlistItem, error)
	ListWishlistByUser(ctx context.Context, userID uint) ([]model.WishlistItem, error)
	RemoveWishlistItem(ctx context.Context, userID, productID uint) error
}

// IAuditRepository AuditLog 相關操作介面
type IAuditRepository interface {
	CreateAuditLog(ctx context.Context, log *model.AuditLog) error
	ListAuditLogs(ctx context.Context, tableName string, adminID *uint, offset, limit int) ([]model.AuditLog, int64, error)
}

// StoreImpl 統一資料庫實現
type StoreImpl struct {
	db    *gorm.DB
	dbDao *DbDao
	*UserRepo
	*AdminRepo
	*CategoryRepo
	*ProductRepo
	*CartRepo
	*OrderRepo
	*CheckoutRepo
	*CouponRepo
	*ReviewRepo
	*WishlistRepo
	*AuditRepo
}

// NewStore 創建新的統一資料庫實例
func NewStore(db *gorm.DB) *StoreImpl {
	dbDao := NewDbDao(db)
	return &StoreImpl{
		db:           db,
		dbDao:        dbDao,
		UserRepo:     NewUserRepo(dbDao),
		AdminRepo:    NewAdminRepo(dbDao),
		CategoryRepo: NewCategoryRepo(dbDao),
		ProductRepo:  NewProductRepo(dbDao),
		CartRepo:     NewCartRepo(dbDao),
		OrderRepo:    NewOrderRepo(dbDao),
		CheckoutRepo: NewCheckoutRepo(dbDao),
		CouponRepo:   NewCouponRepo(dbDao),
		ReviewRepo:   NewReviewRepo(dbDao),
		WishlistRepo: NewWishlistRepo(dbDao),
		AuditRepo:    NewAuditRepo(dbDao),
	}
}

func (u *StoreImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

// GetDB 獲取資料庫連接
func (u *StoreImpl) GetDB() *gorm.DB {
	return u.db
}
