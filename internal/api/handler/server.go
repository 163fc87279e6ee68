package handler

// Server 聚合所有 handler，供 router 註冊路由
type Server struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
	CouponHandler   *CouponHandler
	ReviewHandler   *ReviewHandler
	WishlistHandler *WishlistHandler
	AdminHandler    *AdminHandler
}

func NewServer(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	categoryHandler *CategoryHandler,
	productHandler *ProductHandler,
	cartHandler *CartHandler,
	orderHandler *OrderHandler,
	couponHandler *CouponHandler,
	reviewHandler *ReviewHandler,
	wishlistHandler *WishlistHandler,
	adminHandler *AdminHandler,
) *Server {
	return &Server{
		AuthHandler:     authHandler,
		UserHandler:     userHandler,
		CategoryHandler: categoryHandler,
		ProductHandler:  productHandler,
		CartHandler:     cartHandler,
		OrderHandler:    orderHandler,
		CouponHandler:   couponHandler,
		ReviewHandler:   reviewHandler,
		WishlistHandler: wishlistHandler,
		AdminHandler:    adminHandler,
	}
}
