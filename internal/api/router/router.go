package router

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/handler"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/shopcenter/internal/appcontext"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(server *handler.Server, app *appcontext.ApplicationContext) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(app.TokenMaker))
	r.Use(middleware.RealIP)
	r.Use(m.DeviceInfoMiddleware)
	r.Use(m.LoggerMiddleware(&app.Logger))
	r.Use(m.PrometheusMiddleware)

	authed := m.AuthMiddleware(app.AuthService)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		// 公開路由
		r.Group(func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", server.AuthHandler.Register)
				r.Post("/login", server.AuthHandler.Login)
				r.Post("/admin/login", server.AuthHandler.AdminLogin)
				r.With(authed).Post("/refresh-token", server.AuthHandler.RefreshToken)
				r.With(authed).Post("/logout", server.AuthHandler.Logout)
				r.With(authed).Get("/me", server.AuthHandler.Me)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", server.CategoryHandler.ListCategories)
				r.Get("/{id}", server.CategoryHandler.GetCategory)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", server.ProductHandler.ListProducts)
				r.Get("/search", server.ProductHandler.SearchProducts)
				r.Get("/{id}", server.ProductHandler.GetProduct)
				r.Get("/{id}/rating", server.ProductHandler.GetProductRating)
				r.Get("/{id}/reviews", server.ReviewHandler.ListProductReviews)
			})
		})

		// 需登入路由
		r.Group(func(r chi.Router) {
			r.Use(authed)

			r.Route("/users/me", func(r chi.Router) {
				r.Put("/", server.UserHandler.UpdateProfile)
				r.Delete("/", server.UserHandler.Deactivate)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.CartHandler.GetCart)
				r.Delete("/", server.CartHandler.ClearCart)
				r.Post("/items", server.CartHandler.AddItem)
				r.Put("/items/{productID}", server.CartHandler.UpdateItem)
				r.Delete("/items/{productID}", server.CartHandler.RemoveItem)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", server.OrderHandler.PlaceOrder)
				r.Get("/", server.OrderHandler.ListMyOrders)
				r.Get("/{id}", server.OrderHandler.GetOrder)
				r.Post("/{id}/pay", server.OrderHandler.PayOrder)
				r.Post("/{id}/cancel", server.OrderHandler.CancelOrder)
			})

			r.Post("/coupons/preview", server.CouponHandler.Preview)

			r.Route("/reviews", func(r chi.Router) {
				r.Post("/", server.ReviewHandler.CreateReview)
				r.Put("/{id}", server.ReviewHandler.UpdateReview)
				r.Delete("/{id}", server.ReviewHandler.DeleteReview)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", server.WishlistHandler.ListItems)
				r.Post("/", server.WishlistHandler.AddItem)
				r.Delete("/{productID}", server.WishlistHandler.RemoveItem)
			})
		})

		// 管理端路由
		r.Route("/admin", func(r chi.Router) {
			r.Use(authed)
			r.Use(m.AdminMiddleware)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", server.UserHandler.ListUsers)
				r.Get("/{id}", server.UserHandler.GetUser)
				r.Delete("/{id}", server.UserHandler.DeactivateUser)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", server.CategoryHandler.CreateCategory)
				r.Put("/{id}", server.CategoryHandler.UpdateCategory)
				r.Delete("/{id}", server.CategoryHandler.DeleteCategory)
			})

			r.Route("/products", func(r chi.Router) {
				r.Post("/", server.ProductHandler.CreateProduct)
				r.Put("/{id}", server.ProductHandler.UpdateProduct)
				r.Post("/{id}/stock", server.ProductHandler.AdjustStock)
				r.Delete("/{id}", server.ProductHandler.DeactivateProduct)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", server.OrderHandler.ListAllOrders)
				r.Post("/{id}/fail-payment", server.OrderHandler.FailPayment)
				r.Post("/{id}/ship", server.OrderHandler.ShipOrder)
				r.Post("/{id}/deliver", server.OrderHandler.DeliverOrder)
			})

			r.Route("/coupons", func(r chi.Router) {
				r.Get("/", server.CouponHandler.ListCoupons)
				r.Post("/", server.CouponHandler.CreateCoupon)
				r.Get("/{id}", server.CouponHandler.GetCoupon)
				r.Put("/{id}", server.CouponHandler.UpdateCoupon)
				r.Delete("/{id}", server.CouponHandler.DeactivateCoupon)
			})

			r.Route("/admins", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListAdmins)
				r.Post("/", server.AdminHandler.CreateAdmin)
			})

			r.Get("/dashboard", server.AdminHandler.GetDashboardStats)
			r.Get("/audit-logs", server.AdminHandler.ListAuditLogs)
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
