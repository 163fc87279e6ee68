package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/handler"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/router"
	"github.com/RoyceAzure/lab/shopcenter/internal/appcontext"
	"github.com/RoyceAzure/lab/shopcenter/internal/config"
)

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	// 初始化 handler
	authHandler := handler.NewAuthHandler(app.AuthService, app.UserService)
	userHandler := handler.NewUserHandler(app.UserService, app.AuditService)
	categoryHandler := handler.NewCategoryHandler(app.CategoryService, app.AuditService)
	productHandler := handler.NewProductHandler(app.ProductService, app.AuditService)
	cartHandler := handler.NewCartHandler(app.CartService)
	orderHandler := handler.NewOrderHandler(app.CheckoutService, app.OrderService, app.AuditService)
	couponHandler := handler.NewCouponHandler(app.CouponService, app.AuditService)
	reviewHandler := handler.NewReviewHandler(app.ReviewService)
	wishlistHandler := handler.NewWishlistHandler(app.WishlistService)
	adminHandler := handler.NewAdminHandler(app.AdminService, app.AuditService)

	server := handler.NewServer(
		authHandler,
		userHandler,
		categoryHandler,
		productHandler,
		cartHandler,
		orderHandler,
		couponHandler,
		reviewHandler,
		wishlistHandler,
		adminHandler,
	)

	// 設置路由
	r := router.SetupRouter(server, app)

	// 設定服務器參數
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 啟動訂單事件 consumer
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	go func() {
		if err := app.OrderEventConsumer.Start(consumerCtx); err != nil {
			log.Printf("order event consumer stopped: %v", err)
		}
	}()

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDonwCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		cancelConsumer()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDonwCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDonwCompleted
	log.Printf("closed completed")
}
