package appcontext

import (
	"context"
	"fmt"
	"log"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/consumer"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/logger"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/producer"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type ApplicationContext struct {
	Cf          *config.Config
	Logger      zerolog.Logger
	Store       db.Store
	RedisClient *redis.Client
	SessionRepo redis_repo.ISessionRepository
	TokenMaker  token.Maker

	OrderEventProducer producer.IOrderEventProducer
	OrderEventConsumer *consumer.OrderEventConsumer

	UserService     service.IUserService
	AuthService     service.IAuthService
	CategoryService service.ICategoryService
	ProductService  service.IProductService
	CartService     service.ICartService
	CheckoutService service.ICheckoutService
	OrderService    service.IOrderService
	CouponService   service.ICouponService
	ReviewService   service.IReviewService
	WishlistService service.IWishlistService
	AdminService    service.IAdminService
	AuditService    service.IAuditService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.Logger = logger.New(app.Cf.ModulerName, app.Cf.Environment)

	if err := app.setUpStore(); err != nil {
		return err
	}
	if err := app.setUpRedis(); err != nil {
		return err
	}
	if err := app.setUpTokenMaker(); err != nil {
		return err
	}
	app.setUpKafka()
	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpStore() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}

	store := db.NewStore(conn)
	if err := store.InitMigrate(); err != nil {
		return err
	}
	app.Store = store
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	log.Printf("Start setup redis")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPas,
	})
	if err := app.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}
	app.SessionRepo = redis_repo.NewSessionRepo(app.RedisClient)
	log.Printf("Finish setup redis")
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	log.Printf("Start setup token maker")
	tokenMaker, err := token.NewJWTMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return err
	}
	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpKafka() {
	log.Printf("Start setup kafka")
	brokers := app.Cf.GetKafkaBrokers()
	app.OrderEventProducer = producer.NewOrderEventProducer(brokers, app.Cf.OrderEventTopic)
	app.OrderEventConsumer = consumer.NewOrderEventConsumer(brokers, app.Cf.OrderEventTopic, app.Cf.ConsumerGroupID, app.Logger)
	log.Printf("Finish setup kafka")
}

func (app *ApplicationContext) setUpServices() {
	app.UserService = service.NewUserService(app.Store)
	app.AuthService = service.NewAuthService(app.Store, app.UserService, app.SessionRepo, app.TokenMaker)
	app.CategoryService = service.NewCategoryService(app.Store)
	app.ProductService = service.NewProductService(app.Store)
	app.CartService = service.NewCartService(app.Store)
	app.CheckoutService = service.NewCheckoutService(app.Store, app.OrderEventProducer, app.Logger)
	app.OrderService = service.NewOrderService(app.Store)
	app.CouponService = service.NewCouponService(app.Store)
	app.ReviewService = service.NewReviewService(app.Store)
	app.WishlistService = service.NewWishlistService(app.Store)
	app.AdminService = service.NewAdminService(app.Store)
	app.AuditService = service.NewAuditService(app.Store, app.Logger)
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.OrderEventProducer != nil {
			log.Printf("Closing kafka producer...")
			if err := app.OrderEventProducer.Close(); err != nil {
				log.Printf("kafka producer shutdown error: %v", err)
			}
		}

		if app.OrderEventConsumer != nil {
			log.Printf("Closing kafka consumer...")
			if err := app.OrderEventConsumer.Close(); err != nil {
				log.Printf("kafka consumer shutdown error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis connection...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis shutdown error: %v", err)
			}
		}

		if app.Store != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.Store.GetDB().DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
