package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-orders/docs"
	"github.com/SergeyBogomolovv/storefront-orders/internal/app"
	"github.com/SergeyBogomolovv/storefront-orders/internal/cart"
	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/gateway"
	"github.com/SergeyBogomolovv/storefront-orders/internal/handler"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-orders/internal/notify"
	"github.com/SergeyBogomolovv/storefront-orders/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-orders/internal/repo"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/internal/storage"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"

	"github.com/joho/godotenv"
)

// @title                       Storefront Orders API
// @version                     1.0
// @description                 Cart, checkout and order lifecycle API of the storefront.
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))
	orderCache := cache.NewLRUCache[entities.Order](conf.Cache.Capacity, conf.Cache.TTL)
	sessions := cache.NewLRUCache[entities.CheckoutSession](conf.Checkout.SessionCapacity, conf.Checkout.SessionTTL)
	carts := cart.NewStore()
	publisher := notify.NewPublisher(conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache, publisher, conf.Checkout.NotifyTimeout)

	receipts, routes := newReceiptStorage(conf)
	checkoutService := service.NewCheckoutService(logger, service.CheckoutDeps{
		Orders:   orderService,
		Carts:    carts,
		Sessions: sessions,
		Receipts: receipts,
		Gateway:  gateway.NewClient(conf.Gateway),
		Notifier: publisher,
	}, conf.Checkout.NotifyTimeout)

	templates, err := notify.NewTemplates()
	panicIfErr("failed to parse email templates", err)
	sender := notify.NewSender(logger, conf.Mail, notify.NewMailer(conf.Mail), templates)

	auth := middleware.NewAuth(conf.Auth)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, sender)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewHTTPHandler(logger, auth, orderService),
		handler.NewCheckoutHandler(logger, auth, checkoutService),
		handler.NewCartHandler(logger, auth, orderRepo, carts),
	)
	if routes != nil {
		app.SetHTTPHandlers(routes)
	}
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, sessions, cacheWarmUpAdapter{logger: logger, svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(func() error {
		checkoutService.Wait()
		orderService.Wait()
		return publisher.Close()
	})

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

// newReceiptStorage also returns the route serving stored files, if the backend needs one.
func newReceiptStorage(conf config.Config) (service.ReceiptStorage, app.HTTPHandler) {
	if conf.Receipts.Backend == "s3" {
		s3Storage, err := storage.NewS3Storage(conf.Receipts)
		panicIfErr("failed to create s3 storage", err)
		return s3Storage, nil
	}

	baseURL := conf.Receipts.PublicBaseURL
	if baseURL == "" {
		baseURL = "http://" + net.JoinHostPort(conf.Http.Host, conf.Http.Port)
	}
	fsStorage := storage.NewFSStorage(conf.Receipts.Dir, baseURL)
	return fsStorage, fsStorage
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

// cacheWarmUpAdapter logs warm-up failures instead of stopping the app.
type cacheWarmUpAdapter struct {
	logger *slog.Logger
	svc    warmUpper
	count  int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	if err := a.svc.WarmUpCache(ctx, a.count); err != nil {
		a.logger.Warn("cache warm up failed", slog.Any("error", err))
	}
	return nil
}
