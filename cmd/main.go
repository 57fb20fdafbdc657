package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Yaseeru/glowgroove/docs"
	"github.com/Yaseeru/glowgroove/internal/app"
	"github.com/Yaseeru/glowgroove/internal/config"
	"github.com/Yaseeru/glowgroove/internal/handler"
	"github.com/Yaseeru/glowgroove/internal/notifier"
	"github.com/Yaseeru/glowgroove/internal/paystack"
	"github.com/Yaseeru/glowgroove/internal/postgres"
	"github.com/Yaseeru/glowgroove/internal/pricing"
	"github.com/Yaseeru/glowgroove/internal/redisx"
	"github.com/Yaseeru/glowgroove/internal/repo"
	"github.com/Yaseeru/glowgroove/internal/service"
	"github.com/Yaseeru/glowgroove/pkg/cache"
	"github.com/Yaseeru/glowgroove/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           GlowGroove Orders API
// @version         1.0
// @description     Order lifecycle, payments and inventory reconciliation.
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	redisClient, err := redisx.New(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	logger.Info("redis connected")

	ordersRepo := repo.NewOrdersRepo(db)
	productsRepo := repo.NewProductsRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	dedup := redisx.NewDedupStore(redisClient, conf.Redis.DedupTTL)

	mailNotifier := notifier.NewKafka(logger, conf.Kafka)
	gateway := paystack.New(logger, conf.Paystack)
	calc := pricing.NewCalculator(conf.Pricing.TaxRate, conf.Pricing.ShippingFee, conf.Pricing.FreeShippingOver)

	orderService := service.NewOrderService(logger, txManager, ordersRepo, productsRepo, mailNotifier, orderCache, calc)
	paymentService := service.NewPaymentService(logger, txManager, ordersRepo, productsRepo, gateway, dedup, orderCache, conf.Paystack.CallbackURL)

	httpHandler := handler.NewHTTPHandler(logger, orderService, paymentService, conf.Paystack.SecretKey)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(orderCache)
	app.SetClosers(mailNotifier, redisClient)

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
